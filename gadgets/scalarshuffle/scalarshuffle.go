// Package scalarshuffle implements the 2-to-2 and k-to-k shuffle of
// plain scalar wires, the base case every other shuffle in Cloak
// builds on (spec §4.1).
package scalarshuffle

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// ChallengeLabel is the domain separator scalar-shuffle draws its
// challenge under. Every gadget that calls ChallengeScalar uses a
// distinct label so two gadgets sharing one randomized-constraints
// phase never collide.
const ChallengeLabel = "cloak/scalar-shuffle"

// Shuffle constrains ys to be a permutation of xs as multisets. By
// Schwartz-Zippel, a prover supplying ys that disagrees with xs as a
// multiset can satisfy the resulting constraint only with probability
// at most len(xs)/|F|.
func Shuffle(cs r1cs.ConstraintSystem, xs, ys []value.Var) error {
	k := len(xs)
	if len(ys) != k {
		return fmt.Errorf("%w: scalar-shuffle length mismatch: %d inputs, %d outputs", r1cs.ErrGadget, k, len(ys))
	}

	switch k {
	case 0:
		return nil
	case 1:
		cs.Constrain(r1cs.LC(xs[0]).Sub(r1cs.LC(ys[0])))
		return nil
	}

	cs.SpecifyRandomizedConstraints(func(rcs r1cs.RandomizedConstraintSystem) error {
		z := rcs.ChallengeScalar(ChallengeLabel)
		left := chainProduct(rcs, xs, z)
		right := chainProduct(rcs, ys, z)
		rcs.Constrain(r1cs.LC(left).Sub(r1cs.LC(right)))
		return nil
	})
	return nil
}

// chainProduct builds the left-associative product prod_i (vars[i] - z)
// using len(vars)-1 multipliers, and returns the wire holding the
// final product. Callers must ensure len(vars) >= 2.
func chainProduct(cs r1cs.ConstraintSystem, vars []value.Var, z fr.Element) value.Var {
	first := r1cs.LC(vars[0]).SubConst(z)
	second := r1cs.LC(vars[1]).SubConst(z)
	_, _, acc := cs.Multiply(first, second)
	for i := 2; i < len(vars); i++ {
		term := r1cs.LC(vars[i]).SubConst(z)
		_, _, acc = cs.Multiply(r1cs.LC(acc), term)
	}
	return acc
}
