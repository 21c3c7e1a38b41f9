// Package valueshuffle implements the k-to-k shuffle of (quantity,
// flavor) pairs (spec §4.2): the same polynomial-identity trick as
// scalarshuffle, but applied to a linear combination of each pair
// parameterized by an independent challenge, so that two pairs collide
// under the identity only if both their quantities and their flavors
// match.
package valueshuffle

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// Challenge labels, distinct from every other gadget's so a shared
// randomized-constraints phase never collides across gadget kinds.
const (
	ChallengeLabelW = "cloak/value-shuffle/w"
	ChallengeLabelZ = "cloak/value-shuffle/z"
)

// Shuffle constrains ys to be a permutation of xs as a multiset of
// (quantity, flavor) pairs. Soundness failure probability is at most
// 2*len(xs)/|F| (spec §4.2).
func Shuffle(cs r1cs.ConstraintSystem, xs, ys []value.AllocatedValue) error {
	k := len(xs)
	if len(ys) != k {
		return fmt.Errorf("%w: value-shuffle length mismatch: %d inputs, %d outputs", r1cs.ErrGadget, k, len(ys))
	}

	switch k {
	case 0:
		return nil
	case 1:
		cs.Constrain(r1cs.LC(xs[0].Q).Sub(r1cs.LC(ys[0].Q)))
		cs.Constrain(r1cs.LC(xs[0].F).Sub(r1cs.LC(ys[0].F)))
		return nil
	}

	cs.SpecifyRandomizedConstraints(func(rcs r1cs.RandomizedConstraintSystem) error {
		w := rcs.ChallengeScalar(ChallengeLabelW)
		z := rcs.ChallengeScalar(ChallengeLabelZ)
		left := chainProduct(rcs, xs, w, z)
		right := chainProduct(rcs, ys, w, z)
		rcs.Constrain(r1cs.LC(left).Sub(r1cs.LC(right)))
		return nil
	})
	return nil
}

// combinedTerm builds q + w*f - z for a single allocated value.
func combinedTerm(v value.AllocatedValue, w, z fr.Element) r1cs.LinearCombination {
	return r1cs.Scaled(v.F, w).Add(r1cs.LC(v.Q)).SubConst(z)
}

// chainProduct multiplies combinedTerm across vs left-associatively.
// Callers must ensure len(vs) >= 2.
func chainProduct(cs r1cs.ConstraintSystem, vs []value.AllocatedValue, w, z fr.Element) value.Var {
	first := combinedTerm(vs[0], w, z)
	second := combinedTerm(vs[1], w, z)
	_, _, acc := cs.Multiply(first, second)
	for i := 2; i < len(vs); i++ {
		term := combinedTerm(vs[i], w, z)
		_, _, acc = cs.Multiply(r1cs.LC(acc), term)
	}
	return acc
}
