// Package rangeproof implements the bit-decomposition range proof
// (spec §4.8): proves a committed quantity lies in [0, 2^n).
package rangeproof

import (
	"fmt"

	"github.com/bits-and-blooms/bitset"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// NumBits is the bit width Cloak proves quantities against: spec §4.8
// fixes n = 64, matching SignedInteger's 64-bit absolute-value bound.
const NumBits = 64

// Prove allocates NumBits bit variables for q, constrains each to be
// boolean, and constrains q to equal their weighted sum. A negative
// quantity has no valid bit decomposition; its witness computation
// below returns a placeholder of all-zero bits, which then fails the
// weighted-sum constraint at Prove time — exactly the rejection spec
// §4.8 calls for, rather than a special-cased error here.
func Prove(cs r1cs.ConstraintSystem, q value.AllocatedQuantity) error {
	bits := make([]value.Var, NumBits)
	for i := 0; i < NumBits; i++ {
		// The allocation triple (v1, v2, v3) with v1*v2=v3 is put to
		// direct use as the boolean check itself: v1=bit, v2=bit-1,
		// v3=bit*(bit-1). A separate Multiply gate re-deriving the same
		// product would waste a second triple on what this one already
		// computes; the two Constrain calls below tie v2 to v1-1 and pin
		// v3 to zero for the verifier, who has no witness to check it
		// against otherwise.
		bVar, bMinusOneVar, outVar, err := cs.Allocate(func() (bit, bitMinusOne, product fr.Element, err error) {
			one := fr.One()
			bit = bitAssignment(q.Assignment, i)
			bitMinusOne.Sub(&bit, &one)
			product.Mul(&bit, &bitMinusOne)
			return bit, bitMinusOne, product, nil
		})
		if err != nil {
			return fmt.Errorf("%w: range-proof bit %d: %v", r1cs.ErrAllocation, i, err)
		}
		bits[i] = bVar
		one := fr.One()
		cs.Constrain(r1cs.LC(bVar).SubConst(one).Sub(r1cs.LC(bMinusOneVar)))
		cs.Constrain(r1cs.LC(outVar))
	}

	sum := weightedSum(bits)
	cs.Constrain(r1cs.LC(q.Variable).Sub(sum))
	return nil
}

// bitAssignment returns bit i (0 = least significant) of q's absolute
// value as a field element, or zero if q is absent or negative.
func bitAssignment(q *value.SignedInteger, i int) fr.Element {
	var out fr.Element
	if q == nil || q.IsNegative() {
		return out
	}
	abs, ok := q.ToUint64()
	if !ok {
		return out
	}
	bs := bitset.From([]uint64{abs})
	if bs.Test(uint(i)) {
		out.SetOne()
	}
	return out
}

// weightedSum returns Σ 2^i · bits[i] as a linear combination.
func weightedSum(bits []value.Var) r1cs.LinearCombination {
	sum := r1cs.Const(fr.Element{})
	weight := fr.One()
	two := fr.Element{}
	two.SetUint64(2)
	for _, b := range bits {
		sum = sum.Add(r1cs.Scaled(b, weight))
		weight.Mul(&weight, &two)
	}
	return sum
}
