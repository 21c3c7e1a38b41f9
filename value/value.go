package value

import (
	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
)

// Value is a plaintext (quantity, flavor) pair, held outside the
// circuit by the party that knows it.
type Value struct {
	Q SignedInteger // quantity
	F fr.Element    // flavor
}

// ZeroValue is the padding value: zero quantity, zero flavor.
func ZeroValue() Value {
	return Value{Q: Zero(), F: fr.Element{}}
}

// IsZero reports whether v is the padding value.
func (v Value) IsZero() bool {
	return !v.Q.IsNegative() && v.Q.abs == 0 && v.F.IsZero()
}

// SameFlavor reports whether v and o carry the same flavor tag.
func (v Value) SameFlavor(o Value) bool {
	return v.F.Equal(&o.F)
}

// CommittedValue is a pair of Pedersen commitments to a Value's
// quantity and flavor, as produced by r1cs.Prover.Commit and consumed
// by r1cs.Verifier.Commit.
type CommittedValue struct {
	Q bn254.G1Affine
	F bn254.G1Affine
}
