// Package cloaktest holds the constraint-system setup shared by the
// gadget test suites: a prover/verifier pair on matching transcripts,
// and plain (uncommitted) value allocation for gadget-level tests that
// don't need the Pedersen commitment layer.
package cloaktest

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// Pair returns a Prover and Verifier sharing a transcript label, the
// way an embedding application would construct the two sides of one
// proof session.
func Pair(label string) (*r1cs.Prover, *r1cs.Verifier) {
	return r1cs.NewProver(label, nil), r1cs.NewVerifier(label)
}

// Alloc allocates v directly against cs, bypassing Pedersen
// commitment. v is nil on the verifier side.
func Alloc(cs r1cs.ConstraintSystem, v *value.Value) (value.AllocatedValue, error) {
	qVar, fVar, _, err := cs.Allocate(func() (q, f, qf fr.Element, err error) {
		if v == nil {
			return fr.Element{}, fr.Element{}, fr.Element{}, nil
		}
		q = v.Q.Scalar()
		f = v.F
		qf.Mul(&q, &f)
		return q, f, qf, nil
	})
	if err != nil {
		return value.AllocatedValue{}, err
	}
	return value.AllocatedValue{Q: qVar, F: fVar, Assignment: v}, nil
}

// AllocAll allocates a whole slice of plaintext values against cs. vs
// is nil on the verifier side; n gives the slice length in that case.
func AllocAll(cs r1cs.ConstraintSystem, vs []value.Value, n int) ([]value.AllocatedValue, error) {
	if vs != nil {
		n = len(vs)
	}
	out := make([]value.AllocatedValue, n)
	for i := 0; i < n; i++ {
		var v *value.Value
		if vs != nil {
			v = &vs[i]
		}
		av, err := Alloc(cs, v)
		if err != nil {
			return nil, err
		}
		out[i] = av
	}
	return out, nil
}

// Flavor builds a flavor scalar from a small integer, for readable
// test fixtures.
func Flavor(n uint64) fr.Element {
	var f fr.Element
	f.SetUint64(n)
	return f
}

// Val builds a plaintext (quantity, flavor) pair from plain integers.
func Val(q int64, flavor uint64) value.Value {
	var quantity value.SignedInteger
	if q < 0 {
		quantity = value.Negative(uint64(-q))
	} else {
		quantity = value.Positive(uint64(q))
	}
	return value.Value{Q: quantity, F: Flavor(flavor)}
}
