package r1cs

import (
	"fmt"
	"io"
	"math/big"

	"github.com/consensys/gnark-crypto/ecc/bn254"
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/value"
)

// generators returns a fixed pair of independent BN254 G1 generators
// for the Pedersen commitments bridging value.Value and
// value.CommittedValue. They are derived by hashing distinct
// domain-separation tags to the curve (RFC 9380 hash-to-curve, as
// implemented by gnark-crypto's HashToG1), so neither generator's
// discrete log with respect to the other is known to anyone — no
// trusted setup is needed.
func generators() (g, h bn254.G1Affine) {
	dst := []byte("cloak-pedersen-v1")
	g, err := bn254.HashToG1([]byte("cloak/G"), dst)
	if err != nil {
		panic(fmt.Sprintf("r1cs: deriving Pedersen generator G: %v", err))
	}
	h, err = bn254.HashToG1([]byte("cloak/H"), dst)
	if err != nil {
		panic(fmt.Sprintf("r1cs: deriving Pedersen generator H: %v", err))
	}
	return g, h
}

// pedersenCommit computes x*G + blinding*H.
func pedersenCommit(x, blinding fr.Element) bn254.G1Affine {
	g, h := generators()
	var xBig, bBig big.Int
	x.BigInt(&xBig)
	blinding.BigInt(&bBig)

	var xG, bH bn254.G1Affine
	xG.ScalarMultiplication(&g, &xBig)
	bH.ScalarMultiplication(&h, &bBig)

	var out bn254.G1Affine
	out.Add(&xG, &bH)
	return out
}

func randomScalar(rng io.Reader) (fr.Element, error) {
	var s fr.Element
	if rng == nil {
		// fr.Element.SetRandom reads crypto/rand internally; use it
		// directly when the caller didn't inject a custom source.
		if _, err := s.SetRandom(); err != nil {
			return fr.Element{}, fmt.Errorf("r1cs: generating blinding randomness: %w", err)
		}
		return s, nil
	}
	raw := make([]byte, fr.Limbs*8+16)
	if _, err := io.ReadFull(rng, raw); err != nil {
		return fr.Element{}, fmt.Errorf("r1cs: reading blinding randomness: %w", err)
	}
	bi := new(big.Int).SetBytes(raw)
	s.SetBigInt(bi)
	return s, nil
}

// Commit binds v into the transcript, allocates its wires with v as
// the prover's witness, and returns the Pedersen commitments an
// embedding application would publish alongside the proof. This is
// the Go analogue of the original Rust ProverCommittable trait.
func (p *Prover) Commit(v value.Value) (value.CommittedValue, value.AllocatedValue, error) {
	qBlind, err := randomScalar(p.rng)
	if err != nil {
		return value.CommittedValue{}, value.AllocatedValue{}, err
	}
	fBlind, err := randomScalar(p.rng)
	if err != nil {
		return value.CommittedValue{}, value.AllocatedValue{}, err
	}

	qScalar := v.Q.Scalar()
	committed := value.CommittedValue{
		Q: pedersenCommit(qScalar, qBlind),
		F: pedersenCommit(v.F, fBlind),
	}

	qBytes := committed.Q.Bytes()
	fBytes := committed.F.Bytes()
	p.transcript.AppendPoint("cloak/commit/q", qBytes[:])
	p.transcript.AppendPoint("cloak/commit/f", fBytes[:])

	qVar := p.pushWitness(qScalar)
	fVar := p.pushWitness(v.F)

	assignment := v
	return committed, value.AllocatedValue{Q: qVar, F: fVar, Assignment: &assignment}, nil
}

// CommitValues commits a whole slice, in order, the way the original
// Rust ProverCommittable impl for Vec<Value> does (unzipping the
// per-element commit/allocate pairs).
func (p *Prover) CommitValues(vs []value.Value) ([]value.CommittedValue, []value.AllocatedValue, error) {
	committed := make([]value.CommittedValue, len(vs))
	allocated := make([]value.AllocatedValue, len(vs))
	for i, v := range vs {
		c, a, err := p.Commit(v)
		if err != nil {
			return nil, nil, fmt.Errorf("r1cs: committing value %d: %w", i, err)
		}
		committed[i] = c
		allocated[i] = a
	}
	return committed, allocated, nil
}

// Commit reconstructs an AllocatedValue (with no assignment) from a
// published CommittedValue, binding the same commitment bytes into
// the verifier's transcript so its challenges match the prover's.
func (v *Verifier) Commit(committed value.CommittedValue) value.AllocatedValue {
	qBytes := committed.Q.Bytes()
	fBytes := committed.F.Bytes()
	v.transcript.AppendPoint("cloak/commit/q", qBytes[:])
	v.transcript.AppendPoint("cloak/commit/f", fBytes[:])

	return value.AllocatedValue{Q: v.nextVar(), F: v.nextVar()}
}

// CommitValues is the verifier-side counterpart of Prover.CommitValues.
func (v *Verifier) CommitValues(committed []value.CommittedValue) []value.AllocatedValue {
	allocated := make([]value.AllocatedValue, len(committed))
	for i, c := range committed {
		allocated[i] = v.Commit(c)
	}
	return allocated
}
