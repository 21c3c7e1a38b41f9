package r1cs

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/internal/clog"
	"github.com/interstellar/spacesuit/value"
)

// Verifier is the witness-free ConstraintSystem implementation.
// Gadgets run unmodified against it: the same shuffle/mix/merge/split
// code that checks a Prover's witness for satisfiability also runs
// against a Verifier, which only tracks how many wires and
// constraints the circuit has. Spec §9 calls this "polymorphism over
// prover/verifier" — the gadget layer never branches on which one it
// has.
//
// A real verifier would check a submitted Bulletproofs proof against
// the constraint structure recorded here; that check is out of scope
// for this module (spec §1) and is left to the external driver the
// spec names.
type Verifier struct {
	transcript  *Transcript
	nVars       int
	constraints int
	pending     []func(RandomizedConstraintSystem) error
	finalized   bool
	randomized  bool
}

// NewVerifier starts a Verifier with the same domain label a
// corresponding Prover was built with — the two sides must derive
// identical challenges for a real proof to verify.
func NewVerifier(label string) *Verifier {
	return &Verifier{transcript: NewTranscript(label)}
}

func (v *Verifier) nextVar() value.Var {
	vr := value.Var(v.nVars)
	v.nVars++
	return vr
}

// Allocate implements ConstraintSystem. assign is never invoked: the
// verifier has no witness to compute.
func (v *Verifier) Allocate(assign AssignFunc) (value.Var, value.Var, value.Var, error) {
	if assign == nil {
		return 0, 0, 0, fmt.Errorf("%w: nil witness closure", ErrAllocation)
	}
	return v.nextVar(), v.nextVar(), v.nextVar(), nil
}

// Multiply implements ConstraintSystem.
func (v *Verifier) Multiply(a, b LinearCombination) (value.Var, value.Var, value.Var) {
	return v.nextVar(), v.nextVar(), v.nextVar()
}

// Constrain implements ConstraintSystem.
func (v *Verifier) Constrain(lc LinearCombination) {
	v.constraints++
}

// SpecifyRandomizedConstraints implements ConstraintSystem.
func (v *Verifier) SpecifyRandomizedConstraints(closure func(RandomizedConstraintSystem) error) {
	v.pending = append(v.pending, closure)
}

// ChallengeScalar implements RandomizedConstraintSystem.
func (v *Verifier) ChallengeScalar(label string) fr.Element {
	if !v.randomized {
		panic("r1cs: ChallengeScalar called outside the randomized-constraints phase")
	}
	return v.transcript.ChallengeScalar(label)
}

// Finalize runs every registered randomized-constraints closure, in
// registration order. Verify calls it automatically.
func (v *Verifier) Finalize() error {
	if v.finalized {
		return nil
	}
	v.finalized = true
	v.randomized = true
	defer func() { v.randomized = false }()

	for i, closure := range v.pending {
		if err := closure(v); err != nil {
			return fmt.Errorf("%w: randomized-constraints closure %d: %v", ErrGadget, i, err)
		}
	}
	return nil
}

// Verify finalizes the randomized phase and reports the constraint
// structure built up. It does not perform cryptographic proof
// verification (spec §1, out of scope); it exists so test code and
// embedding applications have a symmetric call to Prover.Prove.
func (v *Verifier) Verify(proof *Proof) error {
	if err := v.Finalize(); err != nil {
		return err
	}
	clog.Logger().Debug().Int("wires", v.nVars).Int("constraints", v.constraints).Msg("r1cs: verifier constructed circuit")
	if proof != nil && (proof.NumWires != v.nVars || proof.NumConstraints != v.constraints) {
		return fmt.Errorf("%w: verifier circuit shape (%d wires, %d constraints) does not match proof (%d wires, %d constraints)",
			ErrGadget, v.nVars, v.constraints, proof.NumWires, proof.NumConstraints)
	}
	return nil
}
