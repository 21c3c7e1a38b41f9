package r1cs

import (
	"fmt"
	"io"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/internal/clog"
	"github.com/interstellar/spacesuit/value"
)

// Proof is a trivial success marker returned by Prover.Prove. It is
// not a cryptographic proof: the real Bulletproofs inner-product
// compression, its serialization, and the generator-vector management
// it needs are out of scope for this module (spec §1); Prove's job
// here is to report whether the witness this Prover accumulated
// satisfies every constraint gadgets registered against it, which is
// exactly the signal the test suite needs.
type Proof struct {
	NumWires       int
	NumConstraints int
}

// Prover is the witness-carrying ConstraintSystem implementation.
// Gadgets allocate wires and constraints against it exactly as they
// would against a Verifier; the only behavioral difference is that a
// Prover actually evaluates everything, so it can report
// unsatisfiability at Prove time.
type Prover struct {
	transcript  *Transcript
	rng         io.Reader
	witness     []fr.Element
	constraints []LinearCombination
	pending     []func(RandomizedConstraintSystem) error
	finalized   bool
	randomized  bool
}

// NewProver starts a Prover whose transcript is domain-separated by
// label. rng supplies blinding factors for Commit; it is never
// consulted once proving starts.
func NewProver(label string, rng io.Reader) *Prover {
	return &Prover{
		transcript: NewTranscript(label),
		rng:        rng,
	}
}

func (p *Prover) pushWitness(v fr.Element) value.Var {
	p.witness = append(p.witness, v)
	return value.Var(len(p.witness) - 1)
}

// Allocate implements ConstraintSystem.
func (p *Prover) Allocate(assign AssignFunc) (value.Var, value.Var, value.Var, error) {
	if assign == nil {
		return 0, 0, 0, fmt.Errorf("%w: nil witness closure", ErrAllocation)
	}
	q, f, qf, err := assign()
	if err != nil {
		return 0, 0, 0, fmt.Errorf("%w: %v", ErrAllocation, err)
	}
	var check fr.Element
	check.Mul(&q, &f)
	if !check.Equal(&qf) {
		return 0, 0, 0, fmt.Errorf("%w: allocate witness violates q*f=qf", ErrAllocation)
	}
	return p.pushWitness(q), p.pushWitness(f), p.pushWitness(qf), nil
}

// Multiply implements ConstraintSystem.
func (p *Prover) Multiply(a, b LinearCombination) (value.Var, value.Var, value.Var) {
	la := a.evaluate(p.witness)
	lb := b.evaluate(p.witness)
	var lc fr.Element
	lc.Mul(&la, &lb)
	return p.pushWitness(la), p.pushWitness(lb), p.pushWitness(lc)
}

// Constrain implements ConstraintSystem. The check is deferred to
// Prove; spec §7 requires that unsatisfiability never be raised by a
// gadget directly.
func (p *Prover) Constrain(lc LinearCombination) {
	p.constraints = append(p.constraints, lc)
}

// SpecifyRandomizedConstraints implements ConstraintSystem.
func (p *Prover) SpecifyRandomizedConstraints(closure func(RandomizedConstraintSystem) error) {
	p.pending = append(p.pending, closure)
}

// ChallengeScalar implements RandomizedConstraintSystem. It panics if
// called outside the deferred phase run by Finalize, since no
// transcript state would be well-defined yet (wires allocated after
// the challenge is drawn must not influence it).
func (p *Prover) ChallengeScalar(label string) fr.Element {
	if !p.randomized {
		panic("r1cs: ChallengeScalar called outside the randomized-constraints phase")
	}
	return p.transcript.ChallengeScalar(label)
}

// Finalize runs every registered randomized-constraints closure, in
// registration order, against a RandomizedConstraintSystem view of
// this Prover. It is idempotent; Prove calls it automatically.
func (p *Prover) Finalize() error {
	if p.finalized {
		return nil
	}
	p.finalized = true
	p.randomized = true
	defer func() { p.randomized = false }()

	clog.Logger().Debug().Int("closures", len(p.pending)).Msg("r1cs: running randomized-constraints phase")
	for i, closure := range p.pending {
		if err := closure(p); err != nil {
			return fmt.Errorf("%w: randomized-constraints closure %d: %v", ErrGadget, i, err)
		}
	}
	return nil
}

// Prove finalizes the randomized phase (if not already done) and
// checks every recorded constraint against the accumulated witness.
func (p *Prover) Prove() (*Proof, error) {
	if err := p.Finalize(); err != nil {
		return nil, err
	}
	for i, lc := range p.constraints {
		v := lc.evaluate(p.witness)
		if !v.IsZero() {
			clog.Logger().Debug().Int("constraint", i).Msg("r1cs: unsatisfiable")
			return nil, fmt.Errorf("%w: constraint %d", ErrUnsatisfiable, i)
		}
	}
	proof := &Proof{NumWires: len(p.witness), NumConstraints: len(p.constraints)}
	clog.Logger().Debug().Int("wires", proof.NumWires).Int("constraints", proof.NumConstraints).Msg("r1cs: proved")
	return proof, nil
}

// Assignment returns the witness value currently bound to v. It is not
// part of ConstraintSystem, so gadgets do not call it; they compute
// assignments from AllocatedValue.Assignment instead. It panics on an
// out-of-range Var, which indicates a bug in the caller, not a runtime
// condition.
func (p *Prover) Assignment(v value.Var) fr.Element {
	return p.witness[v]
}
