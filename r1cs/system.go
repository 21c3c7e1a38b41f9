// Package r1cs defines the constraint-system capability Cloak's
// gadgets are written against (spec §6), and ships a reference
// prover/verifier pair that implements it well enough to construct,
// exercise, and test every gadget in this module.
//
// The capability set is intentionally narrow: allocate a
// multiplication triple, multiply two linear combinations, constrain a
// linear combination to zero, and — in a later, deferred phase —
// derive transcript-bound challenge scalars. Gadgets speak only to
// this interface; they never know whether they're running against the
// Prover or the Verifier.
package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/value"
)

// AssignFunc lazily supplies the witness for a three-wire multiplier
// allocated via ConstraintSystem.Allocate. It is called by the prover
// and never by the verifier. Implementations of gadgets that have no
// natural "q*f" pairing (i.e. most Allocate calls made for
// bookkeeping) are free to return any witness consistent with q*f=qf;
// the constraint that actually matters is supplied separately via
// Constrain.
type AssignFunc func() (q, f, qf fr.Element, err error)

// ConstraintSystem is the capability gadgets are written against.
type ConstraintSystem interface {
	// Allocate reserves three wires (v1, v2, v3) with v1*v2=v3 and
	// returns their handles. assign is invoked immediately by a prover
	// implementation and ignored by a verifier implementation.
	Allocate(assign AssignFunc) (q, f, qf value.Var, err error)

	// Multiply allocates a multiplier whose left and right inputs are
	// constrained (by construction) to equal the given linear
	// combinations, and returns (left, right, out) wire handles with
	// left*right=out.
	Multiply(a, b LinearCombination) (left, right, out value.Var)

	// Constrain asserts that lc evaluates to zero. Violating this is
	// never reported at construction time (spec §7): it only
	// surfaces when the prover attempts Prove.
	Constrain(lc LinearCombination)

	// SpecifyRandomizedConstraints registers a closure to run in a
	// later, deferred phase, after construction is done. Closures run in
	// registration order. The transcript their challenges come from
	// holds the domain label and the commitments bound through Commit;
	// wires allocated through Allocate or Multiply are not absorbed into
	// it, so challenges do not depend on those wires' values.
	SpecifyRandomizedConstraints(closure func(RandomizedConstraintSystem) error)
}

// RandomizedConstraintSystem is the capability available only inside
// a closure registered via SpecifyRandomizedConstraints.
type RandomizedConstraintSystem interface {
	ConstraintSystem

	// ChallengeScalar returns a transcript-bound scalar. label is a
	// domain separator distinct per gadget kind, so that two gadgets
	// requesting a challenge in the same randomized phase never
	// collide.
	ChallengeScalar(label string) fr.Element
}
