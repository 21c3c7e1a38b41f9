// Package mix implements the atomic 2-into-2 merging block (spec
// §4.4): given inputs A, B it allocates outputs C, D and proves either
// that C, D simply pass A, B through unchanged, or that A and B share
// a flavor and have been merged into D (with C dropped to zero).
package mix

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// ChallengeLabel is the domain separator mix draws its challenge
// under.
const ChallengeLabel = "cloak/mix"

// Cell allocates a boolean branch selector s and the two output wires
// C, D for inputs A, B, then adds the constraints proving
// pass-through-or-merge. It returns the allocated outputs so callers
// (kmix) can chain further cells onto them.
//
// The encoding combines each value's (quantity, flavor) pair into a
// single wire via a challenge w — the same trick valueshuffle uses —
// and, critically, gates *both* C and D off the same selector wire s
// instead of checking C's branch and D's branch with two independently
// satisfiable products. A prover who could pick C's branch and D's
// branch separately could, e.g., drop C to zero while also setting
// D := B (pass-through for D), which is neither a real pass-through
// (C ≠ A) nor a real merge (D ≠ A+B) and silently destroys value. Tying
// both to one boolean s closes that gap: s=1 forces C≡A and D≡B
// together; s=0 forces C≡0 and D≡ the accumulated merge together, with
// a flavor-match check gated on s=0 as well.
func Cell(cs r1cs.ConstraintSystem, a, b value.AllocatedValue) (c, d value.AllocatedValue, err error) {
	s, err := allocateSelector(cs, a, b)
	if err != nil {
		return value.AllocatedValue{}, value.AllocatedValue{}, fmt.Errorf("mix: allocating branch selector: %w", err)
	}
	c, err = allocateFrom(cs, outputC(a, b))
	if err != nil {
		return value.AllocatedValue{}, value.AllocatedValue{}, fmt.Errorf("mix: allocating C: %w", err)
	}
	d, err = allocateFrom(cs, outputD(a, b))
	if err != nil {
		return value.AllocatedValue{}, value.AllocatedValue{}, fmt.Errorf("mix: allocating D: %w", err)
	}

	cs.SpecifyRandomizedConstraints(func(rcs r1cs.RandomizedConstraintSystem) error {
		w := rcs.ChallengeScalar(ChallengeLabel)
		one := fr.One()

		pairA := pair(a, w)
		pairB := pair(b, w)
		pairC := pair(c, w)
		pairD := pair(d, w)

		// s must be boolean.
		_, _, boolOut := rcs.Multiply(r1cs.LC(s), r1cs.LC(s).SubConst(one))
		rcs.Constrain(r1cs.LC(boolOut))

		// C is gated by s: pairC = s*pairA. s=1 keeps C≡A (pass-through);
		// s=0 drops C to zero (merge).
		_, _, sPairA := rcs.Multiply(r1cs.LC(s), pairA)
		rcs.Constrain(pairC.Sub(r1cs.LC(sPairA)))

		// D is gated by the SAME s. mergeTarget is D's value in the merge
		// branch (B's quantity accumulated into A's flavor). At s=1 this
		// reduces to pairD=pairB (pass-through); at s=0, to pairD=mergeTarget
		// (merge). Reusing the s that C's constraint above is gated on —
		// rather than an independent product — is what prevents C and D
		// from landing in different branches.
		mergeTarget := pairA.Add(r1cs.LC(b.Q))
		passThroughDelta := pairB.Sub(mergeTarget)
		_, _, sDelta := rcs.Multiply(r1cs.LC(s), passThroughDelta)
		rcs.Constrain(pairD.Sub(mergeTarget).Sub(r1cs.LC(sDelta)))

		// Unless the pass-through branch was taken (s=1), A and B must
		// share a flavor.
		_, _, flavorOut := rcs.Multiply(r1cs.Const(one).Sub(r1cs.LC(s)), r1cs.LC(a.F).Sub(r1cs.LC(b.F)))
		rcs.Constrain(r1cs.LC(flavorOut))

		return nil
	})

	return c, d, nil
}

func pair(v value.AllocatedValue, w fr.Element) r1cs.LinearCombination {
	return r1cs.Scaled(v.F, w).Add(r1cs.LC(v.Q))
}

// allocateSelector allocates the branch-selector wire s: 1 for
// pass-through, 0 for merge. The prover sets it from whether A and B
// share a flavor, matching the branch outputC/outputD actually take;
// the constraints above enforce that no other value of s can satisfy
// the circuit regardless of what the prover claims.
func allocateSelector(cs r1cs.ConstraintSystem, a, b value.AllocatedValue) (value.Var, error) {
	assignment, err := selectorAssignment(a, b)()
	if err != nil {
		return 0, err
	}
	sVar, _, _, err := cs.Allocate(func() (q, f, qf fr.Element, err error) {
		if assignment == nil {
			return fr.Element{}, fr.Element{}, fr.Element{}, fmt.Errorf("%w: no assignment for prover-side allocation", r1cs.ErrAllocation)
		}
		q = *assignment
		f.SetOne()
		qf.Set(&q)
		return q, f, qf, nil
	})
	if err != nil {
		return 0, err
	}
	return sVar, nil
}

func selectorAssignment(a, b value.AllocatedValue) func() (*fr.Element, error) {
	return func() (*fr.Element, error) {
		if a.Assignment == nil || b.Assignment == nil {
			return nil, nil
		}
		var s fr.Element
		if !a.Assignment.SameFlavor(*b.Assignment) {
			s.SetOne()
		}
		return &s, nil
	}
}

// outputC computes C's witness: the merge branch drops C to zero, the
// pass-through branch keeps C≡A. The quantity is picked via
// value.Select rather than branching on which SignedInteger is real,
// per spec §9's sign-oblivious selection requirement for this
// surrounding witness arithmetic; the flavor field carries no sign and
// is chosen directly.
func outputC(a, b value.AllocatedValue) func() (*value.Value, error) {
	return func() (*value.Value, error) {
		if a.Assignment == nil || b.Assignment == nil {
			return nil, nil
		}
		merging := flavorMatch(a, b)
		q := value.Select(1-merging, a.Assignment.Q, value.Zero())
		f := a.Assignment.F
		if merging == 1 {
			f = fr.Element{}
		}
		v := value.Value{Q: q, F: f}
		return &v, nil
	}
}

// outputD computes D's witness: the merge branch accumulates A+B into
// D, the pass-through branch keeps D≡B.
func outputD(a, b value.AllocatedValue) func() (*value.Value, error) {
	return func() (*value.Value, error) {
		if a.Assignment == nil || b.Assignment == nil {
			return nil, nil
		}
		merging := flavorMatch(a, b)
		sum := a.Assignment.Q.Add(b.Assignment.Q)
		q := value.Select(merging, sum, b.Assignment.Q)
		f := b.Assignment.F
		if merging == 1 {
			f = a.Assignment.F
		}
		v := value.Value{Q: q, F: f}
		return &v, nil
	}
}

// flavorMatch returns 1 if a and b share a flavor (the merge branch
// applies), 0 otherwise. Both outputC and outputD call it so their
// witnesses agree on which branch was taken.
func flavorMatch(a, b value.AllocatedValue) int {
	if a.Assignment.SameFlavor(*b.Assignment) {
		return 1
	}
	return 0
}

func allocateFrom(cs r1cs.ConstraintSystem, compute func() (*value.Value, error)) (value.AllocatedValue, error) {
	assignment, err := compute()
	if err != nil {
		return value.AllocatedValue{}, err
	}
	qVar, fVar, _, err := cs.Allocate(func() (q, f, qf fr.Element, err error) {
		if assignment == nil {
			return fr.Element{}, fr.Element{}, fr.Element{}, fmt.Errorf("%w: no assignment for prover-side allocation", r1cs.ErrAllocation)
		}
		q = assignment.Q.Scalar()
		f = assignment.F
		qf.Mul(&q, &f)
		return q, f, qf, nil
	})
	if err != nil {
		return value.AllocatedValue{}, err
	}
	return value.AllocatedValue{Q: qVar, F: fVar, Assignment: assignment}, nil
}
