// Package merge implements the merge gadget (spec §4.6): value-shuffle
// (grouping by flavor) composed with k-mix. Merge itself only performs
// the allocation and k-mix halves of that composition; the top-level
// cloak driver is responsible for proving groupedIn is a permutation
// of the caller's inputs via gadgets/valueshuffle, since that proof
// needs to reference the caller's original wires directly.
package merge

import (
	"fmt"
	"sort"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/gadgets/kmix"
	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// Merge allocates a flavor-grouped copy of inputs (groupedIn) and runs
// k-mix over it, returning both groupedIn and the consolidated
// mergedOut. Callers must separately constrain groupedIn to be a
// permutation of inputs (see gadgets/valueshuffle).
func Merge(cs r1cs.ConstraintSystem, inputs []value.AllocatedValue) (groupedIn, mergedOut []value.AllocatedValue, err error) {
	order := groupByFlavor(inputs)

	groupedIn = make([]value.AllocatedValue, len(order))
	for i, src := range order {
		gv, err := allocateCopy(cs, src)
		if err != nil {
			return nil, nil, fmt.Errorf("merge: allocating grouped slot %d: %w", i, err)
		}
		groupedIn[i] = gv
	}

	mergedOut, err = kmix.Mix(cs, groupedIn)
	if err != nil {
		return nil, nil, fmt.Errorf("merge: %w", err)
	}
	return groupedIn, mergedOut, nil
}

// groupByFlavor returns inputs reordered so that values sharing a
// flavor are adjacent. On the verifier side (no assignments), the
// order is irrelevant — only the count is used — so inputs is returned
// unchanged.
func groupByFlavor(inputs []value.AllocatedValue) []value.AllocatedValue {
	order := append([]value.AllocatedValue{}, inputs...)
	for _, v := range order {
		if v.Assignment == nil {
			return order
		}
	}
	sort.SliceStable(order, func(i, j int) bool {
		fi := order[i].Assignment.F.Bytes()
		fj := order[j].Assignment.F.Bytes()
		for b := range fi {
			if fi[b] != fj[b] {
				return fi[b] < fj[b]
			}
		}
		return false
	})
	return order
}

func allocateCopy(cs r1cs.ConstraintSystem, src value.AllocatedValue) (value.AllocatedValue, error) {
	assignment := src.Assignment
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
