// Package split implements the split gadget (spec §4.7): the mirror of
// merge, built by reversing the declared outputs, running merge, and
// reversing the results back.
package split

import (
	"fmt"

	"github.com/interstellar/spacesuit/gadgets/merge"
	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// Split allocates splitOut (a flavor-grouped expansion that a caller
// proves, via gadgets/valueshuffle, is a permutation of outputs) and
// splitIn (the consolidated per-flavor totals that a caller compares,
// via gadgets/paddedshuffle, against merge's mergedOut).
func Split(cs r1cs.ConstraintSystem, outputs []value.AllocatedValue) (splitOut, splitIn []value.AllocatedValue, err error) {
	reversed := reverse(outputs)

	groupedRev, mergedRev, err := merge.Merge(cs, reversed)
	if err != nil {
		return nil, nil, fmt.Errorf("split: %w", err)
	}

	return reverse(groupedRev), reverse(mergedRev), nil
}

func reverse(vs []value.AllocatedValue) []value.AllocatedValue {
	out := make([]value.AllocatedValue, len(vs))
	for i, v := range vs {
		out[len(vs)-1-i] = v
	}
	return out
}
