// Package kmix implements the k-mix gadget (spec §4.5): a chain of
// k-1 mix cells that consolidates a flavor-grouped run of k values
// into their per-flavor totals.
package kmix

import (
	"fmt"

	"github.com/interstellar/spacesuit/gadgets/mix"
	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// Mix threads vs through k-1 mix.Cell calls, accumulator-style: cell i
// takes the previous cell's accumulator output as its left input and
// vs[i] as its right input. It returns k outputs for the k-1 cells, in
// the order spec §4.5 describes: outs[i] holds the i-th cell's C output
// (zero where that cell merged, its left input where it passed
// through) for i < k-1, and outs[k-1] holds the final accumulator.
//
// Soundness of the whole chain reduces to soundness of each cell (spec
// §4.4): a cell only merges when its two inputs share a flavor, so the
// chain can only consolidate values that are already grouped by flavor
// when handed to Mix. Grouping is the caller's (merge's) responsibility,
// established via a value-shuffle beforehand.
func Mix(cs r1cs.ConstraintSystem, vs []value.AllocatedValue) ([]value.AllocatedValue, error) {
	k := len(vs)
	if k == 0 {
		return nil, nil
	}
	if k == 1 {
		return []value.AllocatedValue{vs[0]}, nil
	}

	outs := make([]value.AllocatedValue, 0, k)
	acc := vs[0]
	for i := 1; i < k; i++ {
		c, d, err := mix.Cell(cs, acc, vs[i])
		if err != nil {
			return nil, fmt.Errorf("kmix: cell %d: %w", i-1, err)
		}
		outs = append(outs, c)
		acc = d
	}
	outs = append(outs, acc)
	return outs, nil
}
