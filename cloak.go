// Package spacesuit implements Cloak, the confidential-asset
// transaction gadget: it proves that a set of input values and a set
// of output values carry the same total quantity of each flavor
// (values of one flavor may be merged or split), without revealing
// which input funds which output.
package spacesuit

import (
	"fmt"

	"github.com/interstellar/spacesuit/gadgets/merge"
	"github.com/interstellar/spacesuit/gadgets/paddedshuffle"
	"github.com/interstellar/spacesuit/gadgets/rangeproof"
	"github.com/interstellar/spacesuit/gadgets/split"
	"github.com/interstellar/spacesuit/gadgets/valueshuffle"
	"github.com/interstellar/spacesuit/internal/clog"
	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// Cloak constrains cs so that outputs is a valid rearrangement of
// inputs: every output quantity is non-negative and below 2^64, and
// the multiset of (quantity, flavor) pairs is conserved across the
// merge/split boundary. See spec §4.9.
func Cloak(cs r1cs.ConstraintSystem, inputs, outputs []value.AllocatedValue) error {
	log := clog.Logger()
	log.Debug().Int("inputs", len(inputs)).Int("outputs", len(outputs)).Msg("cloak: building constraints")

	mergeIn, mergeOut, err := merge.Merge(cs, inputs)
	if err != nil {
		return fmt.Errorf("cloak: merge: %w", err)
	}

	splitOut, splitIn, err := split.Split(cs, outputs)
	if err != nil {
		return fmt.Errorf("cloak: split: %w", err)
	}

	// Shuffle 1: mergeIn is a reordering of inputs, grouped by flavor.
	if err := valueshuffle.Shuffle(cs, inputs, mergeIn); err != nil {
		return fmt.Errorf("cloak: shuffling inputs against merge: %w", err)
	}

	// Shuffle 2: splitIn is a reordering of mergeOut, up to zero padding.
	if err := paddedshuffle.Shuffle(cs, mergeOut, splitIn); err != nil {
		return fmt.Errorf("cloak: shuffling merge totals against split totals: %w", err)
	}

	// Shuffle 3: splitOut is a reordering of outputs, grouped by flavor.
	if err := valueshuffle.Shuffle(cs, splitOut, outputs); err != nil {
		return fmt.Errorf("cloak: shuffling split against outputs: %w", err)
	}

	// Every declared output quantity must lie in [0, 2^64).
	for i, output := range outputs {
		if err := rangeproof.Prove(cs, output.Quantity()); err != nil {
			return fmt.Errorf("cloak: range-proof for output %d: %w", i, err)
		}
	}

	return nil
}
