// Package paddedshuffle implements the m-to-n shuffle that tolerates
// zero-padding on whichever side is shorter (spec §4.3), the only
// place in Cloak where the two sides of a shuffle may have different
// lengths.
package paddedshuffle

import (
	"fmt"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/gadgets/valueshuffle"
	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

// Shuffle constrains ys to be a reordering of xs, allowing padding
// (zero-valued entries) to be added on whichever side is shorter.
// Because each padding slot is itself constrained to (0, 0), the
// underlying value-shuffle can only match it against an actual (0, 0)
// value on the other side: a non-zero unmatched value on either side
// makes the whole system unsatisfiable.
func Shuffle(cs r1cs.ConstraintSystem, xs, ys []value.AllocatedValue) error {
	m, n := len(xs), len(ys)
	padCount := m - n
	if padCount < 0 {
		padCount = -padCount
	}

	pads := make([]value.AllocatedValue, padCount)
	for i := range pads {
		pad, err := allocateZero(cs)
		if err != nil {
			return fmt.Errorf("paddedshuffle: allocating pad slot %d: %w", i, err)
		}
		pads[i] = pad
	}

	switch {
	case m > n:
		ys = append(append([]value.AllocatedValue{}, ys...), pads...)
	case m < n:
		xs = append(append([]value.AllocatedValue{}, xs...), pads...)
	}

	return valueshuffle.Shuffle(cs, xs, ys)
}

// allocateZero allocates a fresh (quantity, flavor) pair and
// constrains both wires to zero. The multiplication triple from
// Allocate supplies the single multiplier spec §4.3 calls for (0*0=0
// is trivially consistent); the two Constrain calls are what actually
// pin the quantity and flavor wires to zero for any prover, not just
// an honest one.
func allocateZero(cs r1cs.ConstraintSystem) (value.AllocatedValue, error) {
	// Only a prover invokes the witness closure, so only the prover's
	// pad slot ends up with an assignment.
	var assignment *value.Value
	qVar, fVar, _, err := cs.Allocate(func() (q, f, qf fr.Element, err error) {
		zero := value.ZeroValue()
		assignment = &zero
		return fr.Element{}, fr.Element{}, fr.Element{}, nil
	})
	if err != nil {
		return value.AllocatedValue{}, fmt.Errorf("%w: %v", r1cs.ErrAllocation, err)
	}
	cs.Constrain(r1cs.LC(qVar))
	cs.Constrain(r1cs.LC(fVar))
	return value.AllocatedValue{Q: qVar, F: fVar, Assignment: assignment}, nil
}
