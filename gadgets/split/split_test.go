package split

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interstellar/spacesuit/internal/cloaktest"
	"github.com/interstellar/spacesuit/value"
)

func run(t *testing.T, outputs []value.Value) ([]value.Value, []value.Value, error) {
	t.Helper()
	p, v := cloaktest.Pair("split-test")

	pout, err := cloaktest.AllocAll(p, outputs, 0)
	require.NoError(t, err)
	psplitOut, psplitIn, err := Split(p, pout)
	require.NoError(t, err)
	proof, err := p.Prove()
	if err != nil {
		return nil, nil, err
	}

	vout, err := cloaktest.AllocAll(v, nil, len(outputs))
	require.NoError(t, err)
	_, _, err = Split(v, vout)
	require.NoError(t, err)
	if err := v.Verify(proof); err != nil {
		return nil, nil, err
	}

	splitOut := make([]value.Value, len(psplitOut))
	for i, a := range psplitOut {
		splitOut[i] = *a.Assignment
	}
	splitIn := make([]value.Value, len(psplitIn))
	for i, a := range psplitIn {
		splitIn[i] = *a.Assignment
	}
	return splitOut, splitIn, nil
}

func TestSplitExpandsSingleFlavorTotal(t *testing.T) {
	outputs := []value.Value{cloaktest.Val(3, 7), cloaktest.Val(4, 7)}
	_, splitIn, err := run(t, outputs)
	require.NoError(t, err)
	require.True(t, splitIn[0].Q.Equal(value.Positive(7)))
}

func TestSplitDistinctFlavorsUnchanged(t *testing.T) {
	outputs := []value.Value{cloaktest.Val(3, 1), cloaktest.Val(4, 2)}
	splitOut, _, err := run(t, outputs)
	require.NoError(t, err)

	// splitOut is only guaranteed to be a permutation of outputs (the
	// top-level cloak driver proves as much via value-shuffle), not an
	// order-preserving copy, so compare as multisets of quantities.
	var gotQuantities []value.SignedInteger
	for _, v := range splitOut {
		gotQuantities = append(gotQuantities, v.Q)
	}
	require.ElementsMatch(t, []value.SignedInteger{value.Positive(3), value.Positive(4)}, gotQuantities)
}
