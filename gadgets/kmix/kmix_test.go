package kmix

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interstellar/spacesuit/internal/cloaktest"
	"github.com/interstellar/spacesuit/value"
)

func run(t *testing.T, vs []value.Value) ([]value.Value, error) {
	t.Helper()
	p, v := cloaktest.Pair("kmix-test")

	pv, err := cloaktest.AllocAll(p, vs, 0)
	require.NoError(t, err)
	pout, err := Mix(p, pv)
	require.NoError(t, err)
	proof, err := p.Prove()
	if err != nil {
		return nil, err
	}

	vv, err := cloaktest.AllocAll(v, nil, len(vs))
	require.NoError(t, err)
	_, err = Mix(v, vv)
	require.NoError(t, err)
	if err := v.Verify(proof); err != nil {
		return nil, err
	}

	out := make([]value.Value, len(pout))
	for i, a := range pout {
		out[i] = *a.Assignment
	}
	return out, nil
}

func TestMixConsolidatesSameFlavorRun(t *testing.T) {
	vs := []value.Value{cloaktest.Val(1, 9), cloaktest.Val(2, 9), cloaktest.Val(3, 9)}
	out, err := run(t, vs)
	require.NoError(t, err)
	require.Len(t, out, 3)
	require.True(t, out[0].IsZero())
	require.True(t, out[1].IsZero())
	require.True(t, out[2].Q.Equal(value.Positive(6)))
}

func TestMixSingleValuePassesThrough(t *testing.T) {
	vs := []value.Value{cloaktest.Val(4, 1)}
	out, err := run(t, vs)
	require.NoError(t, err)
	require.Len(t, out, 1)
	require.True(t, out[0].Q.Equal(value.Positive(4)))
}

func TestMixDistinctFlavorsPassThrough(t *testing.T) {
	vs := []value.Value{cloaktest.Val(1, 1), cloaktest.Val(2, 2)}
	out, err := run(t, vs)
	require.NoError(t, err)
	require.True(t, out[0].Q.Equal(value.Positive(1)))
	require.True(t, out[1].Q.Equal(value.Positive(2)))
}
