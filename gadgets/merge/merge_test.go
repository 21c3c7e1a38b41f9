package merge

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interstellar/spacesuit/internal/cloaktest"
	"github.com/interstellar/spacesuit/value"
)

func run(t *testing.T, vs []value.Value) ([]value.Value, []value.Value, error) {
	t.Helper()
	p, v := cloaktest.Pair("merge-test")

	pv, err := cloaktest.AllocAll(p, vs, 0)
	require.NoError(t, err)
	pgrouped, pmerged, err := Merge(p, pv)
	require.NoError(t, err)
	proof, err := p.Prove()
	if err != nil {
		return nil, nil, err
	}

	vv, err := cloaktest.AllocAll(v, nil, len(vs))
	require.NoError(t, err)
	_, _, err = Merge(v, vv)
	require.NoError(t, err)
	if err := v.Verify(proof); err != nil {
		return nil, nil, err
	}

	grouped := make([]value.Value, len(pgrouped))
	for i, a := range pgrouped {
		grouped[i] = *a.Assignment
	}
	merged := make([]value.Value, len(pmerged))
	for i, a := range pmerged {
		merged[i] = *a.Assignment
	}
	return grouped, merged, nil
}

func TestMergeConsolidatesInterleavedFlavors(t *testing.T) {
	vs := []value.Value{cloaktest.Val(1, 1), cloaktest.Val(4, 2), cloaktest.Val(2, 1)}
	_, merged, err := run(t, vs)
	require.NoError(t, err)

	var total int
	for _, m := range merged {
		if !m.IsZero() {
			total++
		}
	}
	require.Equal(t, 2, total, "two distinct flavors should yield two non-zero totals")
}

func TestMergeSingleFlavor(t *testing.T) {
	vs := []value.Value{cloaktest.Val(3, 1), cloaktest.Val(4, 1), cloaktest.Val(5, 1)}
	_, merged, err := run(t, vs)
	require.NoError(t, err)
	require.True(t, merged[len(merged)-1].Q.Equal(value.Positive(12)))
}
