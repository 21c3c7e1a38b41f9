package rangeproof

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interstellar/spacesuit/internal/cloaktest"
	"github.com/interstellar/spacesuit/value"
)

func run(t *testing.T, q value.SignedInteger) error {
	t.Helper()
	p, v := cloaktest.Pair("rangeproof-test")

	val := value.Value{Q: q}
	pv, err := cloaktest.Alloc(p, &val)
	require.NoError(t, err)
	require.NoError(t, Prove(p, pv.Quantity()))
	proof, err := p.Prove()
	if err != nil {
		return err
	}

	vv, err := cloaktest.Alloc(v, nil)
	require.NoError(t, err)
	require.NoError(t, Prove(v, vv.Quantity()))
	return v.Verify(proof)
}

func TestRangeProofAcceptsInRangeQuantity(t *testing.T) {
	require.NoError(t, run(t, value.Positive(42)))
}

func TestRangeProofAcceptsZero(t *testing.T) {
	require.NoError(t, run(t, value.Zero()))
}

func TestRangeProofAcceptsMaxUint64(t *testing.T) {
	require.NoError(t, run(t, value.Positive(^uint64(0))))
}

func TestRangeProofRejectsNegativeQuantity(t *testing.T) {
	require.Error(t, run(t, value.Negative(1)))
}
