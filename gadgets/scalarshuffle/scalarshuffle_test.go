package scalarshuffle

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/interstellar/spacesuit/internal/cloaktest"
	"github.com/interstellar/spacesuit/r1cs"
	"github.com/interstellar/spacesuit/value"
)

func allocScalars(t *testing.T, cs r1cs.ConstraintSystem, xs []uint64) []value.Var {
	t.Helper()
	vars := make([]value.Var, len(xs))
	for i, x := range xs {
		v, err := cloaktest.Alloc(cs, &value.Value{Q: value.Positive(x)})
		require.NoError(t, err)
		vars[i] = v.Q
	}
	return vars
}

func run(t *testing.T, xs, ys []uint64) error {
	t.Helper()
	p, v := cloaktest.Pair("scalarshuffle-test")

	px := allocScalars(t, p, xs)
	py := allocScalars(t, p, ys)
	require.NoError(t, Shuffle(p, px, py))
	proof, err := p.Prove()
	if err != nil {
		return err
	}

	vx := allocScalars(t, v, xs)
	vy := allocScalars(t, v, ys)
	require.NoError(t, Shuffle(v, vx, vy))
	return v.Verify(proof)
}

func TestShuffleAcceptsPermutation(t *testing.T) {
	require.NoError(t, run(t, []uint64{1, 2, 3, 4}, []uint64{4, 1, 3, 2}))
}

func TestShuffleAcceptsIdentity(t *testing.T) {
	require.NoError(t, run(t, []uint64{7, 8}, []uint64{7, 8}))
}

func TestShuffleRejectsNonPermutation(t *testing.T) {
	require.Error(t, run(t, []uint64{1, 2, 3}, []uint64{1, 2, 5}))
}

func TestShuffleRejectsLengthMismatch(t *testing.T) {
	p, _ := cloaktest.Pair("scalarshuffle-test")
	px := allocScalars(t, p, []uint64{1, 2})
	py := allocScalars(t, p, []uint64{1, 2, 3})
	require.ErrorIs(t, Shuffle(p, px, py), r1cs.ErrGadget)
}

func TestShuffleSingleElement(t *testing.T) {
	require.NoError(t, run(t, []uint64{9}, []uint64{9}))
	require.Error(t, run(t, []uint64{9}, []uint64{10}))
}

func TestShuffleEmpty(t *testing.T) {
	require.NoError(t, run(t, nil, nil))
}
