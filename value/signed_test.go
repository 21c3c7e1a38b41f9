package value

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSignedIntegerAdd(t *testing.T) {
	cases := []struct {
		a, b, want SignedInteger
	}{
		{Positive(3), Positive(4), Positive(7)},
		{Positive(3), Negative(4), Negative(1)},
		{Negative(3), Positive(4), Positive(1)},
		{Negative(3), Negative(4), Negative(7)},
		{Positive(5), Negative(5), Zero()},
	}
	for _, c := range cases {
		got := c.a.Add(c.b)
		require.True(t, got.Equal(c.want), "%s + %s = %s, want %s", c.a, c.b, got, c.want)
	}
}

func TestSignedIntegerAddOverflowPanics(t *testing.T) {
	require.Panics(t, func() {
		Positive(1<<63 + 1).Add(Positive(1 << 63))
	})
}

func TestSignedIntegerScalar(t *testing.T) {
	pos := Positive(42).Scalar()
	neg := Negative(42).Scalar()
	var sum = pos
	sum.Add(&sum, &neg)
	require.True(t, sum.IsZero(), "x + (-x) must vanish in the scalar field")
}

func TestSignedIntegerToUint64(t *testing.T) {
	v, ok := Positive(7).ToUint64()
	require.True(t, ok)
	require.Equal(t, uint64(7), v)

	_, ok = Negative(7).ToUint64()
	require.False(t, ok)
}

func TestSelectIsConstantTimeCorrect(t *testing.T) {
	a, b := Positive(11), Negative(22)
	require.True(t, Select(1, a, b).Equal(a))
	require.True(t, Select(0, a, b).Equal(b))
}

func TestNegativeZeroNormalizes(t *testing.T) {
	require.False(t, Negative(0).IsNegative())
	require.True(t, Negative(0).Equal(Zero()))
}
