package r1cs

import (
	"testing"

	"github.com/consensys/gnark-crypto/ecc/bn254/fr"
	"github.com/stretchr/testify/require"
)

func scalar(x uint64) fr.Element {
	var e fr.Element
	e.SetUint64(x)
	return e
}

// buildMultiply allocates x, y and constrains x*y == want.
func buildMultiply(cs ConstraintSystem, x, y, want uint64) error {
	xVar, _, _, err := cs.Allocate(func() (q, f, qf fr.Element, err error) {
		v := scalar(x)
		return v, fr.Element{}, fr.Element{}, nil
	})
	if err != nil {
		return err
	}
	yVar, _, _, err := cs.Allocate(func() (q, f, qf fr.Element, err error) {
		v := scalar(y)
		return v, fr.Element{}, fr.Element{}, nil
	})
	if err != nil {
		return err
	}
	_, _, out := cs.Multiply(LC(xVar), LC(yVar))
	cs.Constrain(LC(out).SubConst(scalar(want)))
	return nil
}

func TestProverAcceptsSatisfiedCircuit(t *testing.T) {
	p := NewProver("test", nil)
	require.NoError(t, buildMultiply(p, 3, 4, 12))
	_, err := p.Prove()
	require.NoError(t, err)
}

func TestProverRejectsUnsatisfiedCircuit(t *testing.T) {
	p := NewProver("test", nil)
	require.NoError(t, buildMultiply(p, 3, 4, 13))
	_, err := p.Prove()
	require.ErrorIs(t, err, ErrUnsatisfiable)
}

func TestVerifierMatchesProverShape(t *testing.T) {
	p := NewProver("test", nil)
	require.NoError(t, buildMultiply(p, 3, 4, 12))
	proof, err := p.Prove()
	require.NoError(t, err)

	v := NewVerifier("test")
	require.NoError(t, buildMultiply(v, 3, 4, 12))
	require.NoError(t, v.Verify(proof))
}

func TestVerifierRejectsShapeMismatch(t *testing.T) {
	p := NewProver("test", nil)
	require.NoError(t, buildMultiply(p, 3, 4, 12))
	proof, err := p.Prove()
	require.NoError(t, err)

	v := NewVerifier("test")
	require.NoError(t, buildMultiply(v, 3, 4, 12))
	v.Constrain(Const(fr.Element{})) // extra constraint, shapes now differ
	require.ErrorIs(t, v.Verify(proof), ErrGadget)
}

func TestChallengeScalarPanicsOutsideRandomizedPhase(t *testing.T) {
	p := NewProver("test", nil)
	require.Panics(t, func() { p.ChallengeScalar("z") })
}

func TestRandomizedConstraintsRunInOrder(t *testing.T) {
	p := NewProver("test", nil)
	var order []int
	p.SpecifyRandomizedConstraints(func(rcs RandomizedConstraintSystem) error {
		order = append(order, 1)
		return nil
	})
	p.SpecifyRandomizedConstraints(func(rcs RandomizedConstraintSystem) error {
		order = append(order, 2)
		return nil
	})
	_, err := p.Prove()
	require.NoError(t, err)
	require.Equal(t, []int{1, 2}, order)
}
