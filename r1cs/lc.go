package r1cs

import (
	"github.com/consensys/gnark-crypto/ecc/bn254/fr"

	"github.com/interstellar/spacesuit/value"
)

// Term is a single coefficient*variable summand of a LinearCombination.
type Term struct {
	Variable value.Var
	Coeff    fr.Element
}

// LinearCombination is a sum of weighted wires plus a constant,
// exactly the `lc_a`/`lc_b` inputs to ConstraintSystem.Multiply and the
// argument to ConstraintSystem.Constrain.
type LinearCombination struct {
	Terms    []Term
	Constant fr.Element
}

// LC builds the trivial linear combination "1 * v".
func LC(v value.Var) LinearCombination {
	one := fr.One()
	return LinearCombination{Terms: []Term{{Variable: v, Coeff: one}}}
}

// Const builds a linear combination that is just a constant.
func Const(c fr.Element) LinearCombination {
	return LinearCombination{Constant: c}
}

// ConstU64 builds a linear combination from an unsigned constant.
func ConstU64(c uint64) LinearCombination {
	var e fr.Element
	e.SetUint64(c)
	return Const(e)
}

// Scaled returns c*v as a linear combination.
func Scaled(v value.Var, c fr.Element) LinearCombination {
	return LinearCombination{Terms: []Term{{Variable: v, Coeff: c}}}
}

// Add returns lc + o.
func (lc LinearCombination) Add(o LinearCombination) LinearCombination {
	terms := make([]Term, 0, len(lc.Terms)+len(o.Terms))
	terms = append(terms, lc.Terms...)
	terms = append(terms, o.Terms...)
	var c fr.Element
	c.Add(&lc.Constant, &o.Constant)
	return LinearCombination{Terms: terms, Constant: c}
}

// Sub returns lc - o.
func (lc LinearCombination) Sub(o LinearCombination) LinearCombination {
	return lc.Add(o.Neg())
}

// Neg returns -lc.
func (lc LinearCombination) Neg() LinearCombination {
	terms := make([]Term, len(lc.Terms))
	for i, t := range lc.Terms {
		var c fr.Element
		c.Neg(&t.Coeff)
		terms[i] = Term{Variable: t.Variable, Coeff: c}
	}
	var c fr.Element
	c.Neg(&lc.Constant)
	return LinearCombination{Terms: terms, Constant: c}
}

// MulScalar returns lc scaled by c.
func (lc LinearCombination) MulScalar(c fr.Element) LinearCombination {
	terms := make([]Term, len(lc.Terms))
	for i, t := range lc.Terms {
		var nc fr.Element
		nc.Mul(&t.Coeff, &c)
		terms[i] = Term{Variable: t.Variable, Coeff: nc}
	}
	var constant fr.Element
	constant.Mul(&lc.Constant, &c)
	return LinearCombination{Terms: terms, Constant: constant}
}

// AddConst returns lc + c.
func (lc LinearCombination) AddConst(c fr.Element) LinearCombination {
	var constant fr.Element
	constant.Add(&lc.Constant, &c)
	return LinearCombination{Terms: lc.Terms, Constant: constant}
}

// SubConst returns lc - c.
func (lc LinearCombination) SubConst(c fr.Element) LinearCombination {
	var neg fr.Element
	neg.Neg(&c)
	return lc.AddConst(neg)
}

// evaluate computes the value of lc given a witness table indexed by
// value.Var. It panics if a referenced variable is out of range, which
// would be a bug in a gadget, not a runtime input error.
func (lc LinearCombination) evaluate(witness []fr.Element) fr.Element {
	acc := lc.Constant
	for _, t := range lc.Terms {
		var term fr.Element
		term.Mul(&t.Coeff, &witness[t.Variable])
		acc.Add(&acc, &term)
	}
	return acc
}
