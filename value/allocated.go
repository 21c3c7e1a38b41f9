package value

// Var is an opaque handle to a wire in a constraint system. It carries
// no meaning on its own; the concrete r1cs.ConstraintSystem
// implementation interprets it as an index into its witness/variable
// table. Var lives in this package (rather than in r1cs) so that both
// the data model and the constraint-system capability can depend on it
// without an import cycle between them.
type Var int

// AllocatedValue pairs a quantity wire and a flavor wire with an
// optional plaintext assignment. The prover always carries Assignment;
// the verifier never does. Gadgets must not branch on whether
// Assignment is present except when computing a fresh witness for an
// intermediate wire they allocate themselves.
type AllocatedValue struct {
	Q          Var
	F          Var
	Assignment *Value
}

// Quantity projects the quantity half of v into an AllocatedQuantity,
// for gadgets (like range-proof) that don't care about flavor.
func (v AllocatedValue) Quantity() AllocatedQuantity {
	var q *SignedInteger
	if v.Assignment != nil {
		cp := v.Assignment.Q
		q = &cp
	}
	return AllocatedQuantity{Variable: v.Q, Assignment: q}
}

// AllocatedQuantity is a single variable plus an optional plaintext
// assignment, used where flavor is irrelevant.
type AllocatedQuantity struct {
	Variable   Var
	Assignment *SignedInteger
}
