package r1cs

import "errors"

// The three error kinds spec §7 names. ErrAllocation and ErrGadget are
// returned synchronously by gadget construction; ErrUnsatisfiable is
// only ever returned by Prover.Prove, never by Constrain or any
// gadget, since unsatisfiability is a property of the whole witness,
// not of any single constraint in isolation.
var (
	ErrAllocation    = errors.New("r1cs: allocation failed")
	ErrGadget        = errors.New("r1cs: gadget invariant violated")
	ErrUnsatisfiable = errors.New("r1cs: constraints unsatisfiable")
)
