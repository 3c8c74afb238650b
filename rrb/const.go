package rrb

// B and BL are the inner and leaf branching exponents. spec.md permits
// collapsing them to a single exponent; this engine takes that
// simplification, so both inner and leaf fan-out is 1<<B.
const (
	B        = 5
	BL       = B
	Branches = 1 << B
	mask     = Branches - 1
)
