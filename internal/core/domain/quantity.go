package domain

import "fmt"

// Quantity is a representation value bound to a reference. The algebra
// decides whether and to what symbolic result quantities combine;
// numeric semantics (overflow, precision, conversion arithmetic) belong
// to the representation layer and are deliberately absent here.
type Quantity struct {
	ref   Reference
	value any
}

// Reference returns the reference the value is bound to.
func (q Quantity) Reference() Reference { return q.ref }

// Value returns the bound representation value.
func (q Quantity) Value() any { return q.value }

// String renders the quantity as "value spec[unit]".
func (q Quantity) String() string {
	return fmt.Sprintf("%v %s", q.value, q.ref)
}
