// Package medication provides the Medication entity: a package with an
// identity, a weight and an opaque image attachment that may be bound to at
// most one drone.
//
// Key business rules:
//   - name matches ^[a-zA-Z0-9-_]+$ and code matches ^[A-Z0-9_]+$
//   - weight is strictly positive
//   - a medication is created unassigned and, once assigned to a drone, is never rebound
package medication
