// Package order contains the order aggregate: an immutable snapshot of a
// cart at the moment of checkout, plus the status state machine that governs
// its lifecycle.
//
// An order freezes the catalog prices of its lines at creation time; the
// only mutable field afterwards is the status. Status transitions follow
// a fixed lifecycle with two terminal states (completed, cancelled) from
// which no further transitions are permitted.
package order
