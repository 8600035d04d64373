package order

import (
	"errors"
	"fmt"

	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderAlreadyTerminal is returned when a status change is requested
	// for an order that has reached a terminal state.
	ErrOrderAlreadyTerminal = errors.New("cannot update a terminal order")

	// ErrOrderNotCancellable is returned when cancellation is requested for
	// an order that is no longer pending.
	ErrOrderNotCancellable = errors.New("only a pending order can be cancelled")
)

// Status represents the lifecycle state of an order.
//
// State transitions:
//
//	pending ──> confirmed ──> preparing ──> out_for_delivery ──> completed
//	   │
//	   └──> cancelled
//
// completed and cancelled are terminal. Staff may move an order from any
// non-terminal status to any other status, including skipping stages; only
// the terminal guard is enforced. Cancellation is reachable from pending
// exclusively.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the initial status assigned when an order is placed.
	// Only pending orders can be cancelled by the customer.
	Pending

	// Confirmed indicates the kitchen has accepted the order.
	Confirmed

	// Preparing indicates the order is being prepared.
	Preparing

	// OutForDelivery indicates the order has left the kitchen.
	OutForDelivery

	// Completed indicates the order has been delivered.
	// This is a terminal state with no further transitions allowed.
	Completed

	// Cancelled indicates the customer cancelled the order while pending.
	// This is a terminal state with no further transitions allowed.
	Cancelled
)

func getStatusStrings() map[Status]string {
	return map[Status]string{
		Unknown:        "unknown",
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

func getValidStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:        "pending",
		Confirmed:      "confirmed",
		Preparing:      "preparing",
		OutForDelivery: "out_for_delivery",
		Completed:      "completed",
		Cancelled:      "cancelled",
	}
}

// StatusFromString parses the wire representation of a status
// ("pending", "confirmed", "preparing", "out_for_delivery", "completed",
// "cancelled"). Returns an error for any other input.
func StatusFromString(s string) (Status, error) {
	for status, str := range getValidStatusStrings() {
		if str == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status",
		fmt.Errorf("%q is not a valid status", s))
}

// Validate checks that the Status is one of the six known statuses.
// Unknown (0) and out-of-range values are invalid.
func (s Status) Validate() error {
	if _, ok := getValidStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status",
			fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire representation of the status.
// Implements fmt.Stringer and is safe on any value, including invalid ones.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status permits no further transitions.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// UpdateTo transitions to next, enforcing only the terminal guard: any
// non-terminal status may move to any valid status. Returns
// ErrOrderAlreadyTerminal when the current status is terminal, or a
// validation error when next is not a known status.
func (s Status) UpdateTo(next Status) (Status, error) {
	if err := next.Validate(); err != nil {
		return Unknown, err
	}

	if s.IsTerminal() {
		return Unknown, fmt.Errorf("%w: order is already %s", ErrOrderAlreadyTerminal, s)
	}

	return next, nil
}

// Cancel transitions to Cancelled. Permitted from Pending exclusively;
// any other status returns ErrOrderNotCancellable naming the current status.
func (s Status) Cancel() (Status, error) {
	if s != Pending {
		return Unknown, fmt.Errorf("%w: order is %s", ErrOrderNotCancellable, s)
	}

	return Cancelled, nil
}
