package order

import (
	"errors"
	"time"

	"kitchen/internal/core/domain/model/kernel"
	"kitchen/internal/pkg/errs"
)

var (
	// ErrOrderIsNotConstructed is returned when an Order instance was not
	// created through the NewOrder or RestoreOrder factory methods.
	ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder or RestoreOrder")

	// ErrOrderHasNoLines is returned when an order would be created without
	// a single line. An order can never exist with zero lines.
	ErrOrderHasNoLines = errs.NewValueIsRequiredError("order lines")
)

// Order is the aggregate root for a placed order.
//
// Order maintains these invariants:
//   - It has at least one line; lines are immutable after creation.
//   - The total always equals the sum of line subtotals at creation time
//     and never changes, even when catalog prices later change.
//   - Status transitions follow the lifecycle defined by Status.
//   - Instances are only created through NewOrder or RestoreOrder.
type Order struct {
	id        kernel.UUID
	userID    kernel.UUID
	lines     []Line
	total     kernel.Price
	status    Status
	createdAt time.Time

	isConstructed bool
}

// NewOrder creates an order in Pending status from frozen lines.
// The total is computed here, once, as the sum of line subtotals — callers
// never pass the total in, so the total/lines invariant holds by
// construction.
func NewOrder(id kernel.UUID, userID kernel.UUID, lines []Line, createdAt time.Time) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrOrderHasNoLines
	}

	var total kernel.Price
	for i, line := range lines {
		if err := line.Validate(); err != nil {
			return nil, err
		}
		if i == 0 {
			total = line.Subtotal()
			continue
		}
		total = total.Add(line.Subtotal())
	}

	return &Order{
		id:            id,
		userID:        userID,
		lines:         lines,
		total:         total,
		status:        Pending,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// RestoreOrder reconstructs an order from persistence. The stored total is
// kept as-is rather than recomputed: it was frozen at creation and is the
// value of record.
func RestoreOrder(
	id kernel.UUID,
	userID kernel.UUID,
	lines []Line,
	total kernel.Price,
	status Status,
	createdAt time.Time,
) (*Order, error) {
	if err := id.Validate(); err != nil {
		return nil, err
	}
	if err := userID.Validate(); err != nil {
		return nil, err
	}
	if len(lines) == 0 {
		return nil, ErrOrderHasNoLines
	}
	if err := total.Validate(); err != nil {
		return nil, err
	}
	if err := status.Validate(); err != nil {
		return nil, err
	}

	return &Order{
		id:            id,
		userID:        userID,
		lines:         lines,
		total:         total,
		status:        status,
		createdAt:     createdAt,
		isConstructed: true,
	}, nil
}

// Validate ensures the Order instance was properly constructed.
// Called when reconstructing orders from persistence and before writes.
func (o *Order) Validate() error {
	if o == nil || !o.isConstructed {
		return ErrOrderIsNotConstructed
	}
	return nil
}

// IsEqual compares two orders by their unique identifiers.
func (o *Order) IsEqual(other *Order) bool {
	return other != nil && o.id.IsEqual(other.id)
}

// ID returns the order's unique identifier.
func (o *Order) ID() kernel.UUID {
	return o.id
}

// UserID returns the identifier of the user who placed the order.
func (o *Order) UserID() kernel.UUID {
	return o.userID
}

// Lines returns a copy of the order's frozen lines.
func (o *Order) Lines() []Line {
	lines := make([]Line, len(o.lines))
	copy(lines, o.lines)
	return lines
}

// Total returns the total price frozen at creation time.
func (o *Order) Total() kernel.Price {
	return o.total
}

// Status returns the current lifecycle status.
func (o *Order) Status() Status {
	return o.status
}

// CreatedAt returns the order's creation timestamp.
func (o *Order) CreatedAt() time.Time {
	return o.createdAt
}

// IsOwnedBy reports whether the order belongs to the given user.
func (o *Order) IsOwnedBy(userID kernel.UUID) bool {
	return o.userID.IsEqual(userID)
}

// UpdateStatus moves the order to next. This is the staff operation: any
// non-terminal order may move to any valid status, including skipping
// stages. Lines and total are untouched; the transition is metadata-only.
//
// Returns ErrOrderAlreadyTerminal once the order is completed or cancelled.
func (o *Order) UpdateStatus(next Status) error {
	newStatus, err := o.status.UpdateTo(next)
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}

// Cancel moves the order to Cancelled. This is the customer operation and
// is permitted while the order is Pending exclusively.
//
// Returns ErrOrderNotCancellable for any other status; the error names the
// order's current status.
func (o *Order) Cancel() error {
	newStatus, err := o.status.Cancel()
	if err != nil {
		return err
	}

	o.status = newStatus
	return nil
}
