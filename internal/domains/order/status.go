// Package order holds the types shared by the kitchen and bar order domains:
// statuses and their progression, guest types and billing types.
package order

import (
	"fmt"

	"frontdesk/shared/failure"
)

type Status string

const (
	StatusPending   Status = "pending"
	StatusPreparing Status = "preparing"
	StatusReady     Status = "ready"
	StatusServed    Status = "served"
	StatusDelivered Status = "delivered"
	StatusCompleted Status = "completed"
)

type GuestType string

const (
	GuestTypeLodged GuestType = "lodged"
	GuestTypeWalkIn GuestType = "walk_in"
)

type BillingType string

const (
	BillingTypeRoomBill BillingType = "room_bill"
	BillingTypeSeparate BillingType = "separate"
)

// Flow is the strictly forward, one-step-at-a-time status progression of an
// order station. The two stations differ only in the hand-off step: the bar
// serves, the kitchen delivers.
type Flow map[Status]Status

var (
	BarFlow = Flow{
		StatusPending:   StatusPreparing,
		StatusPreparing: StatusReady,
		StatusReady:     StatusServed,
		StatusServed:    StatusCompleted,
	}

	KitchenFlow = Flow{
		StatusPending:   StatusPreparing,
		StatusPreparing: StatusReady,
		StatusReady:     StatusDelivered,
		StatusDelivered: StatusCompleted,
	}
)

// Next returns the single legal successor of the given status, or false when
// the status is terminal or unknown to this flow.
func (f Flow) Next(current Status) (Status, bool) {
	next, ok := f[current]

	return next, ok
}

// Validate rejects any requested transition other than the single legal next
// step. Every caller goes through here, not just the UI.
func (f Flow) Validate(current, requested Status) error {
	next, ok := f[current]
	if !ok {
		return failure.BadRequestFromString(fmt.Sprintf("order status %q is terminal", current)) //nolint:wrapcheck
	}

	if requested != next {
		return failure.BadRequestFromString(fmt.Sprintf("illegal order status transition %q -> %q, next must be %q", current, requested, next)) //nolint:wrapcheck
	}

	return nil
}

// ComputeTotal derives the stored order total from its line item.
func ComputeTotal(unitPrice float64, quantity int) float64 {
	return unitPrice * float64(quantity)
}
