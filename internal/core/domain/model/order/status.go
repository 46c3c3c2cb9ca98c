package order

import (
	"fmt"

	"storefront/internal/pkg/errs"
)

// Status represents the fulfillment state of an order.
//
// Lifecycle:
//
//	Pending ──> Cooking ──> Ready ──> Delivering ──> Completed
//	   │           │          │            │
//	   └───────────┴──────────┴────────────┴──────> Cancelled
//
// The diagram describes the intended kitchen workflow only. ChangeStatus accepts
// any valid status from any current status; the admin and delivery clients are
// trusted to move orders forward.
type Status int

const (
	// Unknown represents an invalid or undefined status.
	// This value (0) helps catch uninitialized Status values.
	Unknown Status = iota

	// Pending is the status every order is created with.
	Pending

	// Cooking means the kitchen has started the order.
	Cooking

	// Ready means the order is packed and waiting for a rider.
	Ready

	// Delivering means a rider is on the way.
	Delivering

	// Completed means the customer received the order. Terminal.
	Completed

	// Cancelled means the order was abandoned. Terminal.
	Cancelled
)

// getStatusStrings returns the wire names shared by the JSON API and the database.
func getStatusStrings() map[Status]string {
	//nolint:exhaustive // Unknown is intentionally excluded as it's invalid
	return map[Status]string{
		Pending:    "pending",
		Cooking:    "cooking",
		Ready:      "ready",
		Delivering: "delivering",
		Completed:  "completed",
		Cancelled:  "cancelled",
	}
}

// Statuses returns every valid status in lifecycle order.
func Statuses() []Status {
	return []Status{Pending, Cooking, Ready, Delivering, Completed, Cancelled}
}

// TerminalStatuses returns the statuses that end the lifecycle.
func TerminalStatuses() []Status {
	return []Status{Completed, Cancelled}
}

// ParseStatus converts a wire name ("pending", "cooking", ...) into a Status.
// Matching is exact; "Pending" is rejected.
func ParseStatus(s string) (Status, error) {
	for status, name := range getStatusStrings() {
		if name == s {
			return status, nil
		}
	}
	return Unknown, errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%q is not a valid status", s))
}

// Validate checks if the Status value is one of the six lifecycle states.
func (s Status) Validate() error {
	if _, ok := getStatusStrings()[s]; !ok {
		return errs.NewValueIsInvalidErrorWithCause("status", fmt.Errorf("%d is not a valid status", s))
	}
	return nil
}

// String returns the wire name of the status, or "unknown" for invalid values.
func (s Status) String() string {
	if str, ok := getStatusStrings()[s]; ok {
		return str
	}
	return "unknown"
}

// IsTerminal reports whether the status ends the lifecycle.
func (s Status) IsTerminal() bool {
	return s == Completed || s == Cancelled
}

// IsActive reports whether an order in this status still needs work.
func (s Status) IsActive() bool {
	return s.Validate() == nil && !s.IsTerminal()
}
