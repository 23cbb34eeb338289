package lifecycle

import (
	"fmt"

	"lifecycle/internal/pkg/errs"
)

// Status is the fulfillment stage of an order.
//
// Stages, in their conventional order:
//
//	New -> Procurement -> Execution -> Delivered -> Invoiced -> Paid -> Closed
//
// The order is a convention only. Operators may move an order to any stage,
// including backwards, to correct mistakes; see transitionTable.
type Status int

const (
	// Unknown catches uninitialised or unparseable statuses.
	Unknown Status = iota

	// New is the initial stage of every lifecycle configuration.
	New

	// Procurement means materials are being purchased.
	Procurement

	// Execution means work is under way on site.
	Execution

	// Delivered means goods or work have been handed over.
	Delivered

	// Invoiced means the customer has been billed.
	Invoiced

	// Paid means the customer has settled the invoice.
	Paid

	// Closed is the conventional terminal stage. It is not enforced.
	Closed
)

func getStatusLabels() map[Status]string {
	return map[Status]string{
		Unknown:     "unknown",
		New:         "new",
		Procurement: "procurement",
		Execution:   "execution",
		Delivered:   "delivered",
		Invoiced:    "invoiced",
		Paid:        "paid",
		Closed:      "closed",
	}
}

// AllStatuses returns the seven valid statuses in conventional order.
func AllStatuses() []Status {
	return []Status{New, Procurement, Execution, Delivered, Invoiced, Paid, Closed}
}

// transitionTable lists the statuses reachable from each status.
// Every status may move to every other status (and to itself).
func transitionTable() map[Status][]Status {
	all := AllStatuses()
	table := make(map[Status][]Status, len(all))
	for _, from := range all {
		table[from] = all
	}
	return table
}

// ParseStatus maps a label such as "procurement" to its Status.
// Unknown labels fail with errs.StatusIsInvalidError.
func ParseStatus(label string) (Status, error) {
	for _, s := range AllStatuses() {
		if getStatusLabels()[s] == label {
			return s, nil
		}
	}
	return Unknown, errs.NewStatusIsInvalidError(label)
}

// Validate reports whether s is one of the seven valid statuses.
func (s Status) Validate() error {
	if s < New || s > Closed {
		return errs.NewStatusIsInvalidErrorWithCause(s.String(), fmt.Errorf("%d is not a valid status", int(s)))
	}
	return nil
}

// String returns the status label, or "unknown" for invalid values.
func (s Status) String() string {
	if l, ok := getStatusLabels()[s]; ok {
		return l
	}
	return "unknown"
}

// IsTerminal reports whether s is the conventional end of the lifecycle.
func (s Status) IsTerminal() bool {
	return s == Closed
}

// CanTransitionTo reports whether the transition table allows s -> target.
func (s Status) CanTransitionTo(target Status) bool {
	for _, next := range transitionTable()[s] {
		if next == target {
			return true
		}
	}
	return false
}

// TransitionTo returns target if the table allows moving there from s.
//
// Example:
//
//	next, err := lifecycle.Paid.TransitionTo(lifecycle.Procurement)
//	// next == lifecycle.Procurement, err == nil
func (s Status) TransitionTo(target Status) (Status, error) {
	if err := target.Validate(); err != nil {
		return Unknown, err
	}
	if !s.CanTransitionTo(target) {
		return Unknown, errs.NewStatusIsInvalidErrorWithCause(
			target.String(),
			fmt.Errorf("%s cannot move to %s", s, target),
		)
	}
	return target, nil
}
