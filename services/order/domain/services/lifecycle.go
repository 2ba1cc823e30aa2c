// Package services holds the pure rules of the order domain: lifecycle
// transitions, reorder resolution and dashboard aggregation.
package services

import (
	"fmt"

	orderdomain "github.com/sevakart/marketplace/services/order/domain"
	"github.com/sevakart/marketplace/services/order/domain/models"
)

// Action is a supplier lifecycle action.
type Action string

const (
	ActionAccept  Action = "accept"
	ActionReject  Action = "reject"
	ActionDeliver Action = "deliver"
)

// transitions maps each action to its only valid source status and its
// target. Reject has no target status because the order is deleted.
var transitions = map[Action]struct {
	from, to models.Status
}{
	ActionAccept:  {models.StatusOrdered, models.StatusShipped},
	ActionReject:  {models.StatusOrdered, ""},
	ActionDeliver: {models.StatusShipped, models.StatusDelivered},
}

// Transition returns the status reached by applying a to current. For
// ActionReject the returned status is empty. Any other source status yields
// ErrInvalidTransition.
func Transition(current models.Status, a Action) (models.Status, error) {
	t, ok := transitions[a]
	if !ok {
		return "", fmt.Errorf("%w: unknown action %q", orderdomain.ErrInvalidTransition, a)
	}
	if current != t.from {
		return "", fmt.Errorf("%w: cannot %s an order that is %s", orderdomain.ErrInvalidTransition, a, current)
	}
	return t.to, nil
}
