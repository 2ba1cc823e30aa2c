package models

import "fmt"

// Status is the lifecycle state of an order. There is no rejected state:
// rejecting an order deletes it.
type Status string

const (
	StatusOrdered   Status = "ordered"
	StatusShipped   Status = "shipped"
	StatusDelivered Status = "delivered"
)

// ParseStatus validates s as a Status.
func ParseStatus(s string) (Status, error) {
	switch Status(s) {
	case StatusOrdered, StatusShipped, StatusDelivered:
		return Status(s), nil
	}
	return "", fmt.Errorf("unknown order status %q", s)
}

func (s Status) String() string { return string(s) }

// IsOpen reports whether the order has not been delivered yet.
func (s Status) IsOpen() bool { return s != StatusDelivered }
