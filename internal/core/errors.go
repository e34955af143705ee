package core

import (
	"errors"
	"fmt"

	"anukriti-backend/internal/model"
)

var (
	// ErrEmptyCart is returned by checkout when the user has nothing to order.
	ErrEmptyCart = errors.New("cart is empty")

	// ErrPermissionDenied is returned when a non-admin identity invokes an
	// admin-only operation.
	ErrPermissionDenied = errors.New("admin access required")
)

// ValidationError reports malformed or out-of-range input.
type ValidationError struct {
	Field  string
	Reason string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("invalid %s: %s", e.Field, e.Reason)
}

// NotFoundError reports an unknown product or order id.
type NotFoundError struct {
	Resource string
	ID       string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("%s not found: %s", e.Resource, e.ID)
}

// InsufficientStockError names the offending product so the caller can tell
// the user which line to fix.
type InsufficientStockError struct {
	ProductID string
	Title     string
	Requested int
	Available int
}

func (e *InsufficientStockError) Error() string {
	return fmt.Sprintf("insufficient stock for %s: requested %d, only %d available",
		e.Title, e.Requested, e.Available)
}

// InvalidTransitionError reports an order-status change that the state graph
// does not allow.
type InvalidTransitionError struct {
	From model.OrderStatus
	To   model.OrderStatus
}

func (e *InvalidTransitionError) Error() string {
	return fmt.Sprintf("cannot change order status from %s to %s", e.From, e.To)
}
