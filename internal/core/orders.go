package core

import (
	"context"

	"github.com/sirupsen/logrus"

	"anukriti-backend/internal/model"
	"anukriti-backend/internal/store"
)

// transitions is the fulfillment state graph. Statuses absent from the map
// (Delivered, Cancelled) are terminal.
var transitions = map[model.OrderStatus][]model.OrderStatus{
	model.StatusPending: {model.StatusShipped, model.StatusCancelled},
	model.StatusShipped: {model.StatusDelivered, model.StatusCancelled},
}

func canTransition(from, to model.OrderStatus) bool {
	for _, next := range transitions[from] {
		if next == to {
			return true
		}
	}
	return false
}

func isTerminal(s model.OrderStatus) bool {
	_, ok := transitions[s]
	return !ok
}

// OrderService is the ledger of committed orders plus the admin-only status
// machine. Order lines, address, total and date never change after checkout;
// status is the single mutable field.
type OrderService struct {
	orders store.OrderStore
	log    *logrus.Logger
}

func NewOrderService(orders store.OrderStore, log *logrus.Logger) *OrderService {
	return &OrderService{orders: orders, log: log}
}

// OrdersForUser returns the user's own orders, most recent first.
func (s *OrderService) OrdersForUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.orders.OrdersByUser(ctx, userID)
}

// Order fetches one order. Non-admin callers only see their own; an order
// owned by someone else reads as not found rather than as forbidden.
func (s *OrderService) Order(ctx context.Context, id Identity, orderID string) (*model.Order, error) {
	order, err := s.orders.Order(ctx, orderID)
	if err == store.ErrNotFound {
		return nil, &NotFoundError{Resource: "order", ID: orderID}
	}
	if err != nil {
		return nil, err
	}
	if !id.IsAdmin && order.UserID != id.UserID {
		return nil, &NotFoundError{Resource: "order", ID: orderID}
	}
	return order, nil
}

// AllOrders returns every order across all users. Admin only.
func (s *OrderService) AllOrders(ctx context.Context, id Identity) ([]model.Order, error) {
	if !id.IsAdmin {
		return nil, ErrPermissionDenied
	}
	return s.orders.Orders(ctx)
}

// SetStatus applies one fulfillment transition. Setting the current
// non-terminal status again is an idempotent no-op; any request against a
// terminal order fails. Cancelling does not return stock to the catalog.
func (s *OrderService) SetStatus(ctx context.Context, id Identity, orderID string, status model.OrderStatus) (*model.Order, error) {
	if !id.IsAdmin {
		return nil, ErrPermissionDenied
	}
	if !model.ValidStatus(status) {
		return nil, &ValidationError{Field: "status", Reason: "unknown status"}
	}

	for {
		order, err := s.orders.Order(ctx, orderID)
		if err == store.ErrNotFound {
			return nil, &NotFoundError{Resource: "order", ID: orderID}
		}
		if err != nil {
			return nil, err
		}

		if order.Status == status && !isTerminal(order.Status) {
			return order, nil
		}
		if !canTransition(order.Status, status) {
			return nil, &InvalidTransitionError{From: order.Status, To: status}
		}

		applied, err := s.orders.SetStatus(ctx, orderID, order.Status, status)
		if err == store.ErrNotFound {
			return nil, &NotFoundError{Resource: "order", ID: orderID}
		}
		if err != nil {
			return nil, err
		}
		if !applied {
			// Lost a race with another admin; re-read and re-evaluate.
			continue
		}

		order.Status = status
		s.log.WithFields(logrus.Fields{"order_id": orderID, "status": status}).
			Info("order status updated")
		return order, nil
	}
}
