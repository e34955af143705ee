package core

import (
	"context"
	"time"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"anukriti-backend/internal/model"
	"anukriti-backend/internal/store"
)

type CheckoutService struct {
	catalog store.CatalogStore
	carts   store.CartStore
	orders  store.OrderStore
	log     *logrus.Logger
}

func NewCheckoutService(catalog store.CatalogStore, carts store.CartStore, orders store.OrderStore, log *logrus.Logger) *CheckoutService {
	return &CheckoutService{catalog: catalog, carts: carts, orders: orders, log: log}
}

// PlaceOrder converts the user's cart into an order as one all-or-nothing
// unit: prices are resolved against the catalog now, stock is consumed for
// every line or for none, and the cart is cleared only after the order is
// persisted. A failure at any step leaves stock and cart untouched.
func (s *CheckoutService) PlaceOrder(ctx context.Context, userID string, address model.ShippingAddress) (*model.Order, error) {
	if field := missingAddressField(address); field != "" {
		return nil, &ValidationError{Field: field, Reason: "is required"}
	}

	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrEmptyCart
	}

	// Snapshot every line against the live catalog: frozen title and price,
	// with the sale price winning when one is set right now.
	lines := make([]model.OrderProduct, 0, len(items))
	stock := make([]store.StockLine, 0, len(items))
	titles := make(map[string]string, len(items))
	var total float64
	for _, item := range items {
		product, err := s.catalog.Product(ctx, item.ProductID)
		if err == store.ErrNotFound {
			return nil, &NotFoundError{Resource: "product", ID: item.ProductID}
		}
		if err != nil {
			return nil, err
		}
		price := product.EffectivePrice()
		lines = append(lines, model.OrderProduct{
			ProductID: product.ID,
			Title:     product.Title,
			Price:     price,
			Quantity:  item.Quantity,
		})
		stock = append(stock, store.StockLine{ProductID: product.ID, Quantity: item.Quantity})
		titles[product.ID] = product.Title
		total += price * float64(item.Quantity)
	}

	shortage, err := s.catalog.ConsumeStock(ctx, stock)
	if err != nil {
		return nil, err
	}
	if shortage != nil {
		requested := 0
		for _, line := range stock {
			if line.ProductID == shortage.ProductID {
				requested = line.Quantity
			}
		}
		return nil, &InsufficientStockError{
			ProductID: shortage.ProductID,
			Title:     titles[shortage.ProductID],
			Requested: requested,
			Available: shortage.Available,
		}
	}

	order := &model.Order{
		ID:              uuid.NewString(),
		UserID:          userID,
		Products:        lines,
		TotalAmount:     total,
		ShippingAddress: address,
		PaymentMode:     model.PaymentModeCOD,
		Status:          model.StatusPending,
		OrderDate:       time.Now().UTC(),
	}
	if err := s.orders.InsertOrder(ctx, order); err != nil {
		// Put the consumed stock back so a storage failure does not strand it.
		if rerr := s.catalog.ReturnStock(ctx, stock); rerr != nil {
			s.log.WithField("order_id", order.ID).WithError(rerr).
				Error("restock after failed order insert")
		}
		return nil, err
	}

	if err := s.carts.Clear(ctx, userID); err != nil {
		s.log.WithFields(logrus.Fields{"user_id": userID, "order_id": order.ID}).
			WithError(err).Warn("order placed but cart not cleared")
	}

	s.log.WithFields(logrus.Fields{
		"user_id":  userID,
		"order_id": order.ID,
		"total":    order.TotalAmount,
		"lines":    len(order.Products),
	}).Info("order placed")
	return order, nil
}

func missingAddressField(a model.ShippingAddress) string {
	checks := []struct {
		name  string
		value string
	}{
		{"full_name", a.FullName},
		{"address", a.Address},
		{"city", a.City},
		{"state", a.State},
		{"postal_code", a.PostalCode},
		{"mobile_number", a.MobileNumber},
	}
	for _, c := range checks {
		if c.value == "" {
			return c.name
		}
	}
	return ""
}
