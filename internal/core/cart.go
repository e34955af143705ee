// Package core implements the cart-to-order engine: cart mutation, the
// atomic checkout that turns a cart into an order while consuming stock, and
// the admin-driven order status machine. Every operation takes the acting
// user explicitly; nothing here reads ambient session state.
package core

import (
	"context"

	"github.com/sirupsen/logrus"

	"anukriti-backend/internal/model"
	"anukriti-backend/internal/store"
)

// Identity is what the authentication collaborator resolved for a request.
type Identity struct {
	UserID  string
	IsAdmin bool
}

// CartLine joins a cart row with the product's live catalog state, so
// displayed prices and stock always reflect the catalog as of now.
type CartLine struct {
	Product  model.Product `json:"product"`
	Quantity int           `json:"quantity"`
	Subtotal float64       `json:"subtotal"`
}

type CartView struct {
	Items       []CartLine `json:"items"`
	TotalAmount float64    `json:"total_amount"`
	ItemCount   int        `json:"item_count"`
}

type CartService struct {
	catalog store.CatalogStore
	carts   store.CartStore
	log     *logrus.Logger
}

func NewCartService(catalog store.CatalogStore, carts store.CartStore, log *logrus.Logger) *CartService {
	return &CartService{catalog: catalog, carts: carts, log: log}
}

// AddItem creates the (user, product) entry or increments it if present.
// Stock is not checked here; the cart is aspirational and stock is enforced
// at checkout.
func (s *CartService) AddItem(ctx context.Context, userID, productID string, qty int) (*CartView, error) {
	if qty < 1 {
		return nil, &ValidationError{Field: "quantity", Reason: "must be at least 1"}
	}
	if _, err := s.catalog.Product(ctx, productID); err != nil {
		if err == store.ErrNotFound {
			return nil, &NotFoundError{Resource: "product", ID: productID}
		}
		return nil, err
	}
	if err := s.carts.AddQuantity(ctx, userID, productID, qty); err != nil {
		return nil, err
	}
	s.log.WithFields(logrus.Fields{"user_id": userID, "product_id": productID, "quantity": qty}).
		Info("cart item added")
	return s.Cart(ctx, userID)
}

// SetQuantity overwrites the entry's quantity. Zero removes the entry and is
// a no-op when the entry is already gone.
func (s *CartService) SetQuantity(ctx context.Context, userID, productID string, qty int) (*CartView, error) {
	if qty < 0 {
		return nil, &ValidationError{Field: "quantity", Reason: "must not be negative"}
	}
	var err error
	if qty == 0 {
		err = s.carts.Remove(ctx, userID, productID)
	} else {
		err = s.carts.SetQuantity(ctx, userID, productID, qty)
	}
	if err != nil {
		return nil, err
	}
	return s.Cart(ctx, userID)
}

// RemoveItem deletes the entry; absent entries are not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, productID string) (*CartView, error) {
	if err := s.carts.Remove(ctx, userID, productID); err != nil {
		return nil, err
	}
	return s.Cart(ctx, userID)
}

// Cart returns the user's entries joined with current product state. Lines
// whose product has been deleted from the catalog are dropped from the view,
// matching what the storefront can actually sell.
func (s *CartService) Cart(ctx context.Context, userID string) (*CartView, error) {
	items, err := s.carts.Items(ctx, userID)
	if err != nil {
		return nil, err
	}
	view := &CartView{Items: make([]CartLine, 0, len(items))}
	for _, item := range items {
		product, err := s.catalog.Product(ctx, item.ProductID)
		if err == store.ErrNotFound {
			continue
		}
		if err != nil {
			return nil, err
		}
		subtotal := product.EffectivePrice() * float64(item.Quantity)
		view.Items = append(view.Items, CartLine{
			Product:  *product,
			Quantity: item.Quantity,
			Subtotal: subtotal,
		})
		view.TotalAmount += subtotal
		view.ItemCount += item.Quantity
	}
	return view, nil
}

// Clear drops every entry for the user. Checkout calls this after an order
// is committed.
func (s *CartService) Clear(ctx context.Context, userID string) error {
	return s.carts.Clear(ctx, userID)
}
