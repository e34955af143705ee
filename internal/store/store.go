// Package store defines the persistence contracts for the storefront and two
// implementations: MongoDB for deployment and an in-memory one for tests and
// local runs without a database.
package store

import (
	"context"
	"errors"

	"anukriti-backend/internal/model"
)

// ErrNotFound is returned by lookups when no record matches.
var ErrNotFound = errors.New("record not found")

// StockLine is one product's share of a checkout.
type StockLine struct {
	ProductID string
	Quantity  int
}

// Shortage identifies the first line a ConsumeStock call could not satisfy.
type Shortage struct {
	ProductID string
	Available int
}

type CatalogStore interface {
	Product(ctx context.Context, id string) (*model.Product, error)
	Products(ctx context.Context) ([]model.Product, error)
	InsertProduct(ctx context.Context, p *model.Product) error
	UpdateProduct(ctx context.Context, p *model.Product) error
	DeleteProduct(ctx context.Context, id string) error

	// ConsumeStock decrements stock for every line or for none of them. Each
	// decrement is conditional on stock >= quantity; when a line cannot be
	// satisfied the decrements already applied are rolled back and the
	// shortage is returned with a nil error.
	ConsumeStock(ctx context.Context, lines []StockLine) (*Shortage, error)

	// ReturnStock adds the quantities back. Used only to compensate when an
	// order fails to persist after its stock was consumed.
	ReturnStock(ctx context.Context, lines []StockLine) error
}

type CartStore interface {
	Items(ctx context.Context, userID string) ([]model.CartItem, error)

	// AddQuantity upserts the (user, product) row, incrementing quantity if
	// the row exists.
	AddQuantity(ctx context.Context, userID, productID string, qty int) error

	// SetQuantity overwrites the row's quantity. qty must be >= 1; removal
	// goes through Remove.
	SetQuantity(ctx context.Context, userID, productID string, qty int) error

	Remove(ctx context.Context, userID, productID string) error
	Clear(ctx context.Context, userID string) error
}

type OrderStore interface {
	InsertOrder(ctx context.Context, o *model.Order) error
	Order(ctx context.Context, id string) (*model.Order, error)

	// OrdersByUser returns the user's orders, most recent first.
	OrdersByUser(ctx context.Context, userID string) ([]model.Order, error)
	Orders(ctx context.Context) ([]model.Order, error)

	// SetStatus updates the order's status only if its current status still
	// equals from, reporting whether the update was applied. Racing admin
	// transitions lose the race instead of skipping states.
	SetStatus(ctx context.Context, id string, from, to model.OrderStatus) (bool, error)
}

type UserStore interface {
	InsertUser(ctx context.Context, u *model.User) error
	User(ctx context.Context, id string) (*model.User, error)

	// UserByIdentifier looks a user up by email or mobile number.
	UserByIdentifier(ctx context.Context, identifier string) (*model.User, error)
	AdminExists(ctx context.Context) (bool, error)
}

type ContactStore interface {
	InsertContact(ctx context.Context, m *model.ContactMessage) error
}

// Stores bundles one implementation of every persistence contract.
type Stores struct {
	Catalog  CatalogStore
	Carts    CartStore
	Orders   OrderStore
	Users    UserStore
	Contacts ContactStore
}
