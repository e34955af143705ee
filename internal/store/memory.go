package store

import (
	"context"
	"sort"
	"strings"
	"sync"

	"anukriti-backend/internal/model"
)

// NewMemoryStores returns stores backed by process memory. They honor the
// same conditional-update semantics as the mongo stores and are safe for
// concurrent use.
func NewMemoryStores() *Stores {
	return &Stores{
		Catalog:  &memCatalog{products: make(map[string]model.Product)},
		Carts:    &memCarts{items: make(map[string]map[string]int)},
		Orders:   &memOrders{orders: make(map[string]model.Order)},
		Users:    &memUsers{users: make(map[string]model.User)},
		Contacts: &memContacts{},
	}
}

type memCatalog struct {
	mu       sync.Mutex
	products map[string]model.Product
}

func (s *memCatalog) Product(ctx context.Context, id string) (*model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.products[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := p
	return &clone, nil
}

func (s *memCatalog) Products(ctx context.Context) ([]model.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Product, 0, len(s.products))
	for _, p := range s.products {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Title < out[j].Title })
	return out, nil
}

func (s *memCatalog) InsertProduct(ctx context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.products[p.ID] = *p
	return nil
}

func (s *memCatalog) UpdateProduct(ctx context.Context, p *model.Product) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[p.ID]; !ok {
		return ErrNotFound
	}
	s.products[p.ID] = *p
	return nil
}

func (s *memCatalog) DeleteProduct(ctx context.Context, id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.products[id]; !ok {
		return ErrNotFound
	}
	delete(s.products, id)
	return nil
}

func (s *memCatalog) ConsumeStock(ctx context.Context, lines []StockLine) (*Shortage, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	// Check everything before touching anything; the lock makes the whole
	// call the critical section.
	for _, line := range lines {
		p, ok := s.products[line.ProductID]
		if !ok {
			return &Shortage{ProductID: line.ProductID, Available: 0}, nil
		}
		if p.Stock < line.Quantity {
			return &Shortage{ProductID: line.ProductID, Available: p.Stock}, nil
		}
	}
	for _, line := range lines {
		p := s.products[line.ProductID]
		p.Stock -= line.Quantity
		s.products[line.ProductID] = p
	}
	return nil, nil
}

func (s *memCatalog) ReturnStock(ctx context.Context, lines []StockLine) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, line := range lines {
		p, ok := s.products[line.ProductID]
		if !ok {
			continue
		}
		p.Stock += line.Quantity
		s.products[line.ProductID] = p
	}
	return nil
}

type memCarts struct {
	mu    sync.Mutex
	items map[string]map[string]int // user -> product -> quantity
}

func (s *memCarts) Items(ctx context.Context, userID string) ([]model.CartItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.items[userID]
	out := make([]model.CartItem, 0, len(cart))
	for productID, qty := range cart {
		out = append(out, model.CartItem{UserID: userID, ProductID: productID, Quantity: qty})
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ProductID < out[j].ProductID })
	return out, nil
}

func (s *memCarts) AddQuantity(ctx context.Context, userID, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.items[userID]
	if cart == nil {
		cart = make(map[string]int)
		s.items[userID] = cart
	}
	cart[productID] += qty
	return nil
}

func (s *memCarts) SetQuantity(ctx context.Context, userID, productID string, qty int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cart := s.items[userID]
	if cart == nil {
		cart = make(map[string]int)
		s.items[userID] = cart
	}
	cart[productID] = qty
	return nil
}

func (s *memCarts) Remove(ctx context.Context, userID, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items[userID], productID)
	return nil
}

func (s *memCarts) Clear(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.items, userID)
	return nil
}

type memOrders struct {
	mu     sync.Mutex
	orders map[string]model.Order
}

// cloneOrder copies the order including its line slice, so callers can never
// reach the stored record through a shared backing array.
func cloneOrder(o model.Order) model.Order {
	o.Products = append([]model.OrderProduct(nil), o.Products...)
	return o
}

func (s *memOrders) InsertOrder(ctx context.Context, o *model.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.orders[o.ID] = cloneOrder(*o)
	return nil
}

func (s *memOrders) Order(ctx context.Context, id string) (*model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := cloneOrder(o)
	return &clone, nil
}

func (s *memOrders) OrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var out []model.Order
	for _, o := range s.orders {
		if o.UserID == userID {
			out = append(out, cloneOrder(o))
		}
	}
	sortOrders(out)
	return out, nil
}

func (s *memOrders) Orders(ctx context.Context) ([]model.Order, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]model.Order, 0, len(s.orders))
	for _, o := range s.orders {
		out = append(out, cloneOrder(o))
	}
	sortOrders(out)
	return out, nil
}

func sortOrders(orders []model.Order) {
	sort.Slice(orders, func(i, j int) bool {
		if orders[i].OrderDate.Equal(orders[j].OrderDate) {
			return orders[i].ID > orders[j].ID
		}
		return orders[i].OrderDate.After(orders[j].OrderDate)
	})
}

func (s *memOrders) SetStatus(ctx context.Context, id string, from, to model.OrderStatus) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	o, ok := s.orders[id]
	if !ok {
		return false, ErrNotFound
	}
	if o.Status != from {
		return false, nil
	}
	o.Status = to
	s.orders[id] = o
	return true, nil
}

type memUsers struct {
	mu    sync.Mutex
	users map[string]model.User
}

func (s *memUsers) InsertUser(ctx context.Context, u *model.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.users[u.ID] = *u
	return nil
}

func (s *memUsers) User(ctx context.Context, id string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	u, ok := s.users[id]
	if !ok {
		return nil, ErrNotFound
	}
	clone := u
	return &clone, nil
}

func (s *memUsers) UserByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if (u.Email != "" && strings.EqualFold(u.Email, identifier)) || u.MobileNumber == identifier {
			clone := u
			return &clone, nil
		}
	}
	return nil, ErrNotFound
}

func (s *memUsers) AdminExists(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Role == model.RoleAdmin {
			return true, nil
		}
	}
	return false, nil
}

type memContacts struct {
	mu       sync.Mutex
	messages []model.ContactMessage
}

func (s *memContacts) InsertContact(ctx context.Context, m *model.ContactMessage) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.messages = append(s.messages, *m)
	return nil
}
