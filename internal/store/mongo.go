package store

import (
	"context"

	"github.com/pkg/errors"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"anukriti-backend/internal/model"
)

// NewMongoStores returns stores backed by the given database. Collections:
// products, cart_items (one document per (user_id, product_id)), orders,
// users, contacts.
func NewMongoStores(db *mongo.Database) *Stores {
	return &Stores{
		Catalog:  &mongoCatalog{c: db.Collection("products")},
		Carts:    &mongoCarts{c: db.Collection("cart_items")},
		Orders:   &mongoOrders{c: db.Collection("orders")},
		Users:    &mongoUsers{c: db.Collection("users")},
		Contacts: &mongoContacts{c: db.Collection("contacts")},
	}
}

type mongoCatalog struct {
	c *mongo.Collection
}

func (s *mongoCatalog) Product(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&p)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find product")
	}
	return &p, nil
}

func (s *mongoCatalog) Products(ctx context.Context) ([]model.Product, error) {
	cur, err := s.c.Find(ctx, bson.M{})
	if err != nil {
		return nil, errors.Wrap(err, "list products")
	}
	var products []model.Product
	if err := cur.All(ctx, &products); err != nil {
		return nil, errors.Wrap(err, "decode products")
	}
	return products, nil
}

func (s *mongoCatalog) InsertProduct(ctx context.Context, p *model.Product) error {
	_, err := s.c.InsertOne(ctx, p)
	return errors.Wrap(err, "insert product")
}

func (s *mongoCatalog) UpdateProduct(ctx context.Context, p *model.Product) error {
	res, err := s.c.ReplaceOne(ctx, bson.M{"id": p.ID}, p)
	if err != nil {
		return errors.Wrap(err, "update product")
	}
	if res.MatchedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoCatalog) DeleteProduct(ctx context.Context, id string) error {
	res, err := s.c.DeleteOne(ctx, bson.M{"id": id})
	if err != nil {
		return errors.Wrap(err, "delete product")
	}
	if res.DeletedCount == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *mongoCatalog) ConsumeStock(ctx context.Context, lines []StockLine) (*Shortage, error) {
	// Conditional decrement per line; a line that cannot be satisfied rolls
	// back the lines already taken so the batch is all-or-nothing.
	for i, line := range lines {
		res, err := s.c.UpdateOne(ctx,
			bson.M{"id": line.ProductID, "stock": bson.M{"$gte": line.Quantity}},
			bson.M{"$inc": bson.M{"stock": -line.Quantity}},
		)
		if err == nil && res.MatchedCount > 0 {
			continue
		}
		for _, taken := range lines[:i] {
			if _, rerr := s.c.UpdateOne(ctx,
				bson.M{"id": taken.ProductID},
				bson.M{"$inc": bson.M{"stock": taken.Quantity}},
			); rerr != nil && err == nil {
				err = rerr
			}
		}
		if err != nil {
			return nil, errors.Wrap(err, "consume stock")
		}
		available := 0
		var p model.Product
		if ferr := s.c.FindOne(ctx, bson.M{"id": line.ProductID}).Decode(&p); ferr == nil {
			available = p.Stock
		}
		return &Shortage{ProductID: line.ProductID, Available: available}, nil
	}
	return nil, nil
}

func (s *mongoCatalog) ReturnStock(ctx context.Context, lines []StockLine) error {
	for _, line := range lines {
		if _, err := s.c.UpdateOne(ctx,
			bson.M{"id": line.ProductID},
			bson.M{"$inc": bson.M{"stock": line.Quantity}},
		); err != nil {
			return errors.Wrap(err, "return stock")
		}
	}
	return nil
}

type mongoCarts struct {
	c *mongo.Collection
}

func (s *mongoCarts) Items(ctx context.Context, userID string) ([]model.CartItem, error) {
	cur, err := s.c.Find(ctx, bson.M{"user_id": userID})
	if err != nil {
		return nil, errors.Wrap(err, "list cart items")
	}
	var items []model.CartItem
	if err := cur.All(ctx, &items); err != nil {
		return nil, errors.Wrap(err, "decode cart items")
	}
	return items, nil
}

func (s *mongoCarts) AddQuantity(ctx context.Context, userID, productID string, qty int) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"user_id": userID, "product_id": productID},
		bson.M{"$inc": bson.M{"quantity": qty}},
		options.Update().SetUpsert(true),
	)
	return errors.Wrap(err, "add cart quantity")
}

func (s *mongoCarts) SetQuantity(ctx context.Context, userID, productID string, qty int) error {
	_, err := s.c.UpdateOne(ctx,
		bson.M{"user_id": userID, "product_id": productID},
		bson.M{"$set": bson.M{"quantity": qty}},
		options.Update().SetUpsert(true),
	)
	return errors.Wrap(err, "set cart quantity")
}

func (s *mongoCarts) Remove(ctx context.Context, userID, productID string) error {
	_, err := s.c.DeleteOne(ctx, bson.M{"user_id": userID, "product_id": productID})
	return errors.Wrap(err, "remove cart item")
}

func (s *mongoCarts) Clear(ctx context.Context, userID string) error {
	_, err := s.c.DeleteMany(ctx, bson.M{"user_id": userID})
	return errors.Wrap(err, "clear cart")
}

type mongoOrders struct {
	c *mongo.Collection
}

func (s *mongoOrders) InsertOrder(ctx context.Context, o *model.Order) error {
	_, err := s.c.InsertOne(ctx, o)
	return errors.Wrap(err, "insert order")
}

func (s *mongoOrders) Order(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&o)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find order")
	}
	return &o, nil
}

func (s *mongoOrders) OrdersByUser(ctx context.Context, userID string) ([]model.Order, error) {
	return s.find(ctx, bson.M{"user_id": userID})
}

func (s *mongoOrders) Orders(ctx context.Context) ([]model.Order, error) {
	return s.find(ctx, bson.M{})
}

func (s *mongoOrders) find(ctx context.Context, filter bson.M) ([]model.Order, error) {
	cur, err := s.c.Find(ctx, filter, options.Find().SetSort(bson.D{{Key: "order_date", Value: -1}}))
	if err != nil {
		return nil, errors.Wrap(err, "list orders")
	}
	var orders []model.Order
	if err := cur.All(ctx, &orders); err != nil {
		return nil, errors.Wrap(err, "decode orders")
	}
	return orders, nil
}

func (s *mongoOrders) SetStatus(ctx context.Context, id string, from, to model.OrderStatus) (bool, error) {
	res, err := s.c.UpdateOne(ctx,
		bson.M{"id": id, "status": from},
		bson.M{"$set": bson.M{"status": to}},
	)
	if err != nil {
		return false, errors.Wrap(err, "set order status")
	}
	if res.MatchedCount > 0 {
		return true, nil
	}
	// Distinguish a raced transition from a missing order.
	err = s.c.FindOne(ctx, bson.M{"id": id}).Err()
	if err == mongo.ErrNoDocuments {
		return false, ErrNotFound
	}
	if err != nil {
		return false, errors.Wrap(err, "set order status")
	}
	return false, nil
}

type mongoUsers struct {
	c *mongo.Collection
}

func (s *mongoUsers) InsertUser(ctx context.Context, u *model.User) error {
	_, err := s.c.InsertOne(ctx, u)
	return errors.Wrap(err, "insert user")
}

func (s *mongoUsers) User(ctx context.Context, id string) (*model.User, error) {
	var u model.User
	err := s.c.FindOne(ctx, bson.M{"id": id}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user")
	}
	return &u, nil
}

func (s *mongoUsers) UserByIdentifier(ctx context.Context, identifier string) (*model.User, error) {
	var u model.User
	err := s.c.FindOne(ctx, bson.M{"$or": bson.A{
		bson.M{"email": identifier},
		bson.M{"mobile_number": identifier},
	}}).Decode(&u)
	if err == mongo.ErrNoDocuments {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, errors.Wrap(err, "find user by identifier")
	}
	return &u, nil
}

func (s *mongoUsers) AdminExists(ctx context.Context) (bool, error) {
	err := s.c.FindOne(ctx, bson.M{"role": model.RoleAdmin}).Err()
	if err == mongo.ErrNoDocuments {
		return false, nil
	}
	if err != nil {
		return false, errors.Wrap(err, "find admin")
	}
	return true, nil
}

type mongoContacts struct {
	c *mongo.Collection
}

func (s *mongoContacts) InsertContact(ctx context.Context, m *model.ContactMessage) error {
	_, err := s.c.InsertOne(ctx, m)
	return errors.Wrap(err, "insert contact message")
}
