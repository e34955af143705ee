package core_test

import (
	"context"
	"io"
	"testing"

	"github.com/google/uuid"
	"github.com/sirupsen/logrus"

	"anukriti-backend/internal/core"
	"anukriti-backend/internal/model"
	"anukriti-backend/internal/store"
)

type env struct {
	stores   *store.Stores
	cart     *core.CartService
	checkout *core.CheckoutService
	orders   *core.OrderService
}

func setup(t *testing.T) *env {
	t.Helper()
	log := logrus.New()
	log.SetOutput(io.Discard)
	stores := store.NewMemoryStores()
	return &env{
		stores:   stores,
		cart:     core.NewCartService(stores.Catalog, stores.Carts, log),
		checkout: core.NewCheckoutService(stores.Catalog, stores.Carts, stores.Orders, log),
		orders:   core.NewOrderService(stores.Orders, log),
	}
}

func price(v float64) *float64 { return &v }

func (e *env) addProduct(t *testing.T, title string, original float64, sale *float64, stock int) *model.Product {
	t.Helper()
	p := &model.Product{
		ID:            uuid.NewString(),
		Title:         title,
		Description:   "test product",
		OriginalPrice: original,
		SalePrice:     sale,
		Category:      model.CategoryBook,
		Stock:         stock,
	}
	if err := e.stores.Catalog.InsertProduct(context.Background(), p); err != nil {
		t.Fatalf("insert product: %v", err)
	}
	return p
}

func (e *env) product(t *testing.T, id string) *model.Product {
	t.Helper()
	p, err := e.stores.Catalog.Product(context.Background(), id)
	if err != nil {
		t.Fatalf("load product %s: %v", id, err)
	}
	return p
}

func validAddress() model.ShippingAddress {
	return model.ShippingAddress{
		FullName:     "Asha Verma",
		Address:      "12 MG Road",
		City:         "Jaipur",
		State:        "Rajasthan",
		PostalCode:   "302001",
		MobileNumber: "9876501234",
	}
}
