package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anukriti-backend/internal/core"
)

func TestAddItemAccumulatesQuantity(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 10)

	cart, err := e.cart.AddItem(ctx, "user-1", book.ID, 2)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 2, cart.Items[0].Quantity)

	cart, err = e.cart.AddItem(ctx, "user-1", book.ID, 3)
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 5, cart.Items[0].Quantity)
	assert.Equal(t, 5, cart.ItemCount)
	assert.Equal(t, 600.0, cart.TotalAmount)
}

func TestAddItemValidation(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 10)

	t.Run("zero quantity", func(t *testing.T) {
		_, err := e.cart.AddItem(ctx, "user-1", book.ID, 0)
		var verr *core.ValidationError
		require.ErrorAs(t, err, &verr)
		assert.Equal(t, "quantity", verr.Field)
	})

	t.Run("negative quantity", func(t *testing.T) {
		_, err := e.cart.AddItem(ctx, "user-1", book.ID, -2)
		var verr *core.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, err := e.cart.AddItem(ctx, "user-1", "no-such-product", 1)
		var nferr *core.NotFoundError
		require.ErrorAs(t, err, &nferr)
		assert.Equal(t, "no-such-product", nferr.ID)
	})
}

func TestAddItemIgnoresStock(t *testing.T) {
	e := setup(t)
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 1)

	// The cart is aspirational: stock is enforced at checkout only.
	cart, err := e.cart.AddItem(context.Background(), "user-1", book.ID, 50)
	require.NoError(t, err)
	assert.Equal(t, 50, cart.ItemCount)
}

func TestSetQuantity(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 10)
	_, err := e.cart.AddItem(ctx, "user-1", book.ID, 2)
	require.NoError(t, err)

	t.Run("overwrite", func(t *testing.T) {
		cart, err := e.cart.SetQuantity(ctx, "user-1", book.ID, 7)
		require.NoError(t, err)
		require.Len(t, cart.Items, 1)
		assert.Equal(t, 7, cart.Items[0].Quantity)
	})

	t.Run("zero removes entry", func(t *testing.T) {
		cart, err := e.cart.SetQuantity(ctx, "user-1", book.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("zero again is a no-op", func(t *testing.T) {
		cart, err := e.cart.SetQuantity(ctx, "user-1", book.ID, 0)
		require.NoError(t, err)
		assert.Empty(t, cart.Items)
	})

	t.Run("negative fails", func(t *testing.T) {
		_, err := e.cart.SetQuantity(ctx, "user-1", book.ID, -1)
		var verr *core.ValidationError
		require.ErrorAs(t, err, &verr)
	})
}

func TestRemoveItemIdempotent(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 10)
	_, err := e.cart.AddItem(ctx, "user-1", book.ID, 1)
	require.NoError(t, err)

	cart, err := e.cart.RemoveItem(ctx, "user-1", book.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)

	cart, err = e.cart.RemoveItem(ctx, "user-1", book.ID)
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}

func TestCartReflectsLiveCatalogState(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 10)
	_, err := e.cart.AddItem(ctx, "user-1", book.ID, 2)
	require.NoError(t, err)

	// The price drops after the item was added; the cart shows the new price.
	book.SalePrice = price(100)
	require.NoError(t, e.stores.Catalog.UpdateProduct(ctx, book))

	cart, err := e.cart.Cart(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, cart.Items, 1)
	assert.Equal(t, 200.0, cart.Items[0].Subtotal)
	assert.Equal(t, 200.0, cart.TotalAmount)
}

func TestCartsAreScopedPerUser(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 10)

	_, err := e.cart.AddItem(ctx, "user-1", book.ID, 2)
	require.NoError(t, err)

	cart, err := e.cart.Cart(ctx, "user-2")
	require.NoError(t, err)
	assert.Empty(t, cart.Items)
}
