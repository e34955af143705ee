package core_test

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"anukriti-backend/internal/core"
	"anukriti-backend/internal/model"
)

var (
	admin    = core.Identity{UserID: "admin-1", IsAdmin: true}
	customer = core.Identity{UserID: "user-1"}
)

func placeOrderFor(t *testing.T, e *env, userID string) *model.Order {
	t.Helper()
	ctx := context.Background()
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 100)
	_, err := e.cart.AddItem(ctx, userID, book.ID, 1)
	require.NoError(t, err)
	order, err := e.checkout.PlaceOrder(ctx, userID, validAddress())
	require.NoError(t, err)
	return order
}

func TestOrdersForUserIsolation(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	mine := placeOrderFor(t, e, "user-1")
	placeOrderFor(t, e, "user-2")

	orders, err := e.orders.OrdersForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 1)
	assert.Equal(t, mine.ID, orders[0].ID)
}

func TestOrdersForUserMostRecentFirst(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	first := placeOrderFor(t, e, "user-1")
	second := placeOrderFor(t, e, "user-1")

	orders, err := e.orders.OrdersForUser(ctx, "user-1")
	require.NoError(t, err)
	require.Len(t, orders, 2)
	assert.False(t, orders[0].OrderDate.Before(orders[1].OrderDate))
	ids := []string{orders[0].ID, orders[1].ID}
	assert.ElementsMatch(t, ids, []string{first.ID, second.ID})
}

func TestGetOrderScoping(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	order := placeOrderFor(t, e, "user-1")

	t.Run("owner sees it", func(t *testing.T) {
		got, err := e.orders.Order(ctx, customer, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("other user does not", func(t *testing.T) {
		_, err := e.orders.Order(ctx, core.Identity{UserID: "user-2"}, order.ID)
		var nferr *core.NotFoundError
		require.ErrorAs(t, err, &nferr)
	})

	t.Run("admin sees any order", func(t *testing.T) {
		got, err := e.orders.Order(ctx, admin, order.ID)
		require.NoError(t, err)
		assert.Equal(t, order.ID, got.ID)
	})

	t.Run("unknown id", func(t *testing.T) {
		_, err := e.orders.Order(ctx, admin, "no-such-order")
		var nferr *core.NotFoundError
		require.ErrorAs(t, err, &nferr)
	})
}

func TestAllOrdersRequiresAdmin(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	placeOrderFor(t, e, "user-1")
	placeOrderFor(t, e, "user-2")

	_, err := e.orders.AllOrders(ctx, customer)
	require.ErrorIs(t, err, core.ErrPermissionDenied)

	orders, err := e.orders.AllOrders(ctx, admin)
	require.NoError(t, err)
	assert.Len(t, orders, 2)
}

func TestSetStatusRequiresAdmin(t *testing.T) {
	e := setup(t)
	order := placeOrderFor(t, e, "user-1")

	_, err := e.orders.SetStatus(context.Background(), customer, order.ID, model.StatusShipped)
	require.ErrorIs(t, err, core.ErrPermissionDenied)
}

func TestStatusTransitions(t *testing.T) {
	e := setup(t)
	ctx := context.Background()

	t.Run("pending to shipped to delivered", func(t *testing.T) {
		order := placeOrderFor(t, e, "user-1")

		got, err := e.orders.SetStatus(ctx, admin, order.ID, model.StatusShipped)
		require.NoError(t, err)
		assert.Equal(t, model.StatusShipped, got.Status)

		got, err = e.orders.SetStatus(ctx, admin, order.ID, model.StatusDelivered)
		require.NoError(t, err)
		assert.Equal(t, model.StatusDelivered, got.Status)
	})

	t.Run("shipped back to pending fails", func(t *testing.T) {
		order := placeOrderFor(t, e, "user-1")
		_, err := e.orders.SetStatus(ctx, admin, order.ID, model.StatusShipped)
		require.NoError(t, err)

		_, err = e.orders.SetStatus(ctx, admin, order.ID, model.StatusPending)
		var terr *core.InvalidTransitionError
		require.ErrorAs(t, err, &terr)
		assert.Equal(t, model.StatusShipped, terr.From)
		assert.Equal(t, model.StatusPending, terr.To)
	})

	t.Run("pending skipping to delivered fails", func(t *testing.T) {
		order := placeOrderFor(t, e, "user-1")
		_, err := e.orders.SetStatus(ctx, admin, order.ID, model.StatusDelivered)
		var terr *core.InvalidTransitionError
		require.ErrorAs(t, err, &terr)
	})

	t.Run("same non-terminal status is a no-op", func(t *testing.T) {
		order := placeOrderFor(t, e, "user-1")
		got, err := e.orders.SetStatus(ctx, admin, order.ID, model.StatusPending)
		require.NoError(t, err)
		assert.Equal(t, model.StatusPending, got.Status)
	})

	t.Run("delivered is terminal", func(t *testing.T) {
		order := placeOrderFor(t, e, "user-1")
		_, err := e.orders.SetStatus(ctx, admin, order.ID, model.StatusShipped)
		require.NoError(t, err)
		_, err = e.orders.SetStatus(ctx, admin, order.ID, model.StatusDelivered)
		require.NoError(t, err)

		for _, next := range []model.OrderStatus{
			model.StatusPending, model.StatusShipped, model.StatusCancelled, model.StatusDelivered,
		} {
			_, err := e.orders.SetStatus(ctx, admin, order.ID, next)
			var terr *core.InvalidTransitionError
			require.ErrorAs(t, err, &terr, "Delivered -> %s must fail", next)
		}
	})

	t.Run("cancelled is terminal", func(t *testing.T) {
		order := placeOrderFor(t, e, "user-1")
		_, err := e.orders.SetStatus(ctx, admin, order.ID, model.StatusCancelled)
		require.NoError(t, err)

		for _, next := range []model.OrderStatus{
			model.StatusPending, model.StatusShipped, model.StatusDelivered, model.StatusCancelled,
		} {
			_, err := e.orders.SetStatus(ctx, admin, order.ID, next)
			var terr *core.InvalidTransitionError
			require.ErrorAs(t, err, &terr, "Cancelled -> %s must fail", next)
		}
	})

	t.Run("unknown status string", func(t *testing.T) {
		order := placeOrderFor(t, e, "user-1")
		_, err := e.orders.SetStatus(ctx, admin, order.ID, model.OrderStatus("Returned"))
		var verr *core.ValidationError
		require.ErrorAs(t, err, &verr)
	})

	t.Run("unknown order", func(t *testing.T) {
		_, err := e.orders.SetStatus(ctx, admin, "no-such-order", model.StatusShipped)
		var nferr *core.NotFoundError
		require.ErrorAs(t, err, &nferr)
	})
}

func TestCancelDoesNotRestock(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	book := e.addProduct(t, "Kavya Kunj", 120, nil, 10)
	_, err := e.cart.AddItem(ctx, "user-1", book.ID, 4)
	require.NoError(t, err)
	order, err := e.checkout.PlaceOrder(ctx, "user-1", validAddress())
	require.NoError(t, err)
	require.Equal(t, 6, e.product(t, book.ID).Stock)

	_, err = e.orders.SetStatus(ctx, admin, order.ID, model.StatusCancelled)
	require.NoError(t, err)

	// Cancellation leaves the consumed stock consumed.
	assert.Equal(t, 6, e.product(t, book.ID).Stock)
}

func TestOrderLinesImmutableAfterCheckout(t *testing.T) {
	e := setup(t)
	ctx := context.Background()
	order := placeOrderFor(t, e, "user-1")

	// Mutating the returned value must not leak into the ledger.
	order.Products[0].Price = 1
	order.TotalAmount = 1

	stored, err := e.orders.Order(ctx, admin, order.ID)
	require.NoError(t, err)
	assert.Equal(t, 120.0, stored.TotalAmount)
}
