package cart

import (
	"context"
	"io"
	"log"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"kaikari-xpress/internal/domain"
	"kaikari-xpress/internal/kv"
)

func newTestManager(t *testing.T) (*Manager, *kv.MemoryStore) {
	t.Helper()
	store := kv.NewMemory()
	m := New(store, log.New(io.Discard, "", 0))
	require.NoError(t, m.Load(context.Background()))
	return m, store
}

func tomato() domain.Product {
	old := int64(2500)
	return domain.Product{ID: 1, Name: "Fresh Tomato", Weight: "500g", PricePaise: 1800, OldPricePaise: &old, Category: "veggies"}
}

func onion() domain.Product {
	return domain.Product{ID: 2, Name: "Red Onion", Weight: "1kg", PricePaise: 3500, Category: "veggies"}
}

func TestAddToCartMergesByProduct(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddToCart(ctx, tomato()))
	require.NoError(t, m.AddToCart(ctx, tomato()))

	items := m.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].Quantity)
	require.Equal(t, int64(3600), m.CartTotal())
	require.Equal(t, 2, m.CartCount())
}

func TestUpdateQuantityRemovesAtZero(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddToCart(ctx, tomato()))
	require.NoError(t, m.AddToCart(ctx, tomato()))

	require.NoError(t, m.UpdateQuantity(ctx, 1, DirectionDecrease))
	require.NoError(t, m.UpdateQuantity(ctx, 1, DirectionDecrease))

	require.Empty(t, m.Items())
	require.Equal(t, 0, m.CartCount())
	require.Equal(t, 0, m.ItemCount(1))
}

func TestUpdateQuantityUnknownProductIsNoop(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddToCart(ctx, tomato()))
	require.NoError(t, m.UpdateQuantity(ctx, 99, DirectionIncrease))
	require.Equal(t, 1, m.CartCount())
}

func TestUpdateQuantityRejectsUnknownDirection(t *testing.T) {
	m, _ := newTestManager(t)
	err := m.UpdateQuantity(context.Background(), 1, Direction("sideways"))
	require.Error(t, err)
}

func TestQuantityInvariantUnderMixedSequence(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddToCart(ctx, tomato()))
	require.NoError(t, m.AddToCart(ctx, onion()))
	require.NoError(t, m.AddToCart(ctx, onion()))
	require.NoError(t, m.UpdateQuantity(ctx, 2, DirectionIncrease))
	require.NoError(t, m.UpdateQuantity(ctx, 1, DirectionDecrease))
	require.NoError(t, m.RemoveFromCart(ctx, 99))

	total := 0
	for _, item := range m.Items() {
		require.GreaterOrEqual(t, item.Quantity, 1)
		total += item.Quantity
	}
	require.Equal(t, total, m.CartCount())
}

func TestRemoveFromCart(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddToCart(ctx, tomato()))
	require.NoError(t, m.AddToCart(ctx, onion()))
	require.NoError(t, m.RemoveFromCart(ctx, 1))

	items := m.Items()
	require.Len(t, items, 1)
	require.Equal(t, 2, items[0].ProductID)
}

func TestPlaceOrderSnapshotsAndClears(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddToCart(ctx, tomato()))
	require.NoError(t, m.AddToCart(ctx, tomato()))

	id, err := m.PlaceOrder(ctx, m.CartTotal())
	require.NoError(t, err)
	require.True(t, strings.HasPrefix(id, "#ORD-"))
	require.Len(t, id, len("#ORD-")+6)

	require.Empty(t, m.Items())
	require.Equal(t, 0, m.CartCount())

	orders := m.Orders()
	require.Len(t, orders, 1)
	require.Equal(t, id, orders[0].ID)
	require.Equal(t, domain.OrderStatusActive, orders[0].Status)
	require.Equal(t, int64(3600), orders[0].TotalPaise)
	require.Len(t, orders[0].Items, 1)
	require.Equal(t, 2, orders[0].Items[0].Quantity)
}

func TestPlaceOrderHistoryIsMostRecentFirst(t *testing.T) {
	m, _ := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddToCart(ctx, tomato()))
	first, err := m.PlaceOrder(ctx, 1800)
	require.NoError(t, err)

	require.NoError(t, m.AddToCart(ctx, onion()))
	second, err := m.PlaceOrder(ctx, 3500)
	require.NoError(t, err)

	orders := m.Orders()
	require.Len(t, orders, 2)
	require.Equal(t, second, orders[0].ID)
	require.Equal(t, first, orders[1].ID)
}

func TestStateSurvivesReload(t *testing.T) {
	m, store := newTestManager(t)
	ctx := context.Background()

	require.NoError(t, m.AddToCart(ctx, tomato()))
	require.NoError(t, m.AddToCart(ctx, onion()))
	_, err := m.PlaceOrder(ctx, 5300)
	require.NoError(t, err)
	require.NoError(t, m.AddToCart(ctx, tomato()))

	reloaded := New(store, log.New(io.Discard, "", 0))
	require.NoError(t, reloaded.Load(ctx))

	require.Equal(t, 1, reloaded.CartCount())
	require.Len(t, reloaded.Orders(), 1)
	require.Equal(t, int64(1800), reloaded.CartTotal())
}

func TestLoadToleratesCorruptRecords(t *testing.T) {
	store := kv.NewMemory()
	ctx := context.Background()
	require.NoError(t, store.SetItem(ctx, "kaikari_cart", []byte("{broken")))

	m := New(store, log.New(io.Discard, "", 0))
	require.NoError(t, m.Load(ctx))
	require.Empty(t, m.Items())
}
