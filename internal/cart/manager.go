// Package cart holds the in-memory shopping cart and session order history,
// mirrored to the kv store on every mutation.
package cart

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/google/uuid"

	"kaikari-xpress/internal/domain"
	"kaikari-xpress/internal/kv"
)

// Storage keys. The session order list under ordersKey is intentionally a
// separate record from AppData.pastOrders; the two are never reconciled.
const (
	cartKey   = "kaikari_cart"
	ordersKey = "kaikari_orders"
)

// Direction selects the sign of a quantity update.
type Direction string

const (
	DirectionIncrease Direction = "increase"
	DirectionDecrease Direction = "decrease"
)

// Manager is the single source of truth for cart and session orders. All
// mutations persist before returning, so the in-memory view and the stored
// view only diverge when a write fails (and the error says so).
type Manager struct {
	mu     sync.Mutex
	items  []domain.CartItem
	orders []domain.Order

	store  kv.Store
	logger *log.Logger
	now    func() time.Time
	newID  func() string
}

func New(store kv.Store, logger *log.Logger) *Manager {
	return &Manager{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
		newID:  newOrderID,
	}
}

// newOrderID keeps the human-readable #ORD- prefix but draws the digits
// from a UUID instead of math/rand.
func newOrderID() string {
	id := uuid.New()
	return fmt.Sprintf("#ORD-%X", id[:3])
}

// Load reads both records once at startup. Missing records leave the
// corresponding list empty; undecodable records are logged and skipped.
func (m *Manager) Load(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	if raw, err := m.store.GetItem(ctx, cartKey); err == nil {
		if err := json.Unmarshal(raw, &m.items); err != nil {
			m.logger.Printf("decode %s: %v, starting with empty cart", cartKey, err)
			m.items = nil
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("read %s: %w", cartKey, err)
	}

	if raw, err := m.store.GetItem(ctx, ordersKey); err == nil {
		if err := json.Unmarshal(raw, &m.orders); err != nil {
			m.logger.Printf("decode %s: %v, starting with empty order history", ordersKey, err)
			m.orders = nil
		}
	} else if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("read %s: %w", ordersKey, err)
	}

	return nil
}

// AddToCart increments the quantity of an existing line item, or inserts a
// new one with quantity 1.
func (m *Manager) AddToCart(ctx context.Context, product domain.Product) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == product.ID {
			m.items[i].Quantity++
			return m.persistCart(ctx)
		}
	}

	m.items = append(m.items, domain.CartItem{
		ProductID:     product.ID,
		Name:          product.Name,
		PricePaise:    product.PricePaise,
		OldPricePaise: product.OldPricePaise,
		Quantity:      1,
		Image:         product.Image,
		Weight:        product.Weight,
		AddedAt:       m.now(),
	})
	return m.persistCart(ctx)
}

// UpdateQuantity adds or subtracts 1. Items that reach zero are removed;
// no negative quantity is ever observable.
func (m *Manager) UpdateQuantity(ctx context.Context, productID int, dir Direction) error {
	if dir != DirectionIncrease && dir != DirectionDecrease {
		return fmt.Errorf("unknown direction %q", dir)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID != productID {
			continue
		}
		if dir == DirectionIncrease {
			m.items[i].Quantity++
		} else {
			m.items[i].Quantity--
		}
		if m.items[i].Quantity <= 0 {
			m.items = append(m.items[:i], m.items[i+1:]...)
		}
		return m.persistCart(ctx)
	}
	return nil
}

// RemoveFromCart deletes the line item unconditionally, no-op if absent.
func (m *Manager) RemoveFromCart(ctx context.Context, productID int) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	for i := range m.items {
		if m.items[i].ProductID == productID {
			m.items = append(m.items[:i], m.items[i+1:]...)
			return m.persistCart(ctx)
		}
	}
	return nil
}

// ItemCount returns the quantity of the given product, 0 if absent.
func (m *Manager) ItemCount(productID int) int {
	m.mu.Lock()
	defer m.mu.Unlock()

	for _, item := range m.items {
		if item.ProductID == productID {
			return item.Quantity
		}
	}
	return 0
}

// ClearCart empties the cart.
func (m *Manager) ClearCart(ctx context.Context) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.items = nil
	return m.persistCart(ctx)
}

// PlaceOrder snapshots the cart into a new order, prepends it to the
// session history and empties the cart. The in-memory state advances even
// when the returned persistence error is non-nil.
func (m *Manager) PlaceOrder(ctx context.Context, totalPaise int64) (string, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	order := domain.Order{
		ID:         m.newID(),
		Date:       m.now(),
		Items:      append([]domain.CartItem(nil), m.items...),
		TotalPaise: totalPaise,
		Status:     domain.OrderStatusActive,
	}
	m.orders = append([]domain.Order{order}, m.orders...)
	m.items = nil

	if err := m.persistOrders(ctx); err != nil {
		return order.ID, err
	}
	return order.ID, m.persistCart(ctx)
}

// Items returns a copy of the current cart, oldest line first.
func (m *Manager) Items() []domain.CartItem {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.CartItem(nil), m.items...)
}

// Orders returns a copy of the session order history, most recent first.
func (m *Manager) Orders() []domain.Order {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.Order(nil), m.orders...)
}

// CartCount is the sum of all quantities, recomputed on every read.
func (m *Manager) CartCount() int {
	m.mu.Lock()
	defer m.mu.Unlock()

	count := 0
	for _, item := range m.items {
		count += item.Quantity
	}
	return count
}

// CartTotal is the sum of price x quantity, recomputed on every read.
func (m *Manager) CartTotal() int64 {
	m.mu.Lock()
	defer m.mu.Unlock()

	var total int64
	for _, item := range m.items {
		total += item.PricePaise * int64(item.Quantity)
	}
	return total
}

func (m *Manager) persistCart(ctx context.Context) error {
	items := m.items
	if items == nil {
		items = []domain.CartItem{}
	}
	raw, err := json.Marshal(items)
	if err != nil {
		return fmt.Errorf("encode %s: %w", cartKey, err)
	}
	if err := m.store.SetItem(ctx, cartKey, raw); err != nil {
		return fmt.Errorf("write %s: %w", cartKey, err)
	}
	return nil
}

func (m *Manager) persistOrders(ctx context.Context) error {
	orders := m.orders
	if orders == nil {
		orders = []domain.Order{}
	}
	raw, err := json.Marshal(orders)
	if err != nil {
		return fmt.Errorf("encode %s: %w", ordersKey, err)
	}
	if err := m.store.SetItem(ctx, ordersKey, raw); err != nil {
		return fmt.Errorf("write %s: %w", ordersKey, err)
	}
	return nil
}
