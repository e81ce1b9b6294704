// Package storage owns the persisted AppData record: profile, address book
// and past orders, serialized as one JSON blob under a single key. Every
// mutation reads the whole record, applies one change and rewrites it.
package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"log"
	"time"

	"kaikari-xpress/internal/domain"
	"kaikari-xpress/internal/kv"
)

const appDataKey = "kaikariXpress_appData"

type Service struct {
	store  kv.Store
	logger *log.Logger
	now    func() time.Time
}

func New(store kv.Store, logger *log.Logger) *Service {
	return &Service{
		store:  store,
		logger: logger,
		now:    func() time.Time { return time.Now().UTC() },
	}
}

func defaultData(now time.Time) domain.AppData {
	return domain.AppData{
		Addresses:   []domain.Address{},
		PastOrders:  []domain.PastOrder{},
		LastUpdated: now,
	}
}

// AllData returns the full record. A missing record or a failed read
// degrades to the default empty record; the failure is logged, never
// surfaced to the caller.
func (s *Service) AllData(ctx context.Context) domain.AppData {
	raw, err := s.store.GetItem(ctx, appDataKey)
	if err != nil {
		if !errors.Is(err, domain.ErrNotFound) {
			s.logger.Printf("read %s: %v, falling back to defaults", appDataKey, err)
		}
		return defaultData(s.now())
	}
	var data domain.AppData
	if err := json.Unmarshal(raw, &data); err != nil {
		s.logger.Printf("decode %s: %v, falling back to defaults", appDataKey, err)
		return defaultData(s.now())
	}
	if data.Addresses == nil {
		data.Addresses = []domain.Address{}
	}
	if data.PastOrders == nil {
		data.PastOrders = []domain.PastOrder{}
	}
	return data
}

// SaveAllData persists the full record, stamping LastUpdated.
func (s *Service) SaveAllData(ctx context.Context, data domain.AppData) error {
	data.LastUpdated = s.now()
	raw, err := json.Marshal(data)
	if err != nil {
		return fmt.Errorf("encode %s: %w", appDataKey, err)
	}
	if err := s.store.SetItem(ctx, appDataKey, raw); err != nil {
		return fmt.Errorf("write %s: %w", appDataKey, err)
	}
	return nil
}

func (s *Service) SaveProfile(ctx context.Context, profile domain.UserProfile) error {
	data := s.AllData(ctx)
	data.Profile = &profile
	return s.SaveAllData(ctx, data)
}

// Profile returns the stored profile, or nil if none was ever saved.
func (s *Service) Profile(ctx context.Context) *domain.UserProfile {
	return s.AllData(ctx).Profile
}

// AddAddress assigns a fresh id, forces the first address to be default,
// appends and persists. The stored address is returned.
func (s *Service) AddAddress(ctx context.Context, address domain.Address) (domain.Address, error) {
	data := s.AllData(ctx)
	address.ID = fmt.Sprintf("addr_%d", s.now().UnixNano())
	if len(data.Addresses) == 0 {
		address.IsDefault = true
	}
	data.Addresses = append(data.Addresses, address)
	if err := s.SaveAllData(ctx, data); err != nil {
		return domain.Address{}, err
	}
	return address, nil
}

// AddressPatch carries the fields of a partial address update. Nil fields
// are left untouched.
type AddressPatch struct {
	Type        *string  `json:"type,omitempty"`
	FullAddress *string  `json:"fullAddress,omitempty"`
	City        *string  `json:"city,omitempty"`
	State       *string  `json:"state,omitempty"`
	Pincode     *string  `json:"pincode,omitempty"`
	Latitude    *float64 `json:"latitude,omitempty"`
	Longitude   *float64 `json:"longitude,omitempty"`
	IsDefault   *bool    `json:"isDefault,omitempty"`
}

// UpdateAddress merges patch into the matching address. Unknown ids are a
// silent no-op.
func (s *Service) UpdateAddress(ctx context.Context, id string, patch AddressPatch) error {
	data := s.AllData(ctx)
	for i := range data.Addresses {
		if data.Addresses[i].ID != id {
			continue
		}
		applyAddressPatch(&data.Addresses[i], patch)
		return s.SaveAllData(ctx, data)
	}
	return nil
}

func applyAddressPatch(a *domain.Address, patch AddressPatch) {
	if patch.Type != nil {
		a.Type = *patch.Type
	}
	if patch.FullAddress != nil {
		a.FullAddress = *patch.FullAddress
	}
	if patch.City != nil {
		a.City = *patch.City
	}
	if patch.State != nil {
		a.State = *patch.State
	}
	if patch.Pincode != nil {
		a.Pincode = *patch.Pincode
	}
	if patch.Latitude != nil {
		a.Latitude = *patch.Latitude
	}
	if patch.Longitude != nil {
		a.Longitude = *patch.Longitude
	}
	if patch.IsDefault != nil {
		a.IsDefault = *patch.IsDefault
	}
}

// DeleteAddress removes the matching address. If the deleted address was
// the default, the first remaining address is promoted.
func (s *Service) DeleteAddress(ctx context.Context, id string) error {
	data := s.AllData(ctx)
	kept := data.Addresses[:0]
	for _, a := range data.Addresses {
		if a.ID != id {
			kept = append(kept, a)
		}
	}
	data.Addresses = kept

	if len(data.Addresses) > 0 && defaultIndex(data.Addresses) < 0 {
		data.Addresses[0].IsDefault = true
	}
	return s.SaveAllData(ctx, data)
}

func defaultIndex(addresses []domain.Address) int {
	for i, a := range addresses {
		if a.IsDefault {
			return i
		}
	}
	return -1
}

func (s *Service) Addresses(ctx context.Context) []domain.Address {
	return s.AllData(ctx).Addresses
}

// DefaultAddress returns the first address flagged default, or nil.
func (s *Service) DefaultAddress(ctx context.Context) *domain.Address {
	addresses := s.AllData(ctx).Addresses
	if i := defaultIndex(addresses); i >= 0 {
		return &addresses[i]
	}
	return nil
}

// SetDefaultAddress flags the matching address and unflags every other, so
// the single-default invariant holds after the call.
func (s *Service) SetDefaultAddress(ctx context.Context, id string) error {
	data := s.AllData(ctx)
	for i := range data.Addresses {
		data.Addresses[i].IsDefault = data.Addresses[i].ID == id
	}
	return s.SaveAllData(ctx, data)
}

// AddOrder assigns a fresh id and creation timestamp, appends and persists.
func (s *Service) AddOrder(ctx context.Context, order domain.PastOrder) (domain.PastOrder, error) {
	data := s.AllData(ctx)
	order.ID = fmt.Sprintf("ord_%d", s.now().UnixNano())
	order.CreatedAt = s.now()
	data.PastOrders = append(data.PastOrders, order)
	if err := s.SaveAllData(ctx, data); err != nil {
		return domain.PastOrder{}, err
	}
	return order, nil
}

// OrderPatch carries the fields of a partial past-order update.
type OrderPatch struct {
	Status      *string    `json:"status,omitempty"`
	DeliveredAt *time.Time `json:"deliveredAt,omitempty"`
}

// UpdateOrder merges patch into the matching past order. Unknown ids are a
// silent no-op.
func (s *Service) UpdateOrder(ctx context.Context, id string, patch OrderPatch) error {
	data := s.AllData(ctx)
	for i := range data.PastOrders {
		if data.PastOrders[i].ID != id {
			continue
		}
		if patch.Status != nil {
			data.PastOrders[i].Status = *patch.Status
		}
		if patch.DeliveredAt != nil {
			data.PastOrders[i].DeliveredAt = patch.DeliveredAt
		}
		return s.SaveAllData(ctx, data)
	}
	return nil
}

func (s *Service) Orders(ctx context.Context) []domain.PastOrder {
	return s.AllData(ctx).PastOrders
}

// OrderByID returns the matching past order, or nil.
func (s *Service) OrderByID(ctx context.Context, id string) *domain.PastOrder {
	orders := s.AllData(ctx).PastOrders
	for i := range orders {
		if orders[i].ID == id {
			return &orders[i]
		}
	}
	return nil
}

// ClearAllData deletes the entire record.
func (s *Service) ClearAllData(ctx context.Context) error {
	return s.store.RemoveItem(ctx, appDataKey)
}
