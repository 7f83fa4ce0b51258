package cart

import (
	"context"
	"fmt"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"

	"github.com/shopsbuzz/shopsbuzz-backend/pkg/logger"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/metrics"
)

// Snapshot is the read-only view handed to the presentation layer after
// every operation.
type Snapshot struct {
	Items     []LineItem
	Total     decimal.Decimal
	ItemCount int
	LoggedIn  bool
}

// CheckoutResult reports a successful checkout.
type CheckoutResult struct {
	OrderID   uuid.UUID
	Total     decimal.Decimal
	ItemCount int
}

// Service exposes session-scoped cart operations. Each call restores a
// fresh store from durable storage, applies at most one mutation, and
// returns the resulting snapshot, the same handoff a page load performs.
type Service interface {
	Snapshot(ctx context.Context, sessionID string) (*Snapshot, error)
	AddItem(ctx context.Context, sessionID string, product Product, quantity int) (*Snapshot, error)
	RemoveItem(ctx context.Context, sessionID string, productID int) (*Snapshot, error)
	ChangeQuantity(ctx context.Context, sessionID string, productID, delta int) (*Snapshot, error)
	Clear(ctx context.Context, sessionID string) (*Snapshot, error)
	SetLoggedIn(ctx context.Context, sessionID string, flag bool) (*Snapshot, error)
	Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error)
}

type service struct {
	storage Storage
	logg    *logger.Logger
	met     *metrics.HTTPMetrics
}

// NewService builds the cart service. Metrics are optional.
func NewService(storage Storage, logg *logger.Logger, met *metrics.HTTPMetrics) (Service, error) {
	if storage == nil {
		return nil, fmt.Errorf("cart storage required")
	}
	return &service{storage: storage, logg: logg, met: met}, nil
}

func (s *service) load(ctx context.Context, sessionID string) *Store {
	store := NewStore(s.storage, s.logg, sessionID)
	store.Restore(ctx)
	return store
}

func (s *service) snapshot(store *Store) *Snapshot {
	return &Snapshot{
		Items:     store.Items(),
		Total:     store.Total(),
		ItemCount: store.ItemCount(),
		LoggedIn:  store.IsLoggedIn(),
	}
}

func (s *service) Snapshot(ctx context.Context, sessionID string) (*Snapshot, error) {
	return s.snapshot(s.load(ctx, sessionID)), nil
}

func (s *service) AddItem(ctx context.Context, sessionID string, product Product, quantity int) (*Snapshot, error) {
	store := s.load(ctx, sessionID)
	if err := store.AddItem(ctx, product, quantity); err != nil {
		s.met.IncCartOp("add_item", "rejected")
		return nil, err
	}
	s.met.IncCartOp("add_item", "ok")
	return s.snapshot(store), nil
}

func (s *service) RemoveItem(ctx context.Context, sessionID string, productID int) (*Snapshot, error) {
	store := s.load(ctx, sessionID)
	store.RemoveItem(ctx, productID)
	s.met.IncCartOp("remove_item", "ok")
	return s.snapshot(store), nil
}

func (s *service) ChangeQuantity(ctx context.Context, sessionID string, productID, delta int) (*Snapshot, error) {
	store := s.load(ctx, sessionID)
	store.ChangeQuantity(ctx, productID, delta)
	s.met.IncCartOp("change_quantity", "ok")
	return s.snapshot(store), nil
}

func (s *service) Clear(ctx context.Context, sessionID string) (*Snapshot, error) {
	store := s.load(ctx, sessionID)
	store.Clear(ctx)
	s.met.IncCartOp("clear", "ok")
	return s.snapshot(store), nil
}

func (s *service) SetLoggedIn(ctx context.Context, sessionID string, flag bool) (*Snapshot, error) {
	store := s.load(ctx, sessionID)
	store.SetLoggedIn(ctx, flag)
	return s.snapshot(store), nil
}

func (s *service) Checkout(ctx context.Context, sessionID string) (*CheckoutResult, error) {
	store := s.load(ctx, sessionID)
	receipt, err := store.Checkout(ctx)
	if err != nil {
		s.met.IncCartOp("checkout", "refused")
		return nil, err
	}
	s.met.IncCartOp("checkout", "ok")
	return &CheckoutResult{
		OrderID:   receipt.OrderID,
		Total:     receipt.Total,
		ItemCount: receipt.ItemCount,
	}, nil
}
