package cart

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/logger"
)

// Store is the single source of truth for one session's cart contents and
// login flag. Every mutation persists before returning; a failed persist
// degrades that call to memory-only and is logged, never surfaced. Lines
// keep insertion order, hold at most one entry per product id, and never
// carry a quantity below one.
type Store struct {
	sessionID string
	storage   Storage
	logg      *logger.Logger

	items    []LineItem
	loggedIn bool
}

// Receipt is the success signal checkout returns. Nothing downstream
// consumes it beyond presentation; there is no order persistence.
type Receipt struct {
	OrderID   uuid.UUID
	Total     decimal.Decimal
	ItemCount int
}

// NewStore builds an empty store bound to a session. Call Restore before
// reading or mutating.
func NewStore(storage Storage, logg *logger.Logger, sessionID string) *Store {
	return &Store{
		sessionID: sessionID,
		storage:   storage,
		logg:      logg,
	}
}

// Restore loads the persisted cart and login flag. Missing or corrupt
// records initialize empty/false; storage failure does the same and is
// logged. Restore never fails.
func (s *Store) Restore(ctx context.Context) {
	s.items = nil
	s.loggedIn = false
	if s.storage == nil {
		return
	}

	var loadErr error

	items, found, err := s.storage.LoadCart(ctx, s.sessionID)
	if err != nil {
		loadErr = multierr.Append(loadErr, err)
	} else if found {
		s.items = items
	}

	loggedIn, found, err := s.storage.LoadLoginState(ctx, s.sessionID)
	if err != nil {
		loadErr = multierr.Append(loadErr, err)
	} else if found {
		s.loggedIn = loggedIn
	}

	if loadErr != nil {
		s.warnStorage(ctx, "cart.restore.load_failed", loadErr)
	}
}

// AddItem merges the product into the cart: an existing line's quantity is
// incremented, otherwise a new line is appended. Malformed products are
// rejected without mutation; well-formed input never fails.
func (s *Store) AddItem(ctx context.Context, product Product, quantity int) error {
	if err := validateProduct(product); err != nil {
		return err
	}
	if quantity < 1 {
		return pkgerrors.New(pkgerrors.CodeValidation, "quantity must be at least 1")
	}

	merged := false
	for i := range s.items {
		if s.items[i].ProductID == product.ID {
			s.items[i].Quantity += quantity
			merged = true
			break
		}
	}
	if !merged {
		s.items = append(s.items, LineItem{
			ProductID: product.ID,
			Name:      product.Name,
			Category:  product.Category,
			Price:     product.Price,
			Quantity:  quantity,
		})
	}

	s.persist(ctx)
	return nil
}

// RemoveItem drops the line with the matching product id. Removing an
// absent id is a no-op, not an error.
func (s *Store) RemoveItem(ctx context.Context, productID int) {
	kept := s.items[:0]
	removed := false
	for _, item := range s.items {
		if item.ProductID == productID {
			removed = true
			continue
		}
		kept = append(kept, item)
	}
	s.items = kept
	if removed {
		s.persist(ctx)
	}
}

// ChangeQuantity applies a signed delta to the line's quantity. A result at
// or below zero removes the line entirely. An absent id is a no-op.
func (s *Store) ChangeQuantity(ctx context.Context, productID, delta int) {
	for i := range s.items {
		if s.items[i].ProductID != productID {
			continue
		}
		next := s.items[i].Quantity + delta
		if next <= 0 {
			s.RemoveItem(ctx, productID)
			return
		}
		s.items[i].Quantity = next
		s.persist(ctx)
		return
	}
}

// Clear empties the cart.
func (s *Store) Clear(ctx context.Context) {
	s.items = nil
	s.persist(ctx)
}

// Checkout gates on the login flag, then on a non-empty cart, then clears
// the cart atomically and returns a receipt. Refusals leave all state
// untouched.
func (s *Store) Checkout(ctx context.Context) (*Receipt, error) {
	if !s.loggedIn {
		return nil, pkgerrors.New(pkgerrors.CodeLoginRequired, "login before checking out")
	}
	if len(s.items) == 0 {
		return nil, pkgerrors.New(pkgerrors.CodeEmptyCart, "cart is empty")
	}

	receipt := &Receipt{
		OrderID:   uuid.New(),
		Total:     s.Total(),
		ItemCount: s.ItemCount(),
	}
	s.Clear(ctx)
	return receipt, nil
}

// Items returns a copy of the line items in insertion order.
func (s *Store) Items() []LineItem {
	copied := make([]LineItem, len(s.items))
	copy(copied, s.items)
	return copied
}

// Total sums price x quantity across all lines. Zero for an empty cart.
// Rounding to currency precision happens only at the presentation layer.
func (s *Store) Total() decimal.Decimal {
	total := decimal.Zero
	for _, item := range s.items {
		total = total.Add(item.Subtotal())
	}
	return total
}

// ItemCount sums quantities across lines, distinct from the line count.
func (s *Store) ItemCount() int {
	count := 0
	for _, item := range s.items {
		count += item.Quantity
	}
	return count
}

// IsLoggedIn reports the session flag.
func (s *Store) IsLoggedIn() bool {
	return s.loggedIn
}

// SetLoggedIn flips the session flag and persists it independently of the
// cart record.
func (s *Store) SetLoggedIn(ctx context.Context, flag bool) {
	s.loggedIn = flag
	if s.storage == nil {
		return
	}
	if err := s.storage.SaveLoginState(ctx, s.sessionID, flag); err != nil {
		s.warnStorage(ctx, "cart.login_persist_failed", err)
	}
}

func (s *Store) persist(ctx context.Context) {
	if s.storage == nil {
		return
	}
	if err := s.storage.SaveCart(ctx, s.sessionID, s.items); err != nil {
		// No retry: the next mutation will persist the full state again.
		s.warnStorage(ctx, "cart.persist_failed", err)
	}
}

func (s *Store) warnStorage(ctx context.Context, msg string, err error) {
	if s.logg == nil {
		return
	}
	ctx = s.logg.WithFields(ctx, map[string]any{
		"session_id": s.sessionID,
		"error":      err.Error(),
	})
	s.logg.Warn(ctx, msg)
}

func validateProduct(product Product) error {
	if product.ID <= 0 {
		return pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	if strings.TrimSpace(product.Name) == "" {
		return pkgerrors.New(pkgerrors.CodeValidation, "product name is required")
	}
	if product.Price.IsNegative() {
		return pkgerrors.New(pkgerrors.CodeValidation, "product price must be non-negative")
	}
	return nil
}
