package wishlist

import (
	"context"
	"fmt"
	"sort"
	"strconv"

	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
)

// setClient is the redis set surface the wishlist needs.
type setClient interface {
	SAdd(ctx context.Context, key string, members ...any) (int64, error)
	SRem(ctx context.Context, key string, members ...any) (int64, error)
	SMembers(ctx context.Context, key string) ([]string, error)
	SIsMember(ctx context.Context, key string, member any) (bool, error)
	WishlistKey(sessionID string) string
}

// Service tracks per-session wishlisted product ids. Unlike the cart there
// is no in-memory fallback: a storage failure surfaces as a dependency
// error.
type Service interface {
	Toggle(ctx context.Context, sessionID string, productID int) (bool, error)
	List(ctx context.Context, sessionID string) ([]int, error)
}

type service struct {
	client setClient
}

// NewService builds the wishlist service on the shared redis client.
func NewService(client setClient) (Service, error) {
	if client == nil {
		return nil, fmt.Errorf("redis client required")
	}
	return &service{client: client}, nil
}

// Toggle flips membership for the product and reports the new state:
// true when the product is now wishlisted.
func (s *service) Toggle(ctx context.Context, sessionID string, productID int) (bool, error) {
	if productID <= 0 {
		return false, pkgerrors.New(pkgerrors.CodeValidation, "product id is required")
	}
	key := s.client.WishlistKey(sessionID)
	member := strconv.Itoa(productID)

	wishlisted, err := s.client.SIsMember(ctx, key, member)
	if err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read wishlist")
	}
	if wishlisted {
		if _, err := s.client.SRem(ctx, key, member); err != nil {
			return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update wishlist")
		}
		return false, nil
	}
	if _, err := s.client.SAdd(ctx, key, member); err != nil {
		return false, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "update wishlist")
	}
	return true, nil
}

// List returns the wishlisted product ids in ascending order.
func (s *service) List(ctx context.Context, sessionID string) ([]int, error) {
	members, err := s.client.SMembers(ctx, s.client.WishlistKey(sessionID))
	if err != nil {
		return nil, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "read wishlist")
	}
	ids := make([]int, 0, len(members))
	for _, member := range members {
		id, err := strconv.Atoi(member)
		if err != nil {
			// Skip records that predate the integer-id format.
			continue
		}
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids, nil
}
