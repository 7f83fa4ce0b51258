package cart

import (
	"context"
	"testing"

	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
)

func newTestService(t *testing.T, storage Storage) Service {
	t.Helper()
	svc, err := NewService(storage, nil, nil)
	if err != nil {
		t.Fatalf("NewService: %v", err)
	}
	return svc
}

func TestServiceRequiresStorage(t *testing.T) {
	if _, err := NewService(nil, nil, nil); err == nil {
		t.Fatal("expected error for nil storage")
	}
}

func TestServiceAddAndSnapshotAcrossCalls(t *testing.T) {
	ctx := context.Background()
	storage := NewMemoryStorage()
	svc := newTestService(t, storage)

	snap, err := svc.AddItem(ctx, "s1", dress(), 2)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if snap.ItemCount != 2 || len(snap.Items) != 1 {
		t.Fatalf("unexpected snapshot %+v", snap)
	}

	// A second call sees the persisted state, not in-process leftovers.
	snap, err = svc.AddItem(ctx, "s1", dress(), 1)
	if err != nil {
		t.Fatalf("add failed: %v", err)
	}
	if snap.ItemCount != 3 || len(snap.Items) != 1 {
		t.Fatalf("expected merged line across calls, got %+v", snap)
	}

	// Sessions are isolated.
	other, err := svc.Snapshot(ctx, "s2")
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if other.ItemCount != 0 {
		t.Fatalf("expected empty cart for other session, got %+v", other)
	}
}

func TestServiceRejectedAddReturnsError(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, NewMemoryStorage())

	_, err := svc.AddItem(ctx, "s1", Product{Name: "no id", Price: price("1")}, 1)
	if err == nil {
		t.Fatal("expected validation error")
	}
	if code := pkgerrors.As(err).Code(); code != pkgerrors.CodeValidation {
		t.Fatalf("expected validation code, got %s", code)
	}
}

func TestServiceCheckoutFlow(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, NewMemoryStorage())

	if _, err := svc.AddItem(ctx, "s1", tee(), 1); err != nil {
		t.Fatalf("add failed: %v", err)
	}

	if _, err := svc.Checkout(ctx, "s1"); pkgerrors.As(err).Code() != pkgerrors.CodeLoginRequired {
		t.Fatalf("expected login gate, got %v", err)
	}

	if _, err := svc.SetLoggedIn(ctx, "s1", true); err != nil {
		t.Fatalf("set logged in failed: %v", err)
	}

	result, err := svc.Checkout(ctx, "s1")
	if err != nil {
		t.Fatalf("checkout failed: %v", err)
	}
	if !result.Total.Equal(price("24.99")) || result.ItemCount != 1 {
		t.Fatalf("unexpected result %+v", result)
	}

	snap, err := svc.Snapshot(ctx, "s1")
	if err != nil {
		t.Fatalf("snapshot failed: %v", err)
	}
	if snap.ItemCount != 0 || !snap.LoggedIn {
		t.Fatalf("expected cleared cart with login retained, got %+v", snap)
	}
}

func TestServiceRemoveAndChangeQuantity(t *testing.T) {
	ctx := context.Background()
	svc := newTestService(t, NewMemoryStorage())

	if _, err := svc.AddItem(ctx, "s1", dress(), 2); err != nil {
		t.Fatalf("add failed: %v", err)
	}
	snap, err := svc.ChangeQuantity(ctx, "s1", 101, -2)
	if err != nil {
		t.Fatalf("change failed: %v", err)
	}
	if len(snap.Items) != 0 {
		t.Fatalf("expected floor removal, got %+v", snap.Items)
	}

	snap, err = svc.RemoveItem(ctx, "s1", 999)
	if err != nil {
		t.Fatalf("remove failed: %v", err)
	}
	if len(snap.Items) != 0 {
		t.Fatalf("expected no-op remove, got %+v", snap.Items)
	}
}
