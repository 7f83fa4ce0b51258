package cart

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/shopsbuzz/shopsbuzz-backend/api/middleware"
	cartsvc "github.com/shopsbuzz/shopsbuzz-backend/internal/cart"
	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
)

func newTestRouter(t *testing.T) (chi.Router, cartsvc.Service) {
	t.Helper()

	svc, err := cartsvc.NewService(cartsvc.NewMemoryStorage(), nil, nil)
	if err != nil {
		t.Fatalf("build cart service: %v", err)
	}

	r := chi.NewRouter()
	r.Use(middleware.Session(nil))
	r.Get("/cart", CartFetch(svc, nil))
	r.Post("/cart/items", CartAddItem(svc, nil))
	r.Patch("/cart/items/{productId}", CartChangeQuantity(svc, nil))
	r.Delete("/cart/items/{productId}", CartRemoveItem(svc, nil))
	r.Delete("/cart", CartClear(svc, nil))
	r.Post("/checkout", Checkout(svc, nil))
	return r, svc
}

func doJSON(t *testing.T, r chi.Router, method, path, session, body string) *httptest.ResponseRecorder {
	t.Helper()

	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	if session != "" {
		req.Header.Set("X-Session-Id", session)
	}
	rec := httptest.NewRecorder()
	r.ServeHTTP(rec, req)
	return rec
}

func decodeCart(t *testing.T, rec *httptest.ResponseRecorder) cartView {
	t.Helper()

	var envelope struct {
		Data cartView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode cart payload: %v", err)
	}
	return envelope.Data
}

func addDress(t *testing.T, r chi.Router, session string, quantity int) *httptest.ResponseRecorder {
	t.Helper()

	body := `{"product_id":101,"name":"Floral Dress","category":"women","price":"49.99"`
	if quantity > 0 {
		body += `,"quantity":` + jsonInt(quantity)
	}
	body += `}`
	return doJSON(t, r, http.MethodPost, "/cart/items", session, body)
}

func jsonInt(v int) string {
	b, _ := json.Marshal(v)
	return string(b)
}

func TestCartAddMergesLines(t *testing.T) {
	r, _ := newTestRouter(t)

	if rec := addDress(t, r, "s1", 0); rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d: %s", rec.Code, rec.Body.String())
	}
	rec := addDress(t, r, "s1", 2)
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}

	view := decodeCart(t, rec)
	if len(view.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(view.Items))
	}
	if view.Items[0].Quantity != 3 {
		t.Fatalf("expected quantity 3, got %d", view.Items[0].Quantity)
	}
	if view.Total != "149.97" {
		t.Fatalf("unexpected total %s", view.Total)
	}
}

func TestCartSessionsAreIsolated(t *testing.T) {
	r, _ := newTestRouter(t)

	addDress(t, r, "s1", 0)

	rec := doJSON(t, r, http.MethodGet, "/cart", "s2", "")
	view := decodeCart(t, rec)
	if view.ItemCount != 0 {
		t.Fatalf("expected empty cart for fresh session, got %d items", view.ItemCount)
	}
}

func TestCartChangeQuantityRemovesAtZero(t *testing.T) {
	r, _ := newTestRouter(t)
	addDress(t, r, "s1", 2)

	rec := doJSON(t, r, http.MethodPatch, "/cart/items/101", "s1", `{"delta":-2}`)
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", rec.Code, rec.Body.String())
	}
	if view := decodeCart(t, rec); len(view.Items) != 0 {
		t.Fatalf("expected line removed, got %v", view.Items)
	}
}

func TestCartRemoveAbsentProductIsNoop(t *testing.T) {
	r, _ := newTestRouter(t)
	addDress(t, r, "s1", 0)

	rec := doJSON(t, r, http.MethodDelete, "/cart/items/999", "s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if view := decodeCart(t, rec); len(view.Items) != 1 {
		t.Fatalf("expected existing line untouched, got %v", view.Items)
	}
}

func TestCartClear(t *testing.T) {
	r, _ := newTestRouter(t)
	addDress(t, r, "s1", 3)

	rec := doJSON(t, r, http.MethodDelete, "/cart", "s1", "")
	if view := decodeCart(t, rec); view.ItemCount != 0 {
		t.Fatalf("expected cleared cart, got %d items", view.ItemCount)
	}
}

func TestCartAddRejectsMalformedProduct(t *testing.T) {
	r, _ := newTestRouter(t)

	rec := doJSON(t, r, http.MethodPost, "/cart/items", "s1", `{"product_id":101,"name":"Floral Dress","price":"not-a-number"}`)
	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", rec.Code)
	}

	var envelope struct {
		Error struct {
			Code string `json:"code"`
		} `json:"error"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode error payload: %v", err)
	}
	if envelope.Error.Code != string(pkgerrors.CodeValidation) {
		t.Fatalf("unexpected code %s", envelope.Error.Code)
	}
}

func TestCheckoutRequiresLoginThenEmptiesCart(t *testing.T) {
	r, svc := newTestRouter(t)
	addDress(t, r, "s1", 1)

	rec := doJSON(t, r, http.MethodPost, "/checkout", "s1", "")
	if rec.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401 before login, got %d", rec.Code)
	}

	if _, err := svc.SetLoggedIn(context.Background(), "s1", true); err != nil {
		t.Fatalf("set login flag: %v", err)
	}

	rec = doJSON(t, r, http.MethodPost, "/checkout", "s1", "")
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 after login, got %d: %s", rec.Code, rec.Body.String())
	}

	var envelope struct {
		Data receiptView `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode receipt: %v", err)
	}
	if envelope.Data.Total != "49.99" || envelope.Data.ItemCount != 1 {
		t.Fatalf("unexpected receipt %+v", envelope.Data)
	}
	if envelope.Data.OrderID == "" {
		t.Fatalf("expected order id")
	}

	rec = doJSON(t, r, http.MethodGet, "/cart", "s1", "")
	if view := decodeCart(t, rec); view.ItemCount != 0 {
		t.Fatalf("expected cart emptied after checkout, got %d items", view.ItemCount)
	}

	rec = doJSON(t, r, http.MethodPost, "/checkout", "s1", "")
	if rec.Code != http.StatusUnprocessableEntity {
		t.Fatalf("expected 422 for empty cart, got %d", rec.Code)
	}
}
