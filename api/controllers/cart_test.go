package controllers

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"

	"github.com/koodakziba/koodakziba-backend/api/middleware"
	"github.com/koodakziba/koodakziba-backend/internal/cart"
	pkgerrors "github.com/koodakziba/koodakziba-backend/pkg/errors"
)

type stubCartService struct {
	priced      *cart.PricedCart
	err         error
	lastSession string
	lastProduct int
	lastQty     int
	lastSize    string
	lastColor   string
	cleared     bool
}

func (s *stubCartService) View(ctx context.Context, sessionID string) (*cart.PricedCart, error) {
	s.lastSession = sessionID
	return s.priced, s.err
}

func (s *stubCartService) AddItem(ctx context.Context, sessionID string, productID, quantity int, size, color string) (*cart.PricedCart, error) {
	s.lastSession = sessionID
	s.lastProduct = productID
	s.lastQty = quantity
	s.lastSize = size
	s.lastColor = color
	return s.priced, s.err
}

func (s *stubCartService) UpdateItem(ctx context.Context, sessionID string, productID, quantity int) (*cart.PricedCart, error) {
	s.lastSession = sessionID
	s.lastProduct = productID
	s.lastQty = quantity
	return s.priced, s.err
}

func (s *stubCartService) RemoveItem(ctx context.Context, sessionID string, productID int) (*cart.PricedCart, error) {
	s.lastSession = sessionID
	s.lastProduct = productID
	return s.priced, s.err
}

func (s *stubCartService) Clear(ctx context.Context, sessionID string) error {
	s.lastSession = sessionID
	s.cleared = true
	return s.err
}

func withCartSession(req *http.Request, sessionID string) *http.Request {
	return req.WithContext(middleware.WithCartSession(req.Context(), sessionID))
}

func withProductParam(req *http.Request, id string) *http.Request {
	rctx := chi.NewRouteContext()
	rctx.URLParams.Add("productId", id)
	return req.WithContext(context.WithValue(req.Context(), chi.RouteCtxKey, rctx))
}

func TestCartViewUsesSession(t *testing.T) {
	svc := &stubCartService{priced: &cart.PricedCart{Items: []cart.PricedLine{}, Total: 0}}
	handler := CartView(svc, nil)

	req := withCartSession(httptest.NewRequest(http.MethodGet, "/cart", nil), "sess-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastSession != "sess-1" {
		t.Fatalf("expected session sess-1, got %q", svc.lastSession)
	}
}

func TestCartViewWithoutSession(t *testing.T) {
	handler := CartView(&stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodGet, "/cart", nil)
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500 without a session, got %d", rec.Code)
	}
}

func TestCartAddItem(t *testing.T) {
	svc := &stubCartService{priced: &cart.PricedCart{Total: 2000}}
	handler := CartAddItem(svc, nil)

	body := `{"product_id":1,"quantity":2,"size":"M","color":"blue"}`
	req := withCartSession(httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewBufferString(body)), "sess-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastProduct != 1 || svc.lastQty != 2 || svc.lastSize != "M" || svc.lastColor != "blue" {
		t.Fatalf("service called with %d/%d/%s/%s", svc.lastProduct, svc.lastQty, svc.lastSize, svc.lastColor)
	}

	var envelope struct {
		Data cart.PricedCart `json:"data"`
	}
	if err := json.Unmarshal(rec.Body.Bytes(), &envelope); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if envelope.Data.Total != 2000 {
		t.Fatalf("expected total 2000, got %d", envelope.Data.Total)
	}
}

func TestCartAddItemUnknownProduct(t *testing.T) {
	svc := &stubCartService{err: pkgerrors.New(pkgerrors.CodeNotFound, "product not found")}
	handler := CartAddItem(svc, nil)

	body := `{"product_id":42,"quantity":1}`
	req := withCartSession(httptest.NewRequest(http.MethodPost, "/cart/items", bytes.NewBufferString(body)), "sess-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusNotFound {
		t.Fatalf("expected 404 got %d", rec.Code)
	}
}

func TestCartUpdateItem(t *testing.T) {
	svc := &stubCartService{priced: &cart.PricedCart{}}
	handler := CartUpdateItem(svc, nil)

	body := `{"quantity":5}`
	req := httptest.NewRequest(http.MethodPatch, "/cart/items/7", bytes.NewBufferString(body))
	req = withProductParam(withCartSession(req, "sess-1"), "7")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d: %s", rec.Code, rec.Body.String())
	}
	if svc.lastProduct != 7 || svc.lastQty != 5 {
		t.Fatalf("service called with %d/%d", svc.lastProduct, svc.lastQty)
	}
}

func TestCartUpdateItemBadID(t *testing.T) {
	handler := CartUpdateItem(&stubCartService{}, nil)

	req := httptest.NewRequest(http.MethodPatch, "/cart/items/abc", bytes.NewBufferString(`{"quantity":5}`))
	req = withProductParam(withCartSession(req, "sess-1"), "abc")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", rec.Code)
	}
}

func TestCartRemoveItem(t *testing.T) {
	svc := &stubCartService{priced: &cart.PricedCart{}}
	handler := CartRemoveItem(svc, nil)

	req := httptest.NewRequest(http.MethodDelete, "/cart/items/3", nil)
	req = withProductParam(withCartSession(req, "sess-1"), "3")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if svc.lastProduct != 3 {
		t.Fatalf("expected product 3, got %d", svc.lastProduct)
	}
}

func TestCartClear(t *testing.T) {
	svc := &stubCartService{}
	handler := CartClear(svc, nil)

	req := withCartSession(httptest.NewRequest(http.MethodDelete, "/cart", nil), "sess-1")
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", rec.Code)
	}
	if !svc.cleared {
		t.Fatal("clear not invoked")
	}
}
