package controllers

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/google/uuid"

	cartsvc "github.com/carriedev/hazellab-backend/internal/cart"
)

type stubCartService struct {
	createFn         func(ctx context.Context, input cartsvc.CreateCartItemInput) (*cartsvc.CartItemDTO, error)
	listByUserFn     func(ctx context.Context, usuarioID uuid.UUID) ([]cartsvc.CartItemDTO, error)
	updateQuantityFn func(ctx context.Context, id uuid.UUID, quantity int) (*cartsvc.CartItemDTO, error)
}

func (s stubCartService) Create(ctx context.Context, input cartsvc.CreateCartItemInput) (*cartsvc.CartItemDTO, error) {
	return s.createFn(ctx, input)
}

func (s stubCartService) Get(ctx context.Context, id uuid.UUID) (*cartsvc.CartItemDTO, error) {
	return nil, nil
}

func (s stubCartService) List(ctx context.Context) ([]cartsvc.CartItemDTO, error) {
	return nil, nil
}

func (s stubCartService) ListByUser(ctx context.Context, usuarioID uuid.UUID) ([]cartsvc.CartItemDTO, error) {
	return s.listByUserFn(ctx, usuarioID)
}

func (s stubCartService) UpdateQuantity(ctx context.Context, id uuid.UUID, quantity int) (*cartsvc.CartItemDTO, error) {
	return s.updateQuantityFn(ctx, id, quantity)
}

func (s stubCartService) Delete(ctx context.Context, id uuid.UUID) error {
	return nil
}

func TestCreateCartItemSuccess(t *testing.T) {
	usuarioID := uuid.New()
	productoID := uuid.New()
	svc := stubCartService{
		createFn: func(ctx context.Context, input cartsvc.CreateCartItemInput) (*cartsvc.CartItemDTO, error) {
			if input.UsuarioID != usuarioID || input.ProductoID != productoID {
				t.Fatalf("unexpected input: %+v", input)
			}
			if input.Quantity != 3 {
				t.Fatalf("unexpected quantity: %d", input.Quantity)
			}
			return &cartsvc.CartItemDTO{ID: uuid.New()}, nil
		},
	}

	body := []byte(`{"usuarioId":"` + usuarioID.String() + `","productoId":"` + productoID.String() + `","cantidad":3}`)
	req := httptest.NewRequest(http.MethodPost, "/api/itemscarrito", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	CreateCartItem(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusCreated {
		t.Fatalf("expected 201 got %d: %s", resp.Code, resp.Body.String())
	}
}

func TestCreateCartItemRejectsZeroQuantity(t *testing.T) {
	svc := stubCartService{
		createFn: func(ctx context.Context, input cartsvc.CreateCartItemInput) (*cartsvc.CartItemDTO, error) {
			t.Fatal("service should not be called")
			return nil, nil
		},
	}

	body := []byte(`{"usuarioId":"` + uuid.NewString() + `","productoId":"` + uuid.NewString() + `","cantidad":0}`)
	req := httptest.NewRequest(http.MethodPost, "/api/itemscarrito", bytes.NewReader(body))
	resp := httptest.NewRecorder()

	CreateCartItem(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 got %d", resp.Code)
	}
}

func TestUpdateCartItemQuantity(t *testing.T) {
	id := uuid.New()
	svc := stubCartService{
		updateQuantityFn: func(ctx context.Context, gotID uuid.UUID, quantity int) (*cartsvc.CartItemDTO, error) {
			if gotID != id || quantity != 7 {
				t.Fatalf("unexpected call: %s %d", gotID, quantity)
			}
			return &cartsvc.CartItemDTO{ID: gotID, Quantity: 7}, nil
		},
	}

	req := httptest.NewRequest(http.MethodPut, "/api/itemscarrito/"+id.String()+"/cantidad", bytes.NewReader([]byte(`{"cantidad":7}`)))
	req = withURLParam(req, "id", id.String())
	resp := httptest.NewRecorder()

	UpdateCartItemQuantity(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}

func TestListCartItemsByUser(t *testing.T) {
	usuarioID := uuid.New()
	svc := stubCartService{
		listByUserFn: func(ctx context.Context, gotID uuid.UUID) ([]cartsvc.CartItemDTO, error) {
			if gotID != usuarioID {
				t.Fatalf("unexpected user id: %s", gotID)
			}
			return []cartsvc.CartItemDTO{{ID: uuid.New()}}, nil
		},
	}

	req := httptest.NewRequest(http.MethodGet, "/api/itemscarrito/usuario/"+usuarioID.String(), nil)
	req = withURLParam(req, "usuarioId", usuarioID.String())
	resp := httptest.NewRecorder()

	ListCartItemsByUser(svc, nil).ServeHTTP(resp, req)
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200 got %d", resp.Code)
	}
}
