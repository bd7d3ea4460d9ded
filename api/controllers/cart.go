package controllers

import (
	"net/http"

	"github.com/google/uuid"

	"github.com/carriedev/hazellab-backend/api/responses"
	"github.com/carriedev/hazellab-backend/api/validators"
	cartsvc "github.com/carriedev/hazellab-backend/internal/cart"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
	"github.com/carriedev/hazellab-backend/pkg/logger"
)

// CreateCartItem adds a product to a user's cart.
func CreateCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var payload cartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		input, err := payload.toInput()
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Create(r.Context(), input)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusCreated, item)
	}
}

func ListCartItems(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		items, err := svc.List(r.Context())
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, items)
	}
}

func GetCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.Get(r.Context(), id)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, item)
	}
}

// ListCartItemsByUser returns the cart of one user with products preloaded.
func ListCartItemsByUser(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		usuarioID, err := validators.ParseUUIDParam(r, "usuarioId")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		items, err := svc.ListByUser(r.Context(), usuarioID)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, items)
	}
}

// UpdateCartItem replaces a cart line. Only the quantity is applied; the
// user and product bindings are fixed at creation.
func UpdateCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartItemRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpdateQuantity(r.Context(), id, payload.Cantidad)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, item)
	}
}

// UpdateCartItemQuantity changes only the quantity of an existing line.
func UpdateCartItemQuantity(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		var payload cartQuantityRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		item, err := svc.UpdateQuantity(r.Context(), id, payload.Cantidad)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteJSON(w, http.StatusOK, item)
	}
}

func DeleteCartItem(svc cartsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := validators.ParseUUIDParam(r, "id")
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if err := svc.Delete(r.Context(), id); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}
		responses.WriteNoContent(w)
	}
}

type cartItemRequest struct {
	UsuarioID  string `json:"usuarioId" validate:"required"`
	ProductoID string `json:"productoId" validate:"required"`
	Cantidad   int    `json:"cantidad" validate:"required,min=1"`
}

type cartQuantityRequest struct {
	Cantidad int `json:"cantidad" validate:"required,min=1"`
}

func (r cartItemRequest) toInput() (cartsvc.CreateCartItemInput, error) {
	usuarioID, err := uuid.Parse(r.UsuarioID)
	if err != nil {
		return cartsvc.CreateCartItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "usuario inválido")
	}
	productoID, err := uuid.Parse(r.ProductoID)
	if err != nil {
		return cartsvc.CreateCartItemInput{}, pkgerrors.Wrap(pkgerrors.CodeValidation, err, "producto inválido")
	}

	return cartsvc.CreateCartItemInput{
		UsuarioID:  usuarioID,
		ProductoID: productoID,
		Quantity:   r.Cantidad,
	}, nil
}
