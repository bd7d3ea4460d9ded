package controllers

import (
	"net/http"

	"github.com/carriedev/hazellab-backend/api/responses"
	"github.com/carriedev/hazellab-backend/api/validators"
	authsvc "github.com/carriedev/hazellab-backend/internal/auth"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
	"github.com/carriedev/hazellab-backend/pkg/logger"
)

// AuthLogin authenticates back-office credentials. The dashboard is admin
// only, so valid credentials on a non-admin account are rejected outright.
func AuthLogin(svc authsvc.Service, logg *logger.Logger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if svc == nil {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeInternal, "auth service unavailable"))
			return
		}

		var payload authsvc.LoginRequest
		if err := validators.DecodeJSONBody(r, &payload); err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		result, err := svc.Login(r.Context(), payload)
		if err != nil {
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		if result.User == nil || !result.User.Role.IsAdmin() {
			responses.WriteError(r.Context(), logg, w, pkgerrors.New(pkgerrors.CodeForbidden, "Acceso solo para administradores"))
			return
		}

		w.Header().Set("X-Auth-Token", result.AccessToken)
		responses.WriteJSON(w, http.StatusOK, result.User)
	}
}
