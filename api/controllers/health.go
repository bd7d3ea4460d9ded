package controllers

import (
	"net/http"

	"github.com/carriedev/hazellab-backend/api/responses"
	"github.com/carriedev/hazellab-backend/pkg/config"
	"github.com/carriedev/hazellab-backend/pkg/db"
	pkgerrors "github.com/carriedev/hazellab-backend/pkg/errors"
	"github.com/carriedev/hazellab-backend/pkg/logger"
	"github.com/carriedev/hazellab-backend/pkg/redis"
)

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hazellab-Env", cfg.App.Env)
		responses.WriteJSON(w, http.StatusOK, map[string]string{"status": "live"})
	}
}

// HealthReady pings the backing stores before reporting readiness.
func HealthReady(cfg *config.Config, logg *logger.Logger, dbP db.Pinger, redisP redis.Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Hazellab-Env", cfg.App.Env)

		checks := map[string]string{}
		failed := false

		if dbP != nil {
			if err := dbP.Ping(r.Context()); err != nil {
				checks["database"] = err.Error()
				failed = true
			} else {
				checks["database"] = "ok"
			}
		}
		if redisP != nil {
			if err := redisP.Ping(r.Context()); err != nil {
				checks["redis"] = err.Error()
				failed = true
			} else {
				checks["redis"] = "ok"
			}
		}

		if failed {
			err := pkgerrors.New(pkgerrors.CodeDependency, "dependencias no disponibles")
			if logg != nil {
				logg.Error(logg.WithFields(r.Context(), map[string]any{"checks": checks}), "health.ready.failed", err)
			}
			responses.WriteError(r.Context(), logg, w, err)
			return
		}

		responses.WriteJSON(w, http.StatusOK, map[string]any{
			"status": "ready",
			"checks": checks,
		})
	}
}
