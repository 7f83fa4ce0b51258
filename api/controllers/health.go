package controllers

import (
	"context"
	"net/http"

	"github.com/shopsbuzz/shopsbuzz-backend/api/responses"
	"github.com/shopsbuzz/shopsbuzz-backend/pkg/config"
	pkgerrors "github.com/shopsbuzz/shopsbuzz-backend/pkg/errors"
)

// Pinger reports whether the durable store is reachable.
type Pinger interface {
	Ping(ctx context.Context) error
}

func HealthLive(cfg *config.Config) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shopsbuzz-Env", cfg.App.Env)
		responses.WriteSuccess(w, map[string]string{"status": "live"})
	}
}

// HealthReady confirms the process can serve traffic. Readiness requires
// the session store to answer a ping; liveness does not.
func HealthReady(cfg *config.Config, store Pinger) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Shopsbuzz-Env", cfg.App.Env)

		if store != nil {
			if err := store.Ping(r.Context()); err != nil {
				responses.WriteError(r.Context(), nil, w, pkgerrors.Wrap(pkgerrors.CodeDependency, err, "session store unreachable"))
				return
			}
		}

		responses.WriteSuccess(w, map[string]string{"status": "ready"})
	}
}
