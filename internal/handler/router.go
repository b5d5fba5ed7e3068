package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	"github.com/sulnaq/snti/backend/internal/handler/chat"
	middlewarePkg "github.com/sulnaq/snti/backend/internal/middleware"
	"github.com/sulnaq/snti/backend/internal/service/conversation"
	"github.com/sulnaq/snti/backend/internal/store"
	"github.com/sulnaq/snti/backend/pkg/utils"
)

// NewRouter wires HTTP routes to core services. metricsHandler may be nil
// when metrics are disabled.
func NewRouter(convSvc *conversation.Service, repo store.Repository, metricsHandler http.Handler) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chat.New(convSvc, repo)
	wsHandler := chat.NewWebSocketHandler(convSvc)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		wsHandler.RegisterWebSocketRoutes(api)

		api.Get("/health", func(w http.ResponseWriter, r *http.Request) {
			utils.RespondJSON(w, http.StatusOK, map[string]string{"status": "ok"})
		})
	})

	if metricsHandler != nil {
		r.Handle("/metrics", metricsHandler)
	}

	return r
}
