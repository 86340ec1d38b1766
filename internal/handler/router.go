package handler

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"

	chathandler "github.com/maumcare/counseling-backend/internal/handler/chat"
	dashboardhandler "github.com/maumcare/counseling-backend/internal/handler/dashboard"
	streamhandler "github.com/maumcare/counseling-backend/internal/handler/stream"
	middlewarePkg "github.com/maumcare/counseling-backend/internal/middleware"
	"github.com/maumcare/counseling-backend/internal/orchestrator"
	"github.com/maumcare/counseling-backend/internal/session"
)

// NewRouter wires HTTP routes to core services.
func NewRouter(orch *orchestrator.Orchestrator, store *session.Store) http.Handler {
	r := chi.NewRouter()

	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(middleware.Logger)
	r.Use(middleware.Recoverer)
	r.Use(middlewarePkg.CORS)

	chatHandler := chathandler.New(orch)
	dashboardHandler := dashboardhandler.New(store)
	streamHandler := streamhandler.New(orch)

	r.Route("/api", func(api chi.Router) {
		chatHandler.RegisterRoutes(api)
		dashboardHandler.RegisterRoutes(api)
		api.Get("/chat/stream", streamHandler.HandleStream)
	})

	return r
}
