package dashboard

import (
	"log"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/gorilla/websocket"

	"github.com/maumcare/counseling-backend/internal/session"
	"github.com/maumcare/counseling-backend/pkg/utils"
)

// Reporter computes the 7-day dashboard as of a point in time.
type Reporter interface {
	Dashboard(now time.Time) session.DashboardReport
}

// Handler 는 관제 대시보드의 HTTP 처리기다.
type Handler struct {
	store        Reporter
	pushInterval time.Duration
	upgrader     websocket.Upgrader
}

// New 는 대시보드 처리기를 만든다.
func New(store Reporter) *Handler {
	return &Handler{
		store:        store,
		pushInterval: 5 * time.Second,
		upgrader: websocket.Upgrader{
			CheckOrigin: func(r *http.Request) bool {
				return true
			},
			ReadBufferSize:  1024,
			WriteBufferSize: 1024,
		},
	}
}

// RegisterRoutes 는 대시보드 라우트를 등록한다.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Get("/dashboard", h.handleDashboard)
	r.Get("/dashboard/live", h.handleLive)
}

func (h *Handler) handleDashboard(w http.ResponseWriter, r *http.Request) {
	report := h.store.Dashboard(time.Now().UTC())
	utils.RespondJSON(w, http.StatusOK, report)
}

// handleLive pushes a fresh report over a websocket on a fixed cadence
// until the client goes away.
func (h *Handler) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := h.upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Printf("[dashboard] websocket upgrade failed: %v", err)
		return
	}
	defer conn.Close()

	done := make(chan struct{})
	go func() {
		defer close(done)
		for {
			// Inbound payloads are ignored; reading only detects the close.
			if _, _, err := conn.ReadMessage(); err != nil {
				return
			}
		}
	}()

	if err := conn.WriteJSON(h.store.Dashboard(time.Now().UTC())); err != nil {
		return
	}

	ticker := time.NewTicker(h.pushInterval)
	defer ticker.Stop()

	for {
		select {
		case <-done:
			return
		case <-r.Context().Done():
			return
		case <-ticker.C:
			if err := conn.WriteJSON(h.store.Dashboard(time.Now().UTC())); err != nil {
				return
			}
		}
	}
}
