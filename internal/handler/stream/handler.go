package stream

import (
	"context"
	"net/http"
	"strings"

	"github.com/google/uuid"

	chathandler "github.com/maumcare/counseling-backend/internal/handler/chat"
	chatmodel "github.com/maumcare/counseling-backend/internal/model/chat"
	"github.com/maumcare/counseling-backend/internal/orchestrator"
	"github.com/maumcare/counseling-backend/pkg/utils"
)

// TurnStreamer runs a turn while reporting node entries.
type TurnStreamer interface {
	ProcessTurnObserved(ctx context.Context, sessionID, userText string, observe orchestrator.Observer) chatmodel.TurnState
}

// Handler streams a turn's progress over Server-Sent Events: one "status"
// event per node, then a final "result" event with the chat payload.
type Handler struct {
	orch TurnStreamer
}

// New creates a stream handler.
func New(orch TurnStreamer) *Handler {
	return &Handler{orch: orch}
}

// HandleStream serves one streamed turn. The turn itself runs to
// completion even if the client disconnects mid-stream.
func (h *Handler) HandleStream(w http.ResponseWriter, r *http.Request) {
	flusher, ok := w.(http.Flusher)
	if !ok {
		utils.RespondError(w, http.StatusInternalServerError, "streaming unsupported")
		return
	}

	message := strings.TrimSpace(r.URL.Query().Get("message"))
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "message query parameter is required")
		return
	}

	sessionID := strings.TrimSpace(r.URL.Query().Get("sessionId"))
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	utils.SetupSSEHeaders(w)

	clientGone := r.Context()
	observe := func(node orchestrator.Node) {
		if clientGone.Err() != nil {
			return
		}
		utils.SendSSEEvent(w, flusher, "status", map[string]string{
			"node":      string(node),
			"sessionId": sessionID,
		})
	}

	st := h.orch.ProcessTurnObserved(r.Context(), sessionID, message, observe)

	if clientGone.Err() != nil {
		return
	}
	utils.SendSSEEvent(w, flusher, "result", chathandler.ResponseFromState(st))
}
