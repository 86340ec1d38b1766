package chat

import (
	"context"
	"encoding/json"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	chatmodel "github.com/maumcare/counseling-backend/internal/model/chat"
	"github.com/maumcare/counseling-backend/pkg/utils"
)

// TurnProcessor runs one user message through the counseling graph.
type TurnProcessor interface {
	ProcessTurn(ctx context.Context, sessionID, userText string) chatmodel.TurnState
}

// Handler 는 상담 대화의 HTTP 처리기다.
type Handler struct {
	orch TurnProcessor
}

// New 는 상담 처리기를 만든다.
func New(orch TurnProcessor) *Handler {
	return &Handler{orch: orch}
}

// RegisterRoutes 는 상담 관련 라우트를 등록한다.
func (h *Handler) RegisterRoutes(r chi.Router) {
	r.Post("/chat", h.handleChat)
}

// Meta carries the routing flags of the completed turn.
type Meta struct {
	Crisis      bool `json:"crisis"`
	EndSession  bool `json:"endSession"`
	NeedSummary bool `json:"needSummary"`
}

// Response is the chat endpoint's reply payload, shared with the SSE
// stream handler's final event.
type Response struct {
	Reply        string               `json:"reply"`
	SessionID    string               `json:"sessionId"`
	Meta         Meta                 `json:"meta"`
	SearchResult []chatmodel.Resource `json:"searchResult"`
}

// ResponseFromState projects a completed turn into the wire payload.
// searchResult is always an array, never null.
func ResponseFromState(st chatmodel.TurnState) Response {
	searchResult := st.SearchResult
	if searchResult == nil {
		searchResult = []chatmodel.Resource{}
	}

	return Response{
		Reply:     st.LastAssistant(),
		SessionID: st.SessionID,
		Meta: Meta{
			Crisis:      st.Crisis,
			EndSession:  st.EndSession,
			NeedSummary: st.NeedSummary,
		},
		SearchResult: searchResult,
	}
}

func (h *Handler) handleChat(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Message   string `json:"message"`
		SessionID string `json:"sessionId"`
	}

	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		utils.RespondError(w, http.StatusBadRequest, "invalid request body")
		return
	}

	message := strings.TrimSpace(payload.Message)
	if message == "" {
		utils.RespondError(w, http.StatusBadRequest, "No message provided.")
		return
	}

	sessionID := strings.TrimSpace(payload.SessionID)
	if sessionID == "" {
		sessionID = uuid.NewString()
	}

	st := h.orch.ProcessTurn(r.Context(), sessionID, message)
	utils.RespondJSON(w, http.StatusOK, ResponseFromState(st))
}
