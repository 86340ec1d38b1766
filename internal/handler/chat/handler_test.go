package chat

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/go-chi/chi/v5"

	chatmodel "github.com/maumcare/counseling-backend/internal/model/chat"
)

type fakeProcessor struct {
	calls     int
	sessionID string
	userText  string
}

func (f *fakeProcessor) ProcessTurn(_ context.Context, sessionID, userText string) chatmodel.TurnState {
	f.calls++
	f.sessionID = sessionID
	f.userText = userText
	return chatmodel.TurnState{
		SessionID: sessionID,
		Messages: []chatmodel.Message{
			{Role: chatmodel.RoleUser, Content: userText, CreatedAt: time.Now().UTC()},
			{Role: chatmodel.RoleAssistant, Content: "말씀해 주셔서 감사합니다.", CreatedAt: time.Now().UTC()},
		},
		Crisis: true,
	}
}

func setupRouter() (*chi.Mux, *fakeProcessor) {
	proc := &fakeProcessor{}
	handler := New(proc)

	r := chi.NewRouter()
	handler.RegisterRoutes(r)
	return r, proc
}

func postChat(r http.Handler, body map[string]string) *httptest.ResponseRecorder {
	payload, _ := json.Marshal(body)
	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader(payload))
	req.Header.Set("Content-Type", "application/json")
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)
	return resp
}

func TestChatReturnsTurnResult(t *testing.T) {
	r, proc := setupRouter()

	resp := postChat(r, map[string]string{"message": "안녕하세요", "sessionId": "s1"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}

	var body Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.Reply == "" {
		t.Fatal("expected non-empty reply")
	}
	if body.SessionID != "s1" {
		t.Fatalf("expected sessionId s1, got %q", body.SessionID)
	}
	if !body.Meta.Crisis {
		t.Fatal("expected crisis meta propagated")
	}
	if body.SearchResult == nil {
		t.Fatal("searchResult must always be an array")
	}
	if proc.userText != "안녕하세요" {
		t.Fatalf("expected trimmed message forwarded, got %q", proc.userText)
	}
}

func TestChatGeneratesSessionID(t *testing.T) {
	r, proc := setupRouter()

	resp := postChat(r, map[string]string{"message": "안녕하세요"})
	if resp.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", resp.Code)
	}
	if proc.sessionID == "" {
		t.Fatal("expected a generated sessionId")
	}

	var body Response
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if body.SessionID != proc.sessionID {
		t.Fatalf("response sessionId %q does not match processed %q", body.SessionID, proc.sessionID)
	}
}

func TestChatEmptyMessageRejected(t *testing.T) {
	r, proc := setupRouter()

	resp := postChat(r, map[string]string{"message": "   "})
	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}

	var body map[string]string
	if err := json.Unmarshal(resp.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode error body: %v", err)
	}
	if body["error"] == "" {
		t.Fatal("expected structured error body")
	}
	if proc.calls != 0 {
		t.Fatalf("orchestrator must not run for an empty message, got %d calls", proc.calls)
	}
}

func TestChatInvalidJSONRejected(t *testing.T) {
	r, proc := setupRouter()

	req := httptest.NewRequest(http.MethodPost, "/chat", bytes.NewReader([]byte("{broken")))
	resp := httptest.NewRecorder()
	r.ServeHTTP(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
	if proc.calls != 0 {
		t.Fatal("orchestrator must not run for a malformed body")
	}
}
