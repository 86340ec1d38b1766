package stream

import (
	"context"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	chatmodel "github.com/maumcare/counseling-backend/internal/model/chat"
	"github.com/maumcare/counseling-backend/internal/orchestrator"
)

type fakeStreamer struct {
	nodes []orchestrator.Node
}

func (f *fakeStreamer) ProcessTurnObserved(_ context.Context, sessionID, userText string, observe orchestrator.Observer) chatmodel.TurnState {
	for _, node := range f.nodes {
		observe(node)
	}
	return chatmodel.TurnState{
		SessionID: sessionID,
		Messages: []chatmodel.Message{
			{Role: chatmodel.RoleUser, Content: userText},
			{Role: chatmodel.RoleAssistant, Content: "함께 이야기해 봐요."},
		},
	}
}

func TestHandleStreamEmitsStatusAndResult(t *testing.T) {
	handler := New(&fakeStreamer{nodes: []orchestrator.Node{
		orchestrator.NodeCounsel, orchestrator.NodeEvaluate,
	}})

	req := httptest.NewRequest(http.MethodGet, "/chat/stream?sessionId=s1&message=안녕하세요", nil)
	resp := httptest.NewRecorder()
	handler.HandleStream(resp, req)

	body := resp.Body.String()
	if got := strings.Count(body, "event: status"); got != 2 {
		t.Fatalf("expected 2 status events, got %d in %q", got, body)
	}
	if !strings.Contains(body, "event: result") {
		t.Fatalf("expected a result event, got %q", body)
	}
	if !strings.Contains(body, `"counsel"`) || !strings.Contains(body, `"evaluate"`) {
		t.Fatalf("expected node names in status events, got %q", body)
	}
	if ct := resp.Header().Get("Content-Type"); ct != "text/event-stream" {
		t.Fatalf("expected SSE content type, got %q", ct)
	}
}

func TestHandleStreamRequiresMessage(t *testing.T) {
	handler := New(&fakeStreamer{})

	req := httptest.NewRequest(http.MethodGet, "/chat/stream?sessionId=s1", nil)
	resp := httptest.NewRecorder()
	handler.HandleStream(resp, req)

	if resp.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d", resp.Code)
	}
}
