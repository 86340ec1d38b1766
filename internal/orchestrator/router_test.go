package orchestrator

import (
	"testing"

	"github.com/maumcare/counseling-backend/internal/model/chat"
)

func TestNextStopsOnQuietTurn(t *testing.T) {
	st := chat.TurnState{}
	if got := Next(st); got != DestStop {
		t.Fatalf("expected stop, got %v", got)
	}
}

func TestNextRoutesCrisisToSearch(t *testing.T) {
	st := chat.TurnState{Crisis: true}
	if got := Next(st); got != DestSearch {
		t.Fatalf("expected search, got %v", got)
	}
}

func TestNextRoutesEndSessionToSummarize(t *testing.T) {
	st := chat.TurnState{EndSession: true}
	if got := Next(st); got != DestSummarize {
		t.Fatalf("expected summarize, got %v", got)
	}
}

func TestNextNeverSearchesTwice(t *testing.T) {
	// Once the search result is present, even an empty one, the router
	// must pick summarize regardless of the other flags.
	st := chat.TurnState{Crisis: true, SearchResult: []chat.Resource{}}
	if got := Next(st); got != DestSummarize {
		t.Fatalf("expected summarize after search, got %v", got)
	}

	st.EndSession = true
	if got := Next(st); got != DestSummarize {
		t.Fatalf("expected summarize after search with endSession, got %v", got)
	}
}
