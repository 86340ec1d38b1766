package orchestrator

import "github.com/maumcare/counseling-backend/internal/model/chat"

// Destination is the router's choice after an evaluate pass.
type Destination int

const (
	// DestStop ends the turn with no summary, the common case.
	DestStop Destination = iota
	// DestSearch routes a crisis turn to the institution search.
	DestSearch
	// DestSummarize ends the turn through the summarize node.
	DestSummarize
)

// Next picks the next node from the current turn state. Rule order is
// load-bearing: a turn that already searched goes straight to summarize,
// even while the crisis flag is still set, so the search loop runs at
// most once per turn.
func Next(st chat.TurnState) Destination {
	switch {
	case st.Searched():
		return DestSummarize
	case st.Crisis:
		return DestSearch
	case st.EndSession:
		return DestSummarize
	default:
		return DestStop
	}
}
