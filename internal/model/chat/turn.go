package chat

// Scores holds the evaluated emotional metrics, each on a 0~100 scale.
type Scores struct {
	Anxiety    float64 `json:"anxiety"`
	Depression float64 `json:"depression"`
	Stress     float64 `json:"stress"`
}

// Resource is one support institution surfaced by the search step.
type Resource struct {
	Name        string `json:"name"`
	Address     string `json:"address"`
	Contact     string `json:"contact"`
	SourceURL   string `json:"sourceUrl"`
	SourceTitle string `json:"sourceTitle"`
}

// TurnState is the working record for one orchestrated turn. Nodes take a
// TurnState and return an updated one; nothing outside the orchestrator
// mutates it mid-turn.
type TurnState struct {
	SessionID   string
	Messages    []Message
	Crisis      bool
	EndSession  bool
	NeedSummary bool
	Scores      *Scores
	Summary     string

	// SearchResult stays nil until the search step has run this turn.
	// A non-nil empty slice still counts as "searched" — the router
	// relies on that to break the search loop.
	SearchResult []Resource
}

// LastAssistant returns the content of the most recent assistant message,
// or "" if none exists yet.
func (t *TurnState) LastAssistant() string {
	for i := len(t.Messages) - 1; i >= 0; i-- {
		if t.Messages[i].Role == RoleAssistant {
			return t.Messages[i].Content
		}
	}
	return ""
}

// Searched reports whether the search step already ran this turn.
func (t *TurnState) Searched() bool {
	return t.SearchResult != nil
}
