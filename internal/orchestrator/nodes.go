package orchestrator

import (
	"context"
	"log"
	"strings"
	"time"

	"github.com/maumcare/counseling-backend/internal/analysis/risk"
	"github.com/maumcare/counseling-backend/internal/model/chat"
	"github.com/maumcare/counseling-backend/internal/service/search"
)

// counsel appends one assistant reply. It never fails: any collaborator
// problem degrades to the fixed fallback reply.
func (o *Orchestrator) counsel(ctx context.Context, st chat.TurnState) chat.TurnState {
	reply := fallbackReply

	if o.gen != nil {
		system := counselSystemPrompt
		if len(st.SearchResult) > 0 {
			system += formatResources(st.SearchResult)
		}

		history, query := splitQuery(st.Messages)
		text, err := o.gen.Generate(ctx, system, history, query)
		if err != nil {
			log.Printf("[orchestrator] counsel generation failed for session=%s: %v", st.SessionID, err)
		} else if trimmed := strings.TrimSpace(text); trimmed != "" {
			reply = trimmed
		}
	}

	st.Messages = append(st.Messages, chat.Message{
		Role:      chat.RoleAssistant,
		Content:   reply,
		CreatedAt: time.Now().UTC(),
	})
	return st
}

// splitQuery separates the trailing user message from the prompt history.
// On the post-search pass the trailing message is the assistant draft, so
// the query becomes the follow-up instruction instead.
func splitQuery(messages []chat.Message) ([]chat.Message, string) {
	if n := len(messages); n > 0 && messages[n-1].Role == chat.RoleUser {
		return messages[:n-1], messages[n-1].Content
	}
	return messages, counselFollowUpQuery
}

// evaluate asks for the structured judgement and folds it into the state.
// Crisis and endSession are sticky within a turn.
func (o *Orchestrator) evaluate(ctx context.Context, st chat.TurnState) chat.TurnState {
	j := o.judge(ctx, st)

	st.Crisis = st.Crisis || j.Crisis
	st.EndSession = st.EndSession || j.EndSession
	st.NeedSummary = st.NeedSummary || j.NeedSummary
	scores := j.Scores
	st.Scores = &scores
	return st
}

func (o *Orchestrator) judge(ctx context.Context, st chat.TurnState) judgement {
	if o.gen == nil {
		// 모델이 없는 배포에서는 키워드 선별로 위기 여부만 판정한다.
		dec := risk.Screen(lastUser(st.Messages))
		return judgement{Crisis: dec.Crisis}
	}

	text, err := o.gen.Generate(ctx, evaluateSystemPrompt, st.Messages, evaluateQuery)
	if err != nil {
		log.Printf("[orchestrator] evaluate generation failed for session=%s: %v", st.SessionID, err)
		return judgement{}
	}

	j, err := parseJudgement(text)
	if err != nil {
		log.Printf("[orchestrator] evaluate output parse failed for session=%s: %v", st.SessionID, err)
		return judgement{}
	}
	return j
}

func lastUser(messages []chat.Message) string {
	for i := len(messages) - 1; i >= 0; i-- {
		if messages[i].Role == chat.RoleUser {
			return messages[i].Content
		}
	}
	return ""
}

// search runs the institution search once per turn. The result is set
// even when empty: its presence is the loop-termination sentinel.
func (o *Orchestrator) search(ctx context.Context, st chat.TurnState) chat.TurnState {
	if st.Searched() {
		return st
	}

	results := []chat.Resource{}
	if o.searcher != nil {
		payload, err := o.searcher.Search(ctx, o.searchQuery)
		if err != nil {
			log.Printf("[orchestrator] search failed for session=%s: %v", st.SessionID, err)
		} else {
			results = search.Normalize(payload)
		}
	}

	log.Printf("[orchestrator] search returned %d institutions for session=%s", len(results), st.SessionID)
	st.SearchResult = results
	return st
}

// summarize produces the four-field session summary and clears the
// pending-summary flag. This is always the terminal node when reached.
func (o *Orchestrator) summarize(ctx context.Context, st chat.TurnState) chat.TurnState {
	summary := ""
	if o.gen != nil {
		text, err := o.gen.Generate(ctx, summarizeSystemPrompt, st.Messages, summarizeQuery)
		if err != nil {
			log.Printf("[orchestrator] summarize generation failed for session=%s: %v", st.SessionID, err)
		} else {
			summary = strings.TrimSpace(text)
		}
	}
	if summary == "" {
		summary = fallbackSummary(st)
	}

	st.Summary = summary
	st.NeedSummary = false
	return st
}
