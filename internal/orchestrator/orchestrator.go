package orchestrator

import (
	"context"
	"log"
	"time"

	"github.com/maumcare/counseling-backend/internal/model/chat"
)

// Generator is the language-model collaborator. Implementations must
// apply their own call timeout; callers treat any error as a degrade.
type Generator interface {
	Generate(ctx context.Context, system string, history []chat.Message, query string) (string, error)
}

// Searcher is the external search collaborator. The returned payload has
// no fixed shape and is normalized by the search node.
type Searcher interface {
	Search(ctx context.Context, query string) (any, error)
}

// SessionStore receives the completed turn. Folding happens exactly once
// per turn, after the state machine reaches a terminal state.
type SessionStore interface {
	Transcript(sessionID string) []chat.Message
	RecordTurn(st chat.TurnState, newMessages []chat.Message)
}

// Node names, as reported to observers.
type Node string

const (
	NodeCounsel   Node = "counsel"
	NodeEvaluate  Node = "evaluate"
	NodeSearch    Node = "search"
	NodeSummarize Node = "summarize"
)

// Observer is notified when a turn enters each node. Called from the
// turn's own goroutine, strictly in execution order.
type Observer func(node Node)

// Config bounds a turn's execution.
type Config struct {
	StepLimit   int
	SearchQuery string
}

// Orchestrator drives one user turn through the node graph to completion.
type Orchestrator struct {
	gen         Generator
	searcher    Searcher
	store       SessionStore
	stepLimit   int
	searchQuery string
}

// New wires the orchestrator. gen and searcher may be nil; every node
// degrades to a safe result without them.
func New(gen Generator, searcher Searcher, store SessionStore, cfg Config) *Orchestrator {
	stepLimit := cfg.StepLimit
	if stepLimit <= 0 {
		stepLimit = 20
	}
	searchQuery := cfg.SearchQuery
	if searchQuery == "" {
		searchQuery = defaultSearchQuery
	}

	return &Orchestrator{
		gen:         gen,
		searcher:    searcher,
		store:       store,
		stepLimit:   stepLimit,
		searchQuery: searchQuery,
	}
}

// machine states for one turn
type state int

const (
	stateCounsel state = iota
	stateEvaluate
	stateSearch
	stateSummarize
)

// ProcessTurn runs one user message through the graph and folds the
// result into the session store. It never fails: every anomaly degrades
// into a best-effort turn state with a usable reply.
func (o *Orchestrator) ProcessTurn(ctx context.Context, sessionID, userText string) chat.TurnState {
	return o.ProcessTurnObserved(ctx, sessionID, userText, nil)
}

// ProcessTurnObserved is ProcessTurn with node-entry notifications.
func (o *Orchestrator) ProcessTurnObserved(ctx context.Context, sessionID, userText string, observe Observer) chat.TurnState {
	// The caller may abandon the request mid-turn; the turn still runs to
	// a terminal state so the store sees exactly one complete fold.
	ctx = context.WithoutCancel(ctx)

	history := o.store.Transcript(sessionID)
	baseLen := len(history)

	st := chat.TurnState{
		SessionID: sessionID,
		Messages: append(history, chat.Message{
			Role:      chat.RoleUser,
			Content:   userText,
			CreatedAt: time.Now().UTC(),
		}),
	}

	current := stateCounsel
	steps := 0

loop:
	for {
		if steps >= o.stepLimit {
			log.Printf("[orchestrator] step limit %d exceeded for session=%s, aborting turn", o.stepLimit, sessionID)
			if st.LastAssistant() == "" {
				st.Messages = append(st.Messages, chat.Message{
					Role:      chat.RoleAssistant,
					Content:   fallbackReply,
					CreatedAt: time.Now().UTC(),
				})
			}
			break
		}
		steps++

		switch current {
		case stateCounsel:
			notify(observe, NodeCounsel)
			st = o.counsel(ctx, st)
			current = stateEvaluate

		case stateEvaluate:
			notify(observe, NodeEvaluate)
			st = o.evaluate(ctx, st)
			switch Next(st) {
			case DestSearch:
				current = stateSearch
			case DestSummarize:
				current = stateSummarize
			default:
				break loop
			}

		case stateSearch:
			notify(observe, NodeSearch)
			st = o.search(ctx, st)
			current = stateCounsel

		case stateSummarize:
			notify(observe, NodeSummarize)
			st = o.summarize(ctx, st)
			break loop
		}
	}

	o.store.RecordTurn(st, st.Messages[baseLen:])
	return st
}

func notify(observe Observer, node Node) {
	if observe != nil {
		observe(node)
	}
}
