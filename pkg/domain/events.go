package domain

import (
	"context"
	"time"
)

// QueryEvent marks the start or end of a query run.
type QueryEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Scope     Scope     `json:"scope"`
	Action    Action    `json:"action"`
	Matched   int       `json:"matched,omitempty"`
	Candidate int       `json:"candidate,omitempty"`
	Duration  time.Duration
}

// ActionEvent reports one applied bulk action.
type ActionEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	Action    Action    `json:"action"`
	Applied   int       `json:"applied"`
}

// ExportErrorEvent reports a per-node export failure. Export is
// best-effort: the batch continues past failures.
type ExportErrorEvent struct {
	Timestamp time.Time `json:"timestamp"`
	RunID     string    `json:"run_id"`
	NodeID    string    `json:"node_id"`
	Err       error     `json:"-"`
}

// LifecycleHooks defines optional callbacks for engine observability.
// All hooks run synchronously on the engine's cooperative thread.
type LifecycleHooks struct {
	OnQueryStart  func(context.Context, *QueryEvent)
	OnQueryEnd    func(context.Context, *QueryEvent)
	OnAction      func(context.Context, *ActionEvent)
	OnExportError func(context.Context, *ExportErrorEvent)
}
