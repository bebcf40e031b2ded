// Package loop implements the Brook loop control-flow evaluation core: it
// turns a loop construct (bounded range, stepped or descending range,
// collection iteration, conditional repetition) plus a body into a
// deterministic sequence of body executions, handling bounds, direction,
// step, collection traversal and early exit.
//
// The core is a library, not a process. Expression evaluation, body
// execution and collection traversal belong to the surrounding evaluator,
// which it reaches through the Host interface. Iterations run strictly in
// sequence order, one body execution at a time; the only cancellation
// mechanism is a break or return signal bubbling out of a body.
package loop

import (
	"time"

	"github.com/brook-lang/brook/pkg/ast"
)

// RuntimeError represents a runtime error raised by the loop core.
type RuntimeError struct {
	Code    string
	Message string
	Span    *ast.Span
}

func (e *RuntimeError) Error() string {
	return e.Message
}

// TraceEventType identifies the type of a trace event.
type TraceEventType string

const (
	TraceForStart   TraceEventType = "for_start"
	TraceForEnd     TraceEventType = "for_end"
	TraceWhileStart TraceEventType = "while_start"
	TraceWhileEnd   TraceEventType = "while_end"
	TraceIteration  TraceEventType = "iteration"
	TraceSignal     TraceEventType = "signal"
)

// TraceEvent is a single trace event emitted during loop execution.
type TraceEvent struct {
	Timestamp string         `json:"ts"`
	Event     TraceEventType `json:"event"`
	Span      *ast.Span      `json:"span,omitempty"`
	Detail    string         `json:"detail,omitempty"`
}

// RunnerOptions configures a Runner.
type RunnerOptions struct {
	// Trace, when non-nil, receives an event per loop entry/exit, per
	// iteration, and per consumed or propagated control signal.
	Trace func(TraceEvent)
}

// Runner drives for- and while-loops against a host evaluator.
type Runner struct {
	host Host
	opts RunnerOptions
}

// NewRunner creates a Runner backed by the given host.
func NewRunner(host Host, opts RunnerOptions) *Runner {
	return &Runner{host: host, opts: opts}
}

func (r *Runner) emit(event TraceEventType, span *ast.Span, detail string) {
	if r.opts.Trace != nil {
		r.opts.Trace(TraceEvent{
			Timestamp: time.Now().UTC().Format(time.RFC3339Nano),
			Event:     event,
			Span:      span,
			Detail:    detail,
		})
	}
}
