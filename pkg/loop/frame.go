package loop

import (
	"fmt"

	"github.com/brook-lang/brook/pkg/ast"
	"github.com/brook-lang/brook/pkg/diagnostics"
)

// forFrame owns one active for-loop: its variable binding, label, value
// source and body. Frames stack with lexical nesting; each frame owns its
// source exclusively, so nested loops never share a cursor.
type forFrame struct {
	binding string
	label   string
	src     Source
	body    ast.Block
}

// signalOutcome is a frame's verdict on a body signal.
type signalOutcome int

const (
	sigProceed      signalOutcome = iota // run the next iteration
	sigConsumeBreak                      // stop the loop, completing normally
	sigPropagate                         // hand the signal to the enclosing frame
)

// interpretSignal applies the consume/propagate discipline shared by for-
// and while-frames. A matching continue proceeds, a matching break is
// consumed, and everything else a loop cannot handle (foreign labels,
// return) propagates unchanged. Return is never consumed by a loop frame.
func interpretSignal(sig Signal, frameLabel string) signalOutcome {
	switch sig.Kind {
	case SigNormal:
		return sigProceed
	case SigContinue:
		if sig.matchesFrame(frameLabel) {
			return sigProceed
		}
		return sigPropagate
	case SigBreak:
		if sig.matchesFrame(frameLabel) {
			return sigConsumeBreak
		}
		return sigPropagate
	default:
		return sigPropagate
	}
}

// RunFor executes a for-loop to completion or early termination. The
// returned signal is Normal when the source was exhausted or a matching
// break was consumed; foreign-labeled signals and returns come back
// unconsumed for the caller to handle. Host evaluation failures abort the
// loop and surface as the error.
func (r *Runner) RunFor(node *ast.ForExpr, env *Env) (Signal, error) {
	src, err := r.sourceFor(node, env)
	if err != nil {
		return Signal{}, err
	}
	frame := &forFrame{
		binding: node.Binding,
		label:   node.Label,
		src:     src,
		body:    node.Body,
	}
	span := node.Span
	r.emit(TraceForStart, &span, "")

	for {
		val, ok := frame.src.Next()
		if !ok {
			break
		}
		r.emit(TraceIteration, &span, "")

		// The loop variable is rebound fresh each iteration; mutation inside
		// one body execution never leaks into the next binding.
		child := env.Child()
		child.Set(frame.binding, val)

		sig, err := r.host.ExecBlock(frame.body, child)
		if err != nil {
			return Signal{}, err
		}
		switch interpretSignal(sig, frame.label) {
		case sigProceed:
		case sigConsumeBreak:
			r.emit(TraceSignal, &span, "break consumed")
			r.emit(TraceForEnd, &span, "")
			return Normal(), nil
		case sigPropagate:
			r.emit(TraceSignal, &span, sig.Kind.String()+" propagated")
			return sig, nil
		}
	}

	r.emit(TraceForEnd, &span, "")
	return Normal(), nil
}

// sourceFor selects the value source for a for-loop: a range generator for
// *ast.RangeExpr, a host collection iterator for anything else. Range
// bounds and step are evaluated exactly once, here.
func (r *Runner) sourceFor(node *ast.ForExpr, env *Env) (Source, error) {
	re, ok := node.Seq.(*ast.RangeExpr)
	if !ok {
		seqVal, err := r.host.Evaluate(node.Seq, env)
		if err != nil {
			return nil, err
		}
		src, err := r.host.Iterate(seqVal)
		if err != nil {
			return nil, err
		}
		if src == nil {
			span := node.Seq.NodeSpan()
			return nil, &RuntimeError{
				Code:    diagnostics.ENotIterable,
				Message: "for-loop sequence value is not iterable",
				Span:    &span,
			}
		}
		return src, nil
	}

	start, err := r.rangeBound(re.Start, env)
	if err != nil {
		return nil, err
	}
	end, err := r.rangeBound(re.End, env)
	if err != nil {
		return nil, err
	}
	step := int64(1)
	if re.Step != nil {
		step, err = r.rangeBound(re.Step, env)
		if err != nil {
			return nil, err
		}
	}
	dir := Ascending
	if re.Form.Descending() {
		dir = Descending
	}
	spec, err := NewRangeSpec(start, end, dir, step, InclusiveEnd)
	if err != nil {
		if rt, ok := err.(*RuntimeError); ok && rt.Span == nil {
			span := re.Span
			rt.Span = &span
		}
		return nil, err
	}
	return &rangeSource{gen: spec.Sequence(), host: r.host}, nil
}

// rangeBound evaluates one bound or step expression and requires an
// integer result.
func (r *Runner) rangeBound(expr ast.Expr, env *Env) (int64, error) {
	v, err := r.host.Evaluate(expr, env)
	if err != nil {
		return 0, err
	}
	i, ok := r.host.AsInt(v)
	if !ok {
		span := expr.NodeSpan()
		return 0, &RuntimeError{
			Code:    diagnostics.EInvalidStep,
			Message: fmt.Sprintf("range bound must be an integer, got %v", v),
			Span:    &span,
		}
	}
	return i, nil
}
