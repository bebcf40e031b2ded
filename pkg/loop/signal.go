package loop

import (
	"fmt"

	"github.com/brook-lang/brook/pkg/diagnostics"
)

// SignalKind tags the way a body execution finished.
type SignalKind int

const (
	SigNormal SignalKind = iota
	SigContinue
	SigBreak
	SigReturn
)

func (k SignalKind) String() string {
	switch k {
	case SigNormal:
		return "normal"
	case SigContinue:
		return "continue"
	case SigBreak:
		return "break"
	case SigReturn:
		return "return"
	}
	return fmt.Sprintf("SignalKind(%d)", int(k))
}

// Signal is the tagged result of a body execution. Break and continue
// travel as signals up through enclosing frames until a frame consumes
// them; return passes every loop boundary untouched. Signals are plain
// values, never panics.
type Signal struct {
	Kind  SignalKind
	Label string // Continue/Break target; empty targets the innermost loop
	Value Value  // Return payload
}

// Normal is the signal of a body (or loop) that completed normally.
func Normal() Signal {
	return Signal{Kind: SigNormal}
}

// ContinueSignal targets the enclosing loop labeled label, or the innermost
// loop when label is empty.
func ContinueSignal(label string) Signal {
	return Signal{Kind: SigContinue, Label: label}
}

// BreakSignal targets the enclosing loop labeled label, or the innermost
// loop when label is empty.
func BreakSignal(label string) Signal {
	return Signal{Kind: SigBreak, Label: label}
}

// ReturnSignal carries a return value past every enclosing loop to the
// enclosing callable.
func ReturnSignal(v Value) Signal {
	return Signal{Kind: SigReturn, Value: v}
}

// matchesFrame reports whether a Continue/Break signal targets a frame with
// the given label. An unlabeled signal targets the innermost frame, so it
// matches unconditionally.
func (s Signal) matchesFrame(frameLabel string) bool {
	return s.Label == "" || s.Label == frameLabel
}

// Unwind inspects a signal that has reached the top of execution. Break and
// continue must have been consumed by an enclosing loop on the way up;
// one arriving here was unbound, which is a program construction error
// rather than something to drop silently. Normal and return signals are
// fine at top level (return handling belongs to the enclosing callable).
func Unwind(sig Signal) error {
	switch sig.Kind {
	case SigBreak, SigContinue:
		msg := fmt.Sprintf("%s with no enclosing loop", sig.Kind)
		if sig.Label != "" {
			msg = fmt.Sprintf("%s %q matches no enclosing loop label", sig.Kind, sig.Label)
		}
		return &RuntimeError{
			Code:    diagnostics.EUnboundSignal,
			Message: msg,
		}
	}
	return nil
}
