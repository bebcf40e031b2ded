package loop

import (
	"fmt"

	"github.com/brook-lang/brook/pkg/diagnostics"
)

// Direction is the iteration direction of a range.
type Direction int

const (
	Ascending Direction = iota
	Descending
)

func (d Direction) String() string {
	if d == Descending {
		return "descending"
	}
	return "ascending"
}

// Boundedness controls whether the end bound itself may be emitted.
// Brook's `..`, `to` and `downto` forms are all inclusive: `0..3` yields
// 0, 1, 2, 3.
type Boundedness int

const (
	InclusiveEnd Boundedness = iota
	ExclusiveEnd
)

// RangeSpec is an immutable description of a bounded integer sequence.
// Bounds are evaluated once at loop entry and never re-evaluated per
// iteration.
type RangeSpec struct {
	Start int64
	End   int64
	Dir   Direction
	Step  int64
	Bound Boundedness
}

// NewRangeSpec validates and constructs a RangeSpec.
//
// Step must be positive. An ascending range whose bounds run backwards
// (start > end) is rejected with E_RANGE_DIRECTION rather than silently
// producing an empty or reversed sequence. A descending range whose bounds
// run forwards (start < end) is simply empty: the first candidate value
// already falls below the end bound.
func NewRangeSpec(start, end int64, dir Direction, step int64, bound Boundedness) (RangeSpec, error) {
	if step <= 0 {
		return RangeSpec{}, &RuntimeError{
			Code:    diagnostics.EInvalidStep,
			Message: fmt.Sprintf("step must be positive, got %d", step),
		}
	}
	if dir == Ascending && start > end {
		return RangeSpec{}, &RuntimeError{
			Code:    diagnostics.ERangeDirection,
			Message: fmt.Sprintf("ascending range %d..%d runs backwards", start, end),
		}
	}
	return RangeSpec{Start: start, End: end, Dir: dir, Step: step, Bound: bound}, nil
}

// Sequence returns a fresh lazy generator over the spec. Each call starts a
// new cursor at Start; generators carry no state across invocations, so
// re-running the same spec always yields an identical sequence. A single
// generator is not restartable.
func (s RangeSpec) Sequence() *RangeSequence {
	return &RangeSequence{spec: s, cur: s.Start}
}

// RangeSequence lazily produces the values of one RangeSpec, one per Next
// call. The cursor is owned by exactly one loop frame and never shared.
type RangeSequence struct {
	spec RangeSpec
	cur  int64
	done bool
}

// Next returns the next value of the sequence, or false when exhausted.
func (g *RangeSequence) Next() (int64, bool) {
	if g.done {
		return 0, false
	}
	v := g.cur
	if !g.spec.emits(v) {
		g.done = true
		return 0, false
	}
	if g.spec.Dir == Ascending {
		next := v + g.spec.Step
		if next < v { // int64 wrap at the top of the range
			g.done = true
		} else {
			g.cur = next
		}
	} else {
		next := v - g.spec.Step
		if next > v {
			g.done = true
		} else {
			g.cur = next
		}
	}
	return v, true
}

// emits reports whether v is still within the range's end bound. A
// descending candidate that falls below the end is not emitted, so
// `4 downto 1 step 2` yields 4, 2 and stops.
func (s RangeSpec) emits(v int64) bool {
	if s.Dir == Ascending {
		if s.Bound == InclusiveEnd {
			return v <= s.End
		}
		return v < s.End
	}
	if s.Bound == InclusiveEnd {
		return v >= s.End
	}
	return v > s.End
}
