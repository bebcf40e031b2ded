package loop

// Source produces loop values one at a time: the unified pull interface
// over range-derived and collection-derived sequences. Exactly one element
// is pulled per call, with no read-ahead, so collection sources with
// side-effecting iteration are observed in strict forward order. A source
// is finite and not restartable.
//
// Hosts implement Source for their collection values and hand instances to
// the core via Host.Iterate.
type Source interface {
	// Next returns the next value, or false when the source is exhausted.
	Next() (Value, bool)
}

// rangeSource adapts a RangeSequence into a Source, lifting each integer
// into the host's value type as it is pulled.
type rangeSource struct {
	gen  *RangeSequence
	host Host
}

func (s *rangeSource) Next() (Value, bool) {
	v, ok := s.gen.Next()
	if !ok {
		return nil, false
	}
	return s.host.LiftInt(v), true
}
