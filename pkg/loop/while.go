package loop

import "github.com/brook-lang/brook/pkg/ast"

// RunWhile executes a while-loop: the condition is re-evaluated fresh at
// the start of every iteration, with no caching, and the body runs until
// the condition turns false or a signal terminates the loop early. Signal
// handling follows the same consume/propagate rules as RunFor, with
// "condition becomes false" substituting for source exhaustion. A failing
// condition expression is not retried; the host's error aborts the loop.
func (r *Runner) RunWhile(node *ast.WhileExpr, env *Env) (Signal, error) {
	span := node.Span
	r.emit(TraceWhileStart, &span, "")

	for {
		condVal, err := r.host.Evaluate(node.Cond, env)
		if err != nil {
			return Signal{}, err
		}
		if !r.host.Truthy(condVal) {
			break
		}
		r.emit(TraceIteration, &span, "")

		sig, err := r.host.ExecBlock(node.Body, env.Child())
		if err != nil {
			return Signal{}, err
		}
		switch interpretSignal(sig, node.Label) {
		case sigProceed:
		case sigConsumeBreak:
			r.emit(TraceSignal, &span, "break consumed")
			r.emit(TraceWhileEnd, &span, "")
			return Normal(), nil
		case sigPropagate:
			r.emit(TraceSignal, &span, sig.Kind.String()+" propagated")
			return sig, nil
		}
	}

	r.emit(TraceWhileEnd, &span, "")
	return Normal(), nil
}
