package loop

import "github.com/brook-lang/brook/pkg/ast"

// Value is a host runtime value. The core treats values as opaque: the only
// conversions it performs go through the Host (integer range bounds, while
// condition truthiness, lifting range integers back into host values).
type Value any

// Host is the capability surface the surrounding evaluator supplies to the
// loop core. All expression evaluation, body execution and collection
// traversal happen on the host side; the core only sequences the calls and
// interprets the resulting control signals.
type Host interface {
	// Evaluate evaluates a host expression in the given scope. Used for
	// range bounds, step expressions, while conditions and collection
	// sources. A returned error is an evaluation failure and aborts every
	// enclosing loop.
	Evaluate(expr ast.Expr, env *Env) (Value, error)

	// ExecBlock executes a loop body in the given scope and reports how it
	// finished as a control signal. Break and continue travel as signals,
	// never as errors.
	ExecBlock(block ast.Block, env *Env) (Signal, error)

	// Iterate obtains a pull iterator over a collection value. Returning a
	// nil Source (with nil error) means the value cannot be iterated; the
	// core reports that as an E_NOT_ITERABLE runtime error.
	Iterate(v Value) (Source, error)

	// LiftInt converts a range integer into the host's value type.
	LiftInt(i int64) Value

	// AsInt extracts an integer from a host value, reporting whether the
	// value was integral.
	AsInt(v Value) (int64, bool)

	// Truthy judges a while-condition value.
	Truthy(v Value) bool
}
