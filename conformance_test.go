package main

import (
	"errors"
	"fmt"
	"path/filepath"
	"strings"
	"testing"

	"github.com/brook-lang/brook/internal/testutil"
	"github.com/brook-lang/brook/pkg/ast"
	"github.com/brook-lang/brook/pkg/loop"
)

// The conformance suite runs each documented loop scenario against a small
// scripted host and checks the resulting emit trace against a golden file
// under testdata/. Run with -update to rewrite the golden files.

type hostExpr struct {
	ast.HostExpr
	eval func(env *loop.Env) (loop.Value, error)
}

func (e *hostExpr) Kind() string       { return "HostExpr" }
func (e *hostExpr) NodeSpan() ast.Span { return ast.Span{} }

type hostBlock struct {
	ast.HostBlock
	run func(env *loop.Env) (loop.Signal, error)
}

func (b *hostBlock) Kind() string       { return "HostBlock" }
func (b *hostBlock) NodeSpan() ast.Span { return ast.Span{} }

type scriptHost struct{}

func (scriptHost) Evaluate(expr ast.Expr, env *loop.Env) (loop.Value, error) {
	e, ok := expr.(*hostExpr)
	if !ok {
		return nil, fmt.Errorf("script host cannot evaluate %T", expr)
	}
	return e.eval(env)
}

func (scriptHost) ExecBlock(block ast.Block, env *loop.Env) (loop.Signal, error) {
	b, ok := block.(*hostBlock)
	if !ok {
		return loop.Signal{}, fmt.Errorf("script host cannot execute %T", block)
	}
	return b.run(env)
}

func (scriptHost) Iterate(v loop.Value) (loop.Source, error) {
	if s, ok := v.(loop.Source); ok {
		return s, nil
	}
	return nil, nil
}

func (scriptHost) LiftInt(i int64) loop.Value { return i }

func (scriptHost) AsInt(v loop.Value) (int64, bool) {
	i, ok := v.(int64)
	return i, ok
}

func (scriptHost) Truthy(v loop.Value) bool {
	b, ok := v.(bool)
	return ok && b
}

func intExpr(n int64) *hostExpr {
	return &hostExpr{eval: func(*loop.Env) (loop.Value, error) { return n, nil }}
}

func rangeExpr(form ast.RangeForm, start, end int64, step int64) *ast.RangeExpr {
	re := &ast.RangeExpr{Form: form, Start: intExpr(start), End: intExpr(end)}
	if step != 1 {
		re.Step = intExpr(step)
	}
	return re
}

// intOf reads an int64 loop variable from the scope.
func intOf(env *loop.Env, name string) int64 {
	v, _ := env.Get(name)
	return v.(int64)
}

type scenario struct {
	name string
	run  func(r *loop.Runner, emit func(string)) (loop.Signal, error)
}

var scenarios = []scenario{
	{
		name: "for-range-dotdot",
		// for x in 0..3 { emit(x) }
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			body := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				emit(fmt.Sprintf("%d", intOf(env, "x")))
				return loop.Normal(), nil
			}}
			node := &ast.ForExpr{Binding: "x", Seq: rangeExpr(ast.FormDotDot, 0, 3, 1), Body: body}
			return r.RunFor(node, loop.NewEnv(nil))
		},
	},
	{
		name: "for-range-to",
		// for x in 1 to 4 { emit(x) }
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			body := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				emit(fmt.Sprintf("%d", intOf(env, "x")))
				return loop.Normal(), nil
			}}
			node := &ast.ForExpr{Binding: "x", Seq: rangeExpr(ast.FormTo, 1, 4, 1), Body: body}
			return r.RunFor(node, loop.NewEnv(nil))
		},
	},
	{
		name: "for-downto-step",
		// for x in 4 downto 1 step 2 { emit(x) }
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			body := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				emit(fmt.Sprintf("%d", intOf(env, "x")))
				return loop.Normal(), nil
			}}
			node := &ast.ForExpr{Binding: "x", Seq: rangeExpr(ast.FormDownTo, 4, 1, 2), Body: body}
			return r.RunFor(node, loop.NewEnv(nil))
		},
	},
	{
		name: "while-increment",
		// while x < 5 { emit(x); x = x + 1 } starting x = 0
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			env := loop.NewEnv(nil)
			env.Set("x", int64(0))
			cond := &hostExpr{eval: func(scope *loop.Env) (loop.Value, error) {
				return intOf(scope, "x") < 5, nil
			}}
			body := &hostBlock{run: func(scope *loop.Env) (loop.Signal, error) {
				x := intOf(scope, "x")
				emit(fmt.Sprintf("%d", x))
				scope.Assign("x", x+1)
				return loop.Normal(), nil
			}}
			return r.RunWhile(&ast.WhileExpr{Cond: cond, Body: body}, env)
		},
	},
	{
		name: "break-early",
		// for x in 0..3 { if x == 1 { break } emit(x) }
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			body := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				if intOf(env, "x") == 1 {
					return loop.BreakSignal(""), nil
				}
				emit(fmt.Sprintf("%d", intOf(env, "x")))
				return loop.Normal(), nil
			}}
			node := &ast.ForExpr{Binding: "x", Seq: rangeExpr(ast.FormDotDot, 0, 3, 1), Body: body}
			return r.RunFor(node, loop.NewEnv(nil))
		},
	},
	{
		name: "continue-skip",
		// for x in 0..3 { if x == 1 { continue } emit(x) }
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			body := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				if intOf(env, "x") == 1 {
					return loop.ContinueSignal(""), nil
				}
				emit(fmt.Sprintf("%d", intOf(env, "x")))
				return loop.Normal(), nil
			}}
			node := &ast.ForExpr{Binding: "x", Seq: rangeExpr(ast.FormDotDot, 0, 3, 1), Body: body}
			return r.RunFor(node, loop.NewEnv(nil))
		},
	},
	{
		name: "nested-labeled-break",
		// outer: for x in 0..2 { for y in 0..2 { if y == 1 { break outer } emit(x, y) } }
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			innerBody := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				if intOf(env, "y") == 1 {
					return loop.BreakSignal("outer"), nil
				}
				emit(fmt.Sprintf("%d %d", intOf(env, "x"), intOf(env, "y")))
				return loop.Normal(), nil
			}}
			inner := &ast.ForExpr{Binding: "y", Seq: rangeExpr(ast.FormDotDot, 0, 2, 1), Body: innerBody}
			outerBody := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				return r.RunFor(inner, env)
			}}
			outer := &ast.ForExpr{Binding: "x", Label: "outer", Seq: rangeExpr(ast.FormDotDot, 0, 2, 1), Body: outerBody}
			return r.RunFor(outer, loop.NewEnv(nil))
		},
	},
	{
		name: "downto-empty",
		// for x in 3 downto 5 { emit(x) } -- empty range, body never runs
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			body := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				emit(fmt.Sprintf("%d", intOf(env, "x")))
				return loop.Normal(), nil
			}}
			node := &ast.ForExpr{Binding: "x", Seq: rangeExpr(ast.FormDownTo, 3, 5, 1), Body: body}
			return r.RunFor(node, loop.NewEnv(nil))
		},
	},
	{
		name: "range-direction-error",
		// for x in 5..1 { emit(x) } -- backwards ascending range
		run: func(r *loop.Runner, emit func(string)) (loop.Signal, error) {
			body := &hostBlock{run: func(env *loop.Env) (loop.Signal, error) {
				emit(fmt.Sprintf("%d", intOf(env, "x")))
				return loop.Normal(), nil
			}}
			node := &ast.ForExpr{Binding: "x", Seq: rangeExpr(ast.FormDotDot, 5, 1, 1), Body: body}
			return r.RunFor(node, loop.NewEnv(nil))
		},
	},
}

func TestConformance(t *testing.T) {
	for _, sc := range scenarios {
		sc := sc
		t.Run(sc.name, func(t *testing.T) {
			var trace strings.Builder
			emit := func(line string) {
				trace.WriteString("emit " + line + "\n")
			}

			r := loop.NewRunner(scriptHost{}, loop.RunnerOptions{})
			sig, err := sc.run(r, emit)
			switch {
			case err != nil:
				var rt *loop.RuntimeError
				if errors.As(err, &rt) {
					fmt.Fprintf(&trace, "error[%s]\n", rt.Code)
				} else {
					fmt.Fprintf(&trace, "error: %v\n", err)
				}
			default:
				fmt.Fprintf(&trace, "result: %s\n", sig.Kind)
			}

			golden := filepath.Join("testdata", sc.name+".golden")
			testutil.Golden(t, golden, []byte(trace.String()))
		})
	}
}
