// Package ast defines the loop-construct AST node types the Brook loop core
// consumes. Expression and block contents are host-owned: the surrounding
// evaluator hands the core opaque Expr/Block references, and the core hands
// them back for evaluation and execution.
package ast

// Span represents a source location range.
type Span struct {
	File      string `json:"file"`
	StartLine int    `json:"startLine"`
	StartCol  int    `json:"startCol"`
	EndLine   int    `json:"endLine"`
	EndCol    int    `json:"endCol"`
}

// Node is the interface implemented by all AST nodes, including
// host-provided expression and block nodes.
type Node interface {
	Kind() string
	NodeSpan() Span
}

// Expr is an expression node. The core never inspects expression structure;
// it passes Expr values back to the host for evaluation. The one exception
// is *RangeExpr, which the core recognizes as its own sequence form.
type Expr interface {
	Node
	exprNode()
}

// Block is an executable loop body. Opaque to the core; executed via the
// host.
type Block interface {
	Node
	blockNode()
}

// HostExpr marks a host-defined expression type as usable where the core
// expects an Expr. Hosts embed it in their expression nodes.
type HostExpr struct{}

func (HostExpr) exprNode() {}

// HostBlock marks a host-defined block type as usable where the core
// expects a Block.
type HostBlock struct{}

func (HostBlock) blockNode() {}

// RangeForm identifies the surface form a range was written in. The form
// fixes the iteration direction: ".." and "to" ascend, "downto" descends.
type RangeForm string

const (
	FormDotDot RangeForm = ".."
	FormTo     RangeForm = "to"
	FormDownTo RangeForm = "downto"
)

// Descending reports whether the form iterates from high to low.
func (f RangeForm) Descending() bool { return f == FormDownTo }

// RangeExpr is a bounded integer range: `start .. end`, `start to end` or
// `start downto end`, optionally with `step n`. Start, End and Step are
// host expressions evaluated exactly once, at loop entry.
type RangeExpr struct {
	Span  Span
	Form  RangeForm
	Start Expr
	End   Expr
	Step  Expr // nil means step 1
}

func (n *RangeExpr) Kind() string   { return "RangeExpr" }
func (n *RangeExpr) NodeSpan() Span { return n.Span }
func (n *RangeExpr) exprNode()      {}

// ForExpr is a `for <binding> in <seq> { body }` construct. Seq is either a
// *RangeExpr or a host expression producing an iterable collection value.
type ForExpr struct {
	Span    Span
	Binding string
	Label   string // empty when the loop is unlabeled
	Seq     Expr
	Body    Block
}

func (n *ForExpr) Kind() string   { return "ForExpr" }
func (n *ForExpr) NodeSpan() Span { return n.Span }
func (n *ForExpr) exprNode()      {}

// WhileExpr is a `while <cond> { body }` construct. Cond is re-evaluated
// before every iteration.
type WhileExpr struct {
	Span  Span
	Label string
	Cond  Expr
	Body  Block
}

func (n *WhileExpr) Kind() string   { return "WhileExpr" }
func (n *WhileExpr) NodeSpan() Span { return n.Span }
func (n *WhileExpr) exprNode()      {}
