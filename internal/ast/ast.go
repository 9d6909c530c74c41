// Package ast implements cash's AST node taxonomy: a closed tagged sum
// (Literal, Ident, Assignment, Block, Conditional, While, For,
// Expression, KeywordStatement, Pipe, FunctionLiteral), each exposing a
// single Eval(ctx) (Value, error) operation. Nodes are immutable after
// parsing and safely shared across goroutines (pure over the context
// they receive; any effect lands on that context, on stdout/process
// state, or on thread-safe builtin state).
//
// This generalizes the teacher interpreter's split of internal/types
// (pure AST structs) and pkg/eval (a big Eval type-switch) into per-type
// Eval methods living on the node structs themselves, with a single
// polymorphic node exposing one eval(context) -> Value|Error operation;
// the files are split per node kind (literals, ident, assignment, block,
// conditional, loops, keyword, expression, functions, pipe).
package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/value"
)

// Expr is the single operation every AST node exposes.
type Expr interface {
	Eval(ctx *environment.Context) (value.Value, error)
}

// Stmt is an alias for Expr: cash has no statement/expression split —
// every construct evaluates to a Value (possibly none), matching the
// teacher's expression-oriented evaluation model.
type Stmt = Expr
