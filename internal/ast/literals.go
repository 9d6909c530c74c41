package ast

import (
	"strings"

	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

// BoolLit is a literal boolean.
type BoolLit struct{ Value bool }

func (n *BoolLit) Eval(*environment.Context) (value.Value, error) {
	return value.Bool(n.Value), nil
}

// IntLit is a literal 64-bit integer.
type IntLit struct{ Value int64 }

func (n *IntLit) Eval(*environment.Context) (value.Value, error) {
	return value.Int(n.Value), nil
}

// FloatLit is a literal 64-bit float.
type FloatLit struct{ Value float64 }

func (n *FloatLit) Eval(*environment.Context) (value.Value, error) {
	return value.Float(n.Value), nil
}

// NoneLit is the none literal, also the implicit value of keyword
// statements with no trailing expression.
type NoneLit struct{}

func (n *NoneLit) Eval(*environment.Context) (value.Value, error) {
	return value.None{}, nil
}

// RangeLit is a literal "lower..upper" range expression; both ends are
// evaluated as integer-valued sub-expressions.
type RangeLit struct {
	Lower Expr
	Upper Expr
}

func (n *RangeLit) Eval(ctx *environment.Context) (value.Value, error) {
	lv, err := n.Lower.Eval(ctx)
	if err != nil {
		return nil, err
	}
	uv, err := n.Upper.Eval(ctx)
	if err != nil {
		return nil, err
	}
	lo, ok := lv.(value.Int)
	if !ok {
		return nil, errs.NewInvalidType(lv.Kind().String(), "int")
	}
	hi, ok := uv.(value.Int)
	if !ok {
		return nil, errs.NewInvalidType(uv.Kind().String(), "int")
	}
	return value.NewRange(int64(lo), int64(hi))
}

// StringPart is one piece of a string literal: a literal run of text, or
// an interpolated sub-expression (`${expr}`) whose stringified value is
// spliced in at evaluation time.
type StringPart struct {
	Literal string
	Interp  Expr // nil for a literal run
}

// StringLit is a (possibly interpolated) string literal.
type StringLit struct {
	Parts []StringPart
}

func (n *StringLit) Eval(ctx *environment.Context) (value.Value, error) {
	if len(n.Parts) == 1 && n.Parts[0].Interp == nil {
		return value.String(n.Parts[0].Literal), nil
	}
	var b strings.Builder
	for _, p := range n.Parts {
		if p.Interp == nil {
			b.WriteString(p.Literal)
			continue
		}
		v, err := p.Interp.Eval(ctx)
		if err != nil {
			return nil, err
		}
		b.WriteString(value.Stringify(v))
	}
	return value.String(b.String()), nil
}

// ListLit is a literal list; elements are evaluated left-to-right.
type ListLit struct {
	Elems []Expr
}

func (n *ListLit) Eval(ctx *environment.Context) (value.Value, error) {
	elems := make([]value.Value, 0, len(n.Elems))
	for _, e := range n.Elems {
		v, err := e.Eval(ctx)
		if err != nil {
			return nil, err
		}
		elems = append(elems, v)
	}
	return value.NewList(elems...), nil
}

// DictEntry is one key: value pair of a dict literal. The key is a
// general expression; it is stringified at eval time, so e.g. an int
// key expression and a string key expression producing the same text
// collide on the same entry.
type DictEntry struct {
	Key   Expr
	Value Expr
}

// DictLit is a literal dict; cash dicts are non-recursive (unlike the
// teacher's rec {} attrsets) — entries never see sibling bindings while
// evaluating, so entries are evaluated once in a single left-to-right
// pass rather than the teacher's two-pass recursive-attrset strategy.
type DictLit struct {
	Entries []DictEntry
}

func (n *DictLit) Eval(ctx *environment.Context) (value.Value, error) {
	d := value.NewDict()
	for _, e := range n.Entries {
		kv, err := e.Key.Eval(ctx)
		if err != nil {
			return nil, err
		}
		vv, err := e.Value.Eval(ctx)
		if err != nil {
			return nil, err
		}
		d.Set(value.Stringify(kv), vv)
	}
	return d, nil
}

// FunctionLit is a function literal capturing the current context by
// reference, so a closure observes later mutations to variables it
// closed over rather than a snapshot taken at definition time.
type FunctionLit struct {
	Params []ParamSpec
	Body   Expr
}

// ParamSpec is one formal parameter with an optional default expression.
type ParamSpec struct {
	Name    string
	Default Expr // nil if required
}

func (n *FunctionLit) Eval(ctx *environment.Context) (value.Value, error) {
	params := make([]value.Param, len(n.Params))
	for i, p := range n.Params {
		var def interface{}
		if p.Default != nil {
			def = p.Default
		}
		params[i] = value.Param{Name: p.Name, Default: def}
	}
	return value.NewFunction(n.Body, ctx, params), nil
}
