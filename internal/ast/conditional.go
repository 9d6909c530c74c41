package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

// CondArm is one (guard, block) pair of a conditional chain.
type CondArm struct {
	Guard Expr
	Body  Expr
}

// Conditional is an ordered chain of guard/body arms plus an optional
// else body; the first true boolean guard wins.
type Conditional struct {
	Arms []CondArm
	Else Expr // nil if absent
}

func (n *Conditional) Eval(ctx *environment.Context) (value.Value, error) {
	for _, arm := range n.Arms {
		gv, err := arm.Guard.Eval(ctx)
		if err != nil {
			return nil, err
		}
		b, ok := gv.(value.Bool)
		if !ok {
			return nil, errs.NewInvalidType(gv.Kind().String(), "bool")
		}
		if b {
			return arm.Body.Eval(ctx)
		}
	}
	if n.Else != nil {
		return n.Else.Eval(ctx)
	}
	return value.None{}, nil
}
