package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

// While repeatedly evaluates Body while Guard evaluates to boolean true:
// break unwraps and terminates with its inner value,
// continue unwraps and proceeds to the next iteration, return propagates
// up unchanged. The loop's value is the value of the last executed body
// iteration, or none if the guard was never true.
type While struct {
	Guard Expr
	Body  Expr
}

func (n *While) Eval(ctx *environment.Context) (value.Value, error) {
	var result value.Value = value.None{}
	for {
		gv, err := n.Guard.Eval(ctx)
		if err != nil {
			return nil, err
		}
		b, ok := gv.(value.Bool)
		if !ok {
			return nil, errs.NewInvalidType(gv.Kind().String(), "bool")
		}
		if !b {
			return result, nil
		}
		v, err := n.Body.Eval(ctx)
		if err != nil {
			return nil, err
		}
		switch s := v.(type) {
		case *value.Break:
			return s.Inner, nil
		case *value.Continue:
			result = s.Inner
			continue
		case *value.Return:
			return s, nil
		default:
			result = v
		}
	}
}

// For evaluates Source once, projects it through vec(), and for each
// item creates a fresh child scope, binds Var with set_self, and
// evaluates Body. Sentinel handling mirrors While.
type For struct {
	Var    string
	Source Expr
	Body   Expr
}

func (n *For) Eval(ctx *environment.Context) (value.Value, error) {
	sv, err := n.Source.Eval(ctx)
	if err != nil {
		return nil, err
	}
	items, err := value.Vec(sv)
	if err != nil {
		return nil, err
	}

	var result value.Value = value.None{}
	for _, item := range items {
		scope := environment.FromParent(ctx)
		scope.SetSelf(n.Var, item)
		v, err := n.Body.Eval(scope)
		if err != nil {
			return nil, err
		}
		switch s := v.(type) {
		case *value.Break:
			return s.Inner, nil
		case *value.Continue:
			result = s.Inner
			continue
		case *value.Return:
			return s, nil
		default:
			result = v
		}
	}
	return result, nil
}
