package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

// Call implements the calling convention for both user-defined Function
// values and Builtin values, including partial application.
func Call(fn value.Value, args []value.Value, ctx *environment.Context) (value.Value, error) {
	switch f := fn.(type) {
	case *value.Builtin:
		return f.Call(args, ctx)
	case *value.Function:
		return callFunction(f, args)
	default:
		return nil, errs.NewInvalidOperation("call", fn.Kind().String())
	}
}

func callFunction(f *value.Function, args []value.Value) (value.Value, error) {
	if len(args) > len(f.Params) {
		return nil, errs.NewInvalidParameterCount(len(args), len(f.Params))
	}

	capturedCtx, ok := f.Env.(*environment.Context)
	if !ok {
		return nil, errs.NewBug("function captured a non-Context environment")
	}
	scope := environment.FromParent(capturedCtx)

	var unsupplied []value.Param
	for i, param := range f.Params {
		var argVal value.Value
		switch {
		case i < len(args):
			argVal = args[i]
		case param.Default != nil:
			defExpr, ok := param.Default.(Expr)
			if !ok {
				return nil, errs.NewBug("function parameter default is not an expression")
			}
			v, err := defExpr.Eval(scope)
			if err != nil {
				return nil, err
			}
			argVal = v
		default:
			unsupplied = f.Params[i:]
		}
		if unsupplied != nil {
			break
		}
		scope.SetSelf(param.Name, argVal)
	}

	if unsupplied != nil {
		return value.NewFunction(f.Body, scope, unsupplied), nil
	}

	bodyExpr, ok := f.Body.(Expr)
	if !ok {
		return nil, errs.NewBug("function body is not an expression")
	}
	result, err := bodyExpr.Eval(scope)
	if err != nil {
		return nil, err
	}
	return value.Unwrap(result), nil
}
