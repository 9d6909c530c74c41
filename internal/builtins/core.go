package builtins

import (
	"fmt"
	"math"
	"strings"

	"github.com/conneroisu/cash/internal/ast"
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

func asContext(env value.Environment) (*environment.Context, error) {
	ctx, ok := env.(*environment.Context)
	if !ok {
		return nil, errs.NewBug("builtin called with a non-Context environment")
	}
	return ctx, nil
}

func registerCore(r *Registry) {
	r.register("print", biPrint)
	r.register("type", biType)
	r.register("exists", biExists)
	r.register("len", biLen)
	r.register("sqrt", biSqrt)
	r.register("vec", biVec)
}

func biPrint(args []value.Value, _ value.Environment) (value.Value, error) {
	var b strings.Builder
	for _, a := range args {
		b.WriteString(value.Stringify(a))
	}
	fmt.Println(b.String())
	return value.None{}, nil
}

func biType(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, errs.NewInvalidParameterCount(len(args), 1)
	}
	return value.String(args[0].Kind().String()), nil
}

// biExists implements both exists(name) and exists(container, key)
// forms.
func biExists(args []value.Value, env value.Environment) (value.Value, error) {
	switch len(args) {
	case 1:
		name, ok := args[0].(value.String)
		if !ok {
			return nil, errs.NewInvalidArguments(args[0].Kind().String(), "string")
		}
		return value.Bool(env.Exists(string(name))), nil
	case 2:
		_, err := value.Index(args[0], args[1])
		return value.Bool(err == nil), nil
	default:
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
}

func biLen(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, errs.NewInvalidParameterCount(len(args), 1)
	}
	switch v := args[0].(type) {
	case *value.List:
		return value.Int(len(v.Elems)), nil
	case *value.Dict:
		return value.Int(v.Len()), nil
	case value.String:
		return value.Int(len([]rune(string(v)))), nil
	default:
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "list, dict, or string")
	}
}

// biSqrt accepts either an int or a float and always returns a float,
// matching the original interpreter's sqrt_closure dispatch.
func biSqrt(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, errs.NewInvalidParameterCount(len(args), 1)
	}
	switch v := args[0].(type) {
	case value.Int:
		return value.Float(math.Sqrt(float64(v))), nil
	case value.Float:
		return value.Float(math.Sqrt(float64(v))), nil
	default:
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "int or float")
	}
}

// biVec exposes the vec() projection as a callable builtin:
// range/list/dict/string all widen to a list.
func biVec(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, errs.NewInvalidParameterCount(len(args), 1)
	}
	elems, err := value.Vec(args[0])
	if err != nil {
		return nil, err
	}
	return value.NewList(elems...), nil
}

// callFn invokes a cash function or builtin value with args, used by the
// collection builtins (map/each/filter/reduce in collections.go,
// pmap/peach in concurrent.go).
func callFn(fn value.Value, args []value.Value, env value.Environment) (value.Value, error) {
	ctx, err := asContext(env)
	if err != nil {
		return nil, err
	}
	return ast.Call(fn, args, ctx)
}
