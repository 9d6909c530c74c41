package builtins

import (
	"strings"

	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

func registerCollections(r *Registry) {
	r.register("map", biMap)
	r.register("each", biEach)
	r.register("filter", biFilter)
	r.register("reduce", biReduce)
	r.register("push", biPush)
	r.register("pop", biPop)
	r.register("insert", biInsert)
	r.register("remove", biRemove)
	r.register("join", biJoin)
}

// elementsOf returns a collection's elements paired with their "index"
// (integer position for a list, string key for a dict), matching the
// two-argument (value, index) callback shape of spec S1's
// "map(a, (v,i)->{v*10})".
func elementsOf(c value.Value) ([]value.Value, []value.Value, error) {
	switch v := c.(type) {
	case *value.List:
		idxs := make([]value.Value, len(v.Elems))
		for i := range v.Elems {
			idxs[i] = value.Int(i)
		}
		return v.Elems, idxs, nil
	case *value.Dict:
		keys := v.Keys()
		elems := make([]value.Value, len(keys))
		idxs := make([]value.Value, len(keys))
		for i, k := range keys {
			elem, _ := v.Get(k)
			elems[i] = elem
			idxs[i] = value.String(k)
		}
		return elems, idxs, nil
	default:
		return nil, nil, errs.NewInvalidArguments(c.Kind().String(), "list or dict")
	}
}

func biMap(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
	elems, idxs, err := elementsOf(args[0])
	if err != nil {
		return nil, err
	}
	out := make([]value.Value, len(elems))
	for i := range elems {
		v, err := callFn(args[1], []value.Value{elems[i], idxs[i]}, env)
		if err != nil {
			return nil, err
		}
		out[i] = v
	}
	return &value.List{Elems: out}, nil
}

func biEach(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
	elems, idxs, err := elementsOf(args[0])
	if err != nil {
		return nil, err
	}
	for i := range elems {
		if _, err := callFn(args[1], []value.Value{elems[i], idxs[i]}, env); err != nil {
			return nil, err
		}
	}
	return value.None{}, nil
}

func biFilter(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
	elems, idxs, err := elementsOf(args[0])
	if err != nil {
		return nil, err
	}
	var out []value.Value
	for i := range elems {
		v, err := callFn(args[1], []value.Value{elems[i], idxs[i]}, env)
		if err != nil {
			return nil, err
		}
		keep, ok := v.(value.Bool)
		if !ok {
			return nil, errs.NewInvalidType(v.Kind().String(), "bool")
		}
		if keep {
			out = append(out, elems[i].Clone())
		}
	}
	return &value.List{Elems: out}, nil
}

func biReduce(args []value.Value, env value.Environment) (value.Value, error) {
	if len(args) != 3 {
		return nil, errs.NewInvalidParameterCount(len(args), 3)
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "list")
	}
	acc := args[2]
	for _, e := range lst.Elems {
		v, err := callFn(args[1], []value.Value{acc, e}, env)
		if err != nil {
			return nil, err
		}
		acc = v
	}
	return acc, nil
}

func biPush(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "list")
	}
	nl := lst.Clone().(*value.List)
	nl.Elems = append(nl.Elems, args[1].Clone())
	return nl, nil
}

func biPop(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, errs.NewInvalidParameterCount(len(args), 1)
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "list")
	}
	if len(lst.Elems) == 0 {
		return nil, errs.NewInvalidLength(0, "list")
	}
	nl := lst.Clone().(*value.List)
	nl.Elems = nl.Elems[:len(nl.Elems)-1]
	return nl, nil
}

func biInsert(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 3 {
		return nil, errs.NewInvalidParameterCount(len(args), 3)
	}
	switch c := args[0].(type) {
	case *value.Dict:
		nd := c.Clone().(*value.Dict)
		nd.Set(value.Stringify(args[1]), args[2])
		return nd, nil
	case *value.List:
		i, ok := args[1].(value.Int)
		if !ok {
			return nil, errs.NewInvalidArguments(args[1].Kind().String(), "int")
		}
		nl := c.Clone().(*value.List)
		pos := int(i)
		if pos < 0 || pos > len(nl.Elems) {
			return nil, errs.NewIndexOutOfBounds(pos, "list")
		}
		nl.Elems = append(nl.Elems[:pos], append([]value.Value{args[2].Clone()}, nl.Elems[pos:]...)...)
		return nl, nil
	default:
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "list or dict")
	}
}

func biRemove(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
	switch c := args[0].(type) {
	case *value.Dict:
		nd := c.Clone().(*value.Dict)
		key := value.Stringify(args[1])
		if !nd.Delete(key) {
			return nil, errs.NewKeyNotFound(key, "dict")
		}
		return nd, nil
	case *value.List:
		i, ok := args[1].(value.Int)
		if !ok {
			return nil, errs.NewInvalidArguments(args[1].Kind().String(), "int")
		}
		nl := c.Clone().(*value.List)
		pos := int(i)
		if pos < 0 {
			pos += len(nl.Elems)
		}
		if pos < 0 || pos >= len(nl.Elems) {
			return nil, errs.NewIndexOutOfBounds(int(i), "list")
		}
		nl.Elems = append(nl.Elems[:pos], nl.Elems[pos+1:]...)
		return nl, nil
	default:
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "list or dict")
	}
}

func biJoin(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 2 {
		return nil, errs.NewInvalidParameterCount(len(args), 2)
	}
	lst, ok := args[0].(*value.List)
	if !ok {
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "list")
	}
	sep, ok := args[1].(value.String)
	if !ok {
		return nil, errs.NewInvalidArguments(args[1].Kind().String(), "string")
	}
	parts := make([]string, len(lst.Elems))
	for i, e := range lst.Elems {
		parts[i] = value.Stringify(e)
	}
	return value.String(strings.Join(parts, string(sep))), nil
}
