package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/value"
)

// Block is a sequence of statements. A block recorded as Root at parse
// time reuses its caller's scope (the top of a function body, or the top
// of the program — so REPL top-level declarations persist line to
// line); a non-root block introduces a fresh child scope on entry.
type Block struct {
	Root  bool
	Stmts []Expr
}

func (n *Block) Eval(ctx *environment.Context) (value.Value, error) {
	scope := ctx
	if !n.Root {
		scope = environment.FromParent(ctx)
	}

	var result value.Value = value.None{}
	for _, stmt := range n.Stmts {
		v, err := stmt.Eval(scope)
		if err != nil {
			return nil, err
		}
		result = v
		if _, isSentinel := value.Sentinel(v); isSentinel {
			if n.Root {
				if ret, ok := v.(*value.Return); ok {
					return ret.Inner, nil
				}
			}
			return v, nil
		}
	}
	return result, nil
}
