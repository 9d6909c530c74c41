package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

// Ident looks up a variable by name through the context chain, the
// $NAME env bridge, or the builtin registry.
type Ident struct{ Name string }

func (n *Ident) Eval(ctx *environment.Context) (value.Value, error) {
	v, ok := ctx.Get(n.Name)
	if !ok {
		return nil, errs.NewVariableNotFound(n.Name)
	}
	return v, nil
}
