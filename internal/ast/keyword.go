package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/value"
)

// KeywordKind distinguishes which control-flow sentinel a KeywordStatement
// produces.
type KeywordKind byte

const (
	KeywordReturn KeywordKind = iota
	KeywordBreak
	KeywordContinue
)

// KeywordStatement evaluates Value (defaulting to none) and wraps it in
// the sentinel corresponding to Kind. These sentinels propagate through
// eval without normal interpretation until a Block/While/For/call
// boundary unwraps them.
type KeywordStatement struct {
	Kind  KeywordKind
	Value Expr // nil defaults to none
}

func (n *KeywordStatement) Eval(ctx *environment.Context) (value.Value, error) {
	var v value.Value = value.None{}
	if n.Value != nil {
		var err error
		v, err = n.Value.Eval(ctx)
		if err != nil {
			return nil, err
		}
	}
	switch n.Kind {
	case KeywordReturn:
		return &value.Return{Inner: v}, nil
	case KeywordBreak:
		return &value.Break{Inner: v}, nil
	case KeywordContinue:
		return &value.Continue{Inner: v}, nil
	default:
		return v, nil
	}
}
