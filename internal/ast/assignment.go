package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

// BinOp identifies an infix operator by name, shared between Assignment
// (compound assignment) and Expression (full infix resolution).
type BinOp string

const (
	OpAdd      BinOp = "+"
	OpSub      BinOp = "-"
	OpMul      BinOp = "*"
	OpDiv      BinOp = "/"
	OpMod      BinOp = "%"
	OpPow      BinOp = "**"
	OpShl      BinOp = "<<"
	OpShr      BinOp = ">>"
	OpBitAnd   BinOp = "&"
	OpBitXor   BinOp = "^"
	OpBitOr    BinOp = "|"
	OpLt       BinOp = "<"
	OpGt       BinOp = ">"
	OpLte      BinOp = "<="
	OpGte      BinOp = ">="
	OpEq       BinOp = "=="
	OpNeq      BinOp = "!="
	OpIn       BinOp = "in"
	OpAnd      BinOp = "and"
	OpOr       BinOp = "or"
	OpXor      BinOp = "xor"
)

// ApplyBinOp dispatches a binary operator by name to the value package's
// per-operator functions.
func ApplyBinOp(op BinOp, l, r value.Value) (value.Value, error) {
	switch op {
	case OpAdd:
		return value.Add(l, r)
	case OpSub:
		return value.Sub(l, r)
	case OpMul:
		return value.Mul(l, r)
	case OpDiv:
		return value.Div(l, r)
	case OpMod:
		return value.Mod(l, r)
	case OpPow:
		return value.Pow(l, r)
	case OpShl:
		return value.Shl(l, r)
	case OpShr:
		return value.Shr(l, r)
	case OpBitAnd:
		return value.BitAnd(l, r)
	case OpBitXor:
		return value.BitXor(l, r)
	case OpBitOr:
		return value.BitOr(l, r)
	case OpLt:
		return value.Less(l, r)
	case OpGt:
		return value.Greater(l, r)
	case OpLte:
		return value.LessEq(l, r)
	case OpGte:
		return value.GreaterEq(l, r)
	case OpEq:
		return value.Bool(value.Eq(l, r)), nil
	case OpNeq:
		return value.Bool(!value.Eq(l, r)), nil
	case OpIn:
		return value.In(l, r)
	case OpAnd:
		lb, lok := l.(value.Bool)
		rb, rok := r.(value.Bool)
		if !lok || !rok {
			return nil, errs.NewInvalidOperation("and", l.Kind().String()+" "+r.Kind().String())
		}
		return lb && rb, nil
	case OpOr:
		lb, lok := l.(value.Bool)
		rb, rok := r.(value.Bool)
		if !lok || !rok {
			return nil, errs.NewInvalidOperation("or", l.Kind().String()+" "+r.Kind().String())
		}
		return lb || rb, nil
	case OpXor:
		return value.BitXor(l, r)
	default:
		return nil, errs.NewBug("unknown binary operator " + string(op))
	}
}

// Assignment is `ident (indexPath)* (infixOp)? = expr`: a plain or
// indexed, plain or compound assignment.
type Assignment struct {
	Name      string
	IndexPath []Expr // may be empty
	Op        BinOp  // "" for plain assignment
	Value     Expr
}

func (n *Assignment) Eval(ctx *environment.Context) (value.Value, error) {
	rhs, err := n.Value.Eval(ctx)
	if err != nil {
		return nil, err
	}

	result := rhs
	if n.Op != "" {
		cur, err := ctx.MustGet(n.Name)
		if err != nil {
			return nil, err
		}
		target := cur
		for _, idxExpr := range n.IndexPath {
			idxVal, err := idxExpr.Eval(ctx)
			if err != nil {
				return nil, err
			}
			if _, isRange := idxVal.(*value.Range); isRange {
				return nil, errs.NewInvalidOperation("compound-index-assign", "range")
			}
			target, err = value.Index(target, idxVal)
			if err != nil {
				return nil, err
			}
		}
		result, err = ApplyBinOp(n.Op, target, rhs)
		if err != nil {
			return nil, err
		}
	}

	if len(n.IndexPath) == 0 {
		ctx.Set(n.Name, result)
		return result, nil
	}

	cur, err := ctx.MustGet(n.Name)
	if err != nil {
		return nil, err
	}
	target := cur
	for _, idxExpr := range n.IndexPath[:len(n.IndexPath)-1] {
		idxVal, err := idxExpr.Eval(ctx)
		if err != nil {
			return nil, err
		}
		target, err = value.IndexRef(target, idxVal)
		if err != nil {
			return nil, err
		}
	}
	lastIdx, err := n.IndexPath[len(n.IndexPath)-1].Eval(ctx)
	if err != nil {
		return nil, err
	}
	if err := value.IndexSet(target, lastIdx, result); err != nil {
		return nil, err
	}
	ctx.Set(n.Name, cur)
	return result, nil
}
