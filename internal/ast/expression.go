package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

// Prefix is a unary operator applied around a primary:
// "+", "-", "!", "await". Prefixes are applied in REVERSE listed order
// (rightmost prefix closest to the primary binds tightest).
type Prefix string

const (
	PrefixPlus  Prefix = "+"
	PrefixMinus Prefix = "-"
	PrefixNot   Prefix = "!"
	PrefixAwait Prefix = "await"
)

// Postfix is either a function call or an indexing operation, applied in
// listed (left-to-right) order after the inner AST evaluates.
type Postfix interface {
	apply(v value.Value, ctx *environment.Context) (value.Value, error)
}

// CallPostfix evaluates Args left-to-right in the caller's context, then
// invokes value.call(args, context).
type CallPostfix struct{ Args []Expr }

func (p *CallPostfix) apply(v value.Value, ctx *environment.Context) (value.Value, error) {
	args := make([]value.Value, 0, len(p.Args))
	for _, a := range p.Args {
		av, err := a.Eval(ctx)
		if err != nil {
			return nil, err
		}
		args = append(args, av)
	}
	return Call(v, args, ctx)
}

// IndexPostfix evaluates Key and calls value.index(idx). Dict member
// access by spelling is written d.key, which the parser turns into an
// implicit string-literal key; a bare identifier inside brackets (d[key])
// is not rewritten and is evaluated as an ordinary variable lookup.
type IndexPostfix struct{ Key Expr }

func (p *IndexPostfix) apply(v value.Value, ctx *environment.Context) (value.Value, error) {
	kv, err := p.Key.Eval(ctx)
	if err != nil {
		return nil, err
	}
	return value.Index(v, kv)
}

// Primary is an inner AST node with postfixes applied left-to-right and
// prefixes applied in reverse listed order.
type Primary struct {
	Prefixes  []Prefix
	Inner     Expr
	Postfixes []Postfix
}

func (n *Primary) Eval(ctx *environment.Context) (value.Value, error) {
	v, err := n.Inner.Eval(ctx)
	if err != nil {
		return nil, err
	}
	for _, pf := range n.Postfixes {
		v, err = pf.apply(v, ctx)
		if err != nil {
			return nil, err
		}
	}
	for i := len(n.Prefixes) - 1; i >= 0; i-- {
		v, err = applyPrefix(n.Prefixes[i], v)
		if err != nil {
			return nil, err
		}
	}
	return v, nil
}

func applyPrefix(p Prefix, v value.Value) (value.Value, error) {
	switch p {
	case PrefixPlus:
		return value.UPlus(v)
	case PrefixMinus:
		return value.UMinus(v)
	case PrefixNot:
		return value.Not(v)
	case PrefixAwait:
		fut, ok := v.(*value.Future)
		if !ok {
			return nil, errs.NewInvalidType(v.Kind().String(), "future")
		}
		return fut.Await()
	default:
		return nil, errs.NewBug("unknown prefix operator " + string(p))
	}
}

// Expression is a flat (primary, infix, primary, infix, …) list with an
// optional is_async flag.
type Expression struct {
	Async     bool
	Primaries []*Primary
	Infixes   []BinOp
}

func (n *Expression) Eval(ctx *environment.Context) (value.Value, error) {
	if n.Async {
		cleared := &Expression{Primaries: n.Primaries, Infixes: n.Infixes}
		exec := ctx.Executor()
		ticket := exec.RegisterJob(func() (value.Value, error) {
			return cleared.Eval(ctx)
		})
		return value.NewFuture(ticket), nil
	}

	vals := make([]value.Value, len(n.Primaries))
	for i, p := range n.Primaries {
		v, err := p.Eval(ctx)
		if err != nil {
			return nil, err
		}
		vals[i] = v
	}
	if len(vals) == 0 {
		return value.None{}, nil
	}
	return climb(vals, n.Infixes)
}

// precedence implements the ascending table: Or 1, Xor 2,
// And 3, {Eq,Ne} 4, {In,Lt,Gt,Lte,Gte} 5, {Shl,Shr} 6, {Add,Sub} 7,
// {Mul,Div,Mod} 8, {Pow} 9. All left-associative except Pow.
func precedence(op BinOp) int {
	switch op {
	case OpOr:
		return 1
	case OpXor:
		return 2
	case OpAnd:
		return 3
	case OpEq, OpNeq:
		return 4
	case OpIn, OpLt, OpGt, OpLte, OpGte:
		return 5
	case OpShl, OpShr:
		return 6
	case OpAdd, OpSub:
		return 7
	case OpMul, OpDiv, OpMod:
		return 8
	case OpPow:
		return 9
	default:
		return 0
	}
}

func rightAssociative(op BinOp) bool { return op == OpPow }

// climber walks a flat values/ops list via precedence climbing.
type climber struct {
	vals   []value.Value
	ops    []BinOp
	posVal int
	posOp  int
}

func (c *climber) peekOp() (BinOp, bool) {
	if c.posOp < len(c.ops) {
		return c.ops[c.posOp], true
	}
	return "", false
}

func (c *climber) nextVal() value.Value {
	v := c.vals[c.posVal]
	c.posVal++
	return v
}

func (c *climber) nextOp() BinOp {
	op := c.ops[c.posOp]
	c.posOp++
	return op
}

func (c *climber) parse(lhs value.Value, minPrec int) (value.Value, error) {
	for {
		op, ok := c.peekOp()
		if !ok || precedence(op) < minPrec {
			return lhs, nil
		}
		c.nextOp()
		rhs := c.nextVal()
		for {
			op2, ok2 := c.peekOp()
			if !ok2 {
				break
			}
			p2 := precedence(op2)
			if p2 > precedence(op) || (p2 == precedence(op) && rightAssociative(op2)) {
				var err error
				rhs, err = c.parse(rhs, p2)
				if err != nil {
					return nil, err
				}
				continue
			}
			break
		}
		var err error
		lhs, err = ApplyBinOp(op, lhs, rhs)
		if err != nil {
			return nil, err
		}
	}
}

func climb(vals []value.Value, ops []BinOp) (value.Value, error) {
	c := &climber{vals: vals, ops: ops}
	lhs := c.nextVal()
	return c.parse(lhs, 0)
}
