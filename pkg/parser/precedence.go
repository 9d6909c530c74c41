package parser

import (
	"github.com/conneroisu/cash/internal/ast"
	"github.com/conneroisu/cash/pkg/lexer"
)

// infixOps maps an infix operator token to the BinOp the parser emits
// into an Expression's flat (primary, op, primary, ...) list. Actual
// precedence and associativity resolution happens later, at eval time,
// in internal/ast's precedence-climbing machinery — the parser itself
// stays precedence-agnostic (see ast.Expression.Eval).
var infixOps = map[lexer.TokenType]ast.BinOp{
	lexer.TOKEN_PLUS:    ast.OpAdd,
	lexer.TOKEN_MINUS:   ast.OpSub,
	lexer.TOKEN_STAR:    ast.OpMul,
	lexer.TOKEN_SLASH:   ast.OpDiv,
	lexer.TOKEN_PERCENT: ast.OpMod,
	lexer.TOKEN_POW:     ast.OpPow,
	lexer.TOKEN_SHL:     ast.OpShl,
	lexer.TOKEN_SHR:     ast.OpShr,
	lexer.TOKEN_AMP:     ast.OpBitAnd,
	lexer.TOKEN_CARET:   ast.OpBitXor,
	lexer.TOKEN_PIPE:    ast.OpBitOr,
	lexer.TOKEN_LT:      ast.OpLt,
	lexer.TOKEN_GT:      ast.OpGt,
	lexer.TOKEN_LTE:     ast.OpLte,
	lexer.TOKEN_GTE:     ast.OpGte,
	lexer.TOKEN_EQ:      ast.OpEq,
	lexer.TOKEN_NEQ:     ast.OpNeq,
	lexer.TOKEN_IN:      ast.OpIn,
	lexer.TOKEN_AND:     ast.OpAnd,
	lexer.TOKEN_OR:      ast.OpOr,
	lexer.TOKEN_XOR:     ast.OpXor,
}

// compoundAssignOps maps a compound-assignment token to the underlying
// BinOp Assignment.Eval applies before storing.
var compoundAssignOps = map[lexer.TokenType]ast.BinOp{
	lexer.TOKEN_PLUSEQ:   ast.OpAdd,
	lexer.TOKEN_MINUSEQ:  ast.OpSub,
	lexer.TOKEN_STAREQ:   ast.OpMul,
	lexer.TOKEN_SLASHEQ:  ast.OpDiv,
	lexer.TOKEN_PCTEQ:    ast.OpMod,
	lexer.TOKEN_POWEQ:    ast.OpPow,
	lexer.TOKEN_SHLEQ:    ast.OpShl,
	lexer.TOKEN_SHREQ:    ast.OpShr,
	lexer.TOKEN_AMPEQ:    ast.OpBitAnd,
	lexer.TOKEN_CARETEQ:  ast.OpBitXor,
	lexer.TOKEN_PIPEEQ:   ast.OpBitOr,
}
