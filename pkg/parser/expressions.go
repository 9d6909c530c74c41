package parser

import (
	"strconv"

	"github.com/conneroisu/cash/internal/ast"
	"github.com/conneroisu/cash/pkg/lexer"
)

// parseExpressionNode parses a (possibly async) flat primary/infix
// expression: "async"? primary (infixOp primary)*.
func (p *Parser) parseExpressionNode() ast.Expr {
	async := false
	if p.curIs(lexer.TOKEN_ASYNC) {
		async = true
		p.advance()
	}

	primaries := []*ast.Primary{p.parseRangeOrPrimary()}
	var infixes []ast.BinOp
	for {
		op, ok := infixOps[p.cur.Type]
		if !ok {
			break
		}
		p.advance()
		primaries = append(primaries, p.parseRangeOrPrimary())
		infixes = append(infixes, op)
	}

	return &ast.Expression{Async: async, Primaries: primaries, Infixes: infixes}
}

// parseRangeOrPrimary parses a primary, then an optional "..upper" range
// suffix binding the two primaries into a RangeLit; the parser treats
// ".." as tighter-binding than any infix op.
func (p *Parser) parseRangeOrPrimary() *ast.Primary {
	lower := p.parsePrimary()
	if !p.curIs(lexer.TOKEN_DOTDOT) {
		return lower
	}
	p.advance()
	upper := p.parsePrimary()
	return &ast.Primary{Inner: &ast.RangeLit{Lower: lower, Upper: upper}}
}

// parsePrimary parses prefixes, an atom, and postfixes.
func (p *Parser) parsePrimary() *ast.Primary {
	var prefixes []ast.Prefix
prefixLoop:
	for {
		switch p.cur.Type {
		case lexer.TOKEN_PLUS:
			prefixes = append(prefixes, ast.PrefixPlus)
		case lexer.TOKEN_MINUS:
			prefixes = append(prefixes, ast.PrefixMinus)
		case lexer.TOKEN_BANG:
			prefixes = append(prefixes, ast.PrefixNot)
		case lexer.TOKEN_AWAIT:
			prefixes = append(prefixes, ast.PrefixAwait)
		default:
			break prefixLoop
		}
		p.advance()
	}

	inner := p.parseAtom()
	postfixes := p.parsePostfixes()
	return &ast.Primary{Prefixes: prefixes, Inner: inner, Postfixes: postfixes}
}

// parsePostfixes parses a run of call/index/dot-access postfixes
// applied left to right.
func (p *Parser) parsePostfixes() []ast.Postfix {
	var postfixes []ast.Postfix
postfixLoop:
	for {
		switch p.cur.Type {
		case lexer.TOKEN_LPAREN:
			postfixes = append(postfixes, &ast.CallPostfix{Args: p.parseArgList()})
		case lexer.TOKEN_LBRACKET:
			p.advance()
			idx := p.parseExpressionNode()
			p.expect(lexer.TOKEN_RBRACKET)
			postfixes = append(postfixes, &ast.IndexPostfix{Key: idx})
		case lexer.TOKEN_DOT:
			p.advance()
			if !p.curIs(lexer.TOKEN_IDENT) {
				p.errorf("expected field name after '.', got %v", p.cur.Type)
				break postfixLoop
			}
			name := p.cur.Literal
			p.advance()
			postfixes = append(postfixes, &ast.IndexPostfix{Key: dotKey(name)})
		default:
			break postfixLoop
		}
	}
	return postfixes
}

// dotKey turns "a.name" field-access sugar into the string-literal index
// key it's shorthand for.
func dotKey(name string) ast.Expr {
	return &ast.StringLit{Parts: []ast.StringPart{{Literal: name}}}
}

// parseArgList parses a parenthesized, comma-separated argument list.
// Assumes cur is TOKEN_LPAREN.
func (p *Parser) parseArgList() []ast.Expr {
	p.advance() // '('
	var args []ast.Expr
	for !p.curIs(lexer.TOKEN_RPAREN) && !p.curIs(lexer.TOKEN_EOF) {
		args = append(args, p.parseExpressionNode())
		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.TOKEN_RPAREN)
	return args
}

// parseAtom parses a single non-prefixed, non-postfixed expression term.
func (p *Parser) parseAtom() ast.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_INT:
		v, err := strconv.ParseInt(p.cur.Literal, 10, 64)
		if err != nil {
			p.errorf("could not parse %q as integer", p.cur.Literal)
		}
		p.advance()
		return &ast.IntLit{Value: v}

	case lexer.TOKEN_FLOAT:
		v, err := strconv.ParseFloat(p.cur.Literal, 64)
		if err != nil {
			p.errorf("could not parse %q as float", p.cur.Literal)
		}
		p.advance()
		return &ast.FloatLit{Value: v}

	case lexer.TOKEN_STRING:
		return p.parseStringLiteral()

	case lexer.TOKEN_TRUE:
		p.advance()
		return &ast.BoolLit{Value: true}

	case lexer.TOKEN_FALSE:
		p.advance()
		return &ast.BoolLit{Value: false}

	case lexer.TOKEN_NONE:
		p.advance()
		return &ast.NoneLit{}

	case lexer.TOKEN_IDENT:
		name := p.cur.Literal
		p.advance()
		return &ast.Ident{Name: name}

	case lexer.TOKEN_LPAREN:
		p.advance()
		inner := p.parseExpressionNode()
		p.expect(lexer.TOKEN_RPAREN)
		return inner

	case lexer.TOKEN_LBRACKET:
		return p.parseListLiteral()

	case lexer.TOKEN_LBRACE:
		return p.parseDictLiteral()

	case lexer.TOKEN_FN:
		return p.parseFunctionLiteral()

	case lexer.TOKEN_CAPTURE:
		return p.parseCapture()

	case lexer.TOKEN_IF:
		return p.parseConditional()

	default:
		p.errorf("no prefix parse function for %v (%q)", p.cur.Type, p.cur.Literal)
		p.advance()
		return &ast.NoneLit{}
	}
}

// parseStringLiteral parses a (possibly interpolated) string, stitching
// together the literal/interpolation token runs the lexer produces
// (see pkg/lexer's string-frame documentation).
func (p *Parser) parseStringLiteral() ast.Expr {
	var parts []ast.StringPart
	parts = append(parts, ast.StringPart{Literal: p.cur.Literal})
	p.advance()

	for p.curIs(lexer.TOKEN_STRING_INTERP_START) {
		p.advance()
		expr := p.parseExpressionNode()
		p.expect(lexer.TOKEN_STRING_INTERP_END)
		parts = append(parts, ast.StringPart{Interp: expr})

		if !p.curIs(lexer.TOKEN_STRING) {
			p.errorf("expected string segment after interpolation, got %v", p.cur.Type)
			break
		}
		parts = append(parts, ast.StringPart{Literal: p.cur.Literal})
		p.advance()
	}

	return &ast.StringLit{Parts: parts}
}

// parseListLiteral parses "[e1, e2, ...]".
func (p *Parser) parseListLiteral() ast.Expr {
	p.advance() // '['
	var elems []ast.Expr
	for !p.curIs(lexer.TOKEN_RBRACKET) && !p.curIs(lexer.TOKEN_EOF) {
		elems = append(elems, p.parseExpressionNode())
		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.TOKEN_RBRACKET)
	return &ast.ListLit{Elems: elems}
}

// parseDictLiteral parses "{ key: value, ... }"; keys are the
// string rendering of an arbitrary key expression.
func (p *Parser) parseDictLiteral() ast.Expr {
	p.advance() // '{'
	var entries []ast.DictEntry
	for !p.curIs(lexer.TOKEN_RBRACE) && !p.curIs(lexer.TOKEN_EOF) {
		key := p.parseExpressionNode()
		p.expect(lexer.TOKEN_COLON)
		val := p.parseExpressionNode()
		entries = append(entries, ast.DictEntry{Key: key, Value: val})
		if p.curIs(lexer.TOKEN_COMMA) {
			p.advance()
			continue
		}
		break
	}
	p.expect(lexer.TOKEN_RBRACE)
	return &ast.DictLit{Entries: entries}
}

// assignOpFor reports whether t is an assignment token and, if so, the
// BinOp a compound form applies before storing ("" for plain "=").
func assignOpFor(t lexer.TokenType) (ast.BinOp, bool) {
	if t == lexer.TOKEN_ASSIGN {
		return "", true
	}
	op, ok := compoundAssignOps[t]
	return op, ok
}

// parseAssignmentOrExpression implements the
// "ident (indexPath)* (infixOp)? = expr" grammar alongside plain
// expressions. Since assignment targets are themselves a prefix of ordinary primary
// syntax, it speculatively parses an identifier's index path, then
// either completes an Assignment or folds what it parsed back into a
// regular expression.
func (p *Parser) parseAssignmentOrExpression() ast.Expr {
	if !p.curIs(lexer.TOKEN_IDENT) {
		return p.parseExpressionNode()
	}

	name := p.cur.Literal
	p.advance()

	var indexPath []ast.Expr
	for p.curIs(lexer.TOKEN_LBRACKET) || p.curIs(lexer.TOKEN_DOT) {
		if p.curIs(lexer.TOKEN_DOT) {
			p.advance()
			if !p.curIs(lexer.TOKEN_IDENT) {
				p.errorf("expected field name after '.', got %v", p.cur.Type)
				break
			}
			indexPath = append(indexPath, dotKey(p.cur.Literal))
			p.advance()
			continue
		}
		p.advance() // '['
		idx := p.parseExpressionNode()
		p.expect(lexer.TOKEN_RBRACKET)
		indexPath = append(indexPath, idx)
	}

	if op, isAssign := assignOpFor(p.cur.Type); isAssign {
		p.advance()
		val := p.parseExpressionNode()
		return &ast.Assignment{Name: name, IndexPath: indexPath, Op: op, Value: val}
	}

	// Not an assignment: fold the ident + index path parsed so far back
	// into an ordinary primary and keep going (calls, further postfixes,
	// ranges, infix operators).
	postfixes := make([]ast.Postfix, 0, len(indexPath))
	for _, idx := range indexPath {
		postfixes = append(postfixes, &ast.IndexPostfix{Key: idx})
	}
	postfixes = append(postfixes, p.parsePostfixes()...)

	primary := &ast.Primary{Inner: &ast.Ident{Name: name}, Postfixes: postfixes}
	if p.curIs(lexer.TOKEN_DOTDOT) {
		p.advance()
		upper := p.parsePrimary()
		primary = &ast.Primary{Inner: &ast.RangeLit{Lower: primary, Upper: upper}}
	}

	primaries := []*ast.Primary{primary}
	var infixes []ast.BinOp
	for {
		op, ok := infixOps[p.cur.Type]
		if !ok {
			break
		}
		p.advance()
		primaries = append(primaries, p.parseRangeOrPrimary())
		infixes = append(infixes, op)
	}
	return &ast.Expression{Primaries: primaries, Infixes: infixes}
}
