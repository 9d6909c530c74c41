package parser

import (
	"github.com/conneroisu/cash/internal/ast"
	"github.com/conneroisu/cash/pkg/lexer"
)

// Parser is a recursive-descent parser over a single lexer.Lexer token
// stream, producing internal/ast nodes. It keeps a one-token lookahead
// window (cur/peek), in the same style as the teacher's Nix parser.
type Parser struct {
	l      *lexer.Lexer
	cur    lexer.Token
	peek   lexer.Token
	errors *ParseErrors
}

// New creates a parser primed with the first two tokens of l.
func New(l *lexer.Lexer) *Parser {
	p := &Parser{l: l, errors: &ParseErrors{}}
	p.advance()
	p.advance()
	return p
}

// Parse parses the entire token stream as a program: a root block whose
// statements share the caller's top-level scope, so REPL
// declarations persist line to line. It also folds any malformed-escape
// errors the lexer accumulated while scanning string literals into the
// same ParseErrors result.
func (p *Parser) Parse() (ast.Expr, error) {
	stmts := p.parseStmtList(lexer.TOKEN_EOF)
	for _, lexErr := range p.l.Errors() {
		p.errors.Add(lexErr.Error(), 0, 0)
	}
	if p.errors.HasErrors() {
		return nil, p.errors
	}
	return &ast.Block{Root: true, Stmts: stmts}, nil
}

// Errors returns accumulated parse error messages.
func (p *Parser) Errors() []string {
	msgs := make([]string, 0, p.errors.Count())
	for _, err := range p.errors.Errors() {
		msgs = append(msgs, err.Error())
	}
	return msgs
}

func (p *Parser) advance() {
	p.cur = p.peek
	p.peek = p.l.NextToken()
}

func (p *Parser) curIs(t lexer.TokenType) bool  { return p.cur.Type == t }
func (p *Parser) peekIs(t lexer.TokenType) bool { return p.peek.Type == t }

// expect verifies cur matches t, recording an error and returning false
// otherwise; on success it consumes the token.
func (p *Parser) expect(t lexer.TokenType) bool {
	if p.curIs(t) {
		p.advance()
		return true
	}
	p.errors.Addf(p.cur.Line, p.cur.Column, "expected %v, got %v (%q)", t, p.cur.Type, p.cur.Literal)
	return false
}

func (p *Parser) errorf(format string, args ...interface{}) {
	p.errors.Addf(p.cur.Line, p.cur.Column, format, args...)
}

// parseStmtList parses semicolon-separated statements until it sees
// terminator (not consumed) or EOF, tolerating a trailing semicolon.
func (p *Parser) parseStmtList(terminator lexer.TokenType) []ast.Expr {
	var stmts []ast.Expr
	for !p.curIs(terminator) && !p.curIs(lexer.TOKEN_EOF) {
		stmt := p.parseStatement()
		if stmt != nil {
			stmts = append(stmts, stmt)
		}
		if p.curIs(lexer.TOKEN_SEMI) {
			p.advance()
			continue
		}
		if !p.curIs(terminator) && !p.curIs(lexer.TOKEN_EOF) {
			// No separator and no terminator: a malformed statement
			// boundary. Record it and advance to avoid looping forever.
			p.errorf("expected ';' or %v, got %v", terminator, p.cur.Type)
			p.advance()
		}
	}
	return stmts
}

// parseBlock parses a brace-delimited, non-root block: "{ stmt; ... }".
func (p *Parser) parseBlock() *ast.Block {
	if !p.expect(lexer.TOKEN_LBRACE) {
		return &ast.Block{}
	}
	stmts := p.parseStmtList(lexer.TOKEN_RBRACE)
	p.expect(lexer.TOKEN_RBRACE)
	return &ast.Block{Stmts: stmts}
}

// parseStatement dispatches on the current token to the statement-level
// constructs (control flow, keyword statements, pipes) and falls back to
// an assignment-or-expression for everything else.
func (p *Parser) parseStatement() ast.Expr {
	switch p.cur.Type {
	case lexer.TOKEN_IF:
		return p.parseConditional()
	case lexer.TOKEN_WHILE:
		return p.parseWhile()
	case lexer.TOKEN_FOR:
		return p.parseFor()
	case lexer.TOKEN_RETURN, lexer.TOKEN_BREAK, lexer.TOKEN_CONTINUE:
		return p.parseKeywordStatement()
	case lexer.TOKEN_PIPE_KW:
		return p.parsePipeStatement()
	default:
		return p.parseAssignmentOrExpression()
	}
}
