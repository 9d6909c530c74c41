package parser

import (
	"github.com/conneroisu/cash/internal/ast"
	"github.com/conneroisu/cash/pkg/lexer"
)

// parseConditional parses "if cond { .. } else if cond { .. } else { .. }"
// into a single ast.Conditional chain.
func (p *Parser) parseConditional() ast.Expr {
	var arms []ast.CondArm
	for {
		p.advance() // 'if'
		guard := p.parseExpressionNode()
		body := p.parseBlock()
		arms = append(arms, ast.CondArm{Guard: guard, Body: body})

		if !p.curIs(lexer.TOKEN_ELSE) {
			return &ast.Conditional{Arms: arms}
		}
		p.advance() // 'else'
		if p.curIs(lexer.TOKEN_IF) {
			continue
		}
		elseBody := p.parseBlock()
		return &ast.Conditional{Arms: arms, Else: elseBody}
	}
}

// parseWhile parses "while cond { .. }".
func (p *Parser) parseWhile() ast.Expr {
	p.advance() // 'while'
	guard := p.parseExpressionNode()
	body := p.parseBlock()
	return &ast.While{Guard: guard, Body: body}
}

// parseFor parses "for x in source { .. }".
func (p *Parser) parseFor() ast.Expr {
	p.advance() // 'for'
	if !p.curIs(lexer.TOKEN_IDENT) {
		p.errorf("expected identifier after 'for', got %v", p.cur.Type)
		return &ast.For{}
	}
	name := p.cur.Literal
	p.advance()
	if !p.expect(lexer.TOKEN_IN) {
		return &ast.For{Var: name}
	}
	source := p.parseExpressionNode()
	body := p.parseBlock()
	return &ast.For{Var: name, Source: source, Body: body}
}

// parseKeywordStatement parses "return/break/continue [expr]".
func (p *Parser) parseKeywordStatement() ast.Expr {
	var kind ast.KeywordKind
	switch p.cur.Type {
	case lexer.TOKEN_RETURN:
		kind = ast.KeywordReturn
	case lexer.TOKEN_BREAK:
		kind = ast.KeywordBreak
	case lexer.TOKEN_CONTINUE:
		kind = ast.KeywordContinue
	}
	p.advance()

	if p.startsExpression() {
		return &ast.KeywordStatement{Kind: kind, Value: p.parseExpressionNode()}
	}
	return &ast.KeywordStatement{Kind: kind}
}

// startsExpression reports whether cur could begin an expression, used
// to tell "return;" (no value) apart from "return expr;".
func (p *Parser) startsExpression() bool {
	switch p.cur.Type {
	case lexer.TOKEN_SEMI, lexer.TOKEN_RBRACE, lexer.TOKEN_EOF:
		return false
	default:
		return true
	}
}

// parsePipeCommands parses "name(args) ('|' name(args))*" shared by both
// the pipe statement and the capture expression.
func (p *Parser) parsePipeCommands() []ast.PipeCommand {
	var cmds []ast.PipeCommand
	for {
		if !p.curIs(lexer.TOKEN_IDENT) {
			p.errorf("expected command name, got %v", p.cur.Type)
			return cmds
		}
		name := p.cur.Literal
		p.advance()
		var args []ast.Expr
		if p.curIs(lexer.TOKEN_LPAREN) {
			args = p.parseArgList()
		}
		cmds = append(cmds, ast.PipeCommand{Name: name, Args: args})
		if !p.curIs(lexer.TOKEN_PIPE) {
			return cmds
		}
		p.advance() // '|'
	}
}

// parsePipeStatement parses "pipe cmd(args) | cmd(args) ...", a
// non-capturing external-command pipeline.
func (p *Parser) parsePipeStatement() ast.Expr {
	p.advance() // 'pipe'
	cmds := p.parsePipeCommands()
	return &ast.Pipe{Commands: cmds, Capturing: false}
}

// parseCapture parses "capture(cmd(args) | cmd(args) ...)", the
// stdout-capturing pipe expression form.
func (p *Parser) parseCapture() ast.Expr {
	p.advance() // 'capture'
	if !p.expect(lexer.TOKEN_LPAREN) {
		return &ast.Pipe{Capturing: true}
	}
	cmds := p.parsePipeCommands()
	p.expect(lexer.TOKEN_RPAREN)
	return &ast.Pipe{Commands: cmds, Capturing: true}
}

// parseFunctionLiteral parses "fn(a, b = default) { body }".
func (p *Parser) parseFunctionLiteral() ast.Expr {
	p.advance() // 'fn'
	var params []ast.ParamSpec
	if p.expect(lexer.TOKEN_LPAREN) {
		for !p.curIs(lexer.TOKEN_RPAREN) && !p.curIs(lexer.TOKEN_EOF) {
			if !p.curIs(lexer.TOKEN_IDENT) {
				p.errorf("expected parameter name, got %v", p.cur.Type)
				break
			}
			spec := ast.ParamSpec{Name: p.cur.Literal}
			p.advance()
			if p.curIs(lexer.TOKEN_ASSIGN) {
				p.advance()
				spec.Default = p.parseExpressionNode()
			}
			params = append(params, spec)
			if p.curIs(lexer.TOKEN_COMMA) {
				p.advance()
				continue
			}
			break
		}
		p.expect(lexer.TOKEN_RPAREN)
	}
	body := p.parseBlock()
	body.Root = true
	return &ast.FunctionLit{Params: params, Body: body}
}
