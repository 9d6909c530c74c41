package lexer

import "testing"

func runTokens(t *testing.T, input string, want []struct {
	typ TokenType
	lit string
}) {
	t.Helper()
	l := New(input)
	for i, tt := range want {
		tok := l.NextToken()
		if tok.Type != tt.typ {
			t.Fatalf("tests[%d] - tokentype wrong. expected=%s, got=%s (%q)", i, tt.typ, tok.Type, tok.Literal)
		}
		if tok.Literal != tt.lit {
			t.Fatalf("tests[%d] - literal wrong. expected=%q, got=%q", i, tt.lit, tok.Literal)
		}
	}
}

func TestNextToken(t *testing.T) {
	input := `x = 5;
y = 10;

if x > y {
  "x is greater"
} else {
  "y is greater"
}
`
	runTokens(t, input, []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_IDENT, "x"}, {TOKEN_ASSIGN, "="}, {TOKEN_INT, "5"}, {TOKEN_SEMI, ";"},
		{TOKEN_IDENT, "y"}, {TOKEN_ASSIGN, "="}, {TOKEN_INT, "10"}, {TOKEN_SEMI, ";"},
		{TOKEN_IF, "if"}, {TOKEN_IDENT, "x"}, {TOKEN_GT, ">"}, {TOKEN_IDENT, "y"}, {TOKEN_LBRACE, "{"},
		{TOKEN_STRING, "x is greater"},
		{TOKEN_RBRACE, "}"}, {TOKEN_ELSE, "else"}, {TOKEN_LBRACE, "{"},
		{TOKEN_STRING, "y is greater"},
		{TOKEN_RBRACE, "}"}, {TOKEN_EOF, ""},
	})
}

func TestOperators(t *testing.T) {
	input := "+ - * / ** == != < > <= >= << >> & ^ | ! -> .. += -= *= /= %= **= <<= >>= &= ^= |="
	runTokens(t, input, []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_PLUS, "+"}, {TOKEN_MINUS, "-"}, {TOKEN_STAR, "*"}, {TOKEN_SLASH, "/"}, {TOKEN_POW, "**"},
		{TOKEN_EQ, "=="}, {TOKEN_NEQ, "!="}, {TOKEN_LT, "<"}, {TOKEN_GT, ">"}, {TOKEN_LTE, "<="}, {TOKEN_GTE, ">="},
		{TOKEN_SHL, "<<"}, {TOKEN_SHR, ">>"}, {TOKEN_AMP, "&"}, {TOKEN_CARET, "^"}, {TOKEN_PIPE, "|"},
		{TOKEN_BANG, "!"}, {TOKEN_ARROW, "->"}, {TOKEN_DOTDOT, ".."},
		{TOKEN_PLUSEQ, "+="}, {TOKEN_MINUSEQ, "-="}, {TOKEN_STAREQ, "*="}, {TOKEN_SLASHEQ, "/="},
		{TOKEN_PCTEQ, "%="}, {TOKEN_POWEQ, "**="}, {TOKEN_SHLEQ, "<<="}, {TOKEN_SHREQ, ">>="},
		{TOKEN_AMPEQ, "&="}, {TOKEN_CARETEQ, "^="}, {TOKEN_PIPEEQ, "|="},
		{TOKEN_EOF, ""},
	})
}

func TestNumbers(t *testing.T) {
	runTokens(t, "123 3.14 0.5", []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_INT, "123"}, {TOKEN_FLOAT, "3.14"}, {TOKEN_FLOAT, "0.5"}, {TOKEN_EOF, ""},
	})
}

func TestStrings(t *testing.T) {
	runTokens(t, `"hello world" "escaped \"quote\""`, []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_STRING, "hello world"}, {TOKEN_STRING, `escaped "quote"`}, {TOKEN_EOF, ""},
	})
}

func TestStringInterpolation(t *testing.T) {
	runTokens(t, `"hi ${name} bye"`, []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_STRING, "hi "},
		{TOKEN_STRING_INTERP_START, "${"},
		{TOKEN_IDENT, "name"},
		{TOKEN_STRING_INTERP_END, "}"},
		{TOKEN_STRING, " bye"},
		{TOKEN_EOF, ""},
	})
}

func TestStringInterpolationNestedBraces(t *testing.T) {
	runTokens(t, `"v=${ if a { 1 } else { 2 } }"`, []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_STRING, "v="},
		{TOKEN_STRING_INTERP_START, "${"},
		{TOKEN_IF, "if"}, {TOKEN_IDENT, "a"}, {TOKEN_LBRACE, "{"}, {TOKEN_INT, "1"}, {TOKEN_RBRACE, "}"},
		{TOKEN_ELSE, "else"}, {TOKEN_LBRACE, "{"}, {TOKEN_INT, "2"}, {TOKEN_RBRACE, "}"},
		{TOKEN_STRING_INTERP_END, "}"},
		{TOKEN_STRING, ""},
		{TOKEN_EOF, ""},
	})
}

func TestKeywords(t *testing.T) {
	input := "if else while for in return break continue async await true false none and or xor"
	runTokens(t, input, []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_IF, "if"}, {TOKEN_ELSE, "else"}, {TOKEN_WHILE, "while"}, {TOKEN_FOR, "for"}, {TOKEN_IN, "in"},
		{TOKEN_RETURN, "return"}, {TOKEN_BREAK, "break"}, {TOKEN_CONTINUE, "continue"},
		{TOKEN_ASYNC, "async"}, {TOKEN_AWAIT, "await"},
		{TOKEN_TRUE, "true"}, {TOKEN_FALSE, "false"}, {TOKEN_NONE, "none"},
		{TOKEN_AND, "and"}, {TOKEN_OR, "or"}, {TOKEN_XOR, "xor"},
		{TOKEN_EOF, ""},
	})
}

func TestComments(t *testing.T) {
	input := `# a comment
x = 5; # trailing
y = 10;`
	runTokens(t, input, []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_IDENT, "x"}, {TOKEN_ASSIGN, "="}, {TOKEN_INT, "5"}, {TOKEN_SEMI, ";"},
		{TOKEN_IDENT, "y"}, {TOKEN_ASSIGN, "="}, {TOKEN_INT, "10"}, {TOKEN_SEMI, ";"},
		{TOKEN_EOF, ""},
	})
}

func TestEnvIdent(t *testing.T) {
	runTokens(t, "$HOME", []struct {
		typ TokenType
		lit string
	}{
		{TOKEN_IDENT, "$HOME"}, {TOKEN_EOF, ""},
	})
}
