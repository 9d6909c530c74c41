// Package lexer provides lexical analysis for cash source text.
//
// The lexer is the first stage of the cash interpreter pipeline,
// converting raw source text into a stream of tokens consumed by the
// parser package.
//
// Key Features:
//
// Token Recognition:
//   - Keywords: if, else, while, for, in, return, break, continue,
//     async, await, true, false, none, and, or, xor, pipe, capture, fn
//   - Identifiers: variable names, plus "$NAME" process-environment refs
//   - Literals: integers, floats, interpolated strings
//   - Operators: the full arithmetic/bitwise/comparison/assignment set,
//     including compound-assignment forms (+=, **=, <<=, ...)
//   - Delimiters: (, ), {, }, [, ], ;, :, ,, ., .., ->
//
// Comment Handling:
//   - Single-line comments starting with '#', consumed to end of line
//
// Position Tracking:
//   - Line and column information on every token, for error reporting
//
// String Interpolation:
//   - Double-quoted strings may embed "${expr}" splices
//   - The lexer tracks a small frame stack so nested braces inside an
//     interpolated expression (e.g. a block literal) don't prematurely
//     close the string; an interpolation emits TOKEN_STRING segments
//     bracketed by TOKEN_STRING_INTERP_START/END markers
//
// Usage Example:
//
//	lx := lexer.New(`"hi ${name}"`)
//	for {
//	    tok := lx.NextToken()
//	    if tok.Type == lexer.TOKEN_EOF {
//	        break
//	    }
//	    fmt.Printf("%s: %s\n", tok.Type, tok.Literal)
//	}
package lexer
