// Package parser implements a hand-written recursive-descent parser for
// cash source text, turning a lexer.Lexer token stream into the
// internal/ast node tree whose Eval methods evaluate it.
//
// Architecture:
//
// cash's surface syntax (semicolon-separated statements, brace-delimited
// blocks, "fn(params) { body }" function literals, "pipe a | b" command
// pipelines) is this repository's own concrete grammar: only the
// internal/ast node shapes the evaluator walks are fixed, not the
// lexical form that produces them.
//
// Operator precedence is deliberately NOT resolved here: the parser
// emits a flat (primary, op, primary, ...) sequence for every expression
// (ast.Expression) and leaves precedence climbing to
// ast.Expression.Eval, so this package stays a pure grammar recognizer
// with a single token of lookahead.
//
// Language Support:
//
// Literals:
//   - Integers: 42, Floats: 3.14
//   - Strings (with "${expr}" interpolation): "hi ${name}"
//   - Booleans: true, false — none
//   - Ranges: 0..10
//   - Lists: [1, 2, 3]
//   - Dicts: { "a": 1, "b": 2 }
//
// Control flow:
//   - if cond { ... } else if cond { ... } else { ... }
//   - while cond { ... }
//   - for x in source { ... }
//   - return / break / continue, each with an optional trailing value
//
// Functions:
//   - fn(a, b = 1) { body } — literal with optional defaults
//   - f(1, 2) — call; partial application falls out of the evaluator
//     when fewer arguments are supplied than parameters
//   - async expr / await expr
//
// Commands:
//   - pipe cmd(args) | cmd(args) — inherited-stdout statement
//   - capture(cmd(args) | cmd(args)) — stdout-capturing expression
//
// Assignment:
//   - name = expr, name[idx] = expr, and the compound forms (+=, **=, ...)
//
// Error Handling:
//
// Parse errors are accumulated (not fail-fast) into a ParseErrors value
// so a single Parse() call can report every syntax problem found in one
// pass, in the teacher's own ParseErrors style.
package parser
