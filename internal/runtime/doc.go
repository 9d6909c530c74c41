// Package runtime implements cash's driver: best-effort .cash.env
// loading, include! textual preprocessing, root-context seeding (PI, E),
// and the parse+evaluate pipeline shared by file-run and REPL modes. It
// plays the role conneroisu-gix's main.go played for the Nix interpreter
// — evalExpression/evalFile/startREPL — generalized into a reusable,
// testable type instead of package-level functions tied to
// os.Stdin/os.Stdout.
package runtime
