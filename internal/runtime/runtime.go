package runtime

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"math"
	"os"
	"path/filepath"

	"github.com/joho/godotenv"

	"github.com/conneroisu/cash/internal/builtins"
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/executor"
	"github.com/conneroisu/cash/internal/value"
	"github.com/conneroisu/cash/pkg/lexer"
	"github.com/conneroisu/cash/pkg/parser"
)

// Runtime holds the state a file-run or REPL session shares across
// evaluations: one root Context, so top-level bindings persist from one
// evaluation to the next, and the worker pool backend async/await posts
// jobs to.
type Runtime struct {
	ctx *environment.Context
	exe executor.Backend
	log *slog.Logger
}

// New best-effort-loads a .cash.env file into the process environment
// (grounded on termfx-morfx's godotenv.Load() config idiom), builds the
// default gammazero/workerpool executor and builtin registry, and seeds
// the root context with the PI and E constants.
func New(log *slog.Logger) *Runtime {
	rt, err := NewWithPool(log, "workerpool")
	if err != nil {
		// The default backend never errors; a non-nil error here would
		// be a bug in executor.NewBackend.
		panic(err)
	}
	return rt
}

// NewWithPool is New, but lets the caller pick the worker pool backend
// by name ("workerpool" or "ants"); see executor.NewBackend.
func NewWithPool(log *slog.Logger, pool string) (*Runtime, error) {
	if log == nil {
		log = slog.Default()
	}

	if err := godotenv.Load(".cash.env"); err != nil && !os.IsNotExist(err) {
		log.Debug("could not load .cash.env", "error", err)
	}

	exe, err := executor.NewBackend(log, pool)
	if err != nil {
		return nil, err
	}
	registry := builtins.New()
	ctx := environment.Root(exe, registry)
	ctx.SetSelf("PI", value.Float(math.Pi))
	ctx.SetSelf("E", value.Float(math.E))

	return &Runtime{ctx: ctx, exe: exe, log: log}, nil
}

// Close drains the executor's worker pool so no goroutine outlives the
// process.
func (r *Runtime) Close() { r.exe.Stop() }

// EvalString preprocesses (include! resolution relative to baseDir),
// lexes, parses, and evaluates text against the runtime's shared root
// context.
func (r *Runtime) EvalString(text, baseDir string) (value.Value, error) {
	pre, err := preprocess(text, baseDir)
	if err != nil {
		return nil, err
	}

	p := parser.New(lexer.New(pre))
	prog, err := p.Parse()
	if err != nil {
		return nil, errs.NewParseError(err.Error())
	}

	return prog.Eval(r.ctx)
}

// RunFile interprets a whole file, using its containing directory as the
// include! resolution base.
func (r *Runtime) RunFile(path string) (value.Value, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return r.EvalString(string(content), filepath.Dir(path))
}

// REPL runs an interactive read-eval-print loop: prints a "> " prompt,
// evaluates each line against the shared root context, and prints the
// result unless it is none. Errors are caught, printed, and the loop
// continues; EOF (Ctrl-D) ends it cleanly, matching the teacher's
// startREPL scanner-driven loop shape.
func (r *Runtime) REPL(in io.Reader, out io.Writer) error {
	scanner := bufio.NewScanner(in)
	for {
		fmt.Fprint(out, "> ")
		if !scanner.Scan() {
			break
		}
		line := scanner.Text()
		if line == "" {
			continue
		}

		v, err := r.EvalString(line, ".")
		if err != nil {
			fmt.Fprintln(out, err)
			continue
		}
		if _, isNone := v.(value.None); !isNone {
			fmt.Fprintln(out, v.String())
		}
	}
	return scanner.Err()
}
