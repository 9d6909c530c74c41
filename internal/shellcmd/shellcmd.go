// Package shellcmd builds and runs the external-command pipelines behind
// cash's pipe expressions. It adapts the teacher's
// pkg/derivation builder-pattern shape (DerivationBuilder: a fluent
// struct wrapping name/args/env, here narrowed to a single external
// command) into a non-Nix domain: no Hash/StorePath is computed since
// cash treats each external program as an opaque collaborator with no
// content-addressed store to track. Process spawning stays on os/exec;
// the concurrent stdout→stdin wiring across pipeline stages is
// coordinated with golang.org/x/sync/errgroup, grounded on
// Tangerg-lynx/flow's go.mod dependency on golang.org/x/sync.
package shellcmd

import (
	"bytes"
	"io"
	"os"
	"os/exec"
	"strings"

	"golang.org/x/sync/errgroup"
)

// Command is one stage of a pipeline: a program name and its arguments,
// already stringified in the caller's context.
type Command struct {
	Name string
	Args []string
}

// Builder accumulates pipeline stages fluently, mirroring the teacher's
// DerivationBuilder chain shape.
type Builder struct {
	commands []Command
}

// NewBuilder creates an empty pipeline builder.
func NewBuilder() *Builder { return &Builder{} }

// Add appends a pipeline stage and returns the builder for chaining.
func (b *Builder) Add(name string, args ...string) *Builder {
	b.commands = append(b.commands, Command{Name: name, Args: args})
	return b
}

// Pipeline is the built, runnable pipeline.
type Pipeline struct {
	commands []Command
}

// Build finalizes the pipeline.
func (b *Builder) Build() *Pipeline {
	return &Pipeline{commands: append([]Command(nil), b.commands...)}
}

// Run executes the pipeline. If capturing, the final command's stdout is
// collected, trimmed of one trailing newline, and returned as a string;
// otherwise the final command's stdout is inherited by the host process
// and Run returns an empty string. Any spawn/wait failure is surfaced as
// an error.
func (p *Pipeline) Run(capturing bool) (string, error) {
	if len(p.commands) == 0 {
		return "", nil
	}

	cmds := make([]*exec.Cmd, len(p.commands))
	for i, c := range p.commands {
		cmds[i] = exec.Command(c.Name, c.Args...)
	}

	var captured bytes.Buffer
	var pipes []io.Closer
	defer func() {
		for _, c := range pipes {
			c.Close()
		}
	}()

	var g errgroup.Group
	for i := 0; i < len(cmds)-1; i++ {
		r, w := io.Pipe()
		cmds[i].Stdout = w
		cmds[i+1].Stdin = r
		stage := i
		writer := w
		g.Go(func() error {
			defer writer.Close()
			return cmds[stage].Run()
		})
	}

	last := cmds[len(cmds)-1]
	if capturing {
		last.Stdout = &captured
	} else {
		last.Stdout = os.Stdout
	}
	last.Stderr = os.Stderr
	if len(cmds) > 1 {
		cmds[0].Stderr = os.Stderr
	}

	if err := last.Start(); err != nil {
		return "", err
	}
	if err := g.Wait(); err != nil {
		return "", err
	}
	if err := last.Wait(); err != nil {
		return "", err
	}

	if !capturing {
		return "", nil
	}
	return strings.TrimSuffix(captured.String(), "\n"), nil
}
