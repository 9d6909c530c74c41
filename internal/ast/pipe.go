package ast

import (
	"github.com/conneroisu/cash/internal/environment"
	"github.com/conneroisu/cash/internal/shellcmd"
	"github.com/conneroisu/cash/internal/value"
)

// PipeCommand is one stage of a pipe expression: a command name plus
// arguments evaluated and stringified in the caller's context.
type PipeCommand struct {
	Name string
	Args []Expr
}

// Pipe is a non-empty external command pipeline. Capturing
// distinguishes a plain statement (final stdout inherited) from a
// capture expression (final stdout collected, trailing newline trimmed,
// returned as a string).
type Pipe struct {
	Commands  []PipeCommand
	Capturing bool
}

func (n *Pipe) Eval(ctx *environment.Context) (value.Value, error) {
	b := shellcmd.NewBuilder()
	for _, c := range n.Commands {
		args := make([]string, 0, len(c.Args))
		for _, a := range c.Args {
			v, err := a.Eval(ctx)
			if err != nil {
				return nil, err
			}
			args = append(args, value.Stringify(v))
		}
		b.Add(c.Name, args...)
	}

	out, err := b.Build().Run(n.Capturing)
	if err != nil {
		return nil, err
	}
	if !n.Capturing {
		return value.None{}, nil
	}
	return value.String(out), nil
}
