package builtins

import (
	"os"

	"github.com/conneroisu/cash/internal/errs"
	"github.com/conneroisu/cash/internal/value"
)

func registerProcess(r *Registry) {
	r.register("cd", biCd)
	r.register("cwd", biCwd)
}

func biCd(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 1 {
		return nil, errs.NewInvalidParameterCount(len(args), 1)
	}
	path, ok := args[0].(value.String)
	if !ok {
		return nil, errs.NewInvalidArguments(args[0].Kind().String(), "string")
	}
	if err := os.Chdir(string(path)); err != nil {
		return nil, err
	}
	return value.None{}, nil
}

func biCwd(args []value.Value, _ value.Environment) (value.Value, error) {
	if len(args) != 0 {
		return nil, errs.NewInvalidParameterCount(len(args), 0)
	}
	dir, err := os.Getwd()
	if err != nil {
		return nil, err
	}
	return value.String(dir), nil
}
