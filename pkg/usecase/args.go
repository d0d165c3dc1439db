package usecase

import (
	"github.com/m-mizutani/goerr/v2"

	"github.com/ankitskvmdam/download-priors/pkg/domain/model"
)

// ValidateArgs checks the positional arguments and returns the requested prior name.
// Exactly one argument naming a registered prior is accepted.
func ValidateArgs(args []string) (string, error) {
	switch {
	case len(args) == 0:
		return "", goerr.Wrap(model.ErrNoPriorName, "missing prior name")
	case len(args) > 1:
		return "", goerr.Wrap(model.ErrTooManyArgs, "too many arguments", goerr.V("args", args))
	}

	name := args[0]
	if !model.IsPrior(name) {
		return "", goerr.Wrap(model.ErrUnknownPrior, "unknown prior", goerr.V("name", name))
	}

	return name, nil
}
