package model

import "errors"

var (
	// ErrNoPriorName is returned when no prior name is given on the command line
	ErrNoPriorName = errors.New("no prior name given")

	// ErrTooManyArgs is returned when more than one argument is given
	ErrTooManyArgs = errors.New("only one argument is supported")

	// ErrUnknownPrior is returned when the name is not in the registry
	ErrUnknownPrior = errors.New("prior is not available")

	// ErrSizeMismatch is returned when the written byte count differs from the declared size
	ErrSizeMismatch = errors.New("downloaded size does not match content length")

	// ErrUnexpectedStatus is returned when the remote answers with a non-2xx status
	ErrUnexpectedStatus = errors.New("unexpected HTTP status")
)

// IsUsageError reports whether err comes from invalid command-line arguments
func IsUsageError(err error) bool {
	return errors.Is(err, ErrNoPriorName) ||
		errors.Is(err, ErrTooManyArgs) ||
		errors.Is(err, ErrUnknownPrior)
}
