package console

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ankitskvmdam/download-priors/pkg/domain/model"
)

// IssueURL is where users are asked to report persistent download failures
const IssueURL = "https://github.com/ankitskvmdam/slim-reinvent4"

// Reporter prints user-facing messages for usage errors and download outcomes
type Reporter struct {
	w       io.Writer
	program string

	success *color.Color
	warning *color.Color
	failure *color.Color
}

// Option is a functional option for Reporter
type Option func(*Reporter)

// WithColor forces colored output on or off. By default fatih/color decides from the terminal and NO_COLOR.
func WithColor(enabled bool) Option {
	return func(r *Reporter) {
		for _, c := range []*color.Color{r.success, r.warning, r.failure} {
			if enabled {
				c.EnableColor()
			} else {
				c.DisableColor()
			}
		}
	}
}

// WithProgram sets the program name shown in the usage example
func WithProgram(program string) Option {
	return func(r *Reporter) {
		r.program = program
	}
}

// NewReporter creates a Reporter writing to w, or to stdout if w is nil
func NewReporter(w io.Writer, opts ...Option) *Reporter {
	if w == nil {
		w = os.Stdout
	}
	r := &Reporter{
		w:       w,
		program: "download-priors",
		success: color.New(color.FgHiGreen),
		warning: color.New(color.FgHiYellow),
		failure: color.New(color.FgHiRed),
	}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// UsageError prints the message matching an argument validation error
func (r *Reporter) UsageError(err error, args []string) {
	switch {
	case errors.Is(err, model.ErrNoPriorName):
		r.failure.Fprintln(r.w, "Please enter the name of the priors to download.")
		r.availablePriors()
		r.usageExample()

	case errors.Is(err, model.ErrTooManyArgs):
		r.warning.Fprintln(r.w, "Only 1 argument is supported.")
		r.usageExample()

	case errors.Is(err, model.ErrUnknownPrior):
		name := ""
		if len(args) > 0 {
			name = args[0]
		}
		r.failure.Fprintf(r.w, "Prior %s is not available.\n", name)
		r.availablePriors()

	default:
		r.failure.Fprintln(r.w, err.Error())
	}
}

// Outcome prints the single line describing a download result.
// A status outside the three known outcomes is printed as a failure and returned as an error.
func (r *Reporter) Outcome(result *model.DownloadResult) error {
	if !result.Status.Valid() {
		r.failed(result.Name)
		return goerr.New("invalid download status",
			goerr.V("name", result.Name),
			goerr.V("status", result.Status),
		)
	}

	switch result.Status {
	case model.DownloadStatusSuccess:
		r.success.Fprintf(r.w, "Prior %s downloaded successfully.\n", result.Name)
	case model.DownloadStatusSuspended:
		r.warning.Fprintf(r.w, "%s already exists, hence not downloaded.\n", result.Name)
	case model.DownloadStatusFailed:
		r.failed(result.Name)
	}
	return nil
}

func (r *Reporter) failed(name string) {
	r.failure.Fprintf(r.w,
		"Failed to download %s. Please try again after sometime. If the issue persist create an issue at %s.\n",
		name, IssueURL)
}

func (r *Reporter) availablePriors() {
	fmt.Fprintf(r.w, "Available priors: %s\n", strings.Join(model.PriorNames(), ", "))
}

func (r *Reporter) usageExample() {
	fmt.Fprintf(r.w, "\nTo install a prior do the following\n\n\t%s reinvent.prior\n\n", r.program)
}
