package config

import (
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ankitskvmdam/download-priors/pkg/domain/model"
)

// Source holds where priors come from and where they are stored
type Source struct {
	BaseURL    string
	PriorsDir  string
	NoProgress bool
	NoColor    bool
}

// Flags returns CLI flags for source configuration
func (c *Source) Flags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:        "base-url",
			Usage:       "Remote directory hosting the prior files",
			Value:       model.DefaultBaseURL,
			Destination: &c.BaseURL,
			Sources:     cli.EnvVars("PRIORS_BASE_URL"),
		},
		&cli.StringFlag{
			Name:        "priors-dir",
			Usage:       "Directory to store priors (default: priors/ next to the executable)",
			Destination: &c.PriorsDir,
			Sources:     cli.EnvVars("PRIORS_DIR"),
		},
		&cli.BoolFlag{
			Name:        "no-progress",
			Usage:       "Disable the progress bar",
			Destination: &c.NoProgress,
			Sources:     cli.EnvVars("PRIORS_NO_PROGRESS"),
		},
		&cli.BoolFlag{
			Name:        "no-color",
			Usage:       "Disable colored messages",
			Destination: &c.NoColor,
			Sources:     cli.EnvVars("PRIORS_NO_COLOR"),
		},
	}
}

// Dir returns the priors directory, resolving the default next to the running executable
func (c *Source) Dir() (string, error) {
	if c.PriorsDir != "" {
		return c.PriorsDir, nil
	}

	exe, err := os.Executable()
	if err != nil {
		return "", goerr.Wrap(err, "failed to locate executable")
	}
	if resolved, err := filepath.EvalSymlinks(exe); err == nil {
		exe = resolved
	}

	return filepath.Join(filepath.Dir(exe), model.PriorsDirName), nil
}
