package cli

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/m-mizutani/goerr/v2"
	"github.com/urfave/cli/v3"

	"github.com/ankitskvmdam/download-priors/pkg/cli/config"
	"github.com/ankitskvmdam/download-priors/pkg/controller/console"
	"github.com/ankitskvmdam/download-priors/pkg/domain/model"
	"github.com/ankitskvmdam/download-priors/pkg/domain/types"
	githubinfra "github.com/ankitskvmdam/download-priors/pkg/infra/github"
	"github.com/ankitskvmdam/download-priors/pkg/infra/progress"
	"github.com/ankitskvmdam/download-priors/pkg/usecase"
)

type runConfig struct {
	stdout io.Writer
	stderr io.Writer
}

// Option is a functional option for Run
type Option func(*runConfig)

// WithStdout sets where user messages are written
func WithStdout(w io.Writer) Option {
	return func(c *runConfig) {
		c.stdout = w
	}
}

// WithStderr sets where logs and the progress bar are written
func WithStderr(w io.Writer) Option {
	return func(c *runConfig) {
		c.stderr = w
	}
}

// Run runs the CLI application
func Run(ctx context.Context, args []string, opts ...Option) error {
	cfg := &runConfig{
		stdout: os.Stdout,
		stderr: os.Stderr,
	}
	for _, opt := range opts {
		opt(cfg)
	}

	var (
		loggerCfg = config.Logger{Output: cfg.stderr}
		sourceCfg config.Source
		logger    *slog.Logger
	)

	app := &cli.Command{
		Name:      programName(args),
		Usage:     "Download a REINVENT4 prior into the local priors directory",
		ArgsUsage: "<prior-name>",
		Version:   types.Version,
		Flags:     append(sourceCfg.Flags(), loggerCfg.Flags()...),
		Writer:    cfg.stdout,
		ErrWriter: cfg.stderr,
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			var err error
			logger, err = loggerCfg.Configure()
			if err != nil {
				return nil, err
			}

			slog.SetDefault(logger)
			return ctx, nil
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return download(ctx, c.Root().Name, c.Args().Slice(), cfg, &sourceCfg, logger)
		},
	}

	if err := app.Run(ctx, args); err != nil {
		if logger == nil {
			logger = slog.Default()
		}
		if model.IsUsageError(err) {
			logger.Debug("Invalid arguments", slog.Any("error", err))
		} else {
			logger.Error("CLI execution failed", slog.Any("error", err))
		}
		return err
	}

	return nil
}

// download validates the arguments, then fetches the prior and reports the outcome
func download(ctx context.Context, program string, args []string, cfg *runConfig, sourceCfg *config.Source, logger *slog.Logger) error {
	reporterOpts := []console.Option{console.WithProgram(program)}
	if sourceCfg.NoColor {
		reporterOpts = append(reporterOpts, console.WithColor(false))
	}
	reporter := console.NewReporter(cfg.stdout, reporterOpts...)

	name, err := usecase.ValidateArgs(args)
	if err != nil {
		reporter.UsageError(err, args)
		return err
	}

	dir, err := sourceCfg.Dir()
	if err != nil {
		_ = reporter.Outcome(&model.DownloadResult{Name: name, Status: model.DownloadStatusFailed})
		return err
	}

	ucOpts := []usecase.Option{usecase.WithLogger(logger)}
	if !sourceCfg.NoProgress {
		ucOpts = append(ucOpts, usecase.WithProgress(progress.NewBar(cfg.stderr)))
	}

	source := githubinfra.NewClient(githubinfra.WithBaseURL(sourceCfg.BaseURL))
	priorUC := usecase.NewPrior(source, dir, ucOpts...)

	if err := priorUC.EnsureDir(ctx); err != nil {
		_ = reporter.Outcome(&model.DownloadResult{Name: name, Status: model.DownloadStatusFailed})
		return goerr.Wrap(err, "failed to prepare priors directory")
	}

	result, err := priorUC.Download(ctx, name)
	if reportErr := reporter.Outcome(result); reportErr != nil {
		return reportErr
	}
	if err != nil {
		return goerr.Wrap(err, "failed to download prior", goerr.V("name", name))
	}

	return nil
}

// programName returns the invoked binary name shown in help and usage examples
func programName(args []string) string {
	if len(args) == 0 || args[0] == "" {
		return "download-priors"
	}
	return filepath.Base(args[0])
}
