package usecase

import (
	"context"
	"errors"
	"io"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"

	"github.com/ankitskvmdam/download-priors/pkg/domain/interfaces"
	"github.com/ankitskvmdam/download-priors/pkg/domain/model"
)

// chunkSize is the read size of the streaming loop
const chunkSize = 1024

type priorUseCase struct {
	source   interfaces.PriorSource
	dir      string
	progress interfaces.Progress
	logger   *slog.Logger
}

// Option is a functional option for the prior use case
type Option func(*priorUseCase)

// WithProgress sets the observer notified while a prior is transferred
func WithProgress(progress interfaces.Progress) Option {
	return func(uc *priorUseCase) {
		uc.progress = progress
	}
}

// WithLogger sets the logger
func WithLogger(logger *slog.Logger) Option {
	return func(uc *priorUseCase) {
		uc.logger = logger
	}
}

// NewPrior creates a new instance of PriorUseCase storing priors under dir
func NewPrior(source interfaces.PriorSource, dir string, opts ...Option) interfaces.PriorUseCase {
	uc := &priorUseCase{
		source:   source,
		dir:      dir,
		progress: nopProgress{},
		logger:   slog.Default(),
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}

// EnsureDir creates the priors directory. Only the last path element is created.
func (uc *priorUseCase) EnsureDir(ctx context.Context) error {
	info, err := os.Stat(uc.dir)
	if err == nil {
		if !info.IsDir() {
			return goerr.New("priors path is not a directory", goerr.V("path", uc.dir))
		}
		return nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		return goerr.Wrap(err, "failed to stat priors directory", goerr.V("path", uc.dir))
	}

	if err := os.Mkdir(uc.dir, 0755); err != nil && !errors.Is(err, fs.ErrExist) {
		return goerr.Wrap(err, "failed to create priors directory", goerr.V("path", uc.dir))
	}

	uc.logger.Debug("Created priors directory", "path", uc.dir)
	return nil
}

// Download fetches a prior into the priors directory
func (uc *priorUseCase) Download(ctx context.Context, name string) (*model.DownloadResult, error) {
	result := &model.DownloadResult{
		ID:   uuid.NewString(),
		Name: name,
		Path: filepath.Join(uc.dir, name),
	}
	logger := uc.logger.With("download_id", result.ID, "name", name)

	if !model.IsPrior(name) {
		result.Status = model.DownloadStatusFailed
		return result, goerr.Wrap(model.ErrUnknownPrior, "refusing to download unknown prior", goerr.V("name", name))
	}

	_, err := os.Stat(result.Path)
	if err == nil {
		logger.Info("Prior already exists, skipping download", "path", result.Path)
		result.Status = model.DownloadStatusSuspended
		return result, nil
	}
	if !errors.Is(err, fs.ErrNotExist) {
		result.Status = model.DownloadStatusFailed
		return result, goerr.Wrap(err, "failed to stat prior", goerr.V("path", result.Path))
	}

	logger.Info("Downloading prior", "path", result.Path)

	if err := uc.fetch(ctx, result); err != nil {
		result.Status = model.DownloadStatusFailed
		if rmErr := os.Remove(result.Path); rmErr != nil && !errors.Is(rmErr, fs.ErrNotExist) {
			logger.Warn("Failed to remove partial prior", "path", result.Path, "error", rmErr)
		}
		logger.Info("Download attempt failed",
			"error", err,
			"written", humanize.Bytes(uint64(result.Written)),
			"expected", humanize.Bytes(uint64(result.Expected)),
		)
		return result, err
	}

	result.Status = model.DownloadStatusSuccess
	logger.Info("Downloaded prior",
		"path", result.Path,
		"size", humanize.Bytes(uint64(result.Written)),
	)
	return result, nil
}

// fetch streams the remote body into result.Path and verifies the byte count
func (uc *priorUseCase) fetch(ctx context.Context, result *model.DownloadResult) error {
	remote, err := uc.source.Open(ctx, result.Name)
	if err != nil {
		return goerr.Wrap(err, "failed to open remote prior", goerr.V("name", result.Name))
	}
	defer remote.Body.Close()

	result.Expected = remote.Size

	file, err := os.OpenFile(result.Path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0644)
	if err != nil {
		return goerr.Wrap(err, "failed to create prior file", goerr.V("path", result.Path))
	}

	uc.progress.Start(result.Name, remote.Size)
	written, copyErr := copyChunks(file, remote.Body, uc.progress)
	uc.progress.Finish()
	result.Written = written

	closeErr := file.Close()
	if copyErr != nil {
		return goerr.Wrap(copyErr, "failed to stream prior", goerr.V("path", result.Path))
	}
	if closeErr != nil {
		return goerr.Wrap(closeErr, "failed to close prior file", goerr.V("path", result.Path))
	}

	if remote.Size != 0 && written != remote.Size {
		return goerr.Wrap(model.ErrSizeMismatch, "incomplete prior download: got "+
			humanize.Bytes(uint64(written))+" of "+humanize.Bytes(uint64(remote.Size)),
			goerr.V("expected", remote.Size),
			goerr.V("written", written),
		)
	}

	return nil
}

// copyChunks copies src to dst chunkSize bytes at a time, reporting each chunk
func copyChunks(dst io.Writer, src io.Reader, progress interfaces.Progress) (int64, error) {
	buf := make([]byte, chunkSize)
	var written int64

	for {
		n, readErr := src.Read(buf)
		if n > 0 {
			if _, err := dst.Write(buf[:n]); err != nil {
				return written, goerr.Wrap(err, "failed to write chunk")
			}
			written += int64(n)
			progress.Advance(int64(n))
		}
		if readErr == io.EOF {
			return written, nil
		}
		if readErr != nil {
			return written, goerr.Wrap(readErr, "failed to read chunk")
		}
	}
}

type nopProgress struct{}

func (nopProgress) Start(string, int64) {}
func (nopProgress) Advance(int64)       {}
func (nopProgress) Finish()             {}
