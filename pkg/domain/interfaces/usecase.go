package interfaces

import (
	"context"

	"github.com/ankitskvmdam/download-priors/pkg/domain/model"
)

// PriorUseCase defines operations for downloading priors into the local priors directory
type PriorUseCase interface {
	// EnsureDir creates the priors directory if it does not exist
	EnsureDir(ctx context.Context) error

	// Download fetches the named prior unless it already exists locally.
	// The returned result is never nil; the error is non-nil only when the status is failed.
	Download(ctx context.Context, name string) (*model.DownloadResult, error)
}
