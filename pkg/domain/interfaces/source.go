package interfaces

import (
	"context"

	"github.com/ankitskvmdam/download-priors/pkg/domain/model"
)

// PriorSource defines operations for fetching priors from the remote repository
type PriorSource interface {
	// Open issues a GET request for the named prior and returns the open response body.
	// The caller must close RemoteFile.Body.
	Open(ctx context.Context, name string) (*model.RemoteFile, error)
}
