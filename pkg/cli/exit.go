package cli

import "github.com/ankitskvmdam/download-priors/pkg/domain/model"

// ExitInvalidArgs is returned for command-line usage errors
const ExitInvalidArgs = 2

// ExitCode maps the error returned by Run to a process exit code.
// Download outcomes use DownloadStatus.ExitCode, so an existing prior exits like a success.
func ExitCode(err error) int {
	switch {
	case err == nil:
		return model.DownloadStatusSuccess.ExitCode()
	case model.IsUsageError(err):
		return ExitInvalidArgs
	default:
		return model.DownloadStatusFailed.ExitCode()
	}
}
