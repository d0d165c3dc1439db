package model

// DownloadStatus represents the outcome of a single download attempt
type DownloadStatus string

const (
	// DownloadStatusSuccess means the prior was fetched and its size verified
	DownloadStatusSuccess DownloadStatus = "success"

	// DownloadStatusFailed means the transfer failed and no file was kept
	DownloadStatusFailed DownloadStatus = "failed"

	// DownloadStatusSuspended means the prior already exists locally and was not fetched
	DownloadStatusSuspended DownloadStatus = "suspended"
)

// String returns the string representation of DownloadStatus
func (s DownloadStatus) String() string {
	return string(s)
}

// Valid returns true if s is one of the known statuses
func (s DownloadStatus) Valid() bool {
	switch s {
	case DownloadStatusSuccess, DownloadStatusFailed, DownloadStatusSuspended:
		return true
	}
	return false
}

// ExitCode returns the process exit code for the status
func (s DownloadStatus) ExitCode() int {
	switch s {
	case DownloadStatusSuccess, DownloadStatusSuspended:
		return 0
	default:
		return 1
	}
}
