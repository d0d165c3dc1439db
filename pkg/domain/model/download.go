package model

import "io"

// DownloadResult represents the result of one prior download attempt
type DownloadResult struct {
	ID       string         // Attempt ID used to correlate logs
	Name     string         // Prior name
	Path     string         // Destination path on disk
	Status   DownloadStatus // Outcome of the attempt
	Written  int64          // Bytes written to disk
	Expected int64          // Declared content length, 0 if unknown
}

// RemoteFile is an open response body for a prior on the remote side
type RemoteFile struct {
	Name string
	Size int64 // Declared content length, 0 if absent or unknown
	Body io.ReadCloser
}
