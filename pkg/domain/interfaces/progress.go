package interfaces

// Progress receives byte-level progress of a single transfer
type Progress interface {
	// Start is called once before the first chunk. total is 0 when the size is unknown.
	Start(name string, total int64)

	// Advance is called after each chunk is written to disk
	Advance(n int64)

	// Finish is called once when the transfer ends, successfully or not
	Finish()
}
