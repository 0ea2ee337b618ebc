package model

// Path represents a file system path.
type Path string

// String returns the path as a plain string.
func (p Path) String() string {
	return string(p)
}

// DiscoveryResult is one entry produced by file discovery. A nil Err means
// Path names a file to process. A non-nil Err is a discovery failure; Path is
// then set only when the failure can be attributed to a file.
type DiscoveryResult struct {
	Path Path
	Err  error
}

// Failed reports whether the entry is a discovery failure.
func (r DiscoveryResult) Failed() bool {
	return r.Err != nil
}

// Snippet carries the source line a message points at.
type Snippet struct {
	Line string
}
