package pipeline

import (
	"renomeia/internal/match"
)

// FileDescriptor identifies one input file. The bytes stay on disk until
// commit; Path is how they are fetched.
type FileDescriptor struct {
	Name string // base name, used for matching and as the fallback output name
	Path string
	Size int64
}

// RenamePreview is the per-file outcome of a preview pass. A batch of
// previews is recomputed whole whenever the file set, reference data, match
// column, or template changes; entries are never mutated in place.
type RenamePreview struct {
	OriginalName string
	NewName      string
	Err          error // naming.ErrNoMatch when no reference row resolved
	Size         int64

	// Diagnostics for verbose output.
	CandidateKey string
	MatchedKey   string
	Strategy     match.Strategy
}
