package pipeline

// RunStats tracks aggregate counters and byte totals across a batch run.
// Preview fills the match counters; Commit fills the packaging ones.
type RunStats struct {
	Total      int
	Matched    int
	Unmatched  int
	Packaged   int
	Skipped    int // unmatched files left out by the skip policy
	TotalBytes int64
}
