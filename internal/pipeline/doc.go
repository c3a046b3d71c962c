// Package pipeline orchestrates file discovery, the preview pass, and the
// commit pass that packages files under their new names.
//
// A Session is the explicit run context threaded through the stages: one
// reference table, one index, one preview batch. Preview runs
// extract → resolve → render per file with independent outcomes; Commit
// re-derives each name with the same pure functions and feeds a Sink in
// input order, reading file bytes concurrently up front.
//
// Split along these boundaries: session.go, discover.go, commit.go,
// runner.go, stats.go.
package pipeline
