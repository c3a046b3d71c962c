package pipeline

import (
	"github.com/google/uuid"

	"renomeia/internal/match"
	"renomeia/internal/naming"
	"renomeia/internal/refdata"
)

// State tracks a batch run through its lifecycle.
type State string

const (
	StateIdle             State = "idle"
	StateLoadingReference State = "loading-reference"
	StateIndexed          State = "indexed"
	StatePreviewing       State = "previewing"
	StatePreviewReady     State = "preview-ready"
	StateCommitting       State = "committing"
	StateDone             State = "done"
	StateError            State = "error"
)

// Session is the explicit run context threaded through the pipeline stages:
// one reference table, one index, one preview batch. Nothing is shared
// between independent sessions; each run derives its state freshly from its
// inputs. A failed reference reload keeps the previous table, index, and
// previews intact.
type Session struct {
	ID          string
	State       State
	MatchColumn string
	Template    string
	NameLike    bool

	Table    *refdata.Table
	Index    *refdata.Index
	Files    []FileDescriptor
	Previews []RenamePreview
}

// NewSession creates an idle session for one match column and template.
// The column's name-like classification is fixed here and governs both
// extraction and fuzzy matching for the whole run.
func NewSession(matchColumn, template string) *Session {
	return &Session{
		ID:          uuid.NewString(),
		State:       StateIdle,
		MatchColumn: matchColumn,
		Template:    template,
		NameLike:    match.IsNameLike(matchColumn),
	}
}

// LoadReference parses the reference file and rebuilds the index. On error
// the previous table, index, and preview batch stay in place; the session
// only enters StateError when it has no usable index at all.
func (s *Session) LoadReference(path, sheet string) error {
	s.State = StateLoadingReference
	table, err := refdata.Load(path, sheet)
	if err != nil {
		if s.Index == nil {
			s.State = StateError
		} else {
			s.State = StateIndexed
		}
		return err
	}
	s.Table = table
	s.Index = refdata.BuildIndex(table, s.MatchColumn)
	s.Previews = nil
	s.State = StateIndexed
	return nil
}

// Preview recomputes the whole batch: extract → resolve → render per file,
// in input order, each file's outcome independent of the others. The new
// slice replaces any prior batch atomically from the caller's perspective.
func (s *Session) Preview(files []FileDescriptor) []RenamePreview {
	s.State = StatePreviewing
	s.Files = files
	previews := make([]RenamePreview, 0, len(files))
	for _, f := range files {
		previews = append(previews, s.previewFile(f))
	}
	s.Previews = previews
	s.State = StatePreviewReady
	return previews
}

// previewFile runs the pure per-file chain. Commit calls it again so both
// passes derive identical names.
func (s *Session) previewFile(f FileDescriptor) RenamePreview {
	candidate := match.Extract(f.Name, s.NameLike)
	res := match.Resolve(candidate, s.Index, s.NameLike)
	newName, err := naming.Render(f.Name, res.Row, s.Template)
	return RenamePreview{
		OriginalName: f.Name,
		NewName:      newName,
		Err:          err,
		Size:         f.Size,
		CandidateKey: candidate,
		MatchedKey:   res.MatchedKey,
		Strategy:     res.Strategy,
	}
}

// MatchStats folds the current previews into match counters.
func (s *Session) MatchStats() RunStats {
	stats := RunStats{Total: len(s.Previews)}
	for _, p := range s.Previews {
		if p.Err != nil {
			stats.Unmatched++
		} else {
			stats.Matched++
		}
	}
	return stats
}
