package refdata

import (
	"strings"

	"renomeia/internal/textnorm"
)

// Index resolves candidate keys to reference rows. It is built once per
// (table, match column) pair and never mutated afterwards; selecting a new
// reference file or match column means a full rebuild.
type Index struct {
	MatchColumn string

	byExactKey      map[string]Row    // trimmed raw value -> row
	byNormalizedKey map[string]string // normalized value -> trimmed raw value
	normOrder       []string          // normalized keys in row-load order

	// Build statistics, surfaced by --check and batch warnings.
	Indexed    int // rows inserted
	Skipped    int // rows with an empty/missing match-column value
	Duplicates int // raw keys seen more than once (last write wins)
}

// BuildIndex indexes every row whose match-column value is non-empty after
// trimming. Duplicate raw keys follow last-write-wins and are counted. A
// match column absent from the table yields an empty index, not an error;
// the matcher then reports "no match" per file.
func BuildIndex(t *Table, matchColumn string) *Index {
	ix := &Index{
		MatchColumn:     matchColumn,
		byExactKey:      make(map[string]Row),
		byNormalizedKey: make(map[string]string),
	}
	if t == nil {
		return ix
	}
	for _, row := range t.Rows {
		key := strings.TrimSpace(row.Get(matchColumn))
		if key == "" {
			ix.Skipped++
			continue
		}
		if _, seen := ix.byExactKey[key]; seen {
			ix.Duplicates++
		}
		ix.byExactKey[key] = row
		ix.Indexed++

		// Keys made only of separators normalize to ""; indexing those
		// would make the containment strategy match everything.
		nk := textnorm.Normalize(key)
		if nk == "" {
			continue
		}
		if _, seen := ix.byNormalizedKey[nk]; !seen {
			ix.normOrder = append(ix.normOrder, nk)
		}
		ix.byNormalizedKey[nk] = key
	}
	return ix
}

// Len returns the number of distinct exact keys in the index.
func (ix *Index) Len() int { return len(ix.byExactKey) }

// Exact looks up a candidate key verbatim.
func (ix *Index) Exact(key string) (Row, bool) {
	row, ok := ix.byExactKey[key]
	return row, ok
}

// ByNormalized resolves a normalized key back to its row and the raw key it
// was derived from.
func (ix *Index) ByNormalized(normKey string) (Row, string, bool) {
	raw, ok := ix.byNormalizedKey[normKey]
	if !ok {
		return nil, "", false
	}
	row, ok := ix.byExactKey[raw]
	return row, raw, ok
}

// NormalizedKeys returns the normalized keys in row-load order. The stable
// order makes containment and edit-distance tie-breaks deterministic.
func (ix *Index) NormalizedKeys() []string { return ix.normOrder }
