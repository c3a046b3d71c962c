package match

import (
	"strings"
	"unicode/utf8"

	"renomeia/internal/refdata"
	"renomeia/internal/textnorm"
)

// Strategy identifies which resolution step produced a match.
type Strategy string

const (
	StrategyNone       Strategy = ""
	StrategyExact      Strategy = "exact"
	StrategyNormalized Strategy = "normalized"
	StrategyContains   Strategy = "contains"
	StrategyDistance   Strategy = "distance"
)

// Edit-distance budget: a longer identifier tolerates proportionally more
// edits, capped at maxEditDistance.
const (
	distanceRatio   = 0.4
	maxEditDistance = 10
)

// Result is the outcome of resolving one candidate key: at most one row,
// or nothing. MatchedKey is the raw reference value the row was indexed
// under.
type Result struct {
	Row        refdata.Row
	MatchedKey string
	Strategy   Strategy
}

// Matched reports whether a row was resolved.
func (r Result) Matched() bool { return r.Row != nil }

// Resolve runs the ordered strategy chain against the index; the first
// strategy that succeeds wins and no further ones are attempted:
//
//  1. exact raw lookup
//  2. normalized exact lookup        (name-like columns only)
//  3. substring containment          (name-like columns only)
//  4. bounded Levenshtein distance   (name-like columns only)
//
// Code-like columns stop after step 1: fuzzy matching on identifiers is
// deliberately refused. Resolve never fails; an unresolvable candidate
// yields a zero Result.
func Resolve(candidate string, ix *refdata.Index, nameLike bool) Result {
	if row, ok := ix.Exact(candidate); ok {
		return Result{Row: row, MatchedKey: candidate, Strategy: StrategyExact}
	}
	if !nameLike {
		return Result{}
	}

	nk := textnorm.Normalize(candidate)
	if nk == "" {
		return Result{}
	}

	if row, raw, ok := ix.ByNormalized(nk); ok {
		return Result{Row: row, MatchedKey: raw, Strategy: StrategyNormalized}
	}

	// Containment: first key (in row-load order) where either side contains
	// the other.
	for _, key := range ix.NormalizedKeys() {
		if strings.Contains(nk, key) || strings.Contains(key, nk) {
			if row, raw, ok := ix.ByNormalized(key); ok {
				return Result{Row: row, MatchedKey: raw, Strategy: StrategyContains}
			}
		}
	}

	// Bounded edit distance: minimum over all keys, first-seen wins ties.
	limit := distanceRatio * float64(utf8.RuneCountInString(nk))
	if limit > maxEditDistance {
		limit = maxEditDistance
	}

	best := -1
	bestKey := ""
	for _, key := range ix.NormalizedKeys() {
		d := Distance(nk, key)
		if best < 0 || d < best {
			best = d
			bestKey = key
		}
	}
	if best >= 0 && float64(best) <= limit {
		if row, raw, ok := ix.ByNormalized(bestKey); ok {
			return Result{Row: row, MatchedKey: raw, Strategy: StrategyDistance}
		}
	}
	return Result{}
}
