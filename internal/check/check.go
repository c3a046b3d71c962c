// Package check provides the --check diagnostics flow: load the reference
// file, report its shape, and flag problems (missing match column, skipped
// rows, duplicate keys) before any rename is attempted.
package check

import (
	"renomeia/internal/config"
	"renomeia/internal/match"
	"renomeia/internal/refdata"
)

// Logger is the minimal logging interface needed by RunCheck.
// Defined here (rather than importing the logging package) so that check
// remains dependency-light and testable with a mock logger.
type Logger interface {
	Info(string, ...interface{})
	Success(string, ...interface{})
	Warn(string, ...interface{})
	Error(string, ...interface{})
	Debug(bool, string, ...interface{})
}

// RunCheck loads and inspects the reference file, printing columns, row
// counts, and — when a match column is configured — index statistics and
// the column's classification. Returns false when the reference cannot be
// used at all.
func RunCheck(cfg *config.Config, log Logger) bool {
	log.Info("=== Reference Check ===")

	table, err := refdata.Load(cfg.RefPath, cfg.Sheet)
	if err != nil {
		log.Error("Cannot load %s: %v", cfg.RefPath, err)
		return false
	}
	log.Success("Loaded %s: %d columns, %d data rows", cfg.RefPath, len(table.Columns), len(table.Rows))

	for _, col := range table.Columns {
		marker := ""
		if col == cfg.MatchColumn {
			marker = "  <- match column"
		}
		log.Info("  %s%s", col, marker)
	}

	if cfg.MatchColumn == "" {
		log.Warn("No match column configured (pass --match-column to check indexing)")
		return true
	}
	return checkIndex(cfg, log, table)
}

func checkIndex(cfg *config.Config, log Logger, table *refdata.Table) bool {
	if !table.HasColumn(cfg.MatchColumn) {
		log.Error("Column %q not found in the reference file", cfg.MatchColumn)
		return false
	}

	if match.IsNameLike(cfg.MatchColumn) {
		log.Info("Column %q is name-like: fuzzy matching enabled", cfg.MatchColumn)
	} else {
		log.Info("Column %q is code-like: exact matching only", cfg.MatchColumn)
	}

	ix := refdata.BuildIndex(table, cfg.MatchColumn)
	log.Success("Indexed %d rows (%d distinct keys)", ix.Indexed, ix.Len())
	if ix.Skipped > 0 {
		log.Warn("%d rows have an empty %q value and cannot be rename targets", ix.Skipped, cfg.MatchColumn)
	}
	if ix.Duplicates > 0 {
		log.Warn("%d duplicate %q values (last row wins)", ix.Duplicates, cfg.MatchColumn)
	}
	if ix.Len() == 0 {
		log.Error("No usable keys under %q; every file would fail to match", cfg.MatchColumn)
		return false
	}
	return true
}
