package pipeline

import (
	"context"
	"os"

	"renomeia/internal/archive"
	"renomeia/internal/config"
	"renomeia/internal/display"
	"renomeia/internal/logging"
)

// Run is the top-level batch entry point: discover files, load and index the
// reference data, preview every rename, and (unless dry-run) commit the
// batch to the configured sink. Aggregate stats are returned for the exit
// code decision.
func Run(ctx context.Context, cfg *config.Config, log *logging.Logger) RunStats {
	var stats RunStats

	files, err := Discover(cfg.InputDir)
	if err != nil {
		log.Error("File discovery failed: %v", err)
		return stats
	}
	if len(files) == 0 {
		log.Warn("No files found in %s", cfg.InputDir)
		return stats
	}

	session := NewSession(cfg.MatchColumn, cfg.Template)
	log.Info("Found %d files", len(files))
	log.Debug(cfg.Verbose, "Session %s", session.ID)

	if err := session.LoadReference(cfg.RefPath, cfg.Sheet); err != nil {
		log.Error("Cannot load reference data: %v", err)
		return stats
	}
	logIndexHeader(cfg, log, session)

	previews := session.Preview(files)
	printPreviews(cfg, log, previews)
	stats = session.MatchStats()
	log.Info("Matched %d of %d files (%d unmatched)", stats.Matched, stats.Total, stats.Unmatched)

	if cfg.DryRun {
		log.Success("[DRY] Preview only; no output written")
		return stats
	}

	sink, err := newSink(cfg, session.ID)
	if err != nil {
		log.Error("Cannot open output: %v", err)
		return stats
	}

	stats, err = session.Commit(ctx, sink, cfg.OnError, cfg.Workers, func(ev CommitEvent) {
		if ev.Skipped {
			log.Warn("[%d/%d] Skipped (no reference match): %s", ev.Done, ev.Total, ev.OriginalName)
			return
		}
		log.Info("[%d/%d] %s -> %s", ev.Done, ev.Total, ev.OriginalName, ev.FinalName)
	})
	if err != nil {
		if cfg.ZipOutput() {
			// Never leave a partial archive behind.
			os.Remove(cfg.Output)
		}
		log.Error("Commit failed: %v", err)
		return stats
	}

	logSummary(cfg, log, &stats)
	return stats
}

// newSink opens the ZIP or directory sink depending on the output path.
func newSink(cfg *config.Config, sessionID string) (Sink, error) {
	if cfg.ZipOutput() {
		return archive.NewZipSink(cfg.Output, "renomeia run "+sessionID)
	}
	return archive.NewDirSink(cfg.Output)
}

func logIndexHeader(cfg *config.Config, log *logging.Logger, s *Session) {
	kind := "code-like, exact matching only"
	if s.NameLike {
		kind = "name-like, fuzzy matching enabled"
	}
	log.Info("Reference: %d rows indexed by %q (%s)", s.Index.Len(), cfg.MatchColumn, kind)

	if s.Index.Skipped > 0 {
		log.Debug(cfg.Verbose, "Skipped %d reference rows with an empty %q value", s.Index.Skipped, cfg.MatchColumn)
	}
	if s.Index.Duplicates > 0 {
		log.Warn("%d duplicate %q values in the reference data (last row wins)", s.Index.Duplicates, cfg.MatchColumn)
	}
	if s.Index.Len() == 0 {
		log.Warn("No reference row has a %q value; nothing will match", cfg.MatchColumn)
	}
}

func printPreviews(cfg *config.Config, log *logging.Logger, previews []RenamePreview) {
	rows := make([]display.PreviewRow, 0, len(previews))
	for _, p := range previews {
		row := display.PreviewRow{
			Original: p.OriginalName,
			New:      p.NewName,
			Size:     p.Size,
		}
		if p.Err != nil {
			row.Note = p.Err.Error()
		}
		rows = append(rows, row)

		if p.Err == nil {
			log.Debug(cfg.Verbose, "%s: key %q matched %q (%s)",
				p.OriginalName, p.CandidateKey, p.MatchedKey, p.Strategy)
		} else {
			log.Debug(cfg.Verbose, "%s: key %q matched nothing", p.OriginalName, p.CandidateKey)
		}
	}
	display.PrintPreview(rows)
}

func logSummary(cfg *config.Config, log *logging.Logger, stats *RunStats) {
	log.Info("==============================")
	log.Info("Done: %d packaged, %d skipped", stats.Packaged, stats.Skipped)
	dest := "into " + cfg.Output
	if cfg.ZipOutput() {
		dest = "in " + cfg.Output
	}
	log.Success("Wrote %s %s", display.FormatBytes(stats.TotalBytes), dest)
}
