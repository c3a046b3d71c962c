package pipeline

import (
	"context"
	"fmt"
	"os"

	"golang.org/x/sync/errgroup"

	"renomeia/internal/config"
	"renomeia/internal/naming"
)

// Sink consumes resolved (name, bytes) entries in order. Implementations
// live in internal/archive (ZIP file or output directory).
type Sink interface {
	Add(name string, data []byte) error
	Close() error
}

// UnmatchedPrefix marks files included under the "mark" policy so nothing
// leaves the commit pass without a visible trace.
const UnmatchedPrefix = "UNMATCHED__"

// CommitEvent reports one file's outcome during commit, in input order.
// Done increases monotonically and is suitable for a percentage display.
type CommitEvent struct {
	Done         int
	Total        int
	OriginalName string
	FinalName    string // empty when the file was skipped by policy
	Skipped      bool
}

// Commit re-derives each file's new name with the same pure functions used
// by Preview, reads file bytes concurrently (bounded by workers), and feeds
// the sink single-writer in input order. Unmatched files follow policy:
// marked with [UnmatchedPrefix], kept under their original name, or skipped
// (still reported via observe — never silently dropped). The sink is closed
// before returning.
//
// Cancellation or a read failure aborts the whole pass; the caller owns
// removing any partial archive.
func (s *Session) Commit(ctx context.Context, sink Sink, policy config.ErrorPolicy, workers int, observe func(CommitEvent)) (RunStats, error) {
	s.State = StateCommitting
	stats := s.MatchStats()

	if workers < 1 {
		workers = 1
	}
	if observe == nil {
		observe = func(CommitEvent) {}
	}

	// Read all bytes up front; reads are independent and read-only, so they
	// may overlap. Assembly below is strictly sequential.
	data := make([][]byte, len(s.Files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(workers)
	for i, f := range s.Files {
		i, f := i, f
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			b, err := os.ReadFile(f.Path)
			if err != nil {
				return fmt.Errorf("read %s: %w", f.Name, err)
			}
			data[i] = b
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		s.State = StateError
		sink.Close()
		return stats, err
	}

	resolver := naming.NewCollisionResolver()
	done := 0
	for i, f := range s.Files {
		if err := ctx.Err(); err != nil {
			s.State = StateError
			sink.Close()
			return stats, err
		}

		p := s.previewFile(f)
		name := p.NewName
		if p.Err != nil {
			switch policy {
			case config.PolicySkip:
				done++
				stats.Skipped++
				observe(CommitEvent{Done: done, Total: len(s.Files), OriginalName: f.Name, Skipped: true})
				continue
			case config.PolicyKeep:
				name = f.Name
			default: // config.PolicyMark
				name = UnmatchedPrefix + f.Name
			}
		}
		name = resolver.Resolve(f.Path, name)

		if err := sink.Add(name, data[i]); err != nil {
			s.State = StateError
			sink.Close()
			return stats, fmt.Errorf("write %s: %w", name, err)
		}
		done++
		stats.Packaged++
		stats.TotalBytes += int64(len(data[i]))
		observe(CommitEvent{Done: done, Total: len(s.Files), OriginalName: f.Name, FinalName: name})
	}

	if err := sink.Close(); err != nil {
		s.State = StateError
		return stats, err
	}
	s.State = StateDone
	return stats, nil
}
