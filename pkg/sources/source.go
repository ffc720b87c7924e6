// Package sources defines the producer side of the pipeline: anything
// that can yield a stream of raw zoo records for one source tag. The
// scraping and search mechanics behind a producer are its own concern;
// the reconciler only sees the records.
package sources

import (
	"context"

	"github.com/openfauna/zoolist/pkg/errors"
	"github.com/openfauna/zoolist/pkg/logging"
	"github.com/openfauna/zoolist/pkg/zoos"
)

// Source produces raw records for a single source tag.
type Source interface {
	// Name returns the tag under which this producer's records are emitted.
	Name() zoos.Source

	// Fetch materializes the producer's records. The returned order must
	// be stable across calls for reconciliation to be reproducible.
	Fetch(ctx context.Context) ([]zoos.Record, error)
}

// FetchAll fetches every source and concatenates the streams in canonical
// source order, so the reconciler always sees the same record order
// regardless of how the sources themselves were registered. A failing
// source is logged and skipped; the remaining sources still contribute.
func FetchAll(ctx context.Context, srcs []Source) ([]zoos.Record, error) {
	byTag := make(map[zoos.Source]Source, len(srcs))
	for _, src := range srcs {
		if src == nil {
			continue
		}
		if _, dup := byTag[src.Name()]; dup {
			return nil, errors.NewValidationError("source", src.Name(), "registered twice")
		}
		byTag[src.Name()] = src
	}

	log := logging.FromContext(ctx)

	var records []zoos.Record
	var failures int
	for _, tag := range zoos.SourceOrder {
		src, ok := byTag[tag]
		if !ok {
			continue
		}
		recs, err := src.Fetch(ctx)
		if err != nil {
			failures++
			log.Error().
				Err(err).
				Str("source", tag.String()).
				Msg("Source fetch failed, continuing without it")
			continue
		}
		log.Info().
			Str("source", tag.String()).
			Int("records", len(recs)).
			Msg("Fetched records")
		records = append(records, recs...)
	}

	if failures == len(byTag) && len(byTag) > 0 {
		return nil, errors.ErrSourceUnavailable
	}
	return records, nil
}
