// Package reconcile folds a stream of raw per-source zoo records into a
// deduplicated canonical set. Matching is heuristic: normalized names are
// compared by exact equality, guarded containment, bounded edit distance,
// and first-word equality. The fold is synchronous and deterministic for
// a given input order.
package reconcile

import (
	"time"

	"github.com/rs/zerolog"

	"github.com/openfauna/zoolist/pkg/logging"
	"github.com/openfauna/zoolist/pkg/zoos"
)

// Reconciler builds the canonical zoo set from raw records.
type Reconciler interface {
	// Reconcile folds records left-to-right into a canonical set.
	// Records with an empty name are skipped, never fatal.
	Reconcile(records []zoos.Record) *Result
}

// reconciler is the default implementation of Reconciler.
type reconciler struct {
	matcher  *Matcher
	logger   *zerolog.Logger
	tracker  ProvenanceTracker
	tracking bool
}

// Option configures a Reconciler.
type Option func(*reconciler) error

// New creates a Reconciler with options.
func New(opts ...Option) (Reconciler, error) {
	r := &reconciler{
		matcher: NewMatcher(DefaultMatchConfig()),
		logger:  logging.Default(),
		tracker: NewProvenanceTracker(false),
	}

	for _, opt := range opts {
		if err := opt(r); err != nil {
			return nil, err
		}
	}

	return r, nil
}

// WithMatchConfig overrides the matching thresholds.
func WithMatchConfig(cfg MatchConfig) Option {
	return func(r *reconciler) error {
		if err := cfg.Validate(); err != nil {
			return err
		}
		r.matcher = NewMatcher(cfg)
		return nil
	}
}

// WithLogger sets the logger used for per-record diagnostics.
func WithLogger(logger *zerolog.Logger) Option {
	return func(r *reconciler) error {
		if logger != nil {
			r.logger = logger
		}
		return nil
	}
}

// WithProvenance enables field-level provenance tracking.
func WithProvenance(enabled bool) Option {
	return func(r *reconciler) error {
		r.tracking = enabled
		r.tracker = NewProvenanceTracker(enabled)
		return nil
	}
}

// Reconcile folds records into a canonical set. The set is keyed by
// normalized name and insertion-ordered: an incoming record first tries
// an exact key hit, then the matcher's rule chain over existing keys in
// insertion order, and only then becomes a new zoo.
func (r *reconciler) Reconcile(records []zoos.Record) *Result {
	start := time.Now()

	byKey := make(map[string]*zoos.Zoo, len(records))
	keys := make([]string, 0, len(records))

	stats := Statistics{
		RecordsIn: len(records),
		BySource:  make(map[zoos.Source]int),
	}
	var warnings []string

	for i, rec := range records {
		if rec.Name == "" {
			r.logger.Warn().
				Int("index", i).
				Str("source", rec.Source.String()).
				Msg("Skipping record with empty name")
			stats.RecordsSkipped++
			warnings = append(warnings, warnEmptyName(i, rec.Source))
			continue
		}
		stats.BySource[rec.Source]++

		key := Normalize(rec.Name)

		target, ok := byKey[key]
		if !ok {
			if matched, found := r.matcher.FindMatch(key, keys); found {
				target = byKey[matched]
				key = matched
			}
		}

		if target != nil {
			filled := mergeTracked(target, rec)
			stats.RecordsMerged++
			for _, field := range filled {
				r.tracker.Track(key, field, rec.Source)
			}
			r.logger.Debug().
				Str("key", key).
				Str("name", rec.Name).
				Str("source", rec.Source.String()).
				Msg("Merged record into existing zoo")
			continue
		}

		zoo := zoos.NewZoo(rec)
		byKey[key] = zoo
		keys = append(keys, key)
		for _, field := range seededFields(rec) {
			r.tracker.Track(key, field, rec.Source)
		}
		r.logger.Debug().
			Str("key", key).
			Str("name", rec.Name).
			Str("source", rec.Source.String()).
			Msg("Created new canonical zoo")
	}

	out := make([]*zoos.Zoo, 0, len(keys))
	for _, key := range keys {
		out = append(out, byKey[key])
	}
	stats.ZoosOut = len(out)
	stats.Duration = time.Since(start)

	return &Result{
		Zoos:       out,
		Stats:      stats,
		Warnings:   warnings,
		Provenance: r.tracker.Export(),
	}
}

// seededFields lists the fields a brand-new zoo takes from its first record.
func seededFields(rec zoos.Record) []string {
	fields := []string{fieldName}
	if rec.Locality != "" {
		fields = append(fields, fieldLocality)
	}
	if rec.Region != "" {
		fields = append(fields, fieldRegion)
	}
	if rec.Homepage != "" {
		fields = append(fields, fieldHomepage)
	}
	if rec.ExternalRef != "" {
		fields = append(fields, fieldExternalRef)
	}
	if rec.Coords != nil {
		fields = append(fields, fieldCoords)
	}
	return fields
}
