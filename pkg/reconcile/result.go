package reconcile

import (
	"fmt"
	"time"

	"github.com/openfauna/zoolist/pkg/zoos"
)

// Result is the outcome of one reconciliation run.
type Result struct {
	// Zoos is the canonical set in insertion order. Rank orders it by
	// confidence for downstream consumers.
	Zoos []*zoos.Zoo

	// Stats describes the run.
	Stats Statistics

	// Warnings lists non-fatal per-record problems, one per skipped record.
	Warnings []string

	// Provenance is the field-level audit trail, nil unless tracking was
	// enabled on the Reconciler.
	Provenance ProvenanceMap
}

// Statistics summarizes a reconciliation run.
type Statistics struct {
	// RecordsIn is the total number of input records, including skipped ones.
	RecordsIn int

	// RecordsSkipped counts records dropped for having no name.
	RecordsSkipped int

	// RecordsMerged counts records folded into an already-known zoo.
	RecordsMerged int

	// BySource counts valid records per producer.
	BySource map[zoos.Source]int

	// ZoosOut is the size of the canonical set.
	ZoosOut int

	// Duration of the run.
	Duration time.Duration
}

// HasWarnings reports whether any records were skipped.
func (r *Result) HasWarnings() bool {
	return len(r.Warnings) > 0
}

// Corroborated returns how many canonical zoos are backed by more than
// one source.
func (r *Result) Corroborated() int {
	n := 0
	for _, z := range r.Zoos {
		if z.SourceCount() > 1 {
			n++
		}
	}
	return n
}

// Summary returns a one-line human-readable account of the run.
func (r *Result) Summary() string {
	s := fmt.Sprintf("reconciled %d records into %d zoos (%d merged, %d multi-source)",
		r.Stats.RecordsIn, r.Stats.ZoosOut, r.Stats.RecordsMerged, r.Corroborated())
	if r.Stats.RecordsSkipped > 0 {
		s += fmt.Sprintf(", skipped %d", r.Stats.RecordsSkipped)
	}
	return s
}

func warnEmptyName(index int, src zoos.Source) string {
	return fmt.Sprintf("record %d from source %q has no name, skipped", index, src)
}
