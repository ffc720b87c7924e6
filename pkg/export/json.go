// Package export serializes a ranked canonical zoo set for downstream
// consumers: a JSON report with summary statistics, SQL insert statements
// for the web app's relational store, and an optional direct SQLite apply.
package export

import (
	"encoding/json"
	"io"
	"time"

	"github.com/openfauna/zoolist/pkg/reconcile"
	"github.com/openfauna/zoolist/pkg/zoos"
)

// Report is the JSON document shape consumed by the web app importer.
type Report struct {
	GeneratedAt time.Time               `json:"generated_at"`
	Stats       ReportStats             `json:"stats"`
	Zoos        []ZooDocument           `json:"zoos"`
	Provenance  reconcile.ProvenanceMap `json:"provenance,omitempty"`
}

// ReportStats summarizes the reconciliation run for the report header.
type ReportStats struct {
	Total       int            `json:"total"`
	MultiSource int            `json:"multi_source"`
	WithCoords  int            `json:"with_coords"`
	BySource    map[string]int `json:"by_source"`
	Skipped     int            `json:"skipped,omitempty"`
}

// ZooDocument is the serialized form of one canonical zoo.
type ZooDocument struct {
	Name        string            `json:"name"`
	Locality    string            `json:"locality,omitempty"`
	Region      string            `json:"region,omitempty"`
	Homepage    string            `json:"homepage,omitempty"`
	ExternalRef string            `json:"external_ref,omitempty"`
	Coords      *zoos.Coordinates `json:"coords,omitempty"`
	Sources     []string          `json:"sources"`

	// Animals is populated by the enrichment collaborator, keyed by the
	// zoo's canonical name.
	Animals []string `json:"animals,omitempty"`
}

// NewReport builds a Report from a reconciliation result and a ranked list.
// The list is taken as given; callers rank before exporting.
func NewReport(ranked []*zoos.Zoo, result *reconcile.Result) *Report {
	stats := ReportStats{
		Total:    len(ranked),
		BySource: make(map[string]int),
	}
	if result != nil {
		for src, n := range result.Stats.BySource {
			stats.BySource[src.String()] = n
		}
		stats.Skipped = result.Stats.RecordsSkipped
	}

	docs := make([]ZooDocument, 0, len(ranked))
	for _, z := range ranked {
		if z.SourceCount() > 1 {
			stats.MultiSource++
		}
		if z.Coords != nil {
			stats.WithCoords++
		}
		docs = append(docs, newZooDocument(z))
	}

	report := &Report{
		GeneratedAt: time.Now().UTC(),
		Stats:       stats,
		Zoos:        docs,
	}
	if result != nil {
		report.Provenance = result.Provenance
	}
	return report
}

func newZooDocument(z *zoos.Zoo) ZooDocument {
	doc := ZooDocument{
		Name:        z.Name,
		Locality:    z.Locality,
		Region:      z.Region,
		Homepage:    z.Homepage,
		ExternalRef: z.ExternalRef,
	}
	if z.Coords != nil {
		c := *z.Coords
		doc.Coords = &c
	}
	for _, src := range z.Sources() {
		doc.Sources = append(doc.Sources, src.String())
	}
	return doc
}

// WriteJSON writes the report to w as indented JSON.
func WriteJSON(w io.Writer, report *Report) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(report)
}
