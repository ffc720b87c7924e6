// Package zoos defines the data model shared by the reconciliation
// pipeline: raw per-source records and the canonical zoo entities they
// collapse into.
package zoos

// Coordinates is a WGS84 point.
type Coordinates struct {
	Lat float64 `json:"lat" yaml:"lat"`
	Lon float64 `json:"lon" yaml:"lon"`
}

// Record is one unreconciled sighting of a zoo from a single source.
// Records are immutable once emitted by a producer; the reconciler never
// modifies them.
type Record struct {
	// Name is the zoo's name as the source printed it. May carry reference
	// markers or decorative punctuation. Required; records with an empty
	// name are skipped by the reconciler.
	Name string `json:"name" yaml:"name"`

	// Locality and Region are optional geographic hints.
	Locality string `json:"locality,omitempty" yaml:"locality,omitempty"`
	Region   string `json:"region,omitempty" yaml:"region,omitempty"`

	// Homepage is the zoo's website, if the source listed one.
	Homepage string `json:"homepage,omitempty" yaml:"homepage,omitempty"`

	// ExternalRef links back to the source-specific detail page.
	ExternalRef string `json:"external_ref,omitempty" yaml:"external_ref,omitempty"`

	// Coords is only supplied by the membership directory.
	Coords *Coordinates `json:"coords,omitempty" yaml:"coords,omitempty"`

	// Source is the producer that emitted this record.
	Source Source `json:"source" yaml:"source"`
}
