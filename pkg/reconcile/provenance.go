package reconcile

import (
	"fmt"
	"time"

	"github.com/openfauna/zoolist/pkg/zoos"
)

// ProvenanceInfo records which source supplied one field of a canonical zoo.
type ProvenanceInfo struct {
	Source    zoos.Source `json:"source"`
	Field     string      `json:"field"`
	Timestamp time.Time   `json:"timestamp"`
}

// ProvenanceMap holds provenance for a whole run, keyed by
// "<normalized key>:<field>".
type ProvenanceMap map[string][]ProvenanceInfo

// ProvenanceTracker collects field-level provenance during a run.
type ProvenanceTracker interface {
	// Track records that src supplied field for the zoo at key.
	Track(key, field string, src zoos.Source)

	// Get retrieves the provenance entries for one field.
	Get(key, field string) []ProvenanceInfo

	// Export returns the complete provenance map.
	Export() ProvenanceMap

	// Clear removes all provenance data.
	Clear()
}

// NewProvenanceTracker creates a tracker. A disabled tracker records
// nothing and exports nil, so callers can pass it unconditionally.
func NewProvenanceTracker(enabled bool) ProvenanceTracker {
	return &provenanceTracker{
		provenance: make(ProvenanceMap),
		enabled:    enabled,
	}
}

type provenanceTracker struct {
	provenance ProvenanceMap
	enabled    bool
}

func (p *provenanceTracker) Track(key, field string, src zoos.Source) {
	if !p.enabled {
		return
	}
	k := provenanceKey(key, field)
	p.provenance[k] = append(p.provenance[k], ProvenanceInfo{
		Source:    src,
		Field:     field,
		Timestamp: time.Now(),
	})
}

func (p *provenanceTracker) Get(key, field string) []ProvenanceInfo {
	if !p.enabled {
		return nil
	}
	return p.provenance[provenanceKey(key, field)]
}

func (p *provenanceTracker) Export() ProvenanceMap {
	if !p.enabled {
		return nil
	}
	return p.provenance
}

func (p *provenanceTracker) Clear() {
	p.provenance = make(ProvenanceMap)
}

func provenanceKey(key, field string) string {
	return fmt.Sprintf("%s:%s", key, field)
}
