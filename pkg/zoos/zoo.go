package zoos

// Zoo is the canonical, deduplicated representation of one real-world zoo
// across all sources. A Zoo is created from the first record that mentions
// it and mutated in place as later records merge into it. Zoos are owned
// exclusively by the reconciler during a run; no synchronization is needed.
type Zoo struct {
	// Name is the best name seen so far. The merger prefers the longest
	// name on conflict; this is the only field that may change once set.
	Name string

	// Optional fields, each filled by the first record that supplies a
	// value and never overwritten afterwards.
	Locality    string
	Region      string
	Homepage    string
	ExternalRef string
	Coords      *Coordinates

	sources map[Source]struct{}
}

// NewZoo creates a canonical zoo seeded from a single record.
func NewZoo(rec Record) *Zoo {
	z := &Zoo{
		Name:        rec.Name,
		Locality:    rec.Locality,
		Region:      rec.Region,
		Homepage:    rec.Homepage,
		ExternalRef: rec.ExternalRef,
		sources:     make(map[Source]struct{}, 1),
	}
	if rec.Coords != nil {
		c := *rec.Coords
		z.Coords = &c
	}
	z.sources[rec.Source] = struct{}{}
	return z
}

// AddSource records that src corroborates this zoo. Adding a source that
// is already present is a no-op; the set only grows.
func (z *Zoo) AddSource(src Source) {
	if z.sources == nil {
		z.sources = make(map[Source]struct{}, 1)
	}
	z.sources[src] = struct{}{}
}

// HasSource reports whether src has corroborated this zoo.
func (z *Zoo) HasSource(src Source) bool {
	_, ok := z.sources[src]
	return ok
}

// SourceCount returns the number of distinct sources that mention this zoo.
func (z *Zoo) SourceCount() int {
	return len(z.sources)
}

// Sources returns the provenance set in canonical source order.
func (z *Zoo) Sources() []Source {
	out := make([]Source, 0, len(z.sources))
	for _, src := range SourceOrder {
		if _, ok := z.sources[src]; ok {
			out = append(out, src)
		}
	}
	return out
}
