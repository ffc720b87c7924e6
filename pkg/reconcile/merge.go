package reconcile

import (
	"github.com/openfauna/zoolist/pkg/zoos"
)

// Merge folds a raw record into an existing canonical zoo in place.
//
// The record's source tag is unioned into the zoo's provenance set, each
// absent optional field is filled from the record, and a longer record
// name replaces the current one (longer names are assumed more complete,
// e.g. "Chester Zoo" over a bare "Chester"). Populated fields are never
// overwritten, so repeated merges of the same or different records cannot
// corrupt previously merged data.
func Merge(zoo *zoos.Zoo, rec zoos.Record) {
	mergeTracked(zoo, rec)
}

// Field names reported to the provenance tracker.
const (
	fieldName        = "name"
	fieldLocality    = "locality"
	fieldRegion      = "region"
	fieldHomepage    = "homepage"
	fieldExternalRef = "external_ref"
	fieldCoords      = "coords"
)

// mergeTracked is Merge plus a report of which fields the record supplied.
func mergeTracked(zoo *zoos.Zoo, rec zoos.Record) []string {
	var filled []string

	zoo.AddSource(rec.Source)

	if zoo.Locality == "" && rec.Locality != "" {
		zoo.Locality = rec.Locality
		filled = append(filled, fieldLocality)
	}
	if zoo.Region == "" && rec.Region != "" {
		zoo.Region = rec.Region
		filled = append(filled, fieldRegion)
	}
	if zoo.Homepage == "" && rec.Homepage != "" {
		zoo.Homepage = rec.Homepage
		filled = append(filled, fieldHomepage)
	}
	if zoo.ExternalRef == "" && rec.ExternalRef != "" {
		zoo.ExternalRef = rec.ExternalRef
		filled = append(filled, fieldExternalRef)
	}
	if zoo.Coords == nil && rec.Coords != nil {
		c := *rec.Coords
		zoo.Coords = &c
		filled = append(filled, fieldCoords)
	}

	// Name is the one field allowed to change after being set.
	if len(rec.Name) > len(zoo.Name) {
		zoo.Name = rec.Name
		filled = append(filled, fieldName)
	}

	return filled
}
