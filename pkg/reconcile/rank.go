package reconcile

import (
	"sort"
	"strings"

	"github.com/openfauna/zoolist/pkg/zoos"
)

// Rank orders canonical zoos by confidence for downstream consumers:
// most corroborating sources first, then zoos with a homepage before
// those without, then case-insensitive name. The sort is stable, so
// equal-rank zoos keep their relative input order and ranking an
// already-ranked list is a no-op.
func Rank(list []*zoos.Zoo) []*zoos.Zoo {
	ranked := make([]*zoos.Zoo, len(list))
	copy(ranked, list)

	sort.SliceStable(ranked, func(i, j int) bool {
		a, b := ranked[i], ranked[j]
		if a.SourceCount() != b.SourceCount() {
			return a.SourceCount() > b.SourceCount()
		}
		if (a.Homepage != "") != (b.Homepage != "") {
			return a.Homepage != ""
		}
		return strings.ToLower(a.Name) < strings.ToLower(b.Name)
	})

	return ranked
}
