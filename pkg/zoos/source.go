package zoos

// Source identifies which producer emitted a record.
type Source string

// String returns the string representation of a source.
func (s Source) String() string {
	return string(s)
}

// Known sources, in canonical fetch order.
const (
	// SourceWiki is the wiki-style listing of UK zoos.
	SourceWiki Source = "wiki"

	// SourceDirectory is the membership directory (BIAZA-style), the only
	// source that supplies coordinates.
	SourceDirectory Source = "directory"

	// SourceWebSearch is the LLM-driven web search augmenter.
	SourceWebSearch Source = "websearch"
)

// SourceOrder is the fixed order in which source streams are concatenated
// before reconciliation. Reconciliation folds left-to-right over its input,
// so a stable stream order is required for reproducible output.
var SourceOrder = []Source{SourceWiki, SourceDirectory, SourceWebSearch}

// Valid reports whether s is one of the known sources.
func (s Source) Valid() bool {
	switch s {
	case SourceWiki, SourceDirectory, SourceWebSearch:
		return true
	}
	return false
}
