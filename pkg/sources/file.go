package sources

import (
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"

	"github.com/goccy/go-yaml"

	"github.com/openfauna/zoolist/pkg/errors"
	"github.com/openfauna/zoolist/pkg/zoos"
)

// FileSource reads records from a YAML or JSON dump on disk, one file per
// source tag. Scrapers write these dumps; keeping the read side separate
// lets the pipeline re-run reconciliation without re-scraping.
type FileSource struct {
	tag  zoos.Source
	path string
}

// NewFileSource creates a file-backed source for the given tag.
func NewFileSource(tag zoos.Source, path string) *FileSource {
	return &FileSource{tag: tag, path: path}
}

// Name returns the source tag.
func (f *FileSource) Name() zoos.Source {
	return f.tag
}

// Fetch reads and decodes the dump. Every decoded record is stamped with
// this source's tag, overriding whatever the file claims; the file's
// position is authoritative for ordering only.
func (f *FileSource) Fetch(ctx context.Context) ([]zoos.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := os.ReadFile(f.path)
	if err != nil {
		return nil, errors.WrapSource(f.tag.String(), f.path, err)
	}

	var records []zoos.Record
	switch strings.ToLower(filepath.Ext(f.path)) {
	case ".json":
		if err := json.Unmarshal(data, &records); err != nil {
			return nil, errors.WrapParse("json", f.path, err)
		}
	case ".yaml", ".yml":
		if err := yaml.Unmarshal(data, &records); err != nil {
			return nil, errors.WrapParse("yaml", f.path, err)
		}
	default:
		return nil, errors.NewParseError("unknown", f.path, "unsupported file extension", nil)
	}

	for i := range records {
		records[i].Source = f.tag
	}
	return records, nil
}

// StaticSource serves a fixed record slice. Used in tests and as the seam
// for wiring in-memory producers.
type StaticSource struct {
	tag     zoos.Source
	records []zoos.Record
}

// NewStaticSource creates a source that returns records as-is, stamped
// with the given tag.
func NewStaticSource(tag zoos.Source, records []zoos.Record) *StaticSource {
	stamped := make([]zoos.Record, len(records))
	copy(stamped, records)
	for i := range stamped {
		stamped[i].Source = tag
	}
	return &StaticSource{tag: tag, records: stamped}
}

// Name returns the source tag.
func (s *StaticSource) Name() zoos.Source {
	return s.tag
}

// Fetch returns the fixed records.
func (s *StaticSource) Fetch(ctx context.Context) ([]zoos.Record, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	out := make([]zoos.Record, len(s.records))
	copy(out, s.records)
	return out, nil
}
