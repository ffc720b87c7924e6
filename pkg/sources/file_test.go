package sources_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfauna/zoolist/pkg/sources"
	"github.com/openfauna/zoolist/pkg/zoos"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestFileSourceJSON(t *testing.T) {
	path := writeFile(t, "wiki.json", `[
		{"name": "Chester Zoo", "region": "Cheshire"},
		{"name": "Paignton Zoo", "source": "bogus"}
	]`)

	src := sources.NewFileSource(zoos.SourceWiki, path)
	assert.Equal(t, zoos.SourceWiki, src.Name())

	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	assert.Equal(t, "Chester Zoo", records[0].Name)
	assert.Equal(t, "Cheshire", records[0].Region)
	assert.Equal(t, zoos.SourceWiki, records[1].Source, "file's own source claim is overridden")
}

func TestFileSourceYAML(t *testing.T) {
	path := writeFile(t, "directory.yaml", `
- name: Chester Zoo
  coords:
    lat: 53.227
    lon: -2.884
- name: Whipsnade Zoo
`)

	src := sources.NewFileSource(zoos.SourceDirectory, path)
	records, err := src.Fetch(context.Background())
	require.NoError(t, err)
	require.Len(t, records, 2)
	require.NotNil(t, records[0].Coords)
	assert.Equal(t, 53.227, records[0].Coords.Lat)
	assert.Equal(t, zoos.SourceDirectory, records[0].Source)
}

func TestFileSourceErrors(t *testing.T) {
	src := sources.NewFileSource(zoos.SourceWiki, filepath.Join(t.TempDir(), "missing.json"))
	_, err := src.Fetch(context.Background())
	assert.Error(t, err)

	bad := writeFile(t, "bad.json", `{not json`)
	_, err = sources.NewFileSource(zoos.SourceWiki, bad).Fetch(context.Background())
	assert.Error(t, err)

	txt := writeFile(t, "dump.txt", `whatever`)
	_, err = sources.NewFileSource(zoos.SourceWiki, txt).Fetch(context.Background())
	assert.Error(t, err)
}

func TestFetchAllCanonicalOrder(t *testing.T) {
	web := sources.NewStaticSource(zoos.SourceWebSearch, []zoos.Record{{Name: "Flamingo Land"}})
	wiki := sources.NewStaticSource(zoos.SourceWiki, []zoos.Record{{Name: "Chester Zoo"}})
	dir := sources.NewStaticSource(zoos.SourceDirectory, []zoos.Record{{Name: "Whipsnade Zoo"}})

	// Registration order is scrambled; output order must still be
	// wiki, directory, websearch.
	records, err := sources.FetchAll(context.Background(), []sources.Source{web, wiki, dir})
	require.NoError(t, err)
	require.Len(t, records, 3)
	assert.Equal(t, "Chester Zoo", records[0].Name)
	assert.Equal(t, "Whipsnade Zoo", records[1].Name)
	assert.Equal(t, "Flamingo Land", records[2].Name)
}

func TestFetchAllSkipsFailingSource(t *testing.T) {
	wiki := sources.NewStaticSource(zoos.SourceWiki, []zoos.Record{{Name: "Chester Zoo"}})
	broken := sources.NewFileSource(zoos.SourceDirectory, filepath.Join(t.TempDir(), "missing.yaml"))

	records, err := sources.FetchAll(context.Background(), []sources.Source{wiki, broken})
	require.NoError(t, err)
	require.Len(t, records, 1)
	assert.Equal(t, "Chester Zoo", records[0].Name)
}

func TestFetchAllAllSourcesFailing(t *testing.T) {
	broken := sources.NewFileSource(zoos.SourceWiki, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := sources.FetchAll(context.Background(), []sources.Source{broken})
	assert.Error(t, err)
}

func TestFetchAllDuplicateTag(t *testing.T) {
	a := sources.NewStaticSource(zoos.SourceWiki, nil)
	b := sources.NewStaticSource(zoos.SourceWiki, nil)

	_, err := sources.FetchAll(context.Background(), []sources.Source{a, b})
	assert.Error(t, err)
}
