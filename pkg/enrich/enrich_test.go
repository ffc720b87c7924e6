package enrich

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeEnricher struct {
	calls   int
	animals []string
	err     error
}

func (f *fakeEnricher) Animals(ctx context.Context, zooName string) ([]string, error) {
	f.calls++
	if f.err != nil {
		return nil, f.err
	}
	return f.animals, nil
}

func TestCachedServesFromStore(t *testing.T) {
	fake := &fakeEnricher{animals: []string{"Asian elephant", "Red panda"}}
	enricher := Cached(fake, NewMemoryStore())
	ctx := context.Background()

	first, err := enricher.Animals(ctx, "Chester Zoo")
	require.NoError(t, err)
	assert.Equal(t, []string{"Asian elephant", "Red panda"}, first)

	second, err := enricher.Animals(ctx, "Chester Zoo")
	require.NoError(t, err)
	assert.Equal(t, first, second)
	assert.Equal(t, 1, fake.calls, "second lookup must hit the cache")

	_, err = enricher.Animals(ctx, "Paignton Zoo")
	require.NoError(t, err)
	assert.Equal(t, 2, fake.calls, "different key misses the cache")
}

func TestFileStorePersists(t *testing.T) {
	path := filepath.Join(t.TempDir(), "cache.json")

	store, err := NewFileStore(path)
	require.NoError(t, err)
	require.NoError(t, store.Set("Chester Zoo", `["Asian elephant"]`))

	reloaded, err := NewFileStore(path)
	require.NoError(t, err)
	v, ok := reloaded.Get("Chester Zoo")
	require.True(t, ok)
	assert.Equal(t, `["Asian elephant"]`, v)

	_, ok = reloaded.Get("Paignton Zoo")
	assert.False(t, ok)
}

func TestParseAnimalList(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  []string
		ok    bool
	}{
		{"plain array", `["Lion", "Tiger"]`, []string{"Lion", "Tiger"}, true},
		{"fenced array", "```json\n[\"Lion\"]\n```", []string{"Lion"}, true},
		{"bare fence", "```\n[]\n```", []string{}, true},
		{"prose reply", "I don't know this zoo.", nil, false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			got, err := parseAnimalList(test.input)
			if !test.ok {
				assert.Error(t, err)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, test.want, got)
		})
	}
}

func TestGenAIEnricherRequiresKey(t *testing.T) {
	_, err := NewGenAIEnricher(context.Background(), "", "")
	assert.Error(t, err)
}
