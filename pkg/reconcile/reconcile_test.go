package reconcile_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfauna/zoolist/pkg/logging"
	"github.com/openfauna/zoolist/pkg/reconcile"
	"github.com/openfauna/zoolist/pkg/zoos"
)

func newReconciler(t *testing.T, opts ...reconcile.Option) reconcile.Reconciler {
	t.Helper()
	r, err := reconcile.New(opts...)
	require.NoError(t, err)
	return r
}

func TestReconcileMergesSameName(t *testing.T) {
	r := newReconciler(t)

	result := r.Reconcile([]zoos.Record{
		{Name: "Chester Zoo", Source: zoos.SourceWiki},
		{Name: "Chester Zoo", Region: "Cheshire", Source: zoos.SourceDirectory},
	})

	require.Len(t, result.Zoos, 1)
	zoo := result.Zoos[0]
	assert.Equal(t, "Chester Zoo", zoo.Name)
	assert.Equal(t, "Cheshire", zoo.Region)
	assert.ElementsMatch(t, []zoos.Source{zoos.SourceWiki, zoos.SourceDirectory}, zoo.Sources())
	assert.Equal(t, 1, result.Stats.RecordsMerged)
}

func TestReconcileMergesAcrossNormalization(t *testing.T) {
	r := newReconciler(t)

	result := r.Reconcile([]zoos.Record{
		{Name: "ZSL London Zoo", Source: zoos.SourceWiki},
		{Name: "London Zoo", Homepage: "https://zsl.org", Source: zoos.SourceWebSearch},
	})

	require.Len(t, result.Zoos, 1)
	zoo := result.Zoos[0]
	assert.Equal(t, "ZSL London Zoo", zoo.Name, "longer name wins")
	assert.Equal(t, "https://zsl.org", zoo.Homepage)
	assert.ElementsMatch(t, []zoos.Source{zoos.SourceWiki, zoos.SourceWebSearch}, zoo.Sources())
}

func TestReconcileKeepsDistinctZoosApart(t *testing.T) {
	r := newReconciler(t)

	result := r.Reconcile([]zoos.Record{
		{Name: "Drayton Manor", Source: zoos.SourceWiki},
		{Name: "Manor Wildlife Park", Source: zoos.SourceDirectory},
	})

	assert.Len(t, result.Zoos, 2, "short generic token must not cause a false merge")
}

func TestReconcileSkipsEmptyNames(t *testing.T) {
	log := logging.NewTestLogger(t)
	r := newReconciler(t, reconcile.WithLogger(log.Logger))

	result := r.Reconcile([]zoos.Record{
		{Name: "Chester Zoo", Source: zoos.SourceWiki},
		{Name: "", Source: zoos.SourceDirectory},
		{Name: "Paignton Zoo", Source: zoos.SourceWebSearch},
	})

	assert.Len(t, result.Zoos, 2)
	assert.Equal(t, 1, result.Stats.RecordsSkipped)
	assert.True(t, result.HasWarnings())
	assert.True(t, log.Contains("empty name"))
}

func TestReconcileEmptyInput(t *testing.T) {
	r := newReconciler(t)

	result := r.Reconcile(nil)

	assert.Empty(t, result.Zoos)
	assert.Equal(t, 0, result.Stats.RecordsIn)
	assert.False(t, result.HasWarnings())
}

func TestReconcileNeverGrowsOutput(t *testing.T) {
	r := newReconciler(t)

	records := []zoos.Record{
		{Name: "Chester Zoo", Source: zoos.SourceWiki},
		{Name: "Chester Zoo", Source: zoos.SourceDirectory},
		{Name: "Whipsnade Zoo", Source: zoos.SourceWiki},
		{Name: "Flamingo Land", Source: zoos.SourceWiki},
		{Name: "Flamingo  Land", Source: zoos.SourceWebSearch},
	}

	result := r.Reconcile(records)
	assert.LessOrEqual(t, len(result.Zoos), len(records))
	assert.Len(t, result.Zoos, 3)
}

func TestReconcileDeterministic(t *testing.T) {
	records := []zoos.Record{
		{Name: "ZSL London Zoo", Source: zoos.SourceWiki},
		{Name: "Chester Zoo", Region: "Cheshire", Source: zoos.SourceWiki},
		{Name: "London Zoo", Homepage: "https://zsl.org", Source: zoos.SourceDirectory},
		{Name: "Drayton Manor", Source: zoos.SourceDirectory},
		{Name: "Chester", Locality: "Upton", Source: zoos.SourceWebSearch},
	}

	first := newReconciler(t).Reconcile(records)
	second := newReconciler(t).Reconcile(records)

	require.Equal(t, len(first.Zoos), len(second.Zoos))
	for i := range first.Zoos {
		a, b := first.Zoos[i], second.Zoos[i]
		assert.Equal(t, a.Name, b.Name)
		assert.Equal(t, a.Locality, b.Locality)
		assert.Equal(t, a.Region, b.Region)
		assert.Equal(t, a.Homepage, b.Homepage)
		assert.ElementsMatch(t, a.Sources(), b.Sources())
	}
}

func TestReconcileProvenance(t *testing.T) {
	r := newReconciler(t, reconcile.WithProvenance(true))

	result := r.Reconcile([]zoos.Record{
		{Name: "Chester Zoo", Source: zoos.SourceWiki},
		{Name: "Chester Zoo", Region: "Cheshire", Source: zoos.SourceDirectory},
	})

	require.NotNil(t, result.Provenance)
	entries := result.Provenance["chester:region"]
	require.Len(t, entries, 1)
	assert.Equal(t, zoos.SourceDirectory, entries[0].Source)

	nameEntries := result.Provenance["chester:name"]
	require.NotEmpty(t, nameEntries)
	assert.Equal(t, zoos.SourceWiki, nameEntries[0].Source)
}

func TestReconcileRejectsBadConfig(t *testing.T) {
	bad := reconcile.DefaultMatchConfig()
	bad.MinContainmentLength = -1

	_, err := reconcile.New(reconcile.WithMatchConfig(bad))
	assert.Error(t, err)
}

func TestResultSummary(t *testing.T) {
	r := newReconciler(t)

	result := r.Reconcile([]zoos.Record{
		{Name: "Chester Zoo", Source: zoos.SourceWiki},
		{Name: "Chester Zoo", Source: zoos.SourceDirectory},
		{Name: "", Source: zoos.SourceWiki},
	})

	assert.Contains(t, result.Summary(), "reconciled 3 records into 1 zoos")
	assert.Contains(t, result.Summary(), "skipped 1")
	assert.Equal(t, 1, result.Corroborated())
}
