package export_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/openfauna/zoolist/pkg/export"
	"github.com/openfauna/zoolist/pkg/zoos"
)

func TestInsertStatement(t *testing.T) {
	zoo := zoos.NewZoo(zoos.Record{
		Name:   "Monkey's Eden",
		Region: "Cornwall",
		Coords: &zoos.Coordinates{Lat: 50.4, Lon: -4.5},
		Source: zoos.SourceWiki,
	})

	stmt := export.InsertStatement(zoo)

	assert.Contains(t, stmt, "'Monkey''s Eden'", "embedded quotes must be doubled")
	assert.Contains(t, stmt, "'Cornwall'")
	assert.Contains(t, stmt, "50.4")
	assert.Contains(t, stmt, "'wiki'")
	assert.Contains(t, stmt, "NULL", "absent fields render as NULL")
}

func TestWriteSQL(t *testing.T) {
	var buf bytes.Buffer
	require.NoError(t, export.WriteSQL(&buf, sampleZoos()))

	out := buf.String()
	assert.True(t, strings.HasPrefix(out, "CREATE TABLE IF NOT EXISTS zoos"))
	assert.Equal(t, 2, strings.Count(out, "INSERT INTO zoos"))
	// Ranked input order is preserved.
	assert.Less(t, strings.Index(out, "Chester Zoo"), strings.Index(out, "Paignton Zoo"))
}
