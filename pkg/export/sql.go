package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/openfauna/zoolist/pkg/zoos"
)

// Schema is the DDL for the web app's zoos table, matching the shape the
// importer expects.
const Schema = `CREATE TABLE IF NOT EXISTS zoos (
    id INTEGER PRIMARY KEY AUTOINCREMENT,
    name TEXT NOT NULL UNIQUE,
    locality TEXT,
    region TEXT,
    homepage TEXT,
    external_ref TEXT,
    lat REAL,
    lon REAL,
    sources TEXT NOT NULL
);`

const insertStmt = `INSERT INTO zoos (name, locality, region, homepage, external_ref, lat, lon, sources) VALUES (%s, %s, %s, %s, %s, %s, %s, %s);`

// WriteSQL writes the schema plus one insert statement per zoo to w.
// Output order follows the given list, so ranked input yields ranked rows.
func WriteSQL(w io.Writer, ranked []*zoos.Zoo) error {
	if _, err := fmt.Fprintln(w, Schema); err != nil {
		return err
	}
	for _, z := range ranked {
		if _, err := fmt.Fprintln(w, InsertStatement(z)); err != nil {
			return err
		}
	}
	return nil
}

// InsertStatement renders a single INSERT for one canonical zoo.
func InsertStatement(z *zoos.Zoo) string {
	lat, lon := "NULL", "NULL"
	if z.Coords != nil {
		lat = fmt.Sprintf("%g", z.Coords.Lat)
		lon = fmt.Sprintf("%g", z.Coords.Lon)
	}
	return fmt.Sprintf(insertStmt,
		quote(z.Name),
		quoteOrNull(z.Locality),
		quoteOrNull(z.Region),
		quoteOrNull(z.Homepage),
		quoteOrNull(z.ExternalRef),
		lat, lon,
		quote(joinSources(z)),
	)
}

func joinSources(z *zoos.Zoo) string {
	parts := make([]string, 0, z.SourceCount())
	for _, src := range z.Sources() {
		parts = append(parts, src.String())
	}
	return strings.Join(parts, ",")
}

// quote renders a SQL string literal, doubling embedded quotes.
func quote(s string) string {
	return "'" + strings.ReplaceAll(s, "'", "''") + "'"
}

func quoteOrNull(s string) string {
	if s == "" {
		return "NULL"
	}
	return quote(s)
}
