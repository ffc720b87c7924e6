package export

import (
	"context"
	"database/sql"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/openfauna/zoolist/pkg/errors"
	"github.com/openfauna/zoolist/pkg/zoos"
)

// ApplySQLite writes the canonical set directly into a SQLite database at
// path, creating the zoos table if needed. Rows are inserted in list
// order inside a single transaction; an existing row with the same name
// is replaced, so re-running the pipeline refreshes the table.
func ApplySQLite(ctx context.Context, path string, ranked []*zoos.Zoo) error {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return errors.WrapIO("open", path, err)
	}
	defer db.Close()

	if _, err := db.ExecContext(ctx, Schema); err != nil {
		return errors.WrapIO("create table", path, err)
	}

	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return errors.WrapIO("begin", path, err)
	}
	defer tx.Rollback()

	stmt, err := tx.PrepareContext(ctx, `INSERT OR REPLACE INTO zoos
		(name, locality, region, homepage, external_ref, lat, lon, sources)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?)`)
	if err != nil {
		return errors.WrapIO("prepare", path, err)
	}
	defer stmt.Close()

	for _, z := range ranked {
		var lat, lon any
		if z.Coords != nil {
			lat, lon = z.Coords.Lat, z.Coords.Lon
		}
		if _, err := stmt.ExecContext(ctx,
			z.Name,
			nullable(z.Locality),
			nullable(z.Region),
			nullable(z.Homepage),
			nullable(z.ExternalRef),
			lat, lon,
			joinSources(z),
		); err != nil {
			return errors.WrapIO("insert", z.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return errors.WrapIO("commit", path, err)
	}
	return nil
}

func nullable(s string) any {
	if s == "" {
		return nil
	}
	return s
}
