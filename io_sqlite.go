package bgpsim

import (
	"database/sql"
	"fmt"

	_ "github.com/mattn/go-sqlite3" // registers the "sqlite3" driver, side-effect only
)

// WriteRIBsSQLite persists the converged RIB to a SQLite database at
// filename, creating (or replacing) a single "rib" table with columns
// (asn INTEGER, prefix TEXT, as_path TEXT). It is a supplemental sink
// alongside WriteRIBsCSV for callers that want the RIB in a queryable store
// rather than (or in addition to) a flat file.
func WriteRIBsSQLite(g *ASGraph, filename string) error {
	db, err := sql.Open("sqlite3", filename)
	if err != nil {
		return fmt.Errorf("could not open sqlite output %q: %w", filename, err)
	}
	defer db.Close()

	if _, err := db.Exec(`DROP TABLE IF EXISTS rib`); err != nil {
		return err
	}
	if _, err := db.Exec(`CREATE TABLE rib (asn INTEGER, prefix TEXT, as_path TEXT)`); err != nil {
		return err
	}

	tx, err := db.Begin()
	if err != nil {
		return err
	}
	stmt, err := tx.Prepare(`INSERT INTO rib (asn, prefix, as_path) VALUES (?, ?, ?)`)
	if err != nil {
		tx.Rollback()
		return err
	}
	defer stmt.Close()

	for _, row := range collectRibRows(g) {
		if _, err := stmt.Exec(row.Asn, row.Prefix, row.AsPath); err != nil {
			tx.Rollback()
			return err
		}
	}
	return tx.Commit()
}
