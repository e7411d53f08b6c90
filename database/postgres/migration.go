package postgres

import (
	_ "embed"

	"github.com/jmoiron/sqlx"
)

//go:embed schema.sql
var schema string

// Migrate applies the schema. Every statement is idempotent
// (CREATE ... IF NOT EXISTS), so it is safe to run on every boot.
func Migrate(db *sqlx.DB) error {
	_, err := db.Exec(schema)
	return err
}
