package database

import (
	"log"

	"github.com/jmoiron/sqlx"
	_ "modernc.org/sqlite"
)

// ConnectSQLite opens the SQLite file used by the sqlite store driver.
// One open connection keeps writers serialized at the driver level.
func ConnectSQLite(path string) *sqlx.DB {
	db, err := sqlx.Connect("sqlite", path)
	if err != nil {
		log.Fatalf("failed to open sqlite database %s: %v", path, err)
	}
	db.SetMaxOpenConns(1)
	log.Printf("SQLite store opened at %s", path)
	return db
}
