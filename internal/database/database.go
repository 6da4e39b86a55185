package database

import (
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
)

// Connect opens the recorder database. An empty URL disables recording and
// returns nil, nil.
func Connect(databaseURL string) (*sqlx.DB, error) {
	if databaseURL == "" {
		return nil, nil
	}
	db, err := sqlx.Connect("postgres", databaseURL)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	// The recorder writes from a single worker.
	db.SetMaxOpenConns(4)
	db.SetMaxIdleConns(2)

	return db, nil
}
