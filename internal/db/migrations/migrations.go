package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"

	"github.com/golang-migrate/migrate/v4"
	"github.com/golang-migrate/migrate/v4/database"
	migratepgx "github.com/golang-migrate/migrate/v4/database/pgx"
	migratesqlite "github.com/golang-migrate/migrate/v4/database/sqlite"
	"github.com/golang-migrate/migrate/v4/source/iofs"
	"github.com/jackc/pgx/v4"
	"github.com/jackc/pgx/v4/stdlib"
)

//go:embed sqlite/*.sql
var sqliteFS embed.FS

//go:embed postgres/*.sql
var postgresFS embed.FS

// UpSQLite applies the sqlite schema to db. db stays open.
func UpSQLite(db *sql.DB) error {
	driver, err := migratesqlite.WithInstance(db, &migratesqlite.Config{})
	if err != nil {
		return fmt.Errorf("could not prepare sqlite migrations: %w", err)
	}
	return up(sqliteFS, "sqlite", "sqlite", driver)
}

// UpPostgres applies the postgres schema to the database at connString.
func UpPostgres(connString string) error {
	config, err := pgx.ParseConfig(connString)
	if err != nil {
		return fmt.Errorf("could not parse postgres url: %w", err)
	}
	db := stdlib.OpenDB(*config)
	defer db.Close()

	driver, err := migratepgx.WithInstance(db, &migratepgx.Config{})
	if err != nil {
		return fmt.Errorf("could not prepare postgres migrations: %w", err)
	}
	return up(postgresFS, "postgres", "pgx", driver)
}

func up(fs embed.FS, dir string, databaseName string, driver database.Driver) error {
	source, err := iofs.New(fs, dir)
	if err != nil {
		return fmt.Errorf("could not read migrations: %w", err)
	}
	m, err := migrate.NewWithInstance("iofs", source, databaseName, driver)
	if err != nil {
		return fmt.Errorf("could not prepare migrations: %w", err)
	}
	err = m.Up()
	if err != nil && !errors.Is(err, migrate.ErrNoChange) {
		return fmt.Errorf("could not apply migrations: %w", err)
	}
	return nil
}
