// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package migrations embeds the SQL schema of the client state store and
// of the reference server and applies it with goose.
package migrations

import (
	"database/sql"
	"embed"
	"errors"
	"fmt"
	"sync"

	"github.com/pressly/goose/v3"
)

//go:embed client/*.sql server/*.sql
var embedMigrations embed.FS

// Set names a directory of migrations.
type Set string

const (
	// Client is the schema of the durable client state.
	Client Set = "client"
	// Server is the schema of the reference server.
	Server Set = "server"
)

// Goose dialect names accepted by Migrate.
const (
	DialectSQLite   = "sqlite3"
	DialectPostgres = "pgx"
)

var errNilDB = errors.New("db is nil")

// goose keeps its base FS and dialect in package state.
var gooseMu sync.Mutex

// Migrate applies every pending migration of set to db using the given
// goose dialect.
func Migrate(db *sql.DB, dialect string, set Set) error {
	if db == nil {
		return fmt.Errorf("migration error: %w", errNilDB)
	}

	gooseMu.Lock()
	defer gooseMu.Unlock()

	goose.SetBaseFS(embedMigrations)
	goose.SetLogger(goose.NopLogger())

	if err := goose.SetDialect(dialect); err != nil {
		return fmt.Errorf("migration error setting dialect for db: %w", err)
	}

	if err := goose.Up(db, string(set)); err != nil {
		return fmt.Errorf("migration error: %w", err)
	}

	return nil
}
