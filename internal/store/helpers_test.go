// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"database/sql"
	"testing"
	"time"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/MKhiriev/go-mypass/internal/logger"
	"github.com/MKhiriev/go-mypass/migrations"
)

var fixedNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

func newMockDB(t *testing.T, dialect string) (*DB, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}

	var classifier ErrorClassificator = NewSQLiteErrorClassifier()
	if dialect == migrations.DialectPostgres {
		classifier = NewPostgresErrorClassifier()
	}

	return &DB{DB: db, dialect: dialect, errorClassificator: classifier, logger: logger.Nop()}, mock, db
}
