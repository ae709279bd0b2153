// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package store

import (
	"errors"
	"fmt"
	"testing"

	"github.com/jackc/pgerrcode"
	"github.com/mattn/go-sqlite3"
	"github.com/stretchr/testify/assert"
)

func TestPostgresErrorClassifier(t *testing.T) {
	c := NewPostgresErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "unique", err: pgError(pgerrcode.UniqueViolation), want: UniqueViolation},
		{name: "wrapped unique", err: fmt.Errorf("insert: %w", pgError(pgerrcode.UniqueViolation)), want: UniqueViolation},
		{name: "deadlock", err: pgError(pgerrcode.DeadlockDetected), want: Transient},
		{name: "connection failure", err: pgError(pgerrcode.ConnectionFailure), want: Transient},
		{name: "cannot connect now", err: pgError(pgerrcode.CannotConnectNow), want: Transient},
		{name: "syntax", err: pgError(pgerrcode.SyntaxError), want: Unclassified},
		{name: "not postgres", err: errors.New("plain"), want: Unclassified},
		{name: "nil", err: nil, want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestSQLiteErrorClassifier(t *testing.T) {
	c := NewSQLiteErrorClassifier()

	tests := []struct {
		name string
		err  error
		want ErrorClassification
	}{
		{name: "unique", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintUnique}, want: UniqueViolation},
		{name: "primary key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintPrimaryKey}, want: UniqueViolation},
		{name: "foreign key", err: sqlite3.Error{Code: sqlite3.ErrConstraint, ExtendedCode: sqlite3.ErrConstraintForeignKey}, want: Unclassified},
		{name: "busy", err: sqlite3.Error{Code: sqlite3.ErrBusy}, want: Transient},
		{name: "locked", err: fmt.Errorf("x: %w", sqlite3.Error{Code: sqlite3.ErrLocked}), want: Transient},
		{name: "plain", err: errors.New("plain"), want: Unclassified},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, c.Classify(tt.err))
		})
	}
}

func TestIsPostgresDSN(t *testing.T) {
	assert.True(t, isPostgresDSN("postgres://u:p@localhost/db"))
	assert.True(t, isPostgresDSN("postgresql://localhost/db"))
	assert.False(t, isPostgresDSN("mypass-server.db"))
	assert.False(t, isPostgresDSN("file:test.db?cache=shared"))
}

func TestWithSQLiteOptions(t *testing.T) {
	assert.Equal(t, "a.db?_foreign_keys=on", withSQLiteOptions("a.db"))
	assert.Equal(t, "a.db?cache=shared&_foreign_keys=on", withSQLiteOptions("a.db?cache=shared"))
	assert.Equal(t, "a.db?_fk=1", withSQLiteOptions("a.db?_fk=1"))
}
