// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package migrations

import (
	"context"
	"database/sql"
	"io/fs"
	"strings"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
)

func TestMigrate_DBError(t *testing.T) {
	for _, dialect := range []string{DialectPostgres, DialectSQLite} {
		t.Run(dialect, func(t *testing.T) {
			db, mock, err := sqlmock.New()
			if err != nil {
				t.Fatalf("failed to create sqlmock: %v", err)
			}
			defer db.Close()

			_ = mock // no expectations: every statement goose issues fails

			err = Migrate(context.Background(), db, dialect)
			if err == nil {
				t.Fatal("expected error from Migrate, got nil")
			}

			if !strings.Contains(err.Error(), "migration error") {
				t.Errorf("expected wrapped migration error, got: %v", err)
			}
		})
	}
}

func TestMigrate_NilDB(t *testing.T) {
	var db *sql.DB

	err := Migrate(context.Background(), db, DialectPostgres)
	if err == nil {
		t.Fatal("expected error when db is nil, got nil")
	}

	if !strings.Contains(err.Error(), "db is nil") {
		t.Errorf("expected 'db is nil' error, got: %v", err)
	}
}

func TestMigrate_UnsupportedDialect(t *testing.T) {
	db, _, err := sqlmock.New()
	if err != nil {
		t.Fatalf("failed to create sqlmock: %v", err)
	}
	defer db.Close()

	err = Migrate(context.Background(), db, "mysql")
	if err == nil || !strings.Contains(err.Error(), "unsupported dialect") {
		t.Errorf("expected unsupported dialect error, got: %v", err)
	}
}

func TestEmbeddedMigrations(t *testing.T) {
	for dialect, dir := range dialectDirs {
		files, err := fs.Glob(embedMigrations, dir+"/*.sql")
		if err != nil {
			t.Fatalf("%s: glob failed: %v", dialect, err)
		}
		if len(files) == 0 {
			t.Errorf("%s: no migrations embedded", dialect)
		}
		for _, f := range files {
			body, err := fs.ReadFile(embedMigrations, f)
			if err != nil {
				t.Fatalf("%s: read %s: %v", dialect, f, err)
			}
			if !strings.Contains(string(body), "-- +goose Up") {
				t.Errorf("%s: %s has no goose Up annotation", dialect, f)
			}
		}
	}
}
