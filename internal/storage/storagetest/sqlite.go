// Copyright 2026 BarberSoft
// SPDX-License-Identifier: AGPL-3.0

// Package storagetest opens in-memory sqlite databases carrying the schema of the embedded
// migrations, foreign keys enforced, for tests of code running on top of storage.
package storagetest

import (
	"bufio"
	"database/sql"
	"fmt"
	"io/fs"
	"regexp"
	"sort"
	"strings"
	"testing"

	_ "modernc.org/sqlite"

	"github.com/barbersoft/account-service/migrations"
)

// postgres spellings the sqlite parser does not know
var dialect = strings.NewReplacer(
	"TIMESTAMPTZ", "TIMESTAMP",
	"now()", "CURRENT_TIMESTAMP",
)

// NewSQLite returns a private in-memory database with every Up migration applied.
func NewSQLite(t testing.TB) *sql.DB {
	t.Helper()

	db, err := sql.Open("sqlite", ":memory:")
	if err != nil {
		t.Fatalf("failed to open sqlite: %v", err)
	}
	// every connection to :memory: is a different database
	db.SetMaxOpenConns(1)
	t.Cleanup(func() { _ = db.Close() })

	if _, err := db.Exec("PRAGMA foreign_keys = ON"); err != nil {
		t.Fatalf("failed to enable foreign keys: %v", err)
	}

	stmts, err := Statements()
	if err != nil {
		t.Fatalf("failed to read migrations: %v", err)
	}
	for _, stmt := range stmts {
		if _, err := db.Exec(stmt); err != nil {
			t.Fatalf("failed to apply %q: %v", stmt, err)
		}
	}

	return db
}

// Statements returns the Up statements of every migration, in version order, rewritten for sqlite.
func Statements() ([]string, error) {
	names, err := fs.Glob(migrations.EmbedMigrations, "*.sql")
	if err != nil {
		return nil, err
	}
	sort.Strings(names)

	var stmts []string
	for _, name := range names {
		raw, err := fs.ReadFile(migrations.EmbedMigrations, name)
		if err != nil {
			return nil, err
		}
		stmts = append(stmts, upStatements(string(raw))...)
	}

	return stmts, nil
}

func upStatements(raw string) []string {
	var (
		stmts []string
		buf   strings.Builder
		up    bool
	)

	sc := bufio.NewScanner(strings.NewReader(raw))
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		switch {
		case strings.HasPrefix(line, "-- +goose Up"):
			up = true
			continue
		case strings.HasPrefix(line, "-- +goose Down"):
			up = false
			continue
		case !up, line == "", strings.HasPrefix(line, "--"):
			continue
		}

		buf.WriteString(dialect.Replace(line))
		buf.WriteByte('\n')
		if strings.HasSuffix(line, ";") {
			stmts = append(stmts, buf.String())
			buf.Reset()
		}
	}

	return stmts
}

var (
	createTable = regexp.MustCompile(`(?is)CREATE TABLE IF NOT EXISTS (\w+) \((.*?)\n\);`)
	columnDef   = regexp.MustCompile(`^\s*(\w+)\s+(\w+)`)
)

// ColumnTypes maps every column of table, as declared by the migrations, to its postgres type.
func ColumnTypes(table string) (map[string]string, error) {
	names, err := fs.Glob(migrations.EmbedMigrations, "*.sql")
	if err != nil {
		return nil, err
	}

	for _, name := range names {
		raw, err := fs.ReadFile(migrations.EmbedMigrations, name)
		if err != nil {
			return nil, err
		}

		for _, m := range createTable.FindAllStringSubmatch(string(raw), -1) {
			if m[1] != table {
				continue
			}

			types := make(map[string]string)
			for _, line := range strings.Split(m[2], "\n") {
				def := columnDef.FindStringSubmatch(line)
				if def == nil || strings.EqualFold(def[1], "UNIQUE") || strings.EqualFold(def[1], "CHECK") {
					continue
				}
				types[def[1]] = strings.ToUpper(def[2])
			}
			return types, nil
		}
	}

	return nil, fmt.Errorf("table %s is not created by any migration", table)
}
