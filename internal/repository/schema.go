package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
)

// Schema DDL for the six portal tables. InitSchema is destructive: every
// table is dropped and recreated, then the demo rows are seeded. It exists
// for fresh-environment setup and must never run against live data.
// Referential columns carry no FK constraints; the legacy store never
// enforced them and attendance writes accept unknown usernames.
var schemaStatements = []string{
	`DROP TABLE IF EXISTS certificates`,
	`DROP TABLE IF EXISTS submissions`,
	`DROP TABLE IF EXISTS assignments`,
	`DROP TABLE IF EXISTS marks`,
	`DROP TABLE IF EXISTS student_data`,
	`DROP TABLE IF EXISTS users`,
	`CREATE TABLE users (
        username TEXT PRIMARY KEY,
        password TEXT NOT NULL,
        role TEXT NOT NULL,
        email TEXT
    )`,
	`CREATE TABLE student_data (
        username TEXT PRIMARY KEY,
        attendance_total_days INTEGER DEFAULT 0,
        attendance_attended_days INTEGER DEFAULT 0
    )`,
	`CREATE TABLE marks (
        id SERIAL PRIMARY KEY,
        student_username TEXT,
        subject TEXT,
        marks INTEGER,
        UNIQUE (student_username, subject)
    )`,
	`CREATE TABLE assignments (
        id SERIAL PRIMARY KEY,
        assignment_name TEXT NOT NULL,
        details TEXT NOT NULL
    )`,
	`CREATE TABLE submissions (
        id SERIAL PRIMARY KEY,
        assignment_id INTEGER,
        student_username TEXT,
        file_path TEXT,
        remarks TEXT
    )`,
	`CREATE TABLE certificates (
        id SERIAL PRIMARY KEY,
        student_username TEXT,
        file_path TEXT,
        status TEXT DEFAULT 'pending',
        remarks TEXT,
        uploaded_at TEXT
    )`,
}

var seedStatements = []string{
	`INSERT INTO users (username, password, role, email) VALUES
        ('faculty1', 'pass1', 'faculty', 'faculty1@example.com'),
        ('student1', 'pass1', 'student', 'student1@example.com')
        ON CONFLICT (username) DO NOTHING`,
	`INSERT INTO student_data (username) VALUES ('student1')
        ON CONFLICT (username) DO NOTHING`,
}

// InitSchema recreates all tables and inserts the demo users. Re-running
// always converges to the same seeded state.
func InitSchema(ctx context.Context, db *sqlx.DB) error {
	tx, err := db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin schema init: %w", err)
	}
	for _, stmt := range append(append([]string{}, schemaStatements...), seedStatements...) {
		if _, err := tx.ExecContext(ctx, stmt); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("init schema: %w", err)
		}
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit schema init: %w", err)
	}
	return nil
}
