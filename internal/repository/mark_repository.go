package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusworks/student-portal-api/internal/models"
)

// MarkRepository handles subject marks persistence.
type MarkRepository struct {
	db *sqlx.DB
}

// NewMarkRepository creates a new mark repository.
func NewMarkRepository(db *sqlx.DB) *MarkRepository {
	return &MarkRepository{db: db}
}

// MapByStudent returns subject -> marks for one student. The map is non-nil
// even when the student has no marks, so it serializes as {}.
func (r *MarkRepository) MapByStudent(ctx context.Context, username string) (map[string]int, error) {
	const query = `SELECT subject, marks FROM marks WHERE student_username = $1`
	rows := []models.Mark{}
	if err := r.db.SelectContext(ctx, &rows, query, username); err != nil {
		return nil, fmt.Errorf("list marks: %w", err)
	}
	result := make(map[string]int, len(rows))
	for _, row := range rows {
		result[row.Subject] = row.Marks
	}
	return result, nil
}

// Upsert writes the mark for (student, subject) atomically. The legacy
// read-then-write pair allowed a duplicate-row race; the conflict clause
// closes it while keeping last-write-wins semantics.
func (r *MarkRepository) Upsert(ctx context.Context, studentUsername, subject string, marks int) error {
	const query = `INSERT INTO marks (student_username, subject, marks)
        VALUES ($1, $2, $3)
        ON CONFLICT (student_username, subject)
        DO UPDATE SET marks = EXCLUDED.marks`
	if _, err := r.db.ExecContext(ctx, query, studentUsername, subject, marks); err != nil {
		return fmt.Errorf("upsert mark: %w", err)
	}
	return nil
}

// ListAll returns every mark row, used by the faculty CSV export.
func (r *MarkRepository) ListAll(ctx context.Context) ([]models.Mark, error) {
	const query = `SELECT id, student_username, subject, marks FROM marks ORDER BY student_username, subject`
	marks := []models.Mark{}
	if err := r.db.SelectContext(ctx, &marks, query); err != nil {
		return nil, fmt.Errorf("list all marks: %w", err)
	}
	return marks, nil
}
