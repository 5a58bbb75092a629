package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusworks/student-portal-api/internal/models"
)

// SubmissionRepository persists assignment submissions.
type SubmissionRepository struct {
	db *sqlx.DB
}

// NewSubmissionRepository constructs a SubmissionRepository.
func NewSubmissionRepository(db *sqlx.DB) *SubmissionRepository {
	return &SubmissionRepository{db: db}
}

// Create inserts a submission referencing the stored file path.
func (r *SubmissionRepository) Create(ctx context.Context, assignmentID int, studentUsername, filePath string) error {
	const query = `INSERT INTO submissions (assignment_id, student_username, file_path) VALUES ($1, $2, $3)`
	if _, err := r.db.ExecContext(ctx, query, assignmentID, studentUsername, filePath); err != nil {
		return fmt.Errorf("create submission: %w", err)
	}
	return nil
}

// ListDetails returns every submission joined with its assignment name. The
// join drops submissions whose assignment row is missing, matching the legacy
// inner join.
func (r *SubmissionRepository) ListDetails(ctx context.Context) ([]models.SubmissionDetail, error) {
	const query = `SELECT s.id, a.assignment_name, s.student_username, s.file_path, s.remarks
        FROM submissions s
        JOIN assignments a ON s.assignment_id = a.id
        ORDER BY s.id`
	details := []models.SubmissionDetail{}
	if err := r.db.SelectContext(ctx, &details, query); err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}
	return details, nil
}

// UpdateRemarks sets the remarks for a submission by id. Unknown ids are a
// silent no-op; the legacy endpoint never checked existence.
func (r *SubmissionRepository) UpdateRemarks(ctx context.Context, id int, remarks string) error {
	const query = `UPDATE submissions SET remarks = $2 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, remarks); err != nil {
		return fmt.Errorf("update submission remarks: %w", err)
	}
	return nil
}
