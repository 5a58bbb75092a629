package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusworks/student-portal-api/internal/models"
)

// AssignmentRepository persists assignments.
type AssignmentRepository struct {
	db *sqlx.DB
}

// NewAssignmentRepository constructs an AssignmentRepository.
func NewAssignmentRepository(db *sqlx.DB) *AssignmentRepository {
	return &AssignmentRepository{db: db}
}

// Create inserts an assignment row.
func (r *AssignmentRepository) Create(ctx context.Context, name, details string) error {
	const query = `INSERT INTO assignments (assignment_name, details) VALUES ($1, $2)`
	if _, err := r.db.ExecContext(ctx, query, name, details); err != nil {
		return fmt.Errorf("create assignment: %w", err)
	}
	return nil
}

// List returns all assignments in insertion order.
func (r *AssignmentRepository) List(ctx context.Context) ([]models.Assignment, error) {
	const query = `SELECT id, assignment_name, details FROM assignments ORDER BY id`
	assignments := []models.Assignment{}
	if err := r.db.SelectContext(ctx, &assignments, query); err != nil {
		return nil, fmt.Errorf("list assignments: %w", err)
	}
	return assignments, nil
}
