package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusworks/student-portal-api/internal/models"
)

// StudentRepository manages the per-student attendance rows.
type StudentRepository struct {
	db *sqlx.DB
}

// NewStudentRepository constructs a StudentRepository.
func NewStudentRepository(db *sqlx.DB) *StudentRepository {
	return &StudentRepository{db: db}
}

// GetAttendance returns the attendance counters for a username. A missing row
// reads as zero attendance; the caller cannot distinguish an unknown student.
func (r *StudentRepository) GetAttendance(ctx context.Context, username string) (*models.Attendance, error) {
	const query = `SELECT attendance_total_days, attendance_attended_days FROM student_data WHERE username = $1`
	var row models.StudentData
	if err := r.db.GetContext(ctx, &row, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return &models.Attendance{}, nil
		}
		return nil, fmt.Errorf("get attendance: %w", err)
	}
	return &models.Attendance{TotalDays: row.TotalDays, AttendedDays: row.AttendedDays}, nil
}

// ReplaceAttendance writes both counters for the username, inserting the row
// when absent. Whole-row replacement mirrors the legacy INSERT OR REPLACE.
func (r *StudentRepository) ReplaceAttendance(ctx context.Context, username string, totalDays, attendedDays int) error {
	const query = `INSERT INTO student_data (username, attendance_total_days, attendance_attended_days)
        VALUES ($1, $2, $3)
        ON CONFLICT (username)
        DO UPDATE SET attendance_total_days = EXCLUDED.attendance_total_days,
                      attendance_attended_days = EXCLUDED.attendance_attended_days`
	if _, err := r.db.ExecContext(ctx, query, username, totalDays, attendedDays); err != nil {
		return fmt.Errorf("replace attendance: %w", err)
	}
	return nil
}
