package repository

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"

	"github.com/campusworks/student-portal-api/internal/models"
)

// CertificateRepository persists certificate uploads and their review state.
type CertificateRepository struct {
	db *sqlx.DB
}

// NewCertificateRepository constructs a CertificateRepository.
func NewCertificateRepository(db *sqlx.DB) *CertificateRepository {
	return &CertificateRepository{db: db}
}

// Create inserts a pending certificate row.
func (r *CertificateRepository) Create(ctx context.Context, studentUsername, filePath, uploadedAt string) error {
	const query = `INSERT INTO certificates (student_username, file_path, status, uploaded_at) VALUES ($1, $2, $3, $4)`
	if _, err := r.db.ExecContext(ctx, query, studentUsername, filePath, string(models.CertificatePending), uploadedAt); err != nil {
		return fmt.Errorf("create certificate: %w", err)
	}
	return nil
}

// ListByStudent returns one student's certificates, optionally filtered by
// status. The filter is applied verbatim; unknown values match nothing.
func (r *CertificateRepository) ListByStudent(ctx context.Context, username, status string) ([]models.StudentCertificate, error) {
	query := `SELECT id, file_path, status, remarks, uploaded_at FROM certificates WHERE student_username = $1`
	args := []interface{}{username}
	if status != "" {
		query += ` AND status = $2`
		args = append(args, status)
	}
	query += ` ORDER BY id`
	certs := []models.StudentCertificate{}
	if err := r.db.SelectContext(ctx, &certs, query, args...); err != nil {
		return nil, fmt.Errorf("list student certificates: %w", err)
	}
	return certs, nil
}

// ListAll returns every certificate (faculty view), optionally filtered by
// status.
func (r *CertificateRepository) ListAll(ctx context.Context, status string) ([]models.Certificate, error) {
	query := `SELECT id, student_username, file_path, status, remarks, uploaded_at FROM certificates`
	var args []interface{}
	if status != "" {
		query += ` WHERE status = $1`
		args = append(args, status)
	}
	query += ` ORDER BY id`
	certs := []models.Certificate{}
	if err := r.db.SelectContext(ctx, &certs, query, args...); err != nil {
		return nil, fmt.Errorf("list certificates: %w", err)
	}
	return certs, nil
}

// UpdateStatus sets status and remarks for a certificate by id. Remarks
// overwrite whatever was there. Unknown ids are a silent no-op.
func (r *CertificateRepository) UpdateStatus(ctx context.Context, id int, status, remarks string) error {
	const query = `UPDATE certificates SET status = $2, remarks = $3 WHERE id = $1`
	if _, err := r.db.ExecContext(ctx, query, id, status, remarks); err != nil {
		return fmt.Errorf("update certificate status: %w", err)
	}
	return nil
}
