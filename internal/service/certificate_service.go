package service

import (
	"context"
	"fmt"
	"io"
	"time"

	"go.uber.org/zap"

	"github.com/campusworks/student-portal-api/internal/models"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
	"github.com/campusworks/student-portal-api/pkg/storage"
)

type certificateRepository interface {
	Create(ctx context.Context, studentUsername, filePath, uploadedAt string) error
	ListByStudent(ctx context.Context, username, status string) ([]models.StudentCertificate, error)
	ListAll(ctx context.Context, status string) ([]models.Certificate, error)
	UpdateStatus(ctx context.Context, id int, status, remarks string) error
}

// UpdateCertificateStatusRequest carries the review decision. Remarks default
// to empty and overwrite any prior value.
type UpdateCertificateStatusRequest struct {
	Status  string `json:"status"`
	Remarks string `json:"remarks"`
}

// CertificateService covers certificate upload, listing and review.
type CertificateService struct {
	certificates certificateRepository
	blobs        blobStore
	allowedExts  map[string]struct{}
	logger       *zap.Logger
}

// NewCertificateService creates a CertificateService. allowedExtensions is
// the lowercased extension allow-list from configuration.
func NewCertificateService(certificates certificateRepository, blobs blobStore, allowedExtensions []string, logger *zap.Logger) *CertificateService {
	if logger == nil {
		logger = zap.NewNop()
	}
	exts := make(map[string]struct{}, len(allowedExtensions))
	for _, ext := range allowedExtensions {
		exts[ext] = struct{}{}
	}
	return &CertificateService{certificates: certificates, blobs: blobs, allowedExts: exts, logger: logger}
}

// Upload validates the extension, stores the file and records a pending
// certificate. Validation happens before any byte is written.
func (s *CertificateService) Upload(ctx context.Context, studentUsername, originalFilename string, file io.Reader) (string, error) {
	if studentUsername == "" || originalFilename == "" {
		return "", appErrors.ErrMissingCertUpload
	}
	if _, ok := s.allowedExts[storage.Extension(originalFilename)]; !ok {
		return "", appErrors.ErrFileTypeNotAllowed
	}

	now := time.Now().UTC()
	filename := storage.SanitizeFilename(fmt.Sprintf("%s_cert_%d_%s", studentUsername, now.Unix(), originalFilename))
	path, err := s.blobs.SaveStream(filename, file)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := s.certificates.Create(ctx, studentUsername, path, now.Format(time.RFC3339)); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("certificate uploaded", zap.String("student", studentUsername), zap.String("file_path", path))
	return path, nil
}

// List returns the role-appropriate certificate view. Students see their own
// rows without the username column; faculty sees everything. The status
// filter is passed through unvalidated, so unknown values just match nothing.
func (s *CertificateService) List(ctx context.Context, role, username, status string) (interface{}, error) {
	switch {
	case role == string(models.RoleStudent) && username != "":
		certs, err := s.certificates.ListByStudent(ctx, username, status)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return certs, nil
	case role == string(models.RoleFaculty):
		certs, err := s.certificates.ListAll(ctx, status)
		if err != nil {
			return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
		}
		return certs, nil
	default:
		return nil, appErrors.ErrInvalidQuery
	}
}

// UpdateStatus applies a review decision by id. Unknown ids succeed silently.
func (s *CertificateService) UpdateStatus(ctx context.Context, certID int, req UpdateCertificateStatusRequest) error {
	if !models.ValidCertificateStatus(req.Status) {
		return appErrors.ErrInvalidStatus
	}
	if err := s.certificates.UpdateStatus(ctx, certID, req.Status, req.Remarks); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return nil
}
