package service

import (
	"context"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/student-portal-api/internal/models"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
)

var testAllowedExtensions = []string{"pdf", "png", "jpg", "jpeg", "doc", "docx"}

type mockCertificateRepo struct {
	created []models.Certificate
	mine    []models.StudentCertificate
	all     []models.Certificate
	updated map[int][2]string
}

func (m *mockCertificateRepo) Create(ctx context.Context, studentUsername, filePath, uploadedAt string) error {
	m.created = append(m.created, models.Certificate{
		StudentUsername: studentUsername,
		FilePath:        filePath,
		Status:          string(models.CertificatePending),
		UploadedAt:      uploadedAt,
	})
	return nil
}

func (m *mockCertificateRepo) ListByStudent(ctx context.Context, username, status string) ([]models.StudentCertificate, error) {
	return m.mine, nil
}

func (m *mockCertificateRepo) ListAll(ctx context.Context, status string) ([]models.Certificate, error) {
	return m.all, nil
}

func (m *mockCertificateRepo) UpdateStatus(ctx context.Context, id int, status, remarks string) error {
	if m.updated == nil {
		m.updated = make(map[int][2]string)
	}
	m.updated[id] = [2]string{status, remarks}
	return nil
}

func TestUploadCertificateMissingUsername(t *testing.T) {
	svc := NewCertificateService(&mockCertificateRepo{}, &mockBlobStore{}, testAllowedExtensions, nil)
	_, err := svc.Upload(context.Background(), "", "award.pdf", strings.NewReader("x"))
	assert.ErrorIs(t, err, appErrors.ErrMissingCertUpload)
}

func TestUploadCertificateRejectsDisallowedExtensionBeforeWrite(t *testing.T) {
	repo := &mockCertificateRepo{}
	blobs := &mockBlobStore{}
	svc := NewCertificateService(repo, blobs, testAllowedExtensions, nil)

	_, err := svc.Upload(context.Background(), "s2", "payload.exe", strings.NewReader("x"))
	assert.ErrorIs(t, err, appErrors.ErrFileTypeNotAllowed)
	assert.Empty(t, blobs.saved)
	assert.Empty(t, repo.created)
}

func TestUploadCertificateExtensionCheckIsCaseInsensitive(t *testing.T) {
	svc := NewCertificateService(&mockCertificateRepo{}, &mockBlobStore{}, testAllowedExtensions, nil)
	_, err := svc.Upload(context.Background(), "s2", "Award.PDF", strings.NewReader("x"))
	assert.NoError(t, err)
}

func TestUploadCertificateRecordsPendingRow(t *testing.T) {
	repo := &mockCertificateRepo{}
	svc := NewCertificateService(repo, &mockBlobStore{}, testAllowedExtensions, nil)

	before := time.Now().UTC().Unix()
	path, err := svc.Upload(context.Background(), "s2", "award.pdf", strings.NewReader("x"))
	after := time.Now().UTC().Unix()
	require.NoError(t, err)

	require.Len(t, repo.created, 1)
	row := repo.created[0]
	assert.Equal(t, "s2", row.StudentUsername)
	assert.Equal(t, path, row.FilePath)
	assert.Equal(t, "pending", row.Status)

	uploadedAt, err := time.Parse(time.RFC3339, row.UploadedAt)
	require.NoError(t, err)
	assert.GreaterOrEqual(t, uploadedAt.Unix(), before)
	assert.LessOrEqual(t, uploadedAt.Unix(), after)

	// Stored name embeds owner, a timestamp and the original name.
	assert.True(t, strings.HasPrefix(path, "uploads/s2_cert_"), path)
	assert.True(t, strings.HasSuffix(path, "_award.pdf"), path)
	var stamp int64
	_, scanErr := fmt.Sscanf(strings.TrimPrefix(path, "uploads/s2_cert_"), "%d_award.pdf", &stamp)
	require.NoError(t, scanErr)
	assert.GreaterOrEqual(t, stamp, before)
}

func TestListCertificatesStudentBranch(t *testing.T) {
	repo := &mockCertificateRepo{mine: []models.StudentCertificate{{ID: 1, Status: "pending"}}}
	svc := NewCertificateService(repo, &mockBlobStore{}, testAllowedExtensions, nil)

	out, err := svc.List(context.Background(), "student", "s2", "")
	require.NoError(t, err)
	certs, ok := out.([]models.StudentCertificate)
	require.True(t, ok)
	assert.Len(t, certs, 1)
}

func TestListCertificatesStudentWithoutUsernameRejected(t *testing.T) {
	svc := NewCertificateService(&mockCertificateRepo{}, &mockBlobStore{}, testAllowedExtensions, nil)
	_, err := svc.List(context.Background(), "student", "", "")
	assert.ErrorIs(t, err, appErrors.ErrInvalidQuery)
}

func TestListCertificatesFacultyBranch(t *testing.T) {
	repo := &mockCertificateRepo{all: []models.Certificate{{ID: 1, StudentUsername: "s2"}}}
	svc := NewCertificateService(repo, &mockBlobStore{}, testAllowedExtensions, nil)

	out, err := svc.List(context.Background(), "faculty", "", "pending")
	require.NoError(t, err)
	certs, ok := out.([]models.Certificate)
	require.True(t, ok)
	assert.Len(t, certs, 1)
}

func TestListCertificatesUnknownRoleRejected(t *testing.T) {
	svc := NewCertificateService(&mockCertificateRepo{}, &mockBlobStore{}, testAllowedExtensions, nil)
	_, err := svc.List(context.Background(), "admin", "", "")
	assert.ErrorIs(t, err, appErrors.ErrInvalidQuery)
}

func TestUpdateCertificateStatusInvalid(t *testing.T) {
	svc := NewCertificateService(&mockCertificateRepo{}, &mockBlobStore{}, testAllowedExtensions, nil)
	err := svc.UpdateStatus(context.Background(), 1, UpdateCertificateStatusRequest{Status: "Approved"})
	assert.ErrorIs(t, err, appErrors.ErrInvalidStatus)
}

func TestUpdateCertificateStatusPersists(t *testing.T) {
	repo := &mockCertificateRepo{}
	svc := NewCertificateService(repo, &mockBlobStore{}, testAllowedExtensions, nil)

	err := svc.UpdateStatus(context.Background(), 4, UpdateCertificateStatusRequest{Status: "rejected", Remarks: "blurry scan"})
	require.NoError(t, err)
	assert.Equal(t, [2]string{"rejected", "blurry scan"}, repo.updated[4])
}
