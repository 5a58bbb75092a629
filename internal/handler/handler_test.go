package handler

import (
	"bytes"
	"context"
	"database/sql"
	"encoding/json"
	"io"
	"mime/multipart"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/student-portal-api/internal/models"
	"github.com/campusworks/student-portal-api/internal/repository"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func performJSON(t *testing.T, r *gin.Engine, method, path, body string) *httptest.ResponseRecorder {
	t.Helper()
	var reader io.Reader
	if body != "" {
		reader = bytes.NewBufferString(body)
	}
	req := httptest.NewRequest(method, path, reader)
	if body != "" {
		req.Header.Set("Content-Type", "application/json")
	}
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decodeBody(t *testing.T, w *httptest.ResponseRecorder) map[string]interface{} {
	t.Helper()
	var body map[string]interface{}
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &body))
	return body
}

func multipartBody(t *testing.T, fields map[string]string, fileField, filename string, content []byte) (*bytes.Buffer, string) {
	t.Helper()
	buf := &bytes.Buffer{}
	writer := multipart.NewWriter(buf)
	for key, value := range fields {
		require.NoError(t, writer.WriteField(key, value))
	}
	if fileField != "" {
		part, err := writer.CreateFormFile(fileField, filename)
		require.NoError(t, err)
		_, err = part.Write(content)
		require.NoError(t, err)
	}
	require.NoError(t, writer.Close())
	return buf, writer.FormDataContentType()
}

// In-memory fakes for the repository layer, shared across handler tests.

type fakeUserRepo struct {
	users map[string]*models.User
}

func (f *fakeUserRepo) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	if user, ok := f.users[username]; ok {
		copy := *user
		return &copy, nil
	}
	return nil, sql.ErrNoRows
}

func (f *fakeUserRepo) Create(ctx context.Context, user *models.User) error {
	if f.users == nil {
		f.users = make(map[string]*models.User)
	}
	if _, ok := f.users[user.Username]; ok {
		return repository.ErrDuplicateUsername
	}
	copy := *user
	f.users[user.Username] = &copy
	return nil
}

type fakeAssignmentRepo struct {
	assignments []models.Assignment
}

func (f *fakeAssignmentRepo) Create(ctx context.Context, name, details string) error {
	f.assignments = append(f.assignments, models.Assignment{ID: len(f.assignments) + 1, Name: name, Details: details})
	return nil
}

func (f *fakeAssignmentRepo) List(ctx context.Context) ([]models.Assignment, error) {
	if f.assignments == nil {
		return []models.Assignment{}, nil
	}
	return f.assignments, nil
}

type fakeSubmissionRepo struct {
	submissions []models.Submission
	remarks     map[int]string
}

func (f *fakeSubmissionRepo) Create(ctx context.Context, assignmentID int, studentUsername, filePath string) error {
	f.submissions = append(f.submissions, models.Submission{
		ID:              len(f.submissions) + 1,
		AssignmentID:    assignmentID,
		StudentUsername: studentUsername,
		FilePath:        filePath,
	})
	return nil
}

func (f *fakeSubmissionRepo) ListDetails(ctx context.Context) ([]models.SubmissionDetail, error) {
	return []models.SubmissionDetail{}, nil
}

func (f *fakeSubmissionRepo) UpdateRemarks(ctx context.Context, id int, remarks string) error {
	if f.remarks == nil {
		f.remarks = make(map[int]string)
	}
	f.remarks[id] = remarks
	return nil
}

type fakeMarkRepo struct {
	byStudent map[string]map[string]int
	all       []models.Mark
}

func (f *fakeMarkRepo) MapByStudent(ctx context.Context, username string) (map[string]int, error) {
	if marks, ok := f.byStudent[username]; ok {
		return marks, nil
	}
	return map[string]int{}, nil
}

func (f *fakeMarkRepo) Upsert(ctx context.Context, studentUsername, subject string, marks int) error {
	if f.byStudent == nil {
		f.byStudent = make(map[string]map[string]int)
	}
	if f.byStudent[studentUsername] == nil {
		f.byStudent[studentUsername] = make(map[string]int)
	}
	f.byStudent[studentUsername][subject] = marks
	return nil
}

func (f *fakeMarkRepo) ListAll(ctx context.Context) ([]models.Mark, error) {
	return f.all, nil
}

type fakeStudentRepo struct {
	attendance map[string]*models.Attendance
}

func (f *fakeStudentRepo) GetAttendance(ctx context.Context, username string) (*models.Attendance, error) {
	if a, ok := f.attendance[username]; ok {
		return a, nil
	}
	return &models.Attendance{}, nil
}

func (f *fakeStudentRepo) ReplaceAttendance(ctx context.Context, username string, totalDays, attendedDays int) error {
	if f.attendance == nil {
		f.attendance = make(map[string]*models.Attendance)
	}
	f.attendance[username] = &models.Attendance{TotalDays: totalDays, AttendedDays: attendedDays}
	return nil
}

type fakeCertificateRepo struct {
	certificates []models.Certificate
	statuses     map[int][2]string
}

func (f *fakeCertificateRepo) Create(ctx context.Context, studentUsername, filePath, uploadedAt string) error {
	f.certificates = append(f.certificates, models.Certificate{
		ID:              len(f.certificates) + 1,
		StudentUsername: studentUsername,
		FilePath:        filePath,
		Status:          string(models.CertificatePending),
		UploadedAt:      uploadedAt,
	})
	return nil
}

func (f *fakeCertificateRepo) ListByStudent(ctx context.Context, username, status string) ([]models.StudentCertificate, error) {
	out := []models.StudentCertificate{}
	for _, cert := range f.certificates {
		if cert.StudentUsername != username {
			continue
		}
		if status != "" && cert.Status != status {
			continue
		}
		out = append(out, models.StudentCertificate{
			ID:         cert.ID,
			FilePath:   cert.FilePath,
			Status:     cert.Status,
			Remarks:    cert.Remarks,
			UploadedAt: cert.UploadedAt,
		})
	}
	return out, nil
}

func (f *fakeCertificateRepo) ListAll(ctx context.Context, status string) ([]models.Certificate, error) {
	out := []models.Certificate{}
	for _, cert := range f.certificates {
		if status != "" && cert.Status != status {
			continue
		}
		out = append(out, cert)
	}
	return out, nil
}

func (f *fakeCertificateRepo) UpdateStatus(ctx context.Context, id int, status, remarks string) error {
	if f.statuses == nil {
		f.statuses = make(map[int][2]string)
	}
	f.statuses[id] = [2]string{status, remarks}
	return nil
}

type fakeBlobStore struct {
	saved map[string][]byte
}

func (f *fakeBlobStore) SaveStream(filename string, r io.Reader) (string, error) {
	if f.saved == nil {
		f.saved = make(map[string][]byte)
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", err
	}
	f.saved[filename] = data
	return "uploads/" + filename, nil
}

func requireStatus(t *testing.T, w *httptest.ResponseRecorder, want int) {
	t.Helper()
	require.Equal(t, want, w.Code, w.Body.String())
}
