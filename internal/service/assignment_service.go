package service

import (
	"context"
	"fmt"
	"io"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusworks/student-portal-api/internal/models"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
	"github.com/campusworks/student-portal-api/pkg/storage"
)

type assignmentRepository interface {
	Create(ctx context.Context, name, details string) error
	List(ctx context.Context) ([]models.Assignment, error)
}

type submissionRepository interface {
	Create(ctx context.Context, assignmentID int, studentUsername, filePath string) error
	ListDetails(ctx context.Context) ([]models.SubmissionDetail, error)
	UpdateRemarks(ctx context.Context, id int, remarks string) error
}

type blobStore interface {
	SaveStream(filename string, r io.Reader) (string, error)
}

// CreateAssignmentRequest is the assignment-creation payload.
type CreateAssignmentRequest struct {
	Name    string `json:"name" validate:"required"`
	Details string `json:"details" validate:"required"`
}

// AssignmentService covers assignment distribution, submission intake and
// remarks.
type AssignmentService struct {
	assignments assignmentRepository
	submissions submissionRepository
	blobs       blobStore
	validator   *validator.Validate
	logger      *zap.Logger
}

// NewAssignmentService creates an AssignmentService.
func NewAssignmentService(assignments assignmentRepository, submissions submissionRepository, blobs blobStore, validate *validator.Validate, logger *zap.Logger) *AssignmentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &AssignmentService{
		assignments: assignments,
		submissions: submissions,
		blobs:       blobs,
		validator:   validate,
		logger:      logger,
	}
}

// Create stores a new assignment.
func (s *AssignmentService) Create(ctx context.Context, req CreateAssignmentRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.ErrMissingAssignment
	}
	if err := s.assignments.Create(ctx, req.Name, req.Details); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return nil
}

// List returns all assignments.
func (s *AssignmentService) List(ctx context.Context) ([]models.Assignment, error) {
	assignments, err := s.assignments.List(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return assignments, nil
}

// Submit stores the uploaded file and records the submission. The stored
// name embeds student and assignment so re-submissions with distinct original
// names never collide. Any file type is accepted here.
func (s *AssignmentService) Submit(ctx context.Context, assignmentID int, studentUsername, originalFilename string, file io.Reader) (string, error) {
	if studentUsername == "" || originalFilename == "" {
		return "", appErrors.ErrNoFileOrUsername
	}

	filename := storage.SanitizeFilename(fmt.Sprintf("%s_%d_%s", studentUsername, assignmentID, originalFilename))
	path, err := s.blobs.SaveStream(filename, file)
	if err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	if err := s.submissions.Create(ctx, assignmentID, studentUsername, path); err != nil {
		return "", appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	s.logger.Info("assignment submitted",
		zap.Int("assignment_id", assignmentID),
		zap.String("student", studentUsername),
		zap.String("file_path", path),
	)
	return path, nil
}

// ListSubmissions returns every submission joined with its assignment name.
func (s *AssignmentService) ListSubmissions(ctx context.Context) ([]models.SubmissionDetail, error) {
	details, err := s.submissions.ListDetails(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return details, nil
}

// UpdateRemarks sets remarks on a submission. Unknown ids succeed silently.
func (s *AssignmentService) UpdateRemarks(ctx context.Context, submissionID int, remarks string) error {
	if remarks == "" {
		return appErrors.ErrMissingRemarks
	}
	if err := s.submissions.UpdateRemarks(ctx, submissionID, remarks); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return nil
}
