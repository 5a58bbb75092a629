package service

import (
	"context"

	"github.com/go-playground/validator/v10"
	"go.uber.org/zap"

	"github.com/campusworks/student-portal-api/internal/models"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
)

type markRepository interface {
	MapByStudent(ctx context.Context, username string) (map[string]int, error)
	Upsert(ctx context.Context, studentUsername, subject string, marks int) error
}

type studentRepository interface {
	GetAttendance(ctx context.Context, username string) (*models.Attendance, error)
	ReplaceAttendance(ctx context.Context, username string, totalDays, attendedDays int) error
}

// SaveMarkRequest upserts one subject mark. Marks is a pointer so that an
// explicit 0 is distinguishable from an absent field.
type SaveMarkRequest struct {
	StudentUsername string `json:"student_username" validate:"required"`
	Subject         string `json:"subject" validate:"required"`
	Marks           *int   `json:"marks" validate:"required"`
}

// UpdateAttendanceRequest replaces both attendance counters; 0 is a valid
// value for either, so both use null-checked pointers.
type UpdateAttendanceRequest struct {
	TotalDays    *int `json:"totalDays" validate:"required"`
	AttendedDays *int `json:"attendedDays" validate:"required"`
}

// StudentService covers marks and attendance for individual students.
type StudentService struct {
	marks     markRepository
	students  studentRepository
	validator *validator.Validate
	logger    *zap.Logger
}

// NewStudentService creates a StudentService.
func NewStudentService(marks markRepository, students studentRepository, validate *validator.Validate, logger *zap.Logger) *StudentService {
	if logger == nil {
		logger = zap.NewNop()
	}
	if validate == nil {
		validate = validator.New()
	}
	return &StudentService{marks: marks, students: students, validator: validate, logger: logger}
}

// Marks returns subject -> marks for a student; empty map when none.
func (s *StudentService) Marks(ctx context.Context, username string) (map[string]int, error) {
	marks, err := s.marks.MapByStudent(ctx, username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return marks, nil
}

// SaveMark upserts the mark for (student, subject); last write wins.
func (s *StudentService) SaveMark(ctx context.Context, req SaveMarkRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.ErrMissingFields
	}
	if err := s.marks.Upsert(ctx, req.StudentUsername, req.Subject, *req.Marks); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return nil
}

// Attendance returns the counters for a username, zeroes when no row exists.
func (s *StudentService) Attendance(ctx context.Context, username string) (*models.Attendance, error) {
	attendance, err := s.students.GetAttendance(ctx, username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return attendance, nil
}

// UpdateAttendance replaces the whole attendance row for a username.
func (s *StudentService) UpdateAttendance(ctx context.Context, username string, req UpdateAttendanceRequest) error {
	if err := s.validator.Struct(req); err != nil {
		return appErrors.ErrMissingFields
	}
	if err := s.students.ReplaceAttendance(ctx, username, *req.TotalDays, *req.AttendedDays); err != nil {
		return appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return nil
}
