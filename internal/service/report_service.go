package service

import (
	"context"
	"fmt"
	"sort"

	"go.uber.org/zap"

	"github.com/campusworks/student-portal-api/internal/models"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
	"github.com/campusworks/student-portal-api/pkg/export"
)

type reportMarkRepository interface {
	MapByStudent(ctx context.Context, username string) (map[string]int, error)
	ListAll(ctx context.Context) ([]models.Mark, error)
}

// ReportService renders downloadable summaries from marks and attendance.
type ReportService struct {
	marks    reportMarkRepository
	students studentRepository
	logger   *zap.Logger
}

// NewReportService creates a ReportService.
func NewReportService(marks reportMarkRepository, students studentRepository, logger *zap.Logger) *ReportService {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &ReportService{marks: marks, students: students, logger: logger}
}

// StudentReport renders a PDF with the student's marks table and attendance
// counters. Students with no data get an empty table and zero attendance.
func (s *ReportService) StudentReport(ctx context.Context, username string) ([]byte, error) {
	marks, err := s.marks.MapByStudent(ctx, username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	attendance, err := s.students.GetAttendance(ctx, username)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	marksTable := export.Table{
		Title:   fmt.Sprintf("Marks - %s", username),
		Columns: []string{"Subject", "Marks"},
	}
	for _, subject := range sortedKeys(marks) {
		marksTable.Rows = append(marksTable.Rows, []string{subject, fmt.Sprintf("%d", marks[subject])})
	}

	attendanceTable := export.Table{
		Title:   "Attendance",
		Columns: []string{"Total Days", "Attended Days"},
		Rows: [][]string{{
			fmt.Sprintf("%d", attendance.TotalDays),
			fmt.Sprintf("%d", attendance.AttendedDays),
		}},
	}

	pdf, err := export.PDF(marksTable, attendanceTable)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return pdf, nil
}

// MarksCSV exports every mark row for faculty-side tooling.
func (s *ReportService) MarksCSV(ctx context.Context) ([]byte, error) {
	marks, err := s.marks.ListAll(ctx)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}

	table := export.Table{Columns: []string{"student_username", "subject", "marks"}}
	for _, mark := range marks {
		table.Rows = append(table.Rows, []string{mark.StudentUsername, mark.Subject, fmt.Sprintf("%d", mark.Marks)})
	}

	csv, err := export.CSV(table)
	if err != nil {
		return nil, appErrors.Wrap(err, appErrors.ErrInternal.Code, appErrors.ErrInternal.Status, appErrors.ErrInternal.Message)
	}
	return csv, nil
}

func sortedKeys(m map[string]int) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
