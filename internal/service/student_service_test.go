package service

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/campusworks/student-portal-api/internal/models"
	appErrors "github.com/campusworks/student-portal-api/pkg/errors"
)

type mockMarkRepo struct {
	byStudent map[string]map[string]int
	upserts   []models.Mark
	all       []models.Mark
}

func (m *mockMarkRepo) MapByStudent(ctx context.Context, username string) (map[string]int, error) {
	if marks, ok := m.byStudent[username]; ok {
		return marks, nil
	}
	return map[string]int{}, nil
}

func (m *mockMarkRepo) Upsert(ctx context.Context, studentUsername, subject string, marks int) error {
	m.upserts = append(m.upserts, models.Mark{StudentUsername: studentUsername, Subject: subject, Marks: marks})
	return nil
}

func (m *mockMarkRepo) ListAll(ctx context.Context) ([]models.Mark, error) {
	return m.all, nil
}

type mockStudentRepo struct {
	attendance map[string]*models.Attendance
	replaced   map[string][2]int
}

func (m *mockStudentRepo) GetAttendance(ctx context.Context, username string) (*models.Attendance, error) {
	if a, ok := m.attendance[username]; ok {
		return a, nil
	}
	return &models.Attendance{}, nil
}

func (m *mockStudentRepo) ReplaceAttendance(ctx context.Context, username string, totalDays, attendedDays int) error {
	if m.replaced == nil {
		m.replaced = make(map[string][2]int)
	}
	m.replaced[username] = [2]int{totalDays, attendedDays}
	return nil
}

func intPtr(v int) *int { return &v }

func TestSaveMarkZeroIsValid(t *testing.T) {
	marks := &mockMarkRepo{}
	svc := NewStudentService(marks, &mockStudentRepo{}, nil, nil)

	err := svc.SaveMark(context.Background(), SaveMarkRequest{
		StudentUsername: "s2",
		Subject:         "math",
		Marks:           intPtr(0),
	})
	require.NoError(t, err)
	require.Len(t, marks.upserts, 1)
	assert.Equal(t, 0, marks.upserts[0].Marks)
}

func TestSaveMarkNilMarksRejected(t *testing.T) {
	svc := NewStudentService(&mockMarkRepo{}, &mockStudentRepo{}, nil, nil)
	err := svc.SaveMark(context.Background(), SaveMarkRequest{StudentUsername: "s2", Subject: "math"})
	assert.ErrorIs(t, err, appErrors.ErrMissingFields)
}

func TestMarksUnknownStudentIsEmptyMap(t *testing.T) {
	svc := NewStudentService(&mockMarkRepo{}, &mockStudentRepo{}, nil, nil)
	marks, err := svc.Marks(context.Background(), "ghost")
	require.NoError(t, err)
	assert.NotNil(t, marks)
	assert.Empty(t, marks)
}

func TestAttendanceDefaultsToZeroes(t *testing.T) {
	svc := NewStudentService(&mockMarkRepo{}, &mockStudentRepo{}, nil, nil)
	attendance, err := svc.Attendance(context.Background(), "ghost")
	require.NoError(t, err)
	assert.Equal(t, 0, attendance.TotalDays)
	assert.Equal(t, 0, attendance.AttendedDays)
}

func TestUpdateAttendanceMissingCounter(t *testing.T) {
	svc := NewStudentService(&mockMarkRepo{}, &mockStudentRepo{}, nil, nil)
	err := svc.UpdateAttendance(context.Background(), "s2", UpdateAttendanceRequest{TotalDays: intPtr(10)})
	assert.ErrorIs(t, err, appErrors.ErrMissingFields)
}

func TestUpdateAttendanceReplacesBothCounters(t *testing.T) {
	students := &mockStudentRepo{}
	svc := NewStudentService(&mockMarkRepo{}, students, nil, nil)

	err := svc.UpdateAttendance(context.Background(), "s2", UpdateAttendanceRequest{
		TotalDays:    intPtr(20),
		AttendedDays: intPtr(0),
	})
	require.NoError(t, err)
	assert.Equal(t, [2]int{20, 0}, students.replaced["s2"])
}
