package repository

import (
	"context"
	"regexp"
	"testing"

	sqlmock "github.com/DATA-DOG/go-sqlmock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateAssignment(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectExec("INSERT INTO assignments").
		WithArgs("Week 1", "Read chapter one").
		WillReturnResult(sqlmock.NewResult(1, 1))

	err := repo.Create(context.Background(), "Week 1", "Read chapter one")
	require.NoError(t, err)
	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestListAssignments(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	rows := sqlmock.NewRows([]string{"id", "assignment_name", "details"}).
		AddRow(1, "Week 1", "Read chapter one").
		AddRow(2, "Week 2", "Solve the exercises")
	mock.ExpectQuery(regexp.QuoteMeta("SELECT id, assignment_name, details FROM assignments ORDER BY id")).
		WillReturnRows(rows)

	assignments, err := repo.List(context.Background())
	require.NoError(t, err)
	require.Len(t, assignments, 2)
	assert.Equal(t, "Week 1", assignments[0].Name)
	assert.Equal(t, 2, assignments[1].ID)
}

func TestListAssignmentsEmpty(t *testing.T) {
	db, mock, cleanup := newMock(t)
	defer cleanup()
	repo := NewAssignmentRepository(db)

	mock.ExpectQuery("SELECT id, assignment_name, details FROM assignments").
		WillReturnRows(sqlmock.NewRows([]string{"id", "assignment_name", "details"}))

	assignments, err := repo.List(context.Background())
	require.NoError(t, err)
	assert.NotNil(t, assignments)
	assert.Empty(t, assignments)
}
