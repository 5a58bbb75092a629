package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/lib/pq"

	"github.com/campusworks/student-portal-api/internal/models"
)

// ErrDuplicateUsername marks a unique-constraint violation on users.username.
var ErrDuplicateUsername = errors.New("duplicate username")

// UserRepository provides database access for accounts.
type UserRepository struct {
	db *sqlx.DB
}

// NewUserRepository creates a new instance of UserRepository.
func NewUserRepository(db *sqlx.DB) *UserRepository {
	return &UserRepository{db: db}
}

// FindByUsername returns a user row, or sql.ErrNoRows when absent.
func (r *UserRepository) FindByUsername(ctx context.Context, username string) (*models.User, error) {
	const query = `SELECT username, password, role, email FROM users WHERE username = $1 LIMIT 1`
	var user models.User
	if err := r.db.GetContext(ctx, &user, query, username); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, err
		}
		return nil, fmt.Errorf("find user by username: %w", err)
	}
	return &user, nil
}

// Create inserts the user and, for students, the backing student_data row in
// one transaction. A username collision surfaces as ErrDuplicateUsername.
func (r *UserRepository) Create(ctx context.Context, user *models.User) error {
	tx, err := r.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin create user: %w", err)
	}

	const insertUser = `INSERT INTO users (username, password, role, email) VALUES (:username, :password, :role, :email)`
	if _, err := tx.NamedExecContext(ctx, insertUser, user); err != nil {
		tx.Rollback() //nolint:errcheck
		if isUniqueViolation(err) {
			return ErrDuplicateUsername
		}
		return fmt.Errorf("create user: %w", err)
	}

	if models.IsStudent(user.Role) {
		const insertStudent = `INSERT INTO student_data (username) VALUES ($1) ON CONFLICT (username) DO NOTHING`
		if _, err := tx.ExecContext(ctx, insertStudent, user.Username); err != nil {
			tx.Rollback() //nolint:errcheck
			return fmt.Errorf("create student data: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit create user: %w", err)
	}
	return nil
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == "23505"
}
