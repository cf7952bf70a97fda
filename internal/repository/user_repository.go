package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"expense-tracker-be/internal/entities"

	"github.com/lib/pq"
)

// ErrNotFound is returned when a query matches no rows.
var ErrNotFound = errors.New("record not found")

// ErrDuplicate is returned when an insert violates a unique constraint.
var ErrDuplicate = errors.New("duplicate record")

const pqUniqueViolation = "23505"

// isUniqueViolation reports whether err is a Postgres unique constraint error.
func isUniqueViolation(err error) bool {
	var pqErr *pq.Error
	return errors.As(err, &pqErr) && pqErr.Code == pqUniqueViolation
}

const userColumns = "id, name, email, phone, password_hash, profession, created_at, updated_at"

// UserRepository defines the interface for user database operations
type UserRepository interface {
	Create(ctx context.Context, user *entities.User) (*entities.User, error)
	FindByEmailOrPhone(ctx context.Context, email, phone string) (*entities.User, error)
	FindByKey(ctx context.Context, key string) (*entities.User, error)
	FindByID(ctx context.Context, id string) (*entities.User, error)
}

type userRepository struct {
	db *sql.DB
}

// NewUserRepository creates a new user repository
func NewUserRepository(db *sql.DB) UserRepository {
	return &userRepository{db: db}
}

func (r *userRepository) Create(ctx context.Context, user *entities.User) (*entities.User, error) {
	query := `
		INSERT INTO users (name, email, phone, password_hash, profession)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING ` + userColumns

	created, err := scanUser(r.db.QueryRowContext(ctx, query,
		user.Name, user.Email, user.Phone, user.PasswordHash, user.Profession))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create user: %w", err)
	}
	return created, nil
}

// FindByEmailOrPhone finds a user matching either unique key; used by the
// signup duplicate pre-check.
func (r *userRepository) FindByEmailOrPhone(ctx context.Context, email, phone string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR phone = $2`
	return r.findOne(ctx, query, email, phone)
}

// FindByKey finds a user by email or phone number in a single lookup; used by
// login where the client supplies one opaque key.
func (r *userRepository) FindByKey(ctx context.Context, key string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1 OR phone = $1`
	return r.findOne(ctx, query, key)
}

func (r *userRepository) FindByID(ctx context.Context, id string) (*entities.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return r.findOne(ctx, query, id)
}

func (r *userRepository) findOne(ctx context.Context, query string, args ...interface{}) (*entities.User, error) {
	user, err := scanUser(r.db.QueryRowContext(ctx, query, args...))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find user: %w", err)
	}
	return user, nil
}

func scanUser(row *sql.Row) (*entities.User, error) {
	var user entities.User
	err := row.Scan(
		&user.ID,
		&user.Name,
		&user.Email,
		&user.Phone,
		&user.PasswordHash,
		&user.Profession,
		&user.CreatedAt,
		&user.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &user, nil
}
