package repository

import (
	"context"
	"database/sql"
	"fmt"

	"expense-tracker-be/internal/entities"
)

const categoryColumns = "id, title, type, icon, created_at, updated_at"

// CategoryRepository defines the interface for category database operations
type CategoryRepository interface {
	Create(ctx context.Context, c *entities.Category) (*entities.Category, error)
	FindAll(ctx context.Context) ([]entities.Category, error)
	FindByID(ctx context.Context, id string) (*entities.Category, error)
	FindByTitleAndType(ctx context.Context, title string, categoryType entities.TransactionType) (*entities.Category, error)
	Update(ctx context.Context, id string, title, categoryType, icon *string) (*entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryRepository struct {
	db *sql.DB
}

// NewCategoryRepository creates a new category repository
func NewCategoryRepository(db *sql.DB) CategoryRepository {
	return &categoryRepository{db: db}
}

func (r *categoryRepository) Create(ctx context.Context, c *entities.Category) (*entities.Category, error) {
	query := `
		INSERT INTO categories (title, type, icon)
		VALUES ($1, $2, $3)
		RETURNING ` + categoryColumns

	created, err := scanCategory(r.db.QueryRowContext(ctx, query, c.Title, c.Type, c.Icon))
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to create category: %w", err)
	}
	return created, nil
}

func (r *categoryRepository) FindAll(ctx context.Context) ([]entities.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories ORDER BY title`
	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list categories: %w", err)
	}
	defer rows.Close()

	categories := []entities.Category{}
	for rows.Next() {
		c, err := scanCategory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan category: %w", err)
		}
		categories = append(categories, *c)
	}
	return categories, rows.Err()
}

func (r *categoryRepository) FindByID(ctx context.Context, id string) (*entities.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE id = $1`
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return c, nil
}

func (r *categoryRepository) FindByTitleAndType(ctx context.Context, title string, categoryType entities.TransactionType) (*entities.Category, error) {
	query := `SELECT ` + categoryColumns + ` FROM categories WHERE title = $1 AND type = $2`
	c, err := scanCategory(r.db.QueryRowContext(ctx, query, title, categoryType))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find category: %w", err)
	}
	return c, nil
}

// Update applies a partial patch; nil fields keep their current value.
func (r *categoryRepository) Update(ctx context.Context, id string, title, categoryType, icon *string) (*entities.Category, error) {
	query := `
		UPDATE categories
		SET title = COALESCE($2, title),
		    type = COALESCE($3, type),
		    icon = COALESCE($4, icon),
		    updated_at = NOW()
		WHERE id = $1
		RETURNING ` + categoryColumns

	c, err := scanCategory(r.db.QueryRowContext(ctx, query, id, title, categoryType, icon))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		if isUniqueViolation(err) {
			return nil, ErrDuplicate
		}
		return nil, fmt.Errorf("failed to update category: %w", err)
	}
	return c, nil
}

func (r *categoryRepository) Delete(ctx context.Context, id string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete category: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func scanCategory(row rowScanner) (*entities.Category, error) {
	var c entities.Category
	err := row.Scan(
		&c.ID,
		&c.Title,
		&c.Type,
		&c.Icon,
		&c.CreatedAt,
		&c.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &c, nil
}
