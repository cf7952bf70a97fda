package repository

import (
	"context"
	"database/sql"
	"fmt"
	"strings"
	"time"

	"expense-tracker-be/internal/entities"
)

const transactionColumns = "id, user_id, type, category, amount, date, description, payment_mode, recurrence, related_to, is_paid, created_at, updated_at"

// TransactionFilter narrows the listing query. Zero values are skipped; the
// date range is applied only when both ends are set.
type TransactionFilter struct {
	Type      string
	StartDate *time.Time
	EndDate   *time.Time
	Category  string // case-insensitive substring
	Search    string // case-insensitive substring over description OR category
	Limit     int
	Offset    int
}

// TransactionRepository defines the interface for transaction database operations
type TransactionRepository interface {
	Create(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error)
	List(ctx context.Context, userID string, f TransactionFilter) ([]entities.Transaction, int64, error)
	SumByType(ctx context.Context, userID string, startDate, endDate *time.Time) (map[entities.TransactionType]float64, error)
	FindByID(ctx context.Context, id, userID string) (*entities.Transaction, error)
	Update(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error)
	Delete(ctx context.Context, id, userID string) error
	FindByCategory(ctx context.Context, title string, categoryType entities.TransactionType) ([]entities.Transaction, error)
	CountByCategory(ctx context.Context, title string, categoryType entities.TransactionType) (int64, error)
}

type transactionRepository struct {
	db *sql.DB
}

// NewTransactionRepository creates a new transaction repository
func NewTransactionRepository(db *sql.DB) TransactionRepository {
	return &transactionRepository{db: db}
}

func (r *transactionRepository) Create(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	query := `
		INSERT INTO transactions (user_id, type, category, amount, date, description, payment_mode, recurrence, related_to, is_paid)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10)
		RETURNING ` + transactionColumns

	created, err := scanTransaction(r.db.QueryRowContext(ctx, query,
		t.UserID, t.Type, t.Category, t.Amount, t.Date, t.Description,
		t.PaymentMode, t.Recurrence, t.RelatedTo, t.IsPaid))
	if err != nil {
		return nil, fmt.Errorf("failed to create transaction: %w", err)
	}
	return created, nil
}

// List returns one page of the user's transactions newest-first, plus the
// total row count for the same filter.
func (r *transactionRepository) List(ctx context.Context, userID string, f TransactionFilter) ([]entities.Transaction, int64, error) {
	where := []string{"user_id = $1"}
	args := []interface{}{userID}

	if f.Type != "" {
		args = append(args, f.Type)
		where = append(where, fmt.Sprintf("type = $%d", len(args)))
	}
	if f.StartDate != nil && f.EndDate != nil {
		args = append(args, *f.StartDate)
		where = append(where, fmt.Sprintf("date >= $%d", len(args)))
		args = append(args, *f.EndDate)
		where = append(where, fmt.Sprintf("date <= $%d", len(args)))
	}
	if f.Category != "" {
		args = append(args, escapeLike(f.Category))
		where = append(where, fmt.Sprintf("category ILIKE '%%' || $%d || '%%'", len(args)))
	}
	if f.Search != "" {
		args = append(args, escapeLike(f.Search))
		where = append(where, fmt.Sprintf("(description ILIKE '%%' || $%d || '%%' OR category ILIKE '%%' || $%d || '%%')", len(args), len(args)))
	}

	whereClause := strings.Join(where, " AND ")

	var total int64
	countQuery := "SELECT COUNT(*) FROM transactions WHERE " + whereClause
	if err := r.db.QueryRowContext(ctx, countQuery, args...).Scan(&total); err != nil {
		return nil, 0, fmt.Errorf("failed to count transactions: %w", err)
	}

	args = append(args, f.Limit)
	limitPos := len(args)
	args = append(args, f.Offset)
	offsetPos := len(args)

	listQuery := fmt.Sprintf(
		"SELECT %s FROM transactions WHERE %s ORDER BY date DESC LIMIT $%d OFFSET $%d",
		transactionColumns, whereClause, limitPos, offsetPos,
	)

	rows, err := r.db.QueryContext(ctx, listQuery, args...)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	transactions, err := collectTransactions(rows)
	if err != nil {
		return nil, 0, err
	}
	return transactions, total, nil
}

// SumByType groups the user's transaction amounts by type, optionally bounded
// by an inclusive date range.
func (r *transactionRepository) SumByType(ctx context.Context, userID string, startDate, endDate *time.Time) (map[entities.TransactionType]float64, error) {
	query := "SELECT type, COALESCE(SUM(amount), 0) FROM transactions WHERE user_id = $1"
	args := []interface{}{userID}

	if startDate != nil && endDate != nil {
		args = append(args, *startDate)
		query += fmt.Sprintf(" AND date >= $%d", len(args))
		args = append(args, *endDate)
		query += fmt.Sprintf(" AND date <= $%d", len(args))
	}
	query += " GROUP BY type"

	rows, err := r.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("failed to sum transactions: %w", err)
	}
	defer rows.Close()

	sums := make(map[entities.TransactionType]float64)
	for rows.Next() {
		var transactionType entities.TransactionType
		var sum float64
		if err := rows.Scan(&transactionType, &sum); err != nil {
			return nil, fmt.Errorf("failed to scan transaction sum: %w", err)
		}
		sums[transactionType] = sum
	}
	return sums, rows.Err()
}

// FindByID is scoped by owner: a transaction belonging to another user is
// indistinguishable from a missing one.
func (r *transactionRepository) FindByID(ctx context.Context, id, userID string) (*entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE id = $1 AND user_id = $2`
	t, err := scanTransaction(r.db.QueryRowContext(ctx, query, id, userID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to find transaction: %w", err)
	}
	return t, nil
}

func (r *transactionRepository) Update(ctx context.Context, t *entities.Transaction) (*entities.Transaction, error) {
	query := `
		UPDATE transactions
		SET type = $1, category = $2, amount = $3, date = $4, description = $5,
		    payment_mode = $6, recurrence = $7, related_to = $8, is_paid = $9, updated_at = NOW()
		WHERE id = $10 AND user_id = $11
		RETURNING ` + transactionColumns

	updated, err := scanTransaction(r.db.QueryRowContext(ctx, query,
		t.Type, t.Category, t.Amount, t.Date, t.Description,
		t.PaymentMode, t.Recurrence, t.RelatedTo, t.IsPaid, t.ID, t.UserID))
	if err == sql.ErrNoRows {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("failed to update transaction: %w", err)
	}
	return updated, nil
}

func (r *transactionRepository) Delete(ctx context.Context, id, userID string) error {
	result, err := r.db.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1 AND user_id = $2`, id, userID)
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to delete transaction: %w", err)
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

// FindByCategory returns all transactions labelled with a category, matched by
// title and type. Categories are a shared taxonomy so this is not user-scoped.
func (r *transactionRepository) FindByCategory(ctx context.Context, title string, categoryType entities.TransactionType) ([]entities.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE category = $1 AND type = $2 ORDER BY date DESC`
	rows, err := r.db.QueryContext(ctx, query, title, categoryType)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions by category: %w", err)
	}
	defer rows.Close()
	return collectTransactions(rows)
}

func (r *transactionRepository) CountByCategory(ctx context.Context, title string, categoryType entities.TransactionType) (int64, error) {
	var count int64
	query := `SELECT COUNT(*) FROM transactions WHERE category = $1 AND type = $2`
	if err := r.db.QueryRowContext(ctx, query, title, categoryType).Scan(&count); err != nil {
		return 0, fmt.Errorf("failed to count transactions by category: %w", err)
	}
	return count, nil
}

// escapeLike makes ILIKE treat %, _ and \ in user input as literal characters,
// so the category and search filters stay plain substring matches.
func escapeLike(s string) string {
	return likeEscaper.Replace(s)
}

var likeEscaper = strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`)

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanTransaction(row rowScanner) (*entities.Transaction, error) {
	var t entities.Transaction
	err := row.Scan(
		&t.ID,
		&t.UserID,
		&t.Type,
		&t.Category,
		&t.Amount,
		&t.Date,
		&t.Description,
		&t.PaymentMode,
		&t.Recurrence,
		&t.RelatedTo,
		&t.IsPaid,
		&t.CreatedAt,
		&t.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}
	return &t, nil
}

func collectTransactions(rows *sql.Rows) ([]entities.Transaction, error) {
	transactions := []entities.Transaction{}
	for rows.Next() {
		t, err := scanTransaction(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		transactions = append(transactions, *t)
	}
	return transactions, rows.Err()
}
