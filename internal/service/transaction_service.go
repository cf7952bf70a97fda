package service

import (
	"context"
	"errors"
	"fmt"
	"time"

	"expense-tracker-be/internal/entities"
	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/repository"
)

const dateLayout = "2006-01-02"

// TransactionService defines the interface for transaction business logic
type TransactionService interface {
	Create(ctx context.Context, userID string, req *models.TransactionRequest) (*entities.Transaction, error)
	List(ctx context.Context, userID string, q *models.ListTransactionsQuery) (*models.TransactionPage, error)
	Statistics(ctx context.Context, userID string, q *models.StatisticsQuery) (*models.Statistics, error)
	Get(ctx context.Context, id, userID string) (*entities.Transaction, error)
	Update(ctx context.Context, id, userID string, req *models.TransactionRequest) (*entities.Transaction, error)
	Delete(ctx context.Context, id, userID string) error
}

type transactionService struct {
	transactions repository.TransactionRepository
	now          func() time.Time
}

// NewTransactionService creates a new transaction service
func NewTransactionService(transactions repository.TransactionRepository) TransactionService {
	return &transactionService{
		transactions: transactions,
		now:          time.Now,
	}
}

// Create persists a validated transaction for the authenticated user. The
// date is always stamped server-side; a client-supplied date is ignored here
// (unlike Update).
func (s *transactionService) Create(ctx context.Context, userID string, req *models.TransactionRequest) (*entities.Transaction, error) {
	t := transactionFromRequest(req)
	t.UserID = userID
	t.Date = s.now()
	return s.transactions.Create(ctx, t)
}

// List returns a date-descending page of the user's transactions with
// pagination metadata.
func (s *transactionService) List(ctx context.Context, userID string, q *models.ListTransactionsQuery) (*models.TransactionPage, error) {
	page := q.Page
	if page < 1 {
		page = 1
	}
	limit := q.Limit
	if limit < 1 {
		limit = 10
	}

	startDate, endDate, err := parseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}

	filter := repository.TransactionFilter{
		Type:      q.Type,
		StartDate: startDate,
		EndDate:   endDate,
		Category:  q.Category,
		Search:    q.Search,
		Limit:     limit,
		Offset:    (page - 1) * limit,
	}

	transactions, total, err := s.transactions.List(ctx, userID, filter)
	if err != nil {
		return nil, err
	}

	return &models.TransactionPage{
		Transactions: transactions,
		Pagination: models.Pagination{
			Total:      total,
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages(total, limit),
		},
	}, nil
}

// Statistics nets the user's amounts by transaction type within an optional
// inclusive date range.
func (s *transactionService) Statistics(ctx context.Context, userID string, q *models.StatisticsQuery) (*models.Statistics, error) {
	startDate, endDate, err := parseDateRange(q.StartDate, q.EndDate)
	if err != nil {
		return nil, err
	}

	sums, err := s.transactions.SumByType(ctx, userID, startDate, endDate)
	if err != nil {
		return nil, err
	}

	stats := &models.Statistics{
		TotalIncome:         sums[entities.TypeIncome],
		TotalExpense:        sums[entities.TypeExpense],
		TotalCreditGiven:    sums[entities.TypeCreditGiven],
		TotalCreditReceived: sums[entities.TypeCreditReceived],
	}
	stats.Balance = stats.TotalIncome - stats.TotalExpense
	stats.NetCredit = stats.TotalCreditGiven - stats.TotalCreditReceived
	return stats, nil
}

func (s *transactionService) Get(ctx context.Context, id, userID string) (*entities.Transaction, error) {
	t, err := s.transactions.FindByID(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return t, err
}

// Update replaces all mutable fields. A client-supplied date is honored here;
// when absent the server clock is used.
func (s *transactionService) Update(ctx context.Context, id, userID string, req *models.TransactionRequest) (*entities.Transaction, error) {
	t := transactionFromRequest(req)
	t.ID = id
	t.UserID = userID

	t.Date = s.now()
	if req.Date != nil {
		date, err := parseDate(*req.Date)
		if err != nil {
			return nil, fmt.Errorf("%w: %q", ErrInvalidDate, *req.Date)
		}
		t.Date = date
	}

	updated, err := s.transactions.Update(ctx, t)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	return updated, err
}

func (s *transactionService) Delete(ctx context.Context, id, userID string) error {
	err := s.transactions.Delete(ctx, id, userID)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}

func transactionFromRequest(req *models.TransactionRequest) *entities.Transaction {
	t := &entities.Transaction{
		Type:        entities.TransactionType(req.Type),
		Category:    req.Category,
		Amount:      req.Amount,
		Description: req.Description,
		PaymentMode: entities.PaymentMode(req.PaymentMode),
		RelatedTo:   req.RelatedTo,
		IsPaid:      req.IsPaid,
	}
	if req.Recurrence != nil {
		recurrence := entities.Recurrence(*req.Recurrence)
		t.Recurrence = &recurrence
	}
	return t
}

// parseDateRange applies the range only when both ends are present. The end
// date is extended to the last instant of that day so the range is inclusive.
func parseDateRange(start, end string) (*time.Time, *time.Time, error) {
	if start == "" || end == "" {
		return nil, nil, nil
	}
	startDate, err := parseDate(start)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid startDate: %w", err)
	}
	endDate, err := parseDate(end)
	if err != nil {
		return nil, nil, fmt.Errorf("invalid endDate: %w", err)
	}
	endDate = endDate.Add(24*time.Hour - time.Nanosecond)
	return &startDate, &endDate, nil
}

// parseDate accepts a plain date or a full RFC 3339 timestamp.
func parseDate(s string) (time.Time, error) {
	if t, err := time.Parse(dateLayout, s); err == nil {
		return t, nil
	}
	return time.Parse(time.RFC3339, s)
}

func totalPages(total int64, limit int) int64 {
	if limit <= 0 {
		return 0
	}
	return (total + int64(limit) - 1) / int64(limit)
}
