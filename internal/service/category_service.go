package service

import (
	"context"
	"errors"
	"fmt"

	"expense-tracker-be/internal/entities"
	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/repository"
)

// CategoryService defines the interface for category business logic
type CategoryService interface {
	Create(ctx context.Context, req *models.CategoryRequest) (*entities.Category, error)
	List(ctx context.Context, q *models.ListCategoriesQuery) ([]entities.Category, error)
	Get(ctx context.Context, id string) (*models.CategoryWithTransactions, error)
	Update(ctx context.Context, id string, req *models.CategoryUpdateRequest) (*entities.Category, error)
	Delete(ctx context.Context, id string) error
}

type categoryService struct {
	categories   repository.CategoryRepository
	transactions repository.TransactionRepository
}

// NewCategoryService creates a new category service
func NewCategoryService(categories repository.CategoryRepository, transactions repository.TransactionRepository) CategoryService {
	return &categoryService{
		categories:   categories,
		transactions: transactions,
	}
}

// Create rejects duplicate (title, type) pairs.
func (s *categoryService) Create(ctx context.Context, req *models.CategoryRequest) (*entities.Category, error) {
	existing, err := s.categories.FindByTitleAndType(ctx, req.Title, entities.TransactionType(req.Type))
	if err != nil && !errors.Is(err, repository.ErrNotFound) {
		return nil, fmt.Errorf("failed to check existing category: %w", err)
	}
	if existing != nil {
		return nil, ErrCategoryExists
	}

	created, err := s.categories.Create(ctx, &entities.Category{
		Title: req.Title,
		Type:  entities.TransactionType(req.Type),
		Icon:  req.Icon,
	})
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrCategoryExists
	}
	return created, err
}

// List returns every category. The type query parameter is accepted but not
// applied; callers filter client-side.
func (s *categoryService) List(ctx context.Context, _ *models.ListCategoriesQuery) ([]entities.Category, error) {
	return s.categories.FindAll(ctx)
}

// Get returns a category together with the transactions labelled with it.
func (s *categoryService) Get(ctx context.Context, id string) (*models.CategoryWithTransactions, error) {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}

	transactions, err := s.transactions.FindByCategory(ctx, category.Title, category.Type)
	if err != nil {
		return nil, err
	}

	return &models.CategoryWithTransactions{
		Category:     *category,
		Transactions: transactions,
	}, nil
}

func (s *categoryService) Update(ctx context.Context, id string, req *models.CategoryUpdateRequest) (*entities.Category, error) {
	updated, err := s.categories.Update(ctx, id, req.Title, req.Type, req.Icon)
	if errors.Is(err, repository.ErrNotFound) {
		return nil, ErrNotFound
	}
	if errors.Is(err, repository.ErrDuplicate) {
		return nil, ErrCategoryExists
	}
	return updated, err
}

// Delete refuses to remove a category that still labels transactions.
func (s *categoryService) Delete(ctx context.Context, id string) error {
	category, err := s.categories.FindByID(ctx, id)
	if err != nil {
		if errors.Is(err, repository.ErrNotFound) {
			return ErrNotFound
		}
		return err
	}

	count, err := s.transactions.CountByCategory(ctx, category.Title, category.Type)
	if err != nil {
		return err
	}
	if count > 0 {
		return ErrCategoryInUse
	}

	err = s.categories.Delete(ctx, id)
	if errors.Is(err, repository.ErrNotFound) {
		return ErrNotFound
	}
	return err
}
