package controllers

import (
	"errors"
	"log"
	"net/http"

	"expense-tracker-be/internal/middleware"
	"expense-tracker-be/internal/models"
	"expense-tracker-be/internal/service"

	"github.com/gin-gonic/gin"
)

type TransactionController struct {
	transactionService service.TransactionService
}

func NewTransactionController(transactionService service.TransactionService) *TransactionController {
	return &TransactionController{
		transactionService: transactionService,
	}
}

// Create handles POST /api/transactions
func (tc *TransactionController) Create(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	transaction, err := tc.transactionService.Create(c.Request.Context(), user.ID, &req)
	if err != nil {
		log.Printf("ERROR: failed to create transaction for user %s: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusCreated, transaction)
}

// List handles GET /api/transactions with optional filters and pagination.
func (tc *TransactionController) List(c *gin.Context) {
	var q models.ListTransactionsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	page, err := tc.transactionService.List(c.Request.Context(), user.ID, &q)
	if err != nil {
		log.Printf("ERROR: failed to list transactions for user %s: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusOK, page)
}

// Statistics handles GET /api/transactions/statistics
func (tc *TransactionController) Statistics(c *gin.Context) {
	var q models.StatisticsQuery
	if err := c.ShouldBindQuery(&q); err != nil {
		respondBindingError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	stats, err := tc.transactionService.Statistics(c.Request.Context(), user.ID, &q)
	if err != nil {
		log.Printf("ERROR: failed to compute statistics for user %s: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusOK, stats)
}

// Get handles GET /api/transactions/:id
func (tc *TransactionController) Get(c *gin.Context) {
	user := middleware.CurrentUser(c)
	transaction, err := tc.transactionService.Get(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Printf("ERROR: failed to get transaction for user %s: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusOK, transaction)
}

// Update handles PUT /api/transactions/:id
func (tc *TransactionController) Update(c *gin.Context) {
	var req models.TransactionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindingError(c, err)
		return
	}

	user := middleware.CurrentUser(c)
	transaction, err := tc.transactionService.Update(c.Request.Context(), c.Param("id"), user.ID, &req)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		if errors.Is(err, service.ErrInvalidDate) {
			respondError(c, http.StatusBadRequest, "Invalid date format")
			return
		}
		log.Printf("ERROR: failed to update transaction for user %s: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondData(c, http.StatusOK, transaction)
}

// Delete handles DELETE /api/transactions/:id
func (tc *TransactionController) Delete(c *gin.Context) {
	user := middleware.CurrentUser(c)
	err := tc.transactionService.Delete(c.Request.Context(), c.Param("id"), user.ID)
	if err != nil {
		if errors.Is(err, service.ErrNotFound) {
			respondError(c, http.StatusNotFound, "Transaction not found")
			return
		}
		log.Printf("ERROR: failed to delete transaction for user %s: %v", user.ID, err)
		respondError(c, http.StatusInternalServerError, "Something went wrong")
		return
	}

	respondMessage(c, http.StatusOK, "Transaction deleted successfully")
}
