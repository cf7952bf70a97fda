package models

import "expense-tracker-be/internal/entities"

// Response is the uniform envelope every endpoint returns.
type Response struct {
	Success bool        `json:"success"`
	Data    interface{} `json:"data,omitempty"`
	Message string      `json:"message,omitempty"`
	Errors  interface{} `json:"errors,omitempty"`
}

// AuthData is the payload returned by signup and login.
type AuthData struct {
	User  *entities.User `json:"user"`
	Token string         `json:"token"` // JWT token, also set as an http-only cookie
}

// Pagination describes one page of a filtered listing.
type Pagination struct {
	Total      int64 `json:"total"`
	Page       int   `json:"page"`
	Limit      int   `json:"limit"`
	TotalPages int64 `json:"totalPages"`
}

// TransactionPage is the payload of the transaction listing endpoint.
type TransactionPage struct {
	Transactions []entities.Transaction `json:"transactions"`
	Pagination   Pagination             `json:"pagination"`
}

// Statistics sums transaction amounts grouped by type. Types with no
// transactions in range report 0.
type Statistics struct {
	TotalIncome         float64 `json:"totalIncome"`
	TotalExpense        float64 `json:"totalExpense"`
	TotalCreditGiven    float64 `json:"totalCreditGiven"`
	TotalCreditReceived float64 `json:"totalCreditReceived"`
	Balance             float64 `json:"balance"`   // income - expense
	NetCredit           float64 `json:"netCredit"` // creditGiven - creditReceived
}

// CategoryWithTransactions is the payload of the single-category endpoint.
type CategoryWithTransactions struct {
	entities.Category
	Transactions []entities.Transaction `json:"transactions"`
}
