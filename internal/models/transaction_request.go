package models

// TransactionRequest represents the request body for creating or updating a
// transaction. A client-supplied date is accepted on update; transaction
// creation always stamps the server clock instead.
type TransactionRequest struct {
	Type        string  `json:"type" binding:"required,oneof=INCOME EXPENSE CREDIT_GIVEN CREDIT_RECEIVED"`
	Category    string  `json:"category" binding:"required"`
	Amount      float64 `json:"amount" binding:"required,gt=0"`
	Date        *string `json:"date,omitempty" binding:"omitempty"`
	Description string  `json:"description" binding:"required,min=2"`
	PaymentMode string  `json:"paymentMode" binding:"required,oneof=ONLINE CASH"`
	Recurrence  *string `json:"recurrence,omitempty" binding:"omitempty,oneof=DAILY WEEKLY MONTHLY YEARLY"`
	RelatedTo   *string `json:"relatedTo,omitempty"`
	IsPaid      *bool   `json:"isPaid,omitempty"`
}

// ListTransactionsQuery represents the query string of the listing endpoint.
// The date range is only applied when both ends are present.
type ListTransactionsQuery struct {
	Type      string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE CREDIT_GIVEN CREDIT_RECEIVED"`
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
	Category  string `form:"category"`
	Search    string `form:"search"`
	Page      int    `form:"page,default=1" binding:"omitempty,min=1"`
	Limit     int    `form:"limit,default=10" binding:"omitempty,min=1"`
}

// StatisticsQuery represents the query string of the statistics endpoint.
type StatisticsQuery struct {
	StartDate string `form:"startDate" binding:"omitempty,datetime=2006-01-02"`
	EndDate   string `form:"endDate" binding:"omitempty,datetime=2006-01-02"`
}
