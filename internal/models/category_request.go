package models

// CategoryRequest represents the request body for creating a category
type CategoryRequest struct {
	Title string  `json:"title" binding:"required,min=2"`
	Type  string  `json:"type" binding:"required,oneof=INCOME EXPENSE CREDIT_GIVEN CREDIT_RECEIVED"`
	Icon  *string `json:"icon,omitempty"`
}

// CategoryUpdateRequest is a partial patch; nil fields are left untouched.
type CategoryUpdateRequest struct {
	Title *string `json:"title,omitempty" binding:"omitempty,min=2"`
	Type  *string `json:"type,omitempty" binding:"omitempty,oneof=INCOME EXPENSE CREDIT_GIVEN CREDIT_RECEIVED"`
	Icon  *string `json:"icon,omitempty"`
}

// ListCategoriesQuery represents the query string of the category listing.
type ListCategoriesQuery struct {
	Type string `form:"type" binding:"omitempty,oneof=INCOME EXPENSE CREDIT_GIVEN CREDIT_RECEIVED"`
}
