package service

import "errors"

// Sentinel errors the controllers translate into HTTP statuses.
var (
	ErrUserExists         = errors.New("user with this email or phone already exists")
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrCategoryExists     = errors.New("category with this title and type already exists")
	ErrCategoryInUse      = errors.New("cannot delete category with existing transactions")
	ErrNotFound           = errors.New("not found")
	ErrInvalidDate        = errors.New("invalid date")
)
