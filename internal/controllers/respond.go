package controllers

import (
	"errors"
	"net/http"

	"expense-tracker-be/internal/models"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
)

func respondData(c *gin.Context, status int, data interface{}) {
	c.JSON(status, models.Response{Success: true, Data: data})
}

func respondMessage(c *gin.Context, status int, message string) {
	c.JSON(status, models.Response{Success: true, Message: message})
}

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, models.Response{Success: false, Message: message})
}

// respondBindingError turns a binding failure into a 400 envelope carrying
// field-level messages when the failure came from the validator.
func respondBindingError(c *gin.Context, err error) {
	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		fields := make(map[string]string, len(validationErrors))
		for _, fieldError := range validationErrors {
			fields[fieldError.Field()] = validationMessage(fieldError)
		}
		c.JSON(http.StatusBadRequest, models.Response{
			Success: false,
			Message: "Validation failed",
			Errors:  fields,
		})
		return
	}
	respondError(c, http.StatusBadRequest, "Invalid request body")
}

func validationMessage(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "This field is required"
	case "email":
		return "Invalid email format"
	case "e164phone":
		return "Invalid phone number"
	case "emailorphone":
		return "Invalid email or phone number"
	case "strongpassword":
		return "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	case "eqfield":
		return "Passwords do not match"
	case "min":
		return "Value is too short"
	case "max":
		return "Value is too long"
	case "gt":
		return "Value must be positive"
	case "oneof":
		return "Value must be one of: " + fe.Param()
	case "datetime":
		return "Invalid date, expected YYYY-MM-DD"
	default:
		return "Invalid value"
	}
}
