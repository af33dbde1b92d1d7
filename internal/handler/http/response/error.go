package response

import (
	"errors"
	"net/http"

	"github.com/bizdash/bizops-backend-go/internal/domain/attendance"
	"github.com/bizdash/bizops-backend-go/internal/domain/auth"
	"github.com/bizdash/bizops-backend-go/internal/domain/employee"
	"github.com/bizdash/bizops-backend-go/internal/domain/inventory"
	"github.com/bizdash/bizops-backend-go/internal/domain/user"
	"github.com/bizdash/bizops-backend-go/internal/pkg/validator"
	"github.com/bizdash/bizops-backend-go/internal/store"
)

// HandleError maps domain errors to HTTP responses
func HandleError(w http.ResponseWriter, err error) {
	// Check if it's a validation error
	var validationErrs validator.ValidationErrors
	if errors.As(err, &validationErrs) {
		ValidationError(w, validationErrs.ToMap())
		return
	}

	switch {
	// Auth domain errors
	case errors.Is(err, auth.ErrInvalidCredentials):
		Unauthorized(w, err.Error())
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrUserNotFound), errors.Is(err, user.ErrUserNotFound):
		NotFound(w, "User not found")
	case errors.Is(err, user.ErrAdminPrivilegeRequired):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrEmployeeIDExists):
		Conflict(w, "Employee id already exists")
	case errors.Is(err, employee.ErrEmailExists):
		Conflict(w, "Email already registered")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrAttendanceNotFound):
		NotFound(w, "Attendance record not found")
	case errors.Is(err, attendance.ErrDuplicateAttendance):
		Conflict(w, "Attendance already recorded for this employee and date")

	// Inventory domain errors
	case errors.Is(err, inventory.ErrItemNotFound):
		NotFound(w, "Stock item not found")
	case errors.Is(err, inventory.ErrInsufficientStock):
		BadRequest(w, "Insufficient stock for sale", nil)
	case errors.Is(err, inventory.ErrPurchaseNotFound):
		NotFound(w, "Purchase record not found")
	case errors.Is(err, inventory.ErrSaleNotFound):
		NotFound(w, "Sale record not found")

	// Store errors
	case errors.Is(err, store.ErrUnavailable):
		ServiceUnavailable(w, "Record store unavailable")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
