package response

import (
	"errors"
	"net/http"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/attendance"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/chat"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/leave"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/project"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/validator"
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
	case errors.Is(err, auth.ErrTokenExpired):
		Unauthorized(w, "Token expired")
	case errors.Is(err, auth.ErrRefreshTokenRevoked):
		Unauthorized(w, "Refresh token revoked")
	case errors.Is(err, auth.ErrInvalidToken):
		Unauthorized(w, "Invalid token")
	case errors.Is(err, auth.ErrAdminOnly):
		Forbidden(w, "Admin privilege required")

	// Employee domain errors
	case errors.Is(err, employee.ErrEmployeeNotFound):
		NotFound(w, "Employee not found")
	case errors.Is(err, employee.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Attendance domain errors
	case errors.Is(err, attendance.ErrOutsideRadius):
		BadRequest(w, err.Error(), nil)
	case errors.Is(err, attendance.ErrAlreadyClockedIn),
		errors.Is(err, attendance.ErrNotClockedIn),
		errors.Is(err, attendance.ErrAlreadyClockedOut):
		Conflict(w, err.Error())
	case errors.Is(err, attendance.ErrRecordNotFound):
		NotFound(w, "Attendance record not found")

	// Leave domain errors
	case errors.Is(err, leave.ErrLeaveRequestNotFound):
		NotFound(w, "Leave request not found")
	case errors.Is(err, leave.ErrPaidLeaveQuotaExceeded):
		Conflict(w, err.Error())
	case errors.Is(err, leave.ErrInvalidDateRange), errors.Is(err, leave.ErrInvalidStatus):
		BadRequest(w, err.Error(), nil)

	// Project domain errors
	case errors.Is(err, project.ErrProjectNotFound):
		NotFound(w, "Project not found")
	case errors.Is(err, project.ErrNotProjectOwner):
		Forbidden(w, err.Error())

	// Chat domain errors
	case errors.Is(err, chat.ErrGroupNotFound):
		NotFound(w, "Chat group not found")
	case errors.Is(err, chat.ErrNotGroupMember):
		Forbidden(w, err.Error())

	// Admin domain errors
	case errors.Is(err, admin.ErrProfileNotFound):
		NotFound(w, "Admin profile not found")
	case errors.Is(err, admin.ErrUsernameExists):
		Conflict(w, "Username already taken")

	// Default
	default:
		InternalServerError(w, "An unexpected error occurred")
	}
}
