package http

import (
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/middleware"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

const maxAvatarUploadBytes = 5 << 20 // 5 MB

type EmployeeHandler interface {
	List(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateAvatar(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ClearAll(w http.ResponseWriter, r *http.Request)
}

type EmployeeHandlerImpl struct {
	employeeService employee.EmployeeService
}

func NewEmployeeHandler(employeeService employee.EmployeeService) EmployeeHandler {
	return &EmployeeHandlerImpl{employeeService: employeeService}
}

// List implements EmployeeHandler.
func (h *EmployeeHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	employees, err := h.employeeService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, employees)
}

// Get implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	emp, err := h.employeeService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, emp)
}

// Create implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req employee.CreateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	created, err := h.employeeService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee created", "employee_id", created.ID)
	response.Created(w, "Employee created", created)
}

// Update implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req employee.UpdateEmployeeRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.employeeService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// UpdateAvatar implements EmployeeHandler. Employees may only change their own
// avatar; admins may change anyone's.
func (h *EmployeeHandlerImpl) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "id")
	if !middleware.SelfOrAdmin(actor, employeeID) {
		response.Forbidden(w, "You can only change your own avatar")
		return
	}

	if err := r.ParseMultipartForm(maxAvatarUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}
	file, header, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "Missing avatar file", nil)
		return
	}
	defer file.Close()

	updated, err := h.employeeService.UpdateAvatar(r.Context(), employee.UpdateAvatarRequest{
		EmployeeID: employeeID,
		File:       file,
		Filename:   header.Filename,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements EmployeeHandler.
func (h *EmployeeHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if err := h.employeeService.Delete(r.Context(), id); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Info("Employee deleted", "employee_id", id)
	response.SuccessWithMessage(w, "Employee deleted", nil)
}

// ClearAll implements EmployeeHandler.
func (h *EmployeeHandlerImpl) ClearAll(w http.ResponseWriter, r *http.Request) {
	if err := h.employeeService.ClearAll(r.Context()); err != nil {
		response.HandleError(w, err)
		return
	}

	slog.Warn("All employee data cleared")
	response.SuccessWithMessage(w, "All employee data cleared", nil)
}
