package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/admin"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

type AdminHandler interface {
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	UpdateAvatar(w http.ResponseWriter, r *http.Request)
}

type AdminHandlerImpl struct {
	adminService admin.AdminService
}

func NewAdminHandler(adminService admin.AdminService) AdminHandler {
	return &AdminHandlerImpl{adminService: adminService}
}

// Get implements AdminHandler.
func (h *AdminHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	profile, err := h.adminService.Get(r.Context(), chi.URLParam(r, "id"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// List implements AdminHandler.
func (h *AdminHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	profiles, err := h.adminService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profiles)
}

// Create implements AdminHandler.
func (h *AdminHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	var req admin.CreateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.adminService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Admin profile created", profile)
}

// Update implements AdminHandler.
func (h *AdminHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	var req admin.UpdateProfileRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	profile, err := h.adminService.Update(r.Context(), chi.URLParam(r, "id"), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}

// UpdateAvatar implements AdminHandler.
func (h *AdminHandlerImpl) UpdateAvatar(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseMultipartForm(maxAvatarUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("avatar")
	if err != nil {
		response.BadRequest(w, "avatar file is required", nil)
		return
	}
	defer f.Close()

	profile, err := h.adminService.UpdateAvatar(r.Context(), admin.UpdateAvatarRequest{
		AdminID:  chi.URLParam(r, "id"),
		File:     f,
		Filename: header.Filename,
	})
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, profile)
}
