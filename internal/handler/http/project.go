package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/project"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/middleware"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
	"github.com/teamtrack/teamtrack-backend-go/internal/service/file"
)

const maxProjectUploadBytes = 10 << 20

type ProjectHandler interface {
	Create(w http.ResponseWriter, r *http.Request)
	Update(w http.ResponseWriter, r *http.Request)
	Delete(w http.ResponseWriter, r *http.Request)
	ListByEmployee(w http.ResponseWriter, r *http.Request)
	UploadFile(w http.ResponseWriter, r *http.Request)
}

type ProjectHandlerImpl struct {
	projectService project.ProjectService
	fileService    file.FileService
}

func NewProjectHandler(projectService project.ProjectService, fileService file.FileService) ProjectHandler {
	return &ProjectHandlerImpl{
		projectService: projectService,
		fileService:    fileService,
	}
}

// Create implements ProjectHandler. Projects always belong to the actor.
func (h *ProjectHandlerImpl) Create(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req project.CreateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = actor.ID

	created, err := h.projectService.Create(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Created(w, "Project created", created)
}

// Update implements ProjectHandler.
func (h *ProjectHandlerImpl) Update(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req project.UpdateProjectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}

	updated, err := h.projectService.Update(r.Context(), chi.URLParam(r, "id"), actor.ID, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, updated)
}

// Delete implements ProjectHandler.
func (h *ProjectHandlerImpl) Delete(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := h.projectService.Delete(r.Context(), chi.URLParam(r, "id"), actor.ID); err != nil {
		response.HandleError(w, err)
		return
	}
	response.SuccessWithMessage(w, "Project deleted", nil)
}

// ListByEmployee implements ProjectHandler.
func (h *ProjectHandlerImpl) ListByEmployee(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "id")
	if !middleware.SelfOrAdmin(actor, employeeID) {
		response.Forbidden(w, "You can only view your own projects")
		return
	}

	projects, err := h.projectService.ListByEmployee(r.Context(), employeeID)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, projects)
}

// UploadFile implements ProjectHandler. It stores a project attachment and
// returns its path; the caller puts the path on the project via Create/Update.
func (h *ProjectHandlerImpl) UploadFile(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	if err := r.ParseMultipartForm(maxProjectUploadBytes); err != nil {
		response.BadRequest(w, "Invalid multipart form", nil)
		return
	}

	f, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "file is required", nil)
		return
	}
	defer f.Close()

	path, err := h.fileService.UploadProjectFile(r.Context(), actor.ID, f, header.Filename)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, map[string]string{"file_name": path})
}
