package http

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/goccy/go-json"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/auth"
	"github.com/teamtrack/teamtrack-backend-go/internal/domain/diary"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/middleware"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

type DiaryHandler interface {
	Upsert(w http.ResponseWriter, r *http.Request)
	Get(w http.ResponseWriter, r *http.Request)
	List(w http.ResponseWriter, r *http.Request)
}

type DiaryHandlerImpl struct {
	diaryService diary.DiaryService
}

func NewDiaryHandler(diaryService diary.DiaryService) DiaryHandler {
	return &DiaryHandlerImpl{diaryService: diaryService}
}

// Upsert implements DiaryHandler. The entry is always written for the actor.
func (h *DiaryHandlerImpl) Upsert(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	var req diary.UpsertEntryRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		response.BadRequest(w, "Invalid request format", nil)
		return
	}
	req.EmployeeID = actor.ID

	entry, err := h.diaryService.Upsert(r.Context(), req)
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entry)
}

// Get implements DiaryHandler.
func (h *DiaryHandlerImpl) Get(w http.ResponseWriter, r *http.Request) {
	actor, err := auth.ActorFromContext(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}

	employeeID := chi.URLParam(r, "id")
	if !middleware.SelfOrAdmin(actor, employeeID) {
		response.Forbidden(w, "You can only view your own work diary")
		return
	}

	entry, err := h.diaryService.Get(r.Context(), employeeID, r.URL.Query().Get("date"))
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entry)
}

// List implements DiaryHandler.
func (h *DiaryHandlerImpl) List(w http.ResponseWriter, r *http.Request) {
	entries, err := h.diaryService.List(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	response.Success(w, entries)
}
