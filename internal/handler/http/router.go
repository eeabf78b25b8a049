package http

import (
	"log/slog"
	"net/http"
	"os"

	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
	"github.com/go-chi/jwtauth/v5"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/teamtrack/teamtrack-backend-go/internal/config"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/middleware"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/metrics"
)

// Handlers groups every HTTP handler the router mounts.
type Handlers struct {
	Auth       AuthHandler
	Employee   EmployeeHandler
	Attendance AttendanceHandler
	Leave      LeaveHandler
	Diary      DiaryHandler
	Project    ProjectHandler
	Chat       ChatHandler
	Events     EventsHandler
	Admin      AdminHandler
	Settings   SettingsHandler
	Report     ReportHandler
}

func NewRouter(cfg *config.Config, jwtService jwt.Service, h Handlers) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(false)
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "teamtrack-backend"),
		slog.String("version", "v1.0.0"),
		slog.String("env", cfg.App.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{cfg.App.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))
	r.Use(metrics.Middleware)

	r.Handle("/metrics", promhttp.Handler())

	fileServer := http.StripPrefix("/uploads/", http.FileServer(http.Dir(cfg.Storage.BasePath)))
	r.Get("/uploads/*", fileServer.ServeHTTP)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/auth", func(r chi.Router) {
			r.Post("/login", h.Auth.Login)
			r.Post("/refresh", h.Auth.RefreshToken)
			r.Post("/logout", h.Auth.Logout)
		})

		// Stream endpoints authenticate with a short-lived query token
		// because EventSource and browser websockets cannot set headers.
		r.Get("/events", h.Events.Stream)
		r.Get("/chat/groups/{id}/ws", h.Chat.Stream)

		// Requires authentication
		r.Group(func(r chi.Router) {
			r.Use(jwtauth.Verifier(jwtService.JWTAuth()))
			r.Use(middleware.AuthRequired(jwtService.JWTAuth()))

			r.Get("/auth/sse-token", h.Auth.SSEToken)

			r.Route("/employees", func(r chi.Router) {
				r.Get("/", h.Employee.List)
				r.Get("/{id}", h.Employee.Get)
				r.Put("/{id}/avatar", h.Employee.UpdateAvatar)

				r.Get("/{id}/attendance", h.Attendance.ListByEmployee)
				r.Get("/{id}/leave-requests", h.Leave.ListByEmployee)
				r.Get("/{id}/diary", h.Diary.Get)
				r.Get("/{id}/projects", h.Project.ListByEmployee)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/", h.Employee.Create)
					r.Put("/{id}", h.Employee.Update)
					r.Delete("/{id}", h.Employee.Delete)
					r.Delete("/", h.Employee.ClearAll)
				})
			})

			r.Route("/attendance", func(r chi.Router) {
				r.Post("/clock-in", h.Attendance.ClockIn)
				r.Post("/clock-out", h.Attendance.ClockOut)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Attendance.List)
				})
			})

			r.Route("/leave-requests", func(r chi.Router) {
				r.Post("/", h.Leave.Apply)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Leave.List)
					r.Put("/{id}/status", h.Leave.UpdateStatus)
				})
			})

			r.Route("/diary", func(r chi.Router) {
				r.Put("/", h.Diary.Upsert)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Get("/", h.Diary.List)
				})
			})

			r.Route("/projects", func(r chi.Router) {
				r.Post("/", h.Project.Create)
				r.Post("/upload", h.Project.UploadFile)
				r.Put("/{id}", h.Project.Update)
				r.Delete("/{id}", h.Project.Delete)
			})

			r.Route("/chat", func(r chi.Router) {
				r.Get("/groups", h.Chat.ListGroups)
				r.Get("/groups/{id}", h.Chat.GetGroup)
				r.Get("/groups/{id}/messages", h.Chat.Messages)
				r.Post("/groups/{id}/messages", h.Chat.Send)
				r.Post("/groups/{id}/read", h.Chat.MarkRead)
				r.Get("/unread", h.Chat.UnreadStatus)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Post("/groups", h.Chat.CreateGroup)
					r.Put("/groups/{id}", h.Chat.UpdateGroup)
					r.Delete("/groups/{id}", h.Chat.DeleteGroup)
				})
			})

			r.Route("/settings", func(r chi.Router) {
				r.Get("/", h.Settings.Get)

				// Admin only
				r.Group(func(r chi.Router) {
					r.Use(middleware.AdminOnly)
					r.Put("/", h.Settings.Update)
				})
			})

			// Admin only
			r.Group(func(r chi.Router) {
				r.Use(middleware.AdminOnly)

				r.Route("/admins", func(r chi.Router) {
					r.Get("/", h.Admin.List)
					r.Post("/", h.Admin.Create)
					r.Get("/{id}", h.Admin.Get)
					r.Put("/{id}", h.Admin.Update)
					r.Put("/{id}/avatar", h.Admin.UpdateAvatar)
				})

				r.Route("/reports", func(r chi.Router) {
					r.Get("/attendance", h.Report.ExportAttendance)
					r.Get("/leave-requests", h.Report.ExportLeave)
				})
			})
		})
	})
	return r
}
