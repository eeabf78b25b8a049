package main

import (
	"context"
	"errors"
	"fmt"
	"log"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/config"
	appHTTP "github.com/teamtrack/teamtrack-backend-go/internal/handler/http"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/cron"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/email"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/jwt"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/sse"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/storage"
	"github.com/teamtrack/teamtrack-backend-go/internal/pkg/ws"
	"github.com/teamtrack/teamtrack-backend-go/internal/repository/document"
	adminService "github.com/teamtrack/teamtrack-backend-go/internal/service/admin"
	attendanceService "github.com/teamtrack/teamtrack-backend-go/internal/service/attendance"
	serviceAuth "github.com/teamtrack/teamtrack-backend-go/internal/service/auth"
	chatService "github.com/teamtrack/teamtrack-backend-go/internal/service/chat"
	diaryService "github.com/teamtrack/teamtrack-backend-go/internal/service/diary"
	employeeService "github.com/teamtrack/teamtrack-backend-go/internal/service/employee"
	"github.com/teamtrack/teamtrack-backend-go/internal/service/file"
	leaveService "github.com/teamtrack/teamtrack-backend-go/internal/service/leave"
	projectService "github.com/teamtrack/teamtrack-backend-go/internal/service/project"
	reportService "github.com/teamtrack/teamtrack-backend-go/internal/service/report"
	settingsService "github.com/teamtrack/teamtrack-backend-go/internal/service/settings"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	store, err := document.Open(cfg.Database.Path)
	if err != nil {
		fmt.Println("Error opening document store:", err)
		return
	}

	employeeRepo := document.NewEmployeeRepository(store)
	attendanceRepo := document.NewAttendanceRepository(store)
	leaveRepo := document.NewLeaveRequestRepository(store)
	diaryRepo := document.NewDiaryRepository(store)
	projectRepo := document.NewProjectRepository(store)
	groupRepo := document.NewChatGroupRepository(store)
	messageRepo := document.NewChatMessageRepository(store)
	readStatusRepo := document.NewReadStatusRepository(store)
	adminRepo := document.NewAdminProfileRepository(store)
	settingsRepo := document.NewSettingsRepository(store)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration, cfg.JWT.RefreshExpiration)

	var fileStorage storage.FileStorage
	switch cfg.Storage.Type {
	case "local":
		fileStorage, err = storage.NewLocalStorage(cfg.Storage.BasePath, cfg.Storage.BaseURL)
		if err != nil {
			log.Fatal("Failed to initialize local storage:", err)
		}
	default:
		log.Fatal("Unsupported storage type: ", cfg.Storage.Type)
	}

	wsHub := ws.NewHub(slog.Default())
	events := sse.NewHub()
	emailSvc := email.NewEmailService(cfg.SMTP)

	fileSvc := file.NewFileService(fileStorage)
	authSvc := serviceAuth.NewAuthService(adminRepo, employeeRepo, jwtService)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, fileSvc)
	attendanceSvc := attendanceService.NewAttendanceService(attendanceRepo, employeeRepo, settingsRepo)
	leaveSvc := leaveService.NewLeaveService(leaveRepo, attendanceRepo, employeeRepo, emailSvc, events)
	diarySvc := diaryService.NewDiaryService(diaryRepo, employeeRepo)
	projectSvc := projectService.NewProjectService(projectRepo, employeeRepo)
	chatSvc := chatService.NewChatService(groupRepo, messageRepo, readStatusRepo, employeeRepo, adminRepo, wsHub, events)
	adminSvc := adminService.NewAdminService(adminRepo, fileSvc)
	settingsSvc := settingsService.NewSettingsService(settingsRepo)
	reportSvc := reportService.NewReportService(attendanceRepo, leaveRepo, employeeRepo)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceRepo, employeeRepo, leaveRepo).RegisterJobs(scheduler)
	scheduler.Start()
	defer scheduler.Stop()

	handlers := appHTTP.Handlers{
		Auth:       appHTTP.NewAuthHandler(authSvc, jwtService),
		Employee:   appHTTP.NewEmployeeHandler(employeeSvc),
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Diary:      appHTTP.NewDiaryHandler(diarySvc),
		Project:    appHTTP.NewProjectHandler(projectSvc, fileSvc),
		Chat:       appHTTP.NewChatHandler(chatSvc, jwtService, wsHub),
		Events:     appHTTP.NewEventsHandler(jwtService, events),
		Admin:      appHTTP.NewAdminHandler(adminSvc),
		Settings:   appHTTP.NewSettingsHandler(settingsSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
	}

	router := appHTTP.NewRouter(cfg, jwtService, handlers)

	server := &http.Server{
		Addr:         fmt.Sprintf(":%d", cfg.App.Port),
		Handler:      router,
		ReadTimeout:  15 * time.Second,
		WriteTimeout: 0, // SSE and websocket handlers hold connections open
		IdleTimeout:  60 * time.Second,
	}

	go func() {
		slog.Info("Server listening", "port", cfg.App.Port, "env", cfg.App.Env)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			slog.Error("Server stopped", "error", err)
			os.Exit(1)
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit

	slog.Info("Shutting down")
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(ctx); err != nil {
		slog.Error("Graceful shutdown failed", "error", err)
	}
}
