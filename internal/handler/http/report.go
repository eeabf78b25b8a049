package http

import (
	"fmt"
	"net/http"
	"time"

	"github.com/teamtrack/teamtrack-backend-go/internal/domain/report"
	"github.com/teamtrack/teamtrack-backend-go/internal/handler/http/response"
)

type ReportHandler interface {
	ExportAttendance(w http.ResponseWriter, r *http.Request)
	ExportLeave(w http.ResponseWriter, r *http.Request)
}

type ReportHandlerImpl struct {
	reportService report.ReportService
}

func NewReportHandler(reportService report.ReportService) ReportHandler {
	return &ReportHandlerImpl{reportService: reportService}
}

// ExportAttendance implements ReportHandler.
func (h *ReportHandlerImpl) ExportAttendance(w http.ResponseWriter, r *http.Request) {
	csv, err := h.reportService.ExportAttendanceCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeCSV(w, "attendance", csv)
}

// ExportLeave implements ReportHandler.
func (h *ReportHandlerImpl) ExportLeave(w http.ResponseWriter, r *http.Request) {
	csv, err := h.reportService.ExportLeaveCSV(r.Context())
	if err != nil {
		response.HandleError(w, err)
		return
	}
	writeCSV(w, "leave-requests", csv)
}

func writeCSV(w http.ResponseWriter, name string, csv string) {
	if csv == "" {
		w.WriteHeader(http.StatusNoContent)
		return
	}

	filename := fmt.Sprintf("%s-%s.csv", name, time.Now().Format("2006-01-02"))
	w.Header().Set("Content-Type", "text/csv; charset=utf-8")
	w.Header().Set("Content-Disposition", fmt.Sprintf("attachment; filename=%q", filename))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(csv))
}
