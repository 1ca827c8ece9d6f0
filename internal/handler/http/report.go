package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/staffsync/attendance-backend-go/internal/domain/report"
	"github.com/staffsync/attendance-backend-go/internal/handler/http/response"
	"github.com/staffsync/attendance-backend-go/internal/service/export"
)

type ReportHandler interface {
	// Single-employee monthly report
	GetMonthlyReport(w http.ResponseWriter, r *http.Request)

	// All-employee payroll overview
	GetPayrollOverview(w http.ResponseWriter, r *http.Request)

	// PDF exports of either view
	ExportMonthlyReport(w http.ResponseWriter, r *http.Request)
	ExportPayrollOverview(w http.ResponseWriter, r *http.Request)
}

type reportHandlerImpl struct {
	reportService report.ReportService
	exportService export.ExportService
}

func NewReportHandler(reportService report.ReportService, exportService export.ExportService) ReportHandler {
	return &reportHandlerImpl{
		reportService: reportService,
		exportService: exportService,
	}
}

func parsePeriod(r *http.Request) (month, year int, err error) {
	month, err = strconv.Atoi(r.URL.Query().Get("month"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid month parameter")
	}

	year, err = strconv.Atoi(r.URL.Query().Get("year"))
	if err != nil {
		return 0, 0, fmt.Errorf("invalid year parameter")
	}

	return month, year, nil
}

// GetMonthlyReport handles GET /reports/attendance/{employeeID}
func (h *reportHandlerImpl) GetMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, year, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	req := report.MonthlyReportRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      month,
		Year:       year,
	}

	result, err := h.reportService.GenerateMonthlyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// GetPayrollOverview handles GET /reports/payroll
func (h *reportHandlerImpl) GetPayrollOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, year, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	req := report.PayrollOverviewRequest{
		Month: month,
		Year:  year,
	}

	result, err := h.reportService.GeneratePayrollOverview(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	response.Success(w, result)
}

// ExportMonthlyReport handles GET /reports/attendance/{employeeID}/export
func (h *reportHandlerImpl) ExportMonthlyReport(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, year, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	req := report.MonthlyReportRequest{
		EmployeeID: chi.URLParam(r, "employeeID"),
		Month:      month,
		Year:       year,
	}

	result, err := h.reportService.GenerateMonthlyReport(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, filename, err := h.exportService.MonthlyReportPDF(result)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writePDF(w, data, filename)
}

// ExportPayrollOverview handles GET /reports/payroll/export
func (h *reportHandlerImpl) ExportPayrollOverview(w http.ResponseWriter, r *http.Request) {
	ctx := r.Context()

	month, year, err := parsePeriod(r)
	if err != nil {
		response.BadRequest(w, err.Error(), nil)
		return
	}

	req := report.PayrollOverviewRequest{
		Month: month,
		Year:  year,
	}

	result, err := h.reportService.GeneratePayrollOverview(ctx, req)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	data, filename, err := h.exportService.PayrollOverviewPDF(result)
	if err != nil {
		response.HandleError(w, err)
		return
	}

	writePDF(w, data, filename)
}

func writePDF(w http.ResponseWriter, data []byte, filename string) {
	w.Header().Set("Content-Type", "application/pdf")
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename=%q`, filename))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}
