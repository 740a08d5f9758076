package handlers

import (
	"bytes"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/SscSPs/property_management_app/internal/core/domain"
	portssvc "github.com/SscSPs/property_management_app/internal/core/ports/services"
	"github.com/SscSPs/property_management_app/internal/dto"
	"github.com/SscSPs/property_management_app/internal/middleware"
	"github.com/SscSPs/property_management_app/internal/utils/export"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests related to financial reports
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

// newReportingHandler creates a new reportingHandler
func newReportingHandler(rs portssvc.ReportingService) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers routes related to financial reports
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingService) {
	h := newReportingHandler(reportingService)

	reportingGroup := rg.Group("/reports")
	{
		reportingGroup.GET("/profitability", h.getProfitability)
		reportingGroup.GET("/profitability/export", h.exportProfitability)
	}
}

// getProfitability godoc
// @Summary Generate profitability report
// @Description Computes lease revenue, other revenue, expenses and net cashflow per building and per month for an inclusive month range.
// @Tags reports
// @Produce json
// @Param buildingId query []string false "Buildings to include; omit for all" collectionFormat(multi)
// @Param start query string true "First month (YYYY-MM)"
// @Param end query string true "Last month (YYYY-MM)"
// @Param confirmedOnly query bool false "Count only confirmed rent payments"
// @Success 200 {object} dto.ProfitabilityReportResponse
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 401 {object} dto.ErrorResponse "Unauthorized"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Failure 500 {object} dto.ErrorResponse "Failed to generate report"
// @Security BearerAuth
// @Router /reports/profitability [get]
func (h *reportingHandler) getProfitability(c *gin.Context) {
	report, ok := h.profitabilityReport(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, dto.ToProfitabilityReportResponse(report))
}

// exportProfitability godoc
// @Summary Download profitability report
// @Description Same figures as the JSON report, as an Excel workbook.
// @Tags reports
// @Produce application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Param buildingId query []string false "Buildings to include; omit for all" collectionFormat(multi)
// @Param start query string true "First month (YYYY-MM)"
// @Param end query string true "Last month (YYYY-MM)"
// @Param confirmedOnly query bool false "Count only confirmed rent payments"
// @Success 200 {file} file
// @Failure 400 {object} dto.ErrorResponse "Invalid input"
// @Failure 403 {object} dto.ErrorResponse "Forbidden"
// @Security BearerAuth
// @Router /reports/profitability/export [get]
func (h *reportingHandler) exportProfitability(c *gin.Context) {
	report, ok := h.profitabilityReport(c)
	if !ok {
		return
	}
	var buf bytes.Buffer
	if err := export.WriteProfitabilityXLSX(&buf, report); err != nil {
		respondError(c, err, "Failed to export profitability report")
		return
	}
	filename := fmt.Sprintf("profitability_%s_%s.xlsx", report.Start, report.End)
	c.Header("Content-Disposition", `attachment; filename="`+filename+`"`)
	c.Data(http.StatusOK, export.XLSXContentType, buf.Bytes())
}

// profitabilityReport binds the report query and runs it, writing the error
// response itself when it returns false.
func (h *reportingHandler) profitabilityReport(c *gin.Context) (*domain.ProfitabilityReport, bool) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	userID, ok := currentUser(c)
	if !ok {
		return nil, false
	}

	var params dto.ProfitabilityParams
	if !bindQuery(c, &params) {
		return nil, false
	}
	start, err := domain.ParseYearMonth(params.Start)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}
	end, err := domain.ParseYearMonth(params.End)
	if err != nil {
		c.JSON(http.StatusBadRequest, dto.ErrorResponse{Error: err.Error()})
		return nil, false
	}

	logger = logger.With(
		slog.String("user_id", userID),
		slog.String("start", params.Start),
		slog.String("end", params.End),
		slog.Bool("confirmed_only", params.ConfirmedOnly),
	)
	logger.Info("Received request to generate profitability report")

	report, err := h.reportingService.GetProfitabilityReport(c.Request.Context(), userID, params.BuildingIDs, start, end, params.ConfirmedOnly)
	if err != nil {
		respondError(c, err, "Failed to generate profitability report")
		return nil, false
	}

	logger.Info("Profitability report generated successfully",
		slog.Int("buildings", len(report.Buildings)),
		slog.Int("ignored_buildings", len(report.IgnoredBuildingIDs)))
	return report, true
}
