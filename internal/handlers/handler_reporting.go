package handlers

import (
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/SscSPs/bookkeeping_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

// reportingHandler handles HTTP requests for financial reports.
type reportingHandler struct {
	reportingService portssvc.ReportingService
}

func registerReportingRoutes(rg *gin.RouterGroup, svc portssvc.ReportingService) {
	h := &reportingHandler{reportingService: svc}

	rg.GET("/dashboard", h.getDashboard)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.getTrialBalance)
		reports.GET("/income-statement", h.getIncomeStatement)
	}
}

// getTrialBalance godoc
// @Summary Trial balance
// @Tags reports
// @Produce  json
// @Param   yearbookID query string false "Yearbook, defaults to the open one"
// @Success 200 {object} dto.TrialBalanceResponse
// @Failure 404 {object} map[string]string "Yearbook not found"
// @Router /reports/trial-balance [get]
func (h *reportingHandler) getTrialBalance(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	tb, err := h.reportingService.TrialBalance(c.Request.Context(), params.YearbookID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate trial balance")
		return
	}
	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(tb))
}

// getIncomeStatement godoc
// @Summary Income statement
// @Tags reports
// @Produce  json
// @Param   yearbookID query string false "Yearbook, defaults to the open one"
// @Success 200 {object} dto.IncomeStatementResponse
// @Failure 404 {object} map[string]string "Yearbook not found"
// @Router /reports/income-statement [get]
func (h *reportingHandler) getIncomeStatement(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var params dto.ReportParams
	if err := c.ShouldBindQuery(&params); err != nil {
		respondBindError(c, logger, err)
		return
	}
	is, err := h.reportingService.IncomeStatement(c.Request.Context(), params.YearbookID)
	if err != nil {
		respondError(c, logger, err, "Failed to generate income statement")
		return
	}
	c.JSON(http.StatusOK, dto.ToIncomeStatementResponse(is))
}

// getDashboard godoc
// @Summary Dashboard summary
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.DashboardResponse
// @Router /dashboard [get]
func (h *reportingHandler) getDashboard(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	summary, err := h.reportingService.Dashboard(c.Request.Context())
	if err != nil {
		respondError(c, logger, err, "Failed to build dashboard")
		return
	}
	c.JSON(http.StatusOK, dto.ToDashboardResponse(summary))
}
