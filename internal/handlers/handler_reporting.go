package handlers

import (
	"net/http"
	"time"

	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"

	"github.com/gin-gonic/gin"
)

// reportDateLayout is the date format accepted by report query parameters.
const reportDateLayout = "2006-01-02"

// reportingHandler exposes read-only financial reports derived from the
// journal and the chart of accounts.
type reportingHandler struct {
	reportingService portssvc.ReportingSvcFacade
}

func newReportingHandler(rs portssvc.ReportingSvcFacade) *reportingHandler {
	return &reportingHandler{
		reportingService: rs,
	}
}

// registerReportingRoutes registers all report routes.
func registerReportingRoutes(rg *gin.RouterGroup, reportingService portssvc.ReportingSvcFacade) {
	h := newReportingHandler(reportingService)

	reports := rg.Group("/reports")
	{
		reports.GET("/trial-balance", h.trialBalance)
		reports.GET("/profit-loss", h.profitAndLoss)
	}
}

// trialBalance godoc
// @Summary Trial balance report
// @Description Lists every account's running balance on its normal side with column totals
// @Tags reports
// @Produce  json
// @Success 200 {object} dto.TrialBalanceResponse
// @Security BearerAuth
// @Router /reports/trial-balance [get]
func (h *reportingHandler) trialBalance(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	report, err := h.reportingService.TrialBalance(c.Request.Context(), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTrialBalanceResponse(report))
}

// profitAndLoss godoc
// @Summary Profit and loss report
// @Description Aggregates revenue and expense journal movement for the given period
// @Tags reports
// @Produce  json
// @Param   from query string true "Period start date (YYYY-MM-DD)"
// @Param   to query string true "Period end date (YYYY-MM-DD)"
// @Success 200 {object} dto.ProfitAndLossResponse
// @Failure 400 {object} ErrorResponse "Invalid or missing dates"
// @Security BearerAuth
// @Router /reports/profit-loss [get]
func (h *reportingHandler) profitAndLoss(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var params dto.ProfitAndLossParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	from, err := time.Parse(reportDateLayout, params.From)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid from date, expected YYYY-MM-DD"})
		return
	}
	to, err := time.Parse(reportDateLayout, params.To)
	if err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid to date, expected YYYY-MM-DD"})
		return
	}
	if to.Before(from) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Period end date must not precede the start date"})
		return
	}

	report, err := h.reportingService.ProfitAndLoss(c.Request.Context(), from, to, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToProfitAndLossResponse(report))
}
