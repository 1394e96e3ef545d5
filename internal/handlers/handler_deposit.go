package handlers

import (
	"net/http"

	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"

	"github.com/gin-gonic/gin"
)

// depositHandler handles HTTP requests for deposit balances.
type depositHandler struct {
	depositService portssvc.DepositSvcFacade
}

func newDepositHandler(ds portssvc.DepositSvcFacade) *depositHandler {
	return &depositHandler{
		depositService: ds,
	}
}

// RegisterDepositRoutes registers all deposit-related routes.
func RegisterDepositRoutes(rg *gin.RouterGroup, depositService portssvc.DepositSvcFacade) {
	h := newDepositHandler(depositService)

	deposits := rg.Group("/deposits")
	{
		deposits.POST("", h.openDeposit)
		deposits.GET("", h.listDeposits)
		deposits.GET("/:id", h.getDeposit)
		deposits.GET("/:id/logs", h.getDepositLogs)
		deposits.POST("/:id/fund", h.fundDeposit)
		deposits.POST("/:id/consume", h.consumeDeposit)
		deposits.POST("/:id/adjust", h.adjustDeposit)
		deposits.POST("/:id/close", h.closeDeposit)
	}
}

// openDeposit godoc
// @Summary Open a deposit
// @Description Opens a new zero-balance deposit for a customer or supplier
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   deposit body dto.OpenDepositRequest true "Deposit details"
// @Success 201 {object} dto.DepositResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /deposits [post]
func (h *depositHandler) openDeposit(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.OpenDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.OpenDeposit(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepositResponse(deposit))
}

// getDeposit godoc
// @Summary Get a deposit by ID
// @Tags deposits
// @Produce  json
// @Param   id path string true "Deposit ID"
// @Success 200 {object} dto.DepositResponse
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Security BearerAuth
// @Router /deposits/{id} [get]
func (h *depositHandler) getDeposit(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	deposit, err := h.depositService.GetDepositByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// listDeposits godoc
// @Summary List deposits
// @Description Retrieves a token-paginated list of deposits, newest first
// @Tags deposits
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListDepositsResponse
// @Security BearerAuth
// @Router /deposits [get]
func (h *depositHandler) listDeposits(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var params dto.ListDepositsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.depositService.ListDeposits(c.Request.Context(), params, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// getDepositLogs godoc
// @Summary Get a deposit's mutation log
// @Description Retrieves the append-only mutation ledger of a deposit, oldest first
// @Tags deposits
// @Produce  json
// @Param   id path string true "Deposit ID"
// @Success 200 {array} dto.DepositLogResponse
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Security BearerAuth
// @Router /deposits/{id}/logs [get]
func (h *depositHandler) getDepositLogs(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	logs, err := h.depositService.GetDepositLogs(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositLogResponses(logs))
}

// fundDeposit godoc
// @Summary Fund a deposit
// @Description Increases total and remaining; the amount is an Indonesian-formatted string such as "1.000.000,50"
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   id path string true "Deposit ID"
// @Param   funding body dto.FundDepositRequest true "Funding details"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} ErrorResponse "Invalid amount"
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Failure 409 {object} ErrorResponse "Deposit closed"
// @Security BearerAuth
// @Router /deposits/{id}/fund [post]
func (h *depositHandler) fundDeposit(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.FundDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.Fund(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// consumeDeposit godoc
// @Summary Consume from a deposit
// @Description Uses part of the remaining balance; fails when the amount exceeds it
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   id path string true "Deposit ID"
// @Param   consumption body dto.ConsumeDepositRequest true "Consumption details"
// @Success 200 {object} dto.DepositResponse
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Failure 422 {object} ErrorResponse "Insufficient remaining balance"
// @Security BearerAuth
// @Router /deposits/{id}/consume [post]
func (h *depositHandler) consumeDeposit(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.ConsumeDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.Consume(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// adjustDeposit godoc
// @Summary Adjust a deposit
// @Description Applies a signed correction to total and remaining; the note is mandatory
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   id path string true "Deposit ID"
// @Param   adjustment body dto.AdjustDepositRequest true "Adjustment details"
// @Success 200 {object} dto.DepositResponse
// @Failure 400 {object} ErrorResponse "Missing note or invalid amount"
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Security BearerAuth
// @Router /deposits/{id}/adjust [post]
func (h *depositHandler) adjustDeposit(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.AdjustDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.Adjust(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}

// closeDeposit godoc
// @Summary Close a deposit
// @Description Marks an active deposit closed; closing twice fails
// @Tags deposits
// @Accept  json
// @Produce  json
// @Param   id path string true "Deposit ID"
// @Param   closure body dto.CloseDepositRequest true "Closure reason"
// @Success 200 {object} dto.DepositResponse
// @Failure 404 {object} ErrorResponse "Deposit not found"
// @Failure 409 {object} ErrorResponse "Deposit already closed"
// @Security BearerAuth
// @Router /deposits/{id}/close [post]
func (h *depositHandler) closeDeposit(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CloseDepositRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	deposit, err := h.depositService.Close(c.Request.Context(), c.Param("id"), req.Reason, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDepositResponse(deposit))
}
