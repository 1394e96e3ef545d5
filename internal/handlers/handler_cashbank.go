package handlers

import (
	"net/http"

	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"

	"github.com/gin-gonic/gin"
)

// cashBankHandler handles HTTP requests for cash/bank transactions.
type cashBankHandler struct {
	cashBankService portssvc.CashBankSvcFacade
}

func newCashBankHandler(cs portssvc.CashBankSvcFacade) *cashBankHandler {
	return &cashBankHandler{
		cashBankService: cs,
	}
}

// registerCashBankRoutes registers all cash/bank transaction routes.
func registerCashBankRoutes(rg *gin.RouterGroup, cashBankService portssvc.CashBankSvcFacade) {
	h := newCashBankHandler(cashBankService)

	cashbank := rg.Group("/cashbank")
	{
		cashbank.POST("", h.createTransaction)
		cashbank.GET("", h.listTransactions)
		cashbank.GET("/:id", h.getTransaction)
		cashbank.POST("/:id/post", h.postTransaction)
	}
}

// createTransaction godoc
// @Summary Create a cash/bank transaction
// @Description Creates a draft transaction with a generated document number
// @Tags cashbank
// @Accept  json
// @Produce  json
// @Param   transaction body dto.CreateCashBankRequest true "Transaction details"
// @Success 201 {object} dto.CashBankResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /cashbank [post]
func (h *cashBankHandler) createTransaction(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateCashBankRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	txn, err := h.cashBankService.CreateTransaction(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToCashBankResponse(txn))
}

// getTransaction godoc
// @Summary Get a cash/bank transaction by ID
// @Description Retrieves a transaction with its detail lines
// @Tags cashbank
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.CashBankResponse
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Security BearerAuth
// @Router /cashbank/{id} [get]
func (h *cashBankHandler) getTransaction(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	txn, err := h.cashBankService.GetTransactionByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCashBankResponse(txn))
}

// listTransactions godoc
// @Summary List cash/bank transactions
// @Description Retrieves a token-paginated list of transactions, newest first; detail lines are omitted
// @Tags cashbank
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListCashBankResponse
// @Security BearerAuth
// @Router /cashbank [get]
func (h *cashBankHandler) listTransactions(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var params dto.ListCashBankParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.cashBankService.ListTransactions(c.Request.Context(), params, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// postTransaction godoc
// @Summary Post a cash/bank transaction
// @Description Emits the balanced journal for a draft transaction and marks it posted atomically
// @Tags cashbank
// @Produce  json
// @Param   id path string true "Transaction ID"
// @Success 200 {object} dto.CashBankResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Transaction not found"
// @Failure 409 {object} ErrorResponse "Transaction already posted"
// @Failure 422 {object} ErrorResponse "Missing account mapping"
// @Security BearerAuth
// @Router /cashbank/{id}/post [post]
func (h *cashBankHandler) postTransaction(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	txn, err := h.cashBankService.PostTransaction(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToCashBankResponse(txn))
}
