package handlers

import (
	"net/http"

	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"

	"github.com/gin-gonic/gin"
)

// purchaseReturnHandler handles HTTP requests for purchase return documents.
type purchaseReturnHandler struct {
	returnService portssvc.PurchaseReturnSvcFacade
}

func newPurchaseReturnHandler(rs portssvc.PurchaseReturnSvcFacade) *purchaseReturnHandler {
	return &purchaseReturnHandler{
		returnService: rs,
	}
}

// registerPurchaseReturnRoutes registers all purchase return routes.
func registerPurchaseReturnRoutes(rg *gin.RouterGroup, returnService portssvc.PurchaseReturnSvcFacade) {
	h := newPurchaseReturnHandler(returnService)

	returns := rg.Group("/purchase-returns")
	{
		returns.POST("", h.createReturn)
		returns.GET("", h.listReturns)
		returns.GET("/:id", h.getReturn)
		returns.POST("/:id/:action", h.transitionReturn)
	}
}

// createReturn godoc
// @Summary Create a purchase return
// @Description Creates a draft purchase return; a QC-linked return may not exceed the QC's rejected quantity
// @Tags purchase-returns
// @Accept  json
// @Produce  json
// @Param   return body dto.CreatePurchaseReturnRequest true "Return details"
// @Success 201 {object} dto.PurchaseReturnResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 422 {object} ErrorResponse "Quantity exceeds QC rejected quantity"
// @Security BearerAuth
// @Router /purchase-returns [post]
func (h *purchaseReturnHandler) createReturn(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreatePurchaseReturnRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	ret, err := h.returnService.CreateReturn(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToPurchaseReturnResponse(ret))
}

// getReturn godoc
// @Summary Get a purchase return by ID
// @Tags purchase-returns
// @Produce  json
// @Param   id path string true "Return ID"
// @Success 200 {object} dto.PurchaseReturnResponse
// @Failure 404 {object} ErrorResponse "Return not found"
// @Security BearerAuth
// @Router /purchase-returns/{id} [get]
func (h *purchaseReturnHandler) getReturn(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	ret, err := h.returnService.GetReturnByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseReturnResponse(ret))
}

// listReturns godoc
// @Summary List purchase returns
// @Description Retrieves a token-paginated list of purchase returns, optionally filtered by status
// @Tags purchase-returns
// @Produce  json
// @Param   status query string false "Document status filter"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListPurchaseReturnsResponse
// @Security BearerAuth
// @Router /purchase-returns [get]
func (h *purchaseReturnHandler) listReturns(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var params dto.ListPurchaseReturnsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.returnService.ListReturns(c.Request.Context(), params, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// transitionReturn godoc
// @Summary Apply a workflow action to a purchase return
// @Description Applies submit, approve, reject, complete or cancel; completing posts the return journal atomically
// @Tags purchase-returns
// @Accept  json
// @Produce  json
// @Param   id path string true "Return ID"
// @Param   action path string true "Workflow action" Enums(submit, approve, reject, complete, cancel)
// @Param   transition body dto.TransitionRequest false "Optional notes"
// @Success 200 {object} dto.PurchaseReturnResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Return not found"
// @Failure 409 {object} ErrorResponse "Invalid state transition"
// @Security BearerAuth
// @Router /purchase-returns/{id}/{action} [post]
func (h *purchaseReturnHandler) transitionReturn(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	action, ok := workflowActions[c.Param("action")]
	if !ok {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Unknown workflow action"})
		return
	}

	req, ok := bindTransition(c)
	if !ok {
		return
	}

	ret, err := h.returnService.TransitionReturn(c.Request.Context(), c.Param("id"), action, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToPurchaseReturnResponse(ret))
}
