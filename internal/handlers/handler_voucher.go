package handlers

import (
	"errors"
	"io"
	"net/http"

	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"

	"github.com/gin-gonic/gin"
)

// voucherHandler handles HTTP requests for voucher request workflow.
type voucherHandler struct {
	voucherService portssvc.VoucherSvcFacade
}

func newVoucherHandler(vs portssvc.VoucherSvcFacade) *voucherHandler {
	return &voucherHandler{
		voucherService: vs,
	}
}

// registerVoucherRoutes registers all voucher-related routes.
func registerVoucherRoutes(rg *gin.RouterGroup, voucherService portssvc.VoucherSvcFacade) {
	h := newVoucherHandler(voucherService)

	vouchers := rg.Group("/vouchers")
	{
		vouchers.POST("", h.createVoucher)
		vouchers.GET("", h.listVouchers)
		vouchers.GET("/:id", h.getVoucher)
		vouchers.POST("/:id/submit", h.submitVoucher)
		vouchers.POST("/:id/approve", h.approveVoucher)
		vouchers.POST("/:id/reject", h.rejectVoucher)
		vouchers.POST("/:id/cancel", h.cancelVoucher)
	}
}

// createVoucher godoc
// @Summary Create a voucher request
// @Description Creates a payment or receipt voucher request in draft status
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   voucher body dto.CreateVoucherRequest true "Voucher details"
// @Success 201 {object} dto.VoucherResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /vouchers [post]
func (h *voucherHandler) createVoucher(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.CreateVoucher(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToVoucherResponse(voucher))
}

// getVoucher godoc
// @Summary Get a voucher request by ID
// @Tags vouchers
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Security BearerAuth
// @Router /vouchers/{id} [get]
func (h *voucherHandler) getVoucher(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.GetVoucherByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// listVouchers godoc
// @Summary List voucher requests
// @Description Retrieves a token-paginated list of voucher requests, optionally filtered by status
// @Tags vouchers
// @Produce  json
// @Param   status query string false "Document status filter"
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListVouchersResponse
// @Security BearerAuth
// @Router /vouchers [get]
func (h *voucherHandler) listVouchers(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var params dto.ListVouchersParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.voucherService.ListVouchers(c.Request.Context(), params, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// submitVoucher godoc
// @Summary Submit a voucher request
// @Description Moves a draft voucher to pending approval
// @Tags vouchers
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Success 200 {object} dto.VoucherResponse
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Invalid state transition"
// @Security BearerAuth
// @Router /vouchers/{id}/submit [post]
func (h *voucherHandler) submitVoucher(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	voucher, err := h.voucherService.Submit(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// approveVoucher godoc
// @Summary Approve a voucher request
// @Description Approves a pending voucher, optionally auto-creating and posting the realizing cash/bank transaction in the same database transaction
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Param   approval body dto.ApproveVoucherRequest false "Approval details"
// @Success 200 {object} dto.VoucherResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Voucher not found"
// @Failure 409 {object} ErrorResponse "Invalid state transition"
// @Failure 422 {object} ErrorResponse "Missing account mapping for auto-realization"
// @Security BearerAuth
// @Router /vouchers/{id}/approve [post]
func (h *voucherHandler) approveVoucher(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	// The body is optional; a bare approve carries no notes
	var req dto.ApproveVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.Approve(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// rejectVoucher godoc
// @Summary Reject a voucher request
// @Description Rejects a pending voucher; the reason is mandatory
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Param   rejection body dto.RejectVoucherRequest true "Rejection reason"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} ErrorResponse "Missing reason"
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 409 {object} ErrorResponse "Invalid state transition"
// @Security BearerAuth
// @Router /vouchers/{id}/reject [post]
func (h *voucherHandler) rejectVoucher(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.RejectVoucherRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.Reject(c.Request.Context(), c.Param("id"), req.Reason, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}

// cancelVoucher godoc
// @Summary Cancel a voucher request
// @Description Cancels a draft or approved voucher; the reason is mandatory
// @Tags vouchers
// @Accept  json
// @Produce  json
// @Param   id path string true "Voucher ID"
// @Param   cancellation body dto.CancelRequest true "Cancellation reason"
// @Success 200 {object} dto.VoucherResponse
// @Failure 400 {object} ErrorResponse "Missing reason"
// @Failure 409 {object} ErrorResponse "Invalid state transition"
// @Security BearerAuth
// @Router /vouchers/{id}/cancel [post]
func (h *voucherHandler) cancelVoucher(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CancelRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	voucher, err := h.voucherService.Cancel(c.Request.Context(), c.Param("id"), req.Reason, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToVoucherResponse(voucher))
}
