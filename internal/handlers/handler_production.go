package handlers

import (
	"net/http"

	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"
	"github.com/nusankara/erp_backoffice/internal/utils"

	"github.com/gin-gonic/gin"
)

// productionHandler handles HTTP requests for quality control and
// material issue documents.
type productionHandler struct {
	productionService portssvc.ProductionSvcFacade
}

func newProductionHandler(ps portssvc.ProductionSvcFacade) *productionHandler {
	return &productionHandler{
		productionService: ps,
	}
}

// registerProductionRoutes registers all QC and material issue routes.
func registerProductionRoutes(rg *gin.RouterGroup, productionService portssvc.ProductionSvcFacade) {
	h := newProductionHandler(productionService)

	qc := rg.Group("/qc")
	{
		qc.POST("", h.createQC)
		qc.GET("/:id", h.getQC)
		qc.POST("/:id/preview", h.previewInspection)
		qc.POST("/:id/result", h.recordResult)
	}

	issues := rg.Group("/material-issues")
	{
		issues.POST("", h.createMaterialIssue)
		issues.GET("/:id", h.getMaterialIssue)
		issues.POST("/:id/issue", h.issueMaterials)
	}
}

// createQC godoc
// @Summary Open a quality-control inspection
// @Description Opens an inspection over a received quantity
// @Tags production
// @Accept  json
// @Produce  json
// @Param   qc body dto.CreateQCRequest true "Inspection details"
// @Success 201 {object} dto.QCResponse
// @Failure 400 {object} ErrorResponse "Invalid quantity"
// @Security BearerAuth
// @Router /qc [post]
func (h *productionHandler) createQC(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateQCRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	qc, err := h.productionService.CreateQC(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToQCResponse(qc))
}

// getQC godoc
// @Summary Get a quality-control record by ID
// @Tags production
// @Produce  json
// @Param   id path string true "QC ID"
// @Success 200 {object} dto.QCResponse
// @Failure 404 {object} ErrorResponse "QC record not found"
// @Security BearerAuth
// @Router /qc/{id} [get]
func (h *productionHandler) getQC(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	qc, err := h.productionService.GetQCByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQCResponse(qc))
}

// previewInspection godoc
// @Summary Preview an inspection result
// @Description Returns the clamped pass/reject split for a tentative input without saving anything; used for live recomputation while the inspector types
// @Tags production
// @Accept  json
// @Produce  json
// @Param   id path string true "QC ID"
// @Param   preview body dto.PreviewInspectionRequest true "Tentative quantities"
// @Success 200 {object} dto.InspectionPreviewResponse
// @Failure 400 {object} ErrorResponse "Invalid quantity"
// @Failure 404 {object} ErrorResponse "QC record not found"
// @Security BearerAuth
// @Router /qc/{id}/preview [post]
func (h *productionHandler) previewInspection(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.PreviewInspectionRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	qc, err := h.productionService.GetQCByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	passed, err := utils.ParseIDRAmount(req.PassedQty)
	if err != nil {
		respondError(c, err)
		return
	}
	rejected, err := utils.ParseIDRAmount(req.RejectedQty)
	if err != nil {
		respondError(c, err)
		return
	}

	clamped := h.productionService.PreviewInspection(c.Request.Context(), passed, rejected, qc.InspectableQty)

	c.JSON(http.StatusOK, dto.InspectionPreviewResponse{
		PassedQty:    clamped,
		RejectedQty:  rejected,
		RemainingQty: qc.InspectableQty.Sub(clamped).Sub(rejected),
		Clamped:      !clamped.Equal(passed),
	})
}

// recordResult godoc
// @Summary Record an inspection result
// @Description Persists the final pass/reject split; a total exceeding the inspectable quantity is rejected outright
// @Tags production
// @Accept  json
// @Produce  json
// @Param   id path string true "QC ID"
// @Param   result body dto.RecordQCResultRequest true "Final quantities"
// @Success 200 {object} dto.QCResponse
// @Failure 404 {object} ErrorResponse "QC record not found"
// @Failure 409 {object} ErrorResponse "Result already recorded"
// @Failure 422 {object} ErrorResponse "Quantity exceeds inspectable"
// @Security BearerAuth
// @Router /qc/{id}/result [post]
func (h *productionHandler) recordResult(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.RecordQCResultRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	qc, err := h.productionService.RecordResult(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToQCResponse(qc))
}

// createMaterialIssue godoc
// @Summary Create a material issue
// @Description Creates a draft material issue for a production plan
// @Tags production
// @Accept  json
// @Produce  json
// @Param   issue body dto.CreateMaterialIssueRequest true "Issue details"
// @Success 201 {object} dto.MaterialIssueResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Security BearerAuth
// @Router /material-issues [post]
func (h *productionHandler) createMaterialIssue(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateMaterialIssueRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	issue, err := h.productionService.CreateMaterialIssue(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToMaterialIssueResponse(issue))
}

// getMaterialIssue godoc
// @Summary Get a material issue by ID
// @Description Retrieves a material issue with its item lines
// @Tags production
// @Produce  json
// @Param   id path string true "Issue ID"
// @Success 200 {object} dto.MaterialIssueResponse
// @Failure 404 {object} ErrorResponse "Issue not found"
// @Security BearerAuth
// @Router /material-issues/{id} [get]
func (h *productionHandler) getMaterialIssue(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	issue, err := h.productionService.GetMaterialIssueByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMaterialIssueResponse(issue))
}

// issueMaterials godoc
// @Summary Issue the materials
// @Description Finalizes a draft issue, locking and reducing stock rows; an item exceeding available stock fails the whole issue
// @Tags production
// @Produce  json
// @Param   id path string true "Issue ID"
// @Success 200 {object} dto.MaterialIssueResponse
// @Failure 404 {object} ErrorResponse "Issue not found"
// @Failure 409 {object} ErrorResponse "Issue already finalized"
// @Failure 422 {object} ErrorResponse "Quantity exceeds available stock"
// @Security BearerAuth
// @Router /material-issues/{id}/issue [post]
func (h *productionHandler) issueMaterials(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	issue, err := h.productionService.IssueMaterials(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToMaterialIssueResponse(issue))
}
