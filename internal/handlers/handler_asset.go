package handlers

import (
	"errors"
	"io"
	"net/http"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"

	"github.com/gin-gonic/gin"
)

// workflowActions maps URL action segments to workflow triggers shared by
// all approval documents.
var workflowActions = map[string]domain.WorkflowAction{
	"submit":   domain.ActionSubmit,
	"approve":  domain.ActionApprove,
	"reject":   domain.ActionReject,
	"complete": domain.ActionComplete,
	"cancel":   domain.ActionCancel,
}

// bindTransition binds the optional notes body of a generic workflow action.
func bindTransition(c *gin.Context) (dto.TransitionRequest, bool) {
	var req dto.TransitionRequest
	if err := c.ShouldBindJSON(&req); err != nil && !errors.Is(err, io.EOF) {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return req, false
	}
	return req, true
}

// assetHandler handles HTTP requests for fixed assets, their depreciation
// and the disposal/transfer workflow documents.
type assetHandler struct {
	assetService portssvc.AssetSvcFacade
}

func newAssetHandler(as portssvc.AssetSvcFacade) *assetHandler {
	return &assetHandler{
		assetService: as,
	}
}

// registerAssetRoutes registers all asset-related routes.
func registerAssetRoutes(rg *gin.RouterGroup, assetService portssvc.AssetSvcFacade) {
	h := newAssetHandler(assetService)

	assets := rg.Group("/assets")
	{
		assets.POST("", h.registerAsset)
		assets.GET("", h.listAssets)
		assets.GET("/:id", h.getAsset)
		assets.POST("/:id/depreciate", h.depreciateAsset)
		assets.GET("/:id/depreciations", h.getDepreciationHistory)
	}

	disposals := rg.Group("/asset-disposals")
	{
		disposals.POST("", h.createDisposal)
		disposals.GET("/:id", h.getDisposal)
		disposals.POST("/:id/:action", h.transitionDisposal)
	}

	transfers := rg.Group("/asset-transfers")
	{
		transfers.POST("", h.createTransfer)
		transfers.GET("/:id", h.getTransfer)
		transfers.POST("/:id/:action", h.transitionTransfer)
	}
}

// registerAsset godoc
// @Summary Register a fixed asset
// @Description Registers an acquired asset and posts its acquisition journal atomically
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   asset body dto.RegisterAssetRequest true "Asset details"
// @Success 201 {object} dto.AssetResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 422 {object} ErrorResponse "Missing account mapping"
// @Security BearerAuth
// @Router /assets [post]
func (h *assetHandler) registerAsset(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.RegisterAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	asset, err := h.assetService.RegisterAsset(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToAssetResponse(asset))
}

// getAsset godoc
// @Summary Get an asset by ID
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {object} dto.AssetResponse
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Security BearerAuth
// @Router /assets/{id} [get]
func (h *assetHandler) getAsset(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	asset, err := h.assetService.GetAssetByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToAssetResponse(asset))
}

// listAssets godoc
// @Summary List assets
// @Description Retrieves a token-paginated list of assets, optionally filtered by status
// @Tags assets
// @Produce  json
// @Param   status query string false "Asset status filter" Enums(ACTIVE, DISPOSED)
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListAssetsResponse
// @Security BearerAuth
// @Router /assets [get]
func (h *assetHandler) listAssets(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var params dto.ListAssetsParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.assetService.ListAssets(c.Request.Context(), params, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}

// depreciateAsset godoc
// @Summary Record monthly depreciation
// @Description Records one month of straight-line depreciation and posts its journal; a period already recorded fails
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Asset ID"
// @Param   period body dto.DepreciateAssetRequest true "Depreciation period"
// @Success 201 {object} dto.DepreciationResponse
// @Failure 400 {object} ErrorResponse "Depreciating below salvage value"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Failure 409 {object} ErrorResponse "Period already recorded"
// @Security BearerAuth
// @Router /assets/{id}/depreciate [post]
func (h *assetHandler) depreciateAsset(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.DepreciateAssetRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	entry, err := h.assetService.Depreciate(c.Request.Context(), c.Param("id"), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDepreciationResponse(entry))
}

// getDepreciationHistory godoc
// @Summary Get an asset's depreciation history
// @Description Retrieves recorded depreciation entries, oldest period first
// @Tags assets
// @Produce  json
// @Param   id path string true "Asset ID"
// @Success 200 {array} dto.DepreciationResponse
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Security BearerAuth
// @Router /assets/{id}/depreciations [get]
func (h *assetHandler) getDepreciationHistory(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	history, err := h.assetService.GetDepreciationHistory(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	responses := make([]dto.DepreciationResponse, len(history))
	for i := range history {
		responses[i] = dto.ToDepreciationResponse(&history[i])
	}
	c.JSON(http.StatusOK, responses)
}

// createDisposal godoc
// @Summary Create an asset disposal document
// @Description Creates a draft disposal; completing it later posts the gain/loss journal and marks the asset disposed
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   disposal body dto.CreateDisposalRequest true "Disposal details"
// @Success 201 {object} dto.DisposalResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Security BearerAuth
// @Router /asset-disposals [post]
func (h *assetHandler) createDisposal(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateDisposalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	disposal, err := h.assetService.CreateDisposal(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToDisposalResponse(disposal))
}

// getDisposal godoc
// @Summary Get an asset disposal by ID
// @Tags assets
// @Produce  json
// @Param   id path string true "Disposal ID"
// @Success 200 {object} dto.DisposalResponse
// @Failure 404 {object} ErrorResponse "Disposal not found"
// @Security BearerAuth
// @Router /asset-disposals/{id} [get]
func (h *assetHandler) getDisposal(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	disposal, err := h.assetService.GetDisposalByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDisposalResponse(disposal))
}

// transitionDisposal godoc
// @Summary Apply a workflow action to a disposal
// @Description Applies submit, approve, reject, complete or cancel to a disposal document
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Disposal ID"
// @Param   action path string true "Workflow action" Enums(submit, approve, reject, complete, cancel)
// @Param   transition body dto.TransitionRequest false "Optional notes"
// @Success 200 {object} dto.DisposalResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Disposal not found"
// @Failure 409 {object} ErrorResponse "Invalid state transition"
// @Security BearerAuth
// @Router /asset-disposals/{id}/{action} [post]
func (h *assetHandler) transitionDisposal(c *gin.Context) {
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

	disposal, err := h.assetService.TransitionDisposal(c.Request.Context(), c.Param("id"), action, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToDisposalResponse(disposal))
}

// createTransfer godoc
// @Summary Create an asset transfer document
// @Description Creates a draft transfer; the destination branch must differ from the asset's current branch
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   transfer body dto.CreateTransferRequest true "Transfer details"
// @Success 201 {object} dto.TransferResponse
// @Failure 400 {object} ErrorResponse "Invalid input"
// @Failure 404 {object} ErrorResponse "Asset not found"
// @Security BearerAuth
// @Router /asset-transfers [post]
func (h *assetHandler) createTransfer(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var req dto.CreateTransferRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid request format: " + err.Error()})
		return
	}

	transfer, err := h.assetService.CreateTransfer(c.Request.Context(), req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusCreated, dto.ToTransferResponse(transfer))
}

// getTransfer godoc
// @Summary Get an asset transfer by ID
// @Tags assets
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Success 200 {object} dto.TransferResponse
// @Failure 404 {object} ErrorResponse "Transfer not found"
// @Security BearerAuth
// @Router /asset-transfers/{id} [get]
func (h *assetHandler) getTransfer(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	transfer, err := h.assetService.GetTransferByID(c.Request.Context(), c.Param("id"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}

// transitionTransfer godoc
// @Summary Apply a workflow action to a transfer
// @Description Applies submit, approve, reject, complete or cancel to a transfer document; completing moves the asset's branch and posts the transfer journal atomically
// @Tags assets
// @Accept  json
// @Produce  json
// @Param   id path string true "Transfer ID"
// @Param   action path string true "Workflow action" Enums(submit, approve, reject, complete, cancel)
// @Param   transition body dto.TransitionRequest false "Optional notes"
// @Success 200 {object} dto.TransferResponse
// @Failure 403 {object} ErrorResponse "Forbidden"
// @Failure 404 {object} ErrorResponse "Transfer not found"
// @Failure 409 {object} ErrorResponse "Invalid state transition"
// @Security BearerAuth
// @Router /asset-transfers/{id}/{action} [post]
func (h *assetHandler) transitionTransfer(c *gin.Context) {
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

	transfer, err := h.assetService.TransitionTransfer(c.Request.Context(), c.Param("id"), action, req, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToTransferResponse(transfer))
}
