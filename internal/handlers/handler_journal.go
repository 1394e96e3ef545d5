package handlers

import (
	"net/http"

	"github.com/nusankara/erp_backoffice/internal/core/domain"
	portssvc "github.com/nusankara/erp_backoffice/internal/core/ports/services"
	"github.com/nusankara/erp_backoffice/internal/dto"

	"github.com/gin-gonic/gin"
)

// journalHandler exposes read access to posted journal lines. Writes only
// happen through business events; there is no endpoint that posts raw lines.
type journalHandler struct {
	journalService portssvc.JournalSvcFacade
}

func newJournalHandler(js portssvc.JournalSvcFacade) *journalHandler {
	return &journalHandler{
		journalService: js,
	}
}

// registerJournalRoutes registers all journal read routes.
func registerJournalRoutes(rg *gin.RouterGroup, journalService portssvc.JournalSvcFacade) {
	h := newJournalHandler(journalService)

	journal := rg.Group("/journal")
	{
		journal.GET("", h.listPostings)
		journal.GET("/postings/:reference", h.getPosting)
		journal.GET("/source/:sourceType/:sourceID", h.getLinesBySource)
	}
}

// getPosting godoc
// @Summary Get a posting by reference
// @Description Retrieves every line of one posting reference; lines of a reference always balance
// @Tags journal
// @Produce  json
// @Param   reference path string true "Posting reference"
// @Success 200 {array} dto.JournalLineResponse
// @Failure 404 {object} ErrorResponse "Reference not found"
// @Security BearerAuth
// @Router /journal/postings/{reference} [get]
func (h *journalHandler) getPosting(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	lines, err := h.journalService.GetPosting(c.Request.Context(), c.Param("reference"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalLineResponses(lines))
}

// getLinesBySource godoc
// @Summary Get journal lines by source document
// @Description Retrieves all lines tagged to a source document such as a cash/bank transaction or asset disposal
// @Tags journal
// @Produce  json
// @Param   sourceType path string true "Source type" Enums(DEPOSIT, VOUCHER_REQUEST, CASHBANK_TRANSACTION, ASSET, ASSET_DEPRECIATION, ASSET_DISPOSAL, ASSET_TRANSFER, PURCHASE_RETURN)
// @Param   sourceID path string true "Source document ID"
// @Success 200 {array} dto.JournalLineResponse
// @Security BearerAuth
// @Router /journal/source/{sourceType}/{sourceID} [get]
func (h *journalHandler) getLinesBySource(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	sourceType := domain.SourceType(c.Param("sourceType"))
	lines, err := h.journalService.GetLinesBySource(c.Request.Context(), sourceType, c.Param("sourceID"), actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, dto.ToJournalLineResponses(lines))
}

// listPostings godoc
// @Summary List journal lines
// @Description Retrieves a token-paginated list of journal lines, newest posting date first
// @Tags journal
// @Produce  json
// @Param   limit query int false "Page size" default(20)
// @Param   nextToken query string false "Pagination token"
// @Success 200 {object} dto.ListJournalResponse
// @Security BearerAuth
// @Router /journal [get]
func (h *journalHandler) listPostings(c *gin.Context) {
	actorID, ok := actorFromContext(c)
	if !ok {
		return
	}

	var params dto.ListJournalParams
	if err := c.ShouldBindQuery(&params); err != nil {
		c.JSON(http.StatusBadRequest, ErrorResponse{Error: "Invalid query parameters: " + err.Error()})
		return
	}

	resp, err := h.journalService.ListPostings(c.Request.Context(), params, actorID)
	if err != nil {
		respondError(c, err)
		return
	}

	c.JSON(http.StatusOK, resp)
}
