package handlers

import (
	"log/slog"
	"net/http"

	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/SscSPs/bookkeeping_console/internal/middleware"
	"github.com/gin-gonic/gin"
)

// draftHandler serves the general journal editor. Every edit answers with the
// whole draft and freshly computed totals.
type draftHandler struct {
	draftService portssvc.JournalDraftSvc
}

func registerDraftRoutes(rg *gin.RouterGroup, svc portssvc.JournalDraftSvc) {
	h := &draftHandler{draftService: svc}

	drafts := rg.Group("/journal-drafts")
	{
		drafts.POST("", h.createDraft)
		drafts.GET("/:draftID", h.getDraft)
		drafts.PATCH("/:draftID", h.updateHeader)
		drafts.DELETE("/:draftID", h.discardDraft)
		drafts.POST("/:draftID/lines", h.addLine)
		drafts.PATCH("/:draftID/lines/:lineID", h.updateLine)
		drafts.DELETE("/:draftID/lines/:lineID", h.removeLine)
		drafts.POST("/:draftID/submit", h.submitDraft)
	}
}

// createDraft godoc
// @Summary Open a journal draft
// @Description Starts with two empty lines. The date defaults to today and the yearbook to the open one.
// @Tags journal-drafts
// @Accept  json
// @Produce  json
// @Param   draft body dto.CreateDraftRequest false "Header"
// @Success 201 {object} dto.DraftResponse
// @Router /journal-drafts [post]
func (h *draftHandler) createDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.CreateDraftRequest
	if c.Request.ContentLength != 0 {
		if err := c.ShouldBindJSON(&req); err != nil {
			respondBindError(c, logger, err)
			return
		}
	}

	d, err := h.draftService.CreateDraft(c.Request.Context(), req)
	if err != nil {
		respondError(c, logger, err, "Failed to open draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToDraftResponse(d))
}

// getDraft godoc
// @Summary Get a draft with its totals
// @Tags journal-drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /journal-drafts/{draftID} [get]
func (h *draftHandler) getDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	d, err := h.draftService.GetDraft(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		respondError(c, logger, err, "Failed to retrieve draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

// updateHeader godoc
// @Summary Change draft date, source, comment or yearbook
// @Tags journal-drafts
// @Accept  json
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Param   header body dto.UpdateDraftHeaderRequest true "Fields to change"
// @Success 200 {object} dto.DraftResponse
// @Router /journal-drafts/{draftID} [patch]
func (h *draftHandler) updateHeader(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDraftHeaderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	d, err := h.draftService.UpdateDraftHeader(c.Request.Context(), c.Param("draftID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update draft")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

// discardDraft godoc
// @Summary Discard a draft
// @Tags journal-drafts
// @Param   draftID path string true "Draft ID"
// @Success 204
// @Failure 404 {object} map[string]string "Draft not found"
// @Router /journal-drafts/{draftID} [delete]
func (h *draftHandler) discardDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	if err := h.draftService.DiscardDraft(c.Request.Context(), c.Param("draftID")); err != nil {
		respondError(c, logger, err, "Failed to discard draft")
		return
	}
	c.Status(http.StatusNoContent)
}

// addLine godoc
// @Summary Append an empty line
// @Tags journal-drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Success 200 {object} dto.DraftResponse
// @Router /journal-drafts/{draftID}/lines [post]
func (h *draftHandler) addLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	d, err := h.draftService.AddLine(c.Request.Context(), c.Param("draftID"))
	if err != nil {
		respondError(c, logger, err, "Failed to add line")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

// updateLine godoc
// @Summary Edit one field of a line
// @Description A positive debit clears the credit and vice versa. Clearing isFiscalCorrection drops the adjustment.
// @Tags journal-drafts
// @Accept  json
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Param   lineID path string true "Line ID"
// @Param   edit body dto.UpdateDraftLineRequest true "Field and value"
// @Success 200 {object} dto.DraftResponse
// @Failure 400 {object} map[string]string "Bad value"
// @Router /journal-drafts/{draftID}/lines/{lineID} [patch]
func (h *draftHandler) updateLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	var req dto.UpdateDraftLineRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		respondBindError(c, logger, err)
		return
	}
	d, err := h.draftService.UpdateLine(c.Request.Context(), c.Param("draftID"), c.Param("lineID"), req)
	if err != nil {
		respondError(c, logger, err, "Failed to update line")
		return
	}
	c.JSON(http.StatusOK, dto.ToDraftResponse(d))
}

// removeLine godoc
// @Summary Remove a line
// @Description Refused, with removed=false, while the draft has only two lines.
// @Tags journal-drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Param   lineID path string true "Line ID"
// @Success 200 {object} dto.RemoveLineResponse
// @Router /journal-drafts/{draftID}/lines/{lineID} [delete]
func (h *draftHandler) removeLine(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	removed, d, err := h.draftService.RemoveLine(c.Request.Context(), c.Param("draftID"), c.Param("lineID"))
	if err != nil {
		respondError(c, logger, err, "Failed to remove line")
		return
	}
	c.JSON(http.StatusOK, dto.RemoveLineResponse{Removed: removed, Draft: dto.ToDraftResponse(d)})
}

// submitDraft godoc
// @Summary Post the draft as a journal
// @Description Rejected while unbalanced or while a line has no account; the draft then keeps its lines.
// @Tags journal-drafts
// @Produce  json
// @Param   draftID path string true "Draft ID"
// @Success 201 {object} dto.JournalResponse
// @Failure 400 {object} map[string]string "Total Debit dan Kredit harus seimbang (balance)."
// @Router /journal-drafts/{draftID}/submit [post]
func (h *draftHandler) submitDraft(c *gin.Context) {
	logger := middleware.GetLoggerFromCtx(c.Request.Context())
	draftID := c.Param("draftID")
	entry, err := h.draftService.SubmitDraft(c.Request.Context(), draftID)
	if err != nil {
		respondError(c, logger.With(slog.String("draft_id", draftID)), err, "Failed to submit draft")
		return
	}
	c.JSON(http.StatusCreated, dto.ToJournalResponse(entry))
}
