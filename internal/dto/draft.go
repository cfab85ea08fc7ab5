package dto

import (
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
)

// CreateDraftRequest opens a new journal draft. Every field is optional;
// the date defaults to today and the yearbook to the open one.
type CreateDraftRequest struct {
	Date       string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Source     string `json:"source"`
	Comment    string `json:"comment"`
	YearbookID string `json:"yearbookID"`
}

// UpdateDraftHeaderRequest changes header fields. Nil fields are left as they are.
type UpdateDraftHeaderRequest struct {
	Date       *string `json:"date" binding:"omitempty,datetime=2006-01-02"`
	Source     *string `json:"source"`
	Comment    *string `json:"comment"`
	YearbookID *string `json:"yearbookID"`
}

// UpdateDraftLineRequest is a single-field edit of a draft line.
type UpdateDraftLineRequest struct {
	Field domain.DraftField `json:"field" binding:"required,oneof=accountId comment debit credit isFiscalCorrection fiscalAdjustment"`
	Value string            `json:"value"`
}

// DraftResponse is the full editor state: lines plus freshly computed totals.
type DraftResponse struct {
	DraftID        string                `json:"draftID"`
	Date           string                `json:"date"`
	Source         string                `json:"source"`
	Comment        string                `json:"comment"`
	YearbookID     string                `json:"yearbookID"`
	Lines          []JournalLineResponse `json:"lines"`
	Totals         TotalsResponse        `json:"totals"`
	Submittable    bool                  `json:"submittable"`
	CanRemoveLines bool                  `json:"canRemoveLines"`
}

// RemoveLineResponse reports whether the line was removed along with the draft state.
type RemoveLineResponse struct {
	Removed bool          `json:"removed"`
	Draft   DraftResponse `json:"draft"`
}

// ToDraftResponse converts a draft, recomputing totals from its lines.
func ToDraftResponse(d *domain.JournalDraft) DraftResponse {
	return DraftResponse{
		DraftID:        d.DraftID,
		Date:           d.Date.Format(domain.DateLayout),
		Source:         d.Source,
		Comment:        d.Comment,
		YearbookID:     d.YearbookID,
		Lines:          ToJournalLineResponses(d.Lines),
		Totals:         ToTotalsResponse(d.Lines),
		Submittable:    accounting.ValidateJournalLines(d.Lines) == nil,
		CanRemoveLines: len(d.Lines) > domain.MinDraftLines,
	}
}
