package services_test

import (
	"context"
	"testing"
	"time"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
	"github.com/stretchr/testify/suite"
)

type DraftServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	svc *portssvc.ServiceContainer
}

func (s *DraftServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc, _ = seededContainer(s.T())
}

func TestDraftServiceTestSuite(t *testing.T) {
	suite.Run(t, new(DraftServiceTestSuite))
}

func (s *DraftServiceTestSuite) newDraft() *domain.JournalDraft {
	d, err := s.svc.Draft.CreateDraft(s.ctx, dto.CreateDraftRequest{Date: "2025-02-10", Source: "Penyesuaian"})
	s.Require().NoError(err)
	return d
}

func (s *DraftServiceTestSuite) set(draftID, lineID string, field domain.DraftField, value string) *domain.JournalDraft {
	d, err := s.svc.Draft.UpdateLine(s.ctx, draftID, lineID, dto.UpdateDraftLineRequest{Field: field, Value: value})
	s.Require().NoError(err)
	return d
}

func (s *DraftServiceTestSuite) journalCount() int {
	res, err := s.svc.Journal.ListJournals(s.ctx, dto.ListJournalsParams{Limit: 100})
	s.Require().NoError(err)
	return len(res.Journals)
}

func (s *DraftServiceTestSuite) TestCreateDraft_DefaultsToOpenYearbook() {
	d := s.newDraft()
	s.Len(d.Lines, domain.MinDraftLines)
	s.Equal("yb2", d.YearbookID)
	s.NotEmpty(d.DraftID)

	// without a date the draft lands inside the open yearbook
	d2, err := s.svc.Draft.CreateDraft(s.ctx, dto.CreateDraftRequest{})
	s.Require().NoError(err)
	s.Equal("yb2", d2.YearbookID)
	s.False(d2.Date.Before(time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)))
}

func (s *DraftServiceTestSuite) TestSubmit_BalancedDraftPostsOneEntry() {
	d := s.newDraft()
	first, second := d.Lines[0].LineID, d.Lines[1].LineID
	s.set(d.DraftID, first, domain.FieldAccountID, "coa-kas")
	s.set(d.DraftID, first, domain.FieldDebit, "500000")
	s.set(d.DraftID, second, domain.FieldAccountID, "coa-modal")
	d = s.set(d.DraftID, second, domain.FieldCredit, "500000")

	totals := accounting.ComputeTotals(d.Lines)
	s.True(totals.Difference.IsZero())

	entry, err := s.svc.Draft.SubmitDraft(s.ctx, d.DraftID)
	s.Require().NoError(err)
	s.Len(entry.Lines, 2)
	s.Equal(domain.Posted, entry.Status)
	s.Equal("yb2", entry.YearbookID)
	s.Equal(1, s.journalCount())

	_, err = s.svc.Draft.GetDraft(s.ctx, d.DraftID)
	s.ErrorIs(err, apperrors.ErrNotFound, "a submitted draft is forgotten")
}

func (s *DraftServiceTestSuite) TestSubmit_UnbalancedDraftIsRejected() {
	d := s.newDraft()
	first, second := d.Lines[0].LineID, d.Lines[1].LineID
	s.set(d.DraftID, first, domain.FieldAccountID, "coa-kas")
	s.set(d.DraftID, first, domain.FieldDebit, "500000")
	s.set(d.DraftID, second, domain.FieldAccountID, "coa-modal")
	d = s.set(d.DraftID, second, domain.FieldCredit, "300000")

	s.True(accounting.ComputeTotals(d.Lines).Difference.Equal(dec("200000")))

	_, err := s.svc.Draft.SubmitDraft(s.ctx, d.DraftID)
	s.ErrorIs(err, accounting.ErrJournalUnbalanced)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(0, s.journalCount())

	kept, err := s.svc.Draft.GetDraft(s.ctx, d.DraftID)
	s.Require().NoError(err)
	s.Require().Len(kept.Lines, 2)
	s.True(kept.Lines[0].Debit.Equal(dec("500000")))
	s.True(kept.Lines[1].Credit.Equal(dec("300000")))
}

func (s *DraftServiceTestSuite) TestSubmit_MissingAccountIsRejected() {
	d := s.newDraft()
	s.set(d.DraftID, d.Lines[0].LineID, domain.FieldAccountID, "coa-kas")
	s.set(d.DraftID, d.Lines[0].LineID, domain.FieldDebit, "100")
	s.set(d.DraftID, d.Lines[1].LineID, domain.FieldCredit, "100")

	_, err := s.svc.Draft.SubmitDraft(s.ctx, d.DraftID)
	s.ErrorIs(err, accounting.ErrLineMissingAccount)
	s.Equal(0, s.journalCount())
}

func (s *DraftServiceTestSuite) TestUpdateLine_DebitAndCreditAreExclusive() {
	d := s.newDraft()
	line := d.Lines[0].LineID
	s.set(d.DraftID, line, domain.FieldCredit, "750")
	d = s.set(d.DraftID, line, domain.FieldDebit, "250")
	s.True(d.Lines[0].Debit.Equal(dec("250")))
	s.True(d.Lines[0].Credit.IsZero())

	d = s.set(d.DraftID, line, domain.FieldCredit, "10")
	s.True(d.Lines[0].Debit.IsZero())
	s.True(d.Lines[0].Credit.Equal(dec("10")))
}

func (s *DraftServiceTestSuite) TestRemoveLine_RefusedAtTwoLines() {
	d := s.newDraft()

	removed, d, err := s.svc.Draft.RemoveLine(s.ctx, d.DraftID, d.Lines[0].LineID)
	s.Require().NoError(err)
	s.False(removed)
	s.Len(d.Lines, 2)

	d, err = s.svc.Draft.AddLine(s.ctx, d.DraftID)
	s.Require().NoError(err)
	s.Require().Len(d.Lines, 3)

	removed, d, err = s.svc.Draft.RemoveLine(s.ctx, d.DraftID, d.Lines[2].LineID)
	s.Require().NoError(err)
	s.True(removed)
	s.Len(d.Lines, 2)
}

func (s *DraftServiceTestSuite) TestReturnedDraftIsACopy() {
	d := s.newDraft()
	d.Lines[0].AccountID = "tampered"

	fresh, err := s.svc.Draft.GetDraft(s.ctx, d.DraftID)
	s.Require().NoError(err)
	s.Empty(fresh.Lines[0].AccountID)
}

func (s *DraftServiceTestSuite) TestUpdateHeader() {
	d := s.newDraft()
	comment := "Accrual"
	badDate := "10/02/2025"

	_, err := s.svc.Draft.UpdateDraftHeader(s.ctx, d.DraftID, dto.UpdateDraftHeaderRequest{Date: &badDate})
	s.ErrorIs(err, apperrors.ErrValidation)

	d, err = s.svc.Draft.UpdateDraftHeader(s.ctx, d.DraftID, dto.UpdateDraftHeaderRequest{Comment: &comment})
	s.Require().NoError(err)
	s.Equal("Accrual", d.Comment)
	s.Equal("Penyesuaian", d.Source)
}

func (s *DraftServiceTestSuite) TestSubmit_ClosedYearbookRejected() {
	d := s.newDraft()
	yb1 := "yb1"
	_, err := s.svc.Draft.UpdateDraftHeader(s.ctx, d.DraftID, dto.UpdateDraftHeaderRequest{YearbookID: &yb1})
	s.Require().NoError(err)
	s.set(d.DraftID, d.Lines[0].LineID, domain.FieldAccountID, "coa-kas")
	s.set(d.DraftID, d.Lines[0].LineID, domain.FieldDebit, "1")
	s.set(d.DraftID, d.Lines[1].LineID, domain.FieldAccountID, "coa-modal")
	s.set(d.DraftID, d.Lines[1].LineID, domain.FieldCredit, "1")

	_, err = s.svc.Draft.SubmitDraft(s.ctx, d.DraftID)
	s.ErrorIs(err, apperrors.ErrValidation)
	s.Equal(0, s.journalCount())
}

func (s *DraftServiceTestSuite) TestDiscardAndPurge() {
	d := s.newDraft()
	s.Require().NoError(s.svc.Draft.DiscardDraft(s.ctx, d.DraftID))
	s.ErrorIs(s.svc.Draft.DiscardDraft(s.ctx, d.DraftID), apperrors.ErrNotFound)

	s.newDraft()
	s.Equal(0, s.svc.Draft.PurgeExpired(s.ctx, time.Now()))
	s.Equal(1, s.svc.Draft.PurgeExpired(s.ctx, time.Now().Add(2*time.Hour)))
}

func (s *DraftServiceTestSuite) TestUnknownDraft() {
	_, err := s.svc.Draft.AddLine(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
	_, err = s.svc.Draft.SubmitDraft(s.ctx, "nope")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
