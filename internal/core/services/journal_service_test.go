package services_test

import (
	"context"
	"testing"

	"github.com/SscSPs/bookkeeping_console/internal/apperrors"
	"github.com/SscSPs/bookkeeping_console/internal/core/domain"
	portssvc "github.com/SscSPs/bookkeeping_console/internal/core/ports/services"
	"github.com/SscSPs/bookkeeping_console/internal/core/services"
	"github.com/SscSPs/bookkeeping_console/internal/dto"
	"github.com/SscSPs/bookkeeping_console/internal/utils/accounting"
	"github.com/stretchr/testify/suite"
)

type JournalServiceTestSuite struct {
	suite.Suite
	ctx context.Context
	svc *portssvc.ServiceContainer
}

func (s *JournalServiceTestSuite) SetupTest() {
	s.ctx = context.Background()
	s.svc, _ = seededContainer(s.T())
}

func TestJournalServiceTestSuite(t *testing.T) {
	suite.Run(t, new(JournalServiceTestSuite))
}

func journalRequest(debit, credit string) dto.CreateJournalRequest {
	return dto.CreateJournalRequest{
		Date:   "2025-04-30",
		Source: "Beban Sewa April",
		Lines: []dto.JournalLineRequest{
			{AccountID: "coa-sewa", Debit: dec(debit)},
			{AccountID: "coa-bank", Credit: dec(credit)},
		},
	}
}

func (s *JournalServiceTestSuite) TestCreateJournal_PostsIntoOpenYearbook() {
	j, err := s.svc.Journal.CreateJournal(s.ctx, journalRequest("1500000", "1500000"))
	s.Require().NoError(err)
	s.NotEmpty(j.JournalID)
	s.Equal("yb2", j.YearbookID)
	s.Equal(domain.Posted, j.Status)
	for _, l := range j.Lines {
		s.NotEmpty(l.LineID)
	}

	got, err := s.svc.Journal.GetJournalByID(s.ctx, j.JournalID)
	s.Require().NoError(err)
	s.Equal(j.JournalID, got.JournalID)
}

func (s *JournalServiceTestSuite) TestCreateJournal_WithinTolerance() {
	_, err := s.svc.Journal.CreateJournal(s.ctx, journalRequest("100.001", "100"))
	s.NoError(err)

	_, err = s.svc.Journal.CreateJournal(s.ctx, journalRequest("100.002", "100"))
	s.ErrorIs(err, accounting.ErrJournalUnbalanced)
}

func (s *JournalServiceTestSuite) TestCreateJournal_Rejections() {
	req := journalRequest("10", "10")
	req.Lines[1].AccountID = "coa-unknown"
	_, err := s.svc.Journal.CreateJournal(s.ctx, req)
	s.ErrorIs(err, services.ErrUnknownLineAccount)

	req = journalRequest("10", "10")
	req.YearbookID = "yb1"
	_, err = s.svc.Journal.CreateJournal(s.ctx, req)
	s.ErrorIs(err, services.ErrYearbookClosed)

	req = journalRequest("10", "10")
	req.YearbookID = "yb99"
	_, err = s.svc.Journal.CreateJournal(s.ctx, req)
	s.ErrorIs(err, services.ErrUnknownYearbook)

	req = journalRequest("10", "10")
	req.Date = "30-04-2025"
	_, err = s.svc.Journal.CreateJournal(s.ctx, req)
	s.ErrorIs(err, apperrors.ErrValidation)

	res, err := s.svc.Journal.ListJournals(s.ctx, dto.ListJournalsParams{Limit: 10})
	s.Require().NoError(err)
	s.Empty(res.Journals)
}

func (s *JournalServiceTestSuite) TestCreateJournal_FiscalCorrectionKept() {
	req := journalRequest("250000", "250000")
	req.Lines[0].AccountID = "coa-jamuan"
	req.Lines[0].IsFiscalCorrection = true
	req.Lines[0].FiscalAdjustment = domain.FiscalKoreksiPlus

	j, err := s.svc.Journal.CreateJournal(s.ctx, req)
	s.Require().NoError(err)
	fc, ok := domain.AsFiscalCorrection(j.Lines[0].Adjustment)
	s.True(ok)
	s.Equal(domain.FiscalKoreksiPlus, fc.Code)
	_, ok = domain.AsFiscalCorrection(j.Lines[1].Adjustment)
	s.False(ok)
}

func (s *JournalServiceTestSuite) TestReverseJournal() {
	j, err := s.svc.Journal.CreateJournal(s.ctx, journalRequest("75000", "75000"))
	s.Require().NoError(err)

	rev, err := s.svc.Journal.ReverseJournal(s.ctx, j.JournalID)
	s.Require().NoError(err)
	s.Equal(j.JournalID, rev.ReversalOf)
	s.Equal(services.ReversalSource, rev.Source)
	s.True(rev.Lines[0].Credit.Equal(dec("75000")))
	s.True(rev.Lines[1].Debit.Equal(dec("75000")))

	original, err := s.svc.Journal.GetJournalByID(s.ctx, j.JournalID)
	s.Require().NoError(err)
	s.Equal(domain.Reversed, original.Status)
	s.Equal(rev.JournalID, original.ReversedBy)

	_, err = s.svc.Journal.ReverseJournal(s.ctx, j.JournalID)
	s.ErrorIs(err, services.ErrAlreadyReversed)
	s.ErrorIs(err, apperrors.ErrConflict)

	_, err = s.svc.Journal.ReverseJournal(s.ctx, rev.JournalID)
	s.ErrorIs(err, services.ErrReverseReversal)

	_, err = s.svc.Journal.ReverseJournal(s.ctx, "missing")
	s.ErrorIs(err, apperrors.ErrNotFound)
}
