package service

import (
	"testing"

	"github.com/brianvoe/gofakeit/v7"
	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/internal/service/mocks"
	"github.com/fsdevblog/groph-invest/pkg/uow"
	uowmocks "github.com/fsdevblog/groph-invest/pkg/uow/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PortalServiceTestSuite struct {
	suite.Suite
	mockCtrl           *gomock.Controller
	mockNewsletterRepo *mocks.MockNewsletterRepository
	mockReferralRepo   *mocks.MockReferralRepository
	mockLeadRepo       *mocks.MockTCFLeadRepository
	portalService      *PortalService
}

func TestPortalServiceSuite(t *testing.T) {
	suite.Run(t, new(PortalServiceTestSuite))
}

func (s *PortalServiceTestSuite) SetupTest() {
	s.mockCtrl = gomock.NewController(s.T())
	s.mockNewsletterRepo = mocks.NewMockNewsletterRepository(s.mockCtrl)
	s.mockReferralRepo = mocks.NewMockReferralRepository(s.mockCtrl)
	s.mockLeadRepo = mocks.NewMockTCFLeadRepository(s.mockCtrl)

	mockUOW := uowmocks.NewMockUOW(s.mockCtrl)
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.NewsletterRepoName)).
		Return(s.mockNewsletterRepo, nil)
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.ReferralRepoName)).
		Return(s.mockReferralRepo, nil)
	mockUOW.EXPECT().GetRepository(uow.RepositoryName(repoargs.TCFLeadRepoName)).
		Return(s.mockLeadRepo, nil)

	portalService, servErr := NewPortalService(mockUOW)
	s.Require().NoError(servErr)
	s.portalService = portalService
}

func (s *PortalServiceTestSuite) TearDownTest() {
	s.mockCtrl.Finish()
}

func (s *PortalServiceTestSuite) TestSubmitTCFLead() {
	args := repoargs.CreateTCFLead{
		Name:    gofakeit.Name(),
		Email:   gofakeit.Email(),
		Phone:   gofakeit.Phone(),
		Message: gofakeit.Sentence(5),
	}
	lead := domain.TCFLead{ID: 1, Name: args.Name, Email: args.Email}

	s.mockLeadRepo.EXPECT().
		Create(gomock.Any(), args).
		Return(&lead, nil)

	got, err := s.portalService.SubmitTCFLead(s.T().Context(), args, "")
	s.Require().NoError(err)
	s.Equal(&lead, got)
}

func (s *PortalServiceTestSuite) TestSubmitTCFLeadHoneypot() {
	// Заполненный honeypot - бот. Запись не создается, репозиторий не вызывается.
	got, err := s.portalService.SubmitTCFLead(s.T().Context(), repoargs.CreateTCFLead{
		Name:  "bot",
		Email: "bot@example.com",
	}, "http://spam.example.com")

	s.Require().ErrorIs(err, ErrBotDetected)
	s.Nil(got)
}

func (s *PortalServiceTestSuite) TestPublishedNewsletters() {
	newsletters := []domain.Newsletter{
		{ID: 2, Title: "Q3 report"},
		{ID: 1, Title: "Launch"},
	}

	s.mockNewsletterRepo.EXPECT().
		GetPublished(gomock.Any(), uint(defaultListLimit)).
		Return(newsletters, nil)

	got, err := s.portalService.PublishedNewsletters(s.T().Context())
	s.Require().NoError(err)
	s.Equal(newsletters, got)
}

func (s *PortalServiceTestSuite) TestCreateReferral() {
	args := repoargs.CreateReferral{
		InvestorID:    1,
		Code:          "FRIEND10",
		RewardPercent: decimal.NewFromInt(10),
	}
	referral := domain.Referral{ID: 1, InvestorID: 1, Code: "FRIEND10"}

	s.mockReferralRepo.EXPECT().
		Create(gomock.Any(), args).
		Return(&referral, nil)

	got, err := s.portalService.CreateReferral(s.T().Context(), args)
	s.Require().NoError(err)
	s.Equal(&referral, got)
}

func (s *PortalServiceTestSuite) TestCreateReferralDuplicateCode() {
	s.mockReferralRepo.EXPECT().
		Create(gomock.Any(), gomock.Any()).
		Return(nil, domain.ErrDuplicateKey)

	got, err := s.portalService.CreateReferral(s.T().Context(), repoargs.CreateReferral{
		InvestorID: 1,
		Code:       "FRIEND10",
	})

	s.Require().ErrorIs(err, domain.ErrDuplicateKey)
	s.Nil(got)
}

func (s *PortalServiceTestSuite) TestSetReferralActive() {
	s.mockReferralRepo.EXPECT().
		SetActive(gomock.Any(), int64(1), false).
		Return(nil)

	s.NoError(s.portalService.SetReferralActive(s.T().Context(), 1, false))
}
