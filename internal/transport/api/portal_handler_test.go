package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/logger"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/internal/service"
	"github.com/fsdevblog/groph-invest/internal/service/tokens"
	"github.com/fsdevblog/groph-invest/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-invest/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type PortalHandlerTestSuite struct {
	suite.Suite
	router            *gin.Engine
	mockPortalService *mocks.MockPortalServicer
	jwtSecret         []byte
	adminToken        string
	investorToken     string
}

func TestPortalHandlerSuite(t *testing.T) {
	suite.Run(t, new(PortalHandlerTestSuite))
}

func (s *PortalHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockPortalService = mocks.NewMockPortalServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:        logger.New(os.Stdout),
		PortalService: s.mockPortalService,
		JWTSecretKey:  s.jwtSecret,
	})

	adminToken, aErr := tokens.GenerateUserJWT(42, domain.UserRoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(aErr)
	s.adminToken = adminToken

	investorToken, iErr := tokens.GenerateUserJWT(1, domain.UserRoleInvestor, time.Hour, s.jwtSecret)
	s.Require().NoError(iErr)
	s.investorToken = investorToken
}

func (s *PortalHandlerTestSuite) makeJSONRequest(
	method, url, token string,
	payload []byte,
) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
	}
	if payload != nil {
		args.Body = bytes.NewReader(payload)
	}
	reqOpts := []func(*testutils.RequestOptions){
		testutils.WithHeader("Content-Type", "application/json"),
	}
	if token != "" {
		reqOpts = append(reqOpts, testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", token)))
	}
	res, err := testutils.MakeRequest(args, reqOpts...)
	s.Require().NoError(err)
	return res
}

func (s *PortalHandlerTestSuite) TestSubmitTCFLead() {
	lead := domain.TCFLead{ID: 1, Name: "John Smith", Email: "john@example.com"}

	// Человек: запись создается.
	s.mockPortalService.EXPECT().
		SubmitTCFLead(gomock.Any(), repoargs.CreateTCFLead{
			Name:    "John Smith",
			Email:   "john@example.com",
			Message: "interested",
		}, "").
		Return(&lead, nil)
	// Бот: сервис сигналит ErrBotDetected, хендлер обязан ответить тем же успехом.
	s.mockPortalService.EXPECT().
		SubmitTCFLead(gomock.Any(), gomock.Any(), "http://spam.example.com").
		Return(nil, service.ErrBotDetected)

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "human",
			payload:    []byte(`{"name": "John Smith", "email": "john@example.com", "message": "interested"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "bot fills honeypot",
			payload:    []byte(`{"name": "bot", "email": "bot@example.com", "website": "http://spam.example.com"}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "invalid email",
			payload:    []byte(`{"name": "John Smith", "email": "not-an-email"}`),
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "missing name",
			payload:    []byte(`{"email": "john@example.com"}`),
			wantStatus: http.StatusUnprocessableEntity,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			// форма публичная, токен не нужен.
			res := s.makeJSONRequest(http.MethodPost, RouteGroup+TCFRoute, "", t.payload)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body APIResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				// Ответ бота неотличим от ответа человеку.
				s.True(body.Success)
				s.Equal("Thank you, we will contact you soon", body.Message)
			}
		})
	}
}

func (s *PortalHandlerTestSuite) TestNewsletters() {
	publishedAt := time.Now()
	newsletters := []domain.Newsletter{
		{ID: 2, Title: "Q3 report", Body: "...", PublishedAt: &publishedAt},
		{ID: 1, Title: "Launch", Body: "...", PublishedAt: &publishedAt},
	}

	s.mockPortalService.EXPECT().
		PublishedNewsletters(gomock.Any()).
		Return(newsletters, nil)

	res := s.makeJSONRequest(http.MethodGet, RouteGroup+NewslettersRoute, "", nil)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body APIResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.True(body.Success)

	data, dataErr := json.Marshal(body.Data)
	s.Require().NoError(dataErr)
	var list []NewsletterResponse
	s.Require().NoError(json.Unmarshal(data, &list))
	s.Len(list, 2)
	s.Equal("Q3 report", list[0].Title)
}

func (s *PortalHandlerTestSuite) TestCreateNewsletter() {
	newsletter := domain.Newsletter{ID: 3, Title: "New rates", Body: "..."}

	s.mockPortalService.EXPECT().
		CreateNewsletter(gomock.Any(), repoargs.CreateNewsletter{Title: "New rates", Body: "..."}).
		Return(&newsletter, nil)

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"title": "New rates", "body": "..."}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "investor forbidden",
			payload:    []byte(`{"title": "New rates", "body": "..."}`),
			jwtToken:   s.investorToken,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "missing title",
			payload:    []byte(`{"body": "..."}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeJSONRequest(http.MethodPost, RouteGroup+AdminNewslettersRoute, t.jwtToken, t.payload)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *PortalHandlerTestSuite) TestCreateReferral() {
	referral := domain.Referral{
		ID:            1,
		InvestorID:    1,
		Code:          "FRIEND10",
		RewardPercent: decimal.NewFromInt(10),
		Active:        true,
	}

	s.mockPortalService.EXPECT().
		CreateReferral(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, args repoargs.CreateReferral) (*domain.Referral, error) {
			if args.Code == "FRIEND10" {
				return &referral, nil
			}
			return nil, domain.ErrDuplicateKey
		}).AnyTimes()

	cases := []struct {
		name       string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"investor_id": 1, "code": "FRIEND10", "reward_percent": 10}`),
			wantStatus: http.StatusCreated,
		}, {
			name:       "duplicate code",
			payload:    []byte(`{"investor_id": 1, "code": "TAKEN", "reward_percent": 10}`),
			wantStatus: http.StatusConflict,
		}, {
			name:       "code too short",
			payload:    []byte(`{"investor_id": 1, "code": "ab"}`),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeJSONRequest(http.MethodPost, RouteGroup+AdminReferralsRoute, s.adminToken, t.payload)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *PortalHandlerTestSuite) TestUpdateReferral() {
	s.mockPortalService.EXPECT().
		SetReferralActive(gomock.Any(), int64(1), false).
		Return(nil)
	s.mockPortalService.EXPECT().
		SetReferralActive(gomock.Any(), int64(404), false).
		Return(domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		url        string
		payload    []byte
		wantStatus int
	}{
		{
			name:       "deactivate ok",
			url:        RouteGroup + AdminReferralsRoute + "/1",
			payload:    []byte(`{"active": false}`),
			wantStatus: http.StatusOK,
		}, {
			name:       "not found",
			url:        RouteGroup + AdminReferralsRoute + "/404",
			payload:    []byte(`{"active": false}`),
			wantStatus: http.StatusNotFound,
		}, {
			name:       "missing active",
			url:        RouteGroup + AdminReferralsRoute + "/1",
			payload:    []byte(`{}`),
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeJSONRequest(http.MethodPatch, t.url, s.adminToken, t.payload)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}

func (s *PortalHandlerTestSuite) TestTCFLeads() {
	leads := []domain.TCFLead{
		{ID: 2, Name: "Jane", Email: "jane@example.com", CreatedAt: time.Now()},
		{ID: 1, Name: "John", Email: "john@example.com", CreatedAt: time.Now()},
	}

	s.mockPortalService.EXPECT().
		TCFLeads(gomock.Any()).
		Return(leads, nil)

	res := s.makeJSONRequest(http.MethodGet, RouteGroup+AdminTCFLeadsRoute, s.adminToken, nil)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)
}
