package api

import (
	"bytes"
	"encoding/json"
	"fmt"
	"net/http"
	"os"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/logger"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/internal/service"
	"github.com/fsdevblog/groph-invest/internal/service/tokens"
	"github.com/fsdevblog/groph-invest/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-invest/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/stretchr/testify/suite"
)

type RequestsHandlerTestSuite struct {
	suite.Suite
	router             *gin.Engine
	mockRequestService *mocks.MockRequestServicer
	jwtSecret          []byte
	investorToken      string
	adminToken         string
}

func TestRequestsHandlerSuite(t *testing.T) {
	suite.Run(t, new(RequestsHandlerTestSuite))
}

func (s *RequestsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockRequestService = mocks.NewMockRequestServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:         logger.New(os.Stdout),
		RequestService: s.mockRequestService,
		JWTSecretKey:   s.jwtSecret,
	})

	investorToken, iErr := tokens.GenerateUserJWT(1, domain.UserRoleInvestor, time.Hour, s.jwtSecret)
	s.Require().NoError(iErr)
	s.investorToken = investorToken

	adminToken, aErr := tokens.GenerateUserJWT(42, domain.UserRoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(aErr)
	s.adminToken = adminToken
}

func (s *RequestsHandlerTestSuite) makeJSONRequest(
	method, url, token string,
	payload []byte,
) *http.Response {
	args := testutils.RequestArgs{
		Router: s.router,
		Method: method,
		URL:    url,
		Body:   bytes.NewReader(payload),
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

func (s *RequestsHandlerTestSuite) TestCreate() {
	created := domain.InvestmentRequest{
		ID:               10,
		InvestorID:       1,
		InvestmentAmount: decimal.NewFromInt(1000),
		CurrentRate:      decimal.NewFromFloat(0.5),
		DiscountedRate:   decimal.NewFromFloat(0.4),
		ExpectedCoins:    2400,
		Status:           domain.RequestStatusPending,
	}

	s.mockRequestService.EXPECT().
		Submit(gomock.Any(), int64(1), gomock.Any()).
		DoAndReturn(func(_ any, _ int64, amount decimal.Decimal) (*domain.InvestmentRequest, error) {
			if amount.LessThan(decimal.NewFromInt(100)) {
				return nil, domain.NewValidationError("investment_amount", service.MinAmountMessage)
			}
			return &created, nil
		}).AnyTimes()

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"investment_amount": 1000}`),
			jwtToken:   s.investorToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "below minimum",
			payload:    []byte(`{"investment_amount": 50}`),
			jwtToken:   s.investorToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			// клиентские derived поля не ломают запрос: сервер их игнорирует.
			name:       "client sent derived values",
			payload:    []byte(`{"investment_amount": 1000, "expected_coins": 999999, "discounted_rate": 0.0001}`),
			jwtToken:   s.investorToken,
			wantStatus: http.StatusCreated,
		}, {
			name:       "not authorized",
			payload:    []byte(`{"investment_amount": 1000}`),
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "bad request",
			payload:    []byte(`not a json`),
			jwtToken:   s.investorToken,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeJSONRequest(http.MethodPost, RouteGroup+RequestsRoute, t.jwtToken, t.payload)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusCreated {
				var body APIResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.True(body.Success)

				data, dataErr := json.Marshal(body.Data)
				s.Require().NoError(dataErr)
				var request InvestmentRequestResponse
				s.Require().NoError(json.Unmarshal(data, &request))
				// ответ содержит значения, рассчитанные сервером.
				s.Equal(int64(2400), request.ExpectedCoins)
				s.InDelta(0.4, request.DiscountedRate, 0.0001)
				s.Equal(domain.RequestStatusPending, request.Status)
			}
		})
	}
}

func (s *RequestsHandlerTestSuite) TestIndex() {
	requests := []domain.InvestmentRequest{
		{ID: 2, InvestorID: 1, Status: domain.RequestStatusPending},
		{ID: 1, InvestorID: 2, Status: domain.RequestStatusPending},
	}

	// Фильтр по умолчанию - pending.
	s.mockRequestService.EXPECT().
		Find(gomock.Any(), repoargs.RequestFilter{Status: domain.RequestStatusPending}).
		Return(requests, nil)
	s.mockRequestService.EXPECT().
		Find(gomock.Any(), repoargs.RequestFilter{Status: domain.RequestStatusApproved}).
		Return([]domain.InvestmentRequest{}, nil)

	cases := []struct {
		name       string
		url        string
		jwtToken   string
		wantStatus int
		wantCount  int
	}{
		{
			name:       "default pending",
			url:        RouteGroup + RequestsRoute,
			jwtToken:   s.adminToken,
			wantStatus: http.StatusOK,
			wantCount:  2,
		}, {
			name:       "approved filter",
			url:        RouteGroup + RequestsRoute + "?status=approved",
			jwtToken:   s.adminToken,
			wantStatus: http.StatusOK,
			wantCount:  0,
		}, {
			name:       "investor forbidden",
			url:        RouteGroup + RequestsRoute,
			jwtToken:   s.investorToken,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "not authorized",
			url:        RouteGroup + RequestsRoute,
			wantStatus: http.StatusUnauthorized,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeJSONRequest(http.MethodGet, t.url, t.jwtToken, nil)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusOK {
				var body APIResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.True(body.Success)

				data, dataErr := json.Marshal(body.Data)
				s.Require().NoError(dataErr)
				var list []InvestmentRequestResponse
				s.Require().NoError(json.Unmarshal(data, &list))
				s.Len(list, t.wantCount)
			}
		})
	}
}

func (s *RequestsHandlerTestSuite) TestResolve() {
	var otherAdminID int64 = 99
	approved := domain.InvestmentRequest{
		ID:         7,
		InvestorID: 1,
		Status:     domain.RequestStatusApproved,
		ReviewedBy: &otherAdminID,
	}

	s.mockRequestService.EXPECT().
		Review(gomock.Any(), service.ReviewArgs{
			RequestID: 7,
			AdminID:   42,
			Status:    domain.RequestStatusApproved,
			Comment:   "ok",
		}).
		Return(&approved, nil)
	// Гонка двух администраторов: conflict несет актуальную запись.
	s.mockRequestService.EXPECT().
		Review(gomock.Any(), service.ReviewArgs{
			RequestID: 8,
			AdminID:   42,
			Status:    domain.RequestStatusRejected,
		}).
		Return(nil, domain.NewStatusConflictError(&approved))
	s.mockRequestService.EXPECT().
		Review(gomock.Any(), service.ReviewArgs{
			RequestID: 404,
			AdminID:   42,
			Status:    domain.RequestStatusApproved,
		}).
		Return(nil, domain.ErrRecordNotFound)

	cases := []struct {
		name       string
		url        string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "approve ok",
			url:        RouteGroup + RequestsRoute + "/7",
			payload:    []byte(`{"status": "approved", "comment": "ok"}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "already resolved",
			url:        RouteGroup + RequestsRoute + "/8",
			payload:    []byte(`{"status": "rejected"}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusConflict,
		}, {
			name:       "not found",
			url:        RouteGroup + RequestsRoute + "/404",
			payload:    []byte(`{"status": "approved"}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusNotFound,
		}, {
			name:       "unknown status",
			url:        RouteGroup + RequestsRoute + "/7",
			payload:    []byte(`{"status": "resolved"}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "bad id",
			url:        RouteGroup + RequestsRoute + "/abc",
			payload:    []byte(`{"status": "approved"}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		}, {
			// 300 рун по 4 байта: лимит комментария считается в байтах.
			name: "comment over byte limit",
			url:  RouteGroup + RequestsRoute + "/7",
			payload: []byte(fmt.Sprintf(`{"status": "approved", "comment": %q}`,
				testutils.GenerateOverBytesUnderRunes(300))),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		}, {
			name:       "investor forbidden",
			url:        RouteGroup + RequestsRoute + "/7",
			payload:    []byte(`{"status": "approved"}`),
			jwtToken:   s.investorToken,
			wantStatus: http.StatusForbidden,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			res := s.makeJSONRequest(http.MethodPatch, t.url, t.jwtToken, t.payload)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)

			if t.wantStatus == http.StatusConflict {
				// проигравший получает авторитетную запись для сверки списка.
				var body APIResponse
				s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
				s.False(body.Success)

				data, dataErr := json.Marshal(body.Data)
				s.Require().NoError(dataErr)
				var request InvestmentRequestResponse
				s.Require().NoError(json.Unmarshal(data, &request))
				s.Equal(approved.ID, request.ID)
				s.Equal(domain.RequestStatusApproved, request.Status)
			}
		})
	}
}
