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
	"github.com/fsdevblog/groph-invest/internal/service/tokens"
	"github.com/fsdevblog/groph-invest/internal/transport/api/mocks"
	"github.com/fsdevblog/groph-invest/internal/transport/api/testutils"
	"github.com/gin-gonic/gin"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
)

type SettingsHandlerTestSuite struct {
	suite.Suite
	router              *gin.Engine
	mockSettingsService *mocks.MockSettingsServicer
	jwtSecret           []byte
	adminToken          string
	investorToken       string
}

func TestSettingsHandlerSuite(t *testing.T) {
	suite.Run(t, new(SettingsHandlerTestSuite))
}

func (s *SettingsHandlerTestSuite) SetupTest() {
	mockCtrl := gomock.NewController(s.T())
	defer mockCtrl.Finish()

	s.mockSettingsService = mocks.NewMockSettingsServicer(mockCtrl)
	s.jwtSecret = []byte("super secret key")

	s.router = New(RouterArgs{
		Logger:          logger.New(os.Stdout),
		SettingsService: s.mockSettingsService,
		JWTSecretKey:    s.jwtSecret,
	})

	adminToken, aErr := tokens.GenerateUserJWT(42, domain.UserRoleAdmin, time.Hour, s.jwtSecret)
	s.Require().NoError(aErr)
	s.adminToken = adminToken

	investorToken, iErr := tokens.GenerateUserJWT(1, domain.UserRoleInvestor, time.Hour, s.jwtSecret)
	s.Require().NoError(iErr)
	s.investorToken = investorToken
}

func (s *SettingsHandlerTestSuite) TestShow() {
	setting := domain.Setting{
		Key:       domain.SettingCurrentRate,
		Value:     decimal.NewFromFloat(0.5),
		UpdatedAt: time.Now(),
	}

	s.mockSettingsService.EXPECT().
		CurrentRate(gomock.Any()).
		Return(&setting, nil)

	// Курс читается анонимно: форма подачи заявки показывает его до логина.
	res, err := testutils.MakeRequest(testutils.RequestArgs{
		Router: s.router,
		Method: http.MethodGet,
		URL:    RouteGroup + SettingsRoute,
	})
	s.Require().NoError(err)
	defer func() {
		s.Require().NoError(res.Body.Close())
	}()

	s.Equal(http.StatusOK, res.StatusCode)

	var body APIResponse
	s.Require().NoError(json.NewDecoder(res.Body).Decode(&body))
	s.True(body.Success)

	data, dataErr := json.Marshal(body.Data)
	s.Require().NoError(dataErr)
	var settings SettingsResponse
	s.Require().NoError(json.Unmarshal(data, &settings))
	s.InDelta(0.5, settings.CurrentRate.Value, 0.0001)
}

func (s *SettingsHandlerTestSuite) TestUpdate() {
	updated := domain.Setting{
		Key:       domain.SettingCurrentRate,
		Value:     decimal.NewFromFloat(0.75),
		UpdatedAt: time.Now(),
	}

	s.mockSettingsService.EXPECT().
		SetCurrentRate(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ any, value decimal.Decimal) (*domain.Setting, error) {
			if !value.IsPositive() {
				return nil, domain.ErrRateNotPositive
			}
			return &updated, nil
		}).AnyTimes()

	cases := []struct {
		name       string
		payload    []byte
		jwtToken   string
		wantStatus int
	}{
		{
			name:       "all ok",
			payload:    []byte(`{"current_rate": 0.75}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusOK,
		}, {
			name:       "negative rate",
			payload:    []byte(`{"current_rate": -1}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			// явный ноль проходит биндинг и отклоняется сервисом, в отличие от
			// отсутствующего поля, которое режется на биндинге.
			name:       "explicit zero rate",
			payload:    []byte(`{"current_rate": 0}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusUnprocessableEntity,
		}, {
			name:       "investor forbidden",
			payload:    []byte(`{"current_rate": 0.75}`),
			jwtToken:   s.investorToken,
			wantStatus: http.StatusForbidden,
		}, {
			name:       "not authorized",
			payload:    []byte(`{"current_rate": 0.75}`),
			wantStatus: http.StatusUnauthorized,
		}, {
			name:       "bad request",
			payload:    []byte(`{}`),
			jwtToken:   s.adminToken,
			wantStatus: http.StatusBadRequest,
		},
	}

	for _, t := range cases {
		s.Run(t.name, func() {
			reqOpts := []func(*testutils.RequestOptions){
				testutils.WithHeader("Content-Type", "application/json"),
			}
			if t.jwtToken != "" {
				reqOpts = append(reqOpts,
					testutils.WithHeader("Authorization", fmt.Sprintf("Bearer %s", t.jwtToken)))
			}
			res, err := testutils.MakeRequest(testutils.RequestArgs{
				Router: s.router,
				Method: http.MethodPut,
				URL:    RouteGroup + SettingsRoute,
				Body:   bytes.NewReader(t.payload),
			}, reqOpts...)
			s.Require().NoError(err)
			defer func() {
				s.Require().NoError(res.Body.Close())
			}()

			s.Equal(t.wantStatus, res.StatusCode)
		})
	}
}
