package notify

import (
	"context"
	"net/http"
	"testing"
	"time"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/transport/notify/client"
	"github.com/fsdevblog/groph-invest/internal/transport/notify/mocks"
	"github.com/golang/mock/gomock"
	"github.com/shopspring/decimal"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/suite"
)

type ProcessorTestSuite struct {
	suite.Suite
	processor  *Processor
	mockClient *mocks.MockClient
	mockSvs    *mocks.MockServicer
	ctrl       *gomock.Controller
}

func (s *ProcessorTestSuite) SetupTest() {
	s.ctrl = gomock.NewController(s.T())

	s.mockClient = mocks.NewMockClient(s.ctrl)
	s.mockSvs = mocks.NewMockServicer(s.ctrl)

	logger := logrus.New()
	logger.SetLevel(logrus.DebugLevel)

	s.processor = New(s.mockSvs, "", logger).SetClient(s.mockClient)
}

func (s *ProcessorTestSuite) TearDownTest() {
	s.ctrl.Finish()
}

func TestProcessorSuite(t *testing.T) {
	suite.Run(t, new(ProcessorTestSuite))
}

// TestProcess_NoRequests Тест на случай, когда уведомлять не о чем.
func (s *ProcessorTestSuite) TestProcess_NoRequests() {
	s.mockSvs.EXPECT().
		RequestsForNotification(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.InvestmentRequest{}, nil)

	err := s.processor.process(s.T().Context())

	s.ErrorIs(err, ErrNoRequests)
}

// TestProcess_Success Тест на успешную доставку уведомлений.
func (s *ProcessorTestSuite) TestProcess_Success() {
	testRequests := []domain.InvestmentRequest{
		{ID: 1, InvestorID: 100, InvestmentAmount: decimal.NewFromInt(1000), ExpectedCoins: 2400},
		{ID: 2, InvestorID: 101, InvestmentAmount: decimal.NewFromInt(500), ExpectedCoins: 1200},
	}

	s.mockSvs.EXPECT().
		RequestsForNotification(gomock.Any(), s.processor.limitPerIteration).
		Return(testRequests, nil)

	s.mockClient.EXPECT().
		NotifyNewRequest(gomock.Any(), gomock.Any()).
		Return(nil).
		Times(len(testRequests))

	// Обе заявки доставлены - обе помечаются.
	s.mockSvs.EXPECT().
		MarkNotified(gomock.Any(), gomock.Any()).
		Do(func(_ context.Context, ids []int64) {
			s.ElementsMatch([]int64{1, 2}, ids)
		}).Return(nil)

	s.NoError(s.processor.process(s.T().Context()))
}

// TestProcess_PartialFailure Тест на случай, когда часть уведомлений не доставлена.
func (s *ProcessorTestSuite) TestProcess_PartialFailure() {
	testRequests := []domain.InvestmentRequest{
		{ID: 1, InvestorID: 100},
		{ID: 2, InvestorID: 101},
	}

	s.mockSvs.EXPECT().
		RequestsForNotification(gomock.Any(), s.processor.limitPerIteration).
		Return(testRequests, nil)

	internalError := client.NewStatusCodeError(http.StatusInternalServerError)

	s.mockClient.EXPECT().
		NotifyNewRequest(gomock.Any(), gomock.Any()).
		DoAndReturn(func(_ context.Context, request *domain.InvestmentRequest) error {
			if request.ID == 2 {
				return internalError
			}
			return nil
		}).Times(len(testRequests))

	// Помечается только доставленная заявка. Недоставленная вернется на следующем тике.
	s.mockSvs.EXPECT().
		MarkNotified(gomock.Any(), []int64{1}).
		Return(nil)

	s.NoError(s.processor.process(s.T().Context()))
}

// TestProcess_AllFailed Тест на случай, когда ни одно уведомление не доставлено:
// MarkNotified не вызывается вовсе.
func (s *ProcessorTestSuite) TestProcess_AllFailed() {
	testRequests := []domain.InvestmentRequest{
		{ID: 1, InvestorID: 100},
	}

	s.mockSvs.EXPECT().
		RequestsForNotification(gomock.Any(), s.processor.limitPerIteration).
		Return(testRequests, nil)

	s.mockClient.EXPECT().
		NotifyNewRequest(gomock.Any(), gomock.Any()).
		Return(client.NewStatusCodeError(http.StatusBadGateway))

	s.NoError(s.processor.process(s.T().Context()))
}

// TestProcess_RetryAfter Тест на повторную попытку после 429.
func (s *ProcessorTestSuite) TestProcess_RetryAfter() {
	testRequests := []domain.InvestmentRequest{
		{ID: 1, InvestorID: 100},
	}

	s.mockSvs.EXPECT().
		RequestsForNotification(gomock.Any(), s.processor.limitPerIteration).
		Return(testRequests, nil)

	tooMany := client.NewTooManyRequestError(10 * time.Millisecond)

	first := s.mockClient.EXPECT().
		NotifyNewRequest(gomock.Any(), gomock.Any()).
		Return(tooMany)
	s.mockClient.EXPECT().
		NotifyNewRequest(gomock.Any(), gomock.Any()).
		Return(nil).
		After(first)

	s.mockSvs.EXPECT().
		MarkNotified(gomock.Any(), []int64{1}).
		Return(nil)

	s.NoError(s.processor.process(s.T().Context()))
}

// TestRun_StopsOnContextCancel Тест на остановку цикла опроса по отмене контекста.
func (s *ProcessorTestSuite) TestRun_StopsOnContextCancel() {
	s.processor.SetPollInterval(10 * time.Millisecond)

	s.mockSvs.EXPECT().
		RequestsForNotification(gomock.Any(), s.processor.limitPerIteration).
		Return([]domain.InvestmentRequest{}, nil).
		MinTimes(1)

	ctx, cancel := context.WithTimeout(s.T().Context(), 100*time.Millisecond)
	defer cancel()

	done := make(chan struct{})
	go func() {
		s.processor.Run(ctx)
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		s.Fail("processor did not stop after context cancel")
	}
}
