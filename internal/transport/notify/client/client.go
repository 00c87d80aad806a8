package client

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"time"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-invest/internal/domain"
)

const RouteNotifications = "/api/notifications"

// Константы минимального и максимального значения в заголовке Retry-After.
const (
	minRetryAfter = 1
	maxRetryAfter = 120
)

// Notification тело уведомления для админского сервиса оповещений.
type Notification struct {
	Event            string          `json:"event"`
	RequestID        int64           `json:"request_id"`
	InvestorID       int64           `json:"investor_id"`
	InvestmentAmount decimal.Decimal `json:"investment_amount"`
	ExpectedCoins    int64           `json:"expected_coins"`
	CreatedAt        time.Time       `json:"created_at"`
}

const eventNewRequest = "investment_request.created"

// HTTPClient является реализацией интерфейса Client для HTTP запросов к сервису уведомлений.
type HTTPClient struct {
	baseURL    string
	httpClient *http.Client
}

func New(baseURL string) HTTPClient {
	return HTTPClient{
		baseURL:    baseURL,
		httpClient: http.DefaultClient,
	}
}

// NotifyNewRequest отправляет уведомление о новой заявке. При ответе сервера со статусом
// отличным от 2xx возвращает ошибку StatusCodeError, или TooManyRequestError в случае
// http.StatusTooManyRequests.
func (c HTTPClient) NotifyNewRequest(ctx context.Context, request *domain.InvestmentRequest) (err error) {
	payload := Notification{
		Event:            eventNewRequest,
		RequestID:        request.ID,
		InvestorID:       request.InvestorID,
		InvestmentAmount: request.InvestmentAmount,
		ExpectedCoins:    request.ExpectedCoins,
		CreatedAt:        request.CreatedAt,
	}

	body, marshalErr := json.Marshal(payload)
	if marshalErr != nil {
		return errors.Wrap(marshalErr, "marshal notification")
	}

	url := c.baseURL + RouteNotifications
	req, reqErr := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if reqErr != nil {
		return errors.Wrap(reqErr, "create request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, doErr := c.httpClient.Do(req)
	if doErr != nil {
		return errors.Wrap(doErr, "do request")
	}

	defer func() {
		if closeErr := resp.Body.Close(); closeErr != nil && err == nil {
			err = closeErr
		}
	}()

	if resp.StatusCode == http.StatusTooManyRequests {
		return NewTooManyRequestError(parseRetryAfter(resp.Header.Get("Retry-After")))
	}

	if resp.StatusCode < http.StatusOK || resp.StatusCode >= http.StatusMultipleChoices {
		return NewStatusCodeError(resp.StatusCode)
	}

	return nil
}

// parseRetryAfter разбирает заголовок Retry-After. В случае ошибки или значения вне
// диапазона [minRetryAfter, maxRetryAfter] возвращает 60 секунд.
func parseRetryAfter(header string) time.Duration {
	minValue := decimal.NewFromInt(minRetryAfter)
	maxValue := decimal.NewFromInt(maxRetryAfter)

	retryAfter, parseErr := decimal.NewFromString(header)
	if parseErr != nil || retryAfter.LessThan(minValue) || retryAfter.GreaterThan(maxValue) {
		retryAfter = decimal.NewFromInt(60) //nolint:mnd
	}

	return time.Duration(retryAfter.IntPart()) * time.Second
}
