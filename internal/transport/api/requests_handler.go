package api

import (
	"context"
	"errors"
	"net/http"
	"strconv"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/internal/service"
	"github.com/gin-gonic/gin"
)

type RequestsHandler struct {
	requestSvs RequestServicer
}

func NewRequestsHandler(requestSvs RequestServicer) *RequestsHandler {
	return &RequestsHandler{
		requestSvs: requestSvs,
	}
}

type InvestmentRequestResponse struct {
	ID               int64                    `json:"id"`
	InvestorID       int64                    `json:"investor_id"`
	InvestmentAmount float64                  `json:"investment_amount"`
	CurrentRate      float64                  `json:"current_rate"`
	DiscountedRate   float64                  `json:"discounted_rate"`
	ExpectedCoins    int64                    `json:"expected_coins"`
	Status           domain.RequestStatusType `json:"status"`
	ReviewComment    string                   `json:"review_comment,omitempty"`
	CreatedAt        time.Time                `json:"created_at"`
	UpdatedAt        time.Time                `json:"updated_at"`
}

func newRequestResponse(request *domain.InvestmentRequest) InvestmentRequestResponse {
	return InvestmentRequestResponse{
		ID:               request.ID,
		InvestorID:       request.InvestorID,
		InvestmentAmount: request.InvestmentAmount.InexactFloat64(),
		CurrentRate:      request.CurrentRate.InexactFloat64(),
		DiscountedRate:   request.DiscountedRate.InexactFloat64(),
		ExpectedCoins:    request.ExpectedCoins,
		Status:           request.Status,
		ReviewComment:    request.ReviewComment,
		CreatedAt:        request.CreatedAt,
		UpdatedAt:        request.UpdatedAt,
	}
}

type CreateRequestParams struct {
	InvestmentAmount decimal.Decimal `binding:"required" json:"investment_amount"`
}

// Create POST RouteGroup + RequestsRoute. Подача заявки инвестором. Производные величины
// (курс, скидка, количество монет) считаются только на сервере: значения, присланные
// клиентом, игнорируются, чтобы расчеты не расходились между формой и сервером.
func (h *RequestsHandler) Create(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	var params CreateRequestParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, submitErr := h.requestSvs.Submit(reqCtx, currentUserID, params.InvestmentAmount)
	if submitErr != nil {
		var validationErr *domain.ValidationError
		if errors.As(submitErr, &validationErr) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(validationErr.Message))
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, submitErr).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, successResponse(newRequestResponse(request)))
}

// Index GET RouteGroup + RequestsRoute. Админский список заявок, по умолчанию pending.
func (h *RequestsHandler) Index(c *gin.Context) {
	filter := repoargs.RequestFilter{
		Status: domain.RequestStatusPending,
	}
	if status := c.Query("status"); status != "" {
		filter.Status = domain.RequestStatusType(status)
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	requests, err := h.requestSvs.Find(reqCtx, filter)
	if err != nil {
		var validationErr *domain.ValidationError
		if errors.As(err, &validationErr) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(validationErr.Message))
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]InvestmentRequestResponse, len(requests))
	for i := range requests {
		response[i] = newRequestResponse(&requests[i])
	}
	c.JSON(http.StatusOK, successResponse(response))
}

type ResolveRequestParams struct {
	Status  domain.RequestStatusType `binding:"required,oneof=approved rejected" json:"status"`
	Comment string                   `binding:"max_bytes=1000"                   json:"comment"`
}

// Resolve PATCH RouteGroup + RequestRoute. Решение администратора по pending заявке.
//
// Ответы:
//   - 200 с итоговой записью: подтвержденное сервером состояние, по нему клиент сверяет
//     свой список вместо оптимистичного удаления;
//   - 404: заявки не существует;
//   - 409 с актуальной записью: заявку уже разрешил другой администратор.
func (h *RequestsHandler) Resolve(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	requestID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid request id"))
		return
	}

	var params ResolveRequestParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	request, reviewErr := h.requestSvs.Review(reqCtx, service.ReviewArgs{
		RequestID: requestID,
		AdminID:   currentUserID,
		Status:    params.Status,
		Comment:   params.Comment,
	})
	if reviewErr != nil {
		var conflictErr *domain.StatusConflictError
		switch {
		case errors.As(reviewErr, &conflictErr):
			// проигравший в гонке получает актуальную запись для сверки.
			response := newRequestResponse(conflictErr.Request)
			c.AbortWithStatusJSON(http.StatusConflict, APIResponse{
				Success: false,
				Message: "request is already resolved",
				Data:    response,
			})
		case errors.Is(reviewErr, domain.ErrRecordNotFound):
			c.AbortWithStatusJSON(http.StatusNotFound, errorResponse("request not found"))
		default:
			_ = c.AbortWithError(http.StatusInternalServerError, reviewErr).SetType(gin.ErrorTypePrivate)
		}
		return
	}

	c.JSON(http.StatusOK, successResponse(newRequestResponse(request)))
}
