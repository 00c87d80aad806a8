package api

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/gin-gonic/gin"
)

type SettingsHandler struct {
	svs SettingsServicer
}

func NewSettingsHandler(svs SettingsServicer) *SettingsHandler {
	return &SettingsHandler{
		svs: svs,
	}
}

type RateResponse struct {
	Value     float64   `json:"value"`
	UpdatedAt time.Time `json:"updated_at"`
}

type SettingsResponse struct {
	CurrentRate RateResponse `json:"current_rate"`
}

// Show GET RouteGroup + SettingsRoute. Доступен анонимно: форма подачи заявки читает курс
// до логина.
func (h *SettingsHandler) Show(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	setting, err := h.svs.CurrentRate(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, successResponse(SettingsResponse{
		CurrentRate: RateResponse{
			Value:     setting.Value.InexactFloat64(),
			UpdatedAt: setting.UpdatedAt,
		},
	}))
}

// UpdateSettingsParams курс обязан быть указателем: required на значении decimal.Decimal
// не отличает отсутствующее поле от явного нуля. Отсутствие поля - 400, явный ноль
// доходит до сервиса и возвращается как 422.
type UpdateSettingsParams struct {
	CurrentRate *decimal.Decimal `binding:"required" json:"current_rate"`
}

// Update PUT RouteGroup + SettingsRoute. Смена курса администратором. На уже созданные
// заявки не влияет: курс в них зафиксирован на момент подачи.
func (h *SettingsHandler) Update(c *gin.Context) {
	var params UpdateSettingsParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	setting, err := h.svs.SetCurrentRate(reqCtx, *params.CurrentRate)
	if err != nil {
		if errors.Is(err, domain.ErrRateNotPositive) {
			c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse(err.Error()))
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, successResponse(SettingsResponse{
		CurrentRate: RateResponse{
			Value:     setting.Value.InexactFloat64(),
			UpdatedAt: setting.UpdatedAt,
		},
	}))
}
