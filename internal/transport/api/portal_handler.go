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

// PortalHandler тонкие разделы портала: рассылки, рефералы, лид-форма TCF.
type PortalHandler struct {
	svs PortalServicer
}

func NewPortalHandler(svs PortalServicer) *PortalHandler {
	return &PortalHandler{
		svs: svs,
	}
}

type NewsletterResponse struct {
	ID          int64      `json:"id"`
	Title       string     `json:"title"`
	Body        string     `json:"body"`
	PublishedAt *time.Time `json:"published_at,omitempty"`
}

// Newsletters GET RouteGroup + NewslettersRoute. Публичный список опубликованных рассылок.
func (h *PortalHandler) Newsletters(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	newsletters, err := h.svs.PublishedNewsletters(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]NewsletterResponse, len(newsletters))
	for i, n := range newsletters {
		response[i] = NewsletterResponse{
			ID:          n.ID,
			Title:       n.Title,
			Body:        n.Body,
			PublishedAt: n.PublishedAt,
		}
	}
	c.JSON(http.StatusOK, successResponse(response))
}

type CreateNewsletterParams struct {
	Title string `binding:"required,max=255"          json:"title"`
	Body  string `binding:"required,max_bytes=100000" json:"body"`
}

// CreateNewsletter POST RouteGroup + AdminNewslettersRoute.
func (h *PortalHandler) CreateNewsletter(c *gin.Context) {
	var params CreateNewsletterParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	newsletter, err := h.svs.CreateNewsletter(reqCtx, repoargs.CreateNewsletter{
		Title: params.Title,
		Body:  params.Body,
	})
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, successResponse(NewsletterResponse{
		ID:          newsletter.ID,
		Title:       newsletter.Title,
		Body:        newsletter.Body,
		PublishedAt: newsletter.PublishedAt,
	}))
}

type TCFLeadParams struct {
	Name    string `binding:"required,max=100"  json:"name"`
	Email   string `binding:"required,email"    json:"email"`
	Phone   string `binding:"max=30"            json:"phone"`
	Message string `binding:"max_bytes=2000"    json:"message"`
	// Website - honeypot: в форме поле скрыто, человек его не заполняет.
	Website string `json:"website"`
}

// SubmitTCFLead POST RouteGroup + TCFRoute. Публичная лид-форма. Боту, заполнившему
// honeypot, отвечаем тем же успехом, что и человеку: запись при этом не создается,
// наружу факт детекта не выдается.
func (h *PortalHandler) SubmitTCFLead(c *gin.Context) {
	var params TCFLeadParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusUnprocessableEntity, errorResponse("invalid form data"))
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	_, err := h.svs.SubmitTCFLead(reqCtx, repoargs.CreateTCFLead{
		Name:    params.Name,
		Email:   params.Email,
		Phone:   params.Phone,
		Message: params.Message,
	}, params.Website)
	if err != nil && !errors.Is(err, service.ErrBotDetected) {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true, Message: "Thank you, we will contact you soon"})
}

type ReferralResponse struct {
	ID            int64     `json:"id"`
	InvestorID    int64     `json:"investor_id"`
	Code          string    `json:"code"`
	RewardPercent float64   `json:"reward_percent"`
	Active        bool      `json:"active"`
	CreatedAt     time.Time `json:"created_at"`
}

func newReferralResponse(referral *domain.Referral) ReferralResponse {
	return ReferralResponse{
		ID:            referral.ID,
		InvestorID:    referral.InvestorID,
		Code:          referral.Code,
		RewardPercent: referral.RewardPercent.InexactFloat64(),
		Active:        referral.Active,
		CreatedAt:     referral.CreatedAt,
	}
}

// Referrals GET RouteGroup + AdminReferralsRoute.
func (h *PortalHandler) Referrals(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	referrals, err := h.svs.Referrals(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ReferralResponse, len(referrals))
	for i := range referrals {
		response[i] = newReferralResponse(&referrals[i])
	}
	c.JSON(http.StatusOK, successResponse(response))
}

type CreateReferralParams struct {
	InvestorID    int64           `binding:"required"              json:"investor_id"`
	Code          string          `binding:"required,min=3,max=50" json:"code"`
	RewardPercent decimal.Decimal `json:"reward_percent"`
}

// CreateReferral POST RouteGroup + AdminReferralsRoute.
func (h *PortalHandler) CreateReferral(c *gin.Context) {
	var params CreateReferralParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	referral, err := h.svs.CreateReferral(reqCtx, repoargs.CreateReferral{
		InvestorID:    params.InvestorID,
		Code:          params.Code,
		RewardPercent: params.RewardPercent,
	})
	if err != nil {
		if errors.Is(err, domain.ErrDuplicateKey) {
			c.AbortWithStatusJSON(http.StatusConflict, errorResponse("referral code already exists"))
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusCreated, successResponse(newReferralResponse(referral)))
}

type UpdateReferralParams struct {
	Active *bool `binding:"required" json:"active"`
}

// UpdateReferral PATCH RouteGroup + AdminReferralRoute. Включение/выключение кода.
func (h *PortalHandler) UpdateReferral(c *gin.Context) {
	referralID, parseErr := strconv.ParseInt(c.Param("id"), 10, 64)
	if parseErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid referral id"))
		return
	}

	var params UpdateReferralParams
	if bindErr := c.ShouldBindJSON(&params); bindErr != nil {
		c.AbortWithStatusJSON(http.StatusBadRequest, errorResponse("invalid request body"))
		return
	}

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	if err := h.svs.SetReferralActive(reqCtx, referralID, *params.Active); err != nil {
		if errors.Is(err, domain.ErrRecordNotFound) {
			c.AbortWithStatusJSON(http.StatusNotFound, errorResponse("referral not found"))
			return
		}
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	c.JSON(http.StatusOK, APIResponse{Success: true})
}

// TCFLeads GET RouteGroup + AdminTCFLeadsRoute.
func (h *PortalHandler) TCFLeads(c *gin.Context) {
	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	leads, err := h.svs.TCFLeads(reqCtx)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	type leadResponse struct {
		ID        int64     `json:"id"`
		Name      string    `json:"name"`
		Email     string    `json:"email"`
		Phone     string    `json:"phone,omitempty"`
		Message   string    `json:"message,omitempty"`
		CreatedAt time.Time `json:"created_at"`
	}
	response := make([]leadResponse, len(leads))
	for i, lead := range leads {
		response[i] = leadResponse{
			ID:        lead.ID,
			Name:      lead.Name,
			Email:     lead.Email,
			Phone:     lead.Phone,
			Message:   lead.Message,
			CreatedAt: lead.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, successResponse(response))
}
