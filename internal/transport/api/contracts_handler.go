package api

import (
	"context"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
)

type ContractsHandler struct {
	svs ContractServicer
}

func NewContractsHandler(svs ContractServicer) *ContractsHandler {
	return &ContractsHandler{
		svs: svs,
	}
}

type ContractResponse struct {
	ID          int64     `json:"id"`
	RequestID   int64     `json:"request_id"`
	CoinAmount  int64     `json:"coin_amount"`
	TotalAmount float64   `json:"total_amount"`
	DocumentURL string    `json:"document_url,omitempty"`
	CreatedAt   time.Time `json:"created_at"`
}

// Index GET RouteGroup + ContractsRoute. Договоры текущего инвестора.
func (h *ContractsHandler) Index(c *gin.Context) {
	currentUserID := getUserIDFromContext(c)

	reqCtx, cancel := context.WithTimeout(c, DefaultServiceTimeout)
	defer cancel()

	contracts, err := h.svs.GetByInvestorID(reqCtx, currentUserID)
	if err != nil {
		_ = c.AbortWithError(http.StatusInternalServerError, err).SetType(gin.ErrorTypePrivate)
		return
	}

	response := make([]ContractResponse, len(contracts))
	for i, contract := range contracts {
		response[i] = ContractResponse{
			ID:          contract.ID,
			RequestID:   contract.RequestID,
			CoinAmount:  contract.CoinAmount,
			TotalAmount: contract.TotalAmount.InexactFloat64(),
			DocumentURL: contract.DocumentURL,
			CreatedAt:   contract.CreatedAt,
		}
	}
	c.JSON(http.StatusOK, successResponse(response))
}
