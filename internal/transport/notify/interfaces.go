package notify

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/fsdevblog/groph-invest/internal/domain"
)

type Client interface {
	NotifyNewRequest(ctx context.Context, request *domain.InvestmentRequest) error
}

type Servicer interface {
	RequestsForNotification(ctx context.Context, limit uint) ([]domain.InvestmentRequest, error)
	MarkNotified(ctx context.Context, ids []int64) error
}
