package repoargs

import (
	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/shopspring/decimal"
)

type CreateInvestmentRequest struct {
	InvestorID       int64
	InvestmentAmount decimal.Decimal
	CurrentRate      decimal.Decimal
	DiscountedRate   decimal.Decimal
	ExpectedCoins    int64
}

// ResolveInvestmentRequest аргументы перевода заявки в конечный статус. Репозиторий обязан
// применять обновление только к записям в статусе pending.
type ResolveInvestmentRequest struct {
	ID         int64
	Status     domain.RequestStatusType
	ReviewedBy int64
	Comment    string
}

// RequestFilter фильтр списка заявок для админки.
type RequestFilter struct {
	Status     domain.RequestStatusType
	InvestorID int64
	Limit      uint
	Offset     uint
}
