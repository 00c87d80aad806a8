package api

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

import (
	"context"

	"github.com/shopspring/decimal"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/fsdevblog/groph-invest/internal/service"
)

// UserServicer интерфейс исключительно для моков.
type UserServicer interface {
	Register(ctx context.Context, args service.RegisterUserArgs) (*domain.User, string, error)
	Login(ctx context.Context, args service.LoginUserArgs) (*domain.User, string, error)
}

type RequestServicer interface {
	Submit(ctx context.Context, investorID int64, amount decimal.Decimal) (*domain.InvestmentRequest, error)
	Review(ctx context.Context, args service.ReviewArgs) (*domain.InvestmentRequest, error)
	Find(ctx context.Context, filter repoargs.RequestFilter) ([]domain.InvestmentRequest, error)
}

type SettingsServicer interface {
	CurrentRate(ctx context.Context) (*domain.Setting, error)
	SetCurrentRate(ctx context.Context, value decimal.Decimal) (*domain.Setting, error)
}

type ContractServicer interface {
	GetByInvestorID(ctx context.Context, investorID int64) ([]domain.Contract, error)
}

type PortalServicer interface {
	CreateNewsletter(ctx context.Context, args repoargs.CreateNewsletter) (*domain.Newsletter, error)
	PublishedNewsletters(ctx context.Context) ([]domain.Newsletter, error)
	CreateReferral(ctx context.Context, args repoargs.CreateReferral) (*domain.Referral, error)
	Referrals(ctx context.Context) ([]domain.Referral, error)
	SetReferralActive(ctx context.Context, id int64, active bool) error
	SubmitTCFLead(ctx context.Context, args repoargs.CreateTCFLead, honeypot string) (*domain.TCFLead, error)
	TCFLeads(ctx context.Context) ([]domain.TCFLead, error)
}
