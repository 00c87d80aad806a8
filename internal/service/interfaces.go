package service

import (
	"context"
	"time"

	"github.com/fsdevblog/groph-invest/internal/domain"
	"github.com/fsdevblog/groph-invest/internal/repository/repoargs"
	"github.com/shopspring/decimal"
)

//go:generate mockgen -source=interfaces.go -destination=mocks/mocks.go -package=mocks

type InvestmentRequestRepository interface {
	Create(ctx context.Context, args repoargs.CreateInvestmentRequest) (*domain.InvestmentRequest, error)
	FindByID(ctx context.Context, id int64) (*domain.InvestmentRequest, error)
	Resolve(ctx context.Context, args repoargs.ResolveInvestmentRequest) (*domain.InvestmentRequest, error)
	Find(ctx context.Context, filter repoargs.RequestFilter) ([]domain.InvestmentRequest, error)
	GetForNotification(ctx context.Context, limit uint) ([]domain.InvestmentRequest, error)
	MarkNotified(ctx context.Context, ids []int64, at time.Time) error
}

type SettingRepository interface {
	FindByKey(ctx context.Context, key string) (*domain.Setting, error)
	Upsert(ctx context.Context, key string, value decimal.Decimal) (*domain.Setting, error)
}

type ContractRepository interface {
	Create(ctx context.Context, args repoargs.CreateContract) (*domain.Contract, error)
	GetByInvestorID(ctx context.Context, investorID int64) ([]domain.Contract, error)
}

type UserRepository interface {
	CreateUser(ctx context.Context, user repoargs.CreateUser) (*domain.User, error)
	FindUserByUsername(ctx context.Context, username string) (*domain.User, error)
}

type NewsletterRepository interface {
	Create(ctx context.Context, args repoargs.CreateNewsletter) (*domain.Newsletter, error)
	GetPublished(ctx context.Context, limit uint) ([]domain.Newsletter, error)
}

type ReferralRepository interface {
	Create(ctx context.Context, args repoargs.CreateReferral) (*domain.Referral, error)
	GetAll(ctx context.Context) ([]domain.Referral, error)
	SetActive(ctx context.Context, id int64, active bool) error
}

type TCFLeadRepository interface {
	Create(ctx context.Context, args repoargs.CreateTCFLead) (*domain.TCFLead, error)
	GetAll(ctx context.Context, limit uint) ([]domain.TCFLead, error)
}
