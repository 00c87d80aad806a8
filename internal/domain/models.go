package domain

import (
	"github.com/shopspring/decimal"

	"time"
)

type User struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Username  string
	Password  string
	Role      UserRoleType
}

// InvestmentRequest заявка инвестора на покупку монет. Поля CurrentRate, DiscountedRate и
// ExpectedCoins фиксируются в момент подачи заявки и после создания записи не пересчитываются,
// даже если курс в настройках изменился.
type InvestmentRequest struct {
	ID               int64
	CreatedAt        time.Time
	UpdatedAt        time.Time
	InvestorID       int64
	InvestmentAmount decimal.Decimal
	CurrentRate      decimal.Decimal
	DiscountedRate   decimal.Decimal
	ExpectedCoins    int64
	Status           RequestStatusType
	ReviewedBy       *int64
	ReviewComment    string
	NotifiedAt       *time.Time
}

// Contract договор, создаваемый при одобрении заявки. Сам документ хранится во внешнем
// файловом сервисе, у нас только ссылка.
type Contract struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	InvestorID  int64
	RequestID   int64
	CoinAmount  int64
	TotalAmount decimal.Decimal
	DocumentURL string
}

type Setting struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Key       string
	Value     decimal.Decimal
}

type Newsletter struct {
	ID          int64
	CreatedAt   time.Time
	UpdatedAt   time.Time
	Title       string
	Body        string
	PublishedAt *time.Time
}

type Referral struct {
	ID            int64
	CreatedAt     time.Time
	UpdatedAt     time.Time
	InvestorID    int64
	Code          string
	RewardPercent decimal.Decimal
	Active        bool
}

// TCFLead запись публичной лид-формы. Никакой бизнес-логики, только хранение.
type TCFLead struct {
	ID        int64
	CreatedAt time.Time
	UpdatedAt time.Time
	Name      string
	Email     string
	Phone     string
	Message   string
}
