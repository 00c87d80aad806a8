package repoargs

import "github.com/shopspring/decimal"

type CreateContract struct {
	InvestorID  int64
	RequestID   int64
	CoinAmount  int64
	TotalAmount decimal.Decimal
	DocumentURL string
}
