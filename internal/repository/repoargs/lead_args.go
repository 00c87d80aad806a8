package repoargs

import "github.com/shopspring/decimal"

type CreateTCFLead struct {
	Name    string
	Email   string
	Phone   string
	Message string
}

type CreateReferral struct {
	InvestorID    int64
	Code          string
	RewardPercent decimal.Decimal
}

type CreateNewsletter struct {
	Title string
	Body  string
}
