// Package coins содержит расчет количества монет по сумме инвестиции и текущему курсу.
// Единственный источник правды для бонусного множителя и минимальной суммы инвестиции.
package coins

import "github.com/shopspring/decimal"

// MinInvestment минимальная сумма инвестиции в валютных единицах.
var MinInvestment = decimal.NewFromInt(100)

var (
	// BonusMultiplier инвесторская скидка 20%, выраженная как множитель к количеству монет.
	BonusMultiplier = decimal.NewFromFloat(1.2)
	// RateDiscount та же скидка, выраженная как множитель к цене монеты. Оба представления
	// фиксируются в заявке в момент подачи: expected_coins через BonusMultiplier,
	// discounted_rate через RateDiscount.
	RateDiscount = decimal.NewFromFloat(0.8)
)

// BaseCoins возвращает количество монет без учета скидки: amount / rate.
// При неположительных amount или rate возвращает ноль; вызывающая сторона обязана
// отклонить такой ввод до записи в БД.
func BaseCoins(amount, rate decimal.Decimal) decimal.Decimal {
	if !amount.IsPositive() || !rate.IsPositive() {
		return decimal.Zero
	}
	// 16 знаков достаточно для любых реалистичных курсов, включая курсы вида 0.00001.
	return amount.DivRound(rate, 16)
}

// DiscountedCoins возвращает количество монет с учетом инвесторской скидки.
func DiscountedCoins(amount, rate decimal.Decimal) decimal.Decimal {
	return BaseCoins(amount, rate).Mul(BonusMultiplier)
}

// DiscountedRate возвращает эффективную цену монеты с учетом скидки: rate * 0.8.
// Значение фиксируется в заявке в момент подачи и далее не пересчитывается.
func DiscountedRate(rate decimal.Decimal) decimal.Decimal {
	return rate.Mul(RateDiscount)
}

// ExpectedCoins возвращает итоговое целое количество монет: round(amount / rate * 1.2).
// Округление до ближайшего целого, половина от нуля. Это единственное каноничное правило
// округления: оно применяется и при подаче заявки, и при любом серверном пересчете.
func ExpectedCoins(amount, rate decimal.Decimal) int64 {
	return DiscountedCoins(amount, rate).Round(0).IntPart()
}

// ValidAmount проверяет минимальную сумму инвестиции.
func ValidAmount(amount decimal.Decimal) bool {
	return amount.GreaterThanOrEqual(MinInvestment)
}
