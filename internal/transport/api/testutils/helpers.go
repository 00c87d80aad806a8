package testutils

import "strings"

// GenerateOverBytesUnderRunes возвращает строку из count рун, каждая из которых
// занимает 4 байта. Нужна для проверки лимитов, считающих байты, а не руны.
func GenerateOverBytesUnderRunes(count int) string {
	return strings.Repeat("💰", count)
}
