package domain

import (
	"math"
	"strconv"
	"strings"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// pyeongPerM2Divisor - перевод квадратных метров в пхён (평):
// area_m2 / 3.3058.
const pyeongPerM2Divisor = 3.3058

// printer форматирует целые с разделителями тысяч (как toLocaleString
// в исходной админке).
var printer = message.NewPrinter(language.Korean)

// ParseNumeric - общая терпимая числовая коэрция: убирает разделители
// тысяч и пробелы, парсит как float. Ошибка парсинга не фатальна -
// значение просто деградирует в nil (NULL).
func ParseNumeric(raw string) *float64 {
	s := strings.TrimSpace(raw)
	if s == "" {
		return nil
	}
	s = strings.ReplaceAll(s, ",", "")
	n, err := strconv.ParseFloat(s, 64)
	if err != nil || math.IsInf(n, 0) || math.IsNaN(n) {
		return nil
	}
	return &n
}

// PricePerPyeong вычисляет цену за пхён (만원) для показа. Чистая
// функция: запись не мутирует. Возвращает "-", если любой операнд
// отсутствует, не числовой или площадь равна нулю.
func PricePerPyeong(landAreaM2 *float64, priceManwon *string) string {
	if landAreaM2 == nil || priceManwon == nil {
		return "-"
	}
	price := ParseNumeric(*priceManwon)
	if price == nil {
		return "-"
	}
	land := *landAreaM2
	if land == 0 || math.IsInf(land, 0) || math.IsNaN(land) {
		return "-"
	}

	pyeong := land / pyeongPerM2Divisor
	per := math.Round(*price / pyeong)
	return printer.Sprintf("%d", int64(per))
}
