package report

import (
	"strings"

	"github.com/cloud-ru/rou-lease-go/pkg/utils"
	"github.com/shopspring/decimal"
)

// Fixed2 печатает значение с двумя знаками после запятой без разделителей
func Fixed2(v float64) string {
	if !utils.IsFinite(v) {
		return "NaN"
	}
	return decimal.NewFromFloat(v).StringFixed(2)
}

// FormatMoney печатает сумму с разделителями тысяч: 432947.667 -> "432,947.67"
func FormatMoney(v float64) string {
	s := Fixed2(v)
	if s == "NaN" {
		return s
	}

	sign := ""
	if strings.HasPrefix(s, "-") {
		sign, s = "-", s[1:]
	}
	intPart, frac := s, ""
	if i := strings.IndexByte(s, '.'); i >= 0 {
		intPart, frac = s[:i], s[i:]
	}

	var b strings.Builder
	for i, r := range intPart {
		if i > 0 && (len(intPart)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return sign + b.String() + frac
}
