package calculations

import (
	"fmt"
	"math"
)

// Periods возвращает число периодов аннуитета. Дробный остаток срока отбрасывается:
// 2.3 года при годовых платежах дают 2 периода.
func Periods(paymentsPerYear int, termYears float64) int {
	return int(termYears * float64(paymentsPerYear))
}

// PresentValue рассчитывает приведенную стоимость обычного аннуитета (платежи в конце периода).
// Входные данные не проверяются, кроме нулевой частоты платежей.
func PresentValue(paymentAmount, discountRateAnnual float64, paymentsPerYear int, termYears float64) (float64, error) {
	if paymentsPerYear == 0 {
		return 0, fmt.Errorf("частота платежей равна нулю: %w", ErrDivisionByZero)
	}

	n := Periods(paymentsPerYear, termYears)
	r := discountRateAnnual / float64(paymentsPerYear)

	pv := 0.0
	for t := 1; t <= n; t++ {
		pv += paymentAmount / math.Pow(1.0+r, float64(t))
	}
	return pv, nil
}
