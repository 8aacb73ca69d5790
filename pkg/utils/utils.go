package utils

import (
	"math"
	"strconv"
)

// Round2 округляет число до 2 знаков после запятой.
// Округляется точное двоичное значение, ничья уходит к четному: 0.125 -> 0.12.
func Round2(value float64) float64 {
	if !IsFinite(value) {
		return value
	}
	rounded, err := strconv.ParseFloat(strconv.FormatFloat(value, 'f', 2, 64), 64)
	if err != nil || rounded == 0 {
		return 0
	}
	return rounded
}

// IsFinite проверяет, является ли число конечным
func IsFinite(value float64) bool {
	return !math.IsInf(value, 0) && !math.IsNaN(value)
}
