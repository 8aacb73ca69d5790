package calculations

import (
	"fmt"
	"strconv"
	"strings"
)

// PaymentFrequency количество платежей в год
type PaymentFrequency int

const (
	Annual     PaymentFrequency = 1
	Semiannual PaymentFrequency = 2
	Quarterly  PaymentFrequency = 4
	Monthly    PaymentFrequency = 12
)

var frequencyNames = map[string]PaymentFrequency{
	"annual":     Annual,
	"semiannual": Semiannual,
	"quarterly":  Quarterly,
	"monthly":    Monthly,
}

// Frequencies возвращает поддерживаемые частоты в порядке возрастания
func Frequencies() []PaymentFrequency {
	return []PaymentFrequency{Annual, Semiannual, Quarterly, Monthly}
}

// Valid сообщает, входит ли частота в {1, 2, 4, 12}
func (f PaymentFrequency) Valid() bool {
	switch f {
	case Annual, Semiannual, Quarterly, Monthly:
		return true
	}
	return false
}

func (f PaymentFrequency) String() string {
	for name, v := range frequencyNames {
		if v == f {
			return name
		}
	}
	return strconv.Itoa(int(f))
}

// ParseFrequency принимает имя частоты ("quarterly") или число платежей в год ("4")
func ParseFrequency(s string) (PaymentFrequency, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	if f, ok := frequencyNames[s]; ok {
		return f, nil
	}
	n, err := strconv.Atoi(s)
	if err != nil {
		return 0, fmt.Errorf("неизвестная частота платежей %q", s)
	}
	return PaymentFrequency(n), nil
}
