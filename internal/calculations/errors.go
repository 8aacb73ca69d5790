package calculations

import "errors"

var (
	// ErrDivisionByZero возвращается, когда срок в месяцах или частота платежей равны нулю
	ErrDivisionByZero = errors.New("деление на ноль")

	// ErrInvalidInput оборачивается валидаторами на границе сервиса
	ErrInvalidInput = errors.New("неверные входные данные")
)
