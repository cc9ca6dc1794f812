package domain

import (
	"errors"
)

var (
	MessageFailedPayment = "Payment failed"

	ErrInvalidPaymentAmount = errors.New("payment amount must be positive")
)

type PaymentResult struct {
	Success       bool   `json:"success"`
	TransactionID string `json:"transactionId"`
}
