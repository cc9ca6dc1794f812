package payment

import (
	"Relief-Aid-Backend/domain"
	"context"
	"fmt"
	"sync/atomic"
	"time"
)

type (
	// PaymentService simulates payment authorization. Authorization always
	// succeeds; there is no real gateway behind it.
	PaymentService interface {
		Authorize(ctx context.Context, amount int64) (*domain.PaymentResult, error)
		SetFailureHook(hook func(amount int64) error)
	}

	paymentService struct {
		seq      uint64
		failHook func(amount int64) error
	}
)

func NewPaymentService() PaymentService {
	return &paymentService{}
}

func (s *paymentService) Authorize(ctx context.Context, amount int64) (*domain.PaymentResult, error) {
	if amount <= 0 {
		return nil, domain.ErrInvalidPaymentAmount
	}

	if s.failHook != nil {
		if err := s.failHook(amount); err != nil {
			return nil, err
		}
	}

	// The counter keeps ids unique even when two calls land in the same
	// millisecond.
	transactionID := fmt.Sprintf("txn_%d_%d", time.Now().UnixMilli(), atomic.AddUint64(&s.seq, 1))

	return &domain.PaymentResult{
		Success:       true,
		TransactionID: transactionID,
	}, nil
}

// SetFailureHook installs a failure injection for tests. The default (nil)
// preserves the always-succeeds behavior the donation flow expects.
func (s *paymentService) SetFailureHook(hook func(amount int64) error) {
	s.failHook = hook
}
