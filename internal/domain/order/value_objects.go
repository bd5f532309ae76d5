package order

import (
	"errors"
	"strings"
)

var (
	ErrInvalidQuantity       = errors.New("only a quantity of 1 is supported")
	ErrInvalidIdempotencyKey = errors.New("idempotency key must be 1-255 characters")
	ErrNotPayable            = errors.New("order not payable")
	ErrNegativeAmount        = errors.New("amount cannot be negative")
	ErrReservedKeyPrefix     = errors.New("idempotency key prefix " + ReservedKeyPrefix + " is reserved")
)

// Quantity is fixed at one unit per order.
const Quantity int32 = 1

func ValidateQuantity(qty int32) error {
	if qty != Quantity {
		return ErrInvalidQuantity
	}
	return nil
}

const maxIdempotencyKeyLength = 255

// ReservedKeyPrefix marks keys derived from purchase intents. Clients may not send them.
const ReservedKeyPrefix = "intent:"

type IdempotencyKey struct {
	value string
}

func NewIdempotencyKey(s string) (IdempotencyKey, error) {
	s = strings.TrimSpace(s)
	if s == "" || len(s) > maxIdempotencyKeyLength {
		return IdempotencyKey{}, ErrInvalidIdempotencyKey
	}
	return IdempotencyKey{value: s}, nil
}

// ParseIdempotencyKey treats an empty header as "no key".
func ParseIdempotencyKey(s string) (*IdempotencyKey, error) {
	if strings.TrimSpace(s) == "" {
		return nil, nil
	}
	if strings.HasPrefix(strings.TrimSpace(s), ReservedKeyPrefix) {
		return nil, ErrReservedKeyPrefix
	}
	key, err := NewIdempotencyKey(s)
	if err != nil {
		return nil, err
	}
	return &key, nil
}

func (k IdempotencyKey) Value() string {
	return k.value
}
