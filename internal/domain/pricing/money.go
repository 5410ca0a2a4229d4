package pricing

import "errors"

var ErrNegativeAmount = errors.New("amount cannot be negative")

// Money is a whole-unit amount in the facility's currency.
type Money struct {
	amount int64
}

func NewMoney(amount int64) (Money, error) {
	if amount < 0 {
		return Money{}, ErrNegativeAmount
	}
	return Money{amount: amount}, nil
}

func Zero() Money {
	return Money{}
}

func (m Money) Amount() int64 {
	return m.amount
}

func (m Money) IsZero() bool {
	return m.amount == 0
}
