package ticket

import "errors"

var (
	ErrAlreadyClosed   = errors.New("ticket is already closed")
	ErrInvalidTicketID = errors.New("invalid ticket id")
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
)

func (s PaymentStatus) String() string {
	return string(s)
}

func (s PaymentStatus) Valid() bool {
	return s == PaymentPending || s == PaymentPaid
}
