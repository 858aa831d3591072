package models

import "time"

// PaymentStatus is the state of a simulated payment
type PaymentStatus string

const (
	PaymentStatusPending PaymentStatus = "PENDING"
	PaymentStatusSuccess PaymentStatus = "SUCCESS"
	PaymentStatusFailed  PaymentStatus = "FAILED"
)

// Payment records one registration-fee payment attempt. The gateway behind
// it is simulated; a real integration replaces the gateway, not this record.
type Payment struct {
	ID            int64         `json:"id"`
	UserID        int64         `json:"userId"`
	CoachingID    int64         `json:"coachingId,omitempty"`
	AmountRupees  int           `json:"amountRupees"`
	Currency      string        `json:"currency"`
	Status        PaymentStatus `json:"status"`
	TransactionID string        `json:"transactionId,omitempty"`
	MerchantName  string        `json:"merchantName"`
	Description   string        `json:"description,omitempty"`
	FailureReason string        `json:"failureReason,omitempty"`
	CreatedAt     time.Time     `json:"createdAt"`
	VerifiedAt    *time.Time    `json:"verifiedAt,omitempty"`
}
