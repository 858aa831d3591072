package dto

import "time"

// CreatePaymentRequest starts a simulated registration-fee payment
type CreatePaymentRequest struct {
	CoachingID  int64  `json:"coachingId" binding:"omitempty,gt=0"`
	Description string `json:"description" binding:"max=200"`
}

// PaymentIntentResponse carries everything the client needs to present the
// payment: the deep link, where to fetch the QR image, and the record id to
// verify against.
type PaymentIntentResponse struct {
	PaymentID    int64  `json:"paymentId"`
	DeepLink     string `json:"deepLink"`
	QRCodeURL    string `json:"qrCodeUrl"`
	AmountRupees int    `json:"amountRupees"`
	Currency     string `json:"currency"`
	MerchantName string `json:"merchantName"`
}

// PaymentResultResponse is the outcome of a verification attempt
type PaymentResultResponse struct {
	PaymentID     int64      `json:"paymentId"`
	Status        string     `json:"status"`
	TransactionID string     `json:"transactionId,omitempty"`
	AmountRupees  int        `json:"amountRupees"`
	MerchantName  string     `json:"merchantName"`
	Description   string     `json:"description,omitempty"`
	FailureReason string     `json:"failureReason,omitempty"`
	VerifiedAt    *time.Time `json:"verifiedAt,omitempty"`
	ReceiptURL    string     `json:"receiptUrl,omitempty"`
}
