// Package upi builds UPI payment deep links and QR payloads.
package upi

import (
	"fmt"
	"net/url"

	qrcode "github.com/skip2/go-qrcode"
)

// Intent describes one payable amount
type Intent struct {
	PayeeID      string // payee VPA, e.g. merchant@upi
	MerchantName string
	AmountRupees int
	Currency     string // ISO code, normally INR
}

// DeepLink renders the upi://pay deep link for the intent. The merchant name
// is URL-encoded; the amount carries two decimal places as UPI apps expect.
func DeepLink(in Intent) string {
	return fmt.Sprintf("upi://pay?pa=%s&pn=%s&am=%d.00&cu=%s",
		url.QueryEscape(in.PayeeID),
		url.QueryEscape(in.MerchantName),
		in.AmountRupees,
		url.QueryEscape(in.Currency),
	)
}

// QRCode renders the deep link as a PNG image of the given edge size.
func QRCode(in Intent, size int) ([]byte, error) {
	png, err := qrcode.Encode(DeepLink(in), qrcode.Medium, size)
	if err != nil {
		return nil, fmt.Errorf("failed to encode UPI QR code: %w", err)
	}
	return png, nil
}
