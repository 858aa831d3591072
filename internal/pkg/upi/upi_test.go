package upi

import (
	"net/url"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDeepLink(t *testing.T) {
	link := DeepLink(Intent{
		PayeeID:      "coachhub@upi",
		MerchantName: "CoachHub Marketplace",
		AmountRupees: 500,
		Currency:     "INR",
	})

	assert.True(t, strings.HasPrefix(link, "upi://pay?"))

	u, err := url.Parse(link)
	require.NoError(t, err)
	q := u.Query()
	assert.Equal(t, "coachhub@upi", q.Get("pa"))
	assert.Equal(t, "CoachHub Marketplace", q.Get("pn"))
	assert.Equal(t, "500.00", q.Get("am"))
	assert.Equal(t, "INR", q.Get("cu"))
}

func TestQRCode(t *testing.T) {
	png, err := QRCode(Intent{PayeeID: "a@upi", MerchantName: "A", AmountRupees: 100, Currency: "INR"}, 256)
	require.NoError(t, err)
	// PNG magic bytes
	require.True(t, len(png) > 8)
	assert.Equal(t, []byte{0x89, 'P', 'N', 'G'}, png[:4])
}
