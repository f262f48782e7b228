package commerce

import (
	"testing"

	"github.com/Mulato-Aaron/Proyecto-5I-GameVerse/models"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCardDetailsValidate(t *testing.T) {
	cases := []struct {
		name string
		edit func(c *CardDetails)
		want error
	}{
		{"valid", func(c *CardDetails) {}, nil},
		{"expires this month", func(c *CardDetails) { c.ExpYear, c.ExpMonth = 2026, 10 }, nil},
		{"four digit cvv", func(c *CardDetails) { c.CVV = "1234" }, nil},
		{"expired last month", func(c *CardDetails) { c.ExpYear, c.ExpMonth = 2026, 9 }, ErrExpiredCard},
		{"expired last year", func(c *CardDetails) { c.ExpYear, c.ExpMonth = 2025, 12 }, ErrExpiredCard},
		{"short number", func(c *CardDetails) { c.Number = "411111111111111" }, ErrInvalidCardFields},
		{"long number", func(c *CardDetails) { c.Number = "41111111111111112" }, ErrInvalidCardFields},
		{"letters in number", func(c *CardDetails) { c.Number = "4111-1111-1111-1" }, ErrInvalidCardFields},
		{"cvv too short", func(c *CardDetails) { c.CVV = "12" }, ErrInvalidCardFields},
		{"cvv too long", func(c *CardDetails) { c.CVV = "12345" }, ErrInvalidCardFields},
		{"month 13", func(c *CardDetails) { c.ExpMonth = 13 }, ErrInvalidCardFields},
		{"no holder", func(c *CardDetails) { c.HolderName = "  " }, ErrInvalidCardFields},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			card := validCard()
			tc.edit(&card)
			err := card.Validate(fixedNow)
			if tc.want == nil {
				assert.NoError(t, err)
				return
			}
			assert.ErrorIs(t, err, tc.want)
		})
	}
}

func TestPayoutDetailsValidate(t *testing.T) {
	full := PayoutDetails{HolderName: "Ada", AccountNumber: "000123456789", BankName: "BBVA"}
	assert.NoError(t, full.Validate())
	assert.Equal(t, "6789", full.accountLast4())

	for _, p := range []PayoutDetails{
		{AccountNumber: "1", BankName: "B"},
		{HolderName: "A", BankName: "B"},
		{HolderName: "A", AccountNumber: "1"},
	} {
		assert.ErrorIs(t, p.Validate(), ErrIncompleteBankDetails)
	}
}

func TestParsePaymentMethod(t *testing.T) {
	m, err := ParsePaymentMethod(" CARD ")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCard, m)

	m, err = ParsePaymentMethod("credit")
	require.NoError(t, err)
	assert.Equal(t, models.PaymentCredit, m)

	_, err = ParsePaymentMethod("paypal")
	assert.ErrorIs(t, err, ErrUnknownPaymentMethod)
}
