package formatter

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
)

func TestMain(m *testing.M) {
	goleak.VerifyTestMain(m)
}

func TestAmount(t *testing.T) {
	f := MustNewFormatter("en-US")

	tests := []struct {
		amount int64
		want   string
	}{
		{15000, "15,000"},
		{8000, "8,000"},
		{999, "999"},
		{0, "0"},
		{1234567, "1,234,567"},
		{-1500, "-1,500"},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, f.Amount(tt.amount), "amount %d", tt.amount)
	}
}

func TestAmount_FollowsLocale(t *testing.T) {
	f, err := NewFormatter("de-DE")
	require.NoError(t, err)

	assert.Equal(t, "15.000", f.Amount(15000))
	assert.Equal(t, "de-DE", f.Locale())
}

func TestNewFormatter_InvalidLocale(t *testing.T) {
	_, err := NewFormatter("not a locale!!")
	assert.Error(t, err)

	assert.Panics(t, func() { MustNewFormatter("not a locale!!") })
}

func TestPaymentStatus(t *testing.T) {
	paid := PaymentStatus(true)
	assert.Equal(t, "Paid", paid.Label)
	assert.Equal(t, "success", paid.Tone)

	pending := PaymentStatus(false)
	assert.Equal(t, "Pending", pending.Label)
	assert.Equal(t, "warning", pending.Tone)
}

func TestLongDate(t *testing.T) {
	assert.Equal(t, "January 15, 2025", LongDate("2025-01-15"))
	assert.Equal(t, "December 10, 2024", LongDate("2024-12-10"))
	assert.Equal(t, "N/A", LongDate(""))
	assert.Equal(t, "N/A", LongDate("15/01/2025"))
}
