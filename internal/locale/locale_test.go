package locale

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseDate(t *testing.T) {
	tests := []struct {
		token string
		year  int
		want  string
	}{
		{"01.10.", 2025, "2025-10-01"},
		{"31.12.", 2024, "2024-12-31"},
		{"29.02.", 2024, "2024-02-29"}, // leap year
		{" 05.03. ", 2025, "2025-03-05"},
	}
	for _, tt := range tests {
		got, err := ParseDate(tt.token, tt.year)
		require.NoError(t, err, "token: %s", tt.token)
		assert.Equal(t, tt.want, got.Format("2006-01-02"))
	}
}

func TestParseDate_Errors(t *testing.T) {
	badTokens := []string{
		"",
		"01.10",     // missing trailing dot
		"1.10.",     // single-digit day
		"00.10.",    // day out of range
		"32.01.",    // day out of range
		"01.13.",    // month out of range
		"29.02.",    // not a leap year (2025)
		"01-10-",    // wrong separators
		"01.10.2025", // full date is a different format
	}
	for _, token := range badTokens {
		_, err := ParseDate(token, 2025)
		require.Error(t, err, "token: %s", token)

		var ferr *FormatError
		assert.ErrorAs(t, err, &ferr, "token: %s", token)
		assert.Equal(t, "date", ferr.Kind)
	}
}

func TestParseFullDate(t *testing.T) {
	got, err := ParseFullDate("31.10.2025")
	require.NoError(t, err)
	assert.Equal(t, "2025-10-31", got.Format("2006-01-02"))

	_, err = ParseFullDate("31.13.2025")
	assert.Error(t, err)
}

func TestParseAmount(t *testing.T) {
	tests := []struct {
		token string
		want  string
	}{
		{"2,60", "2.60"},
		{"1.234,56", "1234.56"},
		{"1.234.567,89", "1234567.89"},
		{"0,00", "0.00"},
		{"1500", "1500.00"},
	}
	for _, tt := range tests {
		got, err := ParseAmount(tt.token)
		require.NoError(t, err, "token: %s", tt.token)
		assert.Equal(t, tt.want, got.StringFixed(2))
	}
}

func TestParseAmount_Errors(t *testing.T) {
	badTokens := []string{"", "abc", "12,34,56", "12x", "-2,60"}
	for _, token := range badTokens {
		_, err := ParseAmount(token)
		require.Error(t, err, "token: %s", token)

		var ferr *FormatError
		assert.ErrorAs(t, err, &ferr, "token: %s", token)
		assert.Equal(t, "amount", ferr.Kind)
	}
}

func TestAmountRoundTrip(t *testing.T) {
	tokens := []string{"2,60", "1.234,56", "1.234.567,89", "0,00", "999,99"}
	for _, token := range tokens {
		d, err := ParseAmount(token)
		require.NoError(t, err)
		assert.Equal(t, token, FormatAmount(d), "token: %s", token)
	}
}
