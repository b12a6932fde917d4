package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/ustaxcalc/ustax-api/internal/money"
)

func TestParseCents(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		wantCents int64
		wantOK    bool
		wantCode  money.ParseErrorCode
	}{
		{
			name:      "plain decimal",
			input:     "1234.56",
			wantCents: 123456,
			wantOK:    true,
		},
		{
			name:      "dollar sign and thousands separators",
			input:     "$1,234.56",
			wantCents: 123456,
			wantOK:    true,
		},
		{
			name:      "whole dollars",
			input:     "50000",
			wantCents: 5000000,
			wantOK:    true,
		},
		{
			name:      "surrounding whitespace",
			input:     "  $42  ",
			wantCents: 4200,
			wantOK:    true,
		},
		{
			name:      "single decimal place",
			input:     "10.5",
			wantCents: 1050,
			wantOK:    true,
		},
		{
			name:     "empty string",
			input:    "",
			wantOK:   false,
			wantCode: money.ErrInvalidString,
		},
		{
			name:     "garbage",
			input:    "abc",
			wantOK:   false,
			wantCode: money.ErrInvalidString,
		},
		{
			name:     "negative amount",
			input:    "-100",
			wantOK:   false,
			wantCode: money.ErrNegativeValue,
		},
		{
			name:     "infinity",
			input:    "Inf",
			wantOK:   false,
			wantCode: money.ErrInfiniteValue,
		},
		{
			name:     "exceeds maximum",
			input:    "99999999999",
			wantOK:   false,
			wantCode: money.ErrExceedsMax,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			r := money.ParseCents(tt.input)
			assert.Equal(t, tt.wantOK, r.OK)
			if tt.wantOK {
				assert.Equal(t, tt.wantCents, r.Cents)
			} else {
				assert.Equal(t, tt.wantCode, r.Code)
				assert.Equal(t, tt.input, r.Input)
			}
		})
	}
}

func TestParseCentsLenient(t *testing.T) {
	cents, degraded := money.ParseCentsLenient("$1,000.00")
	assert.Equal(t, int64(100000), cents)
	assert.False(t, degraded)

	cents, degraded = money.ParseCentsLenient("not a number")
	assert.Equal(t, int64(0), cents)
	assert.True(t, degraded)

	// Empty input is zero without being flagged as degraded.
	cents, degraded = money.ParseCentsLenient("")
	assert.Equal(t, int64(0), cents)
	assert.False(t, degraded)
}

func TestDollarsRoundTrip(t *testing.T) {
	// Every two-decimal dollar amount must survive the round trip exactly.
	amounts := []float64{0, 0.01, 0.1, 1, 19.99, 123.45, 50000, 987654.32}
	for _, d := range amounts {
		assert.Equal(t, d, money.ToDollars(money.FromDollars(d)), "amount %v", d)
	}
}

func TestFromDollarsRounding(t *testing.T) {
	// Values that are not representable in binary must still land on the
	// correct cent.
	assert.Equal(t, int64(2920), money.FromDollars(29.20))
	assert.Equal(t, int64(1005), money.FromDollars(10.045))
	assert.Equal(t, int64(-1050), money.FromDollars(-10.50))
}

func TestFormatDollars(t *testing.T) {
	assert.Equal(t, "1234.56", money.FormatDollars(123456))
	assert.Equal(t, "0.05", money.FormatDollars(5))
	assert.Equal(t, "-42.00", money.FormatDollars(-4200))
}

func TestSubFloor(t *testing.T) {
	assert.Equal(t, int64(500), money.SubFloor(1500, 1000))
	assert.Equal(t, int64(0), money.SubFloor(1000, 1500))
	assert.Equal(t, int64(0), money.SubFloor(1000, 1000))
}

func TestMulRate(t *testing.T) {
	// 15% of $25.50 is $3.825, rounds half up to $3.83.
	assert.Equal(t, int64(383), money.MulRate(2550, 0.15))
	assert.Equal(t, int64(250), money.MulRateBankers(5000, 0.05))
	assert.Equal(t, int64(0), money.MulRate(0, 0.37))
}
