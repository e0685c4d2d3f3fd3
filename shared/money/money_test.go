package money_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"frontdesk/shared/money"
)

func TestFormat(t *testing.T) {
	tests := []struct {
		amount float64
		want   string
	}{
		{0, "0"},
		{500, "500"},
		{1500, "1,500"},
		{4500, "4,500"},
		{4837.5, "4,837.50"},
		{40000, "40,000"},
		{337.5, "337.50"},
		{1234567.89, "1,234,567.89"},
		{-1500, "-1,500"},
		{0.1 + 0.2, "0.30"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, money.Format(tt.amount))
		})
	}
}

func TestFormatNaira(t *testing.T) {
	assert.Equal(t, "₦4,837.50", money.FormatNaira(4837.5))
	assert.Equal(t, "₦40,000", money.FormatNaira(40000))
}

func TestPercent(t *testing.T) {
	assert.Equal(t, "66.67%", money.Percent(66.666666))
	assert.Equal(t, "0.00%", money.Percent(0))
}
