package gst_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rajatsoni/vyapar-api/pkg/gst"
)

func TestCompute_StandardRate(t *testing.T) {
	// Rate 100 at 18% -> tax 18, total 118.
	tax, total := gst.Compute(decimal.NewFromInt(100), decimal.NewFromInt(18))

	assert.True(t, tax.Equal(decimal.NewFromInt(18)), "tax = %s", tax)
	assert.True(t, total.Equal(decimal.NewFromInt(118)), "total = %s", total)
}

func TestCompute_ZeroPercent(t *testing.T) {
	tax, total := gst.Compute(decimal.NewFromInt(250), decimal.Zero)

	assert.True(t, tax.IsZero())
	assert.True(t, total.Equal(decimal.NewFromInt(250)))
}

func TestCompute_KeepsFullPrecision(t *testing.T) {
	// 33.33 at 18% = 5.9994 exactly; no premature rounding.
	tax, total := gst.Compute(decimal.RequireFromString("33.33"), decimal.NewFromInt(18))

	assert.True(t, tax.Equal(decimal.RequireFromString("5.9994")), "tax = %s", tax)
	assert.True(t, total.Equal(decimal.RequireFromString("39.3294")), "total = %s", total)
}

func TestInclusivePrice(t *testing.T) {
	cases := []struct {
		name    string
		rate    string
		percent string
		want    string
	}{
		{"widget at 18", "100", "18", "118"},
		{"fraction rounds", "33.33", "18", "39.33"},
		{"five percent", "80", "5", "84"},
		{"zero rate", "0", "18", "0"},
		{"high precision rate", "99.999", "12", "112"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			got := gst.InclusivePrice(
				decimal.RequireFromString(tc.rate),
				decimal.RequireFromString(tc.percent),
			)
			require.True(t, got.Equal(decimal.RequireFromString(tc.want)),
				"InclusivePrice(%s, %s%%) = %s, want %s", tc.rate, tc.percent, got, tc.want)
		})
	}
}

func TestValidPercent(t *testing.T) {
	assert.True(t, gst.ValidPercent(decimal.Zero))
	assert.True(t, gst.ValidPercent(decimal.NewFromInt(18)))
	assert.True(t, gst.ValidPercent(decimal.NewFromInt(100)))
	assert.False(t, gst.ValidPercent(decimal.NewFromInt(101)))
	assert.False(t, gst.ValidPercent(decimal.NewFromInt(-1)))
}
