package payroll

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(v int64) decimal.Decimal {
	return decimal.NewFromInt(v)
}

func dp(v int64) *decimal.Decimal {
	dec := decimal.NewFromInt(v)
	return &dec
}

func TestCompute_AhmadSuryaScenario(t *testing.T) {
	b := Compute(d(5_000_000), dp(200_000), dp(100_000))

	assert.True(t, b.Allowances.Equal(d(300_000)), "allowances = %s", b.Allowances)
	assert.True(t, b.PPh21.Equal(d(265_000)), "pph21 = %s", b.PPh21)
	assert.True(t, b.BPJSKesEmployee.Equal(d(50_000)), "bpjs kes employee = %s", b.BPJSKesEmployee)
	assert.True(t, b.JHTEmployee.Equal(d(100_000)), "jht employee = %s", b.JHTEmployee)
	assert.True(t, b.JPEmployee.Equal(d(50_000)), "jp employee = %s", b.JPEmployee)
	assert.True(t, b.Deductions.Equal(d(465_000)), "deductions = %s", b.Deductions)
	assert.True(t, b.NetSalary.Equal(d(4_835_000)), "net salary = %s", b.NetSalary)
}

func TestCompute_CompanyShares(t *testing.T) {
	b := Compute(d(5_000_000), nil, nil)

	assert.True(t, b.BPJSKesCompany.Equal(d(200_000)))
	assert.True(t, b.JHTCompany.Equal(d(185_000)))
	assert.True(t, b.JPCompany.Equal(d(100_000)))
	assert.True(t, b.JKK.Equal(d(12_000)))
	assert.True(t, b.JKM.Equal(d(15_000)))

	// Employer-side contributions never reduce take-home pay.
	expectedNet := b.BasicSalary.Add(b.Allowances).Sub(b.Deductions)
	assert.True(t, b.NetSalary.Equal(expectedNet))
}

func TestCompute_NetSalaryIdentity(t *testing.T) {
	cases := []struct {
		basic     int64
		incentive *decimal.Decimal
		transport *decimal.Decimal
	}{
		{1_000_000, nil, nil},
		{5_000_000, dp(200_000), dp(100_000)},
		{10_000_000, dp(1_500_000), nil},
		{4_999_999, nil, dp(1)},
	}

	for _, tc := range cases {
		b := Compute(d(tc.basic), tc.incentive, tc.transport)
		sum := b.BPJSKesEmployee.Add(b.JHTEmployee).Add(b.JPEmployee).Add(b.PPh21)
		net := b.BasicSalary.Add(b.Allowances).Sub(sum)
		assert.True(t, b.NetSalary.Equal(net), "basic %d", tc.basic)
		assert.True(t, b.Deductions.Equal(sum), "basic %d", tc.basic)
	}
}

func TestCompute_PPh21Boundary(t *testing.T) {
	// Annualized income of exactly 60,000,000 is tax free.
	b := Compute(d(5_000_000), nil, nil)
	assert.True(t, b.PPh21.IsZero(), "pph21 = %s", b.PPh21)

	// One rupiah of monthly income above the threshold starts the levy.
	withTax := Compute(d(5_000_000), dp(1), nil)
	assert.True(t, withTax.PPh21.GreaterThan(decimal.Zero), "pph21 = %s", withTax.PPh21)
}

func TestCompute_ZeroSalary(t *testing.T) {
	b := Compute(decimal.Zero, nil, nil)
	assert.True(t, b.NetSalary.IsZero())
	assert.True(t, b.Deductions.IsZero())
	assert.True(t, b.PPh21.IsZero())
}
