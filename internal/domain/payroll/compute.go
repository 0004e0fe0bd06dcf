package payroll

import "github.com/shopspring/decimal"

// Statutory contribution rates, all applied to the basic salary.
var (
	rateBPJSKesEmployee = decimal.NewFromFloat(0.01)
	rateBPJSKesCompany  = decimal.NewFromFloat(0.04)
	rateJHTEmployee     = decimal.NewFromFloat(0.02)
	rateJHTCompany      = decimal.NewFromFloat(0.037)
	rateJPEmployee      = decimal.NewFromFloat(0.01)
	rateJPCompany       = decimal.NewFromFloat(0.02)
	rateJKK             = decimal.NewFromFloat(0.0024)
	rateJKM             = decimal.NewFromFloat(0.003)

	// PPh21: flat 5% on annualized income above the PTKP-like threshold.
	// A single-bracket approximation of the progressive schedule, kept as
	// the product currently defines it.
	pph21Threshold = decimal.NewFromInt(60_000_000)
	pph21Rate      = decimal.NewFromFloat(0.05)

	twelve = decimal.NewFromInt(12)
)

// Breakdown holds every computed pay component for one employee.
type Breakdown struct {
	BasicSalary decimal.Decimal
	Allowances  decimal.Decimal

	BPJSKesEmployee decimal.Decimal
	BPJSKesCompany  decimal.Decimal
	JHTEmployee     decimal.Decimal
	JHTCompany      decimal.Decimal
	JPEmployee      decimal.Decimal
	JPCompany       decimal.Decimal
	JKK             decimal.Decimal
	JKM             decimal.Decimal

	PPh21      decimal.Decimal
	Deductions decimal.Decimal
	NetSalary  decimal.Decimal
}

// Compute derives the full monthly pay breakdown from the salary inputs.
// Pure: no side effects, nil-safe on the optional components.
func Compute(basicSalary decimal.Decimal, incentive, transportationFee *decimal.Decimal) Breakdown {
	allowances := decimal.Zero
	if incentive != nil {
		allowances = allowances.Add(*incentive)
	}
	if transportationFee != nil {
		allowances = allowances.Add(*transportationFee)
	}

	b := Breakdown{
		BasicSalary:     basicSalary,
		Allowances:      allowances,
		BPJSKesEmployee: basicSalary.Mul(rateBPJSKesEmployee),
		BPJSKesCompany:  basicSalary.Mul(rateBPJSKesCompany),
		JHTEmployee:     basicSalary.Mul(rateJHTEmployee),
		JHTCompany:      basicSalary.Mul(rateJHTCompany),
		JPEmployee:      basicSalary.Mul(rateJPEmployee),
		JPCompany:       basicSalary.Mul(rateJPCompany),
		JKK:             basicSalary.Mul(rateJKK),
		JKM:             basicSalary.Mul(rateJKM),
		PPh21:           computePPh21(basicSalary, allowances),
	}

	// Only the employee-side contributions reduce take-home pay.
	b.Deductions = b.BPJSKesEmployee.Add(b.JHTEmployee).Add(b.JPEmployee).Add(b.PPh21)
	b.NetSalary = basicSalary.Add(allowances).Sub(b.Deductions)
	return b
}

func computePPh21(basicSalary, allowances decimal.Decimal) decimal.Decimal {
	annualized := basicSalary.Add(allowances).Mul(twelve)
	if annualized.LessThanOrEqual(pph21Threshold) {
		return decimal.Zero
	}
	return annualized.Mul(pph21Rate).Div(twelve)
}
