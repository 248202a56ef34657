package housing

import "math"

const (
	PropertyTaxRate        = 0.001
	ImputedRentalValueRate = 0.005
)

// Valuation holds the amounts derived from a WOZ (cadastral) value.
type Valuation struct {
	WOZValue           float64 `json:"wozValue"`
	PropertyTax        float64 `json:"propertyTax"`
	ImputedRentalValue float64 `json:"imputedRentalValue"`
}

func PropertyTax(wozValue float64) float64 {
	return wozValue * PropertyTaxRate
}

// ImputedRentalValue is the eigenwoningforfait added to income for an owner-occupied home.
func ImputedRentalValue(wozValue float64) float64 {
	return wozValue * ImputedRentalValueRate
}

// DeductibleMortgageInterest offsets the annual interest paid by the imputed rental value.
// The result is never negative.
func DeductibleMortgageInterest(annualInterest, wozValue float64) float64 {
	return math.Max(annualInterest-ImputedRentalValue(wozValue), 0)
}

func Values(wozValue float64) Valuation {
	return Valuation{
		WOZValue:           wozValue,
		PropertyTax:        PropertyTax(wozValue),
		ImputedRentalValue: ImputedRentalValue(wozValue),
	}
}
