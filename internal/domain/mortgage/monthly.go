package mortgage

import (
	"woonlasten/internal/domain/housing"
	"woonlasten/internal/domain/tax"
)

const (
	TermMonths = 360

	DefaultInterestRate         = 0.015
	DefaultInterestFreeFraction = 0.5
	DefaultMaintenanceRate      = 0.01
)

type Options struct {
	InterestRate         float64
	InterestFreeFraction float64
	MaintenanceRate      float64
	// PropertyValue is the WOZ value offsetting deductible interest. Zero means the
	// principal stands in for it.
	PropertyValue float64
	// Person, when set, receives the mortgage-interest deduction as a monthly refund.
	Person *tax.Person
}

type Option func(*Options)

func DefaultOptions() Options {
	return Options{
		InterestRate:         DefaultInterestRate,
		InterestFreeFraction: DefaultInterestFreeFraction,
		MaintenanceRate:      DefaultMaintenanceRate,
	}
}

func WithInterestRate(rate float64) Option {
	return func(o *Options) {
		o.InterestRate = rate
	}
}

func WithInterestFreeFraction(fraction float64) Option {
	return func(o *Options) {
		o.InterestFreeFraction = fraction
	}
}

func WithMaintenanceRate(rate float64) Option {
	return func(o *Options) {
		o.MaintenanceRate = rate
	}
}

func WithPropertyValue(wozValue float64) Option {
	return func(o *Options) {
		o.PropertyValue = wozValue
	}
}

func WithPerson(p tax.Person) Option {
	return func(o *Options) {
		o.Person = &p
	}
}

// Breakdown lists every monthly component of the housing cost. Annual amounts are
// named as such.
type Breakdown struct {
	Principal                float64 `json:"principal"`
	InterestRate             float64 `json:"interestRate"`
	InterestFreeFraction     float64 `json:"interestFreeFraction"`
	MaintenanceRate          float64 `json:"maintenanceRate"`
	PrincipalRepayment       float64 `json:"principalRepayment"`
	InterestCost             float64 `json:"interestCost"`
	MaintenanceCost          float64 `json:"maintenanceCost"`
	WOZValue                 float64 `json:"wozValue,omitempty"`
	AnnualDeductibleInterest float64 `json:"annualDeductibleInterest,omitempty"`
	ImputedRentalValue       float64 `json:"imputedRentalValue,omitempty"`
	Deduction                float64 `json:"deduction,omitempty"`
	TaxRefund                float64 `json:"taxRefund"`
	Total                    float64 `json:"total"`
	TotalExcludingRepayment  float64 `json:"totalExcludingRepayment"`
}

// Calculate applies opts on top of DefaultOptions.
func Calculate(principal float64, opts ...Option) Breakdown {
	o := DefaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return Compute(principal, o)
}

// MonthlyCost is the total monthly housing cost after any tax refund.
func MonthlyCost(principal float64, opts ...Option) float64 {
	return Calculate(principal, opts...).Total
}

// Compute amortizes the non-interest-free part of principal linearly over TermMonths.
// With a person, the refund is the monthly difference in net income between the person
// and a copy of them carrying the mortgage-interest deduction.
func Compute(principal float64, o Options) Breakdown {
	b := Breakdown{
		Principal:            principal,
		InterestRate:         o.InterestRate,
		InterestFreeFraction: o.InterestFreeFraction,
		MaintenanceRate:      o.MaintenanceRate,
		PrincipalRepayment:   principal / TermMonths * (1 - o.InterestFreeFraction),
		InterestCost:         principal * o.InterestRate / 12,
		MaintenanceCost:      o.MaintenanceRate * principal / 12,
	}

	if o.Person != nil {
		b.WOZValue = o.PropertyValue
		if b.WOZValue <= 0 {
			b.WOZValue = principal
		}
		// Interest on the interest-free part is left out of the deduction basis.
		b.AnnualDeductibleInterest = principal * o.InterestRate * (1 - o.InterestFreeFraction)
		b.ImputedRentalValue = housing.ImputedRentalValue(b.WOZValue)
		b.Deduction = housing.DeductibleMortgageInterest(b.AnnualDeductibleInterest, b.WOZValue)
		b.TaxRefund = (tax.NetIncomeWithDeduction(*o.Person, b.Deduction) - o.Person.NetIncome()) / 12
	}

	b.Total = b.PrincipalRepayment + b.InterestCost + b.MaintenanceCost - b.TaxRefund
	b.TotalExcludingRepayment = b.Total - b.PrincipalRepayment
	return b
}
