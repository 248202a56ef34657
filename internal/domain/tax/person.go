package tax

import "math"

// Person is a single wage earner for withholding purposes. Every derived amount is
// recomputed from GrossAnnualSalary and Deduction on each call.
type Person struct {
	GrossAnnualSalary float64 `json:"grossAnnualSalary"`
	Deduction         float64 `json:"deduction"`
}

type Premiums struct {
	AOW   float64 `json:"aow"`
	ANW   float64 `json:"anw"`
	WLZ   float64 `json:"wlz"`
	Total float64 `json:"total"`
}

type Summary struct {
	GrossAnnualSalary      float64  `json:"grossAnnualSalary"`
	Deduction              float64  `json:"deduction"`
	TaxableIncome          float64  `json:"taxableIncome"`
	WithholdingTax         float64  `json:"withholdingTax"`
	LaborCredit            float64  `json:"laborCredit"`
	GeneralCredit          float64  `json:"generalCredit"`
	TaxDue                 float64  `json:"taxDue"`
	NetIncome              float64  `json:"netIncome"`
	NetMonthlyIncome       float64  `json:"netMonthlyIncome"`
	EmployerSocialPremiums Premiums `json:"employerSocialPremiums"`
}

func NewPerson(grossAnnualSalary float64) Person {
	return Person{GrossAnnualSalary: grossAnnualSalary}
}

// WithDeduction returns a copy of p with the deduction replaced.
func (p Person) WithDeduction(deduction float64) Person {
	p.Deduction = deduction
	return p
}

func (p Person) TaxableIncome() float64 {
	return p.GrossAnnualSalary - p.Deduction
}

func (p Person) WithholdingTax() float64 {
	return WithholdingBrackets.Progressive(p.TaxableIncome())
}

func (p Person) LaborCredit() float64 {
	return LaborCreditSchedule.At(p.TaxableIncome())
}

func (p Person) GeneralCredit() float64 {
	return GeneralCreditSchedule.At(p.TaxableIncome())
}

// TaxDue is withholding minus both credits. It is not clamped: a negative value is a net credit.
func (p Person) TaxDue() float64 {
	return p.WithholdingTax() - p.LaborCredit() - p.GeneralCredit()
}

func (p Person) NetIncome() float64 {
	return p.GrossAnnualSalary - p.TaxDue()
}

// EmployerPremiums are paid by the employer and do not affect NetIncome.
func (p Person) EmployerPremiums() Premiums {
	base := math.Min(p.TaxableIncome(), PremiumBaseCap)
	premiums := Premiums{
		AOW: PremiumRateAOW * base,
		ANW: PremiumRateANW * base,
		WLZ: PremiumRateWLZ * base,
	}
	premiums.Total = premiums.AOW + premiums.ANW + premiums.WLZ
	return premiums
}

func (p Person) EmployerSocialPremiums() float64 {
	return p.EmployerPremiums().Total
}

func (p Person) Summary() Summary {
	net := p.NetIncome()
	return Summary{
		GrossAnnualSalary:      p.GrossAnnualSalary,
		Deduction:              p.Deduction,
		TaxableIncome:          p.TaxableIncome(),
		WithholdingTax:         p.WithholdingTax(),
		LaborCredit:            p.LaborCredit(),
		GeneralCredit:          p.GeneralCredit(),
		TaxDue:                 p.TaxDue(),
		NetIncome:              net,
		NetMonthlyIncome:       net / 12,
		EmployerSocialPremiums: p.EmployerPremiums(),
	}
}

// NetIncomeWithDeduction is the net income p would have if its deduction were replaced.
func NetIncomeWithDeduction(p Person, deduction float64) float64 {
	return p.WithDeduction(deduction).NetIncome()
}
