package mortgage

import (
	"bytes"
	"math"
	"testing"

	"woonlasten/internal/domain/tax"
)

func approx(t *testing.T, label string, got, want float64) {
	t.Helper()
	if math.Abs(got-want) > 1e-6 {
		t.Fatalf("expected %s %v, got %v", label, want, got)
	}
}

func TestMonthlyCostDefaults(t *testing.T) {
	b := Calculate(300000)

	approx(t, "repayment", b.PrincipalRepayment, 300000.0/360*0.5)
	approx(t, "interest", b.InterestCost, 375)
	approx(t, "maintenance", b.MaintenanceCost, 250)
	approx(t, "refund", b.TaxRefund, 0)
	approx(t, "total", b.Total, 1041.6666666666667)
	approx(t, "total excluding repayment", b.TotalExcludingRepayment, 625)
	if b.Deduction != 0 || b.WOZValue != 0 {
		t.Fatalf("expected no deduction without a person, got %+v", b)
	}
	approx(t, "monthly cost", MonthlyCost(300000), b.Total)
}

func TestMonthlyCostWithPerson(t *testing.T) {
	b := Calculate(300000, WithPerson(tax.NewPerson(50000)))

	approx(t, "deductible interest", b.AnnualDeductibleInterest, 2250)
	approx(t, "imputed rental value", b.ImputedRentalValue, 1500)
	approx(t, "deduction", b.Deduction, 750)
	approx(t, "refund", b.TaxRefund, 30.673125)
	approx(t, "total", b.Total, 1010.9935416666668)
	if b.WOZValue != 300000 {
		t.Fatalf("expected principal to stand in for the WOZ value, got %v", b.WOZValue)
	}
}

func TestMonthlyCostWithPropertyValue(t *testing.T) {
	b := Calculate(300000, WithPerson(tax.NewPerson(50000)), WithPropertyValue(200000))

	approx(t, "deduction", b.Deduction, 1250)
	approx(t, "refund", b.TaxRefund, 51.121875)
	approx(t, "total", b.Total, 990.5447916666666)
}

func TestMonthlyCostOptionsOverrideDefaults(t *testing.T) {
	b := Calculate(240000, WithInterestRate(0.03), WithInterestFreeFraction(0), WithMaintenanceRate(0))

	approx(t, "repayment", b.PrincipalRepayment, 240000.0/360)
	approx(t, "interest", b.InterestCost, 600)
	approx(t, "maintenance", b.MaintenanceCost, 0)
	approx(t, "total", b.Total, 240000.0/360+600)
}

func TestInterestBelowForfaitGivesNoRefund(t *testing.T) {
	b := Calculate(300000, WithInterestRate(0.01), WithPerson(tax.NewPerson(50000)))
	if b.Deduction != 0 || b.TaxRefund != 0 {
		t.Fatalf("expected no deduction when interest is covered by the forfait, got %+v", b)
	}
	approx(t, "total", b.Total, Calculate(300000, WithInterestRate(0.01)).Total)
}

// Salaries start at 20,000 so that even the largest deduction sampled (18,000) keeps
// taxable income out of the labor credit phase-in, where tax due falls with income.
func TestPersonNeverRaisesMonthlyCost(t *testing.T) {
	principals := []float64{100000, 250000, 400000, 650000, 1200000}
	rates := []float64{0.01, 0.015, 0.025, 0.04}
	for salary := 20000.0; salary <= 250000; salary += 7500 {
		for _, principal := range principals {
			for _, rate := range rates {
				without := MonthlyCost(principal, WithInterestRate(rate))
				with := MonthlyCost(principal, WithInterestRate(rate), WithPerson(tax.NewPerson(salary)))
				if with > without+1e-9 {
					t.Fatalf("salary %v principal %v rate %v: cost with person %v exceeds %v", salary, principal, rate, with, without)
				}
			}
		}
	}
}

func TestPhaseInEarnerPaysForDeduction(t *testing.T) {
	without := Calculate(300000)
	with := Calculate(300000, WithPerson(tax.NewPerson(6000)))

	approx(t, "deduction", with.Deduction, 750)
	approx(t, "refund", with.TaxRefund, (0.3710-4.581)*750/12)
	if with.Total <= without.Total {
		t.Fatalf("expected deduction to raise cost during phase-in: %v vs %v", with.Total, without.Total)
	}
}

func TestCalculateDoesNotAlterPerson(t *testing.T) {
	p := tax.NewPerson(60000)
	before := p.NetIncome()
	Compute(350000, Options{InterestRate: 0.02, InterestFreeFraction: 0.5, MaintenanceRate: 0.01, Person: &p})
	if p.Deduction != 0 || p.NetIncome() != before {
		t.Fatalf("expected person to be unchanged, got %+v", p)
	}
}

func TestWriteStatement(t *testing.T) {
	var buf bytes.Buffer
	b := Calculate(300000, WithPerson(tax.NewPerson(50000)))
	if err := WriteStatement(&buf, b); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.HasPrefix(buf.Bytes(), []byte("%PDF")) {
		t.Fatal("expected PDF output")
	}
}
