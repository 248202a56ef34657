package mortgage

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WriteStatement renders b as a single-page PDF.
func WriteStatement(w io.Writer, b Breakdown) error {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Monthly housing costs")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 12)
	pdf.Cell(0, 8, fmt.Sprintf("Mortgage: %.2f", b.Principal))
	pdf.Ln(7)
	pdf.Cell(0, 8, fmt.Sprintf("Interest rate: %.3f%%  Interest-free: %.0f%%  Maintenance: %.2f%%",
		b.InterestRate*100, b.InterestFreeFraction*100, b.MaintenanceRate*100))
	pdf.Ln(10)

	rows := []struct {
		label  string
		amount float64
	}{
		{"Principal repayment", b.PrincipalRepayment},
		{"Interest", b.InterestCost},
		{"Maintenance", b.MaintenanceCost},
		{"Mortgage interest deduction refund", -b.TaxRefund},
	}
	for _, row := range rows {
		pdf.CellFormat(120, 8, row.label, "", 0, "L", false, 0, "")
		pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", row.amount), "", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.CellFormat(120, 8, "Total per month", "T", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", b.Total), "T", 1, "R", false, 0, "")
	pdf.SetFont("Helvetica", "", 12)
	pdf.CellFormat(120, 8, "Total excluding repayment", "", 0, "L", false, 0, "")
	pdf.CellFormat(40, 8, fmt.Sprintf("%.2f", b.TotalExcludingRepayment), "", 1, "R", false, 0, "")

	if b.Deduction > 0 {
		pdf.Ln(6)
		pdf.SetFont("Helvetica", "", 10)
		pdf.Cell(0, 6, fmt.Sprintf("Annual deduction %.2f (deductible interest %.2f less imputed rental value %.2f on WOZ %.2f)",
			b.Deduction, b.AnnualDeductibleInterest, b.ImputedRentalValue, b.WOZValue))
	}

	if err := pdf.Output(w); err != nil {
		return fmt.Errorf("render statement: %w", err)
	}
	return nil
}
