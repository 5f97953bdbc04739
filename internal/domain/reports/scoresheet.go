package reports

import (
	"fmt"
	"io"

	"github.com/jung-kurt/gofpdf"
)

// WriteScoreSheetPDF renders the evaluation score sheet, reconstructing
// every line item from the stored breakdown rather than recomputing.
func WriteScoreSheetPDF(w io.Writer, sheet ScoreSheet) error {
	app := sheet.Application
	b := sheet.Evaluation.DetailedScores

	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()
	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Faculty Evaluation Score Sheet")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Applicant: %s %s", app.FirstName, app.LastName))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Position: %s, %s", app.Position, app.College))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Evaluated: %s", sheet.Evaluation.UpdatedAt.Format("2006-01-02")))
	pdf.Ln(10)

	section := func(title string) {
		pdf.SetFont("Helvetica", "B", 12)
		pdf.Cell(0, 8, title)
		pdf.Ln(8)
		pdf.SetFont("Helvetica", "", 10)
	}
	line := func(label string, points float64) {
		pdf.Cell(140, 6, label)
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f", points), "", 0, "R", false, 0, "")
		pdf.Ln(6)
	}
	subtotal := func(value, max float64) {
		pdf.SetFont("Helvetica", "B", 10)
		pdf.Cell(140, 6, "Subtotal")
		pdf.CellFormat(30, 6, fmt.Sprintf("%.2f / %.0f", value, max), "", 0, "R", false, 0, "")
		pdf.Ln(9)
		pdf.SetFont("Helvetica", "", 10)
	}

	section("1. Educational Qualification")
	line("Highest relevant degree", b.Education.HighestDegreePoints)
	line("Units earned toward next degree", b.Education.DegreeUnitPoints)
	line("Additional relevant credentials", b.Education.AdditionalCreditPoints)
	subtotal(b.Education.Subtotal, b.Education.Max)

	section("2. Experience")
	line(fmt.Sprintf("State institution teaching (%.1f yrs)", b.Experience.Input.StateYears), b.Experience.StatePoints)
	line(fmt.Sprintf("Other institution teaching (%.1f yrs)", b.Experience.Input.OtherInstitutionYears), b.Experience.OtherInstitutionPoints)
	for _, wl := range b.Experience.AdminLines {
		line(fmt.Sprintf("Administrative: %s (%.1f yrs x %.2f)", wl.Role, wl.Years, wl.Weight), wl.Points)
	}
	for _, wl := range b.Experience.IndustryLines {
		line(fmt.Sprintf("Industry: %s (%.1f yrs x %.2f)", wl.Role, wl.Years, wl.Weight), wl.Points)
	}
	for _, wl := range b.Experience.TeachingLines {
		line(fmt.Sprintf("Special teaching: %s (%.1f yrs x %.2f)", wl.Role, wl.Years, wl.Weight), wl.Points)
	}
	subtotal(b.Experience.Subtotal, b.Experience.Max)

	section("3. Professional Development and Achievement")
	for _, cl := range b.ProfessionalDev.Lines {
		line(fmt.Sprintf("[%s] %s (%.1f x %.2f)", cl.Section, cl.Description, cl.Units, cl.CreditPerUnit), cl.Points)
	}
	line("Raw sum before cap", b.ProfessionalDev.RawSum)
	subtotal(b.ProfessionalDev.Subtotal, b.ProfessionalDev.Max)

	section("4. Technological Competence")
	line("Office productivity skills", b.Technological.OfficeSkillsPoints)
	line("Specialized applications", b.Technological.AppSkillsPoints)
	line("Technology training", b.Technological.TrainingPoints)
	line("Creative works", b.Technological.CreativeWorkPoints)
	subtotal(b.Technological.Subtotal, b.Technological.Max)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(140, 8, "TOTAL")
	pdf.CellFormat(30, 8, fmt.Sprintf("%.2f", b.Total), "", 0, "R", false, 0, "")
	pdf.Ln(8)
	verdict := "NOT QUALIFIED"
	if b.Qualified {
		verdict = "QUALIFIED"
	}
	pdf.Cell(0, 8, fmt.Sprintf("Result: %s (threshold %.0f)", verdict, b.PassingThreshold))
	if sheet.Evaluation.Rank != "" {
		pdf.Ln(7)
		pdf.SetFont("Helvetica", "", 11)
		pdf.Cell(0, 7, fmt.Sprintf("Rank: %s at %.2f/hour", sheet.Evaluation.Rank, sheet.Evaluation.RatePerHour))
	}

	return pdf.Output(w)
}
