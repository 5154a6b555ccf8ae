// Package export writes deal evaluations to xlsx workbooks for sharing
// with co-buyers or keeping a paper trail across dealership visits.
package export

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/google/uuid"
	"github.com/xuri/excelize/v2"

	"dealscout/internal/engine"
)

const sheetName = "Evaluation"

// Factor rows in display order.
var factorRows = []struct {
	key   string
	label string
}{
	{engine.FactorPrice, "Price vs True Cost"},
	{engine.FactorDaysOnLot, "Days on Lot"},
	{engine.FactorIncentives, "Incentives"},
	{engine.FactorMarketSupply, "Market Supply"},
	{engine.FactorTiming, "Timing"},
}

// EvaluationToExcel writes one evaluation to reports/<dir> and returns the
// file path. Each report gets a unique id so repeated runs against the
// same listing never clobber each other.
func EvaluationToExcel(ev engine.Evaluation, dir string) (string, error) {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return "", fmt.Errorf("failed to create sheet: %w", err)
	}
	f.DeleteSheet("Sheet1")

	l := ev.Listing
	p := ev.Score.Pricing
	reportID := uuid.NewString()

	// Header block
	f.SetCellValue(sheetName, "A1", "Report ID")
	f.SetCellValue(sheetName, "B1", reportID)
	f.SetCellValue(sheetName, "A2", "Evaluated")
	f.SetCellValue(sheetName, "B2", ev.AsOf.Format("2006-01-02 15:04"))
	f.SetCellValue(sheetName, "A3", "Vehicle")
	f.SetCellValue(sheetName, "B3", fmt.Sprintf("%d %s %s", l.Year, l.Make, l.Model))
	f.SetCellValue(sheetName, "A4", "Asking Price")
	f.SetCellValue(sheetName, "B4", l.AskingPrice)
	f.SetCellValue(sheetName, "A5", "MSRP")
	f.SetCellValue(sheetName, "B5", l.MSRP)
	f.SetCellValue(sheetName, "A6", "Days on Lot")
	f.SetCellValue(sheetName, "B6", l.DaysOnLot)

	// Score block
	f.SetCellValue(sheetName, "A8", "Deal Score")
	f.SetCellValue(sheetName, "B8", ev.Score.Score)
	f.SetCellValue(sheetName, "C8", ev.Score.Grade)
	row := 9
	for _, fr := range factorRows {
		fs, ok := ev.Score.Breakdown[fr.key]
		if !ok {
			continue
		}
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), fr.label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), fs.Score)
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), fmt.Sprintf("weight %.0f%%", fs.Weight))
		row++
	}

	// Pricing block
	row++
	set := func(label string, v interface{}) {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), label)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), v)
		row++
	}
	set("Invoice Price", p.InvoicePrice)
	set("Holdback", p.Holdback)
	set("Dealer Cash", p.DealerCash)
	set("True Dealer Cost", p.TrueDealerCost)
	set("Price Source", string(p.Source))

	row++
	set("Aggressive Offer", ev.Offers.Aggressive)
	set("Reasonable Offer", ev.Offers.Reasonable)
	set("Likely Close", ev.Offers.Likely)
	set("Carrying Costs", ev.Offers.CarryingCosts)
	set("Est. Curtailment", ev.Offers.Curtailment)

	// Brief block
	row++
	f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), "Negotiation Brief")
	row++
	for _, tp := range ev.Brief {
		f.SetCellValue(sheetName, fmt.Sprintf("A%d", row), tp.Category)
		f.SetCellValue(sheetName, fmt.Sprintf("B%d", row), string(tp.Leverage))
		f.SetCellValue(sheetName, fmt.Sprintf("C%d", row), tp.Point)
		row++
	}

	// Formatting
	style, _ := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
	})
	f.SetCellStyle(sheetName, "A1", fmt.Sprintf("A%d", row), style)
	f.SetColWidth(sheetName, "A", "A", 22)
	f.SetColWidth(sheetName, "B", "C", 40)

	f.SetActiveSheet(index)

	filename := fmt.Sprintf("deal_%s_%s_%s.xlsx",
		sanitize(l.Make), sanitize(l.Model), reportID[:8])
	path := filepath.Join(dir, filename)

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", fmt.Errorf("failed to create reports directory: %w", err)
	}

	if err := f.SaveAs(path); err != nil {
		return "", fmt.Errorf("failed to save Excel file: %w", err)
	}

	return path, nil
}

func sanitize(s string) string {
	s = strings.ToLower(strings.TrimSpace(s))
	return strings.Map(func(r rune) rune {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			return r
		default:
			return '_'
		}
	}, s)
}
