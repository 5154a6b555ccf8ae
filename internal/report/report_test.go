package report

import (
	"context"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"dealscout/internal/engine"
	"dealscout/internal/refdata"
	"dealscout/internal/tax"
)

func TestRenderEvaluation(t *testing.T) {
	eng := engine.New(refdata.Default(), nil)
	ev, err := eng.Evaluate(context.Background(), engine.Listing{
		AskingPrice:      55000,
		MSRP:             65000,
		Make:             "Ram",
		Model:            "Ram 2500",
		Year:             2024,
		DaysOnLot:        200,
		RebatesAvailable: 10000,
	}, time.Date(2026, time.February, 10, 12, 0, 0, 0, time.UTC))
	require.NoError(t, err)

	out := RenderEvaluation(ev)

	assert.Contains(t, out, "2024 Ram Ram 2500")
	assert.Contains(t, out, "DEAL SCORE: 89 (A)")
	assert.Contains(t, out, "True dealer cost:  $56,550")
	assert.Contains(t, out, "Aggressive:        $49,315")
	assert.Contains(t, out, "NEGOTIATION BRIEF")
	assert.Contains(t, out, "Days on lot")
	// Every brief entry is numbered with a leverage tag.
	assert.Contains(t, out, "1. [HIGH leverage]")
}

func TestRenderTaxQualifying(t *testing.T) {
	result, err := tax.Calculate(refdata.Default(), tax.Input{
		VehiclePrice:   70000,
		BusinessUsePct: 100,
		TaxBracket:     32,
		Model:          "Ram 2500",
		DownPayment:    10000,
		LoanTermMonths: 60,
	})
	require.NoError(t, err)

	out := RenderTax(result)

	assert.Contains(t, out, "SECTION 179 ESTIMATE (tax year 2026)")
	assert.Contains(t, out, "First-year deduction:    $70,000")
	assert.Contains(t, out, "Federal tax savings:     $22,400")
	assert.Contains(t, out, "FINANCING")
	assert.Contains(t, out, "Monthly payment:         $1000.00")
	assert.Contains(t, out, "tax professional")
	assert.NotContains(t, out, "Does not qualify")
}

func TestRenderTaxNotQualifying(t *testing.T) {
	result, err := tax.Calculate(refdata.Default(), tax.Input{
		VehiclePrice:    55000,
		BusinessUsePct:  100,
		TaxBracket:      24,
		GVWROverrideLbs: 5500,
	})
	require.NoError(t, err)

	out := RenderTax(result)

	assert.True(t, strings.Contains(out, "Does not qualify"))
	assert.NotContains(t, out, "First-year deduction")
}
