package export

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"

	"dealscout/internal/engine"
	"dealscout/internal/refdata"
)

func TestEvaluationToExcel(t *testing.T) {
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

	dir := t.TempDir()
	path, err := EvaluationToExcel(ev, dir)
	require.NoError(t, err)
	assert.Contains(t, path, "deal_ram_ram_2500_")

	f, err := excelize.OpenFile(path)
	require.NoError(t, err)
	defer f.Close()

	vehicle, err := f.GetCellValue(sheetName, "B3")
	require.NoError(t, err)
	assert.Equal(t, "2024 Ram Ram 2500", vehicle)

	score, err := f.GetCellValue(sheetName, "B8")
	require.NoError(t, err)
	assert.Equal(t, "89", score)

	grade, err := f.GetCellValue(sheetName, "C8")
	require.NoError(t, err)
	assert.Equal(t, "A", grade)
}

func TestEvaluationToExcelUniquePaths(t *testing.T) {
	eng := engine.New(refdata.Default(), nil)
	ev, err := eng.Evaluate(context.Background(), engine.Listing{
		AskingPrice: 55000,
		MSRP:        65000,
		Make:        "Ram",
		Model:       "Ram 2500",
		Year:        2024,
	}, time.Now())
	require.NoError(t, err)

	dir := t.TempDir()
	first, err := EvaluationToExcel(ev, dir)
	require.NoError(t, err)
	second, err := EvaluationToExcel(ev, dir)
	require.NoError(t, err)
	assert.NotEqual(t, first, second)
}

func TestSanitize(t *testing.T) {
	assert.Equal(t, "silverado_2500hd", sanitize("Silverado 2500HD"))
	assert.Equal(t, "f_150", sanitize(" F-150 "))
}
