package refdata

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const overlayYAML = `
holdback_rates:
  Rivian:
    rate: 0.025
    basis: msrp
days_supply:
  Ram 2500: 280
carrying_cost_per_day: 8.50
tax_years:
  2027:
    section_179_limit: 1280000
    bonus_depreciation_rate: 1.0
    heavy_suv_cap: 32700
    luxury_auto_first_year_cap: 20600
`

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "refdata.yaml")
	require.NoError(t, os.WriteFile(path, []byte(overlayYAML), 0644))

	s, err := LoadFile(path)
	require.NoError(t, err)

	// Overlaid entries.
	assert.InDelta(t, 8.50, s.CarryingCostPerDay, 0.001)
	days, ok := s.ModelDaysSupply("Ram 2500")
	require.True(t, ok)
	assert.Equal(t, 280, days)
	assert.InDelta(t, 2500, s.Holdback("Rivian", 100000, 92000), 0.01)
	assert.Equal(t, 2027, s.LatestTaxYear())

	// Defaults untouched by the overlay.
	days, ok = s.ModelDaysSupply("Ram 3500")
	require.True(t, ok)
	assert.Equal(t, 342, days)
	assert.InDelta(t, 1950, s.Holdback("Ram", 65000, 58500), 0.01)
}

func TestLoadFileMissing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestLoadFileMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bad.yaml")
	require.NoError(t, os.WriteFile(path, []byte("holdback_rates: [not, a, map]"), 0644))

	_, err := LoadFile(path)
	assert.Error(t, err)
}
