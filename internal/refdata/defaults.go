package refdata

// Default returns the built-in reference tables. Figures come from
// published holdback policies, segment invoice research, and February 2026
// inventory data; tax limits track IRS inflation adjustments per year.
func Default() *Store {
	return &Store{
		HoldbackRates: map[string]HoldbackRate{
			"Ram":       {Rate: 0.03, Basis: BasisMSRP},
			"Dodge":     {Rate: 0.03, Basis: BasisMSRP},
			"Jeep":      {Rate: 0.03, Basis: BasisMSRP},
			"Chrysler":  {Rate: 0.03, Basis: BasisMSRP},
			"Ford":      {Rate: 0.03, Basis: BasisMSRP},
			"Lincoln":   {Rate: 0.02, Basis: BasisMSRP},
			"Chevrolet": {Rate: 0.03, Basis: BasisInvoice},
			"GMC":       {Rate: 0.03, Basis: BasisInvoice},
			"Buick":     {Rate: 0.03, Basis: BasisInvoice},
			"Cadillac":  {Rate: 0.03, Basis: BasisInvoice},
			"Toyota":    {Rate: 0.02, Basis: BasisMSRP},
			"Nissan":    {Rate: 0.03, Basis: BasisInvoice},
			"Honda":     {Rate: 0.02, Basis: BasisMSRP},
			"Hyundai":   {Rate: 0.02, Basis: BasisInvoice},
			"Kia":       {Rate: 0.02, Basis: BasisInvoice},
		},
		DefaultHoldback: HoldbackRate{Rate: 0.02, Basis: BasisMSRP},

		InvoiceRatios: map[string]RatioBand{
			"Ford F-150":                 {Base: 0.93, Mid: 0.91, High: 0.89},
			"Ford F-250":                 {Base: 0.93, Mid: 0.91, High: 0.89},
			"Ford F-350":                 {Base: 0.93, Mid: 0.91, High: 0.88},
			"Ford F-450":                 {Base: 0.92, Mid: 0.90, High: 0.88},
			"Ram 1500":                   {Base: 0.92, Mid: 0.90, High: 0.88},
			"Ram 2500":                   {Base: 0.92, Mid: 0.90, High: 0.88},
			"Ram 3500":                   {Base: 0.92, Mid: 0.90, High: 0.87},
			"Chevrolet Silverado 1500":   {Base: 0.93, Mid: 0.91, High: 0.89},
			"Chevrolet Silverado 2500HD": {Base: 0.92, Mid: 0.90, High: 0.88},
			"Chevrolet Silverado 3500HD": {Base: 0.92, Mid: 0.90, High: 0.87},
			"GMC Sierra 1500":            {Base: 0.92, Mid: 0.90, High: 0.88},
			"GMC Sierra 2500HD":          {Base: 0.92, Mid: 0.90, High: 0.88},
			"GMC Sierra 3500HD":          {Base: 0.92, Mid: 0.90, High: 0.87},
			"Toyota Tundra":              {Base: 0.94, Mid: 0.92, High: 0.91},
			"Toyota Tacoma":              {Base: 0.95, Mid: 0.93, High: 0.92},
			"Nissan Titan":               {Base: 0.92, Mid: 0.90, High: 0.88},
			"Nissan Frontier":            {Base: 0.94, Mid: 0.92, High: 0.90},
		},
		TrimThresholds: map[string]TrimThresholds{
			"F-150":            {BaseMax: 42000, HighMin: 65000},
			"F-250":            {BaseMax: 50000, HighMin: 75000},
			"F-350":            {BaseMax: 52000, HighMin: 80000},
			"Ram 1500":         {BaseMax: 42000, HighMin: 60000},
			"Ram 2500":         {BaseMax: 48000, HighMin: 72000},
			"Ram 3500":         {BaseMax: 50000, HighMin: 78000},
			"Silverado 1500":   {BaseMax: 42000, HighMin: 62000},
			"Silverado 2500HD": {BaseMax: 48000, HighMin: 72000},
			"Sierra 1500":      {BaseMax: 44000, HighMin: 65000},
			"Sierra 2500HD":    {BaseMax: 50000, HighMin: 75000},
		},
		DefaultTrim:         TrimThresholds{BaseMax: 45000, HighMin: 70000},
		DefaultInvoiceRatio: 0.92,

		DaysSupply: map[string]int{
			"Ram 3500":         342,
			"Ram 2500":         318,
			"Ram 1500":         120,
			"F-150":            100,
			"F-250":            90,
			"F-350":            85,
			"F-450":            60,
			"Sierra 1500":      85,
			"Sierra 2500HD":    80,
			"Silverado 1500":   85,
			"Silverado 2500HD": 80,
			"Tundra":           33,
			"Tacoma":           30,
		},
		IndustryAvgDaysSupply: 76,

		GVWR: map[string]GVWRInfo{
			"F-150":            {MinLbs: 6100, MaxLbs: 7850, PickupSixFootBed: true},
			"F-250":            {MinLbs: 9900, MaxLbs: 10400, PickupSixFootBed: true},
			"F-350":            {MinLbs: 11200, MaxLbs: 14000, PickupSixFootBed: true},
			"F-450":            {MinLbs: 14000, MaxLbs: 16500, PickupSixFootBed: true},
			"Ram 1500":         {MinLbs: 6500, MaxLbs: 7100, PickupSixFootBed: true},
			"Ram 2500":         {MinLbs: 9000, MaxLbs: 10000, PickupSixFootBed: true},
			"Ram 3500":         {MinLbs: 11000, MaxLbs: 14000, PickupSixFootBed: true},
			"Silverado 1500":   {MinLbs: 6600, MaxLbs: 7400, PickupSixFootBed: true},
			"Silverado 2500HD": {MinLbs: 9500, MaxLbs: 10650, PickupSixFootBed: true},
			"Silverado 3500HD": {MinLbs: 11000, MaxLbs: 14000, PickupSixFootBed: true},
			"Sierra 1500":      {MinLbs: 6600, MaxLbs: 7400, PickupSixFootBed: true},
			"Sierra 2500HD":    {MinLbs: 9500, MaxLbs: 10650, PickupSixFootBed: true},
			"Sierra 3500HD":    {MinLbs: 11000, MaxLbs: 14000, PickupSixFootBed: true},
			"Tundra":           {MinLbs: 6400, MaxLbs: 7200, PickupSixFootBed: true},
			"Tacoma":           {MinLbs: 5400, MaxLbs: 6100, PickupSixFootBed: true},
			"Titan":            {MinLbs: 7100, MaxLbs: 8800, PickupSixFootBed: true},
			"Frontier":         {MinLbs: 5500, MaxLbs: 6200, PickupSixFootBed: true},
		},

		TaxYears: map[int]TaxYearLimits{
			2024: {Section179Limit: 1_220_000, BonusDepreciationRate: 0.60, HeavySUVCap: 30_500, LuxuryAutoFirstYearCap: 20_400},
			2025: {Section179Limit: 1_250_000, BonusDepreciationRate: 1.00, HeavySUVCap: 31_300, LuxuryAutoFirstYearCap: 20_200},
			2026: {Section179Limit: 1_250_000, BonusDepreciationRate: 1.00, HeavySUVCap: 32_000, LuxuryAutoFirstYearCap: 20_400},
		},

		CarryingCostPerDay: 7.90,
	}
}
