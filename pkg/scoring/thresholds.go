package scoring

// Category score ceilings. The six ceilings sum to 100.
const (
	SpeedCeiling    = 20
	MobileCeiling   = 15
	SecurityCeiling = 10
	SEOCeiling      = 20
	GEOCeiling      = 15
	DesignCeiling   = 20
)

// Metric thresholds shared between the scorers and the finding
// generators. Keeping them in one place means a low score and the
// finding that explains it can never drift apart.
const (
	LCPGoodMs = 2500
	LCPFairMs = 4000
	LCPPoorMs = 6000

	FCPGoodMs = 1800
	FCPFairMs = 3000

	TTFBGoodMs = 800
	TTFBPoorMs = 1800

	CLSGood = 0.1
	CLSFair = 0.25

	PageSpeedPoor = 50
	PageSpeedFair = 70

	// Alt-text coverage ratios.
	AltRatioCritical = 0.5
	AltRatioGood     = 0.9

	// Title length bounds in characters.
	TitleMinLen = 30
	TitleMaxLen = 70

	// Meta description length bounds.
	MetaIdealMinLen = 120
	MetaIdealMaxLen = 160

	// Content is stale once it trails the reference year by more than this.
	ContentStaleYears = 2

	// Copyright age bands in years.
	CopyrightFreshYears   = 2
	CopyrightWarningYears = 3
	CopyrightCriticalYears = 5

	// Natural-language quality needed for the GEO sub-score.
	NaturalLanguageGood = 0.7
)

// band awards points when a metric is strictly below its limit.
// Bands are ordered ascending and evaluated first-match-wins.
type band struct {
	limit  float64
	points int
}

var (
	lcpBands  = []band{{LCPGoodMs, 8}, {LCPFairMs, 5}, {LCPPoorMs, 2}}
	fcpBands  = []band{{FCPGoodMs, 4}, {FCPFairMs, 2}}
	ttfbBands = []band{{TTFBGoodMs, 4}, {TTFBPoorMs, 2}}
	clsBands  = []band{{CLSGood, 4}, {CLSFair, 2}}
)

// ladder resolves a metric against an ordered band list. A zero or
// negative value means the metric was never measured and earns nothing.
func ladder(value float64, bands []band) int {
	if value <= 0 {
		return 0
	}
	for _, b := range bands {
		if value < b.limit {
			return b.points
		}
	}
	return 0
}
