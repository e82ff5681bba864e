// Package recommend composes category scores and reference data into
// localized sales narratives: an overall assessment, package-tier offer
// texts and a tier comparison table.
package recommend

import (
	"math"

	"golang.org/x/text/language"
	"golang.org/x/text/message"

	"github.com/webatelier/siteaudit/internal/models"
)

// Packages is the static reference table of the three offer tiers.
// Prices are whole CZK, delivery windows are working days.
var Packages = []models.Package{
	{ID: models.PackageBasic, PriceMin: 15000, PriceMax: 25000, DeliveryMinDays: 7, DeliveryMaxDays: 10},
	{ID: models.PackagePremium, PriceMin: 30000, PriceMax: 50000, DeliveryMinDays: 14, DeliveryMaxDays: 21},
	{ID: models.PackageEnterprise, PriceMin: 60000, PriceMax: 120000, DeliveryMinDays: 30, DeliveryMaxDays: 45},
}

// PackageByID looks a tier up in the reference table.
func PackageByID(id models.PackageID) (models.Package, bool) {
	for _, p := range Packages {
		if p.ID == id {
			return p, true
		}
	}
	return models.Package{}, false
}

// premiumFeatureLimit caps how many premium features the offer text
// lists; the full list stays in the comparison collateral.
const premiumFeatureLimit = 12

// Weakness thresholds for the narrative. These are looser than the
// finding thresholds on purpose: a category is only called out here
// when it drags the whole picture down.
const (
	weakSpeed    = 10
	weakMobile   = 8
	weakSecurity = 5
	weakSEO      = 10
	weakGEO      = 8
	weakDesign   = 10
)

// Bucket is the overall assessment band for a total score.
type Bucket string

const (
	BucketExcellent Bucket = "excellent"
	BucketGood      Bucket = "good"
	BucketFair      Bucket = "fair"
	BucketPoor      Bucket = "poor"
)

// ScoreBucket maps a total score to its assessment band.
func ScoreBucket(total int) Bucket {
	switch {
	case total >= 80:
		return BucketExcellent
	case total >= 60:
		return BucketGood
	case total >= 40:
		return BucketFair
	default:
		return BucketPoor
	}
}

var localeTags = map[models.Locale]language.Tag{
	models.LocaleCS: language.Czech,
	models.LocaleEN: language.English,
	models.LocaleDE: language.German,
	models.LocaleRU: language.Russian,
}

// FormatPriceRange renders a CZK price range with locale-appropriate
// digit grouping, e.g. "30 000 – 50 000 Kč".
func FormatPriceRange(min, max int, locale models.Locale) string {
	p := message.NewPrinter(localeTags[locale])
	return p.Sprintf("%d – %d Kč", min, max)
}

// CustomersNeeded estimates how many new clients pay the package off:
// ceil(average package price / average transaction value).
func CustomersNeeded(pkg models.Package, avgTransactionValue int) int {
	if avgTransactionValue <= 0 {
		return 0
	}
	avgPrice := float64(pkg.PriceMin+pkg.PriceMax) / 2
	return int(math.Ceil(avgPrice / float64(avgTransactionValue)))
}
