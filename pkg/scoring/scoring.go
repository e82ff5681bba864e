// Package scoring turns a signal record into six category scores and a
// total. Every scorer is pure and total: any record, including the zero
// value, produces a score within the category ceiling.
package scoring

import (
	"math"

	"github.com/webatelier/siteaudit/internal/models"
)

// Score evaluates all six categories. refYear is the calendar year the
// audit runs in; freshness sub-scores compare against it rather than
// reading the clock, so results are reproducible.
func Score(d *models.AnalysisDetails, refYear int) models.AnalysisScores {
	s := models.AnalysisScores{
		Speed:    SpeedScore(d),
		Mobile:   MobileScore(d),
		Security: SecurityScore(d),
		SEO:      SEOScore(d),
		GEO:      GEOScore(d, refYear),
		Design:   DesignScore(d, refYear),
	}
	s.Total = s.Speed + s.Mobile + s.Security + s.SEO + s.GEO + s.Design
	return s
}

// SpeedScore sums the LCP, FCP, TTFB and CLS ladders, max 20.
func SpeedScore(d *models.AnalysisDetails) int {
	sum := ladder(d.LCP, lcpBands) +
		ladder(d.FCP, fcpBands) +
		ladder(d.TTFB, ttfbBands) +
		ladder(d.CLS, clsBands)
	return clamp(sum, SpeedCeiling)
}

// MobileScore awards points for each mobile-friendliness check, max 15.
func MobileScore(d *models.AnalysisDetails) int {
	sum := 0
	if d.HasViewportMeta {
		sum += 4
	}
	if d.HasResponsiveImages {
		sum += 3
	}
	if d.TouchTargetsOK {
		sum += 3
	}
	if d.TextReadable {
		sum += 3
	}
	if !d.HasHorizontalScroll {
		sum += 2
	}
	return clamp(sum, MobileCeiling)
}

// SecurityScore awards points for transport security checks, max 10.
func SecurityScore(d *models.AnalysisDetails) int {
	sum := 0
	if d.HasHTTPS {
		sum += 4
	}
	if d.ValidCertificate {
		sum += 2
	}
	if !d.HasMixedContent {
		sum += 2
	}
	if d.HasSecurityHeaders {
		sum += 2
	}
	return clamp(sum, SecurityCeiling)
}

// SEOScore covers on-page SEO signals, max 20. A page without images
// gets full alt-text credit: no images means no missing alt texts.
func SEOScore(d *models.AnalysisDetails) int {
	sum := 0

	switch {
	case d.Title == "":
	case d.TitleLength >= TitleMinLen && d.TitleLength <= TitleMaxLen:
		sum += 4
	default:
		sum += 2
	}

	switch {
	case d.MetaDescription == "":
	case d.MetaDescriptionLength >= MetaIdealMinLen && d.MetaDescriptionLength <= MetaIdealMaxLen:
		sum += 3
	default:
		sum += 1
	}

	if d.H1Count == 1 {
		sum += 2
	}
	if d.HasProperHeadingStructure {
		sum += 1
	}

	switch ratio := altRatio(d); {
	case d.TotalImages == 0:
		sum += 3
	case ratio >= AltRatioGood:
		sum += 3
	case ratio >= AltRatioCritical:
		sum += 1
	}

	if d.HasSitemap {
		sum += 2
	}
	if d.HasRobotsTxt {
		sum += 1
	}
	if d.HasCanonical {
		sum += 1
	}
	if d.HasStructuredData {
		sum += 3
	}
	return clamp(sum, SEOCeiling)
}

// GEOScore covers AI-search readiness, max 15.
func GEOScore(d *models.AnalysisDetails, refYear int) int {
	sum := 0
	if d.HasFaqSection {
		sum += 2
	}
	if d.HasQaFormat {
		sum += 1
	}
	if d.HasLocalBusinessSchema {
		sum += 3
	} else if d.HasAnySchema {
		sum += 1
	}
	if d.HasAddress {
		sum += 1
	}
	if d.HasOpeningHours {
		sum += 1
	}
	if d.HasPricing {
		sum += 2
	}
	if d.HasStatistics {
		sum += 1
	}
	if d.ContentYear > 0 {
		switch age := refYear - d.ContentYear; {
		case age <= 1:
			sum += 2
		case age <= ContentStaleYears:
			sum += 1
		}
	}
	if d.HasAboutPage && d.HasContactPage {
		sum += 1
	}
	if d.NaturalLanguageScore >= NaturalLanguageGood {
		sum += 1
	}
	return clamp(sum, GEOCeiling)
}

// DesignScore covers visual freshness and conversion paths, max 20.
// Contact options earn 0.5 point each; the sum is rounded exactly once
// at the end so the fractions cannot distort intermediate results.
func DesignScore(d *models.AnalysisDetails, refYear int) int {
	sum := 0.0
	if d.CopyrightYear > 0 {
		switch age := refYear - d.CopyrightYear; {
		case age <= CopyrightFreshYears:
			sum += 4
		case age <= CopyrightCriticalYears:
			sum += 2
		}
	}
	if d.UsesFlexbox || d.UsesGrid {
		sum += 3
	}
	if d.UsesWebfonts {
		sum += 2
	}
	switch d.ImageQuality {
	case models.ImageQualityHigh:
		sum += 5
	case models.ImageQualityMedium:
		sum += 3
	}
	if d.HasBookingSystem {
		sum += 4
	}
	for _, ok := range []bool{d.HasPhone, d.HasWhatsApp, d.HasContactForm, d.HasEmail} {
		if ok {
			sum += 0.5
		}
	}
	return clamp(int(math.Round(sum)), DesignCeiling)
}

func altRatio(d *models.AnalysisDetails) float64 {
	if d.TotalImages == 0 {
		return 1
	}
	return float64(d.ImagesWithAlt) / float64(d.TotalImages)
}

func clamp(v, ceiling int) int {
	if v < 0 {
		return 0
	}
	if v > ceiling {
		return ceiling
	}
	return v
}
