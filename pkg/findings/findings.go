// Package findings re-inspects a signal record against the scoring
// thresholds and emits prioritized, localized findings explaining what
// holds the site back.
package findings

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/google/uuid"

	"github.com/webatelier/siteaudit/internal/models"
	"github.com/webatelier/siteaudit/pkg/scoring"
)

// IDFunc supplies the next finding identifier. The caller owns the
// sequence, so two concurrent audits can never interleave IDs.
type IDFunc func() string

// NewRunIDs returns an IDFunc scoped to a single run: a short random
// run prefix followed by a 1-based index.
func NewRunIDs() IDFunc {
	prefix := uuid.NewString()[:8]
	n := 0
	return func() string {
		n++
		return fmt.Sprintf("%s-%d", prefix, n)
	}
}

// Generate runs all six category generators against the record and
// returns the combined findings sorted by priority, highest first.
// Ties keep category emission order (speed, mobile, security, seo,
// geo, design). refYear anchors the freshness rules.
func Generate(d *models.AnalysisDetails, business models.BusinessType, locale models.Locale, refYear int, nextID IDFunc) []models.Finding {
	e := &emitter{locale: locale, nextID: nextID}

	speedFindings(d, e)
	mobileFindings(d, e)
	securityFindings(d, e)
	seoFindings(d, e)
	geoFindings(d, business, refYear, e)
	designFindings(d, refYear, e)

	sort.SliceStable(e.findings, func(i, j int) bool {
		return e.findings[i].Priority > e.findings[j].Priority
	})
	return e.findings
}

type emitter struct {
	locale   models.Locale
	nextID   IDFunc
	findings []models.Finding
}

func (e *emitter) emit(cat models.Category, typ models.FindingType, priority int, k key, p Params) {
	tpl := templates[e.locale][k]
	e.findings = append(e.findings, models.Finding{
		ID:          e.nextID(),
		Type:        typ,
		Category:    cat,
		Title:       tpl.title.render(p),
		Description: tpl.description.render(p),
		Impact:      tpl.impact.render(p),
		Priority:    priority,
	})
}

func speedFindings(d *models.AnalysisDetails, e *emitter) {
	if d.LCP > scoring.LCPPoorMs {
		e.emit(models.CategorySpeed, models.FindingCritical, 10, keyLCPCritical, Params{Seconds: roundSeconds(d.LCP)})
	} else if d.LCP >= scoring.LCPFairMs {
		e.emit(models.CategorySpeed, models.FindingWarning, 7, keyLCPSlow, Params{Seconds: roundSeconds(d.LCP)})
	}

	if d.TTFB > scoring.TTFBPoorMs {
		e.emit(models.CategorySpeed, models.FindingWarning, 6, keyTTFBSlow, Params{Millis: int(d.TTFB)})
	}

	if d.PageSpeedScore > 0 {
		if d.PageSpeedScore < scoring.PageSpeedPoor {
			e.emit(models.CategorySpeed, models.FindingCritical, 9, keyPageSpeedCritical, Params{Score: d.PageSpeedScore})
		} else if d.PageSpeedScore <= scoring.PageSpeedFair {
			e.emit(models.CategorySpeed, models.FindingWarning, 5, keyPageSpeedLow, Params{Score: d.PageSpeedScore})
		}
	}
}

// Mobile checks are independent; a site can collect all four.
func mobileFindings(d *models.AnalysisDetails, e *emitter) {
	if !d.HasViewportMeta {
		e.emit(models.CategoryMobile, models.FindingCritical, 10, keyViewportMissing, Params{})
	}
	if d.HasHorizontalScroll {
		e.emit(models.CategoryMobile, models.FindingWarning, 6, keyHorizontalScroll, Params{})
	}
	if !d.TouchTargetsOK {
		e.emit(models.CategoryMobile, models.FindingWarning, 5, keyTouchTargets, Params{})
	}
	if !d.TextReadable {
		e.emit(models.CategoryMobile, models.FindingWarning, 4, keyTextUnreadable, Params{})
	}
}

func securityFindings(d *models.AnalysisDetails, e *emitter) {
	if !d.HasHTTPS {
		e.emit(models.CategorySecurity, models.FindingCritical, 10, keyNoHTTPS, Params{})
	}
	if d.HasMixedContent {
		e.emit(models.CategorySecurity, models.FindingWarning, 5, keyMixedContent, Params{})
	}
	// Missing headers are only worth mentioning once HTTPS itself is in
	// place; without it the dominant problem is already reported.
	if d.HasHTTPS && !d.HasSecurityHeaders {
		e.emit(models.CategorySecurity, models.FindingOpportunity, 3, keyNoSecurityHeaders, Params{})
	}
}

func seoFindings(d *models.AnalysisDetails, e *emitter) {
	if d.Title == "" {
		e.emit(models.CategorySEO, models.FindingCritical, 10, keyNoTitle, Params{})
	} else if d.TitleLength > scoring.TitleMaxLen {
		e.emit(models.CategorySEO, models.FindingWarning, 4, keyTitleTooLong, Params{Length: d.TitleLength})
	} else if d.TitleLength < scoring.TitleMinLen {
		e.emit(models.CategorySEO, models.FindingWarning, 3, keyTitleTooShort, Params{Length: d.TitleLength})
	}

	if d.MetaDescription == "" {
		e.emit(models.CategorySEO, models.FindingCritical, 9, keyNoMetaDescription, Params{})
	}

	if d.H1 == "" || d.H1Count == 0 {
		e.emit(models.CategorySEO, models.FindingWarning, 6, keyNoH1, Params{})
	} else if d.H1Count > 1 {
		e.emit(models.CategorySEO, models.FindingWarning, 4, keyMultipleH1, Params{Count: d.H1Count})
	}

	if d.TotalImages > 0 {
		ratio := float64(d.ImagesWithAlt) / float64(d.TotalImages)
		missing := d.TotalImages - d.ImagesWithAlt
		if ratio < scoring.AltRatioCritical {
			pct := int(math.Round(100 * float64(missing) / float64(d.TotalImages)))
			e.emit(models.CategorySEO, models.FindingCritical, 8, keyAltTextCritical, Params{Percent: pct, Count: missing})
		} else if ratio < scoring.AltRatioGood {
			e.emit(models.CategorySEO, models.FindingWarning, 4, keyAltTextLow, Params{Count: missing})
		}
	}

	if !d.HasSitemap {
		e.emit(models.CategorySEO, models.FindingWarning, 5, keyNoSitemap, Params{})
	}
	if !d.HasStructuredData {
		e.emit(models.CategorySEO, models.FindingOpportunity, 6, keyNoStructuredData, Params{})
	}
}

func geoFindings(d *models.AnalysisDetails, business models.BusinessType, refYear int, e *emitter) {
	if !d.HasFaqSection && !d.HasQaFormat {
		e.emit(models.CategoryGEO, models.FindingWarning, 7, keyNoFAQ, Params{})
	}
	if !d.HasLocalBusinessSchema {
		e.emit(models.CategoryGEO, models.FindingWarning, 6, keyNoLocalBusiness, Params{})
	}
	if !d.HasAddress && !d.HasOpeningHours {
		e.emit(models.CategoryGEO, models.FindingWarning, 5, keyNoAddressHours, Params{})
	}
	if !d.HasPricing {
		e.emit(models.CategoryGEO, models.FindingOpportunity, 4, keyNoPricing, Params{Label: business.Label(e.locale)})
	}
	if d.ContentYear > 0 && refYear-d.ContentYear > scoring.ContentStaleYears {
		e.emit(models.CategoryGEO, models.FindingWarning, 4, keyStaleContent, Params{Year: d.ContentYear})
	}
	// Standing upsell: whenever the basics of AI-search visibility are
	// missing, the broad opportunity message rides on top of the
	// specific findings above.
	if !d.HasLocalBusinessSchema || !d.HasFaqSection {
		e.emit(models.CategoryGEO, models.FindingOpportunity, 8, keyGEOOpportunity, Params{})
	}
}

func designFindings(d *models.AnalysisDetails, refYear int, e *emitter) {
	if d.CopyrightYear > 0 {
		if age := refYear - d.CopyrightYear; age > scoring.CopyrightCriticalYears {
			e.emit(models.CategoryDesign, models.FindingCritical, 9, keyCopyrightCritical, Params{Years: age, Year: d.CopyrightYear})
		} else if age >= scoring.CopyrightWarningYears {
			e.emit(models.CategoryDesign, models.FindingWarning, 5, keyCopyrightOld, Params{Years: age, Year: d.CopyrightYear})
		}
	}
	if !d.HasBookingSystem {
		e.emit(models.CategoryDesign, models.FindingWarning, 7, keyNoBooking, Params{})
	}
	if !d.HasWhatsApp && !d.HasPhone {
		e.emit(models.CategoryDesign, models.FindingCritical, 10, keyNoContactOptions, Params{})
	} else if !d.HasWhatsApp {
		e.emit(models.CategoryDesign, models.FindingOpportunity, 5, keyNoWhatsApp, Params{})
	}
	if !d.HasPricing {
		e.emit(models.CategoryDesign, models.FindingWarning, 6, keyUnclearPricing, Params{})
	}
	if isPageBuilder(d.CMSDetected) {
		e.emit(models.CategoryDesign, models.FindingOpportunity, 4, keyPageBuilder, Params{Name: d.CMSDetected})
	}
}

var pageBuilders = map[string]bool{
	"wix":         true,
	"squarespace": true,
	"weebly":      true,
	"webnode":     true,
	"jimdo":       true,
	"mozello":     true,
	"godaddy":     true,
}

func isPageBuilder(cms string) bool {
	return pageBuilders[strings.ToLower(cms)]
}

// roundSeconds converts milliseconds to seconds with one decimal.
func roundSeconds(ms float64) float64 {
	return math.Round(ms/100) / 10
}
