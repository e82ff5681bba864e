package findings

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webatelier/siteaudit/internal/models"
)

const testYear = 2026

func seqIDs() IDFunc {
	n := 0
	return func() string {
		n++
		return string(rune('a' + n - 1))
	}
}

func generate(d *models.AnalysisDetails) []models.Finding {
	return Generate(d, models.BusinessMassage, models.LocaleEN, testYear, seqIDs())
}

func ofCategory(fs []models.Finding, cat models.Category) []models.Finding {
	var out []models.Finding
	for _, f := range fs {
		if f.Category == cat {
			out = append(out, f)
		}
	}
	return out
}

func countType(fs []models.Finding, typ models.FindingType) int {
	n := 0
	for _, f := range fs {
		if f.Type == typ {
			n++
		}
	}
	return n
}

// healthyDetails has every signal in order, so no rule should fire.
func healthyDetails() *models.AnalysisDetails {
	return &models.AnalysisDetails{
		LCP:            2000,
		FCP:            1200,
		TTFB:           400,
		CLS:            0.03,
		PageSpeedScore: 92,

		HasViewportMeta:     true,
		HasResponsiveImages: true,
		TouchTargetsOK:      true,
		TextReadable:        true,

		HasHTTPS:           true,
		ValidCertificate:   true,
		HasSecurityHeaders: true,

		Title:                     "Relaxation massage salon in central Prague",
		TitleLength:               42,
		MetaDescription:           strings.Repeat("x", 140),
		MetaDescriptionLength:     140,
		H1:                        "Massage salon",
		H1Count:                   1,
		HasProperHeadingStructure: true,
		ImagesWithAlt:             8,
		TotalImages:               8,
		HasSitemap:                true,
		HasRobotsTxt:              true,
		HasCanonical:              true,
		HasStructuredData:         true,

		HasFaqSection:          true,
		HasQaFormat:            true,
		HasLocalBusinessSchema: true,
		HasAnySchema:           true,
		HasAddress:             true,
		HasOpeningHours:        true,
		HasPricing:             true,
		ContentYear:            testYear,
		HasAboutPage:           true,
		HasContactPage:         true,
		NaturalLanguageScore:   0.8,

		CopyrightYear:    testYear,
		UsesFlexbox:      true,
		UsesWebfonts:     true,
		ImageQuality:     models.ImageQualityHigh,
		HasBookingSystem: true,
		HasPhone:         true,
		HasWhatsApp:      true,
		HasContactForm:   true,
		HasEmail:         true,
	}
}

func TestGenerateHealthySiteIsClean(t *testing.T) {
	assert.Empty(t, generate(healthyDetails()))
}

func TestGenerateNeglectedSite(t *testing.T) {
	// A site with a very slow page, no HTTPS, no title and an ancient
	// copyright collects at least five critical findings.
	d := &models.AnalysisDetails{
		LCP:            7000,
		PageSpeedScore: 35,
		CopyrightYear:  2018,
	}
	fs := generate(d)

	assert.GreaterOrEqual(t, countType(fs, models.FindingCritical), 5)
}

func TestGenerateSortedByPriority(t *testing.T) {
	fs := generate(&models.AnalysisDetails{LCP: 7000, CopyrightYear: 2018})
	require.NotEmpty(t, fs)
	for i := 1; i < len(fs); i++ {
		assert.GreaterOrEqual(t, fs[i-1].Priority, fs[i].Priority)
	}
}

func TestGenerateTiesKeepCategoryOrder(t *testing.T) {
	// Viewport (mobile), HTTPS (security), title (seo) and contact
	// options (design) all fire at priority 10; the stable sort keeps
	// their category emission order.
	fs := generate(&models.AnalysisDetails{})
	var top []models.Category
	for _, f := range fs {
		if f.Priority == 10 {
			top = append(top, f.Category)
		}
	}
	assert.Equal(t, []models.Category{
		models.CategoryMobile,
		models.CategorySecurity,
		models.CategorySEO,
		models.CategoryDesign,
	}, top)
}

func TestGenerateSequentialIDs(t *testing.T) {
	fs := Generate(&models.AnalysisDetails{}, models.BusinessMassage, models.LocaleEN, testYear, NewRunIDs())
	require.NotEmpty(t, fs)

	prefix, _, ok := strings.Cut(fs[0].ID, "-")
	require.True(t, ok)
	assert.Len(t, prefix, 8)

	seen := map[string]bool{}
	for _, f := range fs {
		assert.True(t, strings.HasPrefix(f.ID, prefix+"-"))
		assert.False(t, seen[f.ID], "duplicate id %s", f.ID)
		seen[f.ID] = true
	}
}

func TestSpeedLCPBoundaries(t *testing.T) {
	base := healthyDetails()

	base.LCP = 6000
	fs := ofCategory(generate(base), models.CategorySpeed)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)

	base.LCP = 6001
	fs = ofCategory(generate(base), models.CategorySpeed)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingCritical, fs[0].Type)

	// The warning band is inclusive at its lower end, matching the
	// scorer's drop to the 2-point band at exactly 4000 ms.
	base.LCP = 4000
	fs = ofCategory(generate(base), models.CategorySpeed)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)

	base.LCP = 3999
	assert.Empty(t, ofCategory(generate(base), models.CategorySpeed))
}

func TestSpeedPageSpeedBoundaries(t *testing.T) {
	d := healthyDetails()

	d.PageSpeedScore = 71
	assert.Empty(t, ofCategory(generate(d), models.CategorySpeed))

	d.PageSpeedScore = 70
	fs := ofCategory(generate(d), models.CategorySpeed)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)

	d.PageSpeedScore = 50
	fs = ofCategory(generate(d), models.CategorySpeed)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)

	d.PageSpeedScore = 49
	fs = ofCategory(generate(d), models.CategorySpeed)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingCritical, fs[0].Type)
}

func TestSpeedUnmeasuredPageSpeedIsSilent(t *testing.T) {
	d := healthyDetails()
	d.PageSpeedScore = 0
	assert.Empty(t, ofCategory(generate(d), models.CategorySpeed))

	d.PageSpeedScore = 49
	fs := ofCategory(generate(d), models.CategorySpeed)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingCritical, fs[0].Type)
}

func TestMobileChecksAreIndependent(t *testing.T) {
	d := healthyDetails()
	d.HasViewportMeta = false
	d.HasHorizontalScroll = true
	d.TouchTargetsOK = false
	d.TextReadable = false
	assert.Len(t, ofCategory(generate(d), models.CategoryMobile), 4)
}

func TestSecurityHeadersOnlyReportedWithHTTPS(t *testing.T) {
	d := healthyDetails()
	d.HasSecurityHeaders = false
	fs := ofCategory(generate(d), models.CategorySecurity)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingOpportunity, fs[0].Type)

	d.HasHTTPS = false
	fs = ofCategory(generate(d), models.CategorySecurity)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingCritical, fs[0].Type)
}

func TestSEOTitleRulesAreExclusive(t *testing.T) {
	d := healthyDetails()

	d.Title = ""
	fs := ofCategory(generate(d), models.CategorySEO)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingCritical, fs[0].Type)

	d.Title = "Massage"
	d.TitleLength = 7
	fs = ofCategory(generate(d), models.CategorySEO)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)

	d.TitleLength = 85
	fs = ofCategory(generate(d), models.CategorySEO)
	require.Len(t, fs, 1)
	assert.Contains(t, fs[0].Description, "85")
}

func TestSEOH1RulesAreExclusive(t *testing.T) {
	d := healthyDetails()

	d.H1 = ""
	d.H1Count = 0
	fs := ofCategory(generate(d), models.CategorySEO)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)
	assert.Equal(t, 6, fs[0].Priority)

	// Multiple headings fire the softer rule alone, never alongside
	// the missing-heading one.
	d.H1 = "Massage salon"
	d.H1Count = 3
	fs = ofCategory(generate(d), models.CategorySEO)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)
	assert.Equal(t, 4, fs[0].Priority)
	assert.Contains(t, fs[0].Description, "3")
}

func TestSEOAltTextThresholds(t *testing.T) {
	d := healthyDetails()

	d.ImagesWithAlt = 3
	d.TotalImages = 10
	fs := ofCategory(generate(d), models.CategorySEO)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingCritical, fs[0].Type)
	assert.Contains(t, fs[0].Description, "70")

	d.ImagesWithAlt = 7
	fs = ofCategory(generate(d), models.CategorySEO)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)
}

func TestGEOOpportunityRidesOnMissingBasics(t *testing.T) {
	d := healthyDetails()
	d.HasFaqSection = false
	fs := ofCategory(generate(d), models.CategoryGEO)

	// Missing FAQ alone still leaves the Q&A format in place, so only
	// the broad opportunity fires.
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingOpportunity, fs[0].Type)
	assert.Equal(t, 8, fs[0].Priority)
}

func TestGEOAddressHoursRequiresBothAbsent(t *testing.T) {
	d := healthyDetails()

	// One of the two signals present keeps the finding suppressed.
	d.HasAddress = false
	assert.Empty(t, ofCategory(generate(d), models.CategoryGEO))

	d.HasAddress = true
	d.HasOpeningHours = false
	assert.Empty(t, ofCategory(generate(d), models.CategoryGEO))

	d.HasAddress = false
	fs := ofCategory(generate(d), models.CategoryGEO)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)
	assert.Equal(t, 5, fs[0].Priority)
}

func TestGEOStaleContent(t *testing.T) {
	d := healthyDetails()
	d.ContentYear = testYear - 3
	fs := ofCategory(generate(d), models.CategoryGEO)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)

	d.ContentYear = testYear - 2
	assert.Empty(t, ofCategory(generate(d), models.CategoryGEO))
}

func TestDesignContactRulesAreExclusive(t *testing.T) {
	d := healthyDetails()

	d.HasWhatsApp = false
	fs := ofCategory(generate(d), models.CategoryDesign)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingOpportunity, fs[0].Type)

	d.HasPhone = false
	fs = ofCategory(generate(d), models.CategoryDesign)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingCritical, fs[0].Type)
}

func TestDesignCopyrightBands(t *testing.T) {
	d := healthyDetails()

	d.CopyrightYear = testYear - 6
	fs := ofCategory(generate(d), models.CategoryDesign)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingCritical, fs[0].Type)

	d.CopyrightYear = testYear - 3
	fs = ofCategory(generate(d), models.CategoryDesign)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingWarning, fs[0].Type)

	d.CopyrightYear = testYear - 2
	assert.Empty(t, ofCategory(generate(d), models.CategoryDesign))
}

func TestDesignPageBuilderDetection(t *testing.T) {
	d := healthyDetails()
	d.CMSDetected = "Wix"
	fs := ofCategory(generate(d), models.CategoryDesign)
	require.Len(t, fs, 1)
	assert.Equal(t, models.FindingOpportunity, fs[0].Type)
	assert.Contains(t, fs[0].Description, "Wix")

	d.CMSDetected = "wordpress"
	assert.Empty(t, ofCategory(generate(d), models.CategoryDesign))
}

func TestGenerateLocalizedOutput(t *testing.T) {
	d := &models.AnalysisDetails{}
	for _, locale := range models.Locales {
		fs := Generate(d, models.BusinessEscort, locale, testYear, seqIDs())
		require.NotEmpty(t, fs)
		for _, f := range fs {
			assert.NotEmpty(t, f.Title)
			assert.NotEmpty(t, f.Description)
			assert.NotEmpty(t, f.Impact)
		}
	}
}
