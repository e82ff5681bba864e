package collector

import (
	"net/url"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webatelier/siteaudit/internal/models"
)

const fixtureHTML = `<!DOCTYPE html>
<html lang="cs">
<head>
	<title>Masážní salon Harmonie Praha</title>
	<meta name="description" content="Profesionální masáže v centru Prahy.">
	<meta name="viewport" content="width=device-width, initial-scale=1">
	<link rel="canonical" href="https://example.com/">
	<link rel="stylesheet" href="https://fonts.googleapis.com/css2?family=Inter">
	<style>.row { display: flex; } .grid { display: grid; }</style>
	<script type="application/ld+json">
	{"@graph": [{"@type": "LocalBusiness", "name": "Harmonie"}, {"@type": ["WebSite", "Organization"]}]}
	</script>
</head>
<body>
	<h1>Masáže Praha</h1>
	<h2>Jaké masáže nabízíme?</h2>
	<h2>Kolik masáž stojí?</h2>
	<h2>FAQ</h2>
	<p>Nabízíme relaxační i sportovní masáže v příjemném prostředí v centru Prahy.
	Náš tým má více než deset let zkušeností a stovky spokojených klientů.
	Aktualizováno 2024. Spokojenost klientů 98 %.</p>
	<p>Ceny začínají od 1500 Kč za hodinovou masáž.</p>
	<p>Najdete nás: Dlouhá 12, 110 00 Praha 1. Otevírací doba: Po – Pá 9:00 – 18:00.</p>
	<img src="/a.jpg" alt="salon" srcset="/a-2x.jpg 2x">
	<img src="/b.jpg" alt="recepce" srcset="/b-2x.jpg 2x">
	<img src="/c.jpg" alt="masáž" srcset="/c-2x.jpg 2x">
	<img src="/d.jpg" alt="tým" srcset="/d-2x.jpg 2x">
	<img src="/e.jpg" alt="interiér" srcset="/e-2x.jpg 2x">
	<img src="/f.jpg">
	<form action="/odeslat"><input name="email"></form>
	<a href="/rezervace">Rezervace</a>
	<a href="/o-nas">O nás</a>
	<a href="/kontakt">Kontakt</a>
	<a href="tel:+420777888999">Zavolejte</a>
	<a href="https://wa.me/420777888999">WhatsApp</a>
	<a href="mailto:info@example.com">E-mail</a>
	<footer>© 2019–2024 Harmonie</footer>
</body>
</html>`

func parseFixture(t *testing.T, rawHTML, pageURL string) *models.AnalysisDetails {
	t.Helper()
	u, err := url.Parse(pageURL)
	require.NoError(t, err)
	d := &models.AnalysisDetails{ImageQuality: models.ImageQualityUnknown}
	parsePage([]byte(rawHTML), u, d)
	return d
}

func TestParsePageFullFixture(t *testing.T) {
	d := parseFixture(t, fixtureHTML, "https://example.com/")

	assert.Equal(t, "Masážní salon Harmonie Praha", d.Title)
	assert.Equal(t, 28, d.TitleLength)
	assert.Equal(t, "Profesionální masáže v centru Prahy.", d.MetaDescription)
	assert.Equal(t, "Masáže Praha", d.H1)
	assert.Equal(t, 1, d.H1Count)
	assert.True(t, d.HasProperHeadingStructure)
	assert.True(t, d.HasCanonical)

	assert.True(t, d.HasViewportMeta)
	assert.True(t, d.TouchTargetsOK)
	assert.True(t, d.TextReadable)
	assert.False(t, d.HasHorizontalScroll)

	assert.Equal(t, 6, d.TotalImages)
	assert.Equal(t, 5, d.ImagesWithAlt)
	assert.True(t, d.HasResponsiveImages)
	assert.Equal(t, models.ImageQualityHigh, d.ImageQuality)

	assert.True(t, d.HasStructuredData)
	assert.True(t, d.HasAnySchema)
	assert.True(t, d.HasLocalBusinessSchema)
	assert.Contains(t, d.StructuredDataTypes, "WebSite")

	assert.True(t, d.HasFaqSection)
	assert.True(t, d.HasQaFormat)
	assert.True(t, d.HasAddress)
	assert.True(t, d.HasOpeningHours)
	assert.True(t, d.HasPricing)
	assert.True(t, d.HasStatistics)
	assert.Equal(t, 2024, d.ContentYear)
	assert.True(t, d.HasAboutPage)
	assert.True(t, d.HasContactPage)

	assert.Equal(t, 2024, d.CopyrightYear)
	assert.True(t, d.UsesFlexbox)
	assert.True(t, d.UsesGrid)
	assert.True(t, d.UsesWebfonts)
	assert.True(t, d.HasBookingSystem)
	assert.True(t, d.HasPhone)
	assert.True(t, d.HasWhatsApp)
	assert.True(t, d.HasContactForm)
	assert.True(t, d.HasEmail)
	assert.Empty(t, d.CMSDetected)
	assert.False(t, d.HasMixedContent)
}

func TestParsePageEmptyDocumentKeepsDefaults(t *testing.T) {
	d := parseFixture(t, "<html><body></body></html>", "https://example.com/")

	assert.Empty(t, d.Title)
	assert.Zero(t, d.H1Count)
	assert.Zero(t, d.TotalImages)
	assert.False(t, d.HasViewportMeta)
	assert.False(t, d.HasStructuredData)
	assert.Equal(t, models.ImageQualityUnknown, d.ImageQuality)
	assert.Zero(t, d.CopyrightYear)
	assert.Zero(t, d.ContentYear)
}

func TestParsePageMixedContent(t *testing.T) {
	page := `<html><body><img src="http://insecure.example.com/a.jpg"></body></html>`

	secure := parseFixture(t, page, "https://example.com/")
	assert.True(t, secure.HasMixedContent)

	// Plain-HTTP pages cannot have mixed content by definition.
	plain := parseFixture(t, page, "http://example.com/")
	assert.False(t, plain.HasMixedContent)
}

func TestParsePageHorizontalScroll(t *testing.T) {
	page := `<html><body><table width="1400"><tr><td>wide</td></tr></table></body></html>`
	d := parseFixture(t, page, "https://example.com/")
	assert.True(t, d.HasHorizontalScroll)

	withViewport := `<html><head><meta name="viewport" content="width=device-width"></head>` +
		`<body><table width="1400"></table></body></html>`
	d = parseFixture(t, withViewport, "https://example.com/")
	assert.False(t, d.HasHorizontalScroll)
}

func TestSchemaTypes(t *testing.T) {
	tests := []struct {
		name string
		raw  string
		want []string
	}{
		{"plain object", `{"@type": "LocalBusiness"}`, []string{"LocalBusiness"}},
		{"type array", `{"@type": ["WebSite", "Organization"]}`, []string{"WebSite", "Organization"}},
		{"graph wrapper", `{"@graph": [{"@type": "FAQPage"}]}`, []string{"FAQPage"}},
		{"top-level array", `[{"@type": "Service"}]`, []string{"Service"}},
		{"invalid json", `{"@type": `, nil},
		{"no types", `{"name": "x"}`, nil},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, schemaTypes(tt.raw))
		})
	}
}

func TestCopyrightYear(t *testing.T) {
	tests := []struct {
		raw  string
		want int
	}{
		{"© 2024 Harmonie", 2024},
		{"&copy; 2021", 2021},
		{"Copyright 2018 Salon", 2018},
		{"© 2015–2023 Salon", 2023},
		{"no copyright here", 0},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, copyrightYear(tt.raw), tt.raw)
	}
}

func TestNewestYear(t *testing.T) {
	assert.Equal(t, 2024, newestYear("established 2010, redesigned 2024"))
	assert.Equal(t, 0, newestYear("call 777 888 999"))
	// Implausible future years are ignored.
	assert.Equal(t, 0, newestYear("see you in 2099"))
}

func TestNaturalLanguageScore(t *testing.T) {
	assert.Zero(t, naturalLanguageScore(""))
	assert.Zero(t, naturalLanguageScore("massage prague cheap best massage prague"))

	prose := "Our salon has welcomed clients in the centre of Prague for over ten years. " +
		"Every therapist on the team is certified and trained in several massage styles. "
	assert.Greater(t, naturalLanguageScore(prose), 0.5)
}

func TestImageQuality(t *testing.T) {
	tests := []struct {
		name       string
		total      int
		responsive int
		want       models.ImageQuality
	}{
		{"no images", 0, 0, models.ImageQualityUnknown},
		{"responsive gallery", 6, 5, models.ImageQualityHigh},
		{"plain gallery", 4, 0, models.ImageQualityMedium},
		{"sparse", 2, 0, models.ImageQualityLow},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			info := &pageInfo{totalImages: tt.total, responsiveImgs: tt.responsive}
			assert.Equal(t, tt.want, imageQuality(info))
		})
	}
}

func TestDetectCMS(t *testing.T) {
	assert.Equal(t, "wordpress", detectCMS(`<link href="/wp-content/themes/x.css">`))
	assert.Equal(t, "wix", detectCMS(`<script src="https://static.wix.com/x.js">`))
	assert.Empty(t, detectCMS("<html><body>plain site</body></html>"))
}
