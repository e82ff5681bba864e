package findings

import "github.com/webatelier/siteaudit/internal/models"

// Params carries the computed values a parameterized template slot may
// reference. Each rule fills only the fields its templates use.
type Params struct {
	Seconds float64 // rounded metric value in seconds
	Millis  int     // metric value in milliseconds
	Score   int     // PageSpeed score 0-100
	Count   int     // generic count (missing alts, H1s)
	Percent int     // percentage 0-100
	Length  int     // character length
	Year    int     // calendar year found on the page
	Years   int     // age in years
	Label   string  // localized business label
	Name    string  // detected product name
}

// text is one template slot: either a constant string or a render
// function over Params. The tag makes the two cases explicit instead of
// discovering them at call time.
type text struct {
	s string
	f func(Params) string
}

func static(s string) text               { return text{s: s} }
func dynamic(f func(Params) string) text { return text{f: f} }

func (t text) render(p Params) string {
	if t.f != nil {
		return t.f(p)
	}
	return t.s
}

// template holds the three slots of one finding.
type template struct {
	title       text
	description text
	impact      text
}

// key identifies one finding rule across all locale tables.
type key string

const (
	keyLCPCritical       key = "speed.lcp.critical"
	keyLCPSlow           key = "speed.lcp.slow"
	keyTTFBSlow          key = "speed.ttfb.slow"
	keyPageSpeedCritical key = "speed.pagespeed.critical"
	keyPageSpeedLow      key = "speed.pagespeed.low"

	keyViewportMissing  key = "mobile.viewport.missing"
	keyHorizontalScroll key = "mobile.scroll.horizontal"
	keyTouchTargets     key = "mobile.touch.small"
	keyTextUnreadable   key = "mobile.text.small"

	keyNoHTTPS           key = "security.https.missing"
	keyMixedContent      key = "security.content.mixed"
	keyNoSecurityHeaders key = "security.headers.missing"

	keyNoTitle           key = "seo.title.missing"
	keyTitleTooLong      key = "seo.title.long"
	keyTitleTooShort     key = "seo.title.short"
	keyNoMetaDescription key = "seo.meta.missing"
	keyNoH1              key = "seo.h1.missing"
	keyMultipleH1        key = "seo.h1.multiple"
	keyAltTextCritical   key = "seo.alt.critical"
	keyAltTextLow        key = "seo.alt.low"
	keyNoSitemap         key = "seo.sitemap.missing"
	keyNoStructuredData  key = "seo.schema.missing"

	keyNoFAQ           key = "geo.faq.missing"
	keyNoLocalBusiness key = "geo.localbusiness.missing"
	keyNoAddressHours  key = "geo.address.missing"
	keyNoPricing       key = "geo.pricing.missing"
	keyStaleContent    key = "geo.content.stale"
	keyGEOOpportunity  key = "geo.opportunity"

	keyCopyrightCritical key = "design.copyright.critical"
	keyCopyrightOld      key = "design.copyright.old"
	keyNoBooking         key = "design.booking.missing"
	keyNoContactOptions  key = "design.contact.missing"
	keyNoWhatsApp        key = "design.whatsapp.missing"
	keyUnclearPricing    key = "design.pricing.unclear"
	keyPageBuilder       key = "design.pagebuilder"
)

// allKeys lists every key a generator can emit; the exhaustiveness test
// checks each one against all four locales.
var allKeys = []key{
	keyLCPCritical, keyLCPSlow, keyTTFBSlow, keyPageSpeedCritical, keyPageSpeedLow,
	keyViewportMissing, keyHorizontalScroll, keyTouchTargets, keyTextUnreadable,
	keyNoHTTPS, keyMixedContent, keyNoSecurityHeaders,
	keyNoTitle, keyTitleTooLong, keyTitleTooShort, keyNoMetaDescription,
	keyNoH1, keyMultipleH1, keyAltTextCritical, keyAltTextLow,
	keyNoSitemap, keyNoStructuredData,
	keyNoFAQ, keyNoLocalBusiness, keyNoAddressHours, keyNoPricing,
	keyStaleContent, keyGEOOpportunity,
	keyCopyrightCritical, keyCopyrightOld, keyNoBooking, keyNoContactOptions,
	keyNoWhatsApp, keyUnclearPricing, keyPageBuilder,
}

// templates maps locale → key → template. Every locale must define
// every key in allKeys; templates_test.go enforces this at build time.
var templates = map[models.Locale]map[key]template{
	models.LocaleCS: csTemplates,
	models.LocaleEN: enTemplates,
	models.LocaleDE: deTemplates,
	models.LocaleRU: ruTemplates,
}
