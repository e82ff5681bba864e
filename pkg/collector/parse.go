package collector

import (
	"encoding/json"
	"net/url"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"

	"github.com/webatelier/siteaudit/internal/models"
	"github.com/webatelier/siteaudit/internal/textutil"
)

var (
	copyrightRe = regexp.MustCompile(`(?i)(?:©|&copy;|copyright)\s*(?:\d{4}\s*[-–]\s*)?(\d{4})`)
	yearRe      = regexp.MustCompile(`\b(20\d{2})\b`)
	percentRe   = regexp.MustCompile(`\d+\s?%`)
	pricingRe   = regexp.MustCompile(`(?i)\d[\d\s]*\s?(?:kč|czk|€|eur)|price\s?list|ceník|preisliste|прайс|цен[аы]`)
	addressRe   = regexp.MustCompile(`(?i)(?:ulice|náměstí|třída|straße|strasse|улица|street|st\.|ave)\s+\S+|\b\S+\s+\d{1,4}(?:/\d{1,4})?,?\s+\d{3}\s?\d{2}\b`)
	hoursRe     = regexp.MustCompile(`(?i)otevírací doba|öffnungszeiten|opening hours|часы работы|po\s?[-–]\s?pá|mon\s?[-–]\s?fri|\d{1,2}:\d{2}\s?[-–]\s?\d{1,2}:\d{2}`)
	phoneRe     = regexp.MustCompile(`(?:\+|00)\d{1,3}[\s.-]?\d{2,4}[\s.-]?\d{3}[\s.-]?\d{3}`)
	sentenceRe  = regexp.MustCompile(`[.!?]+\s`)
)

var faqMarkers = []string{"faq", "často kladené", "časté dotazy", "häufig gestellte", "частые вопросы", "вопросы и ответы", "frequently asked"}

var bookingMarkers = []string{"booking", "book now", "rezervace", "rezervovat", "objednat", "termin buchen", "reservierung", "записаться", "онлайн-запись", "calendly", "reservio"}

var cmsSignatures = []struct {
	marker string
	name   string
}{
	{"wp-content", "wordpress"},
	{"wix.com", "wix"},
	{"squarespace", "squarespace"},
	{"weebly", "weebly"},
	{"webnode", "webnode"},
	{"jimdo", "jimdo"},
	{"mozello", "mozello"},
	{"godaddy", "godaddy"},
	{"shoptet", "shoptet"},
	{"joomla", "joomla"},
	{"drupal", "drupal"},
}

// pageInfo accumulates raw facts from one DOM walk before they are
// folded into the signal record.
type pageInfo struct {
	title           string
	metaDescription string
	hasViewport     bool
	hasCanonical    bool
	generator       string
	h1s             []string
	h2s             []string
	h2Count         int
	totalImages     int
	imagesWithAlt   int
	responsiveImgs  int
	maxFixedWidth   int
	hasForm         bool
	hasMailto       bool
	hasTel          bool
	hasWhatsApp     bool
	hasBookingLink  bool
	hasAboutLink    bool
	hasContactLink  bool
	usesFlexbox     bool
	usesGrid        bool
	usesWebfonts    bool
	schemaTypes     []string
	rawHTML         string
	textChunks      []string
}

// parsePage fills the signal record from the fetched document. Every
// heuristic degrades to the field's default when the markup gives no
// evidence, so a partial parse still yields a complete record.
func parsePage(body []byte, pageURL *url.URL, d *models.AnalysisDetails) {
	doc, err := html.Parse(strings.NewReader(string(body)))
	if err != nil {
		return
	}
	info := &pageInfo{rawHTML: string(body)}
	walk(doc, info)
	text := extractText(string(body))
	if text == "" {
		text = textutil.CleanText(strings.Join(info.textChunks, " "))
	}

	d.Title = strings.TrimSpace(info.title)
	d.TitleLength = len([]rune(d.Title))
	d.MetaDescription = strings.TrimSpace(info.metaDescription)
	d.MetaDescriptionLength = len([]rune(d.MetaDescription))
	if len(info.h1s) > 0 {
		d.H1 = strings.TrimSpace(info.h1s[0])
	}
	d.H1Count = len(info.h1s)
	d.HasProperHeadingStructure = d.H1Count == 1 && info.h2Count > 0
	d.TotalImages = info.totalImages
	d.ImagesWithAlt = info.imagesWithAlt
	d.HasCanonical = info.hasCanonical
	d.HasStructuredData = len(info.schemaTypes) > 0
	d.StructuredDataTypes = info.schemaTypes
	d.HasAnySchema = len(info.schemaTypes) > 0
	d.HasLocalBusinessSchema = containsType(info.schemaTypes, "LocalBusiness")

	d.HasViewportMeta = info.hasViewport
	d.HasResponsiveImages = info.totalImages > 0 && info.responsiveImgs*2 >= info.totalImages
	// Rendered-layout checks are approximated from markup: a viewport
	// tag plus no fixed-width elements is the best signal available
	// without a headless browser.
	d.TouchTargetsOK = info.hasViewport
	d.TextReadable = info.hasViewport
	d.HasHorizontalScroll = info.maxFixedWidth > 1000 && !info.hasViewport

	lowerHTML := strings.ToLower(info.rawHTML)
	lowerText := strings.ToLower(text)

	d.HasFaqSection = containsAny(lowerHTML, faqMarkers) || containsType(info.schemaTypes, "FAQPage")
	d.HasQaFormat = questionHeadings(info) >= 2 || containsType(info.schemaTypes, "FAQPage")
	d.HasAddress = addressRe.MatchString(text) || containsType(info.schemaTypes, "PostalAddress")
	d.HasOpeningHours = hoursRe.MatchString(lowerText)
	d.HasPricing = pricingRe.MatchString(text)
	d.HasStatistics = percentRe.MatchString(text)
	d.ContentYear = newestYear(text)
	d.HasAboutPage = info.hasAboutLink
	d.HasContactPage = info.hasContactLink
	d.NaturalLanguageScore = naturalLanguageScore(text)

	d.CopyrightYear = copyrightYear(info.rawHTML)
	d.UsesFlexbox = info.usesFlexbox
	d.UsesGrid = info.usesGrid
	d.UsesWebfonts = info.usesWebfonts
	d.ImageQuality = imageQuality(info)
	d.HasBookingSystem = info.hasBookingLink || containsAny(lowerHTML, bookingMarkers)
	d.HasPhone = info.hasTel || phoneRe.MatchString(text)
	d.HasWhatsApp = info.hasWhatsApp
	d.HasContactForm = info.hasForm
	d.HasEmail = info.hasMailto
	d.CMSDetected = detectCMS(lowerHTML)

	if pageURL != nil && pageURL.Scheme == "https" {
		d.HasMixedContent = strings.Contains(lowerHTML, `src="http://`) || strings.Contains(lowerHTML, `src='http://`)
	}
}

func walk(n *html.Node, info *pageInfo) {
	if n.Type == html.ElementNode {
		switch n.Data {
		case "title":
			if n.FirstChild != nil {
				info.title = n.FirstChild.Data
			}
		case "meta":
			name := strings.ToLower(attr(n, "name"))
			switch name {
			case "description":
				info.metaDescription = attr(n, "content")
			case "viewport":
				info.hasViewport = true
			case "generator":
				info.generator = attr(n, "content")
			}
		case "link":
			rel := strings.ToLower(attr(n, "rel"))
			href := strings.ToLower(attr(n, "href"))
			if rel == "canonical" {
				info.hasCanonical = true
			}
			if strings.Contains(href, "fonts.googleapis.com") || strings.Contains(href, "fonts.bunny.net") {
				info.usesWebfonts = true
			}
		case "h1":
			info.h1s = append(info.h1s, nodeText(n))
		case "h2":
			info.h2Count++
			info.h2s = append(info.h2s, nodeText(n))
		case "h3":
			info.h2Count++
		case "img":
			info.totalImages++
			if strings.TrimSpace(attr(n, "alt")) != "" {
				info.imagesWithAlt++
			}
			if attr(n, "srcset") != "" || attr(n, "sizes") != "" {
				info.responsiveImgs++
			}
			if w, err := strconv.Atoi(attr(n, "width")); err == nil && w > info.maxFixedWidth {
				info.maxFixedWidth = w
			}
		case "table":
			if w, err := strconv.Atoi(attr(n, "width")); err == nil && w > info.maxFixedWidth {
				info.maxFixedWidth = w
			}
		case "form":
			info.hasForm = true
		case "a":
			href := strings.ToLower(attr(n, "href"))
			switch {
			case strings.HasPrefix(href, "mailto:"):
				info.hasMailto = true
			case strings.HasPrefix(href, "tel:"):
				info.hasTel = true
			case strings.Contains(href, "wa.me") || strings.Contains(href, "whatsapp"):
				info.hasWhatsApp = true
			}
			if containsAny(href, bookingMarkers) {
				info.hasBookingLink = true
			}
			if strings.Contains(href, "about") || strings.Contains(href, "o-nas") || strings.Contains(href, "ueber-uns") {
				info.hasAboutLink = true
			}
			if strings.Contains(href, "contact") || strings.Contains(href, "kontakt") {
				info.hasContactLink = true
			}
		case "style":
			css := strings.ToLower(nodeText(n))
			if strings.Contains(css, "display:flex") || strings.Contains(css, "display: flex") {
				info.usesFlexbox = true
			}
			if strings.Contains(css, "display:grid") || strings.Contains(css, "display: grid") {
				info.usesGrid = true
			}
			if strings.Contains(css, "@font-face") {
				info.usesWebfonts = true
			}
		case "script":
			if strings.EqualFold(attr(n, "type"), "application/ld+json") {
				info.schemaTypes = append(info.schemaTypes, schemaTypes(nodeText(n))...)
			}
		}
	}
	if n.Type == html.TextNode {
		if t := strings.TrimSpace(n.Data); t != "" {
			info.textChunks = append(info.textChunks, t)
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		walk(c, info)
	}
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func nodeText(n *html.Node) string {
	var sb strings.Builder
	var rec func(*html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(n)
	return sb.String()
}

func extractText(rawHTML string) string {
	result, err := trafilatura.Extract(strings.NewReader(rawHTML), trafilatura.Options{})
	if err != nil || result == nil {
		return ""
	}
	return textutil.CleanText(result.ContentText)
}

// schemaTypes pulls every @type out of a JSON-LD block, including
// @graph wrappers and type arrays.
func schemaTypes(raw string) []string {
	var parsed any
	if err := json.Unmarshal([]byte(raw), &parsed); err != nil {
		return nil
	}
	var types []string
	var rec func(v any)
	rec = func(v any) {
		switch val := v.(type) {
		case map[string]any:
			if t, ok := val["@type"]; ok {
				switch tv := t.(type) {
				case string:
					types = append(types, tv)
				case []any:
					for _, e := range tv {
						if s, ok := e.(string); ok {
							types = append(types, s)
						}
					}
				}
			}
			if g, ok := val["@graph"]; ok {
				rec(g)
			}
		case []any:
			for _, e := range val {
				rec(e)
			}
		}
	}
	rec(parsed)
	return types
}

func containsType(types []string, want string) bool {
	for _, t := range types {
		if strings.EqualFold(t, want) {
			return true
		}
	}
	return false
}

func containsAny(s string, markers []string) bool {
	for _, m := range markers {
		if strings.Contains(s, m) {
			return true
		}
	}
	return false
}

func questionHeadings(info *pageInfo) int {
	count := 0
	for _, h := range append(append([]string{}, info.h1s...), info.h2s...) {
		if strings.HasSuffix(strings.TrimSpace(h), "?") {
			count++
		}
	}
	return count
}

func copyrightYear(rawHTML string) int {
	m := copyrightRe.FindStringSubmatch(rawHTML)
	if m == nil {
		return 0
	}
	year, _ := strconv.Atoi(m[1])
	return year
}

// newestYear returns the most recent plausible year mentioned in the
// text, capped at next year to ignore phone numbers and prices that
// happen to look like years.
func newestYear(text string) int {
	limit := time.Now().Year() + 1
	newest := 0
	for _, m := range yearRe.FindAllString(text, -1) {
		y, _ := strconv.Atoi(m)
		if y > newest && y <= limit {
			newest = y
		}
	}
	return newest
}

// naturalLanguageScore measures how much of the text reads as full
// sentences rather than keyword lists: the share of sentences between
// 8 and 40 words.
func naturalLanguageScore(text string) float64 {
	if text == "" {
		return 0
	}
	sentences := sentenceRe.Split(text, -1)
	if len(sentences) == 0 {
		return 0
	}
	natural := 0
	for _, s := range sentences {
		if n := len(strings.Fields(s)); n >= 8 && n <= 40 {
			natural++
		}
	}
	return float64(natural) / float64(len(sentences))
}

func imageQuality(info *pageInfo) models.ImageQuality {
	switch {
	case info.totalImages == 0:
		return models.ImageQualityUnknown
	case info.responsiveImgs*2 >= info.totalImages && info.totalImages >= 5:
		return models.ImageQualityHigh
	case info.totalImages >= 3:
		return models.ImageQualityMedium
	default:
		return models.ImageQualityLow
	}
}

func detectCMS(lowerHTML string) string {
	for _, sig := range cmsSignatures {
		if strings.Contains(lowerHTML, sig.marker) {
			return sig.name
		}
	}
	return ""
}
