package models

import "time"

// AnalysisDetails is the normalized signal record for one site snapshot.
// It is fully defaulted: a zero value is a valid (empty) record, so the
// scoring engine never has to guard against missing fields. Collectors
// substitute zero values for anything they could not measure.
type AnalysisDetails struct {
	// Speed metrics, in milliseconds unless noted.
	LCP            float64 `json:"lcp"`
	FCP            float64 `json:"fcp"`
	TTFB           float64 `json:"ttfb"`
	CLS            float64 `json:"cls"` // unitless layout-shift score
	TBT            float64 `json:"tbt"`
	PageSpeedScore int     `json:"page_speed_score"` // 0-100, 0 = not measured

	// Mobile friendliness.
	HasViewportMeta     bool `json:"has_viewport_meta"`
	HasResponsiveImages bool `json:"has_responsive_images"`
	TouchTargetsOK      bool `json:"touch_targets_ok"`
	TextReadable        bool `json:"text_readable"`
	HasHorizontalScroll bool `json:"has_horizontal_scroll"`

	// Security.
	HasHTTPS           bool `json:"has_https"`
	HasMixedContent    bool `json:"has_mixed_content"`
	HasSecurityHeaders bool `json:"has_security_headers"`
	ValidCertificate   bool `json:"valid_certificate"`

	// SEO. Empty string means the element is absent.
	Title                    string   `json:"title"`
	TitleLength              int      `json:"title_length"`
	MetaDescription          string   `json:"meta_description"`
	MetaDescriptionLength    int      `json:"meta_description_length"`
	H1                       string   `json:"h1"`
	H1Count                  int      `json:"h1_count"`
	HasProperHeadingStructure bool    `json:"has_proper_heading_structure"`
	ImagesWithAlt            int      `json:"images_with_alt"`
	TotalImages              int      `json:"total_images"`
	HasSitemap               bool     `json:"has_sitemap"`
	HasRobotsTxt             bool     `json:"has_robots_txt"`
	HasCanonical             bool     `json:"has_canonical"`
	HasStructuredData        bool     `json:"has_structured_data"`
	StructuredDataTypes      []string `json:"structured_data_types"`

	// GEO: readiness for citation by AI search engines.
	HasFaqSection        bool    `json:"has_faq_section"`
	HasQaFormat          bool    `json:"has_qa_format"`
	HasLocalBusinessSchema bool  `json:"has_local_business_schema"`
	HasAnySchema         bool    `json:"has_any_schema"`
	HasAddress           bool    `json:"has_address"`
	HasOpeningHours      bool    `json:"has_opening_hours"`
	HasPricing           bool    `json:"has_pricing"`
	HasStatistics        bool    `json:"has_statistics"`
	ContentYear          int     `json:"content_year"` // 0 = unknown
	HasAboutPage         bool    `json:"has_about_page"`
	HasContactPage       bool    `json:"has_contact_page"`
	NaturalLanguageScore float64 `json:"natural_language_score"` // 0-1

	// Design and conversion signals.
	CopyrightYear    int          `json:"copyright_year"` // 0 = unknown
	UsesFlexbox      bool         `json:"uses_flexbox"`
	UsesGrid         bool         `json:"uses_grid"`
	UsesWebfonts     bool         `json:"uses_webfonts"`
	ImageQuality     ImageQuality `json:"image_quality"`
	HasBookingSystem bool         `json:"has_booking_system"`
	HasPhone         bool         `json:"has_phone"`
	HasWhatsApp      bool         `json:"has_whatsapp"`
	HasContactForm   bool         `json:"has_contact_form"`
	HasEmail         bool         `json:"has_email"`
	CMSDetected      string       `json:"cms_detected"` // "" = none detected
}

// ImageQuality is a coarse judgment of a site's imagery.
type ImageQuality string

const (
	ImageQualityHigh    ImageQuality = "high"
	ImageQualityMedium  ImageQuality = "medium"
	ImageQualityLow     ImageQuality = "low"
	ImageQualityUnknown ImageQuality = "unknown"
)

// AnalysisScores holds the six category scores and their sum.
// Each category is clamped to its ceiling; Total is always in [0, 100].
type AnalysisScores struct {
	Speed    int `json:"speed"`
	Mobile   int `json:"mobile"`
	Security int `json:"security"`
	SEO      int `json:"seo"`
	GEO      int `json:"geo"`
	Design   int `json:"design"`
	Total    int `json:"total"`
}

// FindingType classifies how urgent a finding is.
type FindingType string

const (
	FindingCritical    FindingType = "critical"
	FindingWarning     FindingType = "warning"
	FindingOpportunity FindingType = "opportunity"
)

// Category identifies one of the six audit areas.
type Category string

const (
	CategorySpeed    Category = "speed"
	CategoryMobile   Category = "mobile"
	CategorySecurity Category = "security"
	CategorySEO      Category = "seo"
	CategoryGEO      Category = "geo"
	CategoryDesign   Category = "design"
)

// Categories lists all audit areas in emission order. Finding generators
// run in this order, and priority ties keep it.
var Categories = []Category{
	CategorySpeed,
	CategoryMobile,
	CategorySecurity,
	CategorySEO,
	CategoryGEO,
	CategoryDesign,
}

// Finding is one human-readable observation about an audited site.
// Findings are immutable once emitted.
type Finding struct {
	ID          string      `json:"id"`
	Type        FindingType `json:"type"`
	Category    Category    `json:"category"`
	Title       string      `json:"title"`
	Description string      `json:"description"`
	Impact      string      `json:"impact"`
	Priority    int         `json:"priority"` // 1-10, higher first
}

// AuditResult is one completed audit run, ready for persistence.
type AuditResult struct {
	ID             string          `json:"id"`
	URL            string          `json:"url"`
	BusinessType   BusinessType    `json:"business_type"`
	Locale         Locale          `json:"locale"`
	Details        AnalysisDetails `json:"details"`
	Scores         AnalysisScores  `json:"scores"`
	Findings       []Finding       `json:"findings"`
	Recommendation string          `json:"recommendation"`
	GeneratedAt    time.Time       `json:"generated_at"`
}
