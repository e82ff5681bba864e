package models

// Locale selects the output language for all generated text.
type Locale string

const (
	LocaleCS Locale = "cs"
	LocaleEN Locale = "en"
	LocaleDE Locale = "de"
	LocaleRU Locale = "ru"
)

// Locales lists every supported locale. Template tables must resolve
// every key for all of them; a gap is a defect caught by tests.
var Locales = []Locale{LocaleCS, LocaleEN, LocaleDE, LocaleRU}

// Valid reports whether l is one of the supported locales.
func (l Locale) Valid() bool {
	switch l {
	case LocaleCS, LocaleEN, LocaleDE, LocaleRU:
		return true
	}
	return false
}

// BusinessType is the audited client's line of business. It only selects
// a label in generated text and never changes scoring thresholds.
type BusinessType string

const (
	BusinessMassage BusinessType = "massage"
	BusinessPrivat  BusinessType = "privat"
	BusinessEscort  BusinessType = "escort"
)

// Valid reports whether b is one of the supported business types.
func (b BusinessType) Valid() bool {
	switch b {
	case BusinessMassage, BusinessPrivat, BusinessEscort:
		return true
	}
	return false
}

var businessLabels = map[Locale]map[BusinessType]string{
	LocaleCS: {
		BusinessMassage: "masážní salon",
		BusinessPrivat:  "privát",
		BusinessEscort:  "escort služba",
	},
	LocaleEN: {
		BusinessMassage: "massage salon",
		BusinessPrivat:  "private salon",
		BusinessEscort:  "escort service",
	},
	LocaleDE: {
		BusinessMassage: "Massagesalon",
		BusinessPrivat:  "Privatsalon",
		BusinessEscort:  "Escortservice",
	},
	LocaleRU: {
		BusinessMassage: "массажный салон",
		BusinessPrivat:  "приват-салон",
		BusinessEscort:  "эскорт-сервис",
	},
}

// Label returns the localized noun phrase for the business type.
func (b BusinessType) Label(l Locale) string {
	return businessLabels[l][b]
}

// PackageID identifies one of the three commercial offer tiers.
type PackageID string

const (
	PackageBasic      PackageID = "basic"
	PackagePremium    PackageID = "premium"
	PackageEnterprise PackageID = "enterprise"
)

// Package is static reference data for one offer tier. Prices are whole
// CZK; delivery is a working-day window.
type Package struct {
	ID              PackageID `json:"id"`
	PriceMin        int       `json:"price_min"`
	PriceMax        int       `json:"price_max"`
	DeliveryMinDays int       `json:"delivery_min_days"`
	DeliveryMaxDays int       `json:"delivery_max_days"`
}
