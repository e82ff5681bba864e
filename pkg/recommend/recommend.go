package recommend

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/webatelier/siteaudit/internal/models"
)

// divider is the fixed visual separator used in offer texts.
const divider = "━━━━━━━━━━━━━━━━━━━━━━━━━━━━━━"

// Narrative builds the general assessment for an audited site: the
// score-bucket description, the weak categories, and a closing line
// inviting an individual quote. It deliberately never quotes a price;
// concrete figures only appear in the package texts.
func Narrative(scores models.AnalysisScores, business models.BusinessType, locale models.Locale) string {
	lex := lexicons[locale]

	var buf bytes.Buffer
	buf.WriteString(lex.bucket[ScoreBucket(scores.Total)])

	if weak := weakCategories(scores); len(weak) > 0 {
		labels := make([]string, 0, len(weak))
		for _, c := range weak {
			labels = append(labels, lex.categoryLabel[c])
		}
		buf.WriteString(" ")
		buf.WriteString(lex.weakIntro)
		buf.WriteString(strings.Join(labels, ", "))
		buf.WriteString(".")
	}

	buf.WriteString(" ")
	fmt.Fprintf(&buf, lex.closing, business.Label(locale))
	return buf.String()
}

// weakCategories returns the categories under their weakness thresholds,
// in canonical category order.
func weakCategories(s models.AnalysisScores) []models.Category {
	var weak []models.Category
	checks := []struct {
		cat       models.Category
		score     int
		threshold int
	}{
		{models.CategorySpeed, s.Speed, weakSpeed},
		{models.CategoryMobile, s.Mobile, weakMobile},
		{models.CategorySecurity, s.Security, weakSecurity},
		{models.CategorySEO, s.SEO, weakSEO},
		{models.CategoryGEO, s.GEO, weakGEO},
		{models.CategoryDesign, s.Design, weakDesign},
	}
	for _, c := range checks {
		if c.score < c.threshold {
			weak = append(weak, c.cat)
		}
	}
	return weak
}

// PackageText renders the long-form offer for one tier: header,
// divider, price and delivery from the reference data, the feature
// list, the fixed competitor comparison and the tier's ROI copy.
// The premium list is capped at twelve entries; basic features use a
// plain bullet while the higher tiers use a checkmark.
func PackageText(id models.PackageID, locale models.Locale) (string, error) {
	pkg, ok := PackageByID(id)
	if !ok {
		return "", fmt.Errorf("unknown package %q", id)
	}
	lex := lexicons[locale]

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%s\n%s\n", lex.packageHeader[id], divider)
	fmt.Fprintf(&buf, lex.priceLine, FormatPriceRange(pkg.PriceMin, pkg.PriceMax, locale))
	buf.WriteString("\n")
	fmt.Fprintf(&buf, lex.deliveryLine, pkg.DeliveryMinDays, pkg.DeliveryMaxDays)
	buf.WriteString("\n\n")

	buf.WriteString(lex.featuresTitle)
	buf.WriteString("\n")

	prefix := "✓ "
	if id == models.PackageBasic {
		prefix = "• "
	}
	feats := lex.features[id]
	shown := feats
	if id == models.PackagePremium && len(feats) > premiumFeatureLimit {
		shown = feats[:premiumFeatureLimit]
	}
	for _, f := range shown {
		fmt.Fprintf(&buf, "%s%s\n", prefix, f)
	}
	if rest := len(feats) - len(shown); rest > 0 {
		fmt.Fprintf(&buf, lex.moreFeatures, rest)
		buf.WriteString("\n")
	}

	buf.WriteString("\n")
	buf.WriteString(lex.competitor[id])
	buf.WriteString("\n")
	buf.WriteString(lex.roi[id])
	buf.WriteString("\n")
	return buf.String(), nil
}

// ComparisonTable renders a markdown feature matrix across all three
// tiers for marketing collateral. Pure templating over reference data.
func ComparisonTable(locale models.Locale) string {
	lex := lexicons[locale]

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "## %s\n\n", lex.tableTitle)
	fmt.Fprintf(&buf, "| | %s | %s | %s |\n",
		lex.packageName[models.PackageBasic],
		lex.packageName[models.PackagePremium],
		lex.packageName[models.PackageEnterprise])
	buf.WriteString("|---|---|---|---|\n")

	fmt.Fprintf(&buf, "| %s |", lex.priceRowLabel)
	for _, pkg := range Packages {
		fmt.Fprintf(&buf, " %s |", FormatPriceRange(pkg.PriceMin, pkg.PriceMax, locale))
	}
	buf.WriteString("\n")

	fmt.Fprintf(&buf, "| %s |", lex.deliveryRowLabel)
	for _, pkg := range Packages {
		buf.WriteString(" ")
		fmt.Fprintf(&buf, lex.deliveryDays, pkg.DeliveryMinDays, pkg.DeliveryMaxDays)
		buf.WriteString(" |")
	}
	buf.WriteString("\n")

	for _, row := range capabilities {
		fmt.Fprintf(&buf, "| %s |", row.labels[locale])
		for _, pkg := range Packages {
			if row.avail[pkg.ID] {
				buf.WriteString(" ✓ |")
			} else {
				buf.WriteString(" — |")
			}
		}
		buf.WriteString("\n")
	}
	return buf.String()
}

// PaybackEstimate returns the tier's fixed payback-period string.
func PaybackEstimate(id models.PackageID, locale models.Locale) string {
	return lexicons[locale].payback[id]
}

// ROILine renders the informational payback sentence for a tier given
// the client's average transaction value.
func ROILine(id models.PackageID, avgTransactionValue int, locale models.Locale) (string, error) {
	pkg, ok := PackageByID(id)
	if !ok {
		return "", fmt.Errorf("unknown package %q", id)
	}
	lex := lexicons[locale]
	return fmt.Sprintf(lex.roiCustomers, CustomersNeeded(pkg, avgTransactionValue), lex.payback[id]), nil
}
