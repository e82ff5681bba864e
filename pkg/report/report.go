// Package report renders a completed audit as JSON or Markdown.
package report

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"

	"github.com/webatelier/siteaudit/internal/models"
	"github.com/webatelier/siteaudit/internal/textutil"
)

// Format selects the output rendering.
type Format string

const (
	FormatJSON     Format = "json"
	FormatMarkdown Format = "markdown"
)

var categoryHeadings = map[models.Locale]map[models.Category]string{
	models.LocaleCS: {
		models.CategorySpeed:    "Rychlost",
		models.CategoryMobile:   "Mobilní verze",
		models.CategorySecurity: "Zabezpečení",
		models.CategorySEO:      "SEO",
		models.CategoryGEO:      "AI viditelnost",
		models.CategoryDesign:   "Design a konverze",
	},
	models.LocaleEN: {
		models.CategorySpeed:    "Speed",
		models.CategoryMobile:   "Mobile",
		models.CategorySecurity: "Security",
		models.CategorySEO:      "SEO",
		models.CategoryGEO:      "AI visibility",
		models.CategoryDesign:   "Design & conversion",
	},
	models.LocaleDE: {
		models.CategorySpeed:    "Geschwindigkeit",
		models.CategoryMobile:   "Mobile Ansicht",
		models.CategorySecurity: "Sicherheit",
		models.CategorySEO:      "SEO",
		models.CategoryGEO:      "KI-Sichtbarkeit",
		models.CategoryDesign:   "Design & Konversion",
	},
	models.LocaleRU: {
		models.CategorySpeed:    "Скорость",
		models.CategoryMobile:   "Мобильная версия",
		models.CategorySecurity: "Безопасность",
		models.CategorySEO:      "SEO",
		models.CategoryGEO:      "Видимость в ИИ",
		models.CategoryDesign:   "Дизайн и конверсия",
	},
}

var typeMarkers = map[models.FindingType]string{
	models.FindingCritical:    "🔴",
	models.FindingWarning:     "🟡",
	models.FindingOpportunity: "🟢",
}

// categoryCeilings mirrors the scoring engine's per-category maxima for
// the "score/max" display.
var categoryCeilings = map[models.Category]int{
	models.CategorySpeed:    20,
	models.CategoryMobile:   15,
	models.CategorySecurity: 10,
	models.CategorySEO:      20,
	models.CategoryGEO:      15,
	models.CategoryDesign:   20,
}

// Render produces the audit in the requested format.
func Render(result *models.AuditResult, format Format) (string, error) {
	switch format {
	case FormatJSON:
		return renderJSON(result)
	case FormatMarkdown:
		return renderMarkdown(result), nil
	default:
		return "", fmt.Errorf("unsupported format: %s", format)
	}
}

func renderJSON(result *models.AuditResult) (string, error) {
	data, err := json.MarshalIndent(result, "", "  ")
	if err != nil {
		return "", fmt.Errorf("marshal audit: %w", err)
	}
	return string(data), nil
}

func renderMarkdown(result *models.AuditResult) string {
	headings := categoryHeadings[result.Locale]

	var buf bytes.Buffer
	fmt.Fprintf(&buf, "# %s\n\n", textutil.Domain(result.URL))
	fmt.Fprintf(&buf, "**URL:** %s\n", result.URL)
	if title := result.Details.Title; title != "" {
		fmt.Fprintf(&buf, "**Title:** %s\n", textutil.TruncateText(title, 80))
	}
	fmt.Fprintf(&buf, "**Audit:** %s\n\n", result.GeneratedAt.Format(time.RFC3339))

	fmt.Fprintf(&buf, "## %d / 100\n\n", result.Scores.Total)
	buf.WriteString("| | |\n|---|---|\n")
	perCategory := map[models.Category]int{
		models.CategorySpeed:    result.Scores.Speed,
		models.CategoryMobile:   result.Scores.Mobile,
		models.CategorySecurity: result.Scores.Security,
		models.CategorySEO:      result.Scores.SEO,
		models.CategoryGEO:      result.Scores.GEO,
		models.CategoryDesign:   result.Scores.Design,
	}
	for _, cat := range models.Categories {
		fmt.Fprintf(&buf, "| %s | %d/%d |\n", headings[cat], perCategory[cat], categoryCeilings[cat])
	}
	buf.WriteString("\n")

	for _, cat := range models.Categories {
		var section []models.Finding
		for _, f := range result.Findings {
			if f.Category == cat {
				section = append(section, f)
			}
		}
		if len(section) == 0 {
			continue
		}
		fmt.Fprintf(&buf, "### %s\n\n", headings[cat])
		for _, f := range section {
			fmt.Fprintf(&buf, "- %s **%s**\n", typeMarkers[f.Type], f.Title)
			fmt.Fprintf(&buf, "  %s\n", f.Description)
			fmt.Fprintf(&buf, "  %s\n", f.Impact)
		}
		buf.WriteString("\n")
	}

	if result.Recommendation != "" {
		buf.WriteString("---\n\n")
		buf.WriteString(result.Recommendation)
		buf.WriteString("\n")
	}
	return buf.String()
}
