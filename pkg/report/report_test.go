package report

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webatelier/siteaudit/internal/models"
)

func sampleAudit() *models.AuditResult {
	return &models.AuditResult{
		ID:           "run-1",
		URL:          "https://example.com/salon",
		BusinessType: models.BusinessMassage,
		Locale:       models.LocaleEN,
		Scores:       models.AnalysisScores{Speed: 5, Mobile: 12, Security: 4, SEO: 8, GEO: 3, Design: 10, Total: 42},
		Findings: []models.Finding{
			{ID: "f-1", Type: models.FindingCritical, Category: models.CategorySecurity, Title: "Site runs without HTTPS", Description: "desc", Impact: "impact", Priority: 10},
			{ID: "f-2", Type: models.FindingWarning, Category: models.CategorySpeed, Title: "Slow page load", Description: "desc", Impact: "impact", Priority: 7},
		},
		Recommendation: "Your website needs work.",
		GeneratedAt:    time.Date(2026, 8, 15, 10, 0, 0, 0, time.UTC),
	}
}

func TestRenderJSON(t *testing.T) {
	out, err := Render(sampleAudit(), FormatJSON)
	require.NoError(t, err)

	var decoded models.AuditResult
	require.NoError(t, json.Unmarshal([]byte(out), &decoded))
	assert.Equal(t, "run-1", decoded.ID)
	assert.Equal(t, 42, decoded.Scores.Total)
	assert.Len(t, decoded.Findings, 2)
}

func TestRenderMarkdown(t *testing.T) {
	out, err := Render(sampleAudit(), FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "# example.com")
	assert.Contains(t, out, "## 42 / 100")
	assert.Contains(t, out, "| Speed | 5/20 |")
	assert.Contains(t, out, "| Security | 4/10 |")
	assert.Contains(t, out, "### Security")
	assert.Contains(t, out, "Site runs without HTTPS")
	assert.Contains(t, out, "🔴")
	assert.Contains(t, out, "Your website needs work.")
	// Categories without findings render no section.
	assert.NotContains(t, out, "### SEO")
}

func TestRenderMarkdownLocalizedHeadings(t *testing.T) {
	a := sampleAudit()
	a.Locale = models.LocaleCS
	out, err := Render(a, FormatMarkdown)
	require.NoError(t, err)
	assert.Contains(t, out, "| Rychlost | 5/20 |")
	assert.Contains(t, out, "### Zabezpečení")
}

func TestRenderMarkdownTruncatesLongTitle(t *testing.T) {
	a := sampleAudit()
	a.Details.Title = "Luxury relaxation and tantra massage salon in the very heart of historic old-town Prague with discreet private entrance"

	out, err := Render(a, FormatMarkdown)
	require.NoError(t, err)

	assert.Contains(t, out, "**Title:** Luxury relaxation")
	assert.Contains(t, out, "...")
	assert.NotContains(t, out, "private entrance")
}

func TestRenderUnsupportedFormat(t *testing.T) {
	_, err := Render(sampleAudit(), "pdf")
	assert.Error(t, err)
}
