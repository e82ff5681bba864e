package findings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/webatelier/siteaudit/internal/models"
)

// sampleParams fills every field a dynamic slot might reference.
var sampleParams = Params{
	Seconds: 5.2,
	Millis:  2100,
	Score:   42,
	Count:   7,
	Percent: 64,
	Length:  85,
	Year:    2019,
	Years:   7,
	Label:   "massage salon",
	Name:    "Wix",
}

func TestEveryLocaleDefinesEveryKey(t *testing.T) {
	for _, locale := range models.Locales {
		table, ok := templates[locale]
		require.True(t, ok, "locale %s has no template table", locale)
		assert.Len(t, table, len(allKeys), "locale %s table size", locale)

		for _, k := range allKeys {
			tpl, ok := table[k]
			require.True(t, ok, "locale %s missing key %s", locale, k)

			assert.NotEmpty(t, tpl.title.render(sampleParams), "%s/%s title", locale, k)
			assert.NotEmpty(t, tpl.description.render(sampleParams), "%s/%s description", locale, k)
			assert.NotEmpty(t, tpl.impact.render(sampleParams), "%s/%s impact", locale, k)
		}
	}
}

func TestDynamicSlotsInterpolateValues(t *testing.T) {
	tests := []struct {
		key  key
		want string
	}{
		{keyLCPCritical, "5.2"},
		{keyTTFBSlow, "2100"},
		{keyPageSpeedCritical, "42"},
		{keyTitleTooLong, "85"},
		{keyMultipleH1, "7"},
		{keyAltTextCritical, "64"},
		{keyStaleContent, "2019"},
		{keyCopyrightCritical, "2019"},
		{keyPageBuilder, "Wix"},
	}
	for _, locale := range models.Locales {
		for _, tt := range tests {
			tpl := templates[locale][tt.key]
			rendered := tpl.title.render(sampleParams) +
				tpl.description.render(sampleParams) +
				tpl.impact.render(sampleParams)
			assert.Contains(t, rendered, tt.want, "%s/%s", locale, tt.key)
		}
	}
}

func TestStaticSlotsIgnoreParams(t *testing.T) {
	tpl := templates[models.LocaleEN][keyNoHTTPS]
	assert.Equal(t, tpl.title.render(Params{}), tpl.title.render(sampleParams))
	assert.Equal(t, tpl.impact.render(Params{}), tpl.impact.render(sampleParams))
}
