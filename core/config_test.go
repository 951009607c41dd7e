package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSiteConfigValidate(t *testing.T) {
	t.Parallel()

	t.Run("marks first locale as primary and fills defaults", func(t *testing.T) {
		conf := &SiteConfig{
			Title: "Résumé",
			Locales: []*Locale{
				{Code: "en"},
				{Code: "es", Fallbacks: []string{"en"}},
			},
		}

		require.NoError(t, conf.Validate())

		assert.Equal(t, defaultDateFormat, conf.DateFormat)
		assert.True(t, conf.Locales[0].Primary())
		assert.False(t, conf.Locales[1].Primary())
		assert.Equal(t, "en", conf.Primary().Code)
		assert.Equal(t, "es", conf.Locales[1].Name)
		assert.Equal(t, "enero", conf.Locales[1].MonthNames[0])
		assert.Equal(t, "ene", conf.Locales[1].MonthAbbrevs[0])
	})

	t.Run("rejects bad configurations", func(t *testing.T) {
		for _, conf := range []*SiteConfig{
			{Locales: []*Locale{{Code: "en"}}},
			{Title: "Résumé"},
			{Title: "Résumé", Locales: []*Locale{{Code: "en"}, {Code: "en"}}},
			{Title: "Résumé", Locales: []*Locale{{Code: "not a locale"}}},
			{Title: "Résumé", Locales: []*Locale{{Code: "en", MonthNames: []string{"January"}}}},
		} {
			assert.Error(t, conf.Validate())
		}
	})

	t.Run("keeps custom month tables", func(t *testing.T) {
		months := []string{
			"janvier", "février", "mars", "avril", "mai", "juin",
			"juillet", "août", "septembre", "octobre", "novembre", "décembre",
		}
		conf := &SiteConfig{
			Title:   "Résumé",
			Locales: []*Locale{{Code: "fr", MonthNames: months}},
		}

		require.NoError(t, conf.Validate())
		assert.Equal(t, "février", conf.Locales[0].MonthName(2))
		assert.Equal(t, "fév", conf.Locales[0].MonthAbbrev(2))
	})
}

func TestSiteConfigLocale(t *testing.T) {
	t.Parallel()

	conf := testConfig(t)

	es, ok := conf.Site.Locale("es")
	require.True(t, ok)
	assert.Equal(t, "es", es.Code)

	_, ok = conf.Site.Locale("de")
	assert.False(t, ok)
}

func TestServerConfigURLs(t *testing.T) {
	t.Parallel()

	c := &ServerConfig{BaseURL: "https://example.com"}

	assert.Equal(t, "https://example.com/es/", c.AbsoluteURL("/es/"))
	assert.Equal(t, "/print/", c.RelativeURL("https://example.com/print/"))
}
