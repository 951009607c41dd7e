package core

import (
	"testing"

	"github.com/spf13/afero"
	"github.com/stretchr/testify/require"
)

func testConfig(t *testing.T) *Config {
	t.Helper()

	cfg := &Config{
		ServerConfig: ServerConfig{
			SourceDirectory: "/source",
			PublicDirectory: "/public",
			BaseURL:         "https://example.com",
		},
		Site: SiteConfig{
			Title: "John Doe",
			Locales: []*Locale{
				{Code: "en", Name: "English"},
				{Code: "es", Name: "Español"},
			},
		},
	}

	require.NoError(t, cfg.Site.Validate())
	return cfg
}

func testCore(t *testing.T, files map[string]string) *Core {
	t.Helper()

	sourceFS := &afero.Afero{Fs: afero.NewMemMapFs()}
	for filename, data := range files {
		require.NoError(t, sourceFS.WriteFile(filename, []byte(data), 0644))
	}

	return &Core{
		cfg:      testConfig(t),
		sourceFS: sourceFS,
		buildFS:  &afero.Afero{Fs: afero.NewMemMapFs()},
	}
}

func (co *Core) testRenderContext(t *testing.T, code string) *RenderContext {
	t.Helper()

	locale, ok := co.cfg.Site.Locale(code)
	require.True(t, ok, "locale %q is not configured", code)
	return co.NewRenderContext(locale)
}
