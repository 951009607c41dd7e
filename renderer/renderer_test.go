package renderer

import (
	"io"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/vitae-dev/vitae/core"
)

const testBaseTemplate = `<!DOCTYPE html>
<html lang="{{ .Locale.Code }}">
<head><title>{{ .Title }}</title></head>
<body>{{ block "content" . }}{{ end }}</body>
</html>`

const testResumeTemplate = `{{ define "content" }}
<h1>{{ .Site.Params.Author.Name }}</h1>
<h2>{{ .T "sections.jobs" }}</h2>
{{ range $job := .Section "jobs" }}
<article>
	<h3>{{ $job.Title }}</h3>
	<p class="dates">{{ $.DateRange $job }}</p>
	{{ md $job.Content }}
</article>
{{ end }}
{{ end }}`

func testRenderer(t *testing.T, files map[string]string) *Renderer {
	t.Helper()

	dir := t.TempDir()

	defaults := map[string]string{
		"templates/base.html":   testBaseTemplate,
		"templates/resume.html": testResumeTemplate,
	}
	for filename, data := range defaults {
		if _, ok := files[filename]; !ok {
			files[filename] = data
		}
	}

	for filename, data := range files {
		p := filepath.Join(dir, filename)
		require.NoError(t, os.MkdirAll(filepath.Dir(p), 0777))
		require.NoError(t, os.WriteFile(p, []byte(data), 0644))
	}

	cfg := &core.Config{
		ServerConfig: core.ServerConfig{
			SourceDirectory: dir,
			PublicDirectory: t.TempDir(),
			BaseURL:         "https://example.com",
		},
		Site: core.SiteConfig{
			Title:      "John Doe — Résumé",
			DateFormat: "MMMM yyyy",
			Locales: []*core.Locale{
				{Code: "en", Name: "English"},
				{Code: "es", Name: "Español"},
			},
		},
	}
	cfg.Site.Params.Author.Name = "John Doe"
	require.NoError(t, cfg.Site.Validate())

	co, err := core.NewCore(cfg)
	require.NoError(t, err)

	r, err := NewRenderer(cfg, co)
	require.NoError(t, err)
	return r
}

func TestBuildSite(t *testing.T) {
	r := testRenderer(t, map[string]string{
		"content/jobs/senior-developer.md": "---\ntitle: Senior Developer\ndate: 2020-05-01\norder: 1\n---\n\nBuilt *things*.",
		"content/jobs/intern.md":           "---\ntitle: Intern\ndate: 2016-09-01\nendDate: 2017-06-30\norder: 2\n---\n\nLearned a lot.",
		"content/jobs/intern.es.md":        "---\ntitle: Becario\ndate: 2016-09-01\nendDate: 2017-06-30\norder: 2\n---\n\nAprendí mucho.",
		"static/css/main.css":              "body { margin: 0; }",
	})

	require.NoError(t, r.BuildSite(true))

	co := r.co
	assert.NotEmpty(t, co.BuildName())

	index, err := co.ReadBuildFile("index.html")
	require.NoError(t, err)
	assert.Contains(t, string(index), "Senior Developer")
	assert.Contains(t, string(index), "Intern")
	assert.Contains(t, string(index), "May 2020")
	assert.Contains(t, string(index), "<em>things</em>")

	localized, err := co.ReadBuildFile("es/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(localized), "Becario")
	assert.Contains(t, string(localized), "Senior Developer", "base record must fall back under es")
	assert.Contains(t, string(localized), "mayo 2020")

	printPage, err := co.ReadBuildFile("print/index.html")
	require.NoError(t, err)
	assert.Contains(t, string(printPage), "Senior Developer")

	css, err := co.ReadBuildFile("css/main.css")
	require.NoError(t, err)
	assert.Equal(t, "body { margin: 0; }", string(css))
}

func TestBuildSiteAbortsOnMissingRecord(t *testing.T) {
	r := testRenderer(t, map[string]string{
		"templates/resume.html": `{{ define "content" }}{{ with .Record "skills" "golang" }}{{ .Title }}{{ end }}{{ end }}`,
	})

	err := r.BuildSite(true)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "golang")
	assert.Contains(t, err.Error(), "skills")
}

func TestRenderUnknownTemplate(t *testing.T) {
	r := testRenderer(t, map[string]string{})

	rc := r.co.NewRenderContext(r.c.Site.Primary())
	err := r.Render(io.Discard, r.newRenderData(rc), []string{"nope"})
	assert.EqualError(t, err, "unrecognized template")
}

func TestTemplateFunctions(t *testing.T) {
	assert.Equal(t, "15/03/2024", dateFormat("2024-03-15", "02/01/2006"))
	assert.Equal(t, "not a date", dateFormat("not a date", "02/01/2006"))

	assert.Equal(t, `["a","b"]`, asJSON([]string{"a", "b"}))
	assert.Equal(t, "hello-world", core.Slugify("Hello World"))
}
