package renderer

import (
	"bytes"
	"io/fs"
	"os"
	"path"
	"strings"

	"github.com/samber/lo"

	"github.com/vitae-dev/vitae/core"
)

const PrintDirectory = "print"

// BuildSite renders the whole résumé into a build directory: for every
// configured locale, the interactive page and the printable page, plus
// the error page and the static assets. The primary locale lives at the
// site root, every other locale under /<code>/.
func (r *Renderer) BuildSite(clean bool) error {
	return r.co.Build(clean, func(b *core.BuildFS) error {
		for _, locale := range r.c.Site.Locales {
			err := r.buildLocale(b, locale)
			if err != nil {
				return err
			}
		}

		err := r.buildErrorPage(b)
		if err != nil {
			return err
		}

		return r.copyStaticAssets(b)
	})
}

func localePrefix(locale *core.Locale) string {
	if locale.Primary() {
		return ""
	}
	return locale.Code
}

func (r *Renderer) buildLocale(b *core.BuildFS, locale *core.Locale) error {
	rc := r.co.NewRenderContext(locale)
	prefix := localePrefix(locale)

	alternates := lo.Map(r.c.Site.Locales, func(l *core.Locale, _ int) Alternate {
		return Alternate{
			Lang: l.Code,
			Href: r.c.AbsoluteURL(path.Join("/", localePrefix(l)) + "/"),
		}
	})

	data := r.newRenderData(rc)
	data.Alternates = alternates
	data.IsHome = true

	err := r.renderToFile(b, path.Join(prefix, "index.html"), data, []string{TemplateResume})
	if err != nil {
		return err
	}

	printData := *data
	printData.IsHome = false
	printData.IsPrint = true

	return r.renderToFile(b, path.Join(prefix, PrintDirectory, "index.html"), &printData, []string{TemplatePrint, TemplateResume})
}

func (r *Renderer) buildErrorPage(b *core.BuildFS) error {
	if _, ok := r.templates[TemplateError]; !ok {
		// The not-found page is optional.
		return nil
	}

	rc := r.co.NewRenderContext(r.c.Site.Primary())
	return r.renderToFile(b, "404.html", r.newRenderData(rc), []string{TemplateError})
}

func (r *Renderer) renderToFile(b *core.BuildFS, filename string, data *RenderData, templates []string) error {
	var buf bytes.Buffer
	err := r.Render(&buf, data, templates)
	if err != nil {
		return err
	}

	return b.WriteFile(filename, buf.Bytes())
}

func (r *Renderer) copyStaticAssets(b *core.BuildFS) error {
	sourceFS := r.co.SourceFS()

	return sourceFS.Walk(core.StaticDirectory, func(p string, info fs.FileInfo, err error) error {
		if err != nil {
			if os.IsNotExist(err) && p == core.StaticDirectory {
				return nil
			}
			return err
		}

		if info.IsDir() {
			return nil
		}

		data, err := sourceFS.ReadFile(p)
		if err != nil {
			return err
		}

		return b.WriteFile(strings.TrimPrefix(p, core.StaticDirectory), data)
	})
}
