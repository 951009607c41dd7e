package renderer

import (
	"context"
	"errors"
	"html/template"
	"io"
	"time"

	"github.com/tdewolff/minify/v2"
	"github.com/yuin/goldmark"

	"github.com/vitae-dev/vitae/core"
)

type Renderer struct {
	c  *core.Config
	co *core.Core

	minify    *minify.M
	markdown  goldmark.Markdown
	templates map[string]*template.Template
}

func NewRenderer(c *core.Config, co *core.Core) (*Renderer, error) {
	r := &Renderer{
		c:  c,
		co: co,

		templates: map[string]*template.Template{},
		minify:    newMinify(),
	}

	r.markdown = newMarkdown()

	err := r.LoadTemplates()
	if err != nil {
		return nil, err
	}

	return r, nil
}

func (r *Renderer) Render(w io.Writer, data *RenderData, templates []string) error {
	if r.c.Development {
		// Probably not very concurrent safe. But it's just
		// for development purposes.
		err := r.LoadTemplates()
		if err != nil {
			return err
		}
	}

	var tpl *template.Template

	for _, t := range templates {
		if tt, ok := r.templates[t]; ok {
			tpl = tt
			break
		}
	}

	if tpl == nil {
		return errors.New("unrecognized template")
	}

	mw := r.minify.Writer(contentTypeHTML, w)
	err := tpl.Execute(mw, data)
	if err != nil {
		return err
	}

	return mw.Close()
}

type Alternate struct {
	Lang string
	Href string
}

// RenderData is the payload handed to every page template. The render
// context is bound at construction and immutable for the lifetime of the
// page render.
type RenderData struct {
	Title      string
	Site       *core.SiteConfig
	Locale     *core.Locale
	Alternates []Alternate
	IsPrint    bool
	IsHome     bool

	ctx context.Context
	rc  *core.RenderContext
	co  *core.Core
}

func (r *Renderer) newRenderData(rc *core.RenderContext) *RenderData {
	return &RenderData{
		Title:  r.c.Site.Title,
		Site:   &r.c.Site,
		Locale: rc.Locale,

		ctx: core.WithRenderContext(context.Background(), rc),
		rc:  rc,
		co:  r.co,
	}
}

// T translates an interface text key for the active locale.
func (rd *RenderData) T(key string, data ...map[string]any) string {
	var templateData map[string]any
	if len(data) > 0 {
		templateData = data[0]
	}
	return rd.rc.Translate(key, templateData)
}

// FormatDate renders a date with the active locale and date pattern.
func (rd *RenderData) FormatDate(t time.Time) string {
	return rd.rc.FormatDate(t)
}

// DateRange renders a record's date span, like "May 2020 – Present".
func (rd *RenderData) DateRange(record *core.Record) string {
	if record.Date.IsZero() {
		return ""
	}

	start := rd.rc.FormatDate(record.Date)
	if record.Ongoing() {
		return start + " – " + rd.T("dates.present")
	}

	return start + " – " + rd.rc.FormatDate(record.EndDate)
}

// Section resolves all records of a collection for the active locale. A
// missing mandatory record aborts the page render with an error naming
// the collection, identifier and locale.
func (rd *RenderData) Section(collection string) (core.Records, error) {
	return rd.co.ResolveCollection(rd.ctx, collection)
}

// Record resolves a single record for the active locale.
func (rd *RenderData) Record(collection, id string) (*core.Record, error) {
	return rd.co.ResolveRecord(rd.ctx, collection, id)
}
