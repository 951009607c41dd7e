package renderer

import (
	"encoding/json"
	"fmt"
	"html/template"
	"strings"
	"time"

	"github.com/araddon/dateparse"
	"github.com/samber/lo"

	"github.com/vitae-dev/vitae/core"
)

func safeHTML(text string) template.HTML {
	return template.HTML(text)
}

func safeCSS(text string) template.CSS {
	return template.CSS(text)
}

func asJSON(a interface{}) string {
	data, err := json.Marshal(a)
	if err != nil {
		return ""
	}
	return string(data)
}

// dateFormat parses a free-form date string and formats it with a Go
// layout. Locale-aware formatting goes through [RenderData.FormatDate]
// instead; this one serves raw metadata values in templates.
func dateFormat(date, layout string) string {
	t, err := dateparse.ParseStrict(date)
	if err != nil {
		return date
	}
	return t.Format(layout)
}

func (r *Renderer) templateFuncMap() template.FuncMap {
	return template.FuncMap{
		"strContains":    strings.Contains,
		"strSplit":       strings.Split,
		"strJoin":        strings.Join,
		"containsString": lo.Contains[string],
		"safeHTML":       safeHTML,
		"safeCSS":        safeCSS,
		"dateFormat":     dateFormat,
		"now":            time.Now,
		"md":             r.RenderMarkdown,
		"absURL":         r.c.AbsoluteURL,
		"relURL":         r.c.RelativeURL,
		"sprintf":        fmt.Sprintf,
		"asJSON":         asJSON,
		"slugify":        core.Slugify,
	}
}
