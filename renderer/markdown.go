package renderer

import (
	"bytes"
	"html/template"

	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/extension"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/renderer/html"
)

var defaultGoldmarkOptions = []goldmark.Option{
	goldmark.WithRendererOptions(
		html.WithUnsafe(),
	),
	goldmark.WithParserOptions(
		parser.WithAutoHeadingID(),
		parser.WithAttribute(),
	),
	goldmark.WithExtensions(
		extension.Strikethrough,
		extension.Typographer,
		extension.Linkify,
	),
}

func newMarkdown() goldmark.Markdown {
	return goldmark.New(defaultGoldmarkOptions...)
}

// RenderMarkdown converts a record's markdown content to HTML.
func (r *Renderer) RenderMarkdown(source string) (template.HTML, error) {
	var buf bytes.Buffer
	err := r.markdown.Convert([]byte(source), &buf)
	if err != nil {
		return "", err
	}

	return template.HTML(buf.String()), nil
}
