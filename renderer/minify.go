package renderer

import (
	"github.com/tdewolff/minify/v2"
	mCss "github.com/tdewolff/minify/v2/css"
	mHtml "github.com/tdewolff/minify/v2/html"
	mJs "github.com/tdewolff/minify/v2/js"
)

const (
	contentTypeHTML = "text/html"
	contentTypeCSS  = "text/css"
	contentTypeJS   = "application/javascript"
)

func newMinify() *minify.M {
	m := minify.New()
	m.AddFunc(contentTypeHTML, mHtml.Minify)
	m.AddFunc(contentTypeCSS, mCss.Minify)
	m.AddFunc(contentTypeJS, mJs.Minify)
	return m
}
