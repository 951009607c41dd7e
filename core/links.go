package core

import (
	"bytes"
	urlpkg "net/url"
	"path"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/samber/lo"
)

// GetPageLinks gets the internal links found in the HTML built for the
// given path. This uses the latest available build.
func (co *Core) GetPageLinks(urlPath string) ([]string, error) {
	html, err := co.ReadBuildFile(path.Join(urlPath, "index.html"))
	if err != nil {
		return nil, err
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, err
	}

	links := []string{}
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if link, ok := co.internalPath(href); ok {
			links = append(links, link)
		}
	})

	return lo.Uniq(links), nil
}

// internalPath reduces a link to a site-relative path, discarding links
// that leave the site.
func (co *Core) internalPath(href string) (string, bool) {
	if strings.HasPrefix(href, "#") {
		return "", false
	}

	url, err := urlpkg.Parse(href)
	if err != nil {
		return "", false
	}

	if url.Host != "" {
		base, err := urlpkg.Parse(co.cfg.BaseURL)
		if err != nil || url.Host != base.Host {
			return "", false
		}
	}

	if url.Path == "" {
		return "", false
	}

	return url.Path, true
}
