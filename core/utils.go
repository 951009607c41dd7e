package core

import (
	"html"
	"strings"

	"github.com/microcosm-cc/bluemonday"
)

// Borrowed from https://github.com/jlelse/GoBlog/blob/master/utils.go
func Slugify(str string) string {
	return strings.Map(func(c rune) rune {
		if c >= 'a' && c <= 'z' || c >= '0' && c <= '9' {
			// Is lower case ASCII or number, return unmodified
			return c
		} else if c >= 'A' && c <= 'Z' {
			// Is upper case ASCII, make lower case
			return c + 'a' - 'A'
		} else if c == ' ' || c == '-' || c == '_' {
			// Space, replace with '-'
			return '-'
		} else {
			// Drop character
			return -1
		}
	}, str)
}

var htmlRemover = bluemonday.StrictPolicy()

func makePlainText(text string) string {
	text = htmlRemover.Sanitize(text)
	// Unescapes html entities.
	text = html.UnescapeString(text)
	return strings.TrimSpace(text)
}

func truncateString(str string, length int) string {
	if length <= 0 {
		return ""
	}

	truncated := ""
	count := 0
	for _, char := range str {
		truncated += string(char)
		count++
		if count >= length {
			break
		}
	}
	return strings.TrimSpace(truncated)
}

func truncateStringWithEllipsis(str string, length int) string {
	str = strings.TrimSpace(str)
	newStr := truncateString(str, length)
	if newStr != str {
		newStr += "…"
	}

	return newStr
}

func normalizeNewlines(d string) string {
	// Replace CR LF \r\n (Windows) with LF \n (Unix)
	d = strings.ReplaceAll(d, "\r\n", "\n")
	// Replace CF \r (Mac OS) with LF \n (Unix)
	d = strings.ReplaceAll(d, "\r", "\n")
	return d
}
