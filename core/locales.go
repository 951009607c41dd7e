package core

import (
	"fmt"
	"time"

	"golang.org/x/text/language"
)

// Locale describes one supported language and its formatting rules.
type Locale struct {
	Code string
	Name string

	// DateFormat overrides [SiteConfig.DateFormat] for this locale.
	DateFormat string

	// MonthNames and MonthAbbrevs hold the twelve month names, January
	// first. When empty, the builtin tables for the locale code are used,
	// falling back to English.
	MonthNames   []string
	MonthAbbrevs []string

	// Fallbacks lists locale codes tried, in order, after this locale and
	// before the primary records during content resolution.
	Fallbacks []string

	tag     language.Tag
	primary bool
}

func (l *Locale) validate() error {
	tag, err := language.Parse(l.Code)
	if err != nil {
		return fmt.Errorf("site config: invalid locale %q: %w", l.Code, err)
	}
	l.tag = tag

	if l.Name == "" {
		l.Name = l.Code
	}

	if len(l.MonthNames) == 0 {
		l.MonthNames = builtinMonthNames(l.Code)
	}
	if len(l.MonthNames) != 12 {
		return fmt.Errorf("site config: locale %q must have 12 month names", l.Code)
	}

	if len(l.MonthAbbrevs) == 0 {
		l.MonthAbbrevs = abbreviate(l.MonthNames)
	}
	if len(l.MonthAbbrevs) != 12 {
		return fmt.Errorf("site config: locale %q must have 12 month abbreviations", l.Code)
	}

	return nil
}

func (l *Locale) Tag() language.Tag {
	return l.tag
}

// Primary reports whether this is the primary locale.
func (l *Locale) Primary() bool {
	return l.primary
}

func (l *Locale) MonthName(m time.Month) string {
	return l.MonthNames[int(m)-1]
}

func (l *Locale) MonthAbbrev(m time.Month) string {
	return l.MonthAbbrevs[int(m)-1]
}

var monthNames = map[string][]string{
	"en": {
		"January", "February", "March", "April", "May", "June",
		"July", "August", "September", "October", "November", "December",
	},
	"es": {
		"enero", "febrero", "marzo", "abril", "mayo", "junio",
		"julio", "agosto", "septiembre", "octubre", "noviembre", "diciembre",
	},
}

func builtinMonthNames(code string) []string {
	if names, ok := monthNames[code]; ok {
		return names
	}

	return monthNames["en"]
}

func abbreviate(names []string) []string {
	abbrevs := make([]string, len(names))
	for i, name := range names {
		runes := []rune(name)
		if len(runes) > 3 {
			runes = runes[:3]
		}
		abbrevs[i] = string(runes)
	}
	return abbrevs
}
