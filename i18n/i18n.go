package i18n

import (
	"fmt"
	"io/fs"

	goi18n "github.com/nicksnyder/go-i18n/v2/i18n"
	"github.com/pelletier/go-toml/v2"
	"github.com/spf13/afero"
	"golang.org/x/text/language"

	"github.com/vitae-dev/vitae/core"
	"github.com/vitae-dev/vitae/log"
)

// MessagesDirectory is where translation files live inside the source
// directory, one active.<locale>.toml per locale.
const MessagesDirectory = "i18n"

var _ core.Translator = (*Translator)(nil)

// Translator is a thin wrapper around go-i18n's Bundle/Localizer.
type Translator struct {
	bundle          *goi18n.Bundle
	defaultLanguage language.Tag
}

// NewTranslator builds a Translator backed by go-i18n, loading the
// message files of the given locales from the source filesystem. Locales
// without a message file are skipped: records carry most localized text
// themselves, so a site may have no interface translations at all.
func NewTranslator(sourceFS afero.Fs, defaultLocale string, locales []string) (*Translator, error) {
	tag, err := language.Parse(defaultLocale)
	if err != nil {
		return nil, fmt.Errorf("i18n: invalid default locale %q: %w", defaultLocale, err)
	}

	bundle := goi18n.NewBundle(tag)
	bundle.RegisterUnmarshalFunc("toml", toml.Unmarshal)

	fsys := afero.NewIOFS(sourceFS)
	for _, code := range locales {
		filename := fmt.Sprintf("%s/active.%s.toml", MessagesDirectory, code)
		if _, err := fs.Stat(fsys, filename); err != nil {
			continue
		}

		if _, err := bundle.LoadMessageFileFS(fsys, filename); err != nil {
			return nil, fmt.Errorf("i18n: failed to load %s: %w", filename, err)
		}
	}

	return &Translator{
		bundle:          bundle,
		defaultLanguage: tag,
	}, nil
}

// T renders the message identified by key for the given locale. If the
// key/locale is not found, it falls back to the default locale, then
// finally to the key itself.
func (t *Translator) T(locale, key string, data map[string]any) string {
	if key == "" {
		return ""
	}

	languages := []string{}
	if locale != "" {
		languages = append(languages, locale)
	}
	languages = append(languages, t.defaultLanguage.String())

	localizer := goi18n.NewLocalizer(t.bundle, languages...)
	msg, err := localizer.Localize(&goi18n.LocalizeConfig{
		MessageID:    key,
		TemplateData: data,
	})
	if err != nil {
		log.S().Debugw("i18n: localize failed", "key", key, "locales", languages, "error", err)
		return key
	}
	return msg
}
