package core

import (
	"context"
	"errors"
)

// Translator exposes a minimal i18n contract for localized interface text.
// Implementations provide message lookup + templating for a given locale.
type Translator interface {
	T(locale, key string, data map[string]any) string
}

type TranslateFunc func(key string, data map[string]any) string

// RenderContext carries the per-page-render configuration: the active
// locale, the date pattern, and the translation function. It is created
// once per page render and must not be mutated afterwards. Each render
// owns its own instance; nothing is shared across renders.
type RenderContext struct {
	Locale     *Locale
	DateFormat string
	Translate  TranslateFunc
}

// NewRenderContext builds the render context for the given locale. The
// date pattern is the locale's own, falling back to the site default.
func (co *Core) NewRenderContext(locale *Locale) *RenderContext {
	pattern := locale.DateFormat
	if pattern == "" {
		pattern = co.cfg.Site.DateFormat
	}

	translator := co.translator

	return &RenderContext{
		Locale:     locale,
		DateFormat: pattern,
		Translate: func(key string, data map[string]any) string {
			if translator == nil {
				return key
			}
			return translator.T(locale.Code, key, data)
		},
	}
}

type contextKey string

const renderContextKey contextKey = "renderContext"

// ErrNoRenderContext is returned when a render-scoped operation runs on a
// context that was never given a [RenderContext]. This is a pipeline wiring
// defect: the caller must attach the context before rendering starts, and
// there is no sensible default to fall back to.
var ErrNoRenderContext = errors.New("render context has not been initialized")

// WithRenderContext attaches rc to ctx for the duration of a page render.
func WithRenderContext(ctx context.Context, rc *RenderContext) context.Context {
	return context.WithValue(ctx, renderContextKey, rc)
}

// RenderContextFrom retrieves the active [RenderContext], failing with
// [ErrNoRenderContext] when none was attached.
func RenderContextFrom(ctx context.Context) (*RenderContext, error) {
	rc, ok := ctx.Value(renderContextKey).(*RenderContext)
	if !ok || rc == nil {
		return nil, ErrNoRenderContext
	}

	return rc, nil
}
