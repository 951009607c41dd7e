package core

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeTranslator struct {
	calls []string
}

func (f *fakeTranslator) T(locale, key string, data map[string]any) string {
	f.calls = append(f.calls, locale+"/"+key)
	return "[" + locale + "] " + key
}

func TestRenderContextFrom(t *testing.T) {
	co := testCore(t, nil)

	_, err := RenderContextFrom(context.Background())
	assert.ErrorIs(t, err, ErrNoRenderContext)

	rc := co.testRenderContext(t, "en")
	got, err := RenderContextFrom(WithRenderContext(context.Background(), rc))
	require.NoError(t, err)
	assert.Same(t, rc, got)
}

func TestNewRenderContextDateFormat(t *testing.T) {
	co := testCore(t, nil)

	// Site default applies when the locale has no pattern of its own.
	rc := co.testRenderContext(t, "en")
	assert.Equal(t, defaultDateFormat, rc.DateFormat)

	locale, _ := co.cfg.Site.Locale("es")
	locale.DateFormat = "dd/MM/yyyy"
	rc = co.testRenderContext(t, "es")
	assert.Equal(t, "dd/MM/yyyy", rc.DateFormat)
}

func TestNewRenderContextTranslate(t *testing.T) {
	co := testCore(t, nil)

	// Without a translator the key itself comes back.
	rc := co.testRenderContext(t, "es")
	assert.Equal(t, "sections.skills", rc.Translate("sections.skills", nil))

	fake := &fakeTranslator{}
	co.SetTranslator(fake)

	rc = co.testRenderContext(t, "es")
	assert.Equal(t, "[es] sections.skills", rc.Translate("sections.skills", nil))
	assert.Equal(t, []string{"es/sections.skills"}, fake.calls)
}
