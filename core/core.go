package core

import (
	"sync"

	"github.com/spf13/afero"
)

type Core struct {
	cfg *Config

	// Source
	sourceFS *afero.Afero

	// Content
	collectionsMu sync.Mutex
	collections   *Collections

	translator Translator

	// Build
	buildMu   sync.Mutex
	buildFS   *afero.Afero // afero around [ServerConfig.PublicDirectory]
	buildName string       // the name of the current build (sub-directory in buildFS)
	BuildHook func(string) // called when the build directory has changed
}

func NewCore(cfg *Config) (*Core, error) {
	co := &Core{
		cfg: cfg,

		// Source
		sourceFS: &afero.Afero{
			Fs: afero.NewBasePathFs(afero.NewOsFs(), cfg.SourceDirectory),
		},

		// Build
		buildFS: &afero.Afero{
			Fs: afero.NewBasePathFs(afero.NewOsFs(), cfg.PublicDirectory),
		},
	}

	return co, nil
}

func (co *Core) Config() *Config {
	return co.cfg
}

// SourceFS exposes the source directory filesystem. Collaborators, such as
// the template loader and the translations bundle, read from it directly.
func (co *Core) SourceFS() *afero.Afero {
	return co.sourceFS
}

// SetTranslator attaches the translation backend used when building
// render contexts. It must be called before any page is rendered.
func (co *Core) SetTranslator(t Translator) {
	co.translator = t
}
