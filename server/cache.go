package server

import (
	"net/http"
	"time"

	"github.com/maypok86/otter/v2"
)

func setCacheControl(w http.ResponseWriter, isHTML bool) {
	if isHTML {
		w.Header().Set("Cache-Control", "no-cache, no-store, max-age=0")
	} else {
		w.Header().Set("Cache-Control", "public, max-age=15552000")
	}
}

// pageCache keeps the rendered HTML pages of the current build in memory.
// It is flushed whenever the build directory changes.
type pageCache struct {
	cache *otter.Cache[string, []byte]
}

func newPageCache() *pageCache {
	return &pageCache{
		cache: otter.Must(&otter.Options[string, []byte]{
			MaximumSize:      512,
			ExpiryCalculator: otter.ExpiryWriting[string, []byte](time.Hour * 24),
		}),
	}
}

func (p *pageCache) get(path string) ([]byte, bool) {
	return p.cache.GetIfPresent(path)
}

func (p *pageCache) put(path string, data []byte) {
	p.cache.Set(path, data)
}

func (p *pageCache) clear() {
	p.cache.InvalidateAll()
}
