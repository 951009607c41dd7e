package core

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path"
	"sort"
	"strings"
	"time"

	"github.com/karlseguin/typed"
	"github.com/samber/lo"
	"gopkg.in/yaml.v3"
)

const (
	ContentDirectory string = "content"
	StaticDirectory  string = "static"
)

// The collections a résumé is made of. Content lives in
// content/<collection>/<id>.md, with translated overrides next to the
// base record as <id>.<locale>.md.
const (
	CollectionSkills       string = "skills"
	CollectionJobs         string = "jobs"
	CollectionAchievements string = "achievements"
	CollectionEducation    string = "education"
	CollectionFavorites    string = "favorites"
	CollectionInterests    string = "interests"
)

var CollectionNames = []string{
	CollectionSkills,
	CollectionJobs,
	CollectionAchievements,
	CollectionEducation,
	CollectionFavorites,
	CollectionInterests,
}

type FrontMatter struct {
	Title       string         `yaml:"title,omitempty"`
	Description string         `yaml:"description,omitempty"`
	Draft       bool           `yaml:"draft,omitempty"`
	Date        time.Time      `yaml:"date,omitempty"`
	EndDate     time.Time      `yaml:"endDate,omitempty"`
	Order       int            `yaml:"order,omitempty"`
	Other       map[string]any `yaml:",inline"`
}

// Record is one content record of a collection. ID never contains a
// locale marker; Locale is empty for primary-locale records.
type Record struct {
	FrontMatter
	Collection string
	ID         string
	Locale     string
	Content    string
}

// Key returns the lookup key of this record within its collection.
func (r *Record) Key() RecordKey {
	return RecordKey{ID: r.ID, Locale: r.Locale}
}

// Ongoing reports whether the record describes something still current,
// like a present job or degree in progress.
func (r *Record) Ongoing() bool {
	return !r.Date.IsZero() && r.EndDate.IsZero()
}

func (r *Record) Taxonomy(taxonomy string) []string {
	return typed.New(r.Other).Strings(taxonomy)
}

func (r *Record) Summary() string {
	if r.Description != "" {
		return r.Description
	}

	return truncateStringWithEllipsis(makePlainText(r.Content), 300)
}

func (r *Record) String() (string, error) {
	var buf bytes.Buffer
	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	err := enc.Encode(&r.FrontMatter)
	if err != nil {
		return "", err
	}

	text := fmt.Sprintf("---\n%s---\n\n%s\n", buf.String(), strings.TrimSpace(r.Content))
	text = strings.TrimSpace(text) + "\n"
	return normalizeNewlines(text), nil
}

type Records []*Record

// RecordKey is the two-field lookup key of a content record: the bare
// identifier plus the locale code, empty for the primary locale.
type RecordKey struct {
	ID     string
	Locale string
}

// Collections is the in-memory content store: records grouped by
// collection, addressable by exact [RecordKey]. Absence is reported as a
// boolean, never as an error, so callers can distinguish "try a fallback"
// from a store failure.
type Collections struct {
	records map[string]map[RecordKey]*Record
}

// GetRecord returns the record stored under the exact key, if any.
func (cc *Collections) GetRecord(collection string, key RecordKey) (*Record, bool) {
	r, ok := cc.records[collection][key]
	return r, ok
}

// BaseIDs returns the identifiers of all primary-locale records of a
// collection, in display order.
func (cc *Collections) BaseIDs(collection string) []string {
	rr := lo.Filter(lo.Values(cc.records[collection]), func(r *Record, _ int) bool {
		return r.Locale == ""
	})

	sort.SliceStable(rr, func(i, j int) bool {
		if rr[i].Order != rr[j].Order {
			return rr[i].Order < rr[j].Order
		}
		if !rr[i].Date.Equal(rr[j].Date) {
			return rr[i].Date.After(rr[j].Date)
		}
		return rr[i].ID < rr[j].ID
	})

	return lo.Map(rr, func(r *Record, _ int) string {
		return r.ID
	})
}

// Orphans returns the keys of localized overrides whose base record is
// missing. Those never show up in listings, which usually means a typo in
// the identifier or a base record that was removed.
func (cc *Collections) Orphans(collection string) []RecordKey {
	keys := []RecordKey{}
	for key := range cc.records[collection] {
		if key.Locale == "" {
			continue
		}
		if _, ok := cc.records[collection][RecordKey{ID: key.ID}]; !ok {
			keys = append(keys, key)
		}
	}

	sort.Slice(keys, func(i, j int) bool {
		if keys[i].ID != keys[j].ID {
			return keys[i].ID < keys[j].ID
		}
		return keys[i].Locale < keys[j].Locale
	})

	return keys
}

func (cc *Collections) Names() []string {
	names := lo.Keys(cc.records)
	sort.Strings(names)
	return names
}

func (cc *Collections) add(r *Record) {
	if _, ok := cc.records[r.Collection]; !ok {
		cc.records[r.Collection] = map[RecordKey]*Record{}
	}

	cc.records[r.Collection][r.Key()] = r
}

// Collections returns the content store, loading it from the source
// directory on first use.
func (co *Core) Collections() (*Collections, error) {
	co.collectionsMu.Lock()
	defer co.collectionsMu.Unlock()

	if co.collections == nil {
		cc, err := co.loadCollections()
		if err != nil {
			return nil, err
		}
		co.collections = cc
	}

	return co.collections, nil
}

// ReloadCollections drops the memoized store so the next lookup re-reads
// the source directory. Used after content changes in development.
func (co *Core) ReloadCollections() {
	co.collectionsMu.Lock()
	defer co.collectionsMu.Unlock()
	co.collections = nil
}

func (co *Core) loadCollections() (*Collections, error) {
	cc := &Collections{records: map[string]map[RecordKey]*Record{}}

	err := co.sourceFS.Walk(ContentDirectory, func(p string, info os.FileInfo, err error) error {
		if err != nil {
			return err
		}

		if info.IsDir() || !strings.HasSuffix(p, ".md") {
			return nil
		}

		rel := strings.TrimPrefix(p, ContentDirectory)
		rel = strings.TrimPrefix(rel, "/")

		parts := strings.SplitN(path.Clean(rel), "/", 2)
		if len(parts) != 2 {
			// Files directly under content/ belong to no collection.
			return nil
		}

		collection := parts[0]
		id, locale := co.splitLocaleMarker(strings.TrimSuffix(path.Base(parts[1]), ".md"))

		raw, err := co.sourceFS.ReadFile(p)
		if err != nil {
			return err
		}

		r, err := parseRecord(collection, id, locale, string(raw))
		if err != nil {
			return fmt.Errorf("could not parse %s: %w", p, err)
		}

		if r.Draft {
			return nil
		}

		cc.add(r)
		return nil
	})
	if err != nil {
		return nil, err
	}

	return cc, nil
}

// splitLocaleMarker splits a file basename into identifier and locale
// code. Only configured, non-primary locale codes count as markers, so an
// identifier may itself contain dots or locale-looking segments.
func (co *Core) splitLocaleMarker(base string) (string, string) {
	i := strings.LastIndex(base, ".")
	if i < 0 {
		return base, ""
	}

	code := base[i+1:]
	if locale, ok := co.cfg.Site.Locale(code); ok && !locale.Primary() {
		return base[:i], code
	}

	return base, ""
}

func parseRecord(collection, id, locale, raw string) (*Record, error) {
	splits := strings.SplitN(raw, "\n---", 2)
	if len(splits) != 2 {
		return nil, errors.New("could not parse file: splits !== 2")
	}

	fr := &FrontMatter{}
	err := yaml.Unmarshal([]byte(splits[0]), &fr)
	if err != nil {
		return nil, err
	}

	content := strings.TrimSpace(splits[1])
	if content != "" {
		// Fixes issue where goldmark is adding a <blockquote>
		// if the document ends with an HTML tag.
		content += "\n"
	}

	return &Record{
		Collection:  collection,
		ID:          id,
		Locale:      locale,
		Content:     content,
		FrontMatter: *fr,
	}, nil
}
