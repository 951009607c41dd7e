package core

import (
	"context"
	"fmt"

	"github.com/samber/lo"
)

// ContentNotFoundError means both the localized and the base lookup were
// exhausted without a match. A mandatory record missing from the store is
// a content-authoring defect, so the error is propagated and the affected
// page render aborts; nothing is retried.
type ContentNotFoundError struct {
	Collection string
	ID         string
	Locale     string
}

func (e *ContentNotFoundError) Error() string {
	return fmt.Sprintf("content not found: collection %q has no record %q for locale %q", e.Collection, e.ID, e.Locale)
}

// ResolveRecord returns the record of a collection appropriate for the
// active locale. Under a non-primary locale, the locale's own records are
// tried first, then its configured fallbacks, and finally the base
// record; under the primary locale the base record is looked up directly.
// The returned record always has exactly the requested identifier.
func (co *Core) ResolveRecord(ctx context.Context, collection, id string) (*Record, error) {
	rc, err := RenderContextFrom(ctx)
	if err != nil {
		return nil, err
	}

	cc, err := co.Collections()
	if err != nil {
		return nil, err
	}

	for _, key := range rc.lookupKeys(id) {
		if r, ok := cc.GetRecord(collection, key); ok {
			return r, nil
		}
	}

	return nil, &ContentNotFoundError{
		Collection: collection,
		ID:         id,
		Locale:     rc.Locale.Code,
	}
}

func (rc *RenderContext) lookupKeys(id string) []RecordKey {
	keys := []RecordKey{}

	if !rc.Locale.Primary() {
		codes := lo.Uniq(append([]string{rc.Locale.Code}, rc.Locale.Fallbacks...))
		for _, code := range codes {
			keys = append(keys, RecordKey{ID: id, Locale: code})
		}
	}

	return append(keys, RecordKey{ID: id})
}

// ResolveCollection resolves every record of a collection for the active
// locale, in display order. The base records define which identifiers
// exist; each one goes through the usual localized resolution.
func (co *Core) ResolveCollection(ctx context.Context, collection string) (Records, error) {
	cc, err := co.Collections()
	if err != nil {
		return nil, err
	}

	rr := Records{}
	for _, id := range cc.BaseIDs(collection) {
		r, err := co.ResolveRecord(ctx, collection, id)
		if err != nil {
			return nil, err
		}
		rr = append(rr, r)
	}

	return rr, nil
}

func (co *Core) ResolveSkill(ctx context.Context, id string) (*Record, error) {
	return co.ResolveRecord(ctx, CollectionSkills, id)
}

func (co *Core) ResolveJob(ctx context.Context, id string) (*Record, error) {
	return co.ResolveRecord(ctx, CollectionJobs, id)
}

func (co *Core) ResolveAchievement(ctx context.Context, id string) (*Record, error) {
	return co.ResolveRecord(ctx, CollectionAchievements, id)
}

func (co *Core) ResolveEducation(ctx context.Context, id string) (*Record, error) {
	return co.ResolveRecord(ctx, CollectionEducation, id)
}

func (co *Core) ResolveFavorite(ctx context.Context, id string) (*Record, error) {
	return co.ResolveRecord(ctx, CollectionFavorites, id)
}

func (co *Core) ResolveInterest(ctx context.Context, id string) (*Record, error) {
	return co.ResolveRecord(ctx, CollectionInterests, id)
}
