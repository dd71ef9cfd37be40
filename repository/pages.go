package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"

	"github.com/ChurchSite/initializers"
	"github.com/ChurchSite/models"
)

// PageStore adds the slug-keyed operations on top of the generic store.
type PageStore struct {
	Store[models.Page]
}

// GetBySlug returns the page for a normalized slug and whether it exists.
func (s PageStore) GetBySlug(ctx context.Context, slug string) (models.Page, bool, error) {
	var page models.Page
	found, err := s.dataset().
		Where(goqu.I("page.slug").Eq(slug)).
		ScanStructContext(ctx, &page)
	return page, found, err
}

// DeleteBySlug removes the page for a normalized slug.
// Returns false when the slug is unknown.
func (s PageStore) DeleteBySlug(ctx context.Context, slug string) (bool, error) {
	result, err := initializers.DB.Delete(s.Table).
		Where(goqu.C("slug").Eq(slug)).
		Executor().
		ExecContext(ctx)
	if err != nil {
		return false, err
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return false, err
	}
	return affected > 0, nil
}

// Upsert creates the page if the slug is unseen, otherwise replaces its
// content fields. The insert races on the slug UNIQUE constraint rather
// than on a read-then-write check, so two concurrent upserts on an unseen
// slug can never produce two rows. Returns whether a new row was created.
func (s PageStore) Upsert(ctx context.Context, slug, title, content string, editorID int) (bool, error) {
	var id int
	inserted, err := initializers.DB.Insert(s.Table).
		Rows(goqu.Record{
			"slug":       slug,
			"title":      title,
			"content":    content,
			"updated_by": editorID,
		}).
		OnConflict(goqu.DoNothing()).
		Returning(goqu.C(s.IDColumn)).
		Executor().
		ScanValContext(ctx, &id)
	if err != nil {
		return false, err
	}
	if inserted {
		return true, nil
	}

	// The slug already exists; replace its content fields in place.
	_, err = initializers.DB.Update(s.Table).
		Set(goqu.Record{
			"title":           title,
			"content":         content,
			"updated_by":      editorID,
			"datetime_update": goqu.L("now()"),
		}).
		Where(goqu.C("slug").Eq(slug)).
		Executor().
		ExecContext(ctx)
	return false, err
}
