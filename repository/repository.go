// Package repository provides the shared CRUD contract over content tables.
// Each content type instantiates one Store; Page adds slug operations on top.
package repository

import (
	"context"

	"github.com/doug-martin/goqu/v9"
	"github.com/doug-martin/goqu/v9/exp"

	"github.com/ChurchSite/initializers"
)

// CreatorJoin describes the users join that resolves a record's attribution
// column into the display-safe projection (id, name, email).
type CreatorJoin struct {
	// Column is the foreign key column on the content table.
	Column string
	// Alias is the nested struct field the projection scans into,
	// e.g. "creator" for a model field named Creator.
	Alias string
}

// Store is the generic repository instantiated once per content type.
// It reads initializers.DB at call time so tests can swap the database.
type Store[T any] struct {
	Table    string
	IDColumn string
	Creator  *CreatorJoin
	Ordering []exp.OrderedExpression
}

func (s Store[T]) dataset() *goqu.SelectDataset {
	ds := initializers.DB.From(s.Table)
	cols := []interface{}{goqu.T(s.Table).All()}

	if s.Creator != nil {
		cols = append(cols,
			goqu.I("users.user_id").As(goqu.C(s.Creator.Alias+".user_id")),
			goqu.I("users.name").As(goqu.C(s.Creator.Alias+".name")),
			goqu.I("users.email").As(goqu.C(s.Creator.Alias+".email")),
		)
		ds = ds.LeftJoin(
			goqu.T("users"),
			goqu.On(goqu.Ex{s.Table + "." + s.Creator.Column: goqu.I("users.user_id")}),
		)
	}

	return ds.Select(cols...)
}

// List returns all records matching the given filters in the store's
// type-specific order. Filters come from the visibility policy.
func (s Store[T]) List(ctx context.Context, filters ...exp.Expression) ([]T, error) {
	ds := s.dataset()
	if len(filters) > 0 {
		ds = ds.Where(filters...)
	}
	if len(s.Ordering) > 0 {
		ds = ds.Order(s.Ordering...)
	}

	var records []T
	if err := ds.ScanStructsContext(ctx, &records); err != nil {
		return nil, err
	}
	return records, nil
}

// GetByID returns the record and whether it exists.
func (s Store[T]) GetByID(ctx context.Context, id int) (T, bool, error) {
	var record T
	found, err := s.dataset().
		Where(goqu.I(s.Table + "." + s.IDColumn).Eq(id)).
		ScanStructContext(ctx, &record)
	return record, found, err
}

// Insert persists the given columns and returns the new record's id.
func (s Store[T]) Insert(ctx context.Context, record goqu.Record) (int, error) {
	var id int
	_, err := initializers.DB.Insert(s.Table).
		Rows(record).
		Returning(goqu.C(s.IDColumn)).
		Executor().
		ScanValContext(ctx, &id)
	return id, err
}

// Update applies a partial change set. Omitted columns are untouched.
// Returns false when no row has the given id.
func (s Store[T]) Update(ctx context.Context, id int, changes goqu.Record) (bool, error) {
	changes["datetime_update"] = goqu.L("now()")

	result, err := initializers.DB.Update(s.Table).
		Set(changes).
		Where(goqu.C(s.IDColumn).Eq(id)).
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

// Delete removes the record. Returns false when no row has the given id.
func (s Store[T]) Delete(ctx context.Context, id int) (bool, error) {
	result, err := initializers.DB.Delete(s.Table).
		Where(goqu.C(s.IDColumn).Eq(id)).
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
