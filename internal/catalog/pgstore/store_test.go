// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package pgstore

import (
	"context"
	"errors"
	"testing"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starchive/starchive/internal/catalog/resource"
)

// outpost is a minimal entity for exercising the store's query flow.
type outpost struct {
	resource.Base

	Name string `json:"name"`
}

func (o *outpost) NaturalKey() string                       { return o.Name }
func (o *outpost) RelationRefs() map[string][]string        { return nil }
func (o *outpost) ReferenceRefs() map[string]*string        { return nil }
func (o *outpost) SetRelationURLs(field string, urls []string) {}

func (o *outpost) Merge(in *outpost) {
	if in.Name != "" {
		o.Name = in.Name
	}
}

func outpostMapping() Mapping[outpost] {
	return Mapping[outpost]{
		Kind:             resource.KindPlanets,
		Display:          "Outpost",
		Table:            "outposts",
		NaturalKeyColumn: "name",
		Columns:          []string{"name"},
		Values:           func(o *outpost) []any { return []any{o.Name} },
		ScanScalars:      func(o *outpost) []any { return []any{&o.Name} },
	}
}

// emptyRows is a [pgx.Rows] yielding no rows.
type emptyRows struct{}

func (emptyRows) Close()                                       {}
func (emptyRows) Err() error                                   { return nil }
func (emptyRows) CommandTag() pgconn.CommandTag                { return pgconn.CommandTag{} }
func (emptyRows) FieldDescriptions() []pgconn.FieldDescription { return nil }
func (emptyRows) Next() bool                                   { return false }
func (emptyRows) Scan(dest ...any) error                       { return pgx.ErrNoRows }
func (emptyRows) Values() ([]any, error)                       { return nil, nil }
func (emptyRows) RawValues() [][]byte                          { return nil }
func (emptyRows) Conn() *pgx.Conn                              { return nil }

// countRow is a [pgx.Row] scanning a fixed count.
type countRow struct {
	total int
}

func (row countRow) Scan(dest ...any) error {
	if len(dest) != 1 {
		return errors.New("countRow: expected a single destination")
	}
	pointer, ok := dest[0].(*int)
	if !ok {
		return errors.New("countRow: expected *int destination")
	}
	*pointer = row.total
	return nil
}

// fakeQuerier records every statement and serves empty pages plus a fixed
// fallback count.
type fakeQuerier struct {
	statements []string
	total      int
}

func (q *fakeQuerier) Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error) {
	q.statements = append(q.statements, sql)
	return emptyRows{}, nil
}

func (q *fakeQuerier) QueryRow(ctx context.Context, sql string, args ...any) pgx.Row {
	q.statements = append(q.statements, sql)
	return countRow{total: q.total}
}

func (q *fakeQuerier) Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error) {
	return pgconn.CommandTag{}, nil
}

func (q *fakeQuerier) Begin(ctx context.Context) (pgx.Tx, error) {
	return nil, errors.New("fakeQuerier: transactions not supported")
}

func newOutpostStore(q *fakeQuerier) *Store[outpost, *outpost] {
	return &Store[outpost, *outpost]{
		pool:    q,
		mapping: outpostMapping(),
		baseURL: "http://localhost:8080/api/v1",
	}
}

/*
TestStore_List_OffsetPastEnd asserts the total count survives a page offset
beyond the last match: COUNT(*) OVER() rides only on returned rows, so an
empty page past the start must fall back to a dedicated count query.
*/
func TestStore_List_OffsetPastEnd(t *testing.T) {
	querier := &fakeQuerier{total: 57}
	store := newOutpostStore(querier)

	entities, total, err := store.List(context.Background(), "", 20, 40)

	require.NoError(t, err)
	assert.Empty(t, entities)
	assert.Equal(t, 57, total, "an out-of-range page must still report the real total")

	require.Len(t, querier.statements, 2)
	assert.Contains(t, querier.statements[1], "SELECT COUNT(*) FROM outposts")
}

/*
TestStore_List_EmptyFirstPage asserts that a genuinely empty result set on
the first page reports zero without issuing a second query.
*/
func TestStore_List_EmptyFirstPage(t *testing.T) {
	querier := &fakeQuerier{total: 99}
	store := newOutpostStore(querier)

	entities, total, err := store.List(context.Background(), "", 20, 0)

	require.NoError(t, err)
	assert.Empty(t, entities)
	assert.Zero(t, total, "an empty first page means no matches at all")
	assert.Len(t, querier.statements, 1)
}

/*
TestStore_List_FallbackSharesSearchFilter asserts that the fallback count
applies the same folded natural-key filter as the page query.
*/
func TestStore_List_FallbackSharesSearchFilter(t *testing.T) {
	querier := &fakeQuerier{total: 3}
	store := newOutpostStore(querier)

	_, total, err := store.List(context.Background(), "Mos Éisley", 10, 30)

	require.NoError(t, err)
	assert.Equal(t, 3, total)

	require.Len(t, querier.statements, 2)
	filter := "unaccent(lower(r.name)) LIKE"
	assert.Contains(t, querier.statements[0], filter)
	assert.Contains(t, querier.statements[1], filter)
}
