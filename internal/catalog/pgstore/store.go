// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

/*
Package pgstore provides the PostgreSQL implementation of the catalogue's
generic resource storage.

One generic repository serves every resource type; a per-resource [Mapping]
supplies the table layout. The store leans on advanced Postgres features:

  - JSON Aggregation: Relation URL arrays are hydrated with json_agg
    sub-queries in a single round-trip (no N+1).
  - Window Functions: COUNT(*) OVER() returns the total match count without
    a second query.
  - ACID Transactions: Insert-then-patch URL assignment and junction writes
    share one transaction, so a failed link write never leaves a half-created
    resource behind.
  - Batched Writes: Junction rows are replaced through pgx.Batch pipelines.
*/
package pgstore

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/apperr"
	"github.com/starchive/starchive/internal/platform/database/schema"
	"github.com/starchive/starchive/internal/platform/dberr"
	"github.com/starchive/starchive/pkg/slice"
	"github.com/starchive/starchive/pkg/textnorm"
)

// # Table Mappings

// Reference maps a to-one reference field onto its foreign-key column.
type Reference struct {
	// Field is the wire name (e.g. "homeworld").
	Field string
	// Column is the nullable FK column (e.g. "homeworld_id").
	Column string
	// TargetTable is the referenced resource table, used to hydrate the URL.
	TargetTable string
}

// Junction maps a to-many relation field onto its link table, viewed from
// this resource's side.
type Junction struct {
	// Field is the wire name (e.g. "characters", "pilots").
	Field string
	// Link is the junction table with OwnerColumn on this resource's side.
	Link schema.JunctionTable
	// TargetTable is the table of the related resource.
	TargetTable string
}

// Mapping is the static table layout of one resource type. It drives every
// query the generic [Store] builds.
type Mapping[T any] struct {
	Kind    resource.Kind
	Display string
	Table   string

	// NaturalKeyColumn is the uniqueness-bearing column ("title" or "name").
	NaturalKeyColumn string

	// Columns lists the scalar columns excluding id, url, created, edited,
	// and reference FK columns.
	Columns []string

	// Values returns the scalar values of an entity, aligned with Columns.
	Values func(entity *T) []any

	// ScanScalars returns scan destinations aligned with Columns.
	ScanScalars func(entity *T) []any

	// References lists the to-one reference fields, and ScanReferences
	// returns scan destinations for their hydrated URLs, aligned.
	References     []Reference
	ScanReferences func(entity *T) []any

	// Junctions lists the to-many relation fields in response order.
	Junctions []Junction
}

// # Generic Repository

// querier is the subset of [pgxpool.Pool] the store issues queries through.
type querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, arguments ...any) (pgconn.CommandTag, error)
	Begin(ctx context.Context) (pgx.Tx, error)
}

// Store is the PostgreSQL-backed [resource.Store] shared by all resource
// types.
type Store[T any, P resource.Entity[T]] struct {
	pool    querier
	mapping Mapping[T]
	baseURL string
}

// New constructs a store for one resource type.
//
// baseURL is the public API prefix canonical resource URLs are minted under.
func New[T any, P resource.Entity[T]](pool *pgxpool.Pool, mapping Mapping[T], baseURL string) *Store[T, P] {
	return &Store[T, P]{
		pool:    pool,
		mapping: mapping,
		baseURL: baseURL,
	}
}

// selectColumns builds the hydrating SELECT column list: identity, scalars,
// reference URLs, audit columns, then one json_agg per relation field.
func (store *Store[T, P]) selectColumns(withTotal bool) string {
	columns := []string{"r.id", "r.url"}
	columns = append(columns, slice.Map(store.mapping.Columns, func(column string) string {
		return "r." + column
	})...)

	for _, reference := range store.mapping.References {
		columns = append(columns, fmt.Sprintf(
			"(SELECT t.url FROM %s t WHERE t.id = r.%s) AS %s",
			reference.TargetTable, reference.Column, reference.Field,
		))
	}

	columns = append(columns, "r.created", "r.edited")

	if withTotal {
		columns = append(columns, "COUNT(*) OVER() AS total_count")
	}

	for _, junction := range store.mapping.Junctions {
		columns = append(columns, fmt.Sprintf(`COALESCE((
			SELECT json_agg(t.url ORDER BY t.id)
			FROM %s t
			JOIN %s j ON t.id = j.%s
			WHERE j.%s = r.id
		), '[]') AS %s`,
			junction.TargetTable,
			junction.Link.Table, junction.Link.TargetColumn,
			junction.Link.OwnerColumn,
			junction.Field,
		))
	}

	return strings.Join(columns, ", ")
}

// scanRow scans one hydrated row into a fresh entity.
func (store *Store[T, P]) scanRow(row pgx.Row, withTotal bool) (*T, int, error) {
	entity := new(T)
	pointer := P(entity)
	base := pointer.Meta()

	destinations := []any{&base.ID, &base.URL}
	destinations = append(destinations, store.mapping.ScanScalars(entity)...)
	if store.mapping.ScanReferences != nil {
		destinations = append(destinations, store.mapping.ScanReferences(entity)...)
	}
	destinations = append(destinations, &base.Created, &base.Edited)

	var totalCount int
	if withTotal {
		destinations = append(destinations, &totalCount)
	}

	relationJSON := make([][]byte, len(store.mapping.Junctions))
	for index := range store.mapping.Junctions {
		destinations = append(destinations, &relationJSON[index])
	}

	if err := row.Scan(destinations...); err != nil {
		return nil, 0, err
	}

	// Hydrate relation URL arrays from the aggregated JSON.
	for index, junction := range store.mapping.Junctions {
		var urls []string
		if err := json.Unmarshal(relationJSON[index], &urls); err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to unmarshal %s relation: %w", junction.Field, err)
		}
		if urls == nil {
			urls = []string{}
		}
		pointer.SetRelationURLs(junction.Field, urls)
	}

	return entity, totalCount, nil
}

/*
List returns a filtered, paginated slice of entities and the total count.

Description: A single query hydrates scalar columns, reference URLs, and all
relation URL arrays. COUNT(*) OVER() supplies the total without a second
query. The optional search term is folded (lowercased, accents stripped) and
matched against the unaccented natural key with LIKE.

Returns:
  - []*T: one page of hydrated entities
  - int: total count matching the search
  - error: wrapped database execution errors
*/
func (store *Store[T, P]) List(ctx context.Context, search string, limit, offset int) ([]*T, int, error) {
	var queryBuilder strings.Builder
	var args []any
	argID := 1

	queryBuilder.WriteString(fmt.Sprintf("SELECT %s FROM %s r", store.selectColumns(true), store.mapping.Table))

	if search != "" {
		queryBuilder.WriteString(store.searchFilter())
		args = append(args, textnorm.Fold(search))
		argID++
	}

	queryBuilder.WriteString(fmt.Sprintf(" ORDER BY r.id ASC LIMIT $%d OFFSET $%d", argID, argID+1))
	args = append(args, limit, offset)

	rows, err := store.pool.Query(ctx, queryBuilder.String(), args...)
	if err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to list %s: %w", store.mapping.Table, err)
	}
	defer rows.Close()

	var entities []*T
	var totalCount int

	for rows.Next() {
		entity, total, err := store.scanRow(rows, true)
		if err != nil {
			return nil, 0, fmt.Errorf("postgres: failed to scan %s row: %w", store.mapping.Table, err)
		}
		totalCount = total
		entities = append(entities, entity)
	}

	if err := rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("postgres: failed to iterate %s rows: %w", store.mapping.Table, err)
	}

	// COUNT(*) OVER() only rides on returned rows. A page offset past the
	// last match yields zero rows but may still have matches to report.
	if len(entities) == 0 && offset > 0 {
		total, err := store.countMatching(ctx, search)
		if err != nil {
			return nil, 0, err
		}
		totalCount = total
	}

	return entities, totalCount, nil
}

// searchFilter is the WHERE clause shared by [Store.List] and its fallback
// count. The folded search term is always the first query argument.
func (store *Store[T, P]) searchFilter() string {
	return fmt.Sprintf(" WHERE unaccent(lower(r.%s)) LIKE '%%' || $1 || '%%'", store.mapping.NaturalKeyColumn)
}

// countMatching counts all rows matching the search filter, ignoring paging.
func (store *Store[T, P]) countMatching(ctx context.Context, search string) (int, error) {
	var queryBuilder strings.Builder
	queryBuilder.WriteString(fmt.Sprintf("SELECT COUNT(*) FROM %s r", store.mapping.Table))

	var args []any
	if search != "" {
		queryBuilder.WriteString(store.searchFilter())
		args = append(args, textnorm.Fold(search))
	}

	var count int
	if err := store.pool.QueryRow(ctx, queryBuilder.String(), args...).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: failed to count %s: %w", store.mapping.Table, err)
	}

	return count, nil
}

// FindByID retrieves one fully hydrated entity by primary key.
func (store *Store[T, P]) FindByID(ctx context.Context, id int64) (*T, error) {
	query := fmt.Sprintf("SELECT %s FROM %s r WHERE r.id = $1", store.selectColumns(false), store.mapping.Table)

	entity, _, err := store.scanRow(store.pool.QueryRow(ctx, query, id), false)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, apperr.NotFound(store.mapping.Display)
		}
		return nil, fmt.Errorf("postgres: failed to find %s by id: %w", store.mapping.Display, err)
	}

	return entity, nil
}

// CountByNaturalKey returns how many rows carry the given natural key value.
func (store *Store[T, P]) CountByNaturalKey(ctx context.Context, value string) (int, error) {
	query := fmt.Sprintf("SELECT COUNT(*) FROM %s WHERE %s = $1", store.mapping.Table, store.mapping.NaturalKeyColumn)

	var count int
	if err := store.pool.QueryRow(ctx, query, value).Scan(&count); err != nil {
		return 0, fmt.Errorf("postgres: failed to count %s by natural key: %w", store.mapping.Table, err)
	}

	return count, nil
}

// ResolveURL maps a canonical resource URL to its stored id. It backs the
// relation resolver's lookup for this resource kind.
func (store *Store[T, P]) ResolveURL(ctx context.Context, url string) (int64, error) {
	query := fmt.Sprintf("SELECT id FROM %s WHERE url = $1", store.mapping.Table)

	var id int64
	err := store.pool.QueryRow(ctx, query, url).Scan(&id)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return 0, resource.ErrUnresolved
		}
		return 0, fmt.Errorf("postgres: failed to resolve %s url: %w", store.mapping.Table, err)
	}

	return id, nil
}

/*
Create persists a new entity and its resolved links in one transaction.

Description: The row is inserted with an empty URL placeholder, the
database-assigned id is read back via RETURNING, the canonical URL is minted
from it and patched onto the same row, and every present relation field gets
its junction rows batch-inserted. Only then does the transaction commit, so
the insert-then-patch identity scheme can never leak a URL-less row.

Returns:
  - error: Conflict for unique-index races (SQLSTATE 23505), otherwise
    wrapped execution errors. On success the entity carries its id, URL,
    and audit timestamps.
*/
func (store *Store[T, P]) Create(ctx context.Context, entity *T, links *resource.Linkset) error {
	transaction, err := store.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin create transaction: %w", err)
	}
	defer transaction.Rollback(ctx)

	columns := append([]string{}, store.mapping.Columns...)
	values := store.mapping.Values(entity)

	for _, reference := range store.mapping.References {
		columns = append(columns, reference.Column)
		if id, present := links.One[reference.Field]; present {
			values = append(values, id)
		} else {
			values = append(values, nil)
		}
	}

	columns = append(columns, "url")
	values = append(values, "")

	placeholders := make([]string, len(columns))
	for index := range columns {
		placeholders[index] = fmt.Sprintf("$%d", index+1)
	}

	query := fmt.Sprintf("INSERT INTO %s (%s) VALUES (%s) RETURNING id, created, edited",
		store.mapping.Table,
		strings.Join(columns, ", "),
		strings.Join(placeholders, ", "),
	)

	base := P(entity).Meta()
	if err := transaction.QueryRow(ctx, query, values...).Scan(&base.ID, &base.Created, &base.Edited); err != nil {
		return dberr.Wrap(err, "create "+string(store.mapping.Kind))
	}

	// Patch the canonical URL now that the id is known.
	url := resource.URLFor(store.baseURL, store.mapping.Kind, base.ID)
	patchQuery := fmt.Sprintf("UPDATE %s SET url = $1 WHERE id = $2", store.mapping.Table)
	if _, err := transaction.Exec(ctx, patchQuery, url, base.ID); err != nil {
		return fmt.Errorf("postgres: failed to patch %s url: %w", store.mapping.Table, err)
	}

	if !links.IsEmpty() {
		for _, junction := range store.mapping.Junctions {
			ids, present := links.Many[junction.Field]
			if !present || len(ids) == 0 {
				continue
			}
			if err := store.replaceJunction(ctx, transaction, junction, base.ID, ids); err != nil {
				return err
			}
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit create transaction: %w", err)
	}

	P(entity).SetIdentity(base.ID, url)
	return nil
}

/*
Update persists the merged entity and replaces the links of every relation
field present in the payload.

Description: All scalar columns are written with the merged values (the
service applies falsy-skip semantics before calling this), edited is bumped
to NOW() in SQL, and present reference columns are repointed. Junction rows
are replaced wholesale per present relation field — an explicit empty list
clears them — inside the same transaction.

Returns:
  - error: NotFound if the row vanished, Conflict for unique races,
    otherwise wrapped execution errors.
*/
func (store *Store[T, P]) Update(ctx context.Context, entity *T, links *resource.Linkset) error {
	base := P(entity).Meta()

	var setBuilder strings.Builder
	setBuilder.WriteString("edited = NOW()")

	var args []any
	argID := 1

	values := store.mapping.Values(entity)
	for index, column := range store.mapping.Columns {
		setBuilder.WriteString(fmt.Sprintf(", %s = $%d", column, argID))
		args = append(args, values[index])
		argID++
	}

	for _, reference := range store.mapping.References {
		if id, present := links.One[reference.Field]; present {
			setBuilder.WriteString(fmt.Sprintf(", %s = $%d", reference.Column, argID))
			args = append(args, id)
			argID++
		}
	}

	query := fmt.Sprintf("UPDATE %s SET %s WHERE id = $%d RETURNING edited",
		store.mapping.Table, setBuilder.String(), argID)
	args = append(args, base.ID)

	transaction, err := store.pool.Begin(ctx)
	if err != nil {
		return fmt.Errorf("postgres: failed to begin update transaction: %w", err)
	}
	defer transaction.Rollback(ctx)

	if err := transaction.QueryRow(ctx, query, args...).Scan(&base.Edited); err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return apperr.NotFound(store.mapping.Display)
		}
		return dberr.Wrap(err, "update "+string(store.mapping.Kind))
	}

	if !links.IsEmpty() {
		for _, junction := range store.mapping.Junctions {
			ids, present := links.Many[junction.Field]
			if !present {
				continue
			}
			if err := store.replaceJunction(ctx, transaction, junction, base.ID, ids); err != nil {
				return err
			}
		}
	}

	if err := transaction.Commit(ctx); err != nil {
		return fmt.Errorf("postgres: failed to commit update transaction: %w", err)
	}

	return nil
}

// Delete removes the row permanently. Junction rows owned by this resource
// cascade away at the schema level; deleting a row still referenced from a
// non-owning side trips its FK constraint and surfaces as Conflict.
func (store *Store[T, P]) Delete(ctx context.Context, id int64) error {
	query := fmt.Sprintf("DELETE FROM %s WHERE id = $1", store.mapping.Table)

	result, err := store.pool.Exec(ctx, query, id)
	if err != nil {
		return dberr.Wrap(err, "delete "+string(store.mapping.Kind))
	}

	if result.RowsAffected() == 0 {
		return apperr.NotFound(store.mapping.Display)
	}

	return nil
}

/*
replaceJunction synchronizes the link rows of one relation field.

Description: Implements a clear-and-insert strategy: all rows of the parent
id are flushed, then the new ids are queued through a single pgx.Batch
pipeline. Input order is not persisted — link tables are sets; response
ordering comes from the json_agg ORDER BY at read time.
*/
func (store *Store[T, P]) replaceJunction(ctx context.Context, transaction pgx.Tx, junction Junction, ownerID int64, targetIDs []int64) error {
	deleteQuery := fmt.Sprintf("DELETE FROM %s WHERE %s = $1", junction.Link.Table, junction.Link.OwnerColumn)
	if _, err := transaction.Exec(ctx, deleteQuery, ownerID); err != nil {
		return fmt.Errorf("postgres: failed to clear %s: %w", junction.Link.Table, err)
	}

	if len(targetIDs) == 0 {
		return nil
	}

	insertQuery := fmt.Sprintf("INSERT INTO %s (%s, %s) VALUES ($1, $2) ON CONFLICT DO NOTHING",
		junction.Link.Table, junction.Link.OwnerColumn, junction.Link.TargetColumn)

	batch := &pgx.Batch{}
	for _, targetID := range targetIDs {
		batch.Queue(insertQuery, ownerID, targetID)
	}

	response := transaction.SendBatch(ctx, batch)
	if err := response.Close(); err != nil {
		return fmt.Errorf("postgres: failed to batch insert into %s: %w", junction.Link.Table, err)
	}

	return nil
}
