// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

/*
Package resource implements the shared lifecycle machinery for every
catalogue resource (films, people, planets, species, starships, vehicles,
images).

All resources obey the same pattern: a natural-key guarded create, URL-based
relation fields resolved to stored ids, falsy-skip partial updates, and hard
deletes. Instead of repeating that pattern per type, this package provides a
single generic [Service] parameterized by a [Descriptor] and a [Store], which
each resource package instantiates with its own entity type.

Architecture:

  - Descriptor: static metadata (kind, natural key, relation fields).
  - Identity: canonical URL minting and parsing (identity.go).
  - Resolver: concurrent URL-to-id resolution across resource kinds (resolver.go).
  - Service: the generic create/read/update/delete lifecycle (service.go).
*/
package resource

import (
	"context"
	"encoding/json"
	"errors"
	"time"
)

// # Resource Kinds

// Kind is the plural, lowercase wire name of a resource collection. It is
// also the path segment of canonical resource URLs.
type Kind string

const (
	KindFilms     Kind = "films"
	KindPeople    Kind = "people"
	KindPlanets   Kind = "planets"
	KindSpecies   Kind = "species"
	KindStarships Kind = "starships"
	KindVehicles  Kind = "vehicles"
	KindImages    Kind = "images"
)

// # Descriptors

// RelationField declares a single relation field of a resource: its wire
// name and the kind of resource its URLs must resolve against.
type RelationField struct {
	Name   string
	Target Kind
}

// Descriptor holds the static metadata the generic lifecycle needs to
// operate on a resource type.
type Descriptor struct {
	// Kind is the collection name ("films", "people", ...).
	Kind Kind
	// Display is the singular human-readable name used in error messages.
	Display string
	// NaturalKey is the wire name of the uniqueness-bearing field.
	NaturalKey string
	// Relations lists the to-many relation fields (arrays of URLs).
	Relations []RelationField
	// References lists the to-one reference fields (single URL or null).
	References []RelationField
}

// # Resolved Links

// Linkset carries relation URLs resolved to stored ids, keyed by field name.
//
// A key is present exactly when the corresponding field was present in the
// input payload; an absent key means the stored links must not be touched.
type Linkset struct {
	Many map[string][]int64
	One  map[string]int64
}

// IsEmpty reports whether no relation field was present in the input.
func (l *Linkset) IsEmpty() bool {
	return l == nil || (len(l.Many) == 0 && len(l.One) == 0)
}

// # Reference Lists

// Shape errors reported by [RefList.UnmarshalJSON]. The REST layer maps
// them onto the 422 reference-error taxonomy.
var (
	// ErrNestedReferenceList signals a list element that is itself a list.
	ErrNestedReferenceList = errors.New("resource: nested reference lists are not supported")
	// ErrNonStringReference signals a list element that is not a string.
	ErrNonStringReference = errors.New("resource: reference must be a URL string")
)

// RefList is a relation field on the wire: a flat JSON array of canonical
// resource URLs.
//
// A nil RefList means the field was absent from the payload; an empty
// non-nil RefList is an explicit empty list that clears the stored links.
// A JSON null decodes as absent, not as a clear.
type RefList []string

// UnmarshalJSON decodes a flat array of URL strings. Nested arrays and
// non-string elements are rejected with typed errors so the HTTP layer can
// respond with the precise 422 reason instead of a generic decode failure.
func (l *RefList) UnmarshalJSON(data []byte) error {
	// The literal null is a no-op per the encoding/json Unmarshaler
	// convention: the field stays absent.
	if string(data) == "null" {
		return nil
	}

	var raw []json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return ErrNonStringReference
	}

	urls := make([]string, 0, len(raw))
	for _, element := range raw {
		var url string
		if err := json.Unmarshal(element, &url); err != nil {
			if len(element) > 0 && element[0] == '[' {
				return ErrNestedReferenceList
			}
			return ErrNonStringReference
		}
		urls = append(urls, url)
	}

	*l = urls
	return nil
}

// # Entity Contract

// Base carries the identity and audit columns every catalogue row shares.
// Resource entities embed it to satisfy most of the [Entity] contract.
type Base struct {
	ID      int64     `json:"id"`
	URL     string    `json:"url"`
	Created time.Time `json:"created"`
	Edited  time.Time `json:"edited"`
}

// Identity returns the stored id, or 0 for an unsaved entity.
func (b *Base) Identity() int64 { return b.ID }

// SetIdentity records the assigned id and canonical URL after insert.
func (b *Base) SetIdentity(id int64, url string) {
	b.ID = id
	b.URL = url
}

// Stamp records the storage-assigned audit timestamps.
func (b *Base) Stamp(created, edited time.Time) {
	b.Created = created
	b.Edited = edited
}

// Meta exposes the embedded Base for generic code.
func (b *Base) Meta() *Base { return b }

// Entity is the contract a resource type must satisfy to flow through the
// generic [Service]. The pointer constraint lets the service allocate,
// mutate, and merge entities without reflection.
type Entity[T any] interface {
	*T

	Identity() int64
	SetIdentity(id int64, url string)
	Stamp(created, edited time.Time)
	Meta() *Base

	// NaturalKey returns the current value of the uniqueness-bearing field.
	NaturalKey() string

	// RelationRefs returns the to-many relation URLs keyed by field name.
	// A nil slice marks an absent field, an empty slice an explicit clear.
	RelationRefs() map[string][]string

	// ReferenceRefs returns the to-one reference URLs keyed by field name.
	// A nil pointer marks an absent field.
	ReferenceRefs() map[string]*string

	// SetRelationURLs overwrites the named relation field with the given
	// URLs, preserving order. Used to reflect applied updates back onto the
	// hydrated entity.
	SetRelationURLs(field string, urls []string)

	// Merge applies a partial update onto the receiver. Present-but-falsy
	// scalar fields (empty strings, zero numbers) are skipped.
	Merge(in *T)
}

// # Storage Contract

// Store is the persistence collaborator of the generic [Service]. One
// implementation backed by PostgreSQL serves every resource type.
type Store[T any] interface {
	// List returns one page of entities plus the total match count.
	// search filters on the natural key; empty means no filter.
	List(ctx context.Context, search string, limit, offset int) ([]*T, int, error)

	// FindByID returns the fully hydrated entity or a NotFound error.
	FindByID(ctx context.Context, id int64) (*T, error)

	// CountByNaturalKey returns how many rows carry the given natural key.
	CountByNaturalKey(ctx context.Context, value string) (int, error)

	// Create persists the entity and its resolved links in one transaction,
	// assigning id, url, and audit timestamps onto the entity.
	Create(ctx context.Context, entity *T, links *Linkset) error

	// Update persists changed scalar columns and replaces the link rows of
	// every relation field present in links, bumping the edited timestamp.
	Update(ctx context.Context, entity *T, links *Linkset) error

	// Delete removes the row. Links owned by the entity cascade away;
	// a row still referenced from a non-owning side fails with a conflict.
	Delete(ctx context.Context, id int64) error
}
