// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package resource

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/starchive/starchive/internal/platform/apperr"
)

// Config bundles the collaborators of a generic resource [Service].
type Config[T any] struct {
	Descriptor Descriptor
	Store      Store[T]
	Resolver   *Resolver
	Logger     *slog.Logger

	// Validate checks the semantic validity of a fully merged entity.
	// It runs before any storage write.
	Validate func(*T) error
}

// Service is the single generic lifecycle implementation shared by every
// catalogue resource. The type parameter P gives the service access to the
// [Entity] contract on *T without reflection.
type Service[T any, P Entity[T]] struct {
	descriptor Descriptor
	store      Store[T]
	resolver   *Resolver
	logger     *slog.Logger
	validate   func(*T) error
}

// NewService wires a lifecycle service for one resource type.
func NewService[T any, P Entity[T]](cfg Config[T]) *Service[T, P] {
	return &Service[T, P]{
		descriptor: cfg.Descriptor,
		store:      cfg.Store,
		resolver:   cfg.Resolver,
		logger:     cfg.Logger,
		validate:   cfg.Validate,
	}
}

// Descriptor exposes the resource metadata, mainly for the HTTP layer.
func (service *Service[T, P]) Descriptor() Descriptor {
	return service.descriptor
}

/*
Create validates, resolves, and persists a new entity.

Flow:
 1. Semantic validation of the payload.
 2. Natural-key duplicate pre-check (fast 409; the storage unique index
    remains the authoritative guard).
 3. Concurrent resolution of every present relation URL.
 4. Single-transaction insert with URL patch and link rows.

Returns:
  - *T: the stored entity with id, canonical URL, and timestamps assigned.
  - error: ValidationError, Conflict, DanglingReference, Transient, or a
    wrapped storage error.
*/
func (service *Service[T, P]) Create(ctx context.Context, in *T) (*T, error) {
	entity := P(in)

	if err := service.validate(in); err != nil {
		return nil, err
	}

	duplicates, err := service.store.CountByNaturalKey(ctx, entity.NaturalKey())
	if err != nil {
		return nil, err
	}
	if duplicates > 0 {
		return nil, service.duplicateError(entity.NaturalKey())
	}

	links, err := service.resolver.Resolve(ctx, service.descriptor, entity.RelationRefs(), entity.ReferenceRefs())
	if err != nil {
		return nil, err
	}

	if err := service.store.Create(ctx, in, links); err != nil {
		return nil, err
	}

	service.logger.InfoContext(ctx, "resource_created",
		slog.String("kind", string(service.descriptor.Kind)),
		slog.Int64("id", entity.Identity()),
		slog.String(service.descriptor.NaturalKey, entity.NaturalKey()),
	)

	return in, nil
}

// Get returns one fully hydrated entity by id.
func (service *Service[T, P]) Get(ctx context.Context, id int64) (*T, error) {
	return service.store.FindByID(ctx, id)
}

// List returns one page of entities plus the total match count. search
// filters on the natural key and may be empty.
func (service *Service[T, P]) List(ctx context.Context, search string, limit, offset int) ([]*T, int, error) {
	return service.store.List(ctx, search, limit, offset)
}

/*
Update applies a partial update onto a stored entity.

Merge semantics are falsy-skip: scalar fields carrying their zero value in
the payload leave the stored value untouched. Relation fields are replaced
wholesale when present and left untouched when absent; an explicit empty
list clears the stored links.

Returns:
  - *T: the merged entity with its edited timestamp bumped.
  - error: NotFound if id is unknown, otherwise the same taxonomy as Create.
*/
func (service *Service[T, P]) Update(ctx context.Context, id int64, in *T) (*T, error) {
	existing, err := service.store.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}

	// Relation presence is read off the raw payload before merging; the
	// merged entity carries hydrated URLs for absent fields and would
	// otherwise rewrite links that were never mentioned.
	many := P(in).RelationRefs()
	one := P(in).ReferenceRefs()

	// A natural-key change must not collide with another row.
	incomingKey := P(in).NaturalKey()
	if incomingKey != "" && incomingKey != P(existing).NaturalKey() {
		duplicates, err := service.store.CountByNaturalKey(ctx, incomingKey)
		if err != nil {
			return nil, err
		}
		if duplicates > 0 {
			return nil, service.duplicateError(incomingKey)
		}
	}

	P(existing).Merge(in)

	if err := service.validate(existing); err != nil {
		return nil, err
	}

	links, err := service.resolver.Resolve(ctx, service.descriptor, many, one)
	if err != nil {
		return nil, err
	}

	if err := service.store.Update(ctx, existing, links); err != nil {
		return nil, err
	}

	// Reflect the applied relation replacements back onto the entity the
	// client receives.
	for field, urls := range many {
		if urls != nil {
			P(existing).SetRelationURLs(field, urls)
		}
	}

	service.logger.InfoContext(ctx, "resource_updated",
		slog.String("kind", string(service.descriptor.Kind)),
		slog.Int64("id", id),
	)

	return existing, nil
}

// Delete removes an entity by id. Unknown ids yield NotFound; rows still
// referenced from a non-owning relation side surface as Conflict.
func (service *Service[T, P]) Delete(ctx context.Context, id int64) error {
	if _, err := service.store.FindByID(ctx, id); err != nil {
		return err
	}

	if err := service.store.Delete(ctx, id); err != nil {
		return err
	}

	service.logger.InfoContext(ctx, "resource_deleted",
		slog.String("kind", string(service.descriptor.Kind)),
		slog.Int64("id", id),
	)

	return nil
}

// duplicateError builds the uniform 409 for natural-key collisions.
func (service *Service[T, P]) duplicateError(value string) error {
	return apperr.Conflict(fmt.Sprintf("%s with %s %q already exists",
		service.descriptor.Display, service.descriptor.NaturalKey, value))
}
