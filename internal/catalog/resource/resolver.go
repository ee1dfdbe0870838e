// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package resource

import (
	"context"
	"errors"
	"fmt"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/starchive/starchive/internal/platform/apperr"
	"github.com/starchive/starchive/internal/platform/constants"
)

// ErrUnresolved is the sentinel a [Lookup] returns when the URL does not
// correspond to any stored row of its kind.
var ErrUnresolved = errors.New("resource: reference does not resolve")

// Lookup resolves one canonical URL to the id of a stored row of a single
// resource kind. It returns [ErrUnresolved] for unknown URLs.
type Lookup func(ctx context.Context, url string) (int64, error)

// Registry maps every resource kind to its lookup. It is assembled at
// startup from the per-resource stores.
type Registry map[Kind]Lookup

// Resolver turns the relation URLs of an incoming payload into a [Linkset]
// of stored ids.
//
// # Concurrency
//
// All lookups of a payload fan out concurrently; each one is bounded by its
// own timeout. The first failure cancels the rest and aborts the whole
// resolution, so a mutation never proceeds with a partially resolved link
// set.
type Resolver struct {
	registry Registry
	timeout  time.Duration
}

// NewResolver creates a Resolver over the given lookup registry.
func NewResolver(registry Registry) *Resolver {
	return &Resolver{
		registry: registry,
		timeout:  constants.LookupTimeout,
	}
}

// Resolve maps the present relation fields of a payload to stored ids.
//
// # Parameters
//   - descriptor: the resource's static relation metadata.
//   - many: to-many relation URLs keyed by field name (nil slice = absent).
//   - one: to-one reference URLs keyed by field name (nil pointer = absent).
//
// # Returns
//   - *Linkset: resolved ids in input order, keyed by present field.
//   - error: DanglingReference (422) for an unknown URL, Transient (503)
//     for a lookup deadline, InvalidReference (422) for malformed URLs.
func (r *Resolver) Resolve(ctx context.Context, descriptor Descriptor, many map[string][]string, one map[string]*string) (*Linkset, error) {
	links := &Linkset{
		Many: make(map[string][]int64),
		One:  make(map[string]int64),
	}

	group, groupCtx := errgroup.WithContext(ctx)

	// Buffers are pre-sized so each goroutine writes only its own slot;
	// input order survives the concurrent fan-out.
	for _, field := range descriptor.Relations {
		urls := many[field.Name]
		if urls == nil {
			continue
		}

		resolved := make([]int64, len(urls))
		links.Many[field.Name] = resolved

		for index, url := range urls {
			index, url := index, url
			fieldName, target := field.Name, field.Target

			group.Go(func() error {
				id, err := r.lookupOne(groupCtx, target, fieldName, url)
				if err != nil {
					return err
				}
				resolved[index] = id
				return nil
			})
		}
	}

	oneResolved := make(map[string]*int64, len(one))
	for _, field := range descriptor.References {
		urlPtr := one[field.Name]
		if urlPtr == nil {
			continue
		}

		slot := new(int64)
		oneResolved[field.Name] = slot
		fieldName, target, url := field.Name, field.Target, *urlPtr

		group.Go(func() error {
			id, err := r.lookupOne(groupCtx, target, fieldName, url)
			if err != nil {
				return err
			}
			*slot = id
			return nil
		})
	}

	if err := group.Wait(); err != nil {
		return nil, err
	}

	for field, slot := range oneResolved {
		links.One[field] = *slot
	}

	return links, nil
}

// lookupOne runs a single bounded lookup and classifies its failure modes.
func (r *Resolver) lookupOne(ctx context.Context, target Kind, field, url string) (int64, error) {
	lookup, registered := r.registry[target]
	if !registered {
		return 0, apperr.Internal(fmt.Errorf("resource: no lookup registered for kind %q", target))
	}

	// Reject structurally invalid URLs before paying for a lookup; they can
	// never resolve and deserve a sharper error than "dangling".
	if _, err := IDFromURL(url); err != nil {
		return 0, err
	}

	lookupCtx, cancel := context.WithTimeout(ctx, r.timeout)
	defer cancel()

	id, err := lookup(lookupCtx, url)
	switch {
	case err == nil:
		return id, nil
	case errors.Is(err, ErrUnresolved):
		return 0, apperr.DanglingReference(field, url)
	case errors.Is(err, context.DeadlineExceeded):
		return 0, apperr.Transient(err)
	case apperr.IsAppError(err):
		return 0, err
	default:
		return 0, apperr.Internal(err)
	}
}
