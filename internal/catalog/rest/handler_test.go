// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package rest_test

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/go-chi/chi/v5"
	"github.com/stretchr/testify/assert"

	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/catalog/rest"
	"github.com/starchive/starchive/internal/platform/apperr"
)

// planetRecord is a minimal entity for routing tests.
type planetRecord struct {
	resource.Base

	Name string `json:"name"`
}

func (p *planetRecord) NaturalKey() string                          { return p.Name }
func (p *planetRecord) RelationRefs() map[string][]string           { return nil }
func (p *planetRecord) ReferenceRefs() map[string]*string           { return nil }
func (p *planetRecord) SetRelationURLs(field string, urls []string) {}

func (p *planetRecord) Merge(in *planetRecord) {
	if in.Name != "" {
		p.Name = in.Name
	}
}

// emptyPlanetStore serves an empty collection.
type emptyPlanetStore struct{}

func (emptyPlanetStore) List(ctx context.Context, search string, limit, offset int) ([]*planetRecord, int, error) {
	return nil, 0, nil
}

func (emptyPlanetStore) FindByID(ctx context.Context, id int64) (*planetRecord, error) {
	return nil, apperr.NotFound("Planet")
}

func (emptyPlanetStore) CountByNaturalKey(ctx context.Context, value string) (int, error) {
	return 0, nil
}

func (emptyPlanetStore) Create(ctx context.Context, entity *planetRecord, links *resource.Linkset) error {
	return nil
}

func (emptyPlanetStore) Update(ctx context.Context, entity *planetRecord, links *resource.Linkset) error {
	return nil
}

func (emptyPlanetStore) Delete(ctx context.Context, id int64) error {
	return nil
}

func newPlanetHandler() *rest.Handler[planetRecord, *planetRecord] {
	service := resource.NewService[planetRecord, *planetRecord](resource.Config[planetRecord]{
		Descriptor: resource.Descriptor{
			Kind:       resource.KindPlanets,
			Display:    "Planet",
			NaturalKey: "name",
		},
		Store:    emptyPlanetStore{},
		Resolver: resource.NewResolver(resource.Registry{}),
		Logger:   slog.New(slog.NewTextHandler(io.Discard, nil)),
		Validate: func(*planetRecord) error { return nil },
	})

	return rest.NewHandler[planetRecord, *planetRecord](service)
}

/*
TestHandler_Mount asserts that a handler mounts itself under its collection's
wire name, so route paths and canonical URLs share the kind segment.
*/
func TestHandler_Mount(t *testing.T) {
	router := chi.NewRouter()
	newPlanetHandler().Mount(router)

	recorder := httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/planets/", nil))
	assert.Equal(t, http.StatusOK, recorder.Code, "list must be served under the kind segment")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/planets/42", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code, "unknown id must pass through to the service's 404")

	recorder = httptest.NewRecorder()
	router.ServeHTTP(recorder, httptest.NewRequest(http.MethodGet, "/films/", nil))
	assert.Equal(t, http.StatusNotFound, recorder.Code, "no other collection may be mounted")
}
