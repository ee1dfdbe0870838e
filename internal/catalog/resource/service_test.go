// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package resource_test

import (
	"context"
	"encoding/json"
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/apperr"
	"github.com/starchive/starchive/internal/platform/validate"
)

const testBaseURL = "http://localhost:8080/api/v1"

// planetRecord is a minimal entity exercising the full generic lifecycle:
// one natural key, one falsy-skip scalar, one to-many relation.
type planetRecord struct {
	resource.Base

	Name       string           `json:"name"`
	Population string           `json:"population"`
	Residents  resource.RefList `json:"residents"`
}

func (p *planetRecord) NaturalKey() string { return p.Name }

func (p *planetRecord) RelationRefs() map[string][]string {
	return map[string][]string{"residents": p.Residents}
}

func (p *planetRecord) ReferenceRefs() map[string]*string { return nil }

func (p *planetRecord) SetRelationURLs(field string, urls []string) {
	if field == "residents" {
		p.Residents = urls
	}
}

func (p *planetRecord) Merge(in *planetRecord) {
	if in.Name != "" {
		p.Name = in.Name
	}
	if in.Population != "" {
		p.Population = in.Population
	}
	if in.Residents != nil {
		p.Residents = in.Residents
	}
}

var planetRecordDescriptor = resource.Descriptor{
	Kind:       resource.KindPlanets,
	Display:    "Planet",
	NaturalKey: "name",
	Relations: []resource.RelationField{
		{Name: "residents", Target: resource.KindPeople},
	},
}

func validatePlanetRecord(p *planetRecord) error {
	validator := &validate.Validator{}
	validator.Required("name", p.Name)
	return validator.Err()
}

// fakePlanetStore is an in-memory [resource.Store] that records the linksets
// it receives.
type fakePlanetStore struct {
	rows        map[int64]*planetRecord
	links       map[int64]*resource.Linkset
	nextID      int64
	createCalls int
	updateCalls int
}

func newFakePlanetStore() *fakePlanetStore {
	return &fakePlanetStore{
		rows:  make(map[int64]*planetRecord),
		links: make(map[int64]*resource.Linkset),
	}
}

func (s *fakePlanetStore) List(ctx context.Context, search string, limit, offset int) ([]*planetRecord, int, error) {
	var out []*planetRecord
	for _, row := range s.rows {
		copied := *row
		out = append(out, &copied)
	}
	return out, len(out), nil
}

func (s *fakePlanetStore) FindByID(ctx context.Context, id int64) (*planetRecord, error) {
	row, exists := s.rows[id]
	if !exists {
		return nil, apperr.NotFound("Planet")
	}
	copied := *row
	return &copied, nil
}

func (s *fakePlanetStore) CountByNaturalKey(ctx context.Context, value string) (int, error) {
	count := 0
	for _, row := range s.rows {
		if row.Name == value {
			count++
		}
	}
	return count, nil
}

func (s *fakePlanetStore) Create(ctx context.Context, entity *planetRecord, links *resource.Linkset) error {
	s.createCalls++
	s.nextID++

	now := time.Now()
	entity.SetIdentity(s.nextID, resource.URLFor(testBaseURL, resource.KindPlanets, s.nextID))
	entity.Stamp(now, now)

	copied := *entity
	s.rows[s.nextID] = &copied
	s.links[s.nextID] = links
	return nil
}

func (s *fakePlanetStore) Update(ctx context.Context, entity *planetRecord, links *resource.Linkset) error {
	s.updateCalls++

	id := entity.Identity()
	if _, exists := s.rows[id]; !exists {
		return apperr.NotFound("Planet")
	}

	entity.Meta().Edited = time.Now()
	copied := *entity
	s.rows[id] = &copied
	s.links[id] = links
	return nil
}

func (s *fakePlanetStore) Delete(ctx context.Context, id int64) error {
	if _, exists := s.rows[id]; !exists {
		return apperr.NotFound("Planet")
	}
	delete(s.rows, id)
	return nil
}

// newPlanetService assembles a service over the fake store and a fixed
// people lookup table.
func newPlanetService(store *fakePlanetStore, people map[string]int64) *resource.Service[planetRecord, *planetRecord] {
	resolver := resource.NewResolver(resource.Registry{
		resource.KindPeople: func(ctx context.Context, url string) (int64, error) {
			if id, known := people[url]; known {
				return id, nil
			}
			return 0, resource.ErrUnresolved
		},
	})

	return resource.NewService[planetRecord, *planetRecord](resource.Config[planetRecord]{
		Descriptor: planetRecordDescriptor,
		Store:      store,
		Resolver:   resolver,
		Logger:     slog.New(slog.NewTextHandler(io.Discard, nil)),
		Validate:   validatePlanetRecord,
	})
}

/*
TestService_Create covers the happy path: identity assignment, canonical URL,
and resolved relation links reaching the store.
*/
func TestService_Create(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, map[string]int64{
		testBaseURL + "/people/4/": 4,
		testBaseURL + "/people/6/": 6,
	})

	created, err := service.Create(context.Background(), &planetRecord{
		Name:       "Tatooine",
		Population: "200000",
		Residents: resource.RefList{
			testBaseURL + "/people/4/",
			testBaseURL + "/people/6/",
		},
	})

	require.NoError(t, err)
	assert.Equal(t, int64(1), created.ID)
	assert.Equal(t, testBaseURL+"/planets/1/", created.URL)
	assert.False(t, created.Created.IsZero())
	assert.Equal(t, []int64{4, 6}, store.links[1].Many["residents"])
}

/*
TestService_Create_Duplicate asserts the 409 pre-check: a second create with
the same natural key never reaches storage.
*/
func TestService_Create_Duplicate(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, nil)

	_, err := service.Create(context.Background(), &planetRecord{Name: "Naboo"})
	require.NoError(t, err)

	_, err = service.Create(context.Background(), &planetRecord{Name: "Naboo"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
	assert.Equal(t, 1, store.createCalls)
}

/*
TestService_Create_DanglingReference asserts fail-fast semantics: resolution
failure aborts the create before any storage write.
*/
func TestService_Create_DanglingReference(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, nil)

	_, err := service.Create(context.Background(), &planetRecord{
		Name:      "Hoth",
		Residents: resource.RefList{testBaseURL + "/people/99/"},
	})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "DANGLING_REFERENCE", ae.Code)
	assert.Zero(t, store.createCalls, "failed resolution must leave the store untouched")
}

/*
TestService_Create_Invalid asserts that validation runs before anything else.
*/
func TestService_Create_Invalid(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, nil)

	_, err := service.Create(context.Background(), &planetRecord{Population: "1000"})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
	assert.Zero(t, store.createCalls)
}

/*
TestService_Update_FalsySkip reproduces the canonical partial update: only
the population changes, the name survives, and edited moves forward.
*/
func TestService_Update_FalsySkip(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, nil)

	created, err := service.Create(context.Background(), &planetRecord{
		Name:       "Tatooine",
		Population: "200000",
	})
	require.NoError(t, err)
	createdEdited := created.Edited

	updated, err := service.Update(context.Background(), created.ID, &planetRecord{
		Population: "1900000",
	})

	require.NoError(t, err)
	assert.Equal(t, "Tatooine", updated.Name, "empty name must not overwrite the stored value")
	assert.Equal(t, "1900000", updated.Population)
	assert.False(t, updated.Edited.Before(createdEdited), "edited must move forward")
	assert.Equal(t, created.Created, updated.Created, "created must never move")
}

/*
TestService_Update_RelationSemantics distinguishes the relation cases: absent
and null leave links alone, explicit empty clears, present replaces.
*/
func TestService_Update_RelationSemantics(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, map[string]int64{
		testBaseURL + "/people/4/": 4,
		testBaseURL + "/people/7/": 7,
	})

	created, err := service.Create(context.Background(), &planetRecord{
		Name:      "Tatooine",
		Residents: resource.RefList{testBaseURL + "/people/4/"},
	})
	require.NoError(t, err)

	// Absent: the linkset handed to the store must not mention residents.
	_, err = service.Update(context.Background(), created.ID, &planetRecord{Population: "100"})
	require.NoError(t, err)
	_, present := store.links[created.ID].Many["residents"]
	assert.False(t, present, "absent relation must not be rewritten")

	// Present: wholesale replacement in payload order.
	_, err = service.Update(context.Background(), created.ID, &planetRecord{
		Residents: resource.RefList{testBaseURL + "/people/7/", testBaseURL + "/people/4/"},
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{7, 4}, store.links[created.ID].Many["residents"])

	// JSON null: decodes as absent, so stored links survive the update.
	var nullPayload planetRecord
	require.NoError(t, json.Unmarshal([]byte(`{"population":"120000","residents":null}`), &nullPayload))
	require.Nil(t, nullPayload.Residents, "null must decode as an absent field")

	afterNull, err := service.Update(context.Background(), created.ID, &nullPayload)
	require.NoError(t, err)
	_, present = store.links[created.ID].Many["residents"]
	assert.False(t, present, "null relation must not be rewritten")
	assert.Equal(t, resource.RefList{
		testBaseURL + "/people/7/",
		testBaseURL + "/people/4/",
	}, afterNull.Residents, "null relation must leave hydrated links intact")

	// Explicit empty: clears.
	updated, err := service.Update(context.Background(), created.ID, &planetRecord{
		Residents: resource.RefList{},
	})
	require.NoError(t, err)
	assert.Empty(t, store.links[created.ID].Many["residents"])
	assert.NotNil(t, updated.Residents)
	assert.Empty(t, updated.Residents)
}

/*
TestService_Update_NaturalKeyCollision asserts that renaming onto an existing
natural key yields 409.
*/
func TestService_Update_NaturalKeyCollision(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, nil)

	_, err := service.Create(context.Background(), &planetRecord{Name: "Alderaan"})
	require.NoError(t, err)

	second, err := service.Create(context.Background(), &planetRecord{Name: "Dagobah"})
	require.NoError(t, err)

	_, err = service.Update(context.Background(), second.ID, &planetRecord{Name: "Alderaan"})
	require.Error(t, err)

	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "CONFLICT", ae.Code)
}

/*
TestService_Update_NotFound asserts 404 for unknown ids before any merge.
*/
func TestService_Update_NotFound(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, nil)

	_, err := service.Update(context.Background(), 42, &planetRecord{Population: "1"})

	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
	assert.Zero(t, store.updateCalls)
}

/*
TestLinkset_IsEmpty pins the nil-safety and the presence semantics of the
resolved link carrier.
*/
func TestLinkset_IsEmpty(t *testing.T) {
	var absent *resource.Linkset
	assert.True(t, absent.IsEmpty())
	assert.True(t, (&resource.Linkset{}).IsEmpty())

	withRelation := &resource.Linkset{Many: map[string][]int64{"residents": {}}}
	assert.False(t, withRelation.IsEmpty(), "an explicit empty list is still a present field")

	withReference := &resource.Linkset{One: map[string]int64{"homeworld": 3}}
	assert.False(t, withReference.IsEmpty())
}

/*
TestService_Delete covers both the successful removal and the 404 for a
missing id.
*/
func TestService_Delete(t *testing.T) {
	store := newFakePlanetStore()
	service := newPlanetService(store, nil)

	created, err := service.Create(context.Background(), &planetRecord{Name: "Endor"})
	require.NoError(t, err)

	require.NoError(t, service.Delete(context.Background(), created.ID))

	err = service.Delete(context.Background(), created.ID)
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "NOT_FOUND", ae.Code)
}
