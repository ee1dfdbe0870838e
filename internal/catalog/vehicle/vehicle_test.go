// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package vehicle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/catalog/vehicle"
	"github.com/starchive/starchive/internal/platform/apperr"
)

/*
TestVehicle_Merge walks a Sand Crawler record through partial updates,
asserting that omitted fields survive and relation lists only move when
present.
*/
func TestVehicle_Merge(t *testing.T) {
	stored := vehicle.Vehicle{
		Name:          "Sand Crawler",
		Model:         "Digger Crawler",
		VehicleClass:  "wheeled",
		Manufacturer:  "Corellia Mining Corporation",
		CostInCredits: "150000",
		Length:        "36.8",
		Crew:          "46",
		Passengers:    "30",
		CargoCapacity: "50000",
		Consumables:   "2 months",
		Films:         resource.RefList{"http://localhost:8080/api/v1/films/1/"},
	}

	t.Run("scalar-only payload keeps relations", func(t *testing.T) {
		target := stored
		target.Merge(&vehicle.Vehicle{Passengers: "28", Consumables: "3 months"})

		assert.Equal(t, "Sand Crawler", target.Name)
		assert.Equal(t, "28", target.Passengers)
		assert.Equal(t, "3 months", target.Consumables)
		assert.Equal(t, "50000", target.CargoCapacity)
		assert.Equal(t, stored.Films, target.Films, "nil films must not clear stored links")
	})

	t.Run("present relation replaces wholesale", func(t *testing.T) {
		target := stored
		target.Merge(&vehicle.Vehicle{
			Films: resource.RefList{
				"http://localhost:8080/api/v1/films/1/",
				"http://localhost:8080/api/v1/films/5/",
			},
		})

		assert.Len(t, target.Films, 2)
		assert.Equal(t, "Sand Crawler", target.Name)
	})

	t.Run("empty relation clears", func(t *testing.T) {
		target := stored
		target.Merge(&vehicle.Vehicle{Films: resource.RefList{}})

		require.NotNil(t, target.Films)
		assert.Empty(t, target.Films)
	})
}

/*
TestVehicle_RelationRefs asserts the shared relation-map shape: every field
has a key, and absent fields carry a nil slice the resolver skips.
*/
func TestVehicle_RelationRefs(t *testing.T) {
	craft := vehicle.Vehicle{
		Name:   "Snowspeeder",
		Pilots: resource.RefList{"http://localhost:8080/api/v1/people/1/"},
	}

	refs := craft.RelationRefs()

	assert.Equal(t, []string(craft.Pilots), refs[vehicle.FieldPilots])
	assert.Contains(t, refs, vehicle.FieldFilms)
	assert.Nil(t, refs[vehicle.FieldFilms], "absent field must stay nil so stored links survive")
}

func TestVehicle_Validate(t *testing.T) {
	require.NoError(t, vehicle.Validate(&vehicle.Vehicle{Name: "AT-AT"}))

	err := vehicle.Validate(&vehicle.Vehicle{Model: "All Terrain Armored Transport"})
	require.Error(t, err)
	ae := apperr.As(err)
	require.NotNil(t, ae)
	assert.Equal(t, "VALIDATION_ERROR", ae.Code)
}
