// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

// Package planet defines the planet resource.
package planet

import (
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/validate"
)

// Planet represents one planetary body. Quantities are free-text so values
// like "unknown" survive round-trips unchanged.
type Planet struct {
	resource.Base

	Name           string `json:"name"`
	Diameter       string `json:"diameter"`
	RotationPeriod string `json:"rotation_period"`
	OrbitalPeriod  string `json:"orbital_period"`
	Gravity        string `json:"gravity"`
	Population     string `json:"population"`
	Climate        string `json:"climate"`
	Terrain        string `json:"terrain"`
	SurfaceWater   string `json:"surface_water"`

	Films resource.RefList `json:"films"`
}

// Global field names for validation and relation wiring
const (
	FieldName           = "name"
	FieldDiameter       = "diameter"
	FieldRotationPeriod = "rotation_period"
	FieldOrbitalPeriod  = "orbital_period"
	FieldGravity        = "gravity"
	FieldPopulation     = "population"
	FieldClimate        = "climate"
	FieldTerrain        = "terrain"
	FieldSurfaceWater   = "surface_water"
	FieldFilms          = "films"
)

// Descriptor declares the planet resource for the generic lifecycle.
var Descriptor = resource.Descriptor{
	Kind:       resource.KindPlanets,
	Display:    "Planet",
	NaturalKey: FieldName,
	Relations: []resource.RelationField{
		{Name: FieldFilms, Target: resource.KindFilms},
	},
}

// NaturalKey returns the uniqueness-bearing name.
func (planet *Planet) NaturalKey() string { return planet.Name }

// RelationRefs exposes the relation URL arrays keyed by wire name.
func (planet *Planet) RelationRefs() map[string][]string {
	return map[string][]string{
		FieldFilms: planet.Films,
	}
}

// ReferenceRefs reports no to-one references for planets.
func (planet *Planet) ReferenceRefs() map[string]*string { return nil }

// SetRelationURLs overwrites one relation field with ordered URLs.
func (planet *Planet) SetRelationURLs(field string, urls []string) {
	if field == FieldFilms {
		planet.Films = urls
	}
}

// Merge applies a partial update, skipping present-but-falsy scalars.
func (planet *Planet) Merge(in *Planet) {
	if in.Name != "" {
		planet.Name = in.Name
	}
	if in.Diameter != "" {
		planet.Diameter = in.Diameter
	}
	if in.RotationPeriod != "" {
		planet.RotationPeriod = in.RotationPeriod
	}
	if in.OrbitalPeriod != "" {
		planet.OrbitalPeriod = in.OrbitalPeriod
	}
	if in.Gravity != "" {
		planet.Gravity = in.Gravity
	}
	if in.Population != "" {
		planet.Population = in.Population
	}
	if in.Climate != "" {
		planet.Climate = in.Climate
	}
	if in.Terrain != "" {
		planet.Terrain = in.Terrain
	}
	if in.SurfaceWater != "" {
		planet.SurfaceWater = in.SurfaceWater
	}
}

// Validate checks the semantic validity of a fully merged planet.
func Validate(planet *Planet) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, planet.Name).MaxLen(FieldName, planet.Name, 200)

	return validator.Err()
}
