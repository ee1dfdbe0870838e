// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

// Package starship defines the starship resource: hyperdrive-capable craft.
package starship

import (
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/validate"
)

// Starship represents one hyperdrive-capable craft.
type Starship struct {
	resource.Base

	Name                 string `json:"name"`
	Model                string `json:"model"`
	StarshipClass        string `json:"starship_class"`
	Manufacturer         string `json:"manufacturer"`
	CostInCredits        string `json:"cost_in_credits"`
	Length               string `json:"length"`
	Crew                 string `json:"crew"`
	Passengers           string `json:"passengers"`
	MaxAtmospheringSpeed string `json:"max_atmosphering_speed"`
	HyperdriveRating     string `json:"hyperdrive_rating"`
	MGLT                 string `json:"MGLT"`
	CargoCapacity        string `json:"cargo_capacity"`
	Consumables          string `json:"consumables"`

	Pilots resource.RefList `json:"pilots"`
	Films  resource.RefList `json:"films"`
}

// Global field names for validation and relation wiring
const (
	FieldName                 = "name"
	FieldModel                = "model"
	FieldStarshipClass        = "starship_class"
	FieldManufacturer         = "manufacturer"
	FieldCostInCredits        = "cost_in_credits"
	FieldLength               = "length"
	FieldCrew                 = "crew"
	FieldPassengers           = "passengers"
	FieldMaxAtmospheringSpeed = "max_atmosphering_speed"
	FieldHyperdriveRating     = "hyperdrive_rating"
	FieldMGLT                 = "MGLT"
	FieldCargoCapacity        = "cargo_capacity"
	FieldConsumables          = "consumables"
	FieldPilots               = "pilots"
	FieldFilms                = "films"
)

// Descriptor declares the starship resource for the generic lifecycle.
var Descriptor = resource.Descriptor{
	Kind:       resource.KindStarships,
	Display:    "Starship",
	NaturalKey: FieldName,
	Relations: []resource.RelationField{
		{Name: FieldPilots, Target: resource.KindPeople},
		{Name: FieldFilms, Target: resource.KindFilms},
	},
}

// NaturalKey returns the uniqueness-bearing name.
func (starship *Starship) NaturalKey() string { return starship.Name }

// RelationRefs exposes the relation URL arrays keyed by wire name.
func (starship *Starship) RelationRefs() map[string][]string {
	return map[string][]string{
		FieldPilots: starship.Pilots,
		FieldFilms:  starship.Films,
	}
}

// ReferenceRefs reports no to-one references for starships.
func (starship *Starship) ReferenceRefs() map[string]*string { return nil }

// SetRelationURLs overwrites one relation field with ordered URLs.
func (starship *Starship) SetRelationURLs(field string, urls []string) {
	switch field {
	case FieldPilots:
		starship.Pilots = urls
	case FieldFilms:
		starship.Films = urls
	}
}

// Merge applies a partial update, skipping present-but-falsy scalars.
func (starship *Starship) Merge(in *Starship) {
	if in.Name != "" {
		starship.Name = in.Name
	}
	if in.Model != "" {
		starship.Model = in.Model
	}
	if in.StarshipClass != "" {
		starship.StarshipClass = in.StarshipClass
	}
	if in.Manufacturer != "" {
		starship.Manufacturer = in.Manufacturer
	}
	if in.CostInCredits != "" {
		starship.CostInCredits = in.CostInCredits
	}
	if in.Length != "" {
		starship.Length = in.Length
	}
	if in.Crew != "" {
		starship.Crew = in.Crew
	}
	if in.Passengers != "" {
		starship.Passengers = in.Passengers
	}
	if in.MaxAtmospheringSpeed != "" {
		starship.MaxAtmospheringSpeed = in.MaxAtmospheringSpeed
	}
	if in.HyperdriveRating != "" {
		starship.HyperdriveRating = in.HyperdriveRating
	}
	if in.MGLT != "" {
		starship.MGLT = in.MGLT
	}
	if in.CargoCapacity != "" {
		starship.CargoCapacity = in.CargoCapacity
	}
	if in.Consumables != "" {
		starship.Consumables = in.Consumables
	}
}

// Validate checks the semantic validity of a fully merged starship.
func Validate(starship *Starship) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, starship.Name).MaxLen(FieldName, starship.Name, 200)
	validator.MaxLen(FieldModel, starship.Model, 200)

	return validator.Err()
}
