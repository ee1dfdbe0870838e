// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

// Package person defines the person resource: the named characters of the
// fictional universe.
package person

import (
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/validate"
	"github.com/starchive/starchive/pkg/pointer"
)

// Person represents one named character.
//
// The physical attributes are free-text by design; values like "unknown"
// and "n/a" are legal alongside numeric strings.
type Person struct {
	resource.Base

	Name      string `json:"name"`
	BirthYear string `json:"birth_year"`
	EyeColor  string `json:"eye_color"`
	Gender    string `json:"gender"`
	HairColor string `json:"hair_color"`
	Height    string `json:"height"`
	Mass      string `json:"mass"`
	SkinColor string `json:"skin_color"`

	Homeworld *string `json:"homeworld"`

	Films     resource.RefList `json:"films"`
	Species   resource.RefList `json:"species"`
	Starships resource.RefList `json:"starships"`
	Vehicles  resource.RefList `json:"vehicles"`
}

// Global field names for validation and relation wiring
const (
	FieldName      = "name"
	FieldBirthYear = "birth_year"
	FieldEyeColor  = "eye_color"
	FieldGender    = "gender"
	FieldHairColor = "hair_color"
	FieldHeight    = "height"
	FieldMass      = "mass"
	FieldSkinColor = "skin_color"
	FieldHomeworld = "homeworld"
	FieldFilms     = "films"
	FieldSpecies   = "species"
	FieldStarships = "starships"
	FieldVehicles  = "vehicles"
)

// Descriptor declares the person resource for the generic lifecycle.
var Descriptor = resource.Descriptor{
	Kind:       resource.KindPeople,
	Display:    "Person",
	NaturalKey: FieldName,
	Relations: []resource.RelationField{
		{Name: FieldFilms, Target: resource.KindFilms},
		{Name: FieldSpecies, Target: resource.KindSpecies},
		{Name: FieldStarships, Target: resource.KindStarships},
		{Name: FieldVehicles, Target: resource.KindVehicles},
	},
	References: []resource.RelationField{
		{Name: FieldHomeworld, Target: resource.KindPlanets},
	},
}

// NaturalKey returns the uniqueness-bearing name.
func (person *Person) NaturalKey() string { return person.Name }

// RelationRefs exposes the relation URL arrays keyed by wire name.
func (person *Person) RelationRefs() map[string][]string {
	return map[string][]string{
		FieldFilms:     person.Films,
		FieldSpecies:   person.Species,
		FieldStarships: person.Starships,
		FieldVehicles:  person.Vehicles,
	}
}

// ReferenceRefs exposes the homeworld reference (nil = absent).
func (person *Person) ReferenceRefs() map[string]*string {
	return map[string]*string{
		FieldHomeworld: person.Homeworld,
	}
}

// SetRelationURLs overwrites one relation field with ordered URLs.
func (person *Person) SetRelationURLs(field string, urls []string) {
	switch field {
	case FieldFilms:
		person.Films = urls
	case FieldSpecies:
		person.Species = urls
	case FieldStarships:
		person.Starships = urls
	case FieldVehicles:
		person.Vehicles = urls
	}
}

// Merge applies a partial update, skipping present-but-falsy scalars.
func (person *Person) Merge(in *Person) {
	if in.Name != "" {
		person.Name = in.Name
	}
	if in.BirthYear != "" {
		person.BirthYear = in.BirthYear
	}
	if in.EyeColor != "" {
		person.EyeColor = in.EyeColor
	}
	if in.Gender != "" {
		person.Gender = in.Gender
	}
	if in.HairColor != "" {
		person.HairColor = in.HairColor
	}
	if in.Height != "" {
		person.Height = in.Height
	}
	if in.Mass != "" {
		person.Mass = in.Mass
	}
	if in.SkinColor != "" {
		person.SkinColor = in.SkinColor
	}
	if in.Homeworld != nil {
		person.Homeworld = in.Homeworld
	}
}

// Validate checks the semantic validity of a fully merged person.
func Validate(person *Person) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, person.Name).MaxLen(FieldName, person.Name, 200)
	validator.MaxLen(FieldBirthYear, person.BirthYear, 50)
	validator.MaxLen(FieldGender, person.Gender, 50)
	validator.MaxLen(FieldHomeworld, pointer.Val(person.Homeworld), 2048)

	return validator.Err()
}
