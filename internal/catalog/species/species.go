// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

// Package species defines the species resource.
package species

import (
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/validate"
	"github.com/starchive/starchive/pkg/pointer"
)

// Species represents one sentient species of the universe.
type Species struct {
	resource.Base

	Name            string `json:"name"`
	Classification  string `json:"classification"`
	Designation     string `json:"designation"`
	AverageHeight   string `json:"average_height"`
	AverageLifespan string `json:"average_lifespan"`
	EyeColors       string `json:"eye_colors"`
	HairColors      string `json:"hair_colors"`
	SkinColors      string `json:"skin_colors"`
	Language        string `json:"language"`

	Homeworld *string `json:"homeworld"`

	People resource.RefList `json:"people"`
	Films  resource.RefList `json:"films"`
}

// Global field names for validation and relation wiring
const (
	FieldName            = "name"
	FieldClassification  = "classification"
	FieldDesignation     = "designation"
	FieldAverageHeight   = "average_height"
	FieldAverageLifespan = "average_lifespan"
	FieldEyeColors       = "eye_colors"
	FieldHairColors      = "hair_colors"
	FieldSkinColors      = "skin_colors"
	FieldLanguage        = "language"
	FieldHomeworld       = "homeworld"
	FieldPeople          = "people"
	FieldFilms           = "films"
)

// Descriptor declares the species resource for the generic lifecycle.
var Descriptor = resource.Descriptor{
	Kind:       resource.KindSpecies,
	Display:    "Species",
	NaturalKey: FieldName,
	Relations: []resource.RelationField{
		{Name: FieldPeople, Target: resource.KindPeople},
		{Name: FieldFilms, Target: resource.KindFilms},
	},
	References: []resource.RelationField{
		{Name: FieldHomeworld, Target: resource.KindPlanets},
	},
}

// NaturalKey returns the uniqueness-bearing name.
func (species *Species) NaturalKey() string { return species.Name }

// RelationRefs exposes the relation URL arrays keyed by wire name.
func (species *Species) RelationRefs() map[string][]string {
	return map[string][]string{
		FieldPeople: species.People,
		FieldFilms:  species.Films,
	}
}

// ReferenceRefs exposes the homeworld reference (nil = absent).
func (species *Species) ReferenceRefs() map[string]*string {
	return map[string]*string{
		FieldHomeworld: species.Homeworld,
	}
}

// SetRelationURLs overwrites one relation field with ordered URLs.
func (species *Species) SetRelationURLs(field string, urls []string) {
	switch field {
	case FieldPeople:
		species.People = urls
	case FieldFilms:
		species.Films = urls
	}
}

// Merge applies a partial update, skipping present-but-falsy scalars.
func (species *Species) Merge(in *Species) {
	if in.Name != "" {
		species.Name = in.Name
	}
	if in.Classification != "" {
		species.Classification = in.Classification
	}
	if in.Designation != "" {
		species.Designation = in.Designation
	}
	if in.AverageHeight != "" {
		species.AverageHeight = in.AverageHeight
	}
	if in.AverageLifespan != "" {
		species.AverageLifespan = in.AverageLifespan
	}
	if in.EyeColors != "" {
		species.EyeColors = in.EyeColors
	}
	if in.HairColors != "" {
		species.HairColors = in.HairColors
	}
	if in.SkinColors != "" {
		species.SkinColors = in.SkinColors
	}
	if in.Language != "" {
		species.Language = in.Language
	}
	if in.Homeworld != nil {
		species.Homeworld = in.Homeworld
	}
}

// Validate checks the semantic validity of a fully merged species.
func Validate(species *Species) error {
	validator := &validate.Validator{}

	validator.Required(FieldName, species.Name).MaxLen(FieldName, species.Name, 200)
	validator.MaxLen(FieldHomeworld, pointer.Val(species.Homeworld), 2048)

	return validator.Err()
}
