// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// CatalogSpeciesTable represents the 'species' table
type CatalogSpeciesTable struct {
	Table           string
	ID              string
	URL             string
	Name            string
	Classification  string
	Designation     string
	AverageHeight   string
	AverageLifespan string
	EyeColors       string
	HairColors      string
	SkinColors      string
	Language        string
	HomeworldID     string
	Created         string
	Edited          string
}

// CatalogSpecies is the schema definition for species
var CatalogSpecies = CatalogSpeciesTable{
	Table:           "species",
	ID:              "id",
	URL:             "url",
	Name:            "name",
	Classification:  "classification",
	Designation:     "designation",
	AverageHeight:   "average_height",
	AverageLifespan: "average_lifespan",
	EyeColors:       "eye_colors",
	HairColors:      "hair_colors",
	SkinColors:      "skin_colors",
	Language:        "language",
	HomeworldID:     "homeworld_id",
	Created:         "created",
	Edited:          "edited",
}

func (t CatalogSpeciesTable) Columns() []string {
	return []string{
		t.ID, t.URL, t.Name, t.Classification, t.Designation, t.AverageHeight, t.AverageLifespan,
		t.EyeColors, t.HairColors, t.SkinColors, t.Language, t.HomeworldID, t.Created, t.Edited,
	}
}
