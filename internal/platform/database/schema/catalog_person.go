// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// CatalogPersonTable represents the 'people' table
type CatalogPersonTable struct {
	Table       string
	ID          string
	URL         string
	Name        string
	BirthYear   string
	EyeColor    string
	Gender      string
	HairColor   string
	Height      string
	Mass        string
	SkinColor   string
	HomeworldID string
	Created     string
	Edited      string
}

// CatalogPerson is the schema definition for people
var CatalogPerson = CatalogPersonTable{
	Table:       "people",
	ID:          "id",
	URL:         "url",
	Name:        "name",
	BirthYear:   "birth_year",
	EyeColor:    "eye_color",
	Gender:      "gender",
	HairColor:   "hair_color",
	Height:      "height",
	Mass:        "mass",
	SkinColor:   "skin_color",
	HomeworldID: "homeworld_id",
	Created:     "created",
	Edited:      "edited",
}

func (t CatalogPersonTable) Columns() []string {
	return []string{t.ID, t.URL, t.Name, t.BirthYear, t.EyeColor, t.Gender, t.HairColor, t.Height, t.Mass, t.SkinColor, t.HomeworldID, t.Created, t.Edited}
}
