// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// CatalogStarshipTable represents the 'starships' table
type CatalogStarshipTable struct {
	Table                string
	ID                   string
	URL                  string
	Name                 string
	Model                string
	StarshipClass        string
	Manufacturer         string
	CostInCredits        string
	Length               string
	Crew                 string
	Passengers           string
	MaxAtmospheringSpeed string
	HyperdriveRating     string
	MGLT                 string
	CargoCapacity        string
	Consumables          string
	Created              string
	Edited               string
}

// CatalogStarship is the schema definition for starships
var CatalogStarship = CatalogStarshipTable{
	Table:                "starships",
	ID:                   "id",
	URL:                  "url",
	Name:                 "name",
	Model:                "model",
	StarshipClass:        "starship_class",
	Manufacturer:         "manufacturer",
	CostInCredits:        "cost_in_credits",
	Length:               "length",
	Crew:                 "crew",
	Passengers:           "passengers",
	MaxAtmospheringSpeed: "max_atmosphering_speed",
	HyperdriveRating:     "hyperdrive_rating",
	MGLT:                 "mglt",
	CargoCapacity:        "cargo_capacity",
	Consumables:          "consumables",
	Created:              "created",
	Edited:               "edited",
}

func (t CatalogStarshipTable) Columns() []string {
	return []string{
		t.ID, t.URL, t.Name, t.Model, t.StarshipClass, t.Manufacturer, t.CostInCredits, t.Length,
		t.Crew, t.Passengers, t.MaxAtmospheringSpeed, t.HyperdriveRating, t.MGLT, t.CargoCapacity,
		t.Consumables, t.Created, t.Edited,
	}
}
