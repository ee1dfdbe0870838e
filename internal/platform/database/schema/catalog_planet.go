// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// CatalogPlanetTable represents the 'planets' table
type CatalogPlanetTable struct {
	Table          string
	ID             string
	URL            string
	Name           string
	Diameter       string
	RotationPeriod string
	OrbitalPeriod  string
	Gravity        string
	Population     string
	Climate        string
	Terrain        string
	SurfaceWater   string
	Created        string
	Edited         string
}

// CatalogPlanet is the schema definition for planets
var CatalogPlanet = CatalogPlanetTable{
	Table:          "planets",
	ID:             "id",
	URL:            "url",
	Name:           "name",
	Diameter:       "diameter",
	RotationPeriod: "rotation_period",
	OrbitalPeriod:  "orbital_period",
	Gravity:        "gravity",
	Population:     "population",
	Climate:        "climate",
	Terrain:        "terrain",
	SurfaceWater:   "surface_water",
	Created:        "created",
	Edited:         "edited",
}

func (t CatalogPlanetTable) Columns() []string {
	return []string{t.ID, t.URL, t.Name, t.Diameter, t.RotationPeriod, t.OrbitalPeriod, t.Gravity, t.Population, t.Climate, t.Terrain, t.SurfaceWater, t.Created, t.Edited}
}
