// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// JunctionTable represents a many-to-many link table between two catalogue
// resources. The owner column carries the ON DELETE CASCADE constraint; the
// target column is NO ACTION so referenced rows cannot be deleted while
// still linked.
type JunctionTable struct {
	Table        string
	OwnerColumn  string
	TargetColumn string
}

// Film-owned link tables.
var (
	CatalogFilmCharacter = JunctionTable{Table: "films_characters", OwnerColumn: "film_id", TargetColumn: "person_id"}
	CatalogFilmPlanet    = JunctionTable{Table: "films_planets", OwnerColumn: "film_id", TargetColumn: "planet_id"}
	CatalogFilmSpecies   = JunctionTable{Table: "films_species", OwnerColumn: "film_id", TargetColumn: "species_id"}
	CatalogFilmStarship  = JunctionTable{Table: "films_starships", OwnerColumn: "film_id", TargetColumn: "starship_id"}
	CatalogFilmVehicle   = JunctionTable{Table: "films_vehicles", OwnerColumn: "film_id", TargetColumn: "vehicle_id"}
)

// Person-owned link tables.
var (
	CatalogPersonSpecies  = JunctionTable{Table: "people_species", OwnerColumn: "person_id", TargetColumn: "species_id"}
	CatalogPersonStarship = JunctionTable{Table: "people_starships", OwnerColumn: "person_id", TargetColumn: "starship_id"}
	CatalogPersonVehicle  = JunctionTable{Table: "people_vehicles", OwnerColumn: "person_id", TargetColumn: "vehicle_id"}
)

// Inverse returns the same link table viewed from the non-owning side, so a
// resource on either end can expose the relation as a field.
func (t JunctionTable) Inverse() JunctionTable {
	return JunctionTable{Table: t.Table, OwnerColumn: t.TargetColumn, TargetColumn: t.OwnerColumn}
}
