// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package person

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starchive/starchive/internal/catalog/pgstore"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/database/schema"
)

// NewStore maps the people table onto the generic PostgreSQL store.
func NewStore(pool *pgxpool.Pool, baseURL string) *pgstore.Store[Person, *Person] {
	columns := schema.CatalogPerson

	return pgstore.New[Person, *Person](pool, pgstore.Mapping[Person]{
		Kind:             resource.KindPeople,
		Display:          Descriptor.Display,
		Table:            columns.Table,
		NaturalKeyColumn: columns.Name,
		Columns: []string{
			columns.Name, columns.BirthYear, columns.EyeColor, columns.Gender,
			columns.HairColor, columns.Height, columns.Mass, columns.SkinColor,
		},
		Values: func(person *Person) []any {
			return []any{
				person.Name, person.BirthYear, person.EyeColor, person.Gender,
				person.HairColor, person.Height, person.Mass, person.SkinColor,
			}
		},
		ScanScalars: func(person *Person) []any {
			return []any{
				&person.Name, &person.BirthYear, &person.EyeColor, &person.Gender,
				&person.HairColor, &person.Height, &person.Mass, &person.SkinColor,
			}
		},
		References: []pgstore.Reference{
			{Field: FieldHomeworld, Column: columns.HomeworldID, TargetTable: schema.CatalogPlanet.Table},
		},
		ScanReferences: func(person *Person) []any {
			return []any{&person.Homeworld}
		},
		Junctions: []pgstore.Junction{
			{Field: FieldFilms, Link: schema.CatalogFilmCharacter.Inverse(), TargetTable: schema.CatalogFilm.Table},
			{Field: FieldSpecies, Link: schema.CatalogPersonSpecies, TargetTable: schema.CatalogSpecies.Table},
			{Field: FieldStarships, Link: schema.CatalogPersonStarship, TargetTable: schema.CatalogStarship.Table},
			{Field: FieldVehicles, Link: schema.CatalogPersonVehicle, TargetTable: schema.CatalogVehicle.Table},
		},
	}, baseURL)
}
