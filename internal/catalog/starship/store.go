// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package starship

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starchive/starchive/internal/catalog/pgstore"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/database/schema"
)

// NewStore maps the starships table onto the generic PostgreSQL store.
func NewStore(pool *pgxpool.Pool, baseURL string) *pgstore.Store[Starship, *Starship] {
	columns := schema.CatalogStarship

	return pgstore.New[Starship, *Starship](pool, pgstore.Mapping[Starship]{
		Kind:             resource.KindStarships,
		Display:          Descriptor.Display,
		Table:            columns.Table,
		NaturalKeyColumn: columns.Name,
		Columns: []string{
			columns.Name, columns.Model, columns.StarshipClass, columns.Manufacturer,
			columns.CostInCredits, columns.Length, columns.Crew, columns.Passengers,
			columns.MaxAtmospheringSpeed, columns.HyperdriveRating, columns.MGLT,
			columns.CargoCapacity, columns.Consumables,
		},
		Values: func(starship *Starship) []any {
			return []any{
				starship.Name, starship.Model, starship.StarshipClass, starship.Manufacturer,
				starship.CostInCredits, starship.Length, starship.Crew, starship.Passengers,
				starship.MaxAtmospheringSpeed, starship.HyperdriveRating, starship.MGLT,
				starship.CargoCapacity, starship.Consumables,
			}
		},
		ScanScalars: func(starship *Starship) []any {
			return []any{
				&starship.Name, &starship.Model, &starship.StarshipClass, &starship.Manufacturer,
				&starship.CostInCredits, &starship.Length, &starship.Crew, &starship.Passengers,
				&starship.MaxAtmospheringSpeed, &starship.HyperdriveRating, &starship.MGLT,
				&starship.CargoCapacity, &starship.Consumables,
			}
		},
		Junctions: []pgstore.Junction{
			{Field: FieldPilots, Link: schema.CatalogPersonStarship.Inverse(), TargetTable: schema.CatalogPerson.Table},
			{Field: FieldFilms, Link: schema.CatalogFilmStarship.Inverse(), TargetTable: schema.CatalogFilm.Table},
		},
	}, baseURL)
}
