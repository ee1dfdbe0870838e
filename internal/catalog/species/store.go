// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package species

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starchive/starchive/internal/catalog/pgstore"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/database/schema"
)

// NewStore maps the species table onto the generic PostgreSQL store.
func NewStore(pool *pgxpool.Pool, baseURL string) *pgstore.Store[Species, *Species] {
	columns := schema.CatalogSpecies

	return pgstore.New[Species, *Species](pool, pgstore.Mapping[Species]{
		Kind:             resource.KindSpecies,
		Display:          Descriptor.Display,
		Table:            columns.Table,
		NaturalKeyColumn: columns.Name,
		Columns: []string{
			columns.Name, columns.Classification, columns.Designation, columns.AverageHeight,
			columns.AverageLifespan, columns.EyeColors, columns.HairColors, columns.SkinColors, columns.Language,
		},
		Values: func(species *Species) []any {
			return []any{
				species.Name, species.Classification, species.Designation, species.AverageHeight,
				species.AverageLifespan, species.EyeColors, species.HairColors, species.SkinColors, species.Language,
			}
		},
		ScanScalars: func(species *Species) []any {
			return []any{
				&species.Name, &species.Classification, &species.Designation, &species.AverageHeight,
				&species.AverageLifespan, &species.EyeColors, &species.HairColors, &species.SkinColors, &species.Language,
			}
		},
		References: []pgstore.Reference{
			{Field: FieldHomeworld, Column: columns.HomeworldID, TargetTable: schema.CatalogPlanet.Table},
		},
		ScanReferences: func(species *Species) []any {
			return []any{&species.Homeworld}
		},
		Junctions: []pgstore.Junction{
			{Field: FieldPeople, Link: schema.CatalogPersonSpecies.Inverse(), TargetTable: schema.CatalogPerson.Table},
			{Field: FieldFilms, Link: schema.CatalogFilmSpecies.Inverse(), TargetTable: schema.CatalogFilm.Table},
		},
	}, baseURL)
}
