// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package planet

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starchive/starchive/internal/catalog/pgstore"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/database/schema"
)

// NewStore maps the planets table onto the generic PostgreSQL store.
func NewStore(pool *pgxpool.Pool, baseURL string) *pgstore.Store[Planet, *Planet] {
	columns := schema.CatalogPlanet

	return pgstore.New[Planet, *Planet](pool, pgstore.Mapping[Planet]{
		Kind:             resource.KindPlanets,
		Display:          Descriptor.Display,
		Table:            columns.Table,
		NaturalKeyColumn: columns.Name,
		Columns: []string{
			columns.Name, columns.Diameter, columns.RotationPeriod, columns.OrbitalPeriod,
			columns.Gravity, columns.Population, columns.Climate, columns.Terrain, columns.SurfaceWater,
		},
		Values: func(planet *Planet) []any {
			return []any{
				planet.Name, planet.Diameter, planet.RotationPeriod, planet.OrbitalPeriod,
				planet.Gravity, planet.Population, planet.Climate, planet.Terrain, planet.SurfaceWater,
			}
		},
		ScanScalars: func(planet *Planet) []any {
			return []any{
				&planet.Name, &planet.Diameter, &planet.RotationPeriod, &planet.OrbitalPeriod,
				&planet.Gravity, &planet.Population, &planet.Climate, &planet.Terrain, &planet.SurfaceWater,
			}
		},
		Junctions: []pgstore.Junction{
			{Field: FieldFilms, Link: schema.CatalogFilmPlanet.Inverse(), TargetTable: schema.CatalogFilm.Table},
		},
	}, baseURL)
}
