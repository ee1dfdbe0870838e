// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package film

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starchive/starchive/internal/catalog/pgstore"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/database/schema"
)

// NewStore maps the films table onto the generic PostgreSQL store.
func NewStore(pool *pgxpool.Pool, baseURL string) *pgstore.Store[Film, *Film] {
	columns := schema.CatalogFilm

	return pgstore.New[Film, *Film](pool, pgstore.Mapping[Film]{
		Kind:             resource.KindFilms,
		Display:          Descriptor.Display,
		Table:            columns.Table,
		NaturalKeyColumn: columns.Title,
		Columns: []string{
			columns.Title, columns.EpisodeID, columns.OpeningCrawl,
			columns.Director, columns.Producer, columns.ReleaseDate,
		},
		Values: func(film *Film) []any {
			return []any{film.Title, film.EpisodeID, film.OpeningCrawl, film.Director, film.Producer, film.ReleaseDate}
		},
		ScanScalars: func(film *Film) []any {
			return []any{&film.Title, &film.EpisodeID, &film.OpeningCrawl, &film.Director, &film.Producer, &film.ReleaseDate}
		},
		Junctions: []pgstore.Junction{
			{Field: FieldCharacters, Link: schema.CatalogFilmCharacter, TargetTable: schema.CatalogPerson.Table},
			{Field: FieldPlanets, Link: schema.CatalogFilmPlanet, TargetTable: schema.CatalogPlanet.Table},
			{Field: FieldStarships, Link: schema.CatalogFilmStarship, TargetTable: schema.CatalogStarship.Table},
			{Field: FieldVehicles, Link: schema.CatalogFilmVehicle, TargetTable: schema.CatalogVehicle.Table},
			{Field: FieldSpecies, Link: schema.CatalogFilmSpecies, TargetTable: schema.CatalogSpecies.Table},
		},
	}, baseURL)
}
