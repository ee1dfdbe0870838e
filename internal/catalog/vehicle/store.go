// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package vehicle

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starchive/starchive/internal/catalog/pgstore"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/database/schema"
)

// NewStore maps the vehicles table onto the generic PostgreSQL store.
func NewStore(pool *pgxpool.Pool, baseURL string) *pgstore.Store[Vehicle, *Vehicle] {
	columns := schema.CatalogVehicle

	return pgstore.New[Vehicle, *Vehicle](pool, pgstore.Mapping[Vehicle]{
		Kind:             resource.KindVehicles,
		Display:          Descriptor.Display,
		Table:            columns.Table,
		NaturalKeyColumn: columns.Name,
		Columns: []string{
			columns.Name, columns.Model, columns.VehicleClass, columns.Manufacturer,
			columns.CostInCredits, columns.Length, columns.Crew, columns.Passengers,
			columns.MaxAtmospheringSpeed, columns.CargoCapacity, columns.Consumables,
		},
		Values: func(vehicle *Vehicle) []any {
			return []any{
				vehicle.Name, vehicle.Model, vehicle.VehicleClass, vehicle.Manufacturer,
				vehicle.CostInCredits, vehicle.Length, vehicle.Crew, vehicle.Passengers,
				vehicle.MaxAtmospheringSpeed, vehicle.CargoCapacity, vehicle.Consumables,
			}
		},
		ScanScalars: func(vehicle *Vehicle) []any {
			return []any{
				&vehicle.Name, &vehicle.Model, &vehicle.VehicleClass, &vehicle.Manufacturer,
				&vehicle.CostInCredits, &vehicle.Length, &vehicle.Crew, &vehicle.Passengers,
				&vehicle.MaxAtmospheringSpeed, &vehicle.CargoCapacity, &vehicle.Consumables,
			}
		},
		Junctions: []pgstore.Junction{
			{Field: FieldPilots, Link: schema.CatalogPersonVehicle.Inverse(), TargetTable: schema.CatalogPerson.Table},
			{Field: FieldFilms, Link: schema.CatalogFilmVehicle.Inverse(), TargetTable: schema.CatalogFilm.Table},
		},
	}, baseURL)
}
