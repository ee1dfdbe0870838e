// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// CatalogVehicleTable represents the 'vehicles' table
type CatalogVehicleTable struct {
	Table                string
	ID                   string
	URL                  string
	Name                 string
	Model                string
	VehicleClass         string
	Manufacturer         string
	CostInCredits        string
	Length               string
	Crew                 string
	Passengers           string
	MaxAtmospheringSpeed string
	CargoCapacity        string
	Consumables          string
	Created              string
	Edited               string
}

// CatalogVehicle is the schema definition for vehicles
var CatalogVehicle = CatalogVehicleTable{
	Table:                "vehicles",
	ID:                   "id",
	URL:                  "url",
	Name:                 "name",
	Model:                "model",
	VehicleClass:         "vehicle_class",
	Manufacturer:         "manufacturer",
	CostInCredits:        "cost_in_credits",
	Length:               "length",
	Crew:                 "crew",
	Passengers:           "passengers",
	MaxAtmospheringSpeed: "max_atmosphering_speed",
	CargoCapacity:        "cargo_capacity",
	Consumables:          "consumables",
	Created:              "created",
	Edited:               "edited",
}

func (t CatalogVehicleTable) Columns() []string {
	return []string{
		t.ID, t.URL, t.Name, t.Model, t.VehicleClass, t.Manufacturer, t.CostInCredits, t.Length,
		t.Crew, t.Passengers, t.MaxAtmospheringSpeed, t.CargoCapacity, t.Consumables, t.Created, t.Edited,
	}
}
