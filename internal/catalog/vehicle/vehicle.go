// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package vehicle

import (
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/validate"
)

// # Fields

const (
	FieldName                 = "name"
	FieldModel                = "model"
	FieldVehicleClass         = "vehicle_class"
	FieldManufacturer         = "manufacturer"
	FieldCostInCredits        = "cost_in_credits"
	FieldLength               = "length"
	FieldCrew                 = "crew"
	FieldPassengers           = "passengers"
	FieldMaxAtmospheringSpeed = "max_atmosphering_speed"
	FieldCargoCapacity        = "cargo_capacity"
	FieldConsumables          = "consumables"
	FieldPilots               = "pilots"
	FieldFilms                = "films"
)

// Descriptor identifies the vehicle catalogue and its outbound links.
var Descriptor = resource.Descriptor{
	Kind:       resource.KindVehicles,
	Display:    "Vehicle",
	NaturalKey: FieldName,
	Relations: []resource.RelationField{
		{Name: FieldPilots, Target: resource.KindPeople},
		{Name: FieldFilms, Target: resource.KindFilms},
	},
}

/*
Vehicle is a ground or atmospheric transport craft.

Physical attributes are stored as free-form text because source records
mix numbers with values such as "unknown" or "none".
*/
type Vehicle struct {
	resource.Base

	Name                 string `json:"name"`
	Model                string `json:"model,omitempty"`
	VehicleClass         string `json:"vehicle_class,omitempty"`
	Manufacturer         string `json:"manufacturer,omitempty"`
	CostInCredits        string `json:"cost_in_credits,omitempty"`
	Length               string `json:"length,omitempty"`
	Crew                 string `json:"crew,omitempty"`
	Passengers           string `json:"passengers,omitempty"`
	MaxAtmospheringSpeed string `json:"max_atmosphering_speed,omitempty"`
	CargoCapacity        string `json:"cargo_capacity,omitempty"`
	Consumables          string `json:"consumables,omitempty"`

	Pilots resource.RefList `json:"pilots,omitempty"`
	Films  resource.RefList `json:"films,omitempty"`
}

func (vehicle *Vehicle) NaturalKey() string {
	return vehicle.Name
}

// RelationRefs exposes the relation URL arrays keyed by wire name. Absent
// fields carry a nil slice; the resolver leaves them untouched.
func (vehicle *Vehicle) RelationRefs() map[string][]string {
	return map[string][]string{
		FieldPilots: vehicle.Pilots,
		FieldFilms:  vehicle.Films,
	}
}

func (vehicle *Vehicle) ReferenceRefs() map[string]*string {
	return nil
}

func (vehicle *Vehicle) SetRelationURLs(field string, urls []string) {
	switch field {
	case FieldPilots:
		vehicle.Pilots = urls
	case FieldFilms:
		vehicle.Films = urls
	}
}

// Merge folds non-empty incoming fields into the receiver. Empty strings
// and nil relation lists leave the stored value untouched.
func (vehicle *Vehicle) Merge(in *Vehicle) {
	if in.Name != "" {
		vehicle.Name = in.Name
	}
	if in.Model != "" {
		vehicle.Model = in.Model
	}
	if in.VehicleClass != "" {
		vehicle.VehicleClass = in.VehicleClass
	}
	if in.Manufacturer != "" {
		vehicle.Manufacturer = in.Manufacturer
	}
	if in.CostInCredits != "" {
		vehicle.CostInCredits = in.CostInCredits
	}
	if in.Length != "" {
		vehicle.Length = in.Length
	}
	if in.Crew != "" {
		vehicle.Crew = in.Crew
	}
	if in.Passengers != "" {
		vehicle.Passengers = in.Passengers
	}
	if in.MaxAtmospheringSpeed != "" {
		vehicle.MaxAtmospheringSpeed = in.MaxAtmospheringSpeed
	}
	if in.CargoCapacity != "" {
		vehicle.CargoCapacity = in.CargoCapacity
	}
	if in.Consumables != "" {
		vehicle.Consumables = in.Consumables
	}
	if in.Pilots != nil {
		vehicle.Pilots = in.Pilots
	}
	if in.Films != nil {
		vehicle.Films = in.Films
	}
}

// Validate checks field constraints before persistence.
func Validate(vehicle *Vehicle) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, vehicle.Name)
	validator.MaxLen(FieldName, vehicle.Name, 300)

	return validator.Err()
}
