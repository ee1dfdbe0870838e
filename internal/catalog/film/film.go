// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

// Package film defines the film resource: the episodic entries of the
// fictional universe, related to nearly every other catalogue resource.
package film

import (
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/validate"
)

// Film represents one episodic film entry.
type Film struct {
	resource.Base

	Title        string `json:"title"`
	EpisodeID    int    `json:"episode_id"`
	OpeningCrawl string `json:"opening_crawl"`
	Director     string `json:"director"`
	Producer     string `json:"producer"`
	ReleaseDate  string `json:"release_date"`

	Characters resource.RefList `json:"characters"`
	Planets    resource.RefList `json:"planets"`
	Starships  resource.RefList `json:"starships"`
	Vehicles   resource.RefList `json:"vehicles"`
	Species    resource.RefList `json:"species"`
}

// Global field names for validation and relation wiring
const (
	FieldTitle        = "title"
	FieldEpisodeID    = "episode_id"
	FieldOpeningCrawl = "opening_crawl"
	FieldDirector     = "director"
	FieldProducer     = "producer"
	FieldReleaseDate  = "release_date"
	FieldCharacters   = "characters"
	FieldPlanets      = "planets"
	FieldStarships    = "starships"
	FieldVehicles     = "vehicles"
	FieldSpecies      = "species"
)

// Descriptor declares the film resource for the generic lifecycle.
var Descriptor = resource.Descriptor{
	Kind:       resource.KindFilms,
	Display:    "Film",
	NaturalKey: FieldTitle,
	Relations: []resource.RelationField{
		{Name: FieldCharacters, Target: resource.KindPeople},
		{Name: FieldPlanets, Target: resource.KindPlanets},
		{Name: FieldStarships, Target: resource.KindStarships},
		{Name: FieldVehicles, Target: resource.KindVehicles},
		{Name: FieldSpecies, Target: resource.KindSpecies},
	},
}

// NaturalKey returns the uniqueness-bearing title.
func (film *Film) NaturalKey() string { return film.Title }

// RelationRefs exposes the relation URL arrays keyed by wire name.
func (film *Film) RelationRefs() map[string][]string {
	return map[string][]string{
		FieldCharacters: film.Characters,
		FieldPlanets:    film.Planets,
		FieldStarships:  film.Starships,
		FieldVehicles:   film.Vehicles,
		FieldSpecies:    film.Species,
	}
}

// ReferenceRefs reports no to-one references for films.
func (film *Film) ReferenceRefs() map[string]*string { return nil }

// SetRelationURLs overwrites one relation field with ordered URLs.
func (film *Film) SetRelationURLs(field string, urls []string) {
	switch field {
	case FieldCharacters:
		film.Characters = urls
	case FieldPlanets:
		film.Planets = urls
	case FieldStarships:
		film.Starships = urls
	case FieldVehicles:
		film.Vehicles = urls
	case FieldSpecies:
		film.Species = urls
	}
}

// Merge applies a partial update, skipping present-but-falsy scalars.
func (film *Film) Merge(in *Film) {
	if in.Title != "" {
		film.Title = in.Title
	}
	if in.EpisodeID != 0 {
		film.EpisodeID = in.EpisodeID
	}
	if in.OpeningCrawl != "" {
		film.OpeningCrawl = in.OpeningCrawl
	}
	if in.Director != "" {
		film.Director = in.Director
	}
	if in.Producer != "" {
		film.Producer = in.Producer
	}
	if in.ReleaseDate != "" {
		film.ReleaseDate = in.ReleaseDate
	}
}

// Validate checks the semantic validity of a fully merged film.
func Validate(film *Film) error {
	validator := &validate.Validator{}

	validator.Required(FieldTitle, film.Title).MaxLen(FieldTitle, film.Title, 300)
	validator.Custom(FieldEpisodeID, film.EpisodeID < 0, "Must not be negative")
	validator.MaxLen(FieldDirector, film.Director, 300)
	validator.MaxLen(FieldProducer, film.Producer, 300)

	return validator.Err()
}
