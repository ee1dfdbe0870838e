// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// CatalogFilmTable represents the 'films' table
type CatalogFilmTable struct {
	Table        string
	ID           string
	URL          string
	Title        string
	EpisodeID    string
	OpeningCrawl string
	Director     string
	Producer     string
	ReleaseDate  string
	Created      string
	Edited       string
}

// CatalogFilm is the schema definition for films
var CatalogFilm = CatalogFilmTable{
	Table:        "films",
	ID:           "id",
	URL:          "url",
	Title:        "title",
	EpisodeID:    "episode_id",
	OpeningCrawl: "opening_crawl",
	Director:     "director",
	Producer:     "producer",
	ReleaseDate:  "release_date",
	Created:      "created",
	Edited:       "edited",
}

func (t CatalogFilmTable) Columns() []string {
	return []string{t.ID, t.URL, t.Title, t.EpisodeID, t.OpeningCrawl, t.Director, t.Producer, t.ReleaseDate, t.Created, t.Edited}
}
