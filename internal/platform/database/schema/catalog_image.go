// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package schema

// CatalogImageTable represents the 'images' table
type CatalogImageTable struct {
	Table       string
	ID          string
	URL         string
	Name        string
	Description string
	FileURL     string
	Created     string
	Edited      string
}

// CatalogImage is the schema definition for images
var CatalogImage = CatalogImageTable{
	Table:       "images",
	ID:          "id",
	URL:         "url",
	Name:        "name",
	Description: "description",
	FileURL:     "file_url",
	Created:     "created",
	Edited:      "edited",
}

func (t CatalogImageTable) Columns() []string {
	return []string{t.ID, t.URL, t.Name, t.Description, t.FileURL, t.Created, t.Edited}
}
