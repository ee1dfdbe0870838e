// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package image

import (
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/starchive/starchive/internal/catalog/pgstore"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/database/schema"
)

// NewStore maps the images table onto the generic PostgreSQL store.
func NewStore(pool *pgxpool.Pool, baseURL string) *pgstore.Store[Image, *Image] {
	columns := schema.CatalogImage

	return pgstore.New[Image, *Image](pool, pgstore.Mapping[Image]{
		Kind:             resource.KindImages,
		Display:          Descriptor.Display,
		Table:            columns.Table,
		NaturalKeyColumn: columns.Name,
		Columns:          []string{columns.Name, columns.Description, columns.FileURL},
		Values: func(image *Image) []any {
			return []any{image.Name, image.Description, image.FileURL}
		},
		ScanScalars: func(image *Image) []any {
			return []any{&image.Name, &image.Description, &image.FileURL}
		},
	}, baseURL)
}
