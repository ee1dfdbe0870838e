// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package image

import (
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/validate"
)

// # Fields

const (
	FieldName        = "name"
	FieldDescription = "description"
	FieldFileURL     = "file_url"
)

// Descriptor identifies the image catalogue. Images carry no links to
// other catalogues.
var Descriptor = resource.Descriptor{
	Kind:       resource.KindImages,
	Display:    "Image",
	NaturalKey: FieldName,
}

// Image is a piece of hosted artwork associated with the archive.
type Image struct {
	resource.Base

	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	FileURL     string `json:"file_url,omitempty"`
}

func (image *Image) NaturalKey() string {
	return image.Name
}

func (image *Image) RelationRefs() map[string][]string {
	return nil
}

func (image *Image) ReferenceRefs() map[string]*string {
	return nil
}

func (image *Image) SetRelationURLs(field string, urls []string) {}

// Merge folds non-empty incoming fields into the receiver.
func (image *Image) Merge(in *Image) {
	if in.Name != "" {
		image.Name = in.Name
	}
	if in.Description != "" {
		image.Description = in.Description
	}
	if in.FileURL != "" {
		image.FileURL = in.FileURL
	}
}

// Validate checks field constraints before persistence.
func Validate(image *Image) error {
	validator := &validate.Validator{}
	validator.Required(FieldName, image.Name)
	validator.MaxLen(FieldName, image.Name, 300)
	validator.MaxLen(FieldFileURL, image.FileURL, 2048)

	return validator.Err()
}
