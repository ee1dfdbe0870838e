// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package resource_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/apperr"
)

/*
TestURLFor checks canonical URL minting, including base normalization.
*/
func TestURLFor(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
		kind    resource.Kind
		id      int64
		want    string
	}{
		{"plain_base", "http://localhost:8080/api/v1", resource.KindFilms, 1, "http://localhost:8080/api/v1/films/1/"},
		{"base_with_trailing_slash", "http://localhost:8080/api/v1/", resource.KindPeople, 42, "http://localhost:8080/api/v1/people/42/"},
		{"production_base", "https://starchive.app/api/v1", resource.KindPlanets, 7, "https://starchive.app/api/v1/planets/7/"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, resource.URLFor(tt.baseURL, tt.kind, tt.id))
		})
	}
}

/*
TestIDFromURL covers both canonical and degenerate reference URLs.
*/
func TestIDFromURL(t *testing.T) {
	tests := []struct {
		name    string
		raw     string
		want    int64
		wantErr bool
	}{
		{"canonical", "http://localhost:8080/api/v1/films/1/", 1, false},
		{"no_trailing_slash", "http://localhost:8080/api/v1/films/12", 12, false},
		{"different_host", "https://mirror.example.com/api/v1/starships/9/", 9, false},
		{"bare_id", "3", 3, false},
		{"empty", "", 0, true},
		{"no_numeric_segment", "http://localhost:8080/api/v1/films/", 0, true},
		{"zero_id", "http://localhost:8080/api/v1/films/0/", 0, true},
		{"negative_id", "http://localhost:8080/api/v1/films/-4/", 0, true},
		{"not_a_url", "definitely not a url", 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id, err := resource.IDFromURL(tt.raw)

			if tt.wantErr {
				require.Error(t, err)
				ae := apperr.As(err)
				require.NotNil(t, ae)
				assert.Equal(t, "INVALID_REFERENCE_FORMAT", ae.Code)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, tt.want, id)
		})
	}
}

/*
TestIDsFromURLs verifies order preservation and first-failure abort.
*/
func TestIDsFromURLs(t *testing.T) {
	ids, err := resource.IDsFromURLs([]string{
		"http://localhost:8080/api/v1/people/3/",
		"http://localhost:8080/api/v1/people/1/",
		"http://localhost:8080/api/v1/people/2/",
	})
	require.NoError(t, err)
	assert.Equal(t, []int64{3, 1, 2}, ids)

	_, err = resource.IDsFromURLs([]string{
		"http://localhost:8080/api/v1/people/3/",
		"garbage",
	})
	require.Error(t, err)
}
