// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package film_test

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/starchive/starchive/internal/catalog/film"
	"github.com/starchive/starchive/internal/catalog/resource"
	"github.com/starchive/starchive/internal/platform/apperr"
)

/*
TestFilm_Merge asserts falsy-skip semantics on every scalar, including the
numeric episode field.
*/
func TestFilm_Merge(t *testing.T) {
	stored := film.Film{
		Title:        "A New Hope",
		EpisodeID:    4,
		OpeningCrawl: "It is a period of civil war.",
		Director:     "George Lucas",
		Producer:     "Gary Kurtz, Rick McCallum",
		ReleaseDate:  "1977-05-25",
	}

	tests := []struct {
		name     string
		in       film.Film
		expected film.Film
	}{
		{
			name:     "empty payload changes nothing",
			in:       film.Film{},
			expected: stored,
		},
		{
			name: "single scalar updates, rest survives",
			in:   film.Film{Director: "Irvin Kershner"},
			expected: film.Film{
				Title:        "A New Hope",
				EpisodeID:    4,
				OpeningCrawl: "It is a period of civil war.",
				Director:     "Irvin Kershner",
				Producer:     "Gary Kurtz, Rick McCallum",
				ReleaseDate:  "1977-05-25",
			},
		},
		{
			name: "zero episode id is skipped",
			in:   film.Film{EpisodeID: 0, Title: "Star Wars"},
			expected: film.Film{
				Title:        "Star Wars",
				EpisodeID:    4,
				OpeningCrawl: "It is a period of civil war.",
				Director:     "George Lucas",
				Producer:     "Gary Kurtz, Rick McCallum",
				ReleaseDate:  "1977-05-25",
			},
		},
		{
			name: "nonzero episode id replaces",
			in:   film.Film{EpisodeID: 5},
			expected: film.Film{
				Title:        "A New Hope",
				EpisodeID:    5,
				OpeningCrawl: "It is a period of civil war.",
				Director:     "George Lucas",
				Producer:     "Gary Kurtz, Rick McCallum",
				ReleaseDate:  "1977-05-25",
			},
		},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			target := stored
			target.Merge(&test.in)
			assert.Equal(t, test.expected, target)
		})
	}
}

/*
TestFilm_DecodeRelations pins the wire shapes of a relation field: absent
and null (both nil), explicit empty (non-nil empty), and populated.
*/
func TestFilm_DecodeRelations(t *testing.T) {
	t.Run("absent field stays nil", func(t *testing.T) {
		var decoded film.Film
		require.NoError(t, json.Unmarshal([]byte(`{"title":"A New Hope"}`), &decoded))
		assert.Nil(t, decoded.Characters)
	})

	t.Run("null field stays nil", func(t *testing.T) {
		var decoded film.Film
		require.NoError(t, json.Unmarshal([]byte(`{"title":"A New Hope","characters":null}`), &decoded))
		assert.Nil(t, decoded.Characters, "null must decode as absent, not as an explicit clear")
	})

	t.Run("explicit empty list is non-nil", func(t *testing.T) {
		var decoded film.Film
		require.NoError(t, json.Unmarshal([]byte(`{"characters":[]}`), &decoded))
		require.NotNil(t, decoded.Characters)
		assert.Empty(t, decoded.Characters)
	})

	t.Run("populated list preserves order", func(t *testing.T) {
		var decoded film.Film
		payload := `{"characters":["http://localhost:8080/api/v1/people/2/","http://localhost:8080/api/v1/people/1/"]}`
		require.NoError(t, json.Unmarshal([]byte(payload), &decoded))
		assert.Equal(t, resource.RefList{
			"http://localhost:8080/api/v1/people/2/",
			"http://localhost:8080/api/v1/people/1/",
		}, decoded.Characters)
	})

	t.Run("nested list is rejected", func(t *testing.T) {
		var decoded film.Film
		err := json.Unmarshal([]byte(`{"characters":[["http://localhost:8080/api/v1/people/1/"]]}`), &decoded)
		assert.True(t, errors.Is(err, resource.ErrNestedReferenceList))
	})

	t.Run("non-string element is rejected", func(t *testing.T) {
		var decoded film.Film
		err := json.Unmarshal([]byte(`{"characters":[42]}`), &decoded)
		assert.True(t, errors.Is(err, resource.ErrNonStringReference))
	})
}

/*
TestFilm_Validate covers the title requirement and the episode range check.
*/
func TestFilm_Validate(t *testing.T) {
	tests := []struct {
		name    string
		film    film.Film
		wantErr bool
	}{
		{name: "valid", film: film.Film{Title: "A New Hope", EpisodeID: 4}, wantErr: false},
		{name: "missing title", film: film.Film{EpisodeID: 4}, wantErr: true},
		{name: "negative episode", film: film.Film{Title: "A New Hope", EpisodeID: -1}, wantErr: true},
		{name: "zero episode allowed", film: film.Film{Title: "Untitled"}, wantErr: false},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			err := film.Validate(&test.film)
			if !test.wantErr {
				assert.NoError(t, err)
				return
			}
			require.Error(t, err)
			ae := apperr.As(err)
			require.NotNil(t, ae)
			assert.Equal(t, "VALIDATION_ERROR", ae.Code)
		})
	}
}
