// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package pagination_test

import (
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/starchive/starchive/pkg/pagination"
)

/*
TestFromRequest covers the clamping rules for the page and limit query
parameters.
*/
func TestFromRequest(t *testing.T) {
	tests := []struct {
		name          string
		query         string
		expectedPage  int
		expectedLimit int
	}{
		{name: "defaults", query: "", expectedPage: 1, expectedLimit: 20},
		{name: "explicit values", query: "?page=3&limit=50", expectedPage: 3, expectedLimit: 50},
		{name: "zero page falls back", query: "?page=0", expectedPage: 1, expectedLimit: 20},
		{name: "negative page falls back", query: "?page=-2", expectedPage: 1, expectedLimit: 20},
		{name: "non-numeric falls back", query: "?page=abc&limit=xyz", expectedPage: 1, expectedLimit: 20},
		{name: "limit clamps to max", query: "?limit=1000", expectedPage: 1, expectedLimit: 100},
		{name: "zero limit falls back", query: "?limit=0", expectedPage: 1, expectedLimit: 20},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			request := httptest.NewRequest("GET", "/api/v1/films"+test.query, nil)

			params := pagination.FromRequest(request)

			assert.Equal(t, test.expectedPage, params.Page)
			assert.Equal(t, test.expectedLimit, params.Limit)
		})
	}
}

func TestParams_Offset(t *testing.T) {
	assert.Equal(t, 0, pagination.Params{Page: 1, Limit: 20}.Offset())
	assert.Equal(t, 0, pagination.Params{Page: 0, Limit: 20}.Offset())
	assert.Equal(t, 40, pagination.Params{Page: 3, Limit: 20}.Offset())
}

/*
TestNewMeta checks the total-pages derivation, including the partial final
page and the empty result set.
*/
func TestNewMeta(t *testing.T) {
	tests := []struct {
		name               string
		page, limit        int
		count, total       int
		expectedTotalPages int
	}{
		{name: "exact division", page: 1, limit: 10, count: 10, total: 30, expectedTotalPages: 3},
		{name: "partial last page", page: 4, limit: 10, count: 1, total: 31, expectedTotalPages: 4},
		{name: "empty result", page: 1, limit: 10, count: 0, total: 0, expectedTotalPages: 0},
		{name: "single item", page: 1, limit: 20, count: 1, total: 1, expectedTotalPages: 1},
	}

	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			meta := pagination.NewMeta(test.page, test.limit, test.count, test.total)

			assert.Equal(t, test.page, meta.Page)
			assert.Equal(t, test.count, meta.Count)
			assert.Equal(t, test.total, meta.Total)
			assert.Equal(t, test.expectedTotalPages, meta.TotalPages)
		})
	}
}
