// Copyright (c) 2026 Starchive. All rights reserved.
// Author: dev@starchive.app

package resource

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/starchive/starchive/internal/platform/apperr"
)

// # Canonical URL Identity

// URLFor mints the canonical URL for a resource: <base>/<kind>/<id>/.
//
// The trailing slash is part of the canonical form; stored URLs and minted
// URLs always carry it.
func URLFor(baseURL string, kind Kind, id int64) string {
	return fmt.Sprintf("%s/%s/%d/", strings.TrimRight(baseURL, "/"), kind, id)
}

// IDFromURL extracts the numeric id from a canonical resource URL.
//
// Only the trailing path segment is inspected, so URLs remain valid across
// host or prefix changes. A URL without a trailing numeric segment yields
// an InvalidReference error.
func IDFromURL(raw string) (int64, error) {
	trimmed := strings.TrimRight(strings.TrimSpace(raw), "/")
	if trimmed == "" {
		return 0, apperr.InvalidReference(raw)
	}

	segment := trimmed
	if idx := strings.LastIndex(trimmed, "/"); idx >= 0 {
		segment = trimmed[idx+1:]
	}

	id, err := strconv.ParseInt(segment, 10, 64)
	if err != nil || id <= 0 {
		return 0, apperr.InvalidReference(raw)
	}

	return id, nil
}

// IDsFromURLs maps an ordered list of canonical URLs to their ids,
// preserving input order. The first malformed URL aborts the mapping.
func IDsFromURLs(raws []string) ([]int64, error) {
	ids := make([]int64, len(raws))
	for i, raw := range raws {
		id, err := IDFromURL(raw)
		if err != nil {
			return nil, err
		}
		ids[i] = id
	}
	return ids, nil
}
