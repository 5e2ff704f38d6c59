// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"

	"skillforge/internal/models"
)

// HomeContent returns a deep copy of the home page document. The
// sections contain nested slices, so a plain struct copy would still
// share backing arrays with store state; the JSON round-trip severs
// every reference.
func (s *Store) HomeContent() models.HomeContent {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return cloneHome(s.home)
}

// UpdateHomeContent applies a partial home document, merging it
// section by section: each named section present in the patch is
// shallow-merged over the existing section (fields absent from the
// patch survive), and sections absent from the patch are not touched
// at all. Unknown top-level keys are ignored.
//
// The merge runs against a working copy, so a malformed patch leaves
// the stored document unchanged. Returns the updated document.
func (s *Store) UpdateHomeContent(patch json.RawMessage) (models.HomeContent, error) {
	var sections map[string]json.RawMessage
	if err := json.Unmarshal(patch, &sections); err != nil {
		return models.HomeContent{}, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	updated := cloneHome(s.home)
	for name, raw := range sections {
		var err error
		switch name {
		case "hero":
			err = mergeFields(&updated.Hero, raw)
		case "support":
			err = mergeFields(&updated.Support, raw)
		case "features":
			err = mergeFields(&updated.Features, raw)
		case "benefits":
			err = mergeFields(&updated.Benefits, raw)
		case "pricing":
			err = mergeFields(&updated.Pricing, raw)
		case "testimonial":
			err = mergeFields(&updated.Testimonial, raw)
		case "featuredCourses":
			err = mergeFields(&updated.FeaturedCourses, raw)
		case "getInvolved":
			err = mergeFields(&updated.GetInvolved, raw)
		case "team":
			err = mergeFields(&updated.Team, raw)
		case "footer":
			err = mergeFields(&updated.Footer, raw)
		case "trustedBrands":
			err = mergeFields(&updated.TrustedBrands, raw)
		}
		if err != nil {
			return models.HomeContent{}, err
		}
	}

	s.home = updated
	return cloneHome(s.home), nil
}

// cloneHome deep-copies a home document via a JSON round-trip. The
// document is plain data (strings, numbers, slices of structs), so the
// round-trip is lossless.
func cloneHome(h models.HomeContent) models.HomeContent {
	b, err := json.Marshal(h)
	if err != nil {
		// The document contains only marshalable types; reaching this
		// would be a programming error.
		panic(err)
	}
	var out models.HomeContent
	if err := json.Unmarshal(b, &out); err != nil {
		panic(err)
	}
	return out
}
