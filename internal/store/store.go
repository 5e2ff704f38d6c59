// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package store holds the in-process authoritative state for the
// SkillForge site: the course catalog, blog posts, the derived category
// index, contact messages, and the home page content document.
//
// The store is seeded once at construction and lives for the lifetime
// of the process; nothing is persisted across restarts. All collections
// sit behind a single RWMutex so the store is safe for concurrent
// handlers, and every value handed out is a copy — callers can never
// mutate internal state through a returned value.
//
// Lookup misses are reported as explicit absence (nil pointers, false
// booleans), never as errors. The only errors the store returns are
// malformed JSON patches.
package store

import (
	"sync"

	"skillforge/internal/models"
)

// Store owns the four in-memory collections.
type Store struct {
	mu         sync.RWMutex
	courses    []models.Course
	posts      []models.BlogPost
	categories []string
	messages   []models.ContactMessage
	home       models.HomeContent
}

// New constructs a Store populated with the seed fixtures: the course
// catalog, the initial blog posts (with the category index derived from
// them), an empty message list, and the home content document assembled
// from the per-section seed functions.
func New() *Store {
	s := &Store{
		courses: seedCourses(),
		posts:   seedPosts(),
		home: models.HomeContent{
			Hero:            seedHero(),
			Support:         seedSupport(),
			Features:        seedFeatures(),
			Benefits:        seedBenefits(),
			Pricing:         seedPricing(),
			Testimonial:     seedTestimonial(),
			FeaturedCourses: seedFeaturedCourses(),
			GetInvolved:     seedGetInvolved(),
			Team:            seedTeam(),
			Footer:          seedFooter(),
			TrustedBrands:   seedTrustedBrands(),
		},
	}

	// Derive the category index from the seeded posts.
	for _, p := range s.posts {
		s.addCategoryLocked(p.Category)
	}

	return s
}
