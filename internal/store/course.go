// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"

	"github.com/google/uuid"

	"skillforge/internal/models"
)

// ListCourses returns a snapshot of the full course collection,
// newest first. Mutating the returned slice or its elements has no
// effect on the store.
func (s *Store) ListCourses() []models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Course, len(s.courses))
	for i, c := range s.courses {
		out[i] = c.Clone()
	}
	return out
}

// FindCourse retrieves a course by ID. Returns nil if not found.
func (s *Store) FindCourse(id string) *models.Course {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, c := range s.courses {
		if c.ID == id {
			out := c.Clone()
			return &out
		}
	}
	return nil
}

// CreateCourse adds a course to the catalog, assigning a generated ID
// if none is supplied, and returns the stored copy. New courses are
// prepended so listings stay newest-first.
func (s *Store) CreateCourse(c models.Course) models.Course {
	s.mu.Lock()
	defer s.mu.Unlock()

	if c.ID == "" {
		c.ID = uuid.NewString()
	}
	stored := c.Clone()
	s.courses = append([]models.Course{stored}, s.courses...)
	return stored.Clone()
}

// UpdateCourse applies a partial JSON patch to an existing course.
// Fields omitted from the patch keep their current values, and the ID
// cannot be changed through a patch. Returns nil if no course has the
// given ID; the error is non-nil only for a malformed patch.
func (s *Store) UpdateCourse(id string, patch json.RawMessage) (*models.Course, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.courses {
		if c.ID != id {
			continue
		}
		updated := c.Clone()
		if err := mergeFields(&updated, patch); err != nil {
			return nil, err
		}
		updated.ID = id
		s.courses[i] = updated
		out := updated.Clone()
		return &out, nil
	}
	return nil, nil
}

// DeleteCourse removes a course by ID, reporting whether a removal
// actually occurred.
func (s *Store) DeleteCourse(id string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, c := range s.courses {
		if c.ID == id {
			s.courses = append(s.courses[:i], s.courses[i+1:]...)
			return true
		}
	}
	return false
}
