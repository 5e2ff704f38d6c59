// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import (
	"encoding/json"
	"sort"
	"strings"

	"skillforge/internal/models"
	"skillforge/internal/slug"
)

// ListPosts returns a snapshot of all blog posts, newest first.
func (s *Store) ListPosts() []models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.BlogPost, len(s.posts))
	copy(out, s.posts)
	return out
}

// FindPost retrieves a post by slug. Returns nil if not found.
func (s *Store) FindPost(postSlug string) *models.BlogPost {
	s.mu.RLock()
	defer s.mu.RUnlock()

	for _, p := range s.posts {
		if p.Slug == postSlug {
			out := p
			return &out
		}
	}
	return nil
}

// CreatePost adds a blog post, deriving the slug from the supplied slug
// if present (re-slugified) or from the title otherwise. The post's
// category is added to the category index as a side effect. New posts
// are prepended so listings stay newest-first.
func (s *Store) CreatePost(p models.BlogPost) models.BlogPost {
	s.mu.Lock()
	defer s.mu.Unlock()

	if p.Slug != "" {
		p.Slug = slug.Generate(p.Slug)
	} else {
		p.Slug = slug.Generate(p.Title)
	}

	s.posts = append([]models.BlogPost{p}, s.posts...)
	s.addCategoryLocked(p.Category)
	return p
}

// UpdatePost applies a partial JSON patch to the post with the given
// slug. The slug itself is immutable through a patch. If the patch
// introduces a category not yet in the index, the index is extended.
// Returns nil if no post has the given slug.
func (s *Store) UpdatePost(postSlug string, patch json.RawMessage) (*models.BlogPost, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.Slug != postSlug {
			continue
		}
		updated := p
		if err := mergeFields(&updated, patch); err != nil {
			return nil, err
		}
		updated.Slug = postSlug
		s.posts[i] = updated
		s.addCategoryLocked(updated.Category)
		out := updated
		return &out, nil
	}
	return nil, nil
}

// DeletePost removes a post by slug, reporting whether a removal
// actually occurred. The category index is left alone — it is a
// derived, append-only record of every category ever used.
func (s *Store) DeletePost(postSlug string) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	for i, p := range s.posts {
		if p.Slug == postSlug {
			s.posts = append(s.posts[:i], s.posts[i+1:]...)
			return true
		}
	}
	return false
}

// Categories returns the current sorted, deduplicated category index.
func (s *Store) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]string, len(s.categories))
	copy(out, s.categories)
	return out
}

// AddCategory inserts a category into the index. The input is trimmed;
// empty and already-present values are no-ops.
func (s *Store) AddCategory(name string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.addCategoryLocked(name)
}

// addCategoryLocked is AddCategory without locking. Callers must hold s.mu.
func (s *Store) addCategoryLocked(name string) {
	name = strings.TrimSpace(name)
	if name == "" {
		return
	}
	for _, existing := range s.categories {
		if existing == name {
			return
		}
	}
	s.categories = append(s.categories, name)
	sort.Strings(s.categories)
}
