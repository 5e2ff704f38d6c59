// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"log/slog"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"

	"skillforge/internal/cache"
	"skillforge/internal/models"
	"skillforge/internal/slug"
	"skillforge/internal/store"
)

// Dashboard groups the handlers behind the token-guarded management
// API. Updates arrive as partial JSON documents: fields present in the
// body replace the stored value wholesale, fields absent are preserved.
// Every write invalidates the affected public response cache keys.
type Dashboard struct {
	store     *store.Store
	respCache *cache.ResponseCache
}

// NewDashboard creates a Dashboard handler group. respCache may be nil.
func NewDashboard(s *store.Store, respCache *cache.ResponseCache) *Dashboard {
	return &Dashboard{store: s, respCache: respCache}
}

// --- Courses ---

// ListCourses returns all courses, including fields the public API
// serves identically; the dashboard list exists so the guard applies.
func (d *Dashboard) ListCourses(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.store.ListCourses())
}

// CreateCourse adds a new course to the catalog.
func (d *Dashboard) CreateCourse(w http.ResponseWriter, r *http.Request) {
	var course models.Course
	if err := decodeJSON(w, r, &course); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errMsg := validateCourse(&course); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	created := d.store.CreateCourse(course)
	d.respCache.Invalidate(r.Context(), cache.KeyCourses, cache.KeyHome)
	slog.Info("course created", "id", created.ID, "title", created.Title)
	writeJSON(w, http.StatusCreated, created)
}

// UpdateCourse applies a partial update to a course.
func (d *Dashboard) UpdateCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	patch, err := readRawBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errMsg := validateCoursePatch(patch); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	updated, err := d.store.UpdateCourse(id, patch)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not apply update: "+err.Error())
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}

	d.respCache.Invalidate(r.Context(), cache.KeyCourses, cache.CourseKey(id), cache.KeyHome)
	writeJSON(w, http.StatusOK, updated)
}

// DeleteCourse removes a course from the catalog.
func (d *Dashboard) DeleteCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !d.store.DeleteCourse(id) {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}
	d.respCache.Invalidate(r.Context(), cache.KeyCourses, cache.CourseKey(id), cache.KeyHome)
	slog.Info("course deleted", "id", id)
	w.WriteHeader(http.StatusNoContent)
}

// --- Blog ---

// ListPosts returns all posts with their raw Markdown bodies, which the
// editor needs and the public API never serves.
func (d *Dashboard) ListPosts(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.store.ListPosts())
}

// GetPost returns one post with its raw Markdown body.
func (d *Dashboard) GetPost(w http.ResponseWriter, r *http.Request) {
	post := d.store.FindPost(chi.URLParam(r, "slug"))
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	writeJSON(w, http.StatusOK, post)
}

// CreatePost adds a new blog post. The slug derives from the title (or
// a supplied slug); collisions are rejected rather than shadowed.
func (d *Dashboard) CreatePost(w http.ResponseWriter, r *http.Request) {
	var post models.BlogPost
	if err := decodeJSON(w, r, &post); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if errMsg := validatePost(&post); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	candidate := post.Slug
	if candidate == "" {
		candidate = post.Title
	}
	if existing := d.store.FindPost(slug.Generate(candidate)); existing != nil {
		writeError(w, http.StatusConflict, "a post with this slug already exists")
		return
	}

	created := d.store.CreatePost(post)

	d.respCache.Invalidate(r.Context(), cache.KeyPosts, cache.KeyCategories)
	slog.Info("post created", "slug", created.Slug, "title", created.Title)
	writeJSON(w, http.StatusCreated, created)
}

// UpdatePost applies a partial update to a post. The slug is immutable.
func (d *Dashboard) UpdatePost(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	patch, err := readRawBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := d.store.UpdatePost(slugParam, patch)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not apply update: "+err.Error())
		return
	}
	if updated == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	d.respCache.Invalidate(r.Context(), cache.KeyPosts, cache.KeyCategories, cache.PostKey(slugParam))
	writeJSON(w, http.StatusOK, updated)
}

// DeletePost removes a blog post.
func (d *Dashboard) DeletePost(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")
	if !d.store.DeletePost(slugParam) {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}
	d.respCache.Invalidate(r.Context(), cache.KeyPosts, cache.PostKey(slugParam))
	slog.Info("post deleted", "slug", slugParam)
	w.WriteHeader(http.StatusNoContent)
}

// AddCategory registers a new blog category.
func (d *Dashboard) AddCategory(w http.ResponseWriter, r *http.Request) {
	var payload struct {
		Name string `json:"name"`
	}
	if err := decodeJSON(w, r, &payload); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}
	if strings.TrimSpace(payload.Name) == "" {
		writeError(w, http.StatusBadRequest, "Category name is required.")
		return
	}

	d.store.AddCategory(payload.Name)
	d.respCache.Invalidate(r.Context(), cache.KeyCategories)
	writeJSON(w, http.StatusCreated, d.store.Categories())
}

// --- Messages ---

// ListMessages returns the contact inbox, newest first.
func (d *Dashboard) ListMessages(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.store.ListMessages())
}

// GetMessage returns one contact message.
func (d *Dashboard) GetMessage(w http.ResponseWriter, r *http.Request) {
	msg := d.store.FindMessage(chi.URLParam(r, "id"))
	if msg == nil {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// MarkMessageRead flips the read flag on a message. The body may carry
// {"read": false} to mark it unread again; absent defaults to read.
func (d *Dashboard) MarkMessageRead(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	payload := struct {
		Read *bool `json:"read"`
	}{}
	if r.ContentLength != 0 {
		if err := decodeJSON(w, r, &payload); err != nil {
			writeError(w, http.StatusBadRequest, err.Error())
			return
		}
	}
	read := true
	if payload.Read != nil {
		read = *payload.Read
	}

	msg := d.store.MarkMessageRead(id, read)
	if msg == nil {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}
	writeJSON(w, http.StatusOK, msg)
}

// DeleteMessage removes a contact message.
func (d *Dashboard) DeleteMessage(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	if !d.store.DeleteMessage(id) {
		writeError(w, http.StatusNotFound, "message not found")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// --- Home ---

// GetHome returns the homepage document for the editor.
func (d *Dashboard) GetHome(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, d.store.HomeContent())
}

// UpdateHome applies a section-wise partial update to the homepage.
// Each section present in the body is shallow-merged into the stored
// section; sections absent from the body are untouched.
func (d *Dashboard) UpdateHome(w http.ResponseWriter, r *http.Request) {
	patch, err := readRawBody(w, r)
	if err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	updated, err := d.store.UpdateHomeContent(patch)
	if err != nil {
		writeError(w, http.StatusBadRequest, "could not apply update: "+err.Error())
		return
	}

	d.respCache.Invalidate(r.Context(), cache.KeyHome)
	slog.Info("home content updated")
	writeJSON(w, http.StatusOK, updated)
}
