// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/microcosm-cc/bluemonday"

	"skillforge/internal/cache"
	"skillforge/internal/markdown"
	"skillforge/internal/models"
	"skillforge/internal/store"
)

// Public groups the handlers behind the unauthenticated site API. List
// and detail responses are identical for every visitor, so they go
// through the Valkey response cache when one is configured.
type Public struct {
	store     *store.Store
	respCache *cache.ResponseCache
	sanitizer *bluemonday.Policy
}

// NewPublic creates a Public handler group. respCache may be nil.
func NewPublic(s *store.Store, respCache *cache.ResponseCache) *Public {
	return &Public{
		store: s,
		// Contact form fields are plain text; strip all markup.
		sanitizer: bluemonday.StrictPolicy(),
		respCache: respCache,
	}
}

// publicPost is a blog post as the public site sees it: the Markdown
// body is replaced by its rendered HTML.
type publicPost struct {
	models.BlogPost
	Body     string `json:"body,omitempty"`
	BodyHTML string `json:"body_html,omitempty"`
}

// cached serves the key from the response cache, or builds the payload,
// stores it, and serves it.
func (p *Public) cached(w http.ResponseWriter, r *http.Request, key string, build func() (any, error)) {
	ctx := r.Context()
	if body, ok := p.respCache.Get(ctx, key); ok {
		writeRawJSON(w, http.StatusOK, body)
		return
	}

	v, err := build()
	if err != nil {
		slog.Error("build public response failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	body, err := json.Marshal(v)
	if err != nil {
		slog.Error("encode public response failed", "key", key, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	p.respCache.Set(ctx, key, body)
	writeRawJSON(w, http.StatusOK, body)
}

// ListCourses returns the full course catalog, newest first.
func (p *Public) ListCourses(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.KeyCourses, func() (any, error) {
		return p.store.ListCourses(), nil
	})
}

// GetCourse returns a single course by ID.
func (p *Public) GetCourse(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	course := p.store.FindCourse(id)
	if course == nil {
		writeError(w, http.StatusNotFound, "course not found")
		return
	}
	writeJSON(w, http.StatusOK, course)
}

// ListPosts returns the blog index. Post bodies are omitted; the detail
// endpoint serves them rendered.
func (p *Public) ListPosts(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.KeyPosts, func() (any, error) {
		posts := p.store.ListPosts()
		out := make([]models.BlogPost, len(posts))
		for i, post := range posts {
			post.Body = ""
			out[i] = post
		}
		return out, nil
	})
}

// GetPost returns a single blog post by slug, with its Markdown body
// rendered to sanitized HTML.
func (p *Public) GetPost(w http.ResponseWriter, r *http.Request) {
	slugParam := chi.URLParam(r, "slug")

	if body, ok := p.respCache.Get(r.Context(), cache.PostKey(slugParam)); ok {
		writeRawJSON(w, http.StatusOK, body)
		return
	}

	post := p.store.FindPost(slugParam)
	if post == nil {
		writeError(w, http.StatusNotFound, "post not found")
		return
	}

	html, err := markdown.Render(post.Body)
	if err != nil {
		slog.Error("render post body failed", "slug", slugParam, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}

	resp := publicPost{BlogPost: *post, BodyHTML: html}
	body, err := json.Marshal(resp)
	if err != nil {
		slog.Error("encode post failed", "slug", slugParam, "error", err)
		writeError(w, http.StatusInternalServerError, "internal server error")
		return
	}
	p.respCache.Set(r.Context(), cache.PostKey(slugParam), body)
	writeRawJSON(w, http.StatusOK, body)
}

// Categories returns the sorted blog category index.
func (p *Public) Categories(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.KeyCategories, func() (any, error) {
		return p.store.Categories(), nil
	})
}

// Home returns the homepage content document.
func (p *Public) Home(w http.ResponseWriter, r *http.Request) {
	p.cached(w, r, cache.KeyHome, func() (any, error) {
		return p.store.HomeContent(), nil
	})
}

// ContactSubmit accepts a contact form submission. The endpoint is
// rate-limited at the router; here we validate, strip any markup from
// the free-text fields, and store the message for the dashboard inbox.
func (p *Public) ContactSubmit(w http.ResponseWriter, r *http.Request) {
	var msg models.ContactMessage
	if err := decodeJSON(w, r, &msg); err != nil {
		writeError(w, http.StatusBadRequest, err.Error())
		return
	}

	if errMsg := validateContactMessage(&msg); errMsg != "" {
		writeError(w, http.StatusBadRequest, errMsg)
		return
	}

	msg.FirstName = p.sanitizer.Sanitize(msg.FirstName)
	msg.LastName = p.sanitizer.Sanitize(msg.LastName)
	msg.Email = p.sanitizer.Sanitize(msg.Email)
	msg.Phone = p.sanitizer.Sanitize(msg.Phone)
	msg.Company = p.sanitizer.Sanitize(msg.Company)
	msg.InquiryType = p.sanitizer.Sanitize(msg.InquiryType)
	msg.Subject = p.sanitizer.Sanitize(msg.Subject)
	msg.Message = p.sanitizer.Sanitize(msg.Message)

	created := p.store.CreateMessage(msg)
	slog.Info("contact message received", "id", created.ID, "subject", created.Subject)

	writeJSON(w, http.StatusCreated, map[string]any{
		"success": true,
		"id":      created.ID,
	})
}

// Healthz is the liveness probe.
func (p *Public) Healthz(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}
