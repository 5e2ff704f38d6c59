// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package handlers

import (
	"encoding/json"
	"strings"
	"unicode/utf8"

	"skillforge/internal/models"
)

// Validation limits for incoming content fields.
const (
	maxNameLen    = 100
	maxEmailLen   = 254
	maxSubjectLen = 300
	maxMessageLen = 10_000
	maxTitleLen   = 300
	maxBodyLen    = 100_000
)

// validateContactMessage checks a contact form submission and returns
// the first error found, or empty when the message is acceptable.
func validateContactMessage(m *models.ContactMessage) string {
	if strings.TrimSpace(m.FirstName) == "" {
		return "First name is required."
	}
	if utf8.RuneCountInString(m.FirstName) > maxNameLen || utf8.RuneCountInString(m.LastName) > maxNameLen {
		return "Name is too long (max 100 characters)."
	}
	email := strings.TrimSpace(m.Email)
	if email == "" {
		return "Email is required."
	}
	if utf8.RuneCountInString(email) > maxEmailLen || !looksLikeEmail(email) {
		return "Email address is not valid."
	}
	if strings.TrimSpace(m.Subject) == "" {
		return "Subject is required."
	}
	if utf8.RuneCountInString(m.Subject) > maxSubjectLen {
		return "Subject is too long (max 300 characters)."
	}
	if strings.TrimSpace(m.Message) == "" {
		return "Message is required."
	}
	if utf8.RuneCountInString(m.Message) > maxMessageLen {
		return "Message is too long (max 10,000 characters)."
	}
	return ""
}

// validateCourse checks a new course submitted through the dashboard.
func validateCourse(c *models.Course) string {
	if strings.TrimSpace(c.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(c.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if c.Price < 0 {
		return "Price cannot be negative."
	}
	if c.Students < 0 {
		return "Student count cannot be negative."
	}
	return ""
}

// validateCoursePatch checks the constrained fields of a partial course
// update. Fields absent from the patch are not validated; they keep
// their stored values.
func validateCoursePatch(patch json.RawMessage) string {
	var fields struct {
		Title    *string  `json:"title"`
		Price    *float64 `json:"price"`
		Students *int     `json:"students"`
	}
	if err := json.Unmarshal(patch, &fields); err != nil {
		return "invalid JSON body"
	}
	if fields.Title != nil && strings.TrimSpace(*fields.Title) == "" {
		return "Title is required."
	}
	if fields.Price != nil && *fields.Price < 0 {
		return "Price cannot be negative."
	}
	if fields.Students != nil && *fields.Students < 0 {
		return "Student count cannot be negative."
	}
	return ""
}

// validatePost checks a new blog post submitted through the dashboard.
func validatePost(p *models.BlogPost) string {
	if strings.TrimSpace(p.Title) == "" {
		return "Title is required."
	}
	if utf8.RuneCountInString(p.Title) > maxTitleLen {
		return "Title is too long (max 300 characters)."
	}
	if utf8.RuneCountInString(p.Body) > maxBodyLen {
		return "Body is too long (max 100,000 characters)."
	}
	return ""
}

// looksLikeEmail does a shape check, not RFC validation: one "@" with
// something on both sides and a dot in the domain.
func looksLikeEmail(s string) bool {
	at := strings.IndexByte(s, '@')
	if at <= 0 || at == len(s)-1 {
		return false
	}
	domain := s[at+1:]
	dot := strings.IndexByte(domain, '.')
	return dot > 0 && dot < len(domain)-1 && !strings.ContainsAny(s, " \t\n")
}
