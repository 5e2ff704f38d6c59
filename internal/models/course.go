// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

// Package models defines the data types served by the SkillForge API:
// the course catalog, blog posts, contact messages, and the composite
// home page content document.
package models

// CourseLevel indicates the target audience of a course.
type CourseLevel string

const (
	LevelBeginner     CourseLevel = "Beginner"
	LevelIntermediate CourseLevel = "Intermediate"
	LevelAdvanced     CourseLevel = "Advanced"
)

// Course represents one entry in the course catalog shown on the
// marketing site and managed through the dashboard.
type Course struct {
	ID            string      `json:"id"`
	Title         string      `json:"title"`
	Description   string      `json:"description"`
	Instructor    string      `json:"instructor"`
	Duration      string      `json:"duration"`
	Level         CourseLevel `json:"level"`
	Category      string      `json:"category"`
	Rating        float64     `json:"rating"`
	Students      int         `json:"students"`
	Price         float64     `json:"price"`
	OriginalPrice *float64    `json:"original_price,omitempty"`
	Image         string      `json:"image"`
	Features      []string    `json:"features"`
	Popular       bool        `json:"popular"`
	IsNew         bool        `json:"is_new"`
}

// Clone returns a copy of the course that shares no mutable state with
// the receiver. Stores hand out clones so callers can't reach internal
// slices through returned values.
func (c Course) Clone() Course {
	out := c
	if c.Features != nil {
		out.Features = append([]string(nil), c.Features...)
	}
	if c.OriginalPrice != nil {
		v := *c.OriginalPrice
		out.OriginalPrice = &v
	}
	return out
}
