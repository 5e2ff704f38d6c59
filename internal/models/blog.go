// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// BlogPost represents an article on the marketing site's blog.
// The slug is the primary key; when a post is created without one it is
// derived from the title.
type BlogPost struct {
	Slug        string `json:"slug"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Body        string `json:"body,omitempty"` // Markdown source, rendered on the public endpoint
	Author      string `json:"author"`
	AuthorImage string `json:"author_image"`
	Date        string `json:"date"`
	Category    string `json:"category"`
	ReadTime    string `json:"read_time"`
	Image       string `json:"image"`
}
