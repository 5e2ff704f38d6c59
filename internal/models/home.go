// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package models

// HomeContent is the composite document backing the marketing site's
// home page. Each field is an independently editable section; the
// dashboard updates one section at a time and must never disturb the
// others. Section keys on the wire are camelCase to match the frontend.
type HomeContent struct {
	Hero            HeroSection            `json:"hero"`
	Support         SupportSection         `json:"support"`
	Features        FeaturesSection        `json:"features"`
	Benefits        BenefitsSection        `json:"benefits"`
	Pricing         PricingSection         `json:"pricing"`
	Testimonial     TestimonialSection     `json:"testimonial"`
	FeaturedCourses FeaturedCoursesSection `json:"featuredCourses"`
	GetInvolved     GetInvolvedSection     `json:"getInvolved"`
	Team            TeamSection            `json:"team"`
	Footer          FooterSection          `json:"footer"`
	TrustedBrands   TrustedBrandsSection   `json:"trustedBrands"`
}

// HeroSection is the banner at the top of the home page.
type HeroSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	CTALabel string `json:"cta_label"`
	CTALink  string `json:"cta_link"`
}

// SupportItem is a single support channel card (email, chat, docs...).
type SupportItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type SupportSection struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []SupportItem `json:"items"`
}

// FeatureItem is one feature highlight card.
type FeatureItem struct {
	Icon  string `json:"icon"`
	Title string `json:"title"`
	Text  string `json:"text"`
}

type FeaturesSection struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []FeatureItem `json:"items"`
}

// BenefitItem is one numbered benefit in the "why us" section.
type BenefitItem struct {
	Number string `json:"number"`
	Title  string `json:"title"`
	Text   string `json:"text"`
}

type BenefitsSection struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Items    []BenefitItem `json:"items"`
}

// PricingPlan is one column of the pricing table.
type PricingPlan struct {
	Name        string   `json:"name"`
	Price       string   `json:"price"`
	Period      string   `json:"period"`
	Features    []string `json:"features"`
	Highlighted bool     `json:"highlighted"`
}

type PricingSection struct {
	Title    string        `json:"title"`
	Subtitle string        `json:"subtitle"`
	Plans    []PricingPlan `json:"plans"`
}

// TestimonialSection is a single featured customer quote.
type TestimonialSection struct {
	Title       string  `json:"title"`
	Quote       string  `json:"quote"`
	Author      string  `json:"author"`
	Role        string  `json:"role"`
	AuthorImage string  `json:"author_image"`
	Rating      float64 `json:"rating"`
}

// FeaturedCoursesSection selects which catalog entries appear on the
// home page, by course ID.
type FeaturedCoursesSection struct {
	Title     string   `json:"title"`
	Subtitle  string   `json:"subtitle"`
	CourseIDs []string `json:"course_ids"`
}

type GetInvolvedSection struct {
	Title    string `json:"title"`
	Subtitle string `json:"subtitle"`
	Image    string `json:"image"`
	CTALabel string `json:"cta_label"`
	CTALink  string `json:"cta_link"`
}

// TeamMember is one person card in the team section.
type TeamMember struct {
	Name  string `json:"name"`
	Role  string `json:"role"`
	Image string `json:"image"`
	Bio   string `json:"bio"`
}

type TeamSection struct {
	Title    string       `json:"title"`
	Subtitle string       `json:"subtitle"`
	Members  []TeamMember `json:"members"`
}

// SocialLink is one entry in the footer's social row.
type SocialLink struct {
	Label string `json:"label"`
	URL   string `json:"url"`
}

type FooterSection struct {
	Tagline   string       `json:"tagline"`
	Email     string       `json:"email"`
	Phone     string       `json:"phone"`
	Address   string       `json:"address"`
	Social    []SocialLink `json:"social"`
	Copyright string       `json:"copyright"`
}

// BrandLogo is one logo in the trusted-brands strip.
type BrandLogo struct {
	Name  string `json:"name"`
	Image string `json:"image"`
}

type TrustedBrandsSection struct {
	Title string      `json:"title"`
	Logos []BrandLogo `json:"logos"`
}
