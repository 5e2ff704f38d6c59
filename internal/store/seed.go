// Copyright (c) 2026 Madalin Gabriel Ignisca <hi@madalin.me>
// Copyright (c) 2026 Vlah Software House SRL <contact@vlah.sh>
// All rights reserved. See LICENSE for details.

package store

import "skillforge/internal/models"

// Seed fixtures for the in-memory store. The content mirrors what the
// marketing site launched with; the dashboard edits it from there.

func floatPtr(v float64) *float64 { return &v }

func seedCourses() []models.Course {
	return []models.Course{
		{
			ID:            "go-backend-bootcamp",
			Title:         "Go Backend Bootcamp",
			Description:   "Build production-grade HTTP services in Go, from routing to deployment.",
			Instructor:    "Elena Vasquez",
			Duration:      "8 weeks",
			Level:         models.LevelIntermediate,
			Category:      "Backend",
			Rating:        4.8,
			Students:      2140,
			Price:         249,
			OriginalPrice: floatPtr(349),
			Image:         "/images/courses/go-backend.jpg",
			Features: []string{
				"40+ hands-on labs",
				"Capstone project with code review",
				"Lifetime access",
			},
			Popular: true,
		},
		{
			ID:          "react-for-designers",
			Title:       "React for Designers",
			Description: "A designer-friendly path into component-driven frontend development.",
			Instructor:  "Marcus Chen",
			Duration:    "6 weeks",
			Level:       models.LevelBeginner,
			Category:    "Frontend",
			Rating:      4.6,
			Students:    1680,
			Price:       189,
			Image:       "/images/courses/react-designers.jpg",
			Features: []string{
				"Figma-to-component workflow",
				"Weekly live sessions",
			},
			IsNew: true,
		},
		{
			ID:          "sql-for-analysts",
			Title:       "SQL for Data Analysts",
			Description: "Query, aggregate, and model real datasets with confidence.",
			Instructor:  "Priya Raman",
			Duration:    "4 weeks",
			Level:       models.LevelBeginner,
			Category:    "Data",
			Rating:      4.7,
			Students:    3320,
			Price:       129,
			Image:       "/images/courses/sql-analysts.jpg",
			Features: []string{
				"Practice database included",
				"Certificate of completion",
			},
			Popular: true,
		},
		{
			ID:          "kubernetes-in-practice",
			Title:       "Kubernetes in Practice",
			Description: "Operate real clusters: deployments, networking, observability, and on-call habits.",
			Instructor:  "Tomas Lindqvist",
			Duration:    "10 weeks",
			Level:       models.LevelAdvanced,
			Category:    "DevOps",
			Rating:      4.9,
			Students:    940,
			Price:       329,
			Image:       "/images/courses/kubernetes.jpg",
			Features: []string{
				"Cluster sandbox per student",
				"Incident simulation week",
				"Lifetime access",
			},
		},
	}
}

// seedPost carries the raw blog fixtures. Older entries predate the
// rename of "excerpt" to "description", so both fields exist here and
// seedPosts normalizes them.
type seedPost struct {
	models.BlogPost
	Excerpt string
}

func seedPosts() []models.BlogPost {
	raw := []seedPost{
		{
			BlogPost: models.BlogPost{
				Slug:        "why-we-teach-projects-first",
				Title:       "Why We Teach Projects First",
				Description: "Lectures fade, projects stick. How our curriculum flips the usual order.",
				Body:        "Most courses start with theory and promise a project \"at the end\".\n\nWe do the opposite. **Week one** you ship something small and real, and every concept after that lands on working code you already own.",
				Author:      "Elena Vasquez",
				AuthorImage: "/images/team/elena.jpg",
				Date:        "2026-01-12",
				Category:    "Teaching",
				ReadTime:    "5 min read",
				Image:       "/images/blog/projects-first.jpg",
			},
		},
		{
			BlogPost: models.BlogPost{
				Slug:        "hiring-managers-on-portfolios",
				Title:       "What Hiring Managers Actually Look For in Portfolios",
				Author:      "Marcus Chen",
				AuthorImage: "/images/team/marcus.jpg",
				Date:        "2025-11-03",
				Category:    "Careers",
				ReadTime:    "8 min read",
				Image:       "/images/blog/portfolios.jpg",
			},
			// Legacy field from the old CMS export.
			Excerpt: "We asked twelve hiring managers what makes a portfolio land an interview. The answers were surprisingly consistent.",
		},
		{
			BlogPost: models.BlogPost{
				Slug:        "from-support-desk-to-sre",
				Title:       "From Support Desk to SRE in Fourteen Months",
				Author:      "Priya Raman",
				AuthorImage: "/images/team/priya.jpg",
				Date:        "2025-09-21",
				Category:    "Student Stories",
				ReadTime:    "6 min read",
				Image:       "/images/blog/student-story-sre.jpg",
			},
			Excerpt: "A graduate retraces the path from ticket queues to a site reliability role, and what she would do differently.",
		},
	}

	posts := make([]models.BlogPost, len(raw))
	for i, r := range raw {
		p := r.BlogPost
		if p.Description == "" {
			p.Description = r.Excerpt
		}
		posts[i] = p
	}
	return posts
}

func seedHero() models.HeroSection {
	return models.HeroSection{
		Title:    "Learn skills that compound",
		Subtitle: "Project-first courses taught by working engineers, with feedback on every line you ship.",
		Image:    "/images/home/hero.jpg",
		CTALabel: "Browse courses",
		CTALink:  "/courses",
	}
}

func seedSupport() models.SupportSection {
	return models.SupportSection{
		Title:    "We're with you the whole way",
		Subtitle: "Real humans answer, usually within the hour.",
		Items: []models.SupportItem{
			{Icon: "chat", Title: "Live chat", Text: "Weekdays 9–18 CET, straight to a mentor."},
			{Icon: "mail", Title: "Email", Text: "hello@skillforge.dev — answered daily."},
			{Icon: "book", Title: "Guides", Text: "Setup walkthroughs for every course environment."},
		},
	}
}

func seedFeatures() models.FeaturesSection {
	return models.FeaturesSection{
		Title:    "Built for people who learn by doing",
		Subtitle: "Every course is a sequence of things you build.",
		Items: []models.FeatureItem{
			{Icon: "code", Title: "Projects first", Text: "Ship something real in week one."},
			{Icon: "review", Title: "Code review", Text: "Line-by-line feedback from instructors."},
			{Icon: "community", Title: "Cohorts", Text: "Learn alongside a small fixed group."},
			{Icon: "cert", Title: "Certificates", Text: "Verifiable completion certificates."},
		},
	}
}

func seedBenefits() models.BenefitsSection {
	return models.BenefitsSection{
		Title:    "Why students stay",
		Subtitle: "Three numbers we track obsessively.",
		Items: []models.BenefitItem{
			{Number: "01", Title: "Completion", Text: "81% of enrolled students finish their course."},
			{Number: "02", Title: "Outcomes", Text: "64% report a role change within a year."},
			{Number: "03", Title: "Support", Text: "Median first response under 40 minutes."},
		},
	}
}

func seedPricing() models.PricingSection {
	return models.PricingSection{
		Title:    "Simple pricing",
		Subtitle: "Pay per course or go unlimited.",
		Plans: []models.PricingPlan{
			{
				Name:   "Single course",
				Price:  "from $129",
				Period: "one-time",
				Features: []string{
					"Lifetime access to the course",
					"Community access",
				},
			},
			{
				Name:   "Unlimited",
				Price:  "$59",
				Period: "per month",
				Features: []string{
					"Every course, every cohort",
					"Monthly 1:1 mentor session",
					"Priority code review",
				},
				Highlighted: true,
			},
			{
				Name:   "Teams",
				Price:  "Custom",
				Period: "annual",
				Features: []string{
					"Seat management and reporting",
					"Private cohorts",
				},
			},
		},
	}
}

func seedTestimonial() models.TestimonialSection {
	return models.TestimonialSection{
		Title:       "From our students",
		Quote:       "The code review alone was worth the price. Nobody had ever told me why my code was hard to read before.",
		Author:      "Dana Okafor",
		Role:        "Backend Engineer, Fintech",
		AuthorImage: "/images/testimonials/dana.jpg",
		Rating:      5,
	}
}

func seedFeaturedCourses() models.FeaturedCoursesSection {
	return models.FeaturedCoursesSection{
		Title:     "Popular right now",
		Subtitle:  "Where most students start.",
		CourseIDs: []string{"go-backend-bootcamp", "sql-for-analysts", "react-for-designers"},
	}
}

func seedGetInvolved() models.GetInvolvedSection {
	return models.GetInvolvedSection{
		Title:    "Teach with us",
		Subtitle: "We pay working engineers to teach what they do all day.",
		Image:    "/images/home/teach.jpg",
		CTALabel: "Apply as an instructor",
		CTALink:  "/contact",
	}
}

func seedTeam() models.TeamSection {
	return models.TeamSection{
		Title:    "The team",
		Subtitle: "Small on purpose.",
		Members: []models.TeamMember{
			{Name: "Elena Vasquez", Role: "Head of Curriculum", Image: "/images/team/elena.jpg", Bio: "Ex-platform engineer, ten years of Go in production."},
			{Name: "Marcus Chen", Role: "Frontend Lead", Image: "/images/team/marcus.jpg", Bio: "Designer turned engineer; teaches the React track."},
			{Name: "Priya Raman", Role: "Data Lead", Image: "/images/team/priya.jpg", Bio: "Analytics engineer; writes the SQL curriculum."},
		},
	}
}

func seedFooter() models.FooterSection {
	return models.FooterSection{
		Tagline: "Learn skills that compound.",
		Email:   "hello@skillforge.dev",
		Phone:   "+31 20 123 4567",
		Address: "Herengracht 420, Amsterdam",
		Social: []models.SocialLink{
			{Label: "GitHub", URL: "https://github.com/skillforge"},
			{Label: "LinkedIn", URL: "https://linkedin.com/company/skillforge"},
		},
		Copyright: "© 2026 SkillForge B.V.",
	}
}

func seedTrustedBrands() models.TrustedBrandsSection {
	return models.TrustedBrandsSection{
		Title: "Teams that train with us",
		Logos: []models.BrandLogo{
			{Name: "Nortech", Image: "/images/brands/nortech.svg"},
			{Name: "Kanaal", Image: "/images/brands/kanaal.svg"},
			{Name: "Fjord Data", Image: "/images/brands/fjord.svg"},
			{Name: "Helix Labs", Image: "/images/brands/helix.svg"},
		},
	}
}
