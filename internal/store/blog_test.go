package store

import (
	"encoding/json"
	"reflect"
	"sort"
	"testing"

	"skillforge/internal/models"
)

func TestPostCreateDerivesSlugFromTitle(t *testing.T) {
	s := New()

	created := s.CreatePost(models.BlogPost{
		Title:    "Hello, World!",
		Category: "Teaching",
	})

	if created.Slug != "hello-world" {
		t.Errorf("slug: got %q, want %q", created.Slug, "hello-world")
	}

	found := s.FindPost("hello-world")
	if found == nil {
		t.Fatal("expected post findable by derived slug")
	}
}

func TestPostCreateReslugifiesSuppliedSlug(t *testing.T) {
	s := New()

	created := s.CreatePost(models.BlogPost{
		Slug:  "My Custom Slug!",
		Title: "Ignored Title",
	})

	if created.Slug != "my-custom-slug" {
		t.Errorf("slug: got %q, want %q", created.Slug, "my-custom-slug")
	}
}

func TestPostCreateExtendsCategoryIndex(t *testing.T) {
	s := New()
	before := s.Categories()

	s.CreatePost(models.BlogPost{Title: "A", Category: "Aerospace"})

	after := s.Categories()
	if len(after) != len(before)+1 {
		t.Fatalf("categories: got %d entries, want %d", len(after), len(before)+1)
	}
	if !sort.StringsAreSorted(after) {
		t.Errorf("categories not sorted: %v", after)
	}

	// Creating another post in the same category must not duplicate it.
	s.CreatePost(models.BlogPost{Title: "B", Category: "Aerospace"})
	if got := s.Categories(); len(got) != len(after) {
		t.Errorf("categories: got %d entries after duplicate, want %d", len(got), len(after))
	}
}

func TestPostUpdatePreservesOmittedFields(t *testing.T) {
	s := New()
	s.CreatePost(models.BlogPost{
		Title:    "Original",
		Author:   "Elena Vasquez",
		ReadTime: "5 min read",
		Category: "Teaching",
	})

	updated, err := s.UpdatePost("original", json.RawMessage(`{"title": "Renamed"}`))
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated post, got nil")
	}
	if updated.Title != "Renamed" {
		t.Errorf("title: got %q, want %q", updated.Title, "Renamed")
	}
	if updated.Author != "Elena Vasquez" {
		t.Errorf("author: got %q, want preserved %q", updated.Author, "Elena Vasquez")
	}
	if updated.Slug != "original" {
		t.Errorf("slug: got %q, want immutable %q", updated.Slug, "original")
	}
}

func TestPostUpdateWithNewCategoryExtendsIndex(t *testing.T) {
	s := New()
	s.CreatePost(models.BlogPost{Title: "Reclassified", Category: "Teaching"})

	if _, err := s.UpdatePost("reclassified", json.RawMessage(`{"category": "Economics"}`)); err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}

	cats := s.Categories()
	found := false
	for _, c := range cats {
		if c == "Economics" {
			found = true
		}
	}
	if !found {
		t.Errorf("categories: %v, want Economics present", cats)
	}
	if !sort.StringsAreSorted(cats) {
		t.Errorf("categories not sorted after update: %v", cats)
	}
}

func TestPostUpdateNotFound(t *testing.T) {
	s := New()
	before := s.ListPosts()

	updated, err := s.UpdatePost("no-such-slug", json.RawMessage(`{"title": "x"}`))
	if err != nil {
		t.Fatalf("UpdatePost: %v", err)
	}
	if updated != nil {
		t.Error("expected nil for unknown slug")
	}
	if !reflect.DeepEqual(before, s.ListPosts()) {
		t.Error("collection changed after a not-found update")
	}
}

func TestPostDelete(t *testing.T) {
	s := New()
	s.CreatePost(models.BlogPost{Title: "Ephemeral"})

	if !s.DeletePost("ephemeral") {
		t.Error("expected true when deleting an existing post")
	}
	if s.FindPost("ephemeral") != nil {
		t.Error("expected nil after delete")
	}
	if s.DeletePost("ephemeral") {
		t.Error("expected false for an already-deleted post")
	}
}

func TestSeedNormalizesLegacyExcerpt(t *testing.T) {
	s := New()

	// This seeded post only had the legacy "excerpt" field in its fixture.
	p := s.FindPost("hiring-managers-on-portfolios")
	if p == nil {
		t.Fatal("expected seeded post")
	}
	if p.Description == "" {
		t.Error("legacy excerpt was not normalized into description")
	}
}

func TestAddCategory(t *testing.T) {
	s := New()
	base := len(s.Categories())

	t.Run("trims input", func(t *testing.T) {
		s.AddCategory("  Design  ")
		cats := s.Categories()
		found := false
		for _, c := range cats {
			if c == "Design" {
				found = true
			}
		}
		if !found {
			t.Errorf("categories: %v, want trimmed Design present", cats)
		}
	})

	t.Run("empty input is a no-op", func(t *testing.T) {
		s.AddCategory("   ")
		if got := len(s.Categories()); got != base+1 {
			t.Errorf("categories: got %d entries, want %d", got, base+1)
		}
	})

	t.Run("duplicate is a no-op", func(t *testing.T) {
		s.AddCategory("Design")
		if got := len(s.Categories()); got != base+1 {
			t.Errorf("categories: got %d entries, want %d", got, base+1)
		}
	})

	t.Run("stays sorted", func(t *testing.T) {
		s.AddCategory("AAA First")
		if cats := s.Categories(); !sort.StringsAreSorted(cats) {
			t.Errorf("categories not sorted: %v", cats)
		}
	})
}
