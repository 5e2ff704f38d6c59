package store

import (
	"encoding/json"
	"reflect"
	"testing"

	"skillforge/internal/models"
)

func TestCourseCreateAndFind(t *testing.T) {
	s := New()

	created := s.CreateCourse(models.Course{
		Title:    "Rust for Gophers",
		Level:    models.LevelIntermediate,
		Category: "Backend",
		Price:    199,
		Features: []string{"Lifetime access"},
	})

	if created.ID == "" {
		t.Error("expected generated ID for course created without one")
	}

	found := s.FindCourse(created.ID)
	if found == nil {
		t.Fatal("expected course, got nil")
	}
	if found.Title != "Rust for Gophers" {
		t.Errorf("title: got %q, want %q", found.Title, "Rust for Gophers")
	}

	// Explicit IDs are kept.
	withID := s.CreateCourse(models.Course{ID: "my-course", Title: "Named"})
	if withID.ID != "my-course" {
		t.Errorf("id: got %q, want %q", withID.ID, "my-course")
	}
}

func TestCourseCreatePrependsNewestFirst(t *testing.T) {
	s := New()

	s.CreateCourse(models.Course{ID: "older", Title: "Older"})
	s.CreateCourse(models.Course{ID: "newer", Title: "Newer"})

	courses := s.ListCourses()
	if courses[0].ID != "newer" || courses[1].ID != "older" {
		t.Errorf("order: got [%s %s], want [newer older]", courses[0].ID, courses[1].ID)
	}
}

func TestCourseListReturnsSnapshot(t *testing.T) {
	s := New()

	first := s.ListCourses()
	first[0].Title = "mutated"
	if len(first[0].Features) > 0 {
		first[0].Features[0] = "mutated"
	}

	second := s.ListCourses()
	if second[0].Title == "mutated" {
		t.Error("mutating a listed course leaked into store state")
	}
	if len(second[0].Features) > 0 && second[0].Features[0] == "mutated" {
		t.Error("mutating a listed course's features leaked into store state")
	}
}

func TestCourseUpdatePreservesOmittedFields(t *testing.T) {
	s := New()
	created := s.CreateCourse(models.Course{
		Title:      "Original Title",
		Instructor: "Elena Vasquez",
		Duration:   "8 weeks",
		Rating:     4.8,
		Students:   100,
		Features:   []string{"labs", "certificate"},
	})

	patch := json.RawMessage(`{"title": "New Title", "students": 150}`)
	updated, err := s.UpdateCourse(created.ID, patch)
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated == nil {
		t.Fatal("expected updated course, got nil")
	}

	if updated.Title != "New Title" {
		t.Errorf("title: got %q, want %q", updated.Title, "New Title")
	}
	if updated.Students != 150 {
		t.Errorf("students: got %d, want 150", updated.Students)
	}
	// Everything the patch omitted must survive.
	if updated.Instructor != "Elena Vasquez" {
		t.Errorf("instructor: got %q, want preserved %q", updated.Instructor, "Elena Vasquez")
	}
	if updated.Duration != "8 weeks" {
		t.Errorf("duration: got %q, want preserved %q", updated.Duration, "8 weeks")
	}
	if updated.Rating != 4.8 {
		t.Errorf("rating: got %v, want preserved 4.8", updated.Rating)
	}
	if !reflect.DeepEqual(updated.Features, []string{"labs", "certificate"}) {
		t.Errorf("features: got %v, want preserved", updated.Features)
	}
}

func TestCourseUpdateCannotChangeID(t *testing.T) {
	s := New()
	created := s.CreateCourse(models.Course{Title: "Stable"})

	updated, err := s.UpdateCourse(created.ID, json.RawMessage(`{"id": "hijacked"}`))
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated.ID != created.ID {
		t.Errorf("id: got %q, want unchanged %q", updated.ID, created.ID)
	}
	if s.FindCourse("hijacked") != nil {
		t.Error("patched ID should not exist in the store")
	}
}

func TestCourseUpdateNotFoundLeavesCollectionUnchanged(t *testing.T) {
	s := New()
	before := s.ListCourses()

	updated, err := s.UpdateCourse("no-such-id", json.RawMessage(`{"title": "x"}`))
	if err != nil {
		t.Fatalf("UpdateCourse: %v", err)
	}
	if updated != nil {
		t.Error("expected nil for unknown course ID")
	}

	after := s.ListCourses()
	if !reflect.DeepEqual(before, after) {
		t.Error("collection changed after a not-found update")
	}
}

func TestCourseUpdateMalformedPatch(t *testing.T) {
	s := New()
	created := s.CreateCourse(models.Course{Title: "Intact"})

	if _, err := s.UpdateCourse(created.ID, json.RawMessage(`{not json`)); err == nil {
		t.Error("expected error for malformed patch")
	}

	found := s.FindCourse(created.ID)
	if found.Title != "Intact" {
		t.Errorf("title: got %q, want untouched %q", found.Title, "Intact")
	}
}

func TestCourseDelete(t *testing.T) {
	s := New()
	created := s.CreateCourse(models.Course{Title: "Short-lived"})

	if !s.DeleteCourse(created.ID) {
		t.Error("expected true when deleting an existing course")
	}
	if s.FindCourse(created.ID) != nil {
		t.Error("expected nil after delete")
	}
	if s.DeleteCourse(created.ID) {
		t.Error("expected false when deleting an already-deleted course")
	}
}
