package engine

import (
	"errors"
	"testing"

	"github.com/storyport/storyport/internal/model"
)

func TestResolve_Idempotent(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"student": {Person: "Raha", Gender: model.GenderFemale},
	})
	r, _ := testResolution(story, testCountry())

	first, err := r.Resolve("student")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	second, err := r.Resolve("student")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if first != second {
		t.Error("expected the cached result pointer on the second resolve")
	}
}

func TestResolve_Person(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"student": {Person: "Raha", Gender: model.GenderFemale},
	})
	r, _ := testResolution(story, testCountry())

	res, err := r.Resolve("student")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Original != "Raha" {
		t.Errorf("expected original %q, got %q", "Raha", res.Original)
	}
	found := false
	for _, name := range testCountry().Names.Female {
		if res.Text == name {
			found = true
		}
	}
	if !found {
		t.Errorf("resolved name %q is not from the female pool", res.Text)
	}
}

func TestResolve_UnknownKeyDegrades(t *testing.T) {
	story := testStory(map[string]*model.Marker{})
	r, diags := testResolution(story, testCountry())

	res, err := r.Resolve("missing")
	if err != nil {
		t.Fatalf("unknown markers must not error, got %v", err)
	}
	if res.Text != "{{missing}}" {
		t.Errorf("expected literal placeholder, got %q", res.Text)
	}
	if len(diags.Items()) == 0 {
		t.Error("expected a diagnostic for the unknown marker")
	}
}

func TestResolve_AliasSharing(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"student": {Person: "Raha", Gender: model.GenderFemale},
		"her":     {SameAs: "student"},
		"she":     {SameAs: "student"},
		"girl":    {SameAs: "her"}, // alias chain
	})
	r, _ := testResolution(story, testCountry())

	target, err := r.Resolve("student")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	for _, alias := range []string{"her", "she", "girl"} {
		res, err := r.Resolve(alias)
		if err != nil {
			t.Fatalf("resolving %s: %v", alias, err)
		}
		if res.Text != target.Text || res.Original != target.Original {
			t.Errorf("alias %s = %+v, want copy of target %+v", alias, res, target)
		}
	}

	// The target itself must have been computed exactly once: resolving it
	// again returns the identical cached pointer.
	again, _ := r.Resolve("student")
	if again != target {
		t.Error("target was recomputed; expected the memoized result")
	}
}

func TestResolve_AliasCycle(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"a": {SameAs: "b"},
		"b": {SameAs: "a"},
	})
	r, _ := testResolution(story, testCountry())

	_, err := r.Resolve("a")
	if !errors.Is(err, ErrCyclicReference) {
		t.Errorf("expected ErrCyclicReference, got %v", err)
	}
}

func TestResolve_NumberScaling(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"crowd": {Value: floatp(100), Scaled: true, Dampening: 1.0},
	})
	r, _ := testResolution(story, testCountry())

	res, err := r.Resolve("crowd")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Value != 389 {
		t.Errorf("scaled value = %d, want 389", res.Value)
	}
	if res.Text != "389" {
		t.Errorf("text = %q, want %q", res.Text, "389")
	}
	if res.Original != "100" {
		t.Errorf("original = %q, want %q", res.Original, "100")
	}
	if res.ScalingNote == "" {
		t.Error("expected a scaling explanation")
	}
}

func TestResolve_NumberUnscaled(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"age": {Value: floatp(16)},
	})
	r, _ := testResolution(story, testCountry())

	res, err := r.Resolve("age")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "16" || res.Original != "" {
		t.Errorf("unscaled number should pass through unannotated, got %+v", res)
	}
}

func TestResolve_NumberFractionalRounds(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"rate": {Value: floatp(2.9)},
	})
	r, _ := testResolution(story, testCountry())

	res, err := r.Resolve("rate")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "3" || res.Original != "" {
		t.Errorf("fractional value should round, got %+v", res)
	}
}

func TestResolve_NumberCurrency(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"fine": {Value: floatp(5000), Unit: "currency"},
	})
	r, _ := testResolution(story, testCountry())

	res, err := r.Resolve("fine")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "5,000 $" {
		t.Errorf("currency text = %q, want %q", res.Text, "5,000 $")
	}
}

func TestResolve_Date(t *testing.T) {
	story := testStory(map[string]*model.Marker{
		"day": {Date: "2022-09-16"},
	})
	r, _ := testResolution(story, testCountry())

	res, err := r.Resolve("day")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if res.Text != "September 16, 2022" {
		t.Errorf("date = %q, want %q", res.Text, "September 16, 2022")
	}
}
