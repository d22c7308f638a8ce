package engine

import (
	"testing"

	"github.com/storyport/storyport/internal/model"
)

func TestPretranslated_MarkerTag(t *testing.T) {
	story := testStory(nil)
	r, _ := testResolution(story, testCountry())

	segs, err := r.RenderPretranslatedField("Die Geschichte von [[MARKER:person:student:Raha|Lina]].")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 3 {
		t.Fatalf("got %d segments, want 3: %+v", len(segs), segs)
	}
	seg := segs[1]
	if seg.Type != model.SegmentPerson {
		t.Errorf("type = %s, want person", seg.Type)
	}
	if seg.Text != "Lina" || seg.Original != "Raha" {
		t.Errorf("recovered pair = %q/%q, want Lina/Raha", seg.Text, seg.Original)
	}
}

func TestPretranslated_MarkerTagWithExplanation(t *testing.T) {
	story := testStory(nil)
	r, _ := testResolution(story, testCountry())

	segs, err := r.RenderPretranslatedField(
		"[[MARKER:casualties:dead:1,500|5,800|round(1,500 × 331,000,000 / 85,000,000) = 5,800]]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg := segs[0]
	if seg.Type != model.SegmentCasualties {
		t.Errorf("type = %s, want casualties", seg.Type)
	}
	if seg.Tooltip == "" {
		t.Error("expected the explanation recovered into the tooltip")
	}
}

func TestPretranslated_ComparisonTag(t *testing.T) {
	story := testStory(nil)
	r, _ := testResolution(story, testCountry())

	segs, err := r.RenderPretranslatedField(
		"[[COMPARISON:half of the massacre|die Hälfte der Opfer vom Massaker|170 / 340 = 0.50]]")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	seg := segs[0]
	if seg.Type != model.SegmentComparison {
		t.Errorf("type = %s, want comparison", seg.Type)
	}
	if seg.Text != "die Hälfte der Opfer vom Massaker" {
		t.Errorf("text = %q, want the translated phrase", seg.Text)
	}
	if seg.Original != "half of the massacre" {
		t.Errorf("original = %q, want the source phrase", seg.Original)
	}
}

func TestPretranslated_LeftoverPlaceholder(t *testing.T) {
	// Dates are not pre-substituted; the leftover placeholder resolves through
	// the normal path in the display locale.
	story := testStory(map[string]*model.Marker{
		"day": {Date: "2022-09-16"},
	})
	r, _ := testResolution(story, testCountry())

	segs, err := r.RenderPretranslatedField("Am {{day}} begann es.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segs[1].Type != model.SegmentDate {
		t.Errorf("type = %s, want date", segs[1].Type)
	}
	if segs[1].Text != "September 16, 2022" {
		t.Errorf("leftover date = %q, want the locale-formatted date", segs[1].Text)
	}
}

func TestPretranslated_LeftoverSourceCitation(t *testing.T) {
	story := testStory(nil)
	story.Sources = []model.Source{{Title: "Report", URL: "https://example.org/a"}}
	r, _ := testResolution(story, testCountry())

	segs, err := r.RenderPretranslatedField("Laut {{source:0}}.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if segs[1].Type != model.SegmentSource || segs[1].URL != "https://example.org/a" {
		t.Errorf("leftover citation = %+v", segs[1])
	}
}

func TestPretranslated_MalformedPassthrough(t *testing.T) {
	story := testStory(nil)
	r, diags := testResolution(story, testCountry())

	segs, err := r.RenderPretranslatedField("broken [[MARKER:person:student tag")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 || segs[0].Type != model.SegmentText {
		t.Fatalf("malformed tag should pass through as one literal, got %+v", segs)
	}
	if segs[0].Text != "broken [[MARKER:person:student tag" {
		t.Errorf("literal = %q, want the raw text", segs[0].Text)
	}
	if len(diags.Items()) == 0 {
		t.Error("expected a diagnostic for the malformed tag")
	}
}

func TestPretranslated_ParagraphBreaks(t *testing.T) {
	story := testStory(nil)
	r, _ := testResolution(story, testCountry())

	segs, err := r.RenderPretranslatedField("Erster Absatz.\n\nZweiter Absatz.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 3 || segs[1].Type != model.SegmentParagraphBreak {
		t.Errorf("got %+v, want text / paragraph-break / text", segs)
	}
}
