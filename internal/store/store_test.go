package store

import (
	"path/filepath"
	"testing"

	"github.com/storyport/storyport/internal/model"
)

func testDB(t *testing.T) *DB {
	t.Helper()
	db, err := Open(filepath.Join(t.TempDir(), "archive.db"))
	if err != nil {
		t.Fatalf("opening archive: %v", err)
	}
	t.Cleanup(func() { db.Close() })
	return db
}

func testRender(text string) *Render {
	return &Render{
		StorySlug: "mahsa-amini-protests",
		Country:   "DE",
		Language:  "de",
		Field:     "title",
		Segments: []model.Segment{
			{Type: model.SegmentText, Text: text},
			{Type: model.SegmentPerson, Text: "Lina", Original: "Mahsa"},
		},
	}
}

func TestSaveAndLatestRender(t *testing.T) {
	db := testDB(t)

	r := testRender("Der Tod von ")
	if err := db.SaveRender(r); err != nil {
		t.Fatalf("SaveRender: %v", err)
	}
	if r.ID == 0 {
		t.Error("expected the insert ID to be assigned")
	}

	latest, err := db.LatestRender("mahsa-amini-protests", "DE", "de", "title")
	if err != nil {
		t.Fatalf("LatestRender: %v", err)
	}
	if latest == nil {
		t.Fatal("expected an archived render")
	}
	if len(latest.Segments) != 2 || latest.Segments[1].Original != "Mahsa" {
		t.Errorf("round-tripped segments = %+v", latest.Segments)
	}
}

func TestLatestRender_Missing(t *testing.T) {
	db := testDB(t)

	latest, err := db.LatestRender("nope", "DE", "de", "title")
	if err != nil {
		t.Fatalf("LatestRender: %v", err)
	}
	if latest != nil {
		t.Errorf("expected nil for an unarchived key, got %+v", latest)
	}
}

func TestChanged(t *testing.T) {
	db := testDB(t)

	r := testRender("Der Tod von ")
	changed, err := db.Changed(r)
	if err != nil {
		t.Fatalf("Changed: %v", err)
	}
	if !changed {
		t.Error("a missing archive entry must count as changed")
	}

	if err := db.SaveRender(r); err != nil {
		t.Fatal(err)
	}

	changed, err = db.Changed(testRender("Der Tod von "))
	if err != nil {
		t.Fatalf("Changed: %v", err)
	}
	if changed {
		t.Error("identical segments must not count as changed")
	}

	changed, err = db.Changed(testRender("Anderer Titel "))
	if err != nil {
		t.Fatalf("Changed: %v", err)
	}
	if !changed {
		t.Error("differing segments must count as changed")
	}
}

func TestRenderHistory(t *testing.T) {
	db := testDB(t)

	for _, text := range []string{"first ", "second "} {
		if err := db.SaveRender(testRender(text)); err != nil {
			t.Fatal(err)
		}
	}

	history, err := db.RenderHistory("mahsa-amini-protests", "DE", "de")
	if err != nil {
		t.Fatalf("RenderHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("got %d entries, want 2", len(history))
	}
	if history[0].Segments[0].Text != "second " {
		t.Errorf("history not newest-first: %q", history[0].Segments[0].Text)
	}
}
