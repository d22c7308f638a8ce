package store

import (
	"database/sql"
	"encoding/json"
	"fmt"
	"time"

	"github.com/storyport/storyport/internal/model"
)

// Render is one archived field rendering.
type Render struct {
	ID         int64
	StorySlug  string
	Country    string
	Language   string
	Field      string // title, summary, content
	Segments   []model.Segment
	RenderedAt time.Time
}

// SaveRender archives one rendered field.
func (db *DB) SaveRender(r *Render) error {
	segments, err := json.Marshal(r.Segments)
	if err != nil {
		return fmt.Errorf("marshaling segments: %w", err)
	}

	res, err := db.conn.Exec(`
		INSERT INTO renders (story_slug, country, language, field, segments, rendered_at)
		VALUES (?, ?, ?, ?, ?, ?)`,
		r.StorySlug, r.Country, r.Language, r.Field, string(segments), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("inserting render: %w", err)
	}
	r.ID, _ = res.LastInsertId()
	return nil
}

// LatestRender returns the most recent archived rendering for a key, or nil
// when none exists.
func (db *DB) LatestRender(slug, country, language, field string) (*Render, error) {
	row := db.conn.QueryRow(`
		SELECT id, story_slug, country, language, field, segments, rendered_at
		FROM renders
		WHERE story_slug = ? AND country = ? AND language = ? AND field = ?
		ORDER BY rendered_at DESC, id DESC
		LIMIT 1`,
		slug, country, language, field)

	r, err := scanRender(row)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	return r, err
}

// RenderHistory returns all archived renderings for a (story, country,
// language) tuple, newest first.
func (db *DB) RenderHistory(slug, country, language string) ([]Render, error) {
	rows, err := db.conn.Query(`
		SELECT id, story_slug, country, language, field, segments, rendered_at
		FROM renders
		WHERE story_slug = ? AND country = ? AND language = ?
		ORDER BY rendered_at DESC, id DESC`,
		slug, country, language)
	if err != nil {
		return nil, fmt.Errorf("querying history: %w", err)
	}
	defer rows.Close()

	var renders []Render
	for rows.Next() {
		r, err := scanRender(rows)
		if err != nil {
			return nil, err
		}
		renders = append(renders, *r)
	}
	return renders, rows.Err()
}

// Changed reports whether a new rendering differs from the latest archived
// one. A missing archive entry counts as changed.
func (db *DB) Changed(r *Render) (bool, error) {
	latest, err := db.LatestRender(r.StorySlug, r.Country, r.Language, r.Field)
	if err != nil {
		return false, err
	}
	if latest == nil {
		return true, nil
	}
	a, err := json.Marshal(latest.Segments)
	if err != nil {
		return false, err
	}
	b, err := json.Marshal(r.Segments)
	if err != nil {
		return false, err
	}
	return string(a) != string(b), nil
}

type rowScanner interface {
	Scan(dest ...interface{}) error
}

func scanRender(row rowScanner) (*Render, error) {
	var r Render
	var segments string
	if err := row.Scan(&r.ID, &r.StorySlug, &r.Country, &r.Language, &r.Field, &segments, &r.RenderedAt); err != nil {
		return nil, err
	}
	if err := json.Unmarshal([]byte(segments), &r.Segments); err != nil {
		return nil, fmt.Errorf("unmarshaling segments: %w", err)
	}
	return &r, nil
}
