package pipeline

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
)

// WriteJSON writes a rendered story as indented JSON.
func WriteJSON(r *Rendered, path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return fmt.Errorf("marshaling render: %w", err)
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("creating output directory: %w", err)
	}
	if err := os.WriteFile(path, append(data, '\n'), 0o644); err != nil {
		return fmt.Errorf("writing render: %w", err)
	}
	return nil
}

// OutputPath builds the conventional output path for a render.
func OutputPath(dir string, r *Rendered) string {
	name := fmt.Sprintf("%s.%s.%s.json", r.StorySlug, r.Country, r.Language)
	return filepath.Join(dir, name)
}
