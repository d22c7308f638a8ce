// Package load reads the authored static tables: stories with their marker
// maps, and per-country context tables. Markers are discriminated into the
// closed union here, once, so the engine can switch on Kind exhaustively.
package load

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/storyport/storyport/internal/model"
)

// Story reads and discriminates a single story file.
func Story(path string) (*model.Story, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading story: %w", err)
	}
	return ParseStory(data)
}

// ParseStory parses story YAML and assigns every marker's Kind.
func ParseStory(data []byte) (*model.Story, error) {
	var story model.Story
	if err := yaml.Unmarshal(data, &story); err != nil {
		return nil, fmt.Errorf("parsing story: %w", err)
	}
	if story.Slug == "" {
		return nil, fmt.Errorf("story has no slug")
	}
	if story.ID == "" {
		story.ID = story.Slug
	}
	for _, m := range story.Markers {
		m.Discriminate()
	}
	return &story, nil
}

// Stories reads every *.yaml story in a directory, sorted by slug.
func Stories(dir string) ([]*model.Story, error) {
	paths, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	var stories []*model.Story
	for _, path := range paths {
		story, err := Story(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		stories = append(stories, story)
	}
	sort.Slice(stories, func(i, j int) bool { return stories[i].Slug < stories[j].Slug })
	return stories, nil
}

// Country reads a single country context table.
func Country(path string) (*model.Country, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading country: %w", err)
	}
	return ParseCountry(data)
}

// ParseCountry parses country YAML.
func ParseCountry(data []byte) (*model.Country, error) {
	var country model.Country
	if err := yaml.Unmarshal(data, &country); err != nil {
		return nil, fmt.Errorf("parsing country: %w", err)
	}
	if country.Code == "" {
		return nil, fmt.Errorf("country has no code")
	}
	if country.Population <= 0 {
		return nil, fmt.Errorf("country %s has no population", country.Code)
	}
	return &country, nil
}

// Countries reads every *.yaml country table in a directory, keyed by code.
func Countries(dir string) (map[string]*model.Country, error) {
	paths, err := yamlFiles(dir)
	if err != nil {
		return nil, err
	}
	countries := make(map[string]*model.Country, len(paths))
	for _, path := range paths {
		country, err := Country(path)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", filepath.Base(path), err)
		}
		if _, dup := countries[country.Code]; dup {
			return nil, fmt.Errorf("duplicate country code %s", country.Code)
		}
		countries[country.Code] = country
	}
	return countries, nil
}

func yamlFiles(dir string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("reading directory: %w", err)
	}
	var paths []string
	for _, e := range entries {
		if e.IsDir() {
			continue
		}
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml") {
			paths = append(paths, filepath.Join(dir, name))
		}
	}
	sort.Strings(paths)
	return paths, nil
}
