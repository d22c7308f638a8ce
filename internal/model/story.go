package model

import "strconv"

// Story is one authored narrative plus the markers its templates reference.
// Stories are immutable after loading.
type Story struct {
	ID      string `yaml:"id" json:"id"`
	Slug    string `yaml:"slug" json:"slug"`
	Title   string `yaml:"title" json:"title"`
	Summary string `yaml:"summary" json:"summary"`
	Content string `yaml:"content" json:"content"`

	Markers map[string]*Marker `yaml:"markers" json:"markers"`

	Sources []Source `yaml:"sources,omitempty" json:"sources,omitempty"`
	Images  []Image  `yaml:"images,omitempty" json:"images,omitempty"`

	// Pretranslated holds per-language story variants produced by the
	// external translation process, encoded in the tagged text format.
	Pretranslated map[string]*Pretranslated `yaml:"pretranslated,omitempty" json:"pretranslated,omitempty"`
}

// Source is a citation entry referenced from templates as {{source:N}}.
type Source struct {
	ID        string `yaml:"id,omitempty" json:"id,omitempty"`
	Title     string `yaml:"title" json:"title"`
	Publisher string `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	URL       string `yaml:"url" json:"url"`
	Date      string `yaml:"date,omitempty" json:"date,omitempty"`
}

// Image is a display image referenced from templates as {{image:N}}.
type Image struct {
	ID      string `yaml:"id,omitempty" json:"id,omitempty"`
	URL     string `yaml:"url" json:"url"`
	Alt     string `yaml:"alt,omitempty" json:"alt,omitempty"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
	Credit  string `yaml:"credit,omitempty" json:"credit,omitempty"`
}

// Pretranslated is a story variant whose prose was already translated and
// whose markers were already substituted, encoded recoverably.
type Pretranslated struct {
	Language string `yaml:"language" json:"language"`
	Title    string `yaml:"title" json:"title"`
	Summary  string `yaml:"summary" json:"summary"`
	Content  string `yaml:"content" json:"content"`
}

// SourceAt looks up a source by template suffix: a numeric suffix is a
// zero-based index, anything else matches the source ID.
func (s *Story) SourceAt(suffix string) *Source {
	if i, err := strconv.Atoi(suffix); err == nil {
		if i >= 0 && i < len(s.Sources) {
			return &s.Sources[i]
		}
		return nil
	}
	for i := range s.Sources {
		if s.Sources[i].ID == suffix {
			return &s.Sources[i]
		}
	}
	return nil
}

// ImageAt looks up an image by template suffix, same rules as SourceAt.
func (s *Story) ImageAt(suffix string) *Image {
	if i, err := strconv.Atoi(suffix); err == nil {
		if i >= 0 && i < len(s.Images) {
			return &s.Images[i]
		}
		return nil
	}
	for i := range s.Images {
		if s.Images[i].ID == suffix {
			return &s.Images[i]
		}
	}
	return nil
}

// PretranslatedFor returns the pre-translated variant for a language, or nil.
func (s *Story) PretranslatedFor(lang string) *Pretranslated {
	if s.Pretranslated == nil {
		return nil
	}
	return s.Pretranslated[lang]
}
