package model

// SegmentType tags a normalized segment for the presentation layer.
type SegmentType string

const (
	SegmentText           SegmentType = "text"
	SegmentPerson         SegmentType = "person"
	SegmentPlace          SegmentType = "place"
	SegmentNumber         SegmentType = "number"
	SegmentCasualties     SegmentType = "casualties"
	SegmentDate           SegmentType = "date"
	SegmentSource         SegmentType = "source"
	SegmentImage          SegmentType = "image"
	SegmentComparison     SegmentType = "comparison"
	SegmentParagraphBreak SegmentType = "paragraph-break"
)

// Segment is one renderer-agnostic unit of output. Renderers consume the
// ordered segment list and never look at templates or markers.
type Segment struct {
	Type     SegmentType `json:"type"`
	Text     string      `json:"text,omitempty"`
	Original string      `json:"original,omitempty"` // non-empty enables "translated" styling
	Tooltip  string      `json:"tooltip,omitempty"`
	Style    string      `json:"style,omitempty"`
	URL      string      `json:"url,omitempty"`
	Image    *ImageMeta  `json:"image,omitempty"`
}

// ImageMeta carries image display fields on an image segment.
type ImageMeta struct {
	URL     string `json:"url"`
	Alt     string `json:"alt,omitempty"`
	Caption string `json:"caption,omitempty"`
	Credit  string `json:"credit,omitempty"`
}

// TranslationResult is the cached outcome of resolving one marker key within
// a single resolution context.
type TranslationResult struct {
	Text     string `json:"text"`
	Original string `json:"original,omitempty"` // empty means no "translated" styling

	// Comparison carries the display-language comparable-event phrase for
	// casualties markers; ComparisonNote is the always-English arithmetic
	// behind it.
	Comparison     string `json:"comparison,omitempty"`
	ComparisonNote string `json:"comparison_note,omitempty"`

	// ScalingNote is the always-English arithmetic behind a scaled value.
	ScalingNote string `json:"scaling_note,omitempty"`

	// Value holds the numeric result for number/casualties markers so that
	// dependent markers (compared_to, city scopes) can read it back.
	Value int64 `json:"value,omitempty"`

	// Population is set when the result is a resolved city, for city-scoped
	// casualty scaling.
	Population int64 `json:"population,omitempty"`
}
