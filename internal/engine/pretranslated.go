package engine

import (
	"regexp"
	"strings"

	"github.com/storyport/storyport/internal/model"
	"github.com/storyport/storyport/internal/template"
)

// The tagged format emitted by the external translation process:
//
//	[[MARKER:type:key:original|value]]
//	[[MARKER:type:key:original|value|explanation]]
//	[[COMPARISON:original|translated|explanation]]
//
// plus leftover {{key}} / {{key:suffix}} placeholders for content that could
// not be pre-resolved (locale dates, citations, images). Anything that fails
// to match passes through as literal text: visible-but-broken output beats a
// hard failure.
var pretranslatedRe = regexp.MustCompile(
	`\[\[MARKER:([a-z]+):([A-Za-z0-9_.-]+):([^|\[\]]*)\|([^|\[\]]*)(?:\|([^\[\]]*))?\]\]` +
		`|\[\[COMPARISON:([^|\[\]]*)\|([^|\[\]]*)\|([^\[\]]*)\]\]` +
		`|\{\{([A-Za-z0-9_.-]+)(?::([A-Za-z0-9_.-]+))?\}\}`)

// RenderPretranslatedField recovers segments from a pre-translated field in
// one pass. Leftover placeholders route through the normal resolution
// context, so both paths produce the same segment shape.
func (r *Resolution) RenderPretranslatedField(text string) ([]model.Segment, error) {
	var segments []model.Segment
	first := true
	for _, block := range splitParagraphs(text) {
		if !first {
			segments = append(segments, model.Segment{Type: model.SegmentParagraphBreak})
		}
		first = false

		segs, err := r.reparseParagraph(block)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segs...)
	}
	return segments, nil
}

func (r *Resolution) reparseParagraph(text string) ([]model.Segment, error) {
	var segments []model.Segment
	last := 0
	for _, loc := range pretranslatedRe.FindAllStringSubmatchIndex(text, -1) {
		if loc[0] > last {
			segments = append(segments, model.Segment{Type: model.SegmentText, Text: text[last:loc[0]]})
		}
		segs, err := r.reparseMatch(text, loc)
		if err != nil {
			return nil, err
		}
		segments = append(segments, segs...)
		last = loc[1]
	}
	if last < len(text) {
		rest := text[last:]
		if strings.Contains(rest, "[[") {
			r.diags.Add(model.DiagWarning, "pretranslated", "",
				"malformed tagged syntax passed through as literal text")
		}
		segments = append(segments, model.Segment{Type: model.SegmentText, Text: rest})
	}
	return segments, nil
}

// reparseMatch dispatches one regex match to the marker, comparison, or
// leftover-placeholder handler, based on which alternative matched.
func (r *Resolution) reparseMatch(text string, loc []int) ([]model.Segment, error) {
	group := func(i int) string {
		if loc[2*i] < 0 {
			return ""
		}
		return text[loc[2*i]:loc[2*i+1]]
	}

	switch {
	case loc[2] >= 0: // MARKER tag
		seg := model.Segment{
			Type:     pretranslatedType(group(1)),
			Text:     group(4),
			Original: group(3),
			Tooltip:  group(5),
		}
		return []model.Segment{seg}, nil

	case loc[12] >= 0: // COMPARISON tag
		return []model.Segment{{
			Type:     model.SegmentComparison,
			Text:     group(7),
			Original: group(6),
			Tooltip:  group(8),
		}}, nil

	default: // leftover {{key}} placeholder
		tok := template.Token{Key: group(9), Suffix: group(10)}
		return r.normalizeToken(tok)
	}
}

// pretranslatedType maps the tag's type field onto a segment type; unknown
// types degrade to plain text.
func pretranslatedType(t string) model.SegmentType {
	switch t {
	case "person":
		return model.SegmentPerson
	case "place":
		return model.SegmentPlace
	case "number":
		return model.SegmentNumber
	case "casualties":
		return model.SegmentCasualties
	case "date":
		return model.SegmentDate
	default:
		return model.SegmentText
	}
}

var paragraphSplitRe = regexp.MustCompile(`\n[ \t]*\n+`)

func splitParagraphs(text string) []string {
	var out []string
	for _, block := range paragraphSplitRe.Split(text, -1) {
		block = strings.TrimSpace(block)
		if block != "" {
			out = append(out, block)
		}
	}
	return out
}
