package engine

import (
	"strconv"

	"github.com/storyport/storyport/internal/model"
	"github.com/storyport/storyport/internal/template"
)

// Reserved namespaces resolved against the story's sources/images lists
// instead of the marker map.
const (
	nsSource = "source"
	nsImage  = "image"
)

// RenderField parses one template field and normalizes it into the final
// ordered segment stream. Paragraph boundaries become paragraph-break
// segments. Only cyclic references are fatal; everything else degrades.
func (r *Resolution) RenderField(text string) ([]model.Segment, error) {
	return r.Normalize(template.Parse(text, r.diags))
}

// Normalize renders an already-parsed token stream. Callers that cache
// parsed templates across renders use this instead of RenderField.
func (r *Resolution) Normalize(paragraphs []template.Paragraph) ([]model.Segment, error) {
	var segments []model.Segment
	for i, para := range paragraphs {
		if i > 0 {
			segments = append(segments, model.Segment{Type: model.SegmentParagraphBreak})
		}
		for _, tok := range para {
			seg, err := r.normalizeToken(tok)
			if err != nil {
				return nil, err
			}
			segments = append(segments, seg...)
		}
	}
	return segments, nil
}

// normalizeToken emits the segments for one token.
func (r *Resolution) normalizeToken(tok template.Token) ([]model.Segment, error) {
	if !tok.IsMarker() {
		return []model.Segment{{Type: model.SegmentText, Text: tok.Literal}}, nil
	}

	switch tok.Key {
	case nsSource:
		return r.sourceSegment(tok.Suffix), nil
	case nsImage:
		return r.imageSegment(tok.Suffix), nil
	}

	switch tok.Suffix {
	case "age":
		return r.ageSegment(tok.Key), nil
	case "comparable":
		return r.comparableSegment(tok.Key)
	case "original":
		return r.forcedSideSegment(tok.Key, true)
	case "translated":
		return r.forcedSideSegment(tok.Key, false)
	}

	res, err := r.Resolve(tok.Key)
	if err != nil {
		return nil, err
	}
	seg := model.Segment{
		Type:     r.segmentType(tok.Key),
		Text:     res.Text,
		Original: res.Original,
		Tooltip:  res.ScalingNote,
	}
	if seg.Tooltip == "" {
		seg.Tooltip = res.ComparisonNote
	}
	return []model.Segment{seg}, nil
}

// sourceSegment emits a citation segment from the story's sources list.
func (r *Resolution) sourceSegment(suffix string) []model.Segment {
	src := r.story.SourceAt(suffix)
	if src == nil {
		r.diags.Add(model.DiagWarning, "normalizer", nsSource+":"+suffix, "source not found in story %q", r.story.Slug)
		return []model.Segment{{Type: model.SegmentText, Text: "{{source:" + suffix + "}}"}}
	}
	return []model.Segment{{
		Type:    model.SegmentSource,
		Text:    src.Title,
		Tooltip: src.Publisher,
		URL:     src.URL,
	}}
}

// imageSegment emits an image segment from the story's images list.
func (r *Resolution) imageSegment(suffix string) []model.Segment {
	img := r.story.ImageAt(suffix)
	if img == nil {
		r.diags.Add(model.DiagWarning, "normalizer", nsImage+":"+suffix, "image not found in story %q", r.story.Slug)
		return []model.Segment{{Type: model.SegmentText, Text: "{{image:" + suffix + "}}"}}
	}
	return []model.Segment{{
		Type: model.SegmentImage,
		Text: img.Caption,
		Image: &model.ImageMeta{
			URL:     img.URL,
			Alt:     img.Alt,
			Caption: img.Caption,
			Credit:  img.Credit,
		},
	}}
}

// ageSegment reads a person's numeric age field directly, unscaled.
func (r *Resolution) ageSegment(key string) []model.Segment {
	m, ok := r.story.Markers[key]
	if !ok || m.Kind != model.KindPerson || m.Age <= 0 {
		r.diags.Add(model.DiagWarning, "normalizer", key, "age suffix on a marker without an age")
		return []model.Segment{{Type: model.SegmentText, Text: "{{" + key + ":age}}"}}
	}
	return []model.Segment{{Type: model.SegmentNumber, Text: strconv.Itoa(m.Age)}}
}

// comparableSegment emits the comparison phrase for a casualties marker, or
// empty text when no comparison exists. It never re-emits the base number.
func (r *Resolution) comparableSegment(key string) ([]model.Segment, error) {
	res, err := r.Resolve(key)
	if err != nil {
		return nil, err
	}
	return []model.Segment{{
		Type:    model.SegmentComparison,
		Text:    res.Comparison,
		Tooltip: res.ComparisonNote,
	}}, nil
}

// forcedSideSegment forces one side of a translated pair, with no paired
// styling on the output.
func (r *Resolution) forcedSideSegment(key string, original bool) ([]model.Segment, error) {
	res, err := r.Resolve(key)
	if err != nil {
		return nil, err
	}
	text := res.Text
	if original && res.Original != "" {
		text = res.Original
	}
	return []model.Segment{{Type: r.segmentType(key), Text: text}}, nil
}

// segmentType maps a marker key's kind onto its segment type. Aliases are
// followed (they report their target's type).
func (r *Resolution) segmentType(key string) model.SegmentType {
	seen := 0
	m, ok := r.story.Markers[key]
	for ok && m.Kind == model.KindAlias && seen < len(r.story.Markers) {
		m, ok = r.story.Markers[m.SameAs]
		seen++
	}
	if !ok {
		return model.SegmentText
	}
	switch m.Kind {
	case model.KindPerson:
		return model.SegmentPerson
	case model.KindPlace:
		return model.SegmentPlace
	case model.KindNumber:
		return model.SegmentNumber
	case model.KindCasualties:
		return model.SegmentCasualties
	case model.KindDate:
		return model.SegmentDate
	case model.KindSource:
		return model.SegmentSource
	case model.KindImage:
		return model.SegmentImage
	default:
		return model.SegmentText
	}
}
