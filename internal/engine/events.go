package engine

import (
	"fmt"
	"math"

	"github.com/storyport/storyport/internal/lang"
	"github.com/storyport/storyport/internal/model"
)

// resolveCasualties scales a casualty count (scaling is mandatory, unlike
// numbers) and attaches a comparable-event phrase or a marker-vs-marker
// comparison when one is authored.
func (r *Resolution) resolveCasualties(key string, m *model.Marker) (*model.TranslationResult, error) {
	sourcePop, targetPop, err := r.casualtyPopulations(m)
	if err != nil {
		return nil, err
	}

	scaled := int64(math.Round(float64(m.Casualties) * float64(targetPop) / float64(sourcePop)))
	res := &model.TranslationResult{
		Text:     r.locale.FormatInt(scaled),
		Original: r.locale.FormatInt(m.Casualties),
		Value:    scaled,
		ScalingNote: fmt.Sprintf("round(%s × %s / %s) = %s",
			groupDigits(m.Casualties), groupDigits(targetPop), groupDigits(sourcePop), groupDigits(scaled)),
	}

	if m.ComparedTo != "" {
		other, err := r.Resolve(m.ComparedTo)
		if err != nil {
			return nil, err
		}
		res.Comparison, res.ComparisonNote = markerComparison(r.locale, scaled, other)
		return res, nil
	}

	if event := MatchEvent(r.country.Events, scaled, m.Category); event != nil {
		res.Comparison, res.ComparisonNote = eventComparison(r.locale, scaled, event)
	}
	// No matching event: the comparison is simply omitted.
	return res, nil
}

// casualtyPopulations determines the scaling populations for a marker's
// scope: national by default, or a referenced city's. A city scope uses the
// city's resolved population once available and its authored figure
// otherwise.
func (r *Resolution) casualtyPopulations(m *model.Marker) (source, target int64, err error) {
	source = r.opts.SourcePopulation
	target = r.country.Population

	if m.Scope != model.ScopeCity || m.ScopeCity == "" {
		return source, target, nil
	}

	cityRes, err := r.Resolve(m.ScopeCity)
	if err != nil {
		return 0, 0, err
	}
	cityMarker := r.story.Markers[m.ScopeCity]
	if cityMarker != nil && cityMarker.Population > 0 {
		source = cityMarker.Population
	}
	if cityRes.Population > 0 {
		target = cityRes.Population
	} else if cityMarker != nil && cityMarker.Population > 0 {
		target = cityMarker.Population
	}
	return source, target, nil
}

// MatchEvent picks the country's event minimizing |scaled − casualties|,
// optionally filtered by category. Ties go to the first-encountered event;
// the order is arbitrary but reproducible. Returns nil when no event
// qualifies.
func MatchEvent(events []model.Event, scaled int64, category string) *model.Event {
	var best *model.Event
	var bestDist int64
	for i := range events {
		ev := &events[i]
		if ev.Casualties <= 0 {
			// A zero count cannot anchor a ratio phrase.
			continue
		}
		if category != "" && ev.Category != category {
			continue
		}
		dist := scaled - ev.Casualties
		if dist < 0 {
			dist = -dist
		}
		if best == nil || dist < bestDist {
			best = ev
			bestDist = dist
		}
	}
	return best
}

// eventComparison phrases the ratio of a scaled count to a matched event in
// the display language, plus an always-English arithmetic note.
func eventComparison(locale *lang.Locale, scaled int64, ev *model.Event) (phrase, note string) {
	ratio := float64(scaled) / float64(ev.Casualties)
	name := ev.DisplayName()

	switch {
	case ratio <= 0.35:
		phrase = locale.ComparisonFraction(lang.FractionThird, name)
	case ratio <= 0.55:
		phrase = locale.ComparisonFraction(lang.FractionHalf, name)
	case ratio < 0.85:
		phrase = locale.ComparisonFraction(lang.FractionTwoThirds, name)
	case ratio <= 1.15:
		phrase = locale.ComparisonApprox(name)
	default:
		// Ratios just above the approximate band would round to "1 times";
		// those still read as approximate.
		n := int(math.Round(ratio))
		if n < 2 {
			phrase = locale.ComparisonApprox(name)
		} else {
			phrase = locale.ComparisonTimes(n, name)
		}
	}

	note = fmt.Sprintf("%s / %s (%s, %d) = %.2f",
		groupDigits(scaled), groupDigits(ev.Casualties), ev.Name, ev.Year, ratio)
	return phrase, note
}

// markerComparison compares a scaled count against another resolved
// casualties marker using simple ratio thresholds.
func markerComparison(locale *lang.Locale, scaled int64, other *model.TranslationResult) (phrase, note string) {
	if other.Value <= 0 {
		return "", ""
	}
	ratio := float64(scaled) / float64(other.Value)

	switch {
	case ratio >= 0.9 && ratio <= 1.1:
		phrase = locale.CompareSame(other.Text)
	case ratio >= 1.75 && ratio <= 2.5:
		phrase = locale.CompareTwice(other.Text)
	case ratio > 2.5:
		phrase = locale.CompareMoreThan(int(ratio), other.Text)
	default:
		// No threshold reads naturally, omit the phrase.
		return "", ""
	}

	note = fmt.Sprintf("%s / %s = %.2f", groupDigits(scaled), groupDigits(other.Value), ratio)
	return phrase, note
}
