package engine

import (
	"github.com/storyport/storyport/internal/model"
)

// resolvePlace resolves a place marker against the country's place
// hierarchy. Plain city markers pick a city directly; facility markers
// prefer a facility inside their resolved parent city and fall back through
// the documented chain:
//
//	parent city's matching facility pool
//	(a)  city picked by the marker's own size class / capital flag
//	(b)  any city with a non-empty pool of the required kind
//	(b2) the country-wide generic pool
//	(c)  the authored original, unannotated, with a diagnostic
func (r *Resolution) resolvePlace(key string, m *model.Marker) (*model.TranslationResult, error) {
	facility := m.Facility()
	if facility == model.FacilityCity {
		return r.resolveCity(key, m), nil
	}

	seed := Seed(r.story.ID, key, r.country.Code)

	// Parent-first: a facility inside a resolved city keeps the story
	// geographically consistent.
	if m.Within != "" {
		parent, err := r.Resolve(m.Within)
		if err != nil {
			return nil, err
		}
		if city := r.country.CityByName(parent.Text); city != nil {
			if name, err := Pick(seed, city.Facilities.ByKind(facility)); err == nil {
				return &model.TranslationResult{Text: name, Original: m.Place}, nil
			}
			r.diags.Add(model.DiagInfo, "places", key,
				"city %q has no %s pool, falling back", city.Name, facility)
		} else {
			r.diags.Add(model.DiagInfo, "places", key,
				"parent %q resolved to %q which is not in the %s hierarchy",
				m.Within, parent.Text, r.country.Code)
		}
	}

	// (a) pick a city by the marker's own size class and capital flag.
	if m.SizeClass != "" || m.Capital {
		if city := r.pickCity(Seed(r.story.ID, key, "city", r.country.Code), m.SizeClass, m.Capital); city != nil {
			if name, err := Pick(seed, city.Facilities.ByKind(facility)); err == nil {
				return &model.TranslationResult{Text: name, Original: m.Place}, nil
			}
		}
	}

	// (b) any city with a non-empty pool of the required kind.
	var candidates []model.City
	for _, city := range r.country.Cities {
		if len(city.Facilities.ByKind(facility)) > 0 {
			candidates = append(candidates, city)
		}
	}
	if len(candidates) > 0 {
		city := candidates[PickIndex(Seed(r.story.ID, key, "scan", r.country.Code), len(candidates))]
		if name, err := Pick(seed, city.Facilities.ByKind(facility)); err == nil {
			return &model.TranslationResult{Text: name, Original: m.Place}, nil
		}
	}

	// (b2) country-wide generic pool.
	if name, err := Pick(seed, r.country.Generic.ByKind(facility)); err == nil {
		r.diags.Add(model.DiagInfo, "places", key, "using generic %s pool for %s", facility, r.country.Code)
		return &model.TranslationResult{Text: name, Original: m.Place}, nil
	}

	// (c) nothing found: keep the authored value with no "original"
	// annotation so the reader sees no strikethrough.
	r.diags.Add(model.DiagWarning, "places", key,
		"no %s available anywhere in %s, keeping authored value %q", facility, r.country.Code, m.Place)
	return &model.TranslationResult{Text: m.Place}, nil
}

// resolveCity picks a city for a plain place marker and carries its
// population for city-scoped casualty scaling.
func (r *Resolution) resolveCity(key string, m *model.Marker) *model.TranslationResult {
	city := r.pickCity(Seed(r.story.ID, key, r.country.Code), m.SizeClass, m.Capital)
	if city == nil {
		r.diags.Add(model.DiagWarning, "places", key,
			"no city matches size_class=%q capital=%v in %s, keeping authored value",
			m.SizeClass, m.Capital, r.country.Code)
		return &model.TranslationResult{Text: m.Place, Population: m.Population}
	}
	return &model.TranslationResult{
		Text:       city.Name,
		Original:   m.Place,
		Population: city.Population,
	}
}

// pickCity deterministically selects a city matching the size class and
// capital flag, widening to all cities when the narrow match is empty.
func (r *Resolution) pickCity(seed, sizeClass string, capital bool) *model.City {
	candidates := r.country.CitiesBySize(sizeClass, capital)
	if len(candidates) == 0 {
		candidates = r.country.Cities
	}
	if len(candidates) == 0 {
		return nil
	}
	city := candidates[PickIndex(seed, len(candidates))]
	return &city
}
