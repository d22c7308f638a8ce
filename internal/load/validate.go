package load

import (
	"github.com/storyport/storyport/internal/model"
	"github.com/storyport/storyport/internal/template"
)

// ValidateStory runs the authoring-time checks the engine itself does not
// defend against: alias cycles and dangling targets, parent references that
// are not place markers, kind-flag contracts, and template references to
// undefined markers. Findings are diagnostics, never errors; the engine
// degrades gracefully either way, but authors should see these.
func ValidateStory(story *model.Story) []model.Diagnostic {
	diags := &model.Diagnostics{}

	for key, m := range story.Markers {
		switch m.Kind {
		case model.KindUnknown:
			diags.Add(model.DiagError, "validator", key, "marker matches no variant")
		case model.KindAlias:
			validateAlias(story, key, diags)
		case model.KindPlace:
			validatePlace(story, key, m, diags)
		case model.KindCasualties:
			validateCasualties(story, key, m, diags)
		}
	}

	for _, field := range []string{story.Title, story.Summary, story.Content} {
		validateTemplateRefs(story, field, diags)
	}

	return diags.Items()
}

// validateAlias walks the alias chain with a visited set: the engine's own
// cycle guard turns cycles into errors at render time, but they should be
// caught here first.
func validateAlias(story *model.Story, key string, diags *model.Diagnostics) {
	visited := map[string]bool{}
	cur := key
	for {
		if visited[cur] {
			diags.Add(model.DiagError, "validator", key, "alias chain contains a cycle through %q", cur)
			return
		}
		visited[cur] = true

		m, ok := story.Markers[cur]
		if !ok {
			diags.Add(model.DiagError, "validator", key, "alias target %q is not defined", cur)
			return
		}
		if m.Kind != model.KindAlias {
			return
		}
		cur = m.SameAs
	}
}

func validatePlace(story *model.Story, key string, m *model.Marker, diags *model.Diagnostics) {
	if n := m.FacilityFlags(); n > 1 {
		diags.Add(model.DiagError, "validator", key, "place marker sets %d kind flags, want at most one", n)
	}
	if m.Within != "" {
		parent, ok := story.Markers[m.Within]
		if !ok {
			diags.Add(model.DiagError, "validator", key, "parent place %q is not defined", m.Within)
		} else if parent.Kind != model.KindPlace {
			diags.Add(model.DiagError, "validator", key, "parent %q is a %s marker, not a place", m.Within, parent.Kind)
		}
	}
}

func validateCasualties(story *model.Story, key string, m *model.Marker, diags *model.Diagnostics) {
	if n := m.CountingFlags(); n != 1 {
		diags.Add(model.DiagError, "validator", key, "casualties marker sets %d kind flags, want exactly one", n)
	}
	if m.Scope == model.ScopeCity && m.ScopeCity == "" {
		diags.Add(model.DiagError, "validator", key, "city scope without a scope_city reference")
	}
	if m.ScopeCity != "" {
		ref, ok := story.Markers[m.ScopeCity]
		if !ok {
			diags.Add(model.DiagError, "validator", key, "scope city %q is not defined", m.ScopeCity)
		} else if ref.Kind != model.KindPlace {
			diags.Add(model.DiagError, "validator", key, "scope city %q is a %s marker, not a place", m.ScopeCity, ref.Kind)
		}
	}
	if m.ComparedTo != "" {
		ref, ok := story.Markers[m.ComparedTo]
		if !ok {
			diags.Add(model.DiagError, "validator", key, "compared_to %q is not defined", m.ComparedTo)
		} else if ref.Kind != model.KindCasualties {
			diags.Add(model.DiagError, "validator", key, "compared_to %q is a %s marker, not casualties", m.ComparedTo, ref.Kind)
		}
	}
}

// validateTemplateRefs flags template references to markers the story does
// not define. Source/image namespaces resolve against the story lists.
func validateTemplateRefs(story *model.Story, text string, diags *model.Diagnostics) {
	for _, para := range template.Parse(text, diags) {
		for _, tok := range para {
			if !tok.IsMarker() {
				continue
			}
			switch tok.Key {
			case "source":
				if story.SourceAt(tok.Suffix) == nil {
					diags.Add(model.DiagWarning, "validator", tok.Key+":"+tok.Suffix, "template references missing source")
				}
			case "image":
				if story.ImageAt(tok.Suffix) == nil {
					diags.Add(model.DiagWarning, "validator", tok.Key+":"+tok.Suffix, "template references missing image")
				}
			default:
				if _, ok := story.Markers[tok.Key]; !ok {
					diags.Add(model.DiagWarning, "validator", tok.Key, "template references undefined marker")
				}
			}
		}
	}
}

// ValidateCountry checks a country table for pools the fallback chains would
// exhaust: missing name pools and facility kinds no city provides.
func ValidateCountry(country *model.Country) []model.Diagnostic {
	diags := &model.Diagnostics{}

	if len(country.Names.Female) == 0 {
		diags.Add(model.DiagWarning, "validator", "", "%s has no female name pool", country.Code)
	}
	if len(country.Names.Male) == 0 {
		diags.Add(model.DiagWarning, "validator", "", "%s has no male name pool", country.Code)
	}
	if len(country.Cities) == 0 {
		diags.Add(model.DiagError, "validator", "", "%s has no cities", country.Code)
	}
	if len(country.Events) == 0 {
		diags.Add(model.DiagInfo, "validator", "", "%s has no comparable events, comparisons will be omitted", country.Code)
	}
	for _, ev := range country.Events {
		if ev.Casualties <= 0 {
			diags.Add(model.DiagWarning, "validator", ev.ID,
				"event %q has no casualty count and will never be matched", ev.Name)
		}
	}

	kinds := []model.FacilityKind{
		model.FacilityProtestSite, model.FacilityMonument, model.FacilityUniversity,
		model.FacilityHospital, model.FacilityMorgue, model.FacilityPrison,
		model.FacilityPoliceStation, model.FacilityGovernment,
	}
	for _, kind := range kinds {
		if len(country.Generic.ByKind(kind)) > 0 {
			continue
		}
		found := false
		for _, city := range country.Cities {
			if len(city.Facilities.ByKind(kind)) > 0 {
				found = true
				break
			}
		}
		if !found {
			diags.Add(model.DiagInfo, "validator", "",
				"%s has no %s pool anywhere, markers of that kind will keep authored values", country.Code, kind)
		}
	}

	return diags.Items()
}
