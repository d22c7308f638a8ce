package engine

import (
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/storyport/storyport/internal/lang"
	"github.com/storyport/storyport/internal/model"
)

// ErrCyclicReference is returned when alias or parent-place resolution
// re-enters a key that is already being resolved. This is an authoring
// defect; the explicit guard keeps it from becoming unbounded recursion.
var ErrCyclicReference = errors.New("cyclic marker reference")

// Options tunes one resolution run.
type Options struct {
	// SourcePopulation is the population the authored magnitudes are
	// calibrated against. Zero means model.DefaultSourcePopulation.
	SourcePopulation int64
}

// Resolution is the request-scoped context for translating one story for one
// (country, language) pair. It memoizes marker results so every key is
// computed at most once, and it is never shared between requests: concurrent
// renders each create their own.
type Resolution struct {
	story   *model.Story
	country *model.Country
	locale  *lang.Locale
	opts    Options

	cache    map[string]*model.TranslationResult
	visiting map[string]bool
	diags    *model.Diagnostics
}

// NewResolution creates a fresh resolution context. diags may be nil.
func NewResolution(story *model.Story, country *model.Country, locale *lang.Locale, opts Options, diags *model.Diagnostics) *Resolution {
	if opts.SourcePopulation <= 0 {
		opts.SourcePopulation = model.DefaultSourcePopulation
	}
	return &Resolution{
		story:    story,
		country:  country,
		locale:   locale,
		opts:     opts,
		cache:    make(map[string]*model.TranslationResult),
		visiting: make(map[string]bool),
		diags:    diags,
	}
}

// Resolve returns the translation result for a marker key, computing it on
// first use and serving the cached result afterwards. An unknown key degrades
// to a literal bracketed placeholder; a cyclic reference is the only error.
func (r *Resolution) Resolve(key string) (*model.TranslationResult, error) {
	if res, ok := r.cache[key]; ok {
		return res, nil
	}
	if r.visiting[key] {
		return nil, fmt.Errorf("%w: %s", ErrCyclicReference, key)
	}

	marker, ok := r.story.Markers[key]
	if !ok {
		r.diags.Add(model.DiagWarning, "resolver", key, "marker not defined in story %q", r.story.Slug)
		res := &model.TranslationResult{Text: "{{" + key + "}}"}
		r.cache[key] = res
		return res, nil
	}

	r.visiting[key] = true
	defer delete(r.visiting, key)

	res, err := r.dispatch(key, marker)
	if err != nil {
		return nil, err
	}
	r.cache[key] = res
	return res, nil
}

// dispatch routes a marker to its variant handler. The switch is exhaustive
// over the closed union; KindUnknown degrades to a literal placeholder.
func (r *Resolution) dispatch(key string, m *model.Marker) (*model.TranslationResult, error) {
	switch m.Kind {
	case model.KindPerson:
		return r.resolvePerson(key, m)
	case model.KindPlace:
		return r.resolvePlace(key, m)
	case model.KindNumber:
		return r.resolveNumber(key, m), nil
	case model.KindCasualties:
		return r.resolveCasualties(key, m)
	case model.KindDate:
		return r.resolveDate(key, m), nil
	case model.KindAlias:
		return r.resolveAlias(key, m)
	case model.KindSource:
		return &model.TranslationResult{Text: m.Title}, nil
	case model.KindImage:
		return &model.TranslationResult{Text: m.Caption}, nil
	default:
		r.diags.Add(model.DiagWarning, "resolver", key, "marker has unknown kind, emitting placeholder")
		return &model.TranslationResult{Text: "{{" + key + "}}"}, nil
	}
}

// resolvePerson picks a locally familiar given name from the gender pool.
func (r *Resolution) resolvePerson(key string, m *model.Marker) (*model.TranslationResult, error) {
	// A regional origin pins the person to a place marker; resolving it
	// first keeps the person and the place consistent within one story.
	if m.RegionalFrom != "" {
		if _, err := r.Resolve(m.RegionalFrom); err != nil {
			return nil, err
		}
	}

	pool := r.country.Names.ByGender(m.Gender)
	name, err := Pick(Seed(r.story.ID, key, r.country.Code), pool)
	if err != nil {
		r.diags.Add(model.DiagWarning, "resolver", key,
			"no %s name pool for %s, keeping original", m.Gender, r.country.Code)
		return &model.TranslationResult{Text: m.Person}, nil
	}
	return &model.TranslationResult{Text: name, Original: m.Person}, nil
}

// resolveNumber formats a number, scaling it by population when the marker
// opts in, and applying bounded seeded variance if authored.
func (r *Resolution) resolveNumber(key string, m *model.Marker) *model.TranslationResult {
	base := *m.Value
	rounded := int64(math.Round(base))
	value := rounded
	var notes []string

	if m.Scaled {
		scaled, note := Scale(base, r.opts.SourcePopulation, r.country.Population, m.Dampening)
		value = scaled
		notes = append(notes, note)
	}
	if m.Variance > 0 {
		perturbed, note := Perturb(Seed(r.story.ID, key, r.country.Code), value, m.Variance)
		value = perturbed
		notes = append(notes, note)
	}

	res := &model.TranslationResult{
		Text:  r.formatNumber(value, m.Unit),
		Value: value,
	}
	if value != rounded {
		res.Original = r.formatNumber(rounded, m.Unit)
	}
	if len(notes) > 0 {
		res.ScalingNote = joinNotes(notes)
	}
	return res
}

// formatNumber renders a value with locale digit grouping, appending the
// target country's currency when the unit hint asks for one.
func (r *Resolution) formatNumber(v int64, unit string) string {
	text := r.locale.FormatInt(v)
	switch unit {
	case "currency":
		if r.country.Currency.Symbol != "" {
			return text + " " + r.country.Currency.Symbol
		}
		if r.country.Currency.Code != "" {
			return text + " " + r.country.Currency.Code
		}
	case "":
	default:
		return text + " " + unit
	}
	return text
}

// resolveDate formats an authored ISO date for the display locale.
func (r *Resolution) resolveDate(key string, m *model.Marker) *model.TranslationResult {
	t, err := time.Parse("2006-01-02", m.Date)
	if err != nil {
		r.diags.Add(model.DiagWarning, "resolver", key, "unparseable date %q, emitting as-is", m.Date)
		return &model.TranslationResult{Text: m.Date}
	}
	return &model.TranslationResult{Text: r.locale.FormatDate(t)}
}

// resolveAlias resolves the target key and copies its result verbatim, so
// every alias of one target shares identical values while the target itself
// is computed exactly once.
func (r *Resolution) resolveAlias(key string, m *model.Marker) (*model.TranslationResult, error) {
	target, err := r.Resolve(m.SameAs)
	if err != nil {
		return nil, err
	}
	copied := *target
	return &copied, nil
}

func joinNotes(notes []string) string {
	out := notes[0]
	for _, n := range notes[1:] {
		out += "; " + n
	}
	return out
}
