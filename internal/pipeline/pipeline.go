// Package pipeline wires loading, caching, and the engine into whole-story
// renders.
package pipeline

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/storyport/storyport/internal/cache"
	"github.com/storyport/storyport/internal/engine"
	"github.com/storyport/storyport/internal/lang"
	"github.com/storyport/storyport/internal/load"
	"github.com/storyport/storyport/internal/model"
	"github.com/storyport/storyport/internal/template"
)

// Translator renders stories for target countries. It owns the immutable
// loaded tables and the process-level cache; every Render call creates its
// own resolution context, so one Translator is safe for concurrent use.
type Translator struct {
	cfg       *model.Config
	stories   map[string]*model.Story
	countries map[string]*model.Country
	cache     *cache.Memory
	log       *zap.SugaredLogger
}

// Rendered is one story rendered for one (country, language) target.
type Rendered struct {
	StorySlug string             `json:"story"`
	Country   string             `json:"country"`
	Language  string             `json:"language"`
	Title     []model.Segment    `json:"title"`
	Summary   []model.Segment    `json:"summary"`
	Content   []model.Segment    `json:"content"`
	Diags     []model.Diagnostic `json:"diagnostics,omitempty"`
}

// New loads the static tables and builds a translator.
func New(cfg *model.Config, log *zap.SugaredLogger) (*Translator, error) {
	if log == nil {
		log = zap.NewNop().Sugar()
	}

	stories, err := load.Stories(cfg.Data.StoriesDir)
	if err != nil {
		return nil, fmt.Errorf("loading stories: %w", err)
	}
	countries, err := load.Countries(cfg.Data.CountriesDir)
	if err != nil {
		return nil, fmt.Errorf("loading countries: %w", err)
	}

	t := &Translator{
		cfg:       cfg,
		stories:   make(map[string]*model.Story, len(stories)),
		countries: countries,
		log:       log,
	}
	for _, s := range stories {
		t.stories[s.Slug] = s
	}
	if cfg.Cache.Enabled {
		t.cache = cache.New(cfg.Cache.TTL, 2*cfg.Cache.TTL)
		for _, c := range countries {
			t.cache.SetCountry(c)
		}
	}

	log.Infow("loaded static tables",
		"stories", len(stories),
		"countries", len(countries))
	return t, nil
}

// Stories returns the loaded stories, for batch enumeration.
func (t *Translator) Stories() []*model.Story {
	out := make([]*model.Story, 0, len(t.stories))
	for _, s := range t.stories {
		out = append(out, s)
	}
	return out
}

// Countries returns the loaded country codes, for batch enumeration.
func (t *Translator) Countries() []string {
	out := make([]string, 0, len(t.countries))
	for code := range t.countries {
		out = append(out, code)
	}
	return out
}

// Render translates one story for one country and display language. A
// pre-translated variant for the language takes the re-parse path; both
// paths produce the same segment shape.
func (t *Translator) Render(slug, countryCode, langCode string) (*Rendered, error) {
	story, ok := t.stories[slug]
	if !ok {
		return nil, fmt.Errorf("unknown story %q", slug)
	}
	country, ok := t.country(countryCode)
	if !ok {
		return nil, fmt.Errorf("unknown country %q", countryCode)
	}
	locale := lang.Match(langCode)

	diags := &model.Diagnostics{}
	res := engine.NewResolution(story, country, locale, engine.Options{
		SourcePopulation: t.cfg.Scaling.SourcePopulation,
	}, diags)

	out := &Rendered{
		StorySlug: slug,
		Country:   countryCode,
		Language:  locale.Code,
	}

	pre := story.PretranslatedFor(locale.Code)
	fields := []struct {
		name string
		text string
		dst  *[]model.Segment
	}{
		{"title", story.Title, &out.Title},
		{"summary", story.Summary, &out.Summary},
		{"content", story.Content, &out.Content},
	}
	for _, f := range fields {
		var segs []model.Segment
		var err error
		if pre != nil {
			segs, err = res.RenderPretranslatedField(t.pretranslatedField(pre, f.name))
		} else {
			segs, err = t.renderField(res, story, f.name, f.text, diags)
		}
		if err != nil {
			return nil, fmt.Errorf("rendering %s of %s for %s/%s: %w", f.name, slug, countryCode, locale.Code, err)
		}
		*f.dst = segs
	}

	out.Diags = diags.Items()
	for _, d := range out.Diags {
		t.log.Debugw("render diagnostic",
			"story", slug, "country", countryCode,
			"severity", d.Severity, "component", d.Component, "key", d.Key, "msg", d.Message)
	}
	return out, nil
}

// country looks up a target country. With the cache enabled, a miss (a new
// table, or an expired entry) re-reads the country directory, so authored
// table edits are picked up without a restart. The startup map is read-only
// after New and serves as the fallback when the reload fails.
func (t *Translator) country(code string) (*model.Country, bool) {
	if t.cache == nil {
		c, ok := t.countries[code]
		return c, ok
	}
	if c, ok := t.cache.Country(code); ok {
		return c, true
	}

	countries, err := load.Countries(t.cfg.Data.CountriesDir)
	if err != nil {
		t.log.Warnw("reloading country tables failed, using startup tables", "err", err)
		c, ok := t.countries[code]
		return c, ok
	}
	for _, c := range countries {
		t.cache.SetCountry(c)
	}
	if c, ok := countries[code]; ok {
		return c, true
	}
	c, ok := t.countries[code]
	return c, ok
}

// renderField normalizes one template field, caching the parsed token stream
// across renders since templates never change within a process. Parse
// diagnostics are cached alongside and replayed into every render's
// collector; a cache hit must not hide a malformed template.
func (t *Translator) renderField(res *engine.Resolution, story *model.Story, name, text string, diags *model.Diagnostics) ([]model.Segment, error) {
	if t.cache == nil {
		return res.RenderField(text)
	}
	key := story.Slug + ":" + name
	parsed, ok := t.cache.Template(key)
	if !ok {
		parseDiags := &model.Diagnostics{}
		parsed = &cache.Parsed{
			Paragraphs: template.Parse(text, parseDiags),
			Diags:      parseDiags.Items(),
		}
		t.cache.SetTemplate(key, parsed)
	}
	for _, d := range parsed.Diags {
		diags.Add(d.Severity, d.Component, d.Key, "%s", d.Message)
	}
	return res.Normalize(parsed.Paragraphs)
}

func (t *Translator) pretranslatedField(pre *model.Pretranslated, name string) string {
	switch name {
	case "title":
		return pre.Title
	case "summary":
		return pre.Summary
	default:
		return pre.Content
	}
}
