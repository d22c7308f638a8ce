// Package cache provides the process-level cache of loaded country tables
// and parsed templates. The per-request resolution cache is not here: that
// one lives inside engine.Resolution and is request-scoped on purpose.
package cache

import (
	"time"

	gocache "github.com/patrickmn/go-cache"

	"github.com/storyport/storyport/internal/model"
	"github.com/storyport/storyport/internal/template"
)

// Memory is an in-memory TTL cache shared across renders within one process.
// The cached values are immutable after loading, so concurrent readers need
// no further coordination.
type Memory struct {
	cache *gocache.Cache
}

// Parsed bundles a parsed template with the diagnostics its parse produced.
// Lenient parsing reports malformed syntax per parse, so a cache hit must
// replay the findings into the current render's collector or they are lost.
type Parsed struct {
	Paragraphs []template.Paragraph
	Diags      []model.Diagnostic
}

// New creates a memory cache with the given TTL and cleanup interval.
func New(ttl, cleanupInterval time.Duration) *Memory {
	return &Memory{
		cache: gocache.New(ttl, cleanupInterval),
	}
}

// Country retrieves a cached country table.
func (m *Memory) Country(code string) (*model.Country, bool) {
	if val, found := m.cache.Get("country:" + code); found {
		return val.(*model.Country), true
	}
	return nil, false
}

// SetCountry caches a country table under its code.
func (m *Memory) SetCountry(country *model.Country) {
	m.cache.SetDefault("country:"+country.Code, country)
}

// Template retrieves a cached parsed template by its cache key.
func (m *Memory) Template(key string) (*Parsed, bool) {
	if val, found := m.cache.Get("template:" + key); found {
		return val.(*Parsed), true
	}
	return nil, false
}

// SetTemplate caches a parsed template together with its parse diagnostics.
func (m *Memory) SetTemplate(key string, parsed *Parsed) {
	m.cache.SetDefault("template:"+key, parsed)
}

// Flush drops everything, for tests and config reloads.
func (m *Memory) Flush() {
	m.cache.Flush()
}
