package engine

import (
	"github.com/storyport/storyport/internal/lang"
	"github.com/storyport/storyport/internal/model"
)

// Shared fixtures for the engine tests: a small US-like country table and a
// story builder that discriminates its markers the way the loader does.

func testCountry() *model.Country {
	return &model.Country{
		Code:       "US",
		Name:       "United States",
		Population: 331_000_000,
		Currency:   model.Currency{Code: "USD", Symbol: "$"},
		Names: model.NamePools{
			Female: []string{"Emma", "Olivia", "Ava", "Sophia", "Mia"},
			Male:   []string{"Liam", "Noah", "Ethan", "Lucas"},
		},
		Cities: []model.City{
			{
				Name:       "Washington",
				Population: 700_000,
				SizeClass:  "city",
				Capital:    true,
				Facilities: model.Facilities{
					ProtestSites: []string{"Lafayette Square"},
					Monuments:    []string{"Lincoln Memorial"},
					Universities: []string{"Georgetown University"},
					Government:   []string{"the Capitol"},
				},
			},
			{
				Name:       "New York",
				Population: 8_400_000,
				SizeClass:  "metropolis",
				Facilities: model.Facilities{
					ProtestSites: []string{"Times Square", "Union Square"},
					Universities: []string{"Columbia University", "NYU"},
					Hospitals:    []string{"Bellevue Hospital"},
					Prisons:      []string{"Rikers Island"},
				},
			},
			{
				Name:       "Portland",
				Population: 650_000,
				SizeClass:  "city",
				Facilities: model.Facilities{
					Universities: []string{"Portland State University"},
				},
			},
		},
		Generic: model.Facilities{
			Hospitals: []string{"the county hospital"},
			Morgues:   []string{"the county morgue"},
		},
		Events: []model.Event{
			{ID: "kent-state", Name: "Kent State shootings", Casualties: 4, Category: "protest", Year: 1970},
			{ID: "tulsa", Name: "Tulsa race massacre", Casualties: 300, Category: "massacre", Year: 1921},
			{ID: "galveston", Name: "Galveston hurricane", Casualties: 8000, Category: "disaster", Year: 1900},
		},
	}
}

func testStory(markers map[string]*model.Marker) *model.Story {
	for _, m := range markers {
		m.Discriminate()
	}
	return &model.Story{
		ID:      "story-1",
		Slug:    "story-1",
		Markers: markers,
	}
}

func testResolution(story *model.Story, country *model.Country) (*Resolution, *model.Diagnostics) {
	diags := &model.Diagnostics{}
	return NewResolution(story, country, lang.Match("en"), Options{}, diags), diags
}

func floatp(f float64) *float64 { return &f }
