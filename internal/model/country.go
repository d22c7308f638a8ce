package model

// Country is the static per-country context table: population, currency,
// name pools, place hierarchy, and comparable historical events. Loaded once
// at process start and never mutated.
type Country struct {
	Code       string   `yaml:"code" json:"code"`
	Name       string   `yaml:"name" json:"name"`
	Population int64    `yaml:"population" json:"population"`
	Currency   Currency `yaml:"currency" json:"currency"`
	Names      NamePools  `yaml:"names" json:"names"`
	Cities     []City     `yaml:"cities" json:"cities"`
	Generic    Facilities `yaml:"generic" json:"generic"` // country-wide fallback pools
	Events     []Event    `yaml:"events" json:"events"`
}

// Currency describes the country's currency for unit-hinted numbers.
type Currency struct {
	Code   string `yaml:"code" json:"code"`
	Symbol string `yaml:"symbol" json:"symbol"`
}

// NamePools holds given-name candidate lists by gender.
type NamePools struct {
	Female []string `yaml:"female" json:"female"`
	Male   []string `yaml:"male" json:"male"`
}

// ByGender returns the pool for a gender, defaulting to the female pool.
func (p NamePools) ByGender(g Gender) []string {
	if g == GenderMale {
		return p.Male
	}
	return p.Female
}

// City is one node of the place hierarchy with its facility sub-pools.
type City struct {
	Name       string     `yaml:"name" json:"name"`
	Population int64      `yaml:"population" json:"population"`
	SizeClass  string     `yaml:"size_class" json:"size_class"`
	Capital    bool       `yaml:"capital,omitempty" json:"capital,omitempty"`
	Facilities Facilities `yaml:"facilities" json:"facilities"`
}

// Facilities holds named-place pools keyed by facility kind.
type Facilities struct {
	ProtestSites   []string `yaml:"protest_sites,omitempty" json:"protest_sites,omitempty"`
	Monuments      []string `yaml:"monuments,omitempty" json:"monuments,omitempty"`
	Universities   []string `yaml:"universities,omitempty" json:"universities,omitempty"`
	Hospitals      []string `yaml:"hospitals,omitempty" json:"hospitals,omitempty"`
	Morgues        []string `yaml:"morgues,omitempty" json:"morgues,omitempty"`
	Prisons        []string `yaml:"prisons,omitempty" json:"prisons,omitempty"`
	PoliceStations []string `yaml:"police_stations,omitempty" json:"police_stations,omitempty"`
	Government     []string `yaml:"government,omitempty" json:"government,omitempty"`
}

// ByKind returns the pool for a facility kind. FacilityLandmark is the union
// of protest sites and monuments, in that order.
func (f Facilities) ByKind(k FacilityKind) []string {
	switch k {
	case FacilityProtestSite:
		return f.ProtestSites
	case FacilityMonument:
		return f.Monuments
	case FacilityLandmark:
		union := make([]string, 0, len(f.ProtestSites)+len(f.Monuments))
		union = append(union, f.ProtestSites...)
		union = append(union, f.Monuments...)
		return union
	case FacilityUniversity:
		return f.Universities
	case FacilityHospital:
		return f.Hospitals
	case FacilityMorgue:
		return f.Morgues
	case FacilityPrison:
		return f.Prisons
	case FacilityPoliceStation:
		return f.PoliceStations
	case FacilityGovernment:
		return f.Government
	default:
		return nil
	}
}

// Event is a comparable historical event used for casualty comparisons.
type Event struct {
	ID         string `yaml:"id" json:"id"`
	Name       string `yaml:"name" json:"name"`
	FullName   string `yaml:"full_name,omitempty" json:"full_name,omitempty"`
	Casualties int64  `yaml:"casualties" json:"casualties"`
	Category   string `yaml:"category,omitempty" json:"category,omitempty"`
	Year       int    `yaml:"year,omitempty" json:"year,omitempty"`
}

// DisplayName prefers the full event name over the short one.
func (e Event) DisplayName() string {
	if e.FullName != "" {
		return e.FullName
	}
	return e.Name
}

// CityByName finds a city record by its resolved name, or nil.
func (c *Country) CityByName(name string) *City {
	for i := range c.Cities {
		if c.Cities[i].Name == name {
			return &c.Cities[i]
		}
	}
	return nil
}

// CitiesBySize returns cities matching a size class and capital flag. An
// empty size class matches every city; the capital flag only narrows when
// set, since most markers do not care either way.
func (c *Country) CitiesBySize(sizeClass string, capital bool) []City {
	var out []City
	for _, city := range c.Cities {
		if sizeClass != "" && city.SizeClass != sizeClass {
			continue
		}
		if capital && !city.Capital {
			continue
		}
		out = append(out, city)
	}
	return out
}
