package model

// MarkerKind discriminates the closed marker union
type MarkerKind string

const (
	KindUnknown    MarkerKind = "unknown"
	KindPerson     MarkerKind = "person"
	KindPlace      MarkerKind = "place"
	KindNumber     MarkerKind = "number"
	KindCasualties MarkerKind = "casualties"
	KindDate       MarkerKind = "date"
	KindAlias      MarkerKind = "alias"
	KindSource     MarkerKind = "source"
	KindImage      MarkerKind = "image"
)

// Gender selects a given-name pool
type Gender string

const (
	GenderFemale Gender = "female"
	GenderMale   Gender = "male"
)

// FacilityKind identifies a place sub-pool within a city
type FacilityKind string

const (
	FacilityCity          FacilityKind = "city"
	FacilityProtestSite   FacilityKind = "protest_site"
	FacilityMonument      FacilityKind = "monument"
	FacilityLandmark      FacilityKind = "landmark" // union of protest sites and monuments
	FacilityUniversity    FacilityKind = "university"
	FacilityHospital      FacilityKind = "hospital"
	FacilityMorgue        FacilityKind = "morgue"
	FacilityPrison        FacilityKind = "prison"
	FacilityPoliceStation FacilityKind = "police_station"
	FacilityGovernment    FacilityKind = "government"
)

// CasualtyKind classifies what a casualty count counts
type CasualtyKind string

const (
	CasualtyKilled   CasualtyKind = "killed"
	CasualtyInjured  CasualtyKind = "injured"
	CasualtyArrested CasualtyKind = "arrested"
)

// CasualtyScope selects the population a casualty figure scales against
type CasualtyScope string

const (
	ScopeNation CasualtyScope = "nation"
	ScopeCity   CasualtyScope = "city"
)

// Marker is one authored placeholder in a story template. The struct is the
// union of all variant fields; Kind is assigned once at load time by
// Discriminate and is the only field the engine switches on.
//
// Authoring contract: exactly one facility flag per Place marker and exactly
// one counting flag per Casualties marker. The loader's validator reports
// violations; the engine itself does not re-check.
type Marker struct {
	Kind MarkerKind `yaml:"-" json:"kind"`

	// Explicit discriminant, only used by source/image markers. The
	// structural fields below discriminate everything else.
	Type string `yaml:"type,omitempty" json:"type,omitempty"`

	// Person fields
	Person       string `yaml:"person,omitempty" json:"person,omitempty"`
	Gender       Gender `yaml:"gender,omitempty" json:"gender,omitempty"`
	Age          int    `yaml:"age,omitempty" json:"age,omitempty"`
	RegionalFrom string `yaml:"regional_from,omitempty" json:"regional_from,omitempty"`

	// Place fields
	Place      string `yaml:"place,omitempty" json:"place,omitempty"`
	SizeClass  string `yaml:"size_class,omitempty" json:"size_class,omitempty"`
	Capital    bool   `yaml:"capital,omitempty" json:"capital,omitempty"`
	Within     string `yaml:"within,omitempty" json:"within,omitempty"`
	Population int64  `yaml:"population,omitempty" json:"population,omitempty"`

	// Place facility flags (exactly one)
	City          bool `yaml:"city,omitempty" json:"-"`
	ProtestSite   bool `yaml:"protest_site,omitempty" json:"-"`
	Monument      bool `yaml:"monument,omitempty" json:"-"`
	Landmark      bool `yaml:"landmark,omitempty" json:"-"`
	University    bool `yaml:"university,omitempty" json:"-"`
	Hospital      bool `yaml:"hospital,omitempty" json:"-"`
	Morgue        bool `yaml:"morgue,omitempty" json:"-"`
	Prison        bool `yaml:"prison,omitempty" json:"-"`
	PoliceStation bool `yaml:"police_station,omitempty" json:"-"`
	Government    bool `yaml:"government,omitempty" json:"-"`

	// Number fields. Value is a pointer so that an authored zero is
	// distinguishable from an absent field during discrimination.
	Value     *float64 `yaml:"value,omitempty" json:"value,omitempty"`
	Unit      string   `yaml:"unit,omitempty" json:"unit,omitempty"`
	Scaled    bool     `yaml:"scaled,omitempty" json:"scaled,omitempty"`
	Dampening float64  `yaml:"dampening,omitempty" json:"dampening,omitempty"`
	Variance  float64  `yaml:"variance,omitempty" json:"variance,omitempty"`

	// Casualties fields
	Casualties int64         `yaml:"casualties,omitempty" json:"casualties,omitempty"`
	Scope      CasualtyScope `yaml:"scope,omitempty" json:"scope,omitempty"`
	ScopeCity  string        `yaml:"scope_city,omitempty" json:"scope_city,omitempty"`
	Category   string        `yaml:"category,omitempty" json:"category,omitempty"`
	ComparedTo string        `yaml:"compared_to,omitempty" json:"compared_to,omitempty"`

	// Casualties counting flags (exactly one)
	Killed   bool `yaml:"killed,omitempty" json:"-"`
	Injured  bool `yaml:"injured,omitempty" json:"-"`
	Arrested bool `yaml:"arrested,omitempty" json:"-"`

	// Date field, ISO 8601 (YYYY-MM-DD)
	Date string `yaml:"date,omitempty" json:"date,omitempty"`

	// Alias field: key of the marker this one mirrors
	SameAs string `yaml:"same_as,omitempty" json:"same_as,omitempty"`

	// Source fields (shared Title/URL also serve image markers)
	Title     string `yaml:"title,omitempty" json:"title,omitempty"`
	Publisher string `yaml:"publisher,omitempty" json:"publisher,omitempty"`
	URL       string `yaml:"url,omitempty" json:"url,omitempty"`

	// Image fields
	Alt     string `yaml:"alt,omitempty" json:"alt,omitempty"`
	Caption string `yaml:"caption,omitempty" json:"caption,omitempty"`
	Credit  string `yaml:"credit,omitempty" json:"credit,omitempty"`
}

// Discriminate assigns Kind from the fields that are present, using a fixed
// precedence order so that the result is total: every marker maps to exactly
// one variant or KindUnknown. Called once per marker at load time.
func (m *Marker) Discriminate() MarkerKind {
	switch {
	case m.Type == "source":
		m.Kind = KindSource
	case m.Type == "image":
		m.Kind = KindImage
	case m.Person != "":
		m.Kind = KindPerson
	case m.Place != "" || m.hasFacilityFlag():
		m.Kind = KindPlace
	case m.Casualties > 0 || m.hasCountingFlag():
		m.Kind = KindCasualties
	case m.Value != nil:
		m.Kind = KindNumber
	case m.Date != "":
		m.Kind = KindDate
	case m.SameAs != "":
		m.Kind = KindAlias
	default:
		m.Kind = KindUnknown
	}
	return m.Kind
}

func (m *Marker) hasFacilityFlag() bool {
	return m.City || m.ProtestSite || m.Monument || m.Landmark || m.University ||
		m.Hospital || m.Morgue || m.Prison || m.PoliceStation || m.Government
}

func (m *Marker) hasCountingFlag() bool {
	return m.Killed || m.Injured || m.Arrested
}

// Facility maps the place facility flags onto a FacilityKind. A place with no
// flag at all is treated as a plain city reference.
func (m *Marker) Facility() FacilityKind {
	switch {
	case m.ProtestSite:
		return FacilityProtestSite
	case m.Monument:
		return FacilityMonument
	case m.Landmark:
		return FacilityLandmark
	case m.University:
		return FacilityUniversity
	case m.Hospital:
		return FacilityHospital
	case m.Morgue:
		return FacilityMorgue
	case m.Prison:
		return FacilityPrison
	case m.PoliceStation:
		return FacilityPoliceStation
	case m.Government:
		return FacilityGovernment
	default:
		return FacilityCity
	}
}

// FacilityFlags returns how many facility flags are set (validator input).
func (m *Marker) FacilityFlags() int {
	n := 0
	for _, f := range []bool{m.City, m.ProtestSite, m.Monument, m.Landmark,
		m.University, m.Hospital, m.Morgue, m.Prison, m.PoliceStation, m.Government} {
		if f {
			n++
		}
	}
	return n
}

// Counting maps the casualty counting flags onto a CasualtyKind.
func (m *Marker) Counting() CasualtyKind {
	switch {
	case m.Injured:
		return CasualtyInjured
	case m.Arrested:
		return CasualtyArrested
	default:
		return CasualtyKilled
	}
}

// CountingFlags returns how many counting flags are set (validator input).
func (m *Marker) CountingFlags() int {
	n := 0
	for _, f := range []bool{m.Killed, m.Injured, m.Arrested} {
		if f {
			n++
		}
	}
	return n
}
