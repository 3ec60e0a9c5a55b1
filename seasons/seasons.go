// Package seasons describes the six seasons (perum pozhudhu) of the Tamil
// calendar and their twelve micro-seasons, and evaluates which micro-season
// contains a given date.
package seasons

import (
	"slices"
	"time"
)

// Season is one of the six major divisions of the year
type Season struct {
	Name         string // english name, i.e. "spring"
	Tamil        string
	Romanized    string
	Meaning      string
	Color        string // css hex color
	MicroSeasons [2]MicroSeason
}

// MicroSeason is a ~30 day division of a Season. Start and End are inclusive "abbr day" dates.
type MicroSeason struct {
	Name         string
	Tamil        string
	Meaning      string
	Associations string
	Start        string
	End          string
}

// IsActive reports whether now falls within the micro-season
func (m MicroSeason) IsActive(now time.Time) bool {
	return IsActive(m.Start, m.End, now)
}

// DateRange is the compact display form of the micro-season dates
func (m MicroSeason) DateRange() string {
	return FormatDateRange(m.Start, m.End)
}

// Active returns the first micro-season active at now
func (s Season) Active(now time.Time) (MicroSeason, bool) {
	for _, m := range s.MicroSeasons {
		if m.IsActive(now) {
			return m, true
		}
	}
	return MicroSeason{}, false
}

var all = []Season{
	{
		Name:      "spring",
		Tamil:     "இளவேனில்",
		Romanized: "ilavenil",
		Meaning:   "young summer",
		Color:     "#388E3C",
		MicroSeasons: [2]MicroSeason{
			{
				Name:         "chithirai",
				Tamil:        "சித்திரை",
				Meaning:      "spring month",
				Associations: "jasmine blooms everywhere. you can smell it in the evening breeze. mango trees flowering in backyards.",
				Start:        "apr 14",
				End:          "may 14",
			},
			{
				Name:         "vaigasi",
				Tamil:        "வைகாசி",
				Meaning:      "late spring",
				Associations: "mangoes starting to ripen. first pickings are sour but we eat them anyway with salt and chili.",
				Start:        "may 15",
				End:          "jun 14",
			},
		},
	},
	{
		Name:      "summer",
		Tamil:     "முதுவேனில்",
		Romanized: "mudhuvenil",
		Meaning:   "full summer",
		Color:     "#F57C00",
		MicroSeasons: [2]MicroSeason{
			{
				Name:         "aani",
				Tamil:        "ஆனி",
				Meaning:      "early summer",
				Associations: "so hot you can't step outside at noon. soil cracks in the fields. we sleep on terraces at night.",
				Start:        "jun 15",
				End:          "jul 16",
			},
			{
				Name:         "aadi",
				Tamil:        "ஆடி",
				Meaning:      "peak summer",
				Associations: "hottest days. old people pray for rain. children still playing cricket, somehow immune to the heat.",
				Start:        "jul 17",
				End:          "aug 16",
			},
		},
	},
	{
		Name:      "rainy",
		Tamil:     "கார்",
		Romanized: "kaar",
		Meaning:   "monsoon",
		Color:     "#0277BD",
		MicroSeasons: [2]MicroSeason{
			{
				Name:         "aavani",
				Tamil:        "ஆவணி",
				Meaning:      "start of monsoon",
				Associations: "finally the rains come. that first rain smell on dry earth makes everyone happy. frogs appear from nowhere.",
				Start:        "aug 17",
				End:          "sep 16",
			},
			{
				Name:         "purattasi",
				Tamil:        "புரட்டாசி",
				Meaning:      "heavy rains",
				Associations: "rivers fill up. constant drumming of rain on tin roofs. children make paper boats in street puddles.",
				Start:        "sep 17",
				End:          "oct 16",
			},
		},
	},
	{
		Name:      "cool",
		Tamil:     "குளிர்",
		Romanized: "kulir",
		Meaning:   "cool season",
		Color:     "#00796B",
		MicroSeasons: [2]MicroSeason{
			{
				Name:         "aippasi",
				Tamil:        "ஐப்பசி",
				Meaning:      "lessening rains",
				Associations: "rain slows down. morning dew on leaves. farmers happy with full water tanks and wells.",
				Start:        "oct 17",
				End:          "nov 15",
			},
			{
				Name:         "karthigai",
				Tamil:        "கார்த்திகை",
				Meaning:      "early winter",
				Associations: "perfect weather. not too hot, not too cold. temple festivals with lights and music everywhere.",
				Start:        "nov 16",
				End:          "dec 15",
			},
		},
	},
	{
		Name:      "early winter",
		Tamil:     "முன்பனி",
		Romanized: "munpani",
		Meaning:   "early dew",
		Color:     "#512DA8",
		MicroSeasons: [2]MicroSeason{
			{
				Name:         "margazhi",
				Tamil:        "மார்கழி",
				Meaning:      "winter dew",
				Associations: "misty mornings. old women draw kolam patterns before sunrise. music concerts in sabhas.",
				Start:        "dec 16",
				End:          "jan 13",
			},
			{
				Name:         "thai",
				Tamil:        "தை",
				Meaning:      "cold winter",
				Associations: "pongal celebrations. sweet jaggery rice cooked in new clay pots. bulls decorated for jallikattu.",
				Start:        "jan 14",
				End:          "feb 12",
			},
		},
	},
	{
		Name:      "late winter",
		Tamil:     "பின்பனி",
		Romanized: "pinpani",
		Meaning:   "late dew",
		Color:     "#33691E",
		MicroSeasons: [2]MicroSeason{
			{
				Name:         "maasi",
				Tamil:        "மாசி",
				Meaning:      "winter ending",
				Associations: "cold slowly leaves. grandmothers stop complaining about joint pains. birds more active at dawn.",
				Start:        "feb 13",
				End:          "mar 13",
			},
			{
				Name:         "panguni",
				Tamil:        "பங்குனி",
				Meaning:      "spring transition",
				Associations: "trees begin new leaves. weddings everywhere before summer heat comes. nights still pleasantly cool.",
				Start:        "mar 14",
				End:          "apr 13",
			},
		},
	},
}

// All returns the six seasons in calendar order starting with spring.
// The returned slice is a copy and may be modified by the caller.
func All() []Season {
	return slices.Clone(all)
}

// MicroSeasons returns all twelve micro-seasons in calendar order
func MicroSeasons() []MicroSeason {
	var o []MicroSeason
	for _, s := range all {
		o = append(o, s.MicroSeasons[:]...)
	}
	return o
}

// ActiveAt returns the season and micro-season containing now. ok is false when no micro-season matches.
func ActiveAt(now time.Time) (s Season, m MicroSeason, ok bool) {
	return activeIn(all, now)
}

func activeIn(list []Season, now time.Time) (Season, MicroSeason, bool) {
	for _, s := range list {
		if m, ok := s.Active(now); ok {
			return s, m, true
		}
	}
	return Season{}, MicroSeason{}, false
}
