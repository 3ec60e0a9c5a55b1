package seasons

import (
	"fmt"
	"log"
	"time"
)

// Validate returns an error when Start or End can't be evaluated in year
func (m MicroSeason) Validate(year int) error {
	for _, s := range []string{m.Start, m.End} {
		md, err := ParseMonthDay(s)
		if err != nil {
			return fmt.Errorf("micro-season %q: %w", m.Name, err)
		}
		if md.Ordinal(year) == 0 {
			return fmt.Errorf("micro-season %q: %w %q: no such day in %d", m.Name, ErrInvalidDate, s, year)
		}
	}
	return nil
}

// View is the per-render model shared by every layout. It is derived from the clock and never stored.
type View struct {
	Date      time.Time
	DayOfYear int
	Seasons   []SeasonView

	Current      *SeasonView      // nil when no micro-season is active
	CurrentMicro *MicroSeasonView // nil when no micro-season is active
	Next         *MicroSeasonView // the micro-season after CurrentMicro
	NextStart    time.Time
}

type SeasonView struct {
	Season
	Active bool
	Micro  []MicroSeasonView
}

type MicroSeasonView struct {
	MicroSeason
	Active   bool
	Range    string
	DateTime string // yearless html date of Start, i.e. "04-14"
}

// NewView evaluates the dataset against now
func NewView(now time.Time) View {
	return newView(all, now)
}

func newView(list []Season, now time.Time) View {
	v := View{
		Date:      now,
		DayOfYear: DayOfYear(now.Year(), now.Month(), now.Day()),
	}
	type position struct{ season, micro int }
	var order []position
	current := -1
	for i, s := range list {
		sv := SeasonView{Season: s}
		for j, m := range s.MicroSeasons {
			if err := m.Validate(now.Year()); err != nil {
				log.Printf("seasons: %s", err)
			}
			mv := MicroSeasonView{
				MicroSeason: m,
				Active:      m.IsActive(now),
				Range:       m.DateRange(),
			}
			if md, err := ParseMonthDay(m.Start); err == nil {
				mv.DateTime = fmt.Sprintf("%02d-%02d", int(md.Month), md.Day)
			}
			if mv.Active && current == -1 {
				sv.Active = true
				current = len(order)
			}
			sv.Micro = append(sv.Micro, mv)
			order = append(order, position{i, j})
		}
		v.Seasons = append(v.Seasons, sv)
	}
	if current == -1 {
		return v
	}
	p := order[current]
	v.Current = &v.Seasons[p.season]
	v.CurrentMicro = &v.Seasons[p.season].Micro[p.micro]

	n := order[(current+1)%len(order)]
	v.Next = &v.Seasons[n.season].Micro[n.micro]
	if md, err := ParseMonthDay(v.Next.Start); err == nil {
		v.NextStart = NextOccurrence(md, now)
	}
	return v
}
