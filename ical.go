package main

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/gosimple/slug"

	"github.com/ganeshkumartk/tamilseasons/seasons"
)

// NewCalendar builds an iCalendar with one all-day, yearly recurring event per micro-season.
//
// Events are anchored in the year before now so a range that wraps into
// January is already in progress for dates early in the year.
func NewCalendar(now time.Time) *ics.Calendar {
	cal := ics.NewCalendar()
	cal.SetMethod(ics.MethodPublish)
	cal.SetProductId("-//tamilseasons//seasons//EN")
	cal.SetXWRCalName("tamil seasons")
	cal.SetXWRCalDesc("the six seasons and twelve micro-seasons of the tamil calendar")
	cal.SetRefreshInterval("P1W")

	year := now.Year() - 1
	for _, s := range seasons.All() {
		for _, m := range s.MicroSeasons {
			start, err := seasons.ParseMonthDay(m.Start)
			if err != nil {
				log.Printf("ical: skipping %s: %s", m.Name, err)
				continue
			}
			end, err := seasons.ParseMonthDay(m.End)
			if err != nil {
				log.Printf("ical: skipping %s: %s", m.Name, err)
				continue
			}
			first := time.Date(year, start.Month, start.Day, 0, 0, 0, 0, time.UTC)
			last := time.Date(year, end.Month, end.Day, 0, 0, 0, 0, time.UTC)
			if last.Before(first) {
				last = last.AddDate(1, 0, 0)
			}

			e := cal.AddEvent(fmt.Sprintf("%s@tamilseasons", slug.Make(m.Name)))
			e.SetDtStampTime(now.UTC())
			e.SetAllDayStartAt(first)
			// DTEND is exclusive for all-day events
			e.SetAllDayEndAt(last.AddDate(0, 0, 1))
			e.SetSummary(fmt.Sprintf("%s (%s) · %s season", titleCase(m.Name), m.Tamil, s.Name))
			e.SetDescription(fmt.Sprintf("%s. %s", m.Meaning, m.Associations))
			e.SetURL(fmt.Sprintf("%s/#%s", siteURL, slug.Make(s.Name)))
			e.AddRrule("FREQ=YEARLY")
		}
	}
	return cal
}

func (a *App) renderICS(w io.Writer) error {
	_, err := io.WriteString(w, NewCalendar(a.now()).Serialize())
	return err
}

// ICal returns the micro-seasons as an iCalendar feed at /seasons.ics
func (a *App) ICal(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/calendar; charset=utf-8")
	w.Header().Set("Content-Disposition", `inline; filename="seasons.ics"`)
	a.addExpireHeaders(w, time.Hour*24)
	if err := a.renderICS(w); err != nil {
		log.Print(err)
		http.Error(w, "Internal Server Error", 500)
	}
}
