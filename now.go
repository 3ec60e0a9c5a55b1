package main

import (
	"encoding/json"
	"io"
	"log"
	"net/http"

	"github.com/ganeshkumartk/tamilseasons/seasons"
)

type NowSeason struct {
	Name      string `json:"name"`
	Tamil     string `json:"tamil"`
	Romanized string `json:"romanized"`
	Meaning   string `json:"meaning"`
	Color     string `json:"color"`
}

type NowMicroSeason struct {
	Name         string `json:"name"`
	Tamil        string `json:"tamil"`
	Meaning      string `json:"meaning"`
	Associations string `json:"associations,omitempty"`
	Start        string `json:"start"`
	End          string `json:"end"`
	Range        string `json:"range"`
	Starts       string `json:"starts,omitempty"` // next start date, YYYY-MM-DD
}

// Now is the /now.json payload
type Now struct {
	Date        string          `json:"date"`
	DayOfYear   int             `json:"day_of_year"`
	Season      *NowSeason      `json:"season,omitempty"`
	MicroSeason *NowMicroSeason `json:"micro_season,omitempty"`
	Next        *NowMicroSeason `json:"next,omitempty"`
}

func newNowMicroSeason(m seasons.MicroSeasonView) *NowMicroSeason {
	return &NowMicroSeason{
		Name:         m.Name,
		Tamil:        m.Tamil,
		Meaning:      m.Meaning,
		Associations: m.Associations,
		Start:        m.Start,
		End:          m.End,
		Range:        m.Range,
	}
}

func NewNow(v seasons.View) Now {
	n := Now{
		Date:      v.Date.Format("2006-01-02"),
		DayOfYear: v.DayOfYear,
	}
	if s := v.Current; s != nil {
		n.Season = &NowSeason{
			Name:      s.Name,
			Tamil:     s.Tamil,
			Romanized: s.Romanized,
			Meaning:   s.Meaning,
			Color:     s.Color,
		}
	}
	if v.CurrentMicro != nil {
		n.MicroSeason = newNowMicroSeason(*v.CurrentMicro)
	}
	if v.Next != nil {
		n.Next = newNowMicroSeason(*v.Next)
		n.Next.Associations = ""
		if !v.NextStart.IsZero() {
			n.Next.Starts = v.NextStart.Format("2006-01-02")
		}
	}
	return n
}

func (a *App) renderNow(w io.Writer) error {
	return json.NewEncoder(w).Encode(NewNow(seasons.NewView(a.now())))
}

// NowJSON returns the season active today at /now.json
func (a *App) NowJSON(w http.ResponseWriter, r *http.Request) {
	a.addExpireHeaders(w, a.untilMidnight())
	w.Header().Set("Content-Type", "application/json")
	if err := a.renderNow(w); err != nil {
		log.Print(err)
		http.Error(w, "Internal Server Error", 500)
	}
}
