package main

import (
	"encoding/json"
	"net/http/httptest"
	"testing"
	"time"
)

func TestNowJSON(t *testing.T) {
	type testCase struct {
		now                 time.Time
		season, micro, next string
		starts              string
		dayOfYear           int
	}
	tests := []testCase{
		{time.Date(2026, time.October, 17, 9, 0, 0, 0, time.Local), "cool", "aippasi", "karthigai", "2026-11-16", 290},
		{time.Date(2025, time.December, 25, 9, 0, 0, 0, time.Local), "early winter", "margazhi", "thai", "2026-01-14", 359},
		{time.Date(2026, time.January, 5, 9, 0, 0, 0, time.Local), "early winter", "margazhi", "thai", "2026-01-14", 5},
	}
	for _, tc := range tests {
		t.Run(tc.now.Format("2006-01-02"), func(t *testing.T) {
			a := testApp(tc.now)
			w := httptest.NewRecorder()
			a.Router().ServeHTTP(w, httptest.NewRequest("GET", "/now.json", nil))
			if w.Code != 200 {
				t.Fatalf("status %d", w.Code)
			}
			var got Now
			if err := json.NewDecoder(w.Body).Decode(&got); err != nil {
				t.Fatal(err)
			}
			if got.Season == nil || got.Season.Name != tc.season {
				t.Errorf("season = %#v, want %s", got.Season, tc.season)
			}
			if got.MicroSeason == nil || got.MicroSeason.Name != tc.micro {
				t.Errorf("micro_season = %#v, want %s", got.MicroSeason, tc.micro)
			}
			if got.Next == nil || got.Next.Name != tc.next || got.Next.Starts != tc.starts {
				t.Errorf("next = %#v, want %s on %s", got.Next, tc.next, tc.starts)
			}
			if got.DayOfYear != tc.dayOfYear {
				t.Errorf("day_of_year = %d, want %d", got.DayOfYear, tc.dayOfYear)
			}
			if got.Date != tc.now.Format("2006-01-02") {
				t.Errorf("date = %q", got.Date)
			}
		})
	}
}
