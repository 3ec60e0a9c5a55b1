package main

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"
)

func testApp(now time.Time) *App {
	a := NewApp(false)
	a.now = func() time.Time { return now }
	return a
}

func TestIndex(t *testing.T) {
	a := testApp(time.Date(2026, time.October, 17, 9, 0, 0, 0, time.Local))
	type testCase struct {
		name    string
		header  string
		value   string
		cookie  string
		layout  string
		missing string
	}
	tests := []testCase{
		{name: "default", layout: "Tamil seasons in tabular view", missing: "mobile view"},
		{name: "hint narrow", header: "Sec-CH-Viewport-Width", value: "390", layout: "Tamil seasons in mobile view", missing: "tabular view"},
		{name: "hint wide", header: "Sec-CH-Viewport-Width", value: "1280", layout: "Tamil seasons in tabular view", missing: "mobile view"},
		{name: "legacy hint", header: "Viewport-Width", value: "500", layout: "Tamil seasons in mobile view", missing: "tabular view"},
		{name: "cookie", cookie: "600", layout: "Tamil seasons in mobile view", missing: "tabular view"},
		{name: "bad hint", header: "Sec-CH-Viewport-Width", value: "wide", layout: "Tamil seasons in tabular view", missing: "mobile view"},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			r := httptest.NewRequest("GET", "/", nil)
			if tc.header != "" {
				r.Header.Set(tc.header, tc.value)
			}
			if tc.cookie != "" {
				r.AddCookie(&http.Cookie{Name: widthCookie, Value: tc.cookie})
			}
			w := httptest.NewRecorder()
			a.Router().ServeHTTP(w, r)
			if w.Code != 200 {
				t.Fatalf("status %d", w.Code)
			}
			body := w.Body.String()
			if !strings.Contains(body, tc.layout) {
				t.Errorf("body missing %q", tc.layout)
			}
			if strings.Contains(body, tc.missing) {
				t.Errorf("body unexpectedly contains %q", tc.missing)
			}
			for _, want := range []string{
				"Currently in",
				"(குளிர்)",
				`<span class="now">now</span>`,
				"aippasi",
				"290th day",
				repoURL,
			} {
				if !strings.Contains(body, want) {
					t.Errorf("body missing %q", want)
				}
			}
			if n := strings.Count(body, `<span class="now">`); n != 1 {
				t.Errorf("%d active micro-seasons rendered, want 1", n)
			}
			if got := w.Header().Get("Accept-CH"); !strings.Contains(got, "Sec-CH-Viewport-Width") {
				t.Errorf("Accept-CH = %q", got)
			}
		})
	}
}

func TestIndexNotFound(t *testing.T) {
	a := testApp(time.Now())
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest("GET", "/missing", nil))
	if w.Code != 404 {
		t.Errorf("status %d, want 404", w.Code)
	}
}

func TestStaticAndRobots(t *testing.T) {
	a := testApp(time.Now())
	for _, p := range []string{"/static/seasons.js", "/static/seasons.css", "/robots.txt", "/healthcheck"} {
		w := httptest.NewRecorder()
		a.Router().ServeHTTP(w, httptest.NewRequest("GET", p, nil))
		if w.Code != 200 {
			t.Errorf("%s status %d", p, w.Code)
		}
	}
}

func TestCSSColor(t *testing.T) {
	if got := cssColor("#388E3C"); got != "#388E3C" {
		t.Errorf("cssColor = %q", got)
	}
	if got := cssColor("red;background:url(x)"); got != "inherit" {
		t.Errorf("cssColor = %q, want inherit", got)
	}
}

func TestIndexHeaders(t *testing.T) {
	a := testApp(time.Date(2026, time.October, 17, 9, 0, 0, 0, time.Local))
	w := httptest.NewRecorder()
	a.Router().ServeHTTP(w, httptest.NewRequest("GET", "/", nil))
	if got := w.Header().Get("Cache-Control"); !strings.HasPrefix(got, "public, max-age=") {
		t.Errorf("Cache-Control = %q, want public, max-age=N", got)
	}
	body := w.Body.String()
	for _, want := range []string{
		`<link rel="canonical" href="https://tamilseasons.vercel.app/">`,
		`<meta property="og:url"`,
		`<meta property="og:site_name" content="tamil seasons | ganesha">`,
	} {
		if !strings.Contains(body, want) {
			t.Errorf("body missing %q", want)
		}
	}
}

func TestSeasonsScript(t *testing.T) {
	b, err := static.ReadFile("static/seasons.js")
	if err != nil {
		t.Fatal(err)
	}
	js := string(b)
	if strings.Contains(js, "max-age") || strings.Contains(js, "expires") {
		t.Error("viewport cookie must be a session cookie")
	}
	flip := strings.Index(js, "if (isNarrow === narrow)")
	cookie := strings.Index(js, "document.cookie")
	if flip == -1 || cookie < flip {
		t.Error("viewport cookie is written before checking for a layout change")
	}
	if !strings.Contains(js, `addEventListener("pageshow"`) || !strings.Contains(js, "event.persisted") {
		t.Error("resize listener is not restored when the page returns from the back/forward cache")
	}
}
