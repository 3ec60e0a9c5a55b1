package main

import (
	"io"
	"log"
	"net/http"

	"github.com/ganeshkumartk/tamilseasons/seasons"
	"github.com/ganeshkumartk/tamilseasons/viewport"
)

type IndexPage struct {
	Page        string
	Title       string
	Description string
	RepoURL     string
	SiteURL     string
	SiteName    string
	Breakpoint  int

	Viewport viewport.Viewport
	View     seasons.View
}

func (a *App) renderIndex(w io.Writer, vp viewport.Viewport) error {
	t, err := parseTemplate(a.templateFS, "index.html")
	if err != nil {
		return err
	}
	body := IndexPage{
		Page:        "index",
		Title:       "tamil seasons",
		Description: "explore the traditional tamil calendar and its seasonal divisions",
		RepoURL:     repoURL,
		SiteURL:     siteURL,
		SiteName:    "tamil seasons | ganesha",
		Breakpoint:  a.breakpoint,
		Viewport:    vp,
		View:        seasons.NewView(a.now()),
	}
	return t.ExecuteTemplate(w, "index.html", body)
}

// Index renders / in the compact layout for narrow viewports and the tabular layout otherwise
func (a *App) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("content-type", "text/html; charset=utf-8")
	a.addExpireHeaders(w, a.untilMidnight())
	err := a.renderIndex(w, Viewport(r.Context()))
	if err != nil {
		log.Print(err)
		http.Error(w, "Internal Server Error", 500)
		return
	}
}
