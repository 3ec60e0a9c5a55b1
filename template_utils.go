package main

import (
	"fmt"
	"html/template"
	"io/fs"
	"path/filepath"
	"regexp"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gosimple/slug"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var nonASCII = regexp.MustCompile(`[^a-z0-9]+`)

func cssClass(s string) string {
	return nonASCII.ReplaceAllString(strings.ToLower(s), "-")
}

var hexColor = regexp.MustCompile(`^#[0-9a-fA-F]{3}([0-9a-fA-F]{3})?$`)

// cssColor passes through a hex color for use in a style attribute
func cssColor(s string) template.CSS {
	if !hexColor.MatchString(s) {
		return template.CSS("inherit")
	}
	return template.CSS(s)
}

var titleCaser = cases.Title(language.English)

func titleCase(s string) string {
	return titleCaser.String(s)
}

// relTime describes then relative to now, i.e. "3 weeks from now"
func relTime(then, now time.Time) string {
	return humanize.RelTime(then, now, "ago", "from now")
}

func parseTemplate(fs fs.FS, n string) (*template.Template, error) {
	funcMap := template.FuncMap{
		"ToLower":  strings.ToLower,
		"Ordinal":  humanize.Ordinal,
		"RelTime":  relTime,
		"CSSClass": cssClass,
		"CSSColor": cssColor,
		"Slugify":  slug.Make,
		"Title":    titleCase,
	}
	t := template.New("empty").Funcs(funcMap)
	t, err := t.ParseFS(fs, filepath.Join("templates", n), "templates/base.html")
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", n, err)
	}
	return t, nil
}
