package main

import (
	"context"
	"fmt"
	"io"
	"log"
	"os"
	"strconv"
	"strings"
	"sync"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/dustin/go-humanize"
	"golang.org/x/term"

	"github.com/ganeshkumartk/tamilseasons/seasons"
	"github.com/ganeshkumartk/tamilseasons/viewport"
)

// textBreakpoint is the terminal width in columns below which the compact layout is used
const textBreakpoint = 100

// terminalWidth returns the width of f in columns, falling back to $COLUMNS, or 0 when unknown
func terminalWidth(f *os.File) int {
	if w, _, err := term.GetSize(int(f.Fd())); err == nil && w > 0 {
		return w
	}
	if w, err := strconv.Atoi(os.Getenv("COLUMNS")); err == nil && w > 0 {
		return w
	}
	return 0
}

type textStyles struct {
	heading, title, faint, italic, now, cell lipgloss.Style
	season                                   func(color string) lipgloss.Style
}

func newTextStyles(w io.Writer) textStyles {
	r := lipgloss.NewRenderer(w)
	return textStyles{
		heading: r.NewStyle().Faint(true),
		title:   r.NewStyle().Foreground(lipgloss.Color("#DC2626")),
		faint:   r.NewStyle().Foreground(lipgloss.Color("#6B7280")),
		italic:  r.NewStyle().Foreground(lipgloss.Color("#6B7280")).Italic(true),
		now:     r.NewStyle().Background(lipgloss.Color("#0D9488")).Foreground(lipgloss.Color("#FFFFFF")).Bold(true),
		cell:    r.NewStyle().Padding(0, 1),
		season: func(color string) lipgloss.Style {
			return r.NewStyle().Foreground(lipgloss.Color(color)).Bold(true)
		},
	}
}

// RenderText writes the calendar for the terminal: a compact list for narrow terminals and a table otherwise
func (a *App) RenderText(w io.Writer, vp viewport.Viewport) error {
	v := seasons.NewView(a.now())
	st := newTextStyles(w)
	var b strings.Builder

	fmt.Fprintf(&b, "%s\n%s\n", st.heading.Render("a guide to understanding"), st.title.Render("tamil seasons"))
	if s := v.Current; s != nil {
		fmt.Fprintf(&b, "Currently in %s season (%s)\n", st.season(s.Color).Render(s.Name), s.Tamil)
	}
	if v.CurrentMicro != nil && v.Next != nil {
		fmt.Fprintf(&b, "%s\n", st.faint.Render(fmt.Sprintf("today is the %s day of the year, in %s. %s begins %s.",
			humanize.Ordinal(v.DayOfYear), v.CurrentMicro.Name, v.Next.Name, relTime(v.NextStart, v.Date))))
	}
	b.WriteString("\n")

	if vp.Narrow {
		renderCompactText(&b, v, st)
	} else {
		renderTabularText(&b, v, st, vp.Width)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func nowLabel(m seasons.MicroSeasonView, st textStyles) string {
	if !m.Active {
		return ""
	}
	return " " + st.now.Render("now")
}

func renderCompactText(b *strings.Builder, v seasons.View, st textStyles) {
	for _, s := range v.Seasons {
		fmt.Fprintf(b, "%s %s\n", st.season(s.Color).Render("● "+s.Name), st.faint.Render(s.Tamil+" · "+s.Romanized))
		fmt.Fprintf(b, "  %s\n\n", st.italic.Render("("+s.Meaning+")"))
		for _, m := range s.Micro {
			fmt.Fprintf(b, "  │ %s %s  %s%s\n", m.Name, st.faint.Render("("+m.Tamil+")"), st.faint.Render(m.Range), nowLabel(m, st))
			fmt.Fprintf(b, "  │ %s\n", st.italic.Render(m.Meaning))
			fmt.Fprintf(b, "  │ %s\n\n", m.Associations)
		}
	}
}

func renderTabularText(b *strings.Builder, v seasons.View, st textStyles, width int) {
	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderColumn(false).
		StyleFunc(func(row, col int) lipgloss.Style { return st.cell }).
		Headers("season", "name", "associations", "date")
	for _, s := range v.Seasons {
		t.Row(st.season(s.Color).Render(s.Name)+"\n"+st.faint.Render(s.Tamil+" · "+s.Romanized)+"\n"+st.italic.Render(s.Meaning), "", "", "")
		for _, m := range s.Micro {
			t.Row("", m.Name+" "+st.faint.Render("("+m.Tamil+")")+"\n"+st.italic.Render(m.Meaning), m.Associations, m.Range+nowLabel(m, st))
		}
	}
	if width > 0 {
		t.Width(width)
	}
	b.WriteString(t.Render())
	b.WriteString("\n")
}

// WatchText draws the calendar and redraws it in the other layout when a
// terminal resize crosses breakpoint. It returns when ctx is done.
func (a *App) WatchText(ctx context.Context, out *os.File, breakpoint int) error {
	var mu sync.Mutex
	draw := func(vp viewport.Viewport) {
		mu.Lock()
		defer mu.Unlock()
		if _, err := io.WriteString(out, "\033[H\033[2J"); err != nil {
			log.Printf("clearing terminal: %s", err)
			return
		}
		if err := a.RenderText(out, vp); err != nil {
			log.Printf("rendering calendar: %s", err)
		}
	}

	c := viewport.NewClassifier(terminalWidth(out), breakpoint, viewport.ResizeDelay, draw)
	defer c.Close()
	draw(c.Viewport())

	resize := make(chan os.Signal, 1)
	notifyResize(resize)
	defer stopResize(resize)

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-resize:
			c.Resize(terminalWidth(out))
		}
	}
}
