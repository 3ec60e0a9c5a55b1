package main

import (
	"context"
	"net/http"
	"strconv"

	"github.com/ganeshkumartk/tamilseasons/viewport"
)

// widthHints are the client hint headers carrying the layout viewport width in css pixels
var widthHints = []string{"Sec-CH-Viewport-Width", "Viewport-Width"}

// widthCookie is a session cookie set by static/seasons.js when a resize crosses the breakpoint
const widthCookie = "vw"

type viewportMiddleware struct {
	Breakpoint int
	Handler    http.Handler
}

func newViewportMiddleware(h http.Handler, breakpoint int) *viewportMiddleware {
	return &viewportMiddleware{
		Breakpoint: breakpoint,
		Handler:    h,
	}
}

type contextKey string

const viewportKey contextKey = "viewport"

// Viewport returns the classification of the requesting browser; wide when unknown
func Viewport(ctx context.Context) viewport.Viewport {
	v, _ := ctx.Value(viewportKey).(viewport.Viewport)
	return v
}

func requestWidth(r *http.Request) int {
	for _, h := range widthHints {
		if w, err := strconv.Atoi(r.Header.Get(h)); err == nil && w > 0 {
			return w
		}
	}
	if c, err := r.Cookie(widthCookie); err == nil {
		if w, err := strconv.Atoi(c.Value); err == nil && w > 0 {
			return w
		}
	}
	return 0
}

func (m *viewportMiddleware) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Accept-CH", "Sec-CH-Viewport-Width, Viewport-Width")
	w.Header().Add("Vary", "Sec-CH-Viewport-Width")
	w.Header().Add("Vary", "Viewport-Width")
	w.Header().Add("Vary", "Cookie")
	vp := viewport.New(requestWidth(r), m.Breakpoint)
	ctx := context.WithValue(r.Context(), viewportKey, vp)
	m.Handler.ServeHTTP(w, r.WithContext(ctx))
}
