package main

import (
	"bytes"
	"context"
	"io"
	"strings"
	"testing"
	"time"
)

type memObject struct {
	bytes.Buffer
	contentType string
	ttl         time.Duration
	closed      bool
}

func (m *memObject) Close() error {
	m.closed = true
	return nil
}

func TestPublish(t *testing.T) {
	a := testApp(time.Date(2026, time.October, 17, 9, 0, 0, 0, time.Local))
	objects := make(map[string]*memObject)
	target := func(ctx context.Context, name, contentType string, ttl time.Duration) io.WriteCloser {
		o := &memObject{contentType: contentType, ttl: ttl}
		objects[name] = o
		return o
	}
	if err := a.Publish(context.Background(), target); err != nil {
		t.Fatal(err)
	}

	type expect struct {
		name, contentType, contains string
	}
	for _, e := range []expect{
		{"index.html", "text/html; charset=utf-8", "Tamil seasons in tabular view"},
		{"seasons.ics", "text/calendar; charset=utf-8", "BEGIN:VCALENDAR"},
		{"now.json", "application/json", `"aippasi"`},
		{"robots.txt", "text/plain", "robots welcome"},
		{"static/seasons.js", "javascript", "vw-reload"},
		{"static/seasons.css", "text/css", ".now"},
	} {
		o, ok := objects[e.name]
		if !ok {
			t.Errorf("%s not published", e.name)
			continue
		}
		if !o.closed {
			t.Errorf("%s not closed", e.name)
		}
		if !strings.Contains(o.contentType, e.contentType) {
			t.Errorf("%s content type %q, want %q", e.name, o.contentType, e.contentType)
		}
		if !strings.Contains(o.String(), e.contains) {
			t.Errorf("%s missing %q", e.name, e.contains)
		}
	}
}
