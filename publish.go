package main

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"io/fs"
	"log"
	"mime"
	"path"
	"time"

	"cloud.google.com/go/storage"

	"github.com/ganeshkumartk/tamilseasons/viewport"
)

// PublishTarget opens a writer for a published object
type PublishTarget func(ctx context.Context, name, contentType string, ttl time.Duration) io.WriteCloser

// gcsTarget writes objects to gs://bucket/
func gcsTarget(client *storage.Client, bucket string) PublishTarget {
	return func(ctx context.Context, name, contentType string, ttl time.Duration) io.WriteCloser {
		w := client.Bucket(bucket).Object(name).NewWriter(ctx)
		w.ContentType = contentType
		w.CacheControl = fmt.Sprintf("public, max-age=%d", int(ttl.Seconds()))
		log.Printf("put gs://%s/%s", bucket, name)
		return w
	}
}

type publishedFile struct {
	Name        string
	ContentType string
	TTL         time.Duration
	Render      func(io.Writer) error
}

func (a *App) publishedFiles() ([]publishedFile, error) {
	files := []publishedFile{
		{"index.html", "text/html; charset=utf-8", time.Hour, func(w io.Writer) error {
			return a.renderIndex(w, viewport.Viewport{})
		}},
		{"seasons.ics", "text/calendar; charset=utf-8", time.Hour * 24, a.renderICS},
		{"now.json", "application/json", time.Hour, a.renderNow},
		{"robots.txt", "text/plain", time.Hour * 24 * 7, func(w io.Writer) error {
			_, err := io.WriteString(w, robotsTXT)
			return err
		}},
	}
	err := fs.WalkDir(a.staticFS, "static", func(p string, d fs.DirEntry, err error) error {
		if err != nil || d.IsDir() {
			return err
		}
		contentType := mime.TypeByExtension(path.Ext(p))
		if contentType == "" {
			contentType = "application/octet-stream"
		}
		files = append(files, publishedFile{p, contentType, time.Hour * 24, func(w io.Writer) error {
			body, err := fs.ReadFile(a.staticFS, p)
			if err != nil {
				return err
			}
			_, err = w.Write(body)
			return err
		}})
		return nil
	})
	return files, err
}

// Publish renders the site as static files, i.e. for a daily scheduled job.
// The page is rendered in the tabular layout.
func (a *App) Publish(ctx context.Context, target PublishTarget) error {
	files, err := a.publishedFiles()
	if err != nil {
		return err
	}
	for _, f := range files {
		// a failed render leaves the published copy untouched
		var buf bytes.Buffer
		if err := f.Render(&buf); err != nil {
			return fmt.Errorf("rendering %s: %w", f.Name, err)
		}
		w := target(ctx, f.Name, f.ContentType, f.TTL)
		if _, err := buf.WriteTo(w); err != nil {
			w.Close()
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
		if err := w.Close(); err != nil {
			return fmt.Errorf("writing %s: %w", f.Name, err)
		}
	}
	return nil
}
