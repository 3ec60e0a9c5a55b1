package main

import (
	"context"
	"log"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/ganeshkumartk/tamilseasons/debounce"
)

const checkDelay = 100 * time.Millisecond

// WatchTemplates checks that the page templates still parse after a burst of
// changes in dir. Requests parse templates themselves; onCheck only receives
// the check result. Watching stops when ctx is done.
func (a *App) WatchTemplates(ctx context.Context, dir string, onCheck func(error)) error {
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := w.Add(dir); err != nil {
		w.Close()
		return err
	}

	d := debounce.New(checkDelay)
	go func() {
		defer w.Close()
		defer d.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case event, ok := <-w.Events:
				if !ok {
					return
				}
				if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 {
					continue
				}
				d.Trigger(func() {
					_, err := parseTemplate(a.templateFS, "index.html")
					onCheck(err)
				})
			case err, ok := <-w.Errors:
				if !ok {
					return
				}
				log.Printf("watching %s: %s", dir, err)
			}
		}
	}()
	return nil
}
