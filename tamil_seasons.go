package main

import (
	"context"
	"embed"
	"flag"
	"fmt"
	"io"
	"io/fs"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"cloud.google.com/go/storage"
	"github.com/gorilla/handlers"
	"github.com/gorilla/mux"
	_ "github.com/joho/godotenv/autoload"

	"github.com/ganeshkumartk/tamilseasons/viewport"
)

//go:embed templates/*
var content embed.FS

//go:embed static/*
var static embed.FS

const (
	repoURL = "https://github.com/ganeshkumartk/tamilseasons"
	siteURL = "https://tamilseasons.vercel.app"
)

const robotsTXT = "# robots welcome\n# " + repoURL + "\n"

type App struct {
	devMode    bool
	breakpoint int
	now        func() time.Time

	staticHandler http.Handler
	templateFS    fs.FS
	staticFS      fs.FS
}

func NewApp(devMode bool) *App {
	a := &App{
		devMode:       devMode,
		breakpoint:    viewport.Breakpoint,
		now:           time.Now,
		staticHandler: http.FileServer(http.FS(static)),
		templateFS:    content,
		staticFS:      static,
	}
	if devMode {
		a.templateFS = os.DirFS(".")
		a.staticFS = os.DirFS(".")
		a.staticHandler = http.StripPrefix("/static/", http.FileServer(http.Dir("static")))
	}
	return a
}

// RobotsTXT renders /robots.txt
func (a *App) RobotsTXT(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("content-type", "text/plain")
	a.addExpireHeaders(w, time.Hour*24*7)
	io.WriteString(w, robotsTXT)
}

func (a *App) addExpireHeaders(w http.ResponseWriter, duration time.Duration) {
	if a.devMode {
		return
	}
	w.Header().Add("Cache-Control", fmt.Sprintf("public, max-age=%d", int(duration.Seconds())))
	w.Header().Add("Expires", time.Now().Add(duration).Format(http.TimeFormat))
}

// untilMidnight is how long the current render stays correct
func (a *App) untilMidnight() time.Duration {
	now := a.now()
	y, m, d := now.Date()
	next := time.Date(y, m, d+1, 0, 0, 0, 0, now.Location())
	ttl := next.Sub(now)
	if ttl > time.Hour {
		ttl = time.Hour
	}
	return ttl
}

func (a *App) Router() http.Handler {
	router := mux.NewRouter()
	router.Path("/").HandlerFunc(a.Index).Methods(http.MethodGet, http.MethodHead)
	router.Path("/now.json").HandlerFunc(a.NowJSON).Methods(http.MethodGet, http.MethodHead)
	router.Path("/seasons.ics").HandlerFunc(a.ICal).Methods(http.MethodGet, http.MethodHead)
	router.Path("/robots.txt").HandlerFunc(a.RobotsTXT).Methods(http.MethodGet)
	router.Path("/healthcheck").HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, "ok")
	})
	router.PathPrefix("/static/").Handler(a.staticHandler)
	return newViewportMiddleware(router, a.breakpoint)
}

func main() {
	logRequests := flag.Bool("log-requests", false, "log requests")
	devMode := flag.Bool("dev-mode", false, "development mode")
	textMode := flag.Bool("text", false, "print the calendar to stdout and exit")
	watch := flag.Bool("watch", false, "with -text, keep running and redraw when the terminal is resized")
	breakpoint := flag.Int("breakpoint", 0, "width below which the compact layout is used (default 768 px, or 100 columns with -text)")
	publishBucket := flag.String("publish-bucket", "", "render the site into this GCS bucket and exit")
	flag.Parse()

	app := NewApp(*devMode)
	if *breakpoint > 0 {
		app.breakpoint = *breakpoint
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	if *textMode {
		bp := textBreakpoint
		if *breakpoint > 0 {
			bp = *breakpoint
		}
		var err error
		if *watch {
			err = app.WatchText(ctx, os.Stdout, bp)
		} else {
			err = app.RenderText(os.Stdout, viewport.New(terminalWidth(os.Stdout), bp))
		}
		if err != nil {
			log.Fatal(err)
		}
		return
	}

	if *publishBucket != "" {
		client, err := storage.NewClient(ctx)
		if err != nil {
			log.Fatalf("Failed to create client: %v", err)
		}
		defer client.Close()
		if err := app.Publish(ctx, gcsTarget(client, *publishBucket)); err != nil {
			log.Fatal(err)
		}
		return
	}

	log.Print("starting server...")
	if *devMode {
		err := app.WatchTemplates(ctx, "templates", func(err error) {
			if err != nil {
				log.Printf("templates: %s", err)
				return
			}
			log.Print("templates ok")
		})
		if err != nil {
			log.Printf("not watching templates: %s", err)
		}
	}

	// Determine port for HTTP service.
	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	h := handlers.CompressHandler(app.Router())
	if *logRequests {
		h = handlers.LoggingHandler(os.Stdout, h)
	}

	srv := &http.Server{Addr: ":" + port, Handler: h}
	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		srv.Shutdown(shutdownCtx)
	}()

	// Start HTTP server.
	log.Printf("listening on port %s", port)
	if err := srv.ListenAndServe(); err != nil && err != http.ErrServerClosed {
		log.Fatal(err)
	}
}
