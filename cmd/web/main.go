package main

import (
	"context"
	_ "embed"
	"fmt"
	"html/template"
	"net/http"
	"os"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroid-avoidance/internal/config"
	"github.com/tomz197/asteroid-avoidance/internal/highscore"
)

//go:embed index.html
var htmlPage string

var page = template.Must(template.New("index").Parse(htmlPage))

type pageData struct {
	SSHHost   string
	SSHPort   string
	HighScore int
}

func main() {
	settings, err := config.Load()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}
	logger, err := settings.Log.NewLogger(os.Stderr, "web")
	if err != nil {
		fmt.Fprintf(os.Stderr, "config error: %v\n", err)
		os.Exit(1)
	}

	store, err := highscore.Open(context.Background(), settings.Store)
	if err != nil {
		logger.Fatal("failed to open high score store", "backend", settings.Store.Backend, "err", err)
	}
	defer store.Close()

	http.Handle("/", newHandler(settings, store, logger))

	addr := settings.Web.Addr()
	logger.Info("Starting web server", "url", "http://"+addr)
	if err := http.ListenAndServe(addr, nil); err != nil {
		logger.Fatal("server error", "err", err)
	}
}

// newHandler serves the landing page with the current high score.
func newHandler(settings *config.Settings, store highscore.Store, logger *log.Logger) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/" {
			http.NotFound(w, r)
			return
		}

		score, err := store.Load(r.Context())
		if err != nil {
			logger.Warn("failed to load high score", "err", err)
		}

		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		data := pageData{
			SSHHost:   settings.Web.SSHDisplayHost,
			SSHPort:   settings.SSH.Port,
			HighScore: score,
		}
		if err := page.Execute(w, data); err != nil {
			logger.Error("failed to render page", "err", err)
		}
	})
}
