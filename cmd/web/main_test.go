package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/charmbracelet/log"
	"github.com/tomz197/asteroid-avoidance/internal/config"
	"github.com/tomz197/asteroid-avoidance/internal/highscore"
)

func TestLandingPage(t *testing.T) {
	store := highscore.NewMemoryStore()
	if err := store.Save(context.Background(), 73); err != nil {
		t.Fatal(err)
	}
	settings := &config.Settings{
		SSH: config.SSHSettings{Port: "2222"},
		Web: config.WebSettings{SSHDisplayHost: "play.example.com"},
	}
	srv := httptest.NewServer(newHandler(settings, store, log.New(io.Discard)))
	defer srv.Close()

	resp, err := http.Get(srv.URL + "/")
	if err != nil {
		t.Fatal(err)
	}
	defer resp.Body.Close()
	body, _ := io.ReadAll(resp.Body)

	if resp.StatusCode != http.StatusOK {
		t.Fatalf("status = %d", resp.StatusCode)
	}
	for _, want := range []string{"HIGH SCORE: 73", "ssh -t play.example.com -p 2222"} {
		if !strings.Contains(string(body), want) {
			t.Errorf("page missing %q", want)
		}
	}

	resp, err = http.Get(srv.URL + "/nope")
	if err != nil {
		t.Fatal(err)
	}
	resp.Body.Close()
	if resp.StatusCode != http.StatusNotFound {
		t.Errorf("unknown path status = %d", resp.StatusCode)
	}
}
