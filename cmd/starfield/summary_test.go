package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/litescript/ls-starfield/internal/astro"
	"github.com/litescript/ls-starfield/internal/catalog"
	"github.com/litescript/ls-starfield/internal/config"
	"github.com/litescript/ls-starfield/internal/logging"
	"github.com/litescript/ls-starfield/internal/session"
	"github.com/litescript/ls-starfield/internal/starview"
)

func summarySession() *session.Session {
	cat := catalog.NewMemory([]catalog.Star{
		{ID: 1, Position: astro.Vec3{X: 1}, Mag: 1, Name: "Alpha"},
		{ID: 2, Position: astro.Vec3{X: 2}, Mag: 2, Name: "Beta"},
		{ID: 3, Position: astro.Vec3{X: 3}, Mag: 3, Name: "Gamma"},
		{ID: 4, Position: astro.Vec3{X: 4}, Mag: 4},
	})
	return session.New(cat, session.DefaultConfig(), nil)
}

func TestWriteSummary(t *testing.T) {
	sess := summarySession()
	sess.Select(3)
	sess.Search("beta")

	var out bytes.Buffer
	writeSummary(&out, sess.Snapshot(), 0, false)
	got := out.String()

	for _, want := range []string{
		"Starfield (classic mode)",
		"Camera: animating #",
		"focusStar(3",
		"Total: 4 stars (1 highlighted, 1 selected)",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("summary missing %q\n%s", want, got)
		}
	}

	// Selected first, then highlighted, then the rest in render order
	lines := strings.Split(got, "\n")
	var ids []string
	for _, l := range lines {
		f := strings.Fields(l)
		if len(f) > 0 && (f[0] == "1" || f[0] == "2" || f[0] == "3" || f[0] == "4") {
			ids = append(ids, f[0])
		}
	}
	if strings.Join(ids, ",") != "3,2,1,4" {
		t.Errorf("row order = %v, want 3,2,1,4", ids)
	}
}

func TestWriteSummary_Limit(t *testing.T) {
	var out bytes.Buffer
	writeSummary(&out, summarySession().Snapshot(), 2, false)
	if strings.Contains(out.String(), "Gamma") {
		t.Error("limit not applied")
	}
}

func TestWriteSummary_Empty(t *testing.T) {
	var out bytes.Buffer
	writeSummary(&out, session.New(nil, session.DefaultConfig(), nil).Snapshot(), 0, false)
	if !strings.Contains(out.String(), "No stars in view") {
		t.Errorf("got %q", out.String())
	}
}

func TestSummaryJSON(t *testing.T) {
	sess := summarySession()
	sess.Search("a")

	data, err := json.Marshal(newSummaryJSON(sess.Snapshot()))
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}

	var decoded struct {
		Mode        string `json:"mode"`
		Highlighted []int  `json:"highlighted"`
		Camera      struct {
			State string `json:"state"`
			Kind  string `json:"kind"`
		} `json:"camera"`
		Stars []struct {
			ID   string `json:"id"`
			Tier string `json:"tier"`
		} `json:"stars"`
	}
	if err := json.Unmarshal(data, &decoded); err != nil {
		t.Fatalf("Unmarshal() error: %v", err)
	}

	if decoded.Mode != "classic" {
		t.Errorf("mode = %q", decoded.Mode)
	}
	if len(decoded.Highlighted) != 3 {
		t.Errorf("highlighted = %v, want 3 ids", decoded.Highlighted)
	}
	if decoded.Camera.Kind != "centerView" || decoded.Camera.State != "animating" {
		t.Errorf("camera = %+v, want animating centerView", decoded.Camera)
	}
	if len(decoded.Stars) != 4 || decoded.Stars[0].Tier != starview.TierHighlighted.String() {
		t.Errorf("stars = %+v", decoded.Stars)
	}
}

func TestTruncateStr(t *testing.T) {
	tests := []struct {
		in   string
		max  int
		want string
	}{
		{"Vega", 18, "Vega"},
		{"Proxima Centauri", 10, "Proxima .."},
		{"Sirius", 3, "Sir"},
	}
	for _, tt := range tests {
		if got := truncateStr(tt.in, tt.max); got != tt.want {
			t.Errorf("truncateStr(%q, %d) = %q, want %q", tt.in, tt.max, got, tt.want)
		}
	}
}

func TestLoadCatalog(t *testing.T) {
	cfg := config.Config{}
	store, err := loadCatalog(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("built-in catalog: %v", err)
	}
	if store.Len() != len(catalog.DefaultStars()) {
		t.Errorf("built-in Len() = %d, want %d", store.Len(), len(catalog.DefaultStars()))
	}

	dir := t.TempDir()
	path := filepath.Join(dir, "stars.toml")
	data, err := catalog.Marshal([]catalog.Star{{ID: 7, Position: astro.Vec3{X: 1}, Name: "Seven"}})
	if err != nil {
		t.Fatalf("Marshal() error: %v", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg.CatalogPath = path
	store, err = loadCatalog(cfg, logging.Discard())
	if err != nil {
		t.Fatalf("file catalog: %v", err)
	}
	if s, ok := store.StarByID(7); !ok || s.Name != "Seven" {
		t.Errorf("StarByID(7) = %v, %v", s, ok)
	}

	cfg.CatalogPath = filepath.Join(dir, "missing.toml")
	if _, err := loadCatalog(cfg, logging.Discard()); err == nil {
		t.Error("missing catalog file should fail")
	}
}
