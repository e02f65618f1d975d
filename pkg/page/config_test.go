package page

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"
)

const sampleManifest = `
title: Portfolio
autoplay:
  - hero
  - service-*
interval_ms: 4000
breakpoints:
  - min_width: 0
    visible: 1
  - min_width: 992
    visible: 3
regions:
  - id: hero
    controls: true
    indicators: true
    slides:
      - title: One
        body: First
      - title: Two
        body: Second
  - id: service-web
    slides:
      - title: A
      - title: B
`

func TestParse(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if m.Title != "Portfolio" {
		t.Errorf("Title = %q, want Portfolio", m.Title)
	}
	if m.Interval() != 4*time.Second {
		t.Errorf("Interval = %v, want 4s", m.Interval())
	}
	if len(m.Regions) != 2 {
		t.Fatalf("regions = %d, want 2", len(m.Regions))
	}
	if !m.Regions[0].Controls || !m.Regions[0].Indicators {
		t.Error("hero must have controls and indicators enabled")
	}
	if m.Regions[1].Controls {
		t.Error("service-web must not have controls enabled")
	}
	if len(m.Regions[0].Slides) != 2 || m.Regions[0].Slides[1].Body != "Second" {
		t.Errorf("unexpected hero slides: %+v", m.Regions[0].Slides)
	}
}

func TestParseRejectsBadYAML(t *testing.T) {
	if _, err := Parse([]byte("regions: {not a list}")); err == nil {
		t.Fatal("expected a parse error")
	}
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "page.yaml")
	if err := os.WriteFile(path, []byte(sampleManifest), 0600); err != nil {
		t.Fatalf("setup: %v", err)
	}

	m, err := Load(path)
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if len(m.Regions) != 2 {
		t.Errorf("regions = %d, want 2", len(m.Regions))
	}

	if _, err := Load(filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("expected an error for a missing file")
	}
}

func TestValidate(t *testing.T) {
	valid := func() *Manifest {
		m, err := Parse([]byte(sampleManifest))
		if err != nil {
			t.Fatalf("sample manifest invalid: %v", err)
		}
		return m
	}

	cases := []struct {
		name    string
		mutate  func(*Manifest)
		wantErr string
	}{
		{
			name:    "duplicate region id",
			mutate:  func(m *Manifest) { m.Regions[1].ID = "hero" },
			wantErr: "duplicate region id",
		},
		{
			name:    "empty region id",
			mutate:  func(m *Manifest) { m.Regions[0].ID = "" },
			wantErr: "has no id",
		},
		{
			name:    "negative interval",
			mutate:  func(m *Manifest) { m.IntervalMS = -1 },
			wantErr: "interval_ms",
		},
		{
			name:    "bad autoplay pattern",
			mutate:  func(m *Manifest) { m.Autoplay = []string{"["} },
			wantErr: "autoplay pattern",
		},
		{
			name:    "zero visible count",
			mutate:  func(m *Manifest) { m.Breakpoints[0].Visible = 0 },
			wantErr: "visible",
		},
		{
			name:    "unordered breakpoints",
			mutate:  func(m *Manifest) { m.Breakpoints[1].MinWidth = 0 },
			wantErr: "ascending",
		},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			m := valid()
			tc.mutate(m)
			err := m.Validate()
			if err == nil {
				t.Fatal("expected a validation error")
			}
			if !strings.Contains(err.Error(), tc.wantErr) {
				t.Errorf("error %q does not mention %q", err, tc.wantErr)
			}
		})
	}
}

func TestAutoplaySelection(t *testing.T) {
	m, err := Parse([]byte(sampleManifest))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}
	globs := m.autoplayGlobs()

	cases := map[string]bool{
		"hero":           true,
		"service-web":    true,
		"service-mobile": true,
		"testimonials":   false,
		"heroics":        false,
	}
	for id, want := range cases {
		if got := autoplayFor(globs, id); got != want {
			t.Errorf("autoplayFor(%q) = %v, want %v", id, got, want)
		}
	}
}

func TestDefaultManifestIsValid(t *testing.T) {
	m := DefaultManifest()
	if err := m.Validate(); err != nil {
		t.Fatalf("DefaultManifest does not validate: %v", err)
	}
	if len(m.Regions) != 6 {
		t.Errorf("default regions = %d, want 6", len(m.Regions))
	}
}
