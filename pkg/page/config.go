package page

import (
	"fmt"
	"os"
	"time"

	"github.com/gobwas/glob"
	"gopkg.in/yaml.v3"
)

// Manifest describes a whole page of carousel regions.
type Manifest struct {
	// Title names the page; the demo host shows it as a heading.
	Title string `yaml:"title"`

	// Autoplay lists glob patterns over region ids; a region matching any
	// pattern self-advances.
	Autoplay []string `yaml:"autoplay"`

	// IntervalMS is the autoplay period in milliseconds. Zero means the
	// carousel default (5000).
	IntervalMS int `yaml:"interval_ms"`

	// Breakpoints is the page-wide visible-count table, ascending by
	// min_width. Regions may override it.
	Breakpoints []Breakpoint `yaml:"breakpoints"`

	// Regions are the carousels, in page order.
	Regions []RegionConfig `yaml:"regions"`
}

// RegionConfig describes one carousel region.
type RegionConfig struct {
	ID     string        `yaml:"id"`
	Slides []SlideConfig `yaml:"slides"`

	// Controls and Indicators opt into prev/next buttons and dots. The
	// manifest states them explicitly; DefaultManifest enables both.
	Controls   bool `yaml:"controls"`
	Indicators bool `yaml:"indicators"`

	// Breakpoints overrides the page-wide table for this region.
	Breakpoints []Breakpoint `yaml:"breakpoints"`
}

// SlideConfig is one slide's content.
type SlideConfig struct {
	Title string `yaml:"title"`
	Body  string `yaml:"body"`
}

// Interval returns the autoplay period as a duration, zero when unset.
func (m *Manifest) Interval() time.Duration {
	return time.Duration(m.IntervalMS) * time.Millisecond
}

// Load reads and validates a manifest from a yaml file.
func Load(path string) (*Manifest, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read manifest: %w", err)
	}
	return Parse(data)
}

// Parse decodes and validates a yaml manifest.
func Parse(data []byte) (*Manifest, error) {
	var m Manifest
	if err := yaml.Unmarshal(data, &m); err != nil {
		return nil, fmt.Errorf("failed to parse manifest: %w", err)
	}
	if err := m.Validate(); err != nil {
		return nil, err
	}
	return &m, nil
}

// Validate checks the manifest for mistakes a host cannot recover from:
// duplicate region ids, malformed autoplay patterns, unusable breakpoint
// tables.
func (m *Manifest) Validate() error {
	if m.IntervalMS < 0 {
		return fmt.Errorf("interval_ms must not be negative, got %d", m.IntervalMS)
	}

	for _, pattern := range m.Autoplay {
		if _, err := glob.Compile(pattern); err != nil {
			return fmt.Errorf("invalid autoplay pattern %q: %w", pattern, err)
		}
	}

	if err := validateBreakpoints(m.Breakpoints); err != nil {
		return fmt.Errorf("page breakpoints: %w", err)
	}

	seen := make(map[string]struct{}, len(m.Regions))
	for i, region := range m.Regions {
		if region.ID == "" {
			return fmt.Errorf("region %d has no id", i)
		}
		if _, dup := seen[region.ID]; dup {
			return fmt.Errorf("duplicate region id %q", region.ID)
		}
		seen[region.ID] = struct{}{}

		if err := validateBreakpoints(region.Breakpoints); err != nil {
			return fmt.Errorf("region %q breakpoints: %w", region.ID, err)
		}
	}

	return nil
}

// autoplayGlobs compiles the autoplay patterns. Validate has already
// checked them, so compilation errors are skipped.
func (m *Manifest) autoplayGlobs() []glob.Glob {
	globs := make([]glob.Glob, 0, len(m.Autoplay))
	for _, pattern := range m.Autoplay {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		globs = append(globs, g)
	}
	return globs
}

// autoplayFor reports whether the region id matches any autoplay pattern.
func autoplayFor(globs []glob.Glob, id string) bool {
	for _, g := range globs {
		if g.Match(id) {
			return true
		}
	}
	return false
}

// DefaultManifest returns the portfolio page the toolkit ships as its demo:
// hero banner, about section, testimonials, and three service galleries.
// Hero, about and testimonials autoplay; the galleries wait for input.
func DefaultManifest() *Manifest {
	gallery := func(id, name string) RegionConfig {
		return RegionConfig{
			ID:         id,
			Controls:   true,
			Indicators: true,
			Slides: []SlideConfig{
				{Title: name + " I", Body: "Case study"},
				{Title: name + " II", Body: "Case study"},
				{Title: name + " III", Body: "Case study"},
				{Title: name + " IV", Body: "Case study"},
			},
		}
	}

	return &Manifest{
		Title:      "Portfolio",
		Autoplay:   []string{"hero", "about", "testimonials"},
		IntervalMS: 5000,
		Breakpoints: []Breakpoint{
			{MinWidth: 0, Visible: 1},
			{MinWidth: 768, Visible: 2},
			{MinWidth: 992, Visible: 3},
		},
		Regions: []RegionConfig{
			{
				ID:         "hero",
				Controls:   true,
				Indicators: true,
				Breakpoints: []Breakpoint{
					{MinWidth: 0, Visible: 1},
				},
				Slides: []SlideConfig{
					{Title: "Welcome", Body: "Full-stack development"},
					{Title: "Design", Body: "Interfaces people enjoy"},
					{Title: "Delivery", Body: "Shipped, not shelved"},
				},
			},
			{
				ID:         "about",
				Indicators: true,
				Breakpoints: []Breakpoint{
					{MinWidth: 0, Visible: 1},
				},
				Slides: []SlideConfig{
					{Title: "Background", Body: "Ten years of building"},
					{Title: "Approach", Body: "Small pieces, well joined"},
					{Title: "Beyond work", Body: "Trails and darkrooms"},
				},
			},
			{
				ID:         "testimonials",
				Controls:   true,
				Indicators: true,
				Slides: []SlideConfig{
					{Title: "A. Chen", Body: "Delivered ahead of schedule."},
					{Title: "M. Okafor", Body: "Rare attention to detail."},
					{Title: "S. Ruiz", Body: "Our go-to engineer."},
					{Title: "J. Park", Body: "Clear communication throughout."},
					{Title: "L. Novak", Body: "Would hire again tomorrow."},
					{Title: "T. Adeyemi", Body: "Turned chaos into a product."},
				},
			},
			gallery("service-web", "Web"),
			gallery("service-mobile", "Mobile"),
			gallery("service-design", "Design"),
		},
	}
}
