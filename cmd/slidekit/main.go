// Package main provides the slidekit terminal demo: a portfolio-style page
// of independent carousel regions driven by the slidekit controller,
// navigable with the keyboard, mouse drags, and autoplay.
package main

import (
	"flag"
	"fmt"
	"log"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/slidekit/slidekit/pkg/dom"
	"github.com/slidekit/slidekit/pkg/page"
)

const version = "0.1.0"

// cliConfig holds the command line options.
type cliConfig struct {
	manifestPath string
	showVersion  bool
}

func main() {
	cfg := parseFlags()

	if cfg.showVersion {
		fmt.Printf("slidekit v%s\n", version)
		return
	}

	if err := run(cfg); err != nil {
		log.Fatalf("Application error: %v", err)
	}
}

func parseFlags() *cliConfig {
	cfg := &cliConfig{}
	flag.StringVar(&cfg.manifestPath, "config", "", "Path to a yaml page manifest (default: built-in portfolio page)")
	flag.BoolVar(&cfg.showVersion, "version", false, "Show version information")
	flag.Parse()
	return cfg
}

func run(cfg *cliConfig) error {
	manifest := page.DefaultManifest()
	if cfg.manifestPath != "" {
		loaded, err := page.Load(cfg.manifestPath)
		if err != nil {
			return fmt.Errorf("loading manifest: %w", err)
		}
		manifest = loaded
	}

	// The real size arrives with the first window-size message; until then
	// a phone-ish viewport keeps one slide visible.
	doc := dom.NewDocument(640, 480)

	// The program pointer is filled in below; autoplay ticks that land
	// before Run starts are dropped, which only delays the first repaint.
	var prog *tea.Program
	built, err := page.Build(doc, manifest, page.BuildOptions{
		OnChange: func(id string) {
			if prog != nil {
				prog.Send(regionChangedMsg{id: id})
			}
		},
	})
	if err != nil {
		return fmt.Errorf("building page: %w", err)
	}
	defer built.Dispose()

	m := newModel(doc, built)
	prog = tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())

	if _, err := prog.Run(); err != nil {
		return fmt.Errorf("running program: %w", err)
	}
	return nil
}
