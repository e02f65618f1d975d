package page

import (
	"github.com/benbjohnson/clock"

	"github.com/slidekit/slidekit/pkg/carousel"
	"github.com/slidekit/slidekit/pkg/dom"
	"github.com/slidekit/slidekit/pkg/logging"
)

// BuildOptions carries host-supplied collaborators.
type BuildOptions struct {
	// Clock drives autoplay and resize debouncing. Nil means the system
	// clock.
	Clock clock.Clock

	// OnChange, when set, is called with the region id after any of its
	// repositions. Hosts use it to schedule a repaint. It must not call
	// back into the region's controller.
	OnChange func(regionID string)
}

// Region is one assembled carousel: its elements plus the controller
// driving them.
type Region struct {
	ID         string
	Config     RegionConfig
	Root       *dom.Element
	Track      *dom.Element
	Prev       *dom.Element
	Next       *dom.Element
	Indicators *dom.Element
	Controller *carousel.Controller
}

// Page is a built document with one controller per region.
type Page struct {
	Manifest *Manifest
	Doc      *dom.Document
	Regions  []*Region
}

// Build constructs the document tree described by the manifest and one
// carousel controller per region. Element ids follow the `<region>-track`,
// `<region>-prev`, `<region>-next`, `<region>-indicators` convention so the
// regions stay addressable by lookup, the way a host page would reach them.
func Build(doc *dom.Document, m *Manifest, opts BuildOptions) (*Page, error) {
	if err := m.Validate(); err != nil {
		return nil, err
	}

	log, _ := logging.NewLogger("page")
	globs := m.autoplayGlobs()

	p := &Page{Manifest: m, Doc: doc}
	for _, rc := range m.Regions {
		region := buildRegion(doc, rc)

		table := rc.Breakpoints
		if len(table) == 0 {
			table = m.Breakpoints
		}

		cfg := carousel.DefaultConfig()
		cfg.Track = doc.GetElementByID(rc.ID + "-track")
		cfg.VisibleCount = VisibleCountFunc(doc, table)
		cfg.Autoplay = autoplayFor(globs, rc.ID)
		cfg.Clock = opts.Clock
		if m.IntervalMS > 0 {
			cfg.Interval = m.Interval()
		}
		if rc.Controls {
			cfg.PrevControl = doc.GetElementByID(rc.ID + "-prev")
			cfg.NextControl = doc.GetElementByID(rc.ID + "-next")
		}
		if rc.Indicators {
			cfg.IndicatorContainer = doc.GetElementByID(rc.ID + "-indicators")
		}
		if opts.OnChange != nil {
			id := rc.ID
			cfg.OnChange = func() { opts.OnChange(id) }
		}

		region.Controller = carousel.New(doc, cfg)
		if region.Controller.Inert() {
			// One broken region must not block its siblings.
			log.Warnf("region %q assembled inert", rc.ID)
		}

		p.Regions = append(p.Regions, region)
	}

	log.Infof("built page %q: %d regions", m.Title, len(p.Regions))
	return p, nil
}

// buildRegion creates the region's element subtree and registers its ids.
func buildRegion(doc *dom.Document, rc RegionConfig) *Region {
	region := &Region{ID: rc.ID, Config: rc}

	region.Root = doc.CreateElement("section")
	doc.SetElementID(region.Root, rc.ID)
	doc.Root().AppendChild(region.Root)

	region.Track = doc.CreateElement("div")
	region.Track.AddClass("carousel-track")
	doc.SetElementID(region.Track, rc.ID+"-track")
	for _, slide := range rc.Slides {
		el := doc.CreateElement("div")
		el.AddClass("slide")
		el.SetAttribute("data-title", slide.Title)
		el.SetAttribute("data-body", slide.Body)
		region.Track.AppendChild(el)
	}
	region.Root.AppendChild(region.Track)

	if rc.Controls {
		region.Prev = doc.CreateElement("button")
		region.Prev.AddClass("carousel-control")
		doc.SetElementID(region.Prev, rc.ID+"-prev")
		region.Root.AppendChild(region.Prev)

		region.Next = doc.CreateElement("button")
		region.Next.AddClass("carousel-control")
		doc.SetElementID(region.Next, rc.ID+"-next")
		region.Root.AppendChild(region.Next)
	}

	if rc.Indicators {
		region.Indicators = doc.CreateElement("div")
		region.Indicators.AddClass("carousel-indicators")
		doc.SetElementID(region.Indicators, rc.ID+"-indicators")
		region.Root.AppendChild(region.Indicators)
	}

	return region
}

// Dispose tears down every region's controller.
func (p *Page) Dispose() {
	for _, region := range p.Regions {
		region.Controller.Dispose()
	}
}

// Region returns the region with the given id, or nil.
func (p *Page) Region(id string) *Region {
	for _, region := range p.Regions {
		if region.ID == id {
			return region
		}
	}
	return nil
}
