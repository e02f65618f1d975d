package main

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/slidekit/slidekit/pkg/page"
)

// View renders the whole page: a heading, each region's visible slides and
// indicator dots, and the help footer.
func (m *model) View() string {
	if !m.ready {
		return "loading..."
	}

	var b strings.Builder
	b.WriteString(titleStyle.Render(m.page.Manifest.Title))
	b.WriteString("\n\n")

	for i, region := range m.page.Regions {
		b.WriteString(m.renderRegion(region, i == m.focus))
		b.WriteString("\n")
	}

	b.WriteString(m.statusBar())
	b.WriteString("\n")
	b.WriteString(m.help.View(m.keys))
	return b.String()
}

func (m *model) renderRegion(region *page.Region, focused bool) string {
	nameStyle := regionNameStyle
	boxStyle := slideStyle
	if focused {
		nameStyle = focusedNameStyle
		boxStyle = focusedSlideStyle
	}

	ctrl := region.Controller
	index := ctrl.Index()
	visible := ctrl.VisibleNow()
	slides := region.Track.Children()

	var boxes []string
	for i := index; i < index+visible && i < len(slides); i++ {
		title, _ := slides[i].Attribute("data-title")
		body, _ := slides[i].Attribute("data-body")
		content := slideTitleStyle.Render(title) + "\n" + slideBodyStyle.Render(body)
		boxes = append(boxes, boxStyle.Render(content))
	}
	row := lipgloss.JoinHorizontal(lipgloss.Top, boxes...)
	if len(boxes) == 0 {
		row = slideBodyStyle.Render("(no slides)")
	}

	name := nameStyle.Render(fmt.Sprintf("%s  %d/%d", region.ID, index+1, max(ctrl.Total(), 1)))

	out := name + "\n" + row
	if dots := m.renderIndicators(region); dots != "" {
		out += "\n" + dots
	}
	return out + "\n"
}

// renderIndicators draws the dot row from the indicator elements the
// controller maintains; the active dot is elongated.
func (m *model) renderIndicators(region *page.Region) string {
	if region.Indicators == nil {
		return ""
	}

	var parts []string
	for _, dot := range region.Indicators.Children() {
		if dot.HasClass("active") {
			parts = append(parts, activeDotStyle.Render("━━"))
		} else {
			parts = append(parts, dotStyle.Render("•"))
		}
	}
	return strings.Join(parts, " ")
}

func (m *model) statusBar() string {
	region := m.focused()
	if region == nil {
		return ""
	}

	auto := "autoplay off"
	if region.Controller.TimerActive() {
		auto = "autoplay on"
	}
	w, _ := m.doc.Viewport()
	return statusBarStyle.Render(fmt.Sprintf("%s · %s · viewport %dpx", region.ID, auto, w))
}
