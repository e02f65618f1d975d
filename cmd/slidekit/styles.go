package main

import "github.com/charmbracelet/lipgloss"

// Color Palette
// Single source of truth for the demo's colors.
var (
	slateBlue   = lipgloss.Color("#7C83FD") // primary accent
	softCyan    = lipgloss.Color("#96BAFF") // focused-region accent
	mintGreen   = lipgloss.Color("#A8E6CF") // active indicator
	mutedGray   = lipgloss.Color("#6B7280") // secondary text
	brightWhite = lipgloss.Color("#F9FAFB") // primary text
)

// Common Styles
var (
	titleStyle = lipgloss.NewStyle().
			Foreground(slateBlue).
			Bold(true)

	regionNameStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	focusedNameStyle = lipgloss.NewStyle().
				Foreground(softCyan).
				Bold(true)

	slideStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(mutedGray).
			Padding(0, 1).
			Width(24)

	focusedSlideStyle = lipgloss.NewStyle().
				Border(lipgloss.RoundedBorder()).
				BorderForeground(softCyan).
				Padding(0, 1).
				Width(24)

	slideTitleStyle = lipgloss.NewStyle().
			Foreground(brightWhite).
			Bold(true)

	slideBodyStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	activeDotStyle = lipgloss.NewStyle().
			Foreground(mintGreen)

	dotStyle = lipgloss.NewStyle().
			Foreground(mutedGray)

	statusBarStyle = lipgloss.NewStyle().
			Foreground(mutedGray).
			Padding(0, 1)
)
