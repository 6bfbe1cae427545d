// Package styles provides shared lipgloss styles for CLI output.
package styles

import (
	"github.com/charmbracelet/lipgloss"
)

// Tokyo Night color palette.
var (
	ColorBlue = lipgloss.Color("#7aa2f7")
	ColorGray = lipgloss.Color("#565f89")
)

// Banner ASCII art for the interactive session header.
const Banner = `
 ╔╦╗╔═╗╦  ╦  ╦ ╦
  ║ ╠═╣║  ║  ╚╦╝
  ╩ ╩ ╩╩═╝╩═╝ ╩`

// BannerStyle styles the ASCII art banner.
var BannerStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)

// HintStyle styles the secondary hint line under the banner.
var HintStyle = lipgloss.NewStyle().
	Foreground(ColorGray)

// HelpHeaderStyle styles section headers in the help text.
var HelpHeaderStyle = lipgloss.NewStyle().
	Foreground(ColorBlue).
	Bold(true)
