// SPDX-License-Identifier: MPL-2.0

package cmd

import (
	"io"

	"github.com/avrovalidate/avrovalidate/internal/config"

	"github.com/charmbracelet/lipgloss"
)

// Color palette - shared hex colors for consistent theming across all CLI output.
const (
	// ColorPrimary is purple - used for titles and primary emphasis.
	ColorPrimary = lipgloss.Color("#7C3AED")

	// ColorMuted is gray - used for subtitles and de-emphasized content.
	ColorMuted = lipgloss.Color("#6B7280")

	// ColorError is red - used for fatal errors.
	ColorError = lipgloss.Color("#EF4444")

	// ColorWarning is amber - used for warnings such as missing paths.
	ColorWarning = lipgloss.Color("#F59E0B")

	// ColorVerbose is light gray - used for suggestions and error chains.
	ColorVerbose = lipgloss.Color("#9CA3AF")
)

var (
	// TitleStyle is for the command name in help output.
	TitleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(ColorPrimary)

	// SubtitleStyle is for secondary headers and descriptions.
	SubtitleStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)
)

// stderrStyles are bound to the renderer of the stream they are printed on,
// so colors are dropped when stderr is not a terminal.
type stderrStyles struct {
	Error   lipgloss.Style
	Warning lipgloss.Style
	Verbose lipgloss.Style
}

func newStderrStyles(w io.Writer, scheme config.ColorScheme) stderrStyles {
	r := lipgloss.NewRenderer(w)
	switch scheme {
	case config.ColorSchemeDark:
		r.SetHasDarkBackground(true)
	case config.ColorSchemeLight:
		r.SetHasDarkBackground(false)
	}

	return stderrStyles{
		Error: r.NewStyle().
			Bold(true).
			Foreground(ColorError),
		Warning: r.NewStyle().
			Foreground(ColorWarning),
		Verbose: r.NewStyle().
			Foreground(ColorVerbose),
	}
}
