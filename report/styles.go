// SPDX-License-Identifier: MIT

package report

import "github.com/charmbracelet/lipgloss"

// Color palette.
var (
	ColorPrimary = lipgloss.Color("#8B5CF6") // Violet
	ColorSuccess = lipgloss.Color("#10B981") // Emerald
	ColorMuted   = lipgloss.Color("#6B7280") // Gray
)

var (
	HeaderStyle = lipgloss.NewStyle().
			Foreground(ColorPrimary).
			Bold(true)

	LabelStyle = lipgloss.NewStyle().
			Foreground(ColorMuted)

	ValueStyle = lipgloss.NewStyle().
			Foreground(ColorSuccess)
)

// Option configures rendering.
type Option func(*options)

type options struct {
	header func(string) string
	label  func(string) string
	value  func(string) string
}

func plain(s string) string { return s }

func gatherOptions(opts ...Option) options {
	o := options{
		header: func(s string) string { return HeaderStyle.Render(s) },
		label:  func(s string) string { return LabelStyle.Render(s) },
		value:  func(s string) string { return ValueStyle.Render(s) },
	}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithPlain renders without any terminal styling.
func WithPlain() Option {
	return func(o *options) {
		o.header, o.label, o.value = plain, plain, plain
	}
}
