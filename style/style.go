// Package style renders strings with lipgloss.
package style

import (
	"github.com/charmbracelet/lipgloss"
	"github.com/kipdayo/kipdayo/color"
)

// New returns an empty style.
func New() lipgloss.Style {
	return lipgloss.NewStyle()
}

// Fg returns a renderer that applies the foreground color c.
func Fg(c lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(c).Render(s) }
}

var (
	Faint = func(s string) string { return New().Faint(true).Render(s) }
	Bold  = func(s string) string { return New().Bold(true).Render(s) }
)

// Tag renders s as a padded badge.
func Tag(fg, bg lipgloss.Color) func(string) string {
	return func(s string) string { return New().Foreground(fg).Background(bg).Padding(0, 1).Render(s) }
}

// Title renders a section heading.
var Title = Tag(color.New("230"), color.Pink)

// ErrorTitle renders a failure heading.
var ErrorTitle = Tag(color.New("230"), color.Red)
