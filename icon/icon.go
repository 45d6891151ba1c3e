// Package icon renders status symbols in the variant chosen by icons.variant.
package icon

import (
	"github.com/kipdayo/kipdayo/key"
	"github.com/spf13/viper"
)

const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants lists the accepted icons.variant values.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

type variants struct {
	emoji, nerd, plain, kaomoji, squares string
}

func (v variants) get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return v.emoji
	case nerd:
		return v.nerd
	case plain:
		return v.plain
	case kaomoji:
		return v.kaomoji
	case squares:
		return v.squares
	default:
		return ""
	}
}

// Icon identifies a symbol.
type Icon int

const (
	Success Icon = iota
	Fail
	Link
	Lock
	Question
	Server
)

var icons = map[Icon]variants{
	Success:  {emoji: "✅", nerd: "", plain: "ok", kaomoji: "(^_^)", squares: "🟩"},
	Fail:     {emoji: "❌", nerd: "", plain: "x", kaomoji: "(x_x)", squares: "🟥"},
	Link:     {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(o_o)", squares: "🟦"},
	Lock:     {emoji: "🔒", nerd: "", plain: "*", kaomoji: "(-_-)", squares: "⬛"},
	Question: {emoji: "❓", nerd: "", plain: "?", kaomoji: "(?_?)", squares: "🟨"},
	Server:   {emoji: "📡", nerd: "", plain: "#", kaomoji: "(o.o)", squares: "🟪"},
}

// Get returns i in the configured variant, or "" for an unknown variant.
func Get(i Icon) string {
	return icons[i].get()
}
