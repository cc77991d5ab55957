// Package icon provides a multi-variant rendering engine for CLI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, or Unicode
// squares depending on user preference.
package icon

import (
	"github.com/anishere/SocialReels/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	squares string
}

// Get retrieves the visual representation for the receiver Def based on the global icons variant configuration.
func (d *iconDef) Get() string {
	switch viper.GetString(key.IconsVariant) {
	case emoji:
		return d.emoji
	case nerd:
		return d.nerd
	case plain:
		return d.plain
	case squares:
		return d.squares
	default:
		return d.plain
	}
}

// Icon identifies a symbol in the global registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Download
	Search
	Skip
)

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "❌", nerd: "", plain: "[x]", squares: "🟥"},
	Success:  {emoji: "✅", nerd: "", plain: "[ok]", squares: "🟩"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", squares: "🟨"},
	Download: {emoji: "⬇️", nerd: "", plain: "[v]", squares: "🟦"},
	Search:   {emoji: "🔍", nerd: "", plain: "[?]", squares: "🟪"},
	Skip:     {emoji: "⏭️", nerd: "", plain: "[-]", squares: "⬜"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
