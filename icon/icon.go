// Package icon provides a flexible multi-variant rendering engine for UI symbols and feedback indicators.
//
// Icons can be displayed as emoji, nerd-font glyphs, plain ASCII, kaomoji,
// or Unicode squares depending on user preference.
package icon

import (
	"github.com/codeit-cli/codeit/key"
	"github.com/spf13/viper"
)

// Visual Variant Constants - these define the supported aesthetic styles for icon rendering.
const (
	emoji   = "emoji"
	nerd    = "nerd"
	plain   = "plain"
	kaomoji = "kaomoji"
	squares = "squares"
)

// AvailableVariants returns a slice of all registered icon style identifiers.
func AvailableVariants() []string {
	return []string{emoji, nerd, plain, kaomoji, squares}
}

// iconDef encapsulates the visual representations of a single UI symbol across all supported variants.
type iconDef struct {
	emoji   string
	nerd    string
	plain   string
	kaomoji string
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
	case kaomoji:
		return d.kaomoji
	case squares:
		return d.squares
	default:
		return ""
	}
}

// Icon identifies a UI symbol in the global registry.
type Icon int

const (
	Fail Icon = iota
	Success
	Progress
	Mark
	Search
	Cart
	Folder
	Video
	Text
	Play
	Pause
	Volume
	Muted
	Link
)

var icons = map[Icon]*iconDef{
	Fail:     {emoji: "❌", nerd: "", plain: "[!]", kaomoji: "(╯°□°)╯", squares: "▣"},
	Success:  {emoji: "✅", nerd: "", plain: "[ok]", kaomoji: "(・∀・)", squares: "■"},
	Progress: {emoji: "⏳", nerd: "", plain: "...", kaomoji: "(・・;)", squares: "□"},
	Mark:     {emoji: "✔️", nerd: "", plain: "*", kaomoji: "(☆^O^☆)", squares: "▪"},
	Search:   {emoji: "🔍", nerd: "", plain: "?", kaomoji: "(・・?)", squares: "▫"},
	Cart:     {emoji: "🛒", nerd: "", plain: "[$]", kaomoji: "(っ・ω・)っ", squares: "▤"},
	Folder:   {emoji: "📁", nerd: "", plain: "[/]", kaomoji: "( ³³)", squares: "▥"},
	Video:    {emoji: "🎬", nerd: "", plain: "[>]", kaomoji: "(▀̿▀̿)", squares: "▦"},
	Text:     {emoji: "📄", nerd: "", plain: "[=]", kaomoji: "(¬‿¬)", squares: "▧"},
	Play:     {emoji: "▶️", nerd: "", plain: ">", kaomoji: "(ノ^o^)ノ", squares: "▶"},
	Pause:    {emoji: "⏸️", nerd: "", plain: "||", kaomoji: "(-_-)zzz", squares: "▮"},
	Volume:   {emoji: "🔊", nerd: "", plain: "(v)", kaomoji: "(^o^)/", squares: "▨"},
	Muted:    {emoji: "🔇", nerd: "", plain: "(m)", kaomoji: "(-x-)", squares: "▩"},
	Link:     {emoji: "🔗", nerd: "", plain: "->", kaomoji: "(o_o)", squares: "▭"},
}

// Get returns the rendered string for a specified Icon identifier from the global registry.
func Get(i Icon) string {
	return icons[i].Get()
}
