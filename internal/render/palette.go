package render

// Mode selects one of the two color schemes.
type Mode string

const (
	Dark  Mode = "dark"
	Light Mode = "light"
)

// Palette maps semantic color names to hex values. The two instances are
// immutable constants of the design; the class names in the emitted style
// block are the lower-cased field names.
type Palette struct {
	Background string
	Text       string
	Gray       string
	Magenta    string
	Green      string
	Red        string
	Orange     string
	Yellow     string
}

var darkPalette = Palette{
	Background: "#0d1117",
	Text:       "#39c5cf",
	Gray:       "#8b949e",
	Magenta:    "#e879f9",
	Green:      "#a3e635",
	Red:        "#f87171",
	Orange:     "#fb923c",
	Yellow:     "#fbbf24",
}

var lightPalette = Palette{
	Background: "#f6f8fa",
	Text:       "#0969da",
	Gray:       "#57606a",
	Magenta:    "#c026d3",
	Green:      "#65a30d",
	Red:        "#dc2626",
	Orange:     "#ea580c",
	Yellow:     "#d97706",
}

func paletteFor(mode Mode) Palette {
	if mode == Light {
		return lightPalette
	}
	return darkPalette
}
