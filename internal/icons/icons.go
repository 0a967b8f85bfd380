package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style.
type Icons struct {
	Play    string
	Stop    string
	Playing string // shown next to the piece being played
	Back    string
	Artist  string
	Image   string
}

var (
	nerdIcons = Icons{
		Play:    "\uf04b",  // nf-fa-play
		Stop:    "\uf04d",  // nf-fa-stop
		Playing: "\uf534",  // nf-fa-infinity
		Back:    "\uf053",  // nf-fa-chevron_left
		Artist:  "\uf007 ", // nf-fa-user
		Image:   "\uf03e ", // nf-fa-image
	}

	unicodeIcons = Icons{
		Play:    "▶",
		Stop:    "■",
		Playing: "∞",
		Back:    "‹",
		Artist:  "👤 ",
		Image:   "🖼 ",
	}

	noneIcons = Icons{
		Play:    ">",
		Stop:    "#",
		Playing: "~",
		Back:    "<",
		Artist:  "",
		Image:   "",
	}

	// current holds the active icon set
	current = noneIcons
)

// Init initializes the icons based on the style.
// Call this once at startup with the config value.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleUnicode:
		current = unicodeIcons
	case StyleNone:
		current = noneIcons
	default:
		current = noneIcons
	}
}

// Play returns the play button icon.
func Play() string {
	return current.Play
}

// Stop returns the stop button icon.
func Stop() string {
	return current.Stop
}

// Playing returns the indicator shown next to the playing piece.
func Playing() string {
	return current.Playing
}

// Back returns the "back to all" chevron.
func Back() string {
	return current.Back
}

// FormatArtist formats an artist name with the appropriate icon.
func FormatArtist(name string) string {
	if current == noneIcons {
		return name
	}
	return current.Artist + name
}

// FormatImage formats an image reference with the appropriate icon.
func FormatImage(ref string) string {
	if current == noneIcons {
		return "[" + ref + "]"
	}
	return current.Image + ref
}
