// Package catalog holds the static catalog of playable pieces and the
// lookups the views read from it.
package catalog

// Piece is a single playable catalog entry.
type Piece struct {
	ID     string `koanf:"id"`
	Title  string `koanf:"title"`
	Artist string `koanf:"artist"` // artist id, resolved through Artists
	Image  string `koanf:"image"`  // optional image reference
}

// DefaultImage is the image reference shown for pieces without one.
const DefaultImage = "default"

// ImageOrDefault returns the piece image reference, or DefaultImage when unset.
func (p Piece) ImageOrDefault() string {
	if p.Image == "" {
		return DefaultImage
	}
	return p.Image
}

// Artists maps artist ids to display names.
type Artists map[string]string

// Name returns the display name for an artist id.
// Unknown ids are returned as-is so a row never renders blank.
func (a Artists) Name(id string) string {
	if name, ok := a[id]; ok && name != "" {
		return name
	}
	return id
}

// PlayTimes maps piece ids to elapsed playing time in seconds.
type PlayTimes map[string]float64

// Seconds returns the elapsed seconds for a piece and whether any were recorded.
func (p PlayTimes) Seconds(id string) (float64, bool) {
	s, ok := p[id]
	return s, ok
}

// Add increments the elapsed seconds for a piece.
func (p PlayTimes) Add(id string, seconds float64) {
	p[id] += seconds
}

// Catalog is the ordered list of pieces with its artist directory.
type Catalog struct {
	Pieces  []Piece
	Artists Artists
}

// ByID returns the piece with the given id.
func (c Catalog) ByID(id string) (Piece, bool) {
	for _, p := range c.Pieces {
		if p.ID == id {
			return p, true
		}
	}
	return Piece{}, false
}

// Len returns the number of pieces.
func (c Catalog) Len() int {
	return len(c.Pieces)
}
