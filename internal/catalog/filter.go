package catalog

// Criterion narrows the catalog to a piece id or an artist id.
// The zero value means no filter.
type Criterion string

// All is the absent criterion: every piece matches.
const All Criterion = ""

// IsSet reports whether the criterion narrows the catalog.
func (c Criterion) IsSet() bool {
	return c != All
}

// Matches reports whether a piece passes the criterion.
func (c Criterion) Matches(p Piece) bool {
	if !c.IsSet() {
		return true
	}
	return p.ID == string(c) || p.Artist == string(c)
}

// Filter returns the pieces matching the criterion, in catalog order.
// The result never aliases the input slice. An empty result means nothing
// matched; it is not an error.
func Filter(pieces []Piece, c Criterion) []Piece {
	result := make([]Piece, 0, len(pieces))
	for _, p := range pieces {
		if c.Matches(p) {
			result = append(result, p)
		}
	}
	return result
}
