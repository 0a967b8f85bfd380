package catalog

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/dhowden/tag"
)

// UnknownArtist is the display name used for files without an artist tag.
const UnknownArtist = "Unknown Artist"

var audioExtensions = map[string]bool{
	".mp3":  true,
	".flac": true,
	".ogg":  true,
	".oga":  true,
	".opus": true,
	".m4a":  true,
	".mp4":  true,
}

// IsAudioFile reports whether the path has a supported audio extension.
func IsAudioFile(path string) bool {
	return audioExtensions[strings.ToLower(filepath.Ext(path))]
}

// ScanDir builds a catalog from the tagged audio files under dir.
// Piece ids are derived from the path relative to dir, artist ids from the
// artist tag. Paths that slug to the same id get a numeric suffix in walk
// order. Files whose tags cannot be read are kept with their file name as
// title.
func ScanDir(dir string) (Catalog, error) {
	c := Catalog{Artists: Artists{}}
	ids := make(map[string]int)

	err := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !IsAudioFile(path) {
			return nil
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}

		p, artistName := readPiece(path, rel)
		p.ID = uniqueID(ids, p.ID)
		if _, ok := c.Artists[p.Artist]; !ok {
			c.Artists[p.Artist] = artistName
		}
		c.Pieces = append(c.Pieces, p)
		return nil
	})
	if err != nil {
		return Catalog{}, fmt.Errorf("scan %s: %w", dir, err)
	}

	return c, nil
}

func readPiece(path, rel string) (Piece, string) {
	base := strings.TrimSuffix(filepath.Base(rel), filepath.Ext(rel))
	noExt := strings.TrimSuffix(rel, filepath.Ext(rel))
	p := Piece{
		ID:    slugOr(noExt, filepath.ToSlash(noExt)),
		Title: base,
	}
	artist := UnknownArtist

	f, err := os.Open(path)
	if err == nil {
		defer f.Close()
		if m, err := tag.ReadFrom(f); err == nil {
			if m.Title() != "" {
				p.Title = m.Title()
			}
			switch {
			case m.Artist() != "":
				artist = m.Artist()
			case m.AlbumArtist() != "":
				artist = m.AlbumArtist()
			}
			if m.Picture() != nil {
				p.Image = "embedded:" + rel
			}
		}
	}

	p.Artist = slugOr(artist, artist)
	return p, artist
}

// slugOr returns Slug(s), or fallback when s has no letters or digits.
func slugOr(s, fallback string) string {
	if id := Slug(s); id != "" {
		return id
	}
	return fallback
}

func uniqueID(seen map[string]int, id string) string {
	seen[id]++
	n := seen[id]
	if n == 1 {
		return id
	}
	for {
		candidate := fmt.Sprintf("%s-%d", id, n)
		if seen[candidate] == 0 {
			seen[candidate] = 1
			return candidate
		}
		n++
	}
}

// Slug lowercases s and collapses every run of non-alphanumeric runes into
// a single dash.
func Slug(s string) string {
	var b strings.Builder
	b.Grow(len(s))
	dash := false
	for _, r := range strings.ToLower(s) {
		if unicode.IsLetter(r) || unicode.IsDigit(r) {
			b.WriteRune(r)
			dash = false
			continue
		}
		if !dash && b.Len() > 0 {
			b.WriteByte('-')
			dash = true
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
