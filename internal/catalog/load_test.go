package catalog

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const sampleCatalog = `
[artists]
alex-bainter = "Alex Bainter"
tangent = "Tangent"

[[pieces]]
id = "drones"
title = "Drones"
artist = "alex-bainter"
image = "drones.png"

[[pieces]]
id = "lemniscate"
title = "Lemniscate"
artist = "tangent"
`

func writeFile(t *testing.T, dir, name, content string) string {
	t.Helper()
	path := filepath.Join(dir, name)
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestLoadFile(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.toml", sampleCatalog)

	c, err := LoadFile(path)
	require.NoError(t, err)

	require.Len(t, c.Pieces, 2)
	assert.Equal(t, Piece{ID: "drones", Title: "Drones", Artist: "alex-bainter", Image: "drones.png"}, c.Pieces[0])
	assert.Equal(t, "lemniscate", c.Pieces[1].ID)
	assert.Empty(t, c.Pieces[1].Image)
	assert.Equal(t, "Alex Bainter", c.Artists.Name("alex-bainter"))
}

func TestLoadFile_DuplicateID(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.toml", `
[[pieces]]
id = "a"
title = "A"

[[pieces]]
id = "a"
title = "A again"
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "duplicate piece id")
}

func TestLoadFile_MissingID(t *testing.T) {
	path := writeFile(t, t.TempDir(), "catalog.toml", `
[[pieces]]
title = "No id"
`)

	_, err := LoadFile(path)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "has no id")
}

func TestLoadFile_Missing(t *testing.T) {
	_, err := LoadFile(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
}

func TestLoad_NoSource(t *testing.T) {
	_, err := Load("", "")
	require.ErrorIs(t, err, ErrNoSource)
}

func TestLoad_MergesScannedPieces(t *testing.T) {
	dir := t.TempDir()
	path := writeFile(t, dir, "catalog.toml", sampleCatalog)
	music := filepath.Join(dir, "music")
	// Untagged files still become pieces named after the file.
	writeFile(t, music, "Drones.mp3", "not really audio")
	writeFile(t, music, "Night Swim.flac", "not really audio")
	writeFile(t, music, "notes.txt", "ignored")

	c, err := Load(path, music)
	require.NoError(t, err)

	assert.Equal(t, []string{"drones", "lemniscate", "night-swim"}, ids(c.Pieces))
	assert.Equal(t, "Night Swim", c.Pieces[2].Title)
	assert.Equal(t, "unknown-artist", c.Pieces[2].Artist)
	assert.Equal(t, UnknownArtist, c.Artists.Name("unknown-artist"))
	assert.Equal(t, "Alex Bainter", c.Artists.Name("alex-bainter"))
}

func TestScanDir_IDsAreNonEmptyAndUnique(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "A B.mp3", "not really audio")
	writeFile(t, dir, "a-b.mp3", "not really audio")
	writeFile(t, dir, "★.mp3", "not really audio")

	c, err := ScanDir(dir)
	require.NoError(t, err)

	assert.Equal(t, []string{"a-b", "a-b-2", "★"}, ids(c.Pieces))
	assert.Equal(t, "A B", c.Pieces[0].Title)
	assert.Equal(t, "a-b", c.Pieces[1].Title)
}

func TestLoad_ScannedPiecesAreSelectable(t *testing.T) {
	dir := t.TempDir()
	writeFile(t, dir, "★.mp3", "not really audio")

	c, err := Load("", dir)
	require.NoError(t, err)
	require.Len(t, c.Pieces, 1)

	assert.NotEmpty(t, c.Pieces[0].ID)
	assert.True(t, Criterion(c.Pieces[0].ID).IsSet())
	p, ok := c.ByID("★")
	assert.True(t, ok)
	assert.Equal(t, "★", p.Title)
}

func TestUniqueID(t *testing.T) {
	seen := map[string]int{}
	assert.Equal(t, "x", uniqueID(seen, "x"))
	assert.Equal(t, "x-2", uniqueID(seen, "x"))
	assert.Equal(t, "x-2-2", uniqueID(seen, "x-2"))
	assert.Equal(t, "x-3", uniqueID(seen, "x"))
}

func TestScanDir_Missing(t *testing.T) {
	_, err := ScanDir(filepath.Join(t.TempDir(), "nope"))
	require.Error(t, err)
}

func TestSlug(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Alex Bainter", "alex-bainter"},
		{"  leading and trailing  ", "leading-and-trailing"},
		{"a/b/c.mp3", "a-b-c-mp3"},
		{"Sigur Rós", "sigur-rós"},
		{"---", ""},
		{"", ""},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.want, Slug(tt.input))
		})
	}
}

func TestIsAudioFile(t *testing.T) {
	assert.True(t, IsAudioFile("/music/a.MP3"))
	assert.True(t, IsAudioFile("b.opus"))
	assert.False(t, IsAudioFile("cover.jpg"))
	assert.False(t, IsAudioFile("noext"))
}
