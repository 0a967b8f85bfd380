package piecestab

import (
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/icons"
	"github.com/llehouerou/pieces/internal/pieces"
	"github.com/llehouerou/pieces/internal/ui/testutil"
)

func TestView_ZeroSize(t *testing.T) {
	m := New(nil, nil, nil)
	assert.Empty(t, m.View())
}

func TestView_FillsHeight(t *testing.T) {
	m := newTestModel()

	lines := strings.Split(m.View(), "\n")
	assert.Len(t, lines, 10)
	for i, line := range lines {
		assert.Equal(t, 80, testutil.MeasureWidth(line), "line %d", i)
	}
}

func TestView_Rows(t *testing.T) {
	m := newTestModel()
	out := m.View()

	line := testutil.FindLine(out, "Lemniscate")
	assert.Contains(t, line, "Tangent")
	assert.Contains(t, line, icons.FormatImage("lemniscate.png"))
	assert.True(t, strings.HasPrefix(line, " "+icons.Play()), line)

	line = testutil.FindLine(out, "Drones")
	assert.Contains(t, line, "Alex Bainter")
	assert.Contains(t, line, icons.FormatImage("default"))
}

func TestView_HeaderBackLinkOnlyWithCriterion(t *testing.T) {
	m := newTestModel()

	header := testutil.Lines(m.View())[0]
	assert.Contains(t, header, "All Music")
	assert.NotContains(t, header, icons.Back()+" All Music")
	assert.Contains(t, header, "3 pieces")

	m.SetCriterion("tangent")
	header = testutil.Lines(m.View())[0]
	assert.True(t, strings.HasPrefix(header, icons.Back()+" All Music"), header)
	assert.Contains(t, header, "Tangent")
	assert.Contains(t, header, "1 piece")
}

func TestView_HeaderNamesPieceCriterion(t *testing.T) {
	m := newTestModel()
	m.SetCriterion("stream")

	header := testutil.Lines(m.View())[0]
	assert.Contains(t, header, "Stream of Consciousness")
}

func TestView_ButtonIcons(t *testing.T) {
	m := newTestModel()
	m.SetPlayback(pieces.PlaybackState{SelectedID: "lemniscate", Playing: true})
	out := m.View()

	playing := testutil.FindLine(out, "Lemniscate")
	assert.True(t, strings.HasPrefix(playing, " "+icons.Stop()), playing)
	assert.Contains(t, playing, icons.Playing())

	other := testutil.FindLine(out, "Drones")
	assert.True(t, strings.HasPrefix(other, " "+icons.Play()), other)
}

func TestView_ButtonHiddenWhileLoading(t *testing.T) {
	m := newTestModel()
	m.SetPlayback(pieces.PlaybackState{SelectedID: "lemniscate", Playing: true, Loading: true})
	out := m.View()

	loading := testutil.FindLine(out, "Lemniscate")
	assert.True(t, strings.HasPrefix(loading, "    "), loading)
	assert.NotContains(t, loading, icons.Playing())

	other := testutil.FindLine(out, "Drones")
	assert.True(t, strings.HasPrefix(other, " "+icons.Play()), other)
}

func TestView_PlayTimeAndLastPlayed(t *testing.T) {
	times := catalog.PlayTimes{"drones": 125}
	m := New([]catalog.Piece{drones, lemniscate}, testArtists, times)
	m.SetSize(100, 6)
	m.SetLastPlayed("drones", time.Now().Add(-3*time.Minute))
	out := m.View()

	line := testutil.FindLine(out, "Drones")
	assert.Contains(t, line, "2:05")
	assert.Contains(t, line, "3 minutes ago")

	line = testutil.FindLine(out, "Lemniscate")
	assert.NotContains(t, line, "0:00")
	assert.NotContains(t, line, "ago")
}

func TestView_SharedPlayTimesAreLive(t *testing.T) {
	times := catalog.PlayTimes{}
	m := New([]catalog.Piece{drones}, testArtists, times)
	m.SetSize(80, 5)

	times["drones"] = 61
	assert.Contains(t, testutil.FindLine(m.View(), "Drones"), "1:01")
}

func TestView_Hint(t *testing.T) {
	m := newTestModel()

	footer := testutil.Lines(m.View())[9]
	assert.Contains(t, footer, "Select Drones")
	assert.Contains(t, footer, "1/3")

	m.SetPlayback(pieces.PlaybackState{SelectedID: "stream", Playing: true})
	footer = testutil.Lines(m.View())[9]
	assert.Contains(t, footer, "Play Drones")
}

func TestView_Empty(t *testing.T) {
	m := newTestModel()
	m.SetCriterion("nobody")
	out := m.View()

	assert.Contains(t, testutil.Lines(out)[0], "0 pieces")
	assert.Equal(t, 2, strings.Count(testutil.StripANSI(out), "No pieces"))
}

func TestView_NarrowDropsDetails(t *testing.T) {
	m := newTestModel()
	m.SetSize(24, 6)

	line := testutil.FindLine(m.View(), "Drones")
	assert.NotContains(t, line, "default")
	assert.Equal(t, 24, testutil.MeasureWidth(line))
}
