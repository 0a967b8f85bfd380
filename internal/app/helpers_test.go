// internal/app/helpers_test.go
package app

import (
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/require"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/playback"
	"github.com/llehouerou/pieces/internal/state"
	"github.com/llehouerou/pieces/internal/ui/action"
)

var (
	drones     = catalog.Piece{ID: "drones", Title: "Drones", Artist: "alex-bainter"}
	lemniscate = catalog.Piece{ID: "lemniscate", Title: "Lemniscate", Artist: "tangent"}
	stream     = catalog.Piece{ID: "stream", Title: "Stream of Consciousness", Artist: "alex-bainter"}

	testCatalog = catalog.Catalog{
		Pieces:  []catalog.Piece{drones, lemniscate, stream},
		Artists: catalog.Artists{"alex-bainter": "Alex Bainter", "tangent": "Tangent"},
	}

	testNow = time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)
)

type testEnv struct {
	device *playback.Mock
	state  *state.Mock
	times  catalog.PlayTimes
}

func newTestApp(opts ...func(*Deps)) (Model, *testEnv) {
	env := &testEnv{
		device: &playback.Mock{},
		state:  state.NewMock(),
		times:  catalog.PlayTimes{},
	}
	d := Deps{
		Catalog:   testCatalog,
		PlayTimes: env.times,
		State:     env.state,
		Playback:  playback.New(env.device, zerolog.Nop()),
		Log:       zerolog.Nop(),
		Now:       func() time.Time { return testNow },
	}
	for _, opt := range opts {
		opt(&d)
	}
	m := New(d)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 80, Height: 12})
	return next.(Model), env
}

func withCriterion(c catalog.Criterion) func(*Deps) {
	return func(d *Deps) { d.Criterion = c }
}

func withCatalog(c catalog.Catalog) func(*Deps) {
	return func(d *Deps) { d.Catalog = c }
}

// update feeds msg to the model and fails the test if the result is not a Model.
func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	result, ok := next.(Model)
	require.True(t, ok, "Update should return Model")
	return result, cmd
}

// send wraps a UI action the way its component would.
func send(t *testing.T, m Model, source string, a action.Action) (Model, tea.Cmd) {
	t.Helper()
	return update(t, m, action.Msg{Source: source, Action: a})
}

// quickMsgs runs cmd and returns the messages produced within a short
// window. One-second ticks do not make it in time.
func quickMsgs(cmd tea.Cmd) []tea.Msg {
	out := make(chan tea.Msg, 64)
	run(cmd, out)

	var msgs []tea.Msg
	timeout := time.After(100 * time.Millisecond)
	for {
		select {
		case msg := <-out:
			msgs = append(msgs, msg)
		case <-timeout:
			return msgs
		}
	}
}

func run(cmd tea.Cmd, out chan<- tea.Msg) {
	if cmd == nil {
		return
	}
	go func() {
		msg := cmd()
		if batch, ok := msg.(tea.BatchMsg); ok {
			for _, c := range batch {
				run(c, out)
			}
			return
		}
		if msg != nil {
			out <- msg
		}
	}()
}

// buffered returns the BufferedMsg among msgs.
func buffered(t *testing.T, msgs []tea.Msg) BufferedMsg {
	t.Helper()
	for _, msg := range msgs {
		if b, ok := msg.(BufferedMsg); ok {
			return b
		}
	}
	require.Fail(t, "no BufferedMsg")
	return BufferedMsg{}
}

// actionMsg returns the action.Msg among msgs.
func actionMsg(t *testing.T, msgs []tea.Msg) action.Msg {
	t.Helper()
	for _, msg := range msgs {
		if a, ok := msg.(action.Msg); ok {
			return a
		}
	}
	require.Fail(t, "no action.Msg")
	return action.Msg{}
}
