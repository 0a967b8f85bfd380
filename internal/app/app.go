// internal/app/app.go
package app

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/rs/zerolog"

	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/errmsg"
	"github.com/llehouerou/pieces/internal/keymap"
	"github.com/llehouerou/pieces/internal/playback"
	"github.com/llehouerou/pieces/internal/state"
	"github.com/llehouerou/pieces/internal/ui/criterionprompt"
	"github.com/llehouerou/pieces/internal/ui/helpbindings"
	"github.com/llehouerou/pieces/internal/ui/piecestab"
)

// Deps are the collaborators the application is built from.
type Deps struct {
	Catalog   catalog.Catalog
	PlayTimes catalog.PlayTimes // shared with the tab, incremented while playing
	State     state.Interface
	Playback  *playback.Service
	Buffer    time.Duration // simulated buffering before a started piece plays

	// Criterion, when set, overrides the criterion saved in State.
	Criterion catalog.Criterion

	Log zerolog.Logger
	Now func() time.Time // defaults to time.Now
}

// Model is the root application model.
type Model struct {
	Tab    piecestab.Model
	Prompt criterionprompt.Model
	Help   helpbindings.Model

	playTimes catalog.PlayTimes
	stateMgr  state.Interface
	playback  *playback.Service
	buffer    time.Duration
	log       zerolog.Logger
	now       func() time.Time

	keys    *keymap.Resolver
	saved   state.NavigationState // last navigation snapshot handed to stateMgr
	ticking bool                  // a TickCmd is in flight

	ErrorMsg string
	Notice   string // informational status, shown when there is no error
	Width    int
	Height   int
}

// New builds the application, restoring the saved navigation and play
// history, and runs the first reaction pass.
func New(d Deps) Model {
	if d.PlayTimes == nil {
		d.PlayTimes = catalog.PlayTimes{}
	}
	if d.Now == nil {
		d.Now = time.Now
	}

	m := Model{
		Tab:       piecestab.New(d.Catalog.Pieces, d.Catalog.Artists, d.PlayTimes),
		Prompt:    criterionprompt.New(d.Catalog),
		Help:      helpbindings.New(),
		playTimes: d.PlayTimes,
		stateMgr:  d.State,
		playback:  d.Playback,
		buffer:    d.Buffer,
		log:       d.Log.With().Str("component", "app").Logger(),
		now:       d.Now,
		keys:      keymap.Default(),
	}
	m.Tab.SetFocused(true)

	criterion := d.Criterion
	nav, err := d.State.GetNavigation()
	switch {
	case err != nil:
		m.setError(errmsg.OpStateLoad, err)
	case nav != nil:
		if !criterion.IsSet() {
			criterion = catalog.Criterion(nav.Criterion)
		}
		if p, ok := d.Catalog.ByID(nav.SelectedPieceID); ok {
			m.playback.Restore(p)
		}
		m.saved = *nav
	}

	if history, err := d.State.LastPlayed(); err != nil {
		m.setError(errmsg.OpHistoryLoad, err)
	} else {
		m.Tab.SetHistory(history)
	}

	m.Tab.SetCriterion(criterion)
	m.settle()

	m.log.Info().
		Int("pieces", d.Catalog.Len()).
		Str("criterion", string(m.Tab.Criterion())).
		Str("selected", m.playback.State().SelectedID).
		Msg("started")
	return m
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return nil
}

// Criterion returns the active criterion.
func (m Model) Criterion() catalog.Criterion {
	return m.Tab.Criterion()
}

// Status returns the current playback status.
func (m Model) Status() playback.Status {
	return playback.StatusOf(m.playback.State())
}

func (m *Model) setError(op errmsg.Op, err error) {
	m.setErrorWith(op, "", err)
}

func (m *Model) setErrorWith(op errmsg.Op, context string, err error) {
	m.ErrorMsg = errmsg.FormatWith(op, context, err)
	m.log.Error().Err(err).Str("op", string(op)).Str("context", context).Msg("operation failed")
}
