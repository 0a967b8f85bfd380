package playback

import (
	"github.com/rs/zerolog"

	"github.com/llehouerou/pieces/internal/catalog"
)

// Device is the sound-producing collaborator the service drives.
type Device interface {
	Start(p catalog.Piece) error
	Stop() error
}

// LogDevice is a Device that only records what it was asked to do.
// Audio output is provided by the host player, not by this program.
type LogDevice struct {
	log zerolog.Logger
}

// NewLogDevice creates a LogDevice writing to the given logger.
func NewLogDevice(log zerolog.Logger) *LogDevice {
	return &LogDevice{log: log.With().Str("component", "device").Logger()}
}

// Start implements Device.
func (d *LogDevice) Start(p catalog.Piece) error {
	d.log.Info().Str("piece", p.ID).Str("title", p.Title).Msg("start")
	return nil
}

// Stop implements Device.
func (d *LogDevice) Stop() error {
	d.log.Info().Msg("stop")
	return nil
}

// Mock is a test double for Device.
type Mock struct {
	StartErr error
	StopErr  error
	Started  []string
	Stops    int
}

// Start implements Device.
func (m *Mock) Start(p catalog.Piece) error {
	if m.StartErr != nil {
		return m.StartErr
	}
	m.Started = append(m.Started, p.ID)
	return nil
}

// Stop implements Device.
func (m *Mock) Stop() error {
	if m.StopErr != nil {
		return m.StopErr
	}
	m.Stops++
	return nil
}
