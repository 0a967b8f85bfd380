package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/llehouerou/pieces/internal/app"
	"github.com/llehouerou/pieces/internal/catalog"
	"github.com/llehouerou/pieces/internal/config"
	"github.com/llehouerou/pieces/internal/errmsg"
	"github.com/llehouerou/pieces/internal/icons"
	"github.com/llehouerou/pieces/internal/logging"
	"github.com/llehouerou/pieces/internal/playback"
	"github.com/llehouerou/pieces/internal/state"
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] [piece-or-artist-id]\n\n", os.Args[0])
	flag.PrintDefaults()
}

func main() {
	var catalogFile, scanDir string
	flag.StringVar(&catalogFile, "catalog", "", "TOML catalog file (overrides catalog.file)")
	flag.StringVar(&scanDir, "scan", "", "folder of tagged audio files (overrides catalog.scan_dir)")
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		flag.Usage()
		os.Exit(2)
	}

	if err := run(catalogFile, scanDir, catalog.Criterion(flag.Arg(0))); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(catalogFile, scanDir string, criterion catalog.Criterion) error {
	cfg, err := config.Load()
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	if catalogFile != "" {
		cfg.Catalog.File = catalogFile
	}
	if scanDir != "" {
		cfg.Catalog.ScanDir = scanDir
	}

	icons.Init(cfg.Icons)

	logger, logCloser, err := logging.Setup(cfg.GetLogConfig())
	if err != nil {
		return errors.New(errmsg.Format(errmsg.OpInitialize, err))
	}
	defer logCloser.Close()

	if !cfg.HasCatalogSource() {
		return fmt.Errorf("%s\nset catalog.file or catalog.scan_dir in ~/.config/pieces/config.toml, or use -catalog/-scan",
			errmsg.Format(errmsg.OpCatalogLoad, catalog.ErrNoSource))
	}

	cat, err := catalog.Load(cfg.Catalog.File, cfg.Catalog.ScanDir)
	if err != nil {
		logger.Error().Err(err).Msg("load catalog")
		return errors.New(errmsg.Format(errmsg.OpCatalogLoad, err))
	}

	stateMgr, err := state.Open()
	if err != nil {
		logger.Error().Err(err).Msg("open state")
		return errors.New(errmsg.Format(errmsg.OpStateLoad, err))
	}
	defer stateMgr.Close()

	m := app.New(app.Deps{
		Catalog:   cat,
		PlayTimes: catalog.PlayTimes{},
		State:     stateMgr,
		Playback:  playback.New(playback.NewLogDevice(logger), logger),
		Buffer:    cfg.BufferDuration(),
		Criterion: criterion,
		Log:       logger,
	})

	p := tea.NewProgram(m, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		logger.Error().Err(err).Msg("program exited")
		return fmt.Errorf("error running program: %w", err)
	}
	logger.Info().Msg("exit")
	return nil
}
