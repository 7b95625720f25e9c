package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
	ebaudio "github.com/hajimehoshi/ebiten/v2/audio"
	"github.com/rs/zerolog"

	"github.com/Garsondee/Gridiron-Aces/internal/audio"
	"github.com/Garsondee/Gridiron-Aces/internal/config"
	"github.com/Garsondee/Gridiron-Aces/internal/game"
	"github.com/Garsondee/Gridiron-Aces/internal/logging"
	"github.com/Garsondee/Gridiron-Aces/internal/telemetry"
)

func main() {
	var configPath string
	flag.StringVar(&configPath, "config", "", "path to a config file (json, yaml or toml)")
	flag.Parse()

	cfg, err := config.Load(configPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridiron: %v\n", err)
		os.Exit(1)
	}

	logFile, err := logging.OpenFile(cfg.Log.File)
	if err != nil {
		fmt.Fprintf(os.Stderr, "gridiron: open log file: %v\n", err)
		os.Exit(1)
	}
	var fileOut io.Writer
	if logFile != nil {
		defer logFile.Close()
		fileOut = logFile
	}
	logger := logging.New(cfg.Log.Level, os.Stderr, fileOut)

	keymap, err := game.ParseKeyMap(cfg.Controls)
	if err != nil {
		logger.Fatal().Err(err).Msg("invalid controls")
	}

	rec, shutdown := newRecorder(cfg.Telemetry, logger)
	defer shutdown()

	cues := newCues(cfg.Audio, logger)
	cues.SetMuted(cfg.Audio.Muted)

	g := game.New(game.Options{
		Config:   cfg,
		KeyMap:   keymap,
		Cues:     cues,
		Recorder: rec,
		Logger:   logger,
	})

	ebiten.SetWindowTitle(cfg.Window.Title)
	ebiten.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	ebiten.SetTPS(cfg.TPS)
	if err := ebiten.RunGame(g); err != nil {
		logger.Error().Err(err).Msg("game exited")
		shutdown()
		os.Exit(1)
	}
}

// newRecorder installs the metric exporter when telemetry is on. The
// returned shutdown flushes it and is safe to call more than once.
func newRecorder(tc config.TelemetryConfig, logger zerolog.Logger) (*telemetry.Recorder, func()) {
	noop := func() {}
	if !tc.Enabled {
		return nil, noop
	}

	var out io.Writer = os.Stdout
	var file *os.File
	if tc.File != "" {
		f, err := os.OpenFile(tc.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
		if err != nil {
			logger.Warn().Err(err).Str("file", tc.File).Msg("telemetry disabled")
			return nil, noop
		}
		file, out = f, f
	}

	ctx := context.Background()
	interval := time.Duration(tc.Interval * float64(time.Second))
	provider, err := telemetry.NewProvider(ctx, out, interval)
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry disabled")
		if file != nil {
			file.Close()
		}
		return nil, noop
	}
	rec, err := telemetry.New(provider.Meter())
	if err != nil {
		logger.Warn().Err(err).Msg("telemetry disabled")
	}

	done := false
	return rec, func() {
		if done {
			return
		}
		done = true
		if err := provider.Shutdown(ctx); err != nil {
			logger.Warn().Err(err).Msg("telemetry shutdown")
		}
		if file != nil {
			file.Close()
		}
	}
}

// newCues returns a silent player when audio is off or the device fails.
func newCues(ac config.AudioConfig, logger zerolog.Logger) *audio.Player {
	if !ac.Enabled {
		return audio.NewPlayer(nil, ac.SampleRate, ac.Volume, logger)
	}
	ctx, err := newAudioContext(ac.SampleRate)
	if err != nil {
		logger.Warn().Err(err).Msg("audio unavailable, continuing silent")
		return audio.NewPlayer(nil, ac.SampleRate, ac.Volume, logger)
	}
	return audio.NewPlayer(ctx, ac.SampleRate, ac.Volume, logger)
}

// newAudioContext turns the context constructor's panic into an error.
func newAudioContext(sampleRate int) (ctx *ebaudio.Context, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("audio context: %v", r)
		}
	}()
	return ebaudio.NewContext(sampleRate), nil
}
