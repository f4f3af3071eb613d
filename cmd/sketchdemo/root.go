// Copyright 2026 The gogpu Authors
// SPDX-License-Identifier: MIT

package main

import (
	"errors"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/sketch"
)

// demoConfig is the resolved command configuration.
type demoConfig struct {
	Width      int     `mapstructure:"width"`
	Height     int     `mapstructure:"height"`
	FPS        float64 `mapstructure:"fps"`
	Fullscreen bool    `mapstructure:"fullscreen"`
	Paused     bool    `mapstructure:"paused"`
	Headless   bool    `mapstructure:"headless"`
	Frames     int     `mapstructure:"frames"`
	Output     string  `mapstructure:"output"`
	Seed       uint64  `mapstructure:"seed"`
	Particles  int     `mapstructure:"particles"`
	Background string  `mapstructure:"background"`
	LogLevel   string  `mapstructure:"log-level"`
}

func newRootCmd() *cobra.Command {
	v := viper.New()
	var cfgFile string

	cmd := &cobra.Command{
		Use:           "sketchdemo",
		Short:         "Run a noise flow-field sketch",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadConfig(v, cfgFile)
			if err != nil {
				return err
			}
			sketch.SetLogger(newLogger(cfg.LogLevel))

			if cfg.Headless {
				return runHeadless(cfg, cmd.OutOrStdout())
			}
			return runWindow(cfg)
		},
	}

	f := cmd.Flags()
	f.StringVarP(&cfgFile, "config", "c", "", "config file (default ./sketchdemo.yaml if present)")
	f.Int("width", 800, "canvas width")
	f.Int("height", 600, "canvas height")
	f.Float64("fps", sketch.DefaultFPS, "target frame rate")
	f.Bool("fullscreen", false, "size the canvas to the window")
	f.Bool("paused", false, "start with animation off (space toggles)")
	f.Bool("headless", false, "render without a window and write a PNG")
	f.Int("frames", 240, "frames to render in headless mode")
	f.String("output", "flow.png", "PNG path in headless mode")
	f.Uint64("seed", 1, "random seed")
	f.Int("particles", 600, "number of particles")
	f.String("background", "#10131A", "background colour")
	f.String("log-level", "warn", "log level: debug, info, warn, error")

	if err := v.BindPFlags(f); err != nil {
		panic(err)
	}
	return cmd
}

// loadConfig merges flags, environment and the optional config file.
func loadConfig(v *viper.Viper, cfgFile string) (demoConfig, error) {
	if cfgFile != "" {
		v.SetConfigFile(cfgFile)
	} else {
		v.AddConfigPath(".")
		v.SetConfigName("sketchdemo")
		v.SetConfigType("yaml")
	}
	v.SetEnvPrefix("SKETCH")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return demoConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	var cfg demoConfig
	if err := v.Unmarshal(&cfg); err != nil {
		return demoConfig{}, fmt.Errorf("decoding config: %w", err)
	}
	if cfg.Width <= 0 || cfg.Height <= 0 {
		return demoConfig{}, fmt.Errorf("%w: width=%d, height=%d", sketch.ErrInvalidDimensions, cfg.Width, cfg.Height)
	}
	if cfg.Particles < 0 {
		return demoConfig{}, fmt.Errorf("particles must not be negative: %d", cfg.Particles)
	}
	return cfg, nil
}

func newLogger(level string) *slog.Logger {
	var l slog.Level
	if err := l.UnmarshalText([]byte(level)); err != nil {
		l = slog.LevelWarn
	}
	return slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: l}))
}
