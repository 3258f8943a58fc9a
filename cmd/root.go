/*
Copyright © 2026 NAME HERE <EMAIL ADDRESS>

*/
package cmd

import (
	"fmt"
	"os"
	"strings"
	"time"

	"github.com/jfmyers9/radionet/internal/config"
	"github.com/jfmyers9/radionet/internal/directory"
	"github.com/jfmyers9/radionet/pkg/radionet"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Version information (set via ldflags during build)
var (
	version   = "dev"
	commit    = "unknown"
	buildDate = "unknown"
)

var (
	regionFlag     string
	logLevelFlag   string
	minBitrateFlag int
	timeoutFlag    time.Duration
)

// rootCmd represents the base command when called without any subcommands
var rootCmd = &cobra.Command{
	Use:   "radionet",
	Short: "Browse the radio.net station directory",
	Long: `radionet browses the radio.net station directory from the terminal.

It lists genres, topics, languages, cities and countries, pages through
the stations of each, searches by name, and resolves your favorite
stations to playable stream URLs.

Settings are read from ~/.config/radionet/config.yaml and RADIONET_*
environment variables. Flags override both.`,
	Version:      fmt.Sprintf("%s (commit: %s, built: %s)", version, commit, buildDate),
	SilenceUsage: true,
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&regionFlag, "region", "r", "", "Directory region, e.g. de, us, pl (overrides config)")
	rootCmd.PersistentFlags().StringVar(&logLevelFlag, "log-level", "", "Log level: debug, info, warn, error (overrides config)")
	rootCmd.PersistentFlags().IntVar(&minBitrateFlag, "min-bitrate", 0, "Preferred minimum stream bitrate in kbps (overrides config)")
	rootCmd.PersistentFlags().DurationVar(&timeoutFlag, "timeout", 30*time.Second, "Overall timeout for the command")
}

// session bundles what every command needs.
type session struct {
	cfg    *config.Config
	client *directory.Client
	logger zerolog.Logger
}

// newSession loads configuration, applies flag overrides and creates a
// directory client.
func newSession() (*session, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}

	if regionFlag != "" {
		cfg.Region = regionFlag
	}
	if logLevelFlag != "" {
		cfg.LogLevel = logLevelFlag
	}
	if minBitrateFlag > 0 {
		cfg.MinBitrate = minBitrateFlag
	}

	region, ok := radionet.ResolveRegion(cfg.Region)
	if !ok {
		return nil, fmt.Errorf("unknown region %q (supported: %s)", cfg.Region, strings.Join(radionet.Regions(), ", "))
	}
	cfg.Region = region

	logger := setupLogger(cfg.LogLevel)

	client := directory.New(directory.Config{
		Region:          cfg.Region,
		MinBitrate:      cfg.MinBitrate,
		APIKey:          cfg.API.Key,
		Favorites:       cfg.Favorites,
		FavoriteWorkers: cfg.FavoriteWorkers,
		BaseURL:         cfg.API.BaseURL,
		UserAgent:       cfg.API.UserAgent,
		HTTPTimeout:     cfg.API.HTTPTimeout,
		MaxRetries:      cfg.API.MaxRetries,
	}, logger)

	return &session{cfg: cfg, client: client, logger: logger}, nil
}

// setupLogger creates a console logger at the given level
func setupLogger(logLevel string) zerolog.Logger {
	level := zerolog.InfoLevel
	switch logLevel {
	case "debug":
		level = zerolog.DebugLevel
	case "info":
		level = zerolog.InfoLevel
	case "warn":
		level = zerolog.WarnLevel
	case "error":
		level = zerolog.ErrorLevel
	}

	return zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr, TimeFormat: time.RFC3339}).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// checkStatus turns a non-OK result status into a command error.
func checkStatus(status directory.Status, what string) error {
	switch status {
	case directory.StatusOK:
		return nil
	case directory.StatusNotFound:
		return fmt.Errorf("%s: not found", what)
	default:
		return fmt.Errorf("%s: directory unavailable", what)
	}
}

// validTagType checks tagType against the known tag dimensions.
func validTagType(tagType string) error {
	if _, ok := directory.TagParam(tagType); ok {
		return nil
	}

	return fmt.Errorf("unknown tag type %q (expected one of: %s)", tagType, strings.Join(directory.TagTypes(), ", "))
}
