package cmd

import (
	"fmt"
	"math/rand/v2"
	"time"

	"github.com/spf13/cobra"

	"github.com/parladev/parla/internal/app"
	"github.com/parladev/parla/internal/config"
	"github.com/parladev/parla/internal/review"
	"github.com/parladev/parla/internal/screens/home"
	"github.com/parladev/parla/internal/speech"
	"github.com/parladev/parla/internal/store"
	"github.com/parladev/parla/internal/vocab"
)

var rootCmd = &cobra.Command{
	Use:   "parla",
	Short: "Bilingual vocabulary trainer",
	Long:  "Parla — terminal trainer for bilingual vocabulary lists with fuzzy scoring, adaptive hints, and spoken prompts.",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}

func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().String("config", "", "Path to config file (overrides PARLA_CONFIG env var)")
	rootCmd.PersistentFlags().String("db", "", "Path to SQLite database file (overrides PARLA_DB env var)")
	rootCmd.PersistentFlags().String("vocab", "", "Path to vocabulary file (overrides the configured one)")

	rootCmd.AddCommand(reviewCmd)
	rootCmd.AddCommand(speakCmd)
	rootCmd.AddCommand(statsCmd)
	rootCmd.AddCommand(resetCmd)
	rootCmd.AddCommand(historyCmd)
	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(updateCmd)
}

// resolveConfig loads settings from --config, PARLA_CONFIG, or the
// default path. The --vocab flag overrides the configured file.
func resolveConfig(cmd *cobra.Command) (*config.Config, string, error) {
	path, _ := cmd.Flags().GetString("config")
	explicit := path != ""
	if !explicit {
		var err error
		path, err = config.DefaultPath()
		if err != nil {
			return nil, "", err
		}
	}

	cfg, err := config.Load(path, explicit)
	if err != nil {
		return nil, "", err
	}
	if v, _ := cmd.Flags().GetString("vocab"); v != "" {
		cfg.Source.File = v
	}
	return cfg, path, nil
}

// resolveDBPath returns the database path: --db flag, then PARLA_DB,
// then the default XDG path.
func resolveDBPath(cmd *cobra.Command) (string, error) {
	if p, _ := cmd.Flags().GetString("db"); p != "" {
		return p, store.EnsureDir(p)
	}
	return store.DefaultDBPath()
}

func openStore(cmd *cobra.Command) (*store.Store, error) {
	path, err := resolveDBPath(cmd)
	if err != nil {
		return nil, err
	}
	return store.Open(path)
}

// buildSpeaker wires the speech collaborator from config. Disabled or
// unconfigured speech gets the silent implementation.
func buildSpeaker(cfg *config.Config) review.Speaker {
	if !cfg.Speech.Enabled || cfg.Speech.APIKey == "" {
		return speech.Noop{}
	}
	cacheDir, err := speech.DefaultCacheDir()
	if err != nil {
		return speech.Noop{}
	}
	play, err := speech.SystemPlayer()
	if err != nil {
		play = nil // cache-only, no audible playback
	}
	synth := speech.NewOpenAI(cfg.Speech.APIKey, cfg.Speech.Model, cfg.Speech.Voice)
	return speech.New(synth, cacheDir, play)
}

// runReview assembles the dependency graph and starts the TUI.
func runReview(cmd *cobra.Command) error {
	cfg, cfgPath, err := resolveConfig(cmd)
	if err != nil {
		return err
	}
	if cfg.Source.File == "" {
		return fmt.Errorf("no vocabulary file configured: set source.file in %s or pass --vocab", cfgPath)
	}

	st, err := openStore(cmd)
	if err != nil {
		return fmt.Errorf("open attempt store: %w", err)
	}
	defer st.Close()

	deps := home.Deps{
		Cfg:     cfg,
		CfgPath: cfgPath,
		Provider: &vocab.FileProvider{
			Path:  cfg.Source.File,
			Lang1: cfg.Source.Lang1,
			Lang2: cfg.Source.Lang2,
		},
		Attempts: st.Attempts(),
		Speaker:  buildSpeaker(cfg),
		Rand:     rand.New(rand.NewPCG(uint64(time.Now().UnixNano()), 0)),
	}
	return app.Run(deps)
}

var reviewCmd = &cobra.Command{
	Use:   "review",
	Short: "Start a review session (the default command)",
	RunE: func(cmd *cobra.Command, args []string) error {
		return runReview(cmd)
	},
}
