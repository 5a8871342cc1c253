package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"mentora/internal/api"
	"mentora/internal/app"
	"mentora/internal/config"
	"mentora/internal/flow"
	"mentora/internal/llm"
	"mentora/internal/logging"
	"mentora/internal/screen"
	"mentora/internal/store"
	"mentora/internal/tutorgen"
)

// deps bundles everything a command needs beyond flag parsing.
type deps struct {
	cfg     config.Config
	store   *store.Store
	logger  *zap.Logger
	backend api.Backend
	label   string
}

func (d *deps) close() {
	if d.logger != nil {
		d.logger.Sync()
	}
	if d.store != nil {
		d.store.Close()
	}
}

// buildDeps loads configuration, opens the store and picks a backend:
// the remote API when a base URL is configured, otherwise local
// generation backed by an LLM provider.
func buildDeps(cmd *cobra.Command) (*deps, error) {
	configPath, _ := cmd.Flags().GetString("config")
	cfg, err := config.Load(configPath)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	debug, _ := cmd.Flags().GetBool("debug")
	logger, err := logging.New(cfg.LogFile, debug)
	if err != nil {
		return nil, fmt.Errorf("open log file: %w", err)
	}

	dbPath, err := resolveDBPath(cmd, cfg.DBPath)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("resolve DB path: %w", err)
	}
	st, err := store.Open(dbPath)
	if err != nil {
		logger.Sync()
		return nil, fmt.Errorf("open store: %w", err)
	}

	d := &deps{cfg: cfg, store: st, logger: logger}

	if cfg.Backend.BaseURL != "" {
		opts := []api.ClientOption{api.WithLogger(logger)}
		if cfg.Backend.Token != "" {
			opts = append(opts, api.WithToken(cfg.Backend.Token))
		}
		d.backend = api.NewClient(cfg.Backend.BaseURL, opts...)
		d.label = "remote"
		return d, nil
	}

	var provider llm.Provider
	provider, err = llm.NewProvider(cmd.Context(), cfg.LLM, st.EventRepo(), logger)
	if err != nil {
		fmt.Fprintln(os.Stderr, "LLM provider not configured:", err)
		fmt.Fprintln(os.Stderr, "Roadmap and course generation will be unavailable.")
		provider = nil
	}
	d.backend = tutorgen.NewService(provider, st.CardRepo(), tutorgen.DefaultConfig(), logger)
	d.label = "local"
	return d, nil
}

// runApp opens the store, builds dependencies, and launches the TUI.
func runApp(cmd *cobra.Command) error {
	return runAppAt(cmd, nil)
}

// runAppAt launches the TUI, optionally opening initial on top of home.
func runAppAt(cmd *cobra.Command, initial func(*deps) screen.Screen) error {
	d, err := buildDeps(cmd)
	if err != nil {
		return err
	}
	defer d.close()

	opts := app.Options{
		Backend:      d.backend,
		EventRepo:    d.store.EventRepo(),
		CardRepo:     d.store.CardRepo(),
		Clock:        flow.SystemClock(),
		Logger:       d.logger,
		BackendLabel: d.label,
	}
	if initial != nil {
		opts.Initial = initial(d)
	}
	return app.Run(opts)
}
