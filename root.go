package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/CrestNiraj12/dungeonterm/app"
	"github.com/CrestNiraj12/dungeonterm/infra/config"
	"github.com/CrestNiraj12/dungeonterm/infra/console"
	"github.com/CrestNiraj12/dungeonterm/infra/editor"
	"github.com/CrestNiraj12/dungeonterm/infra/gameserver"
	"github.com/CrestNiraj12/dungeonterm/infra/logging"
	"github.com/CrestNiraj12/dungeonterm/tui"
)

type rootOptions struct {
	server     string
	configPath string
	plain      bool
	debug      bool
}

func newRootCommand() *cobra.Command {
	var opts rootOptions

	v, c, d := resolvedRuntimeVersionInfo(version, commit, date)
	cmd := &cobra.Command{
		Use:   "dungeonterm",
		Short: "Play an AI dungeon master game from the terminal",
		Long: `dungeonterm sends your actions to a dungeon master game server and
renders its replies as a running transcript, with the latest action,
feedback score and rewards alongside.

Use --plain to read one action per line from stdin instead of the TUI.
Type /clear on its own line to clear the transcript in plain mode.`,
		Version:      v,
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return run(cmd, opts)
		},
	}
	cmd.SetVersionTemplate(fmt.Sprintf("dungeonterm %s\ncommit: %s\nbuilt: %s\n", v, c, d))

	cmd.Flags().StringVar(&opts.server, "server", "", "Game server base URL (overrides DUNGEONTERM_SERVER)")
	cmd.Flags().StringVar(&opts.configPath, "config", "", "Path to a YAML config file")
	cmd.Flags().BoolVar(&opts.plain, "plain", false, "Line mode: read actions from stdin, print the transcript to stdout")
	cmd.Flags().BoolVar(&opts.debug, "debug", false, "Enable debug logging")

	return cmd
}

func run(cmd *cobra.Command, opts rootOptions) error {
	// 1. Load config from file and environment, then flags.
	cfg, err := config.LoadFile(opts.configPath)
	if err != nil {
		return fmt.Errorf("config: %w", err)
	}
	if opts.server != "" {
		if cfg.ServerURL, err = config.NormalizeServerURL(opts.server); err != nil {
			return fmt.Errorf("config: %w", err)
		}
	}
	level := logging.Level(cfg.Debug || opts.debug)

	// 2. Build infrastructure.
	client := gameserver.NewClient(cfg.ServerURL)
	interactions := gameserver.NewInteractionService(client)

	// 3. Plain mode logs to stderr; stdout carries the transcript.
	if opts.plain {
		logger := logging.New(cmd.ErrOrStderr(), level, false)
		return console.Run(cmd.Context(), cmd.InOrStdin(), cmd.OutOrStdout(), app.NewInteractor(interactions, logger))
	}

	// 4. The TUI owns the terminal, so logs go to a file.
	logger, closer, err := logging.OpenFile(cfg.LogPath, level)
	if err != nil {
		return fmt.Errorf("logging: %w", err)
	}
	defer closer.Close()
	logger.Info("starting", "server", cfg.ServerURL)

	uiState, err := config.LoadUIState(cfg.UIStatePath)
	if err != nil {
		logger.Warn("ignoring ui state", "error", err)
	}

	// 5. Wire root TUI model. Leaving run abandons any request still in flight.
	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	rootModel := tui.NewApp(tui.Deps{
		Context:    ctx,
		Interactor: app.NewInteractor(interactions, logger),
		Editor:     editor.NewEnvEditor(),
		ServerURL:  cfg.ServerURL,
		StatePath:  cfg.UIStatePath,
		UIState:    uiState,
	})

	// 6. Run.
	p := tea.NewProgram(rootModel, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui: %w", err)
	}
	return nil
}
