package cli

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/interpretive-systems/reelium/internal/config"
	"github.com/interpretive-systems/reelium/internal/log"
	"github.com/interpretive-systems/reelium/internal/player"
	"github.com/interpretive-systems/reelium/internal/scrape"
	"github.com/interpretive-systems/reelium/internal/tui"
	"github.com/spf13/cobra"
)

// runTUI is replaced in tests.
var runTUI = tui.Run

func newBrowseCmd() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "browse [username]",
		Short: "Open the reel explorer, optionally fetching a username right away",
		Args:  cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.New()
			if err != nil {
				return err
			}
			if err := applyFlags(cmd, cfg); err != nil {
				return err
			}

			out, err := log.OpenFile(cfg.Log.File)
			if err != nil {
				return err
			}
			defer out.Close()
			log.Configure(log.Config{Level: cfg.Log.Level, Output: out, Service: "reelium"})

			var username string
			if len(args) == 1 {
				username = args[0]
			}

			ctx := cmd.Context()
			err = runTUI(ctx, tui.Options{
				Fetcher:       scrape.New(cfg.Backend.URL, cfg.Backend.Timeout),
				Player:        choosePlayer(cfg),
				Username:      username,
				Limit:         cfg.Browse.Limit,
				Theme:         cfg.Browse.Theme,
				PlayerTimeout: cfg.Backend.Timeout,
			})
			if errors.Is(err, tea.ErrProgramKilled) && ctx.Err() != nil {
				return nil
			}
			if err != nil {
				return fmt.Errorf("run tui: %w", err)
			}
			return nil
		},
	}
	addBrowseFlags(cmd)
	return cmd
}

func addBrowseFlags(cmd *cobra.Command) {
	cmd.Flags().IntP("limit", "n", 0, "Number of reels to fetch, 1-50 (env REELIUM_LIMIT)")
	cmd.Flags().String("player", "", "mpv executable used for playback (env REELIUM_PLAYER)")
	cmd.Flags().Bool("no-video", false, "Browse without video playback (env REELIUM_NO_VIDEO)")
	cmd.Flags().String("theme", "", "Color theme: dark or light (env REELIUM_THEME)")
}

// applyFlags overrides environment configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) error {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Backend.URL = mustGetStringFlag(cmd, "backend")
	}
	if flags.Changed("log-file") {
		cfg.Log.File = mustGetStringFlag(cmd, "log-file")
	}
	if flags.Changed("log-level") {
		cfg.Log.Level = mustGetStringFlag(cmd, "log-level")
	}
	if flags.Changed("player") {
		cfg.Player.Path = mustGetStringFlag(cmd, "player")
	}
	if flags.Changed("theme") {
		cfg.Browse.Theme = mustGetStringFlag(cmd, "theme")
	}
	if flags.Changed("limit") {
		n, err := flags.GetInt("limit")
		if err != nil {
			return fmt.Errorf("limit: %w", err)
		}
		cfg.Browse.Limit = n
	}
	if flags.Changed("no-video") {
		v, err := flags.GetBool("no-video")
		if err != nil {
			return fmt.Errorf("no-video: %w", err)
		}
		cfg.Player.NoVideo = v
	}
	if cfg.Backend.URL == "" {
		return errors.New("backend URL is empty")
	}
	return nil
}

// choosePlayer returns mpv when it can be found, otherwise a player that
// reports why playback is unavailable.
func choosePlayer(cfg *config.Config) player.Player {
	if cfg.Player.NoVideo {
		return player.Unavailable{Reason: fmt.Errorf("%w: video disabled", player.ErrNotRunning)}
	}
	path, err := player.LookPath(cfg.Player.Path)
	if err != nil {
		logger := log.WithComponent("cli")
		logger.Warn().Err(err).Str("player", cfg.Player.Path).Msg("playback disabled")
		return player.Unavailable{Reason: err}
	}
	return player.NewMPV(path)
}
