package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"github.com/yourusername/freshstars/internal/adapter/browser"
	"github.com/yourusername/freshstars/internal/adapter/config"
	"github.com/yourusername/freshstars/internal/adapter/github"
	"github.com/yourusername/freshstars/internal/adapter/logging"
	"github.com/yourusername/freshstars/internal/ui"
	"github.com/yourusername/freshstars/internal/ui/theme"
	"github.com/yourusername/freshstars/internal/usecase"
)

var version = "0.1.0"

func main() {
	if err := rootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func rootCmd() *cobra.Command {
	var overrides config.Overrides

	cmd := &cobra.Command{
		Use:   "freshstars",
		Short: "Browse the most starred repositories created in the last 10 days",
		Long: `freshstars lists repositories created in the last ten days, most starred
first, and loads more as you scroll. Press o to open a repository in your
browser, O to open its owner, and q to quit.`,
		Version:      version,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runBrowse(overrides)
		},
	}

	cmd.Flags().StringVar(&overrides.APIBaseURL, "api-url", "", "Search endpoint URL (overrides "+config.EnvAPIURL+")")
	cmd.PersistentFlags().StringVarP(&overrides.Theme, "theme", "t", "", "Colour theme (see 'freshstars themes')")
	cmd.Flags().StringVar(&overrides.LogFile, "log-file", "", "Write logs to this file (overrides "+config.EnvLogFile+")")

	cmd.AddCommand(versionCmd())
	cmd.AddCommand(themesCmd(&overrides))

	return cmd
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "freshstars %s\n", version)
		},
	}
}

// themesCmd lists every theme and marks the one that would be used.
func themesCmd(overrides *config.Overrides) *cobra.Command {
	return &cobra.Command{
		Use:   "themes",
		Short: "List the available colour themes",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load()
			if err != nil {
				return fmt.Errorf("failed to load config: %w", err)
			}
			cfg.Apply(*overrides)
			theme.SetGlobal(cfg.Theme)
			active := theme.Global().Current().Name

			out := cmd.OutOrStdout()
			for _, t := range theme.All() {
				mark := " "
				if t.Name == active {
					mark = "*"
				}
				fmt.Fprintf(out, "%s %-14s %s\n", mark, t.Name, t.Description)
			}
			return nil
		},
	}
}

// loadConfig merges the env files, the environment and the flags, and
// rejects anything the browser cannot start with.
func loadConfig(overrides config.Overrides) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	cfg.Apply(overrides)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if !theme.Exists(cfg.Theme) {
		return nil, fmt.Errorf("unknown theme %q (available: %s)", cfg.Theme, strings.Join(theme.Names(), ", "))
	}
	return cfg, nil
}

func runBrowse(overrides config.Overrides) (err error) {
	cfg, err := loadConfig(overrides)
	if err != nil {
		return err
	}

	logCfg, err := logging.LoadConfigFromEnv()
	if err != nil {
		return err
	}
	logger, closeLog, err := logging.Open(logCfg, cfg.LogFile)
	if err != nil {
		return err
	}
	defer func() {
		if cerr := closeLog(); cerr != nil {
			err = errors.Join(err, fmt.Errorf("failed to close log file: %w", cerr))
		}
	}()

	theme.SetGlobal(cfg.Theme)

	client, err := github.NewClient(cfg.APIBaseURL, logger)
	if err != nil {
		return fmt.Errorf("failed to create search client: %w", err)
	}

	fetchPage := usecase.NewFetchPageUseCase(client, nil, logger)
	model := ui.NewTrendingViewModel(fetchPage, browser.NewOpener(), logger)

	logger.Info("starting", "version", version, "api_url", cfg.APIBaseURL, "theme", cfg.Theme)

	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithMouseCellMotion())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("UI error: %w", err)
	}
	return nil
}
