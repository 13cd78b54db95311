package main

import (
	"fmt"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/reelkit/reel/internal/config"
	"github.com/reelkit/reel/internal/ui"
)

var version = "dev"

var (
	flagCount   int
	flagCommit  float64
	flagVim     bool
	flagNoMouse bool
)

func main() {
	root := &cobra.Command{
		Use:   "reel",
		Short: "Reel - infinite snap-scrolling windows",
		Long:  "Reel demo: two endless reels (a day strip and an integer column) you can drag, scroll, and step through without ever running out of items.",
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runTUI(cmd)
		},
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.Flags().IntVar(&flagCount, "count", 0, "visible items per reel (overrides config)")
	root.Flags().Float64Var(&flagCommit, "commit", 0, "fraction of an item a released drag must cover to commit (overrides config)")
	root.Flags().BoolVar(&flagVim, "vim", false, "enable hjkl stepping")
	root.Flags().BoolVar(&flagNoMouse, "no-mouse", false, "disable mouse capture")

	root.AddCommand(versionCmd())

	if err := root.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "error: %v\n", err)
		os.Exit(1)
	}
}

func init() {
	// Force truecolor so hex colors render correctly
	// Must be set before any lipgloss style initialization
	os.Setenv("COLORTERM", "truecolor")
}

func versionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print the version",
		Run: func(cmd *cobra.Command, _ []string) {
			fmt.Fprintf(cmd.OutOrStdout(), "reel %s\n", version)
		},
	}
}

func runTUI(cmd *cobra.Command) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cmd.Flags().Changed("count") {
		cfg.VisibleCount = flagCount
	}
	if cmd.Flags().Changed("commit") {
		cfg.CommitFraction = flagCommit
	}
	if cmd.Flags().Changed("vim") {
		cfg.VimKeys = flagVim
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	ui.SetAccent(cfg.Accent)

	app, err := ui.NewApp(cfg)
	if err != nil {
		return err
	}

	opts := []tea.ProgramOption{tea.WithAltScreen()}
	if cfg.Mouse && !flagNoMouse {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := tea.NewProgram(app, opts...)
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("tui error: %w", err)
	}
	return nil
}
