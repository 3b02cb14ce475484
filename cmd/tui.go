package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/jadipas/freddie/internal/session"
	"github.com/jadipas/freddie/internal/shared"
	"github.com/jadipas/freddie/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive terminal UI for set building.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	if r.catalog == nil {
		return fmt.Errorf("%w: catalog service not initialized", shared.ErrServiceUnavailable)
	}

	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger("./tmp/freddie-tui.log")
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	r.SetLogger(fileLogger)

	opts := session.Options{
		RecommendationCount:     r.config.UI.RecommendationCount,
		RecomputeInPlaylistView: r.config.UI.RecomputeInPlaylistView,
		SwitchViewOnMove:        r.config.UI.SwitchViewOnMove,
	}

	model := ui.NewModel(ctx, r.catalog, opts, fileLogger)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
