package main

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/desertthunder/cinevault/internal/notify"
	"github.com/desertthunder/cinevault/internal/shared"
	"github.com/desertthunder/cinevault/internal/ui"
	"github.com/urfave/cli/v3"
)

// TUI launches the interactive storefront.
func (r *Runner) TUI(ctx context.Context, cmd *cli.Command) error {
	// Redirect logs to file to avoid interfering with TUI rendering
	fileLogger, err := shared.NewFileLogger(cmd.String("log-file"))
	if err != nil {
		return fmt.Errorf("failed to create file logger: %w", err)
	}
	shared.SetLogLevel(fileLogger, r.config.Log.Level)
	r.SetLogger(fileLogger)

	notes := notify.NewRecorder()
	a, err := r.openApp(ctx, notify.Multi{notes, notify.NewLog(fileLogger)})
	if err != nil {
		return err
	}
	defer a.Close()

	model := ui.NewModel(ctx, a, notes)
	p := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}

	return nil
}
