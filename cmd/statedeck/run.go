package main

import (
	"fmt"
	"io"
	"os"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/alexisbeaulieu97/statedeck/internal/items"
	"github.com/alexisbeaulieu97/statedeck/internal/metrics"
	"github.com/alexisbeaulieu97/statedeck/internal/tui/dashboard"
)

func newRunCmd(flags *rootFlags) *cobra.Command {
	return &cobra.Command{
		Use:   "run",
		Short: "Launch the interactive dashboard",
		Long: `Launch the interactive dashboard. When stdout is not a terminal the
demo sequence is printed instead.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runDashboard(cmd, flags)
		},
	}
}

func runDashboard(cmd *cobra.Command, flags *rootFlags) error {
	out := cmd.OutOrStdout()
	interactive := isTerminal(out)

	app, err := loadApp(cmd, flags, !interactive)
	if err != nil {
		return err
	}
	defer app.Close() //nolint:errcheck

	ctx, log := app.CommandContext(cmd, "command.run")

	if !interactive {
		log.Info(ctx, "stdout is not a terminal, printing demo instead")
		return renderDemo(out, runDemoSequence(app.NewState(ctx)), formatYAML)
	}

	if addr := app.Config.Metrics.Addr; addr != "" {
		if _, err := metrics.NewServer(addr, app.Registry, log).Start(ctx); err != nil {
			return fmt.Errorf("start metrics server: %w", err)
		}
	}

	container := app.NewState(ctx)
	model := dashboard.NewModel(dashboard.Deps{
		Ctx:       ctx,
		State:     container.Handles(),
		Restorer:  container,
		Items:     items.NewGenerator(app.Config.Items.Seed),
		Publisher: app.Events,
		Logger:    log.With("component", "dashboard"),
	}, dashboard.Options{
		InitialItems: app.Config.Items.InitialCount,
		BatchSize:    app.Config.Items.BatchSize,
		PageSize:     app.Config.Items.PageSize,
		UseUnicode:   app.Config.UI.UseUnicode,
	})
	defer model.Close()

	log.Info(ctx, "launching dashboard")
	program := tea.NewProgram(model, tea.WithAltScreen(), tea.WithContext(ctx))
	if _, err := program.Run(); err != nil {
		log.Error(ctx, "dashboard execution failed", "error", err)
		return fmt.Errorf("run dashboard: %w", err)
	}
	log.Info(ctx, "dashboard closed")
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}
