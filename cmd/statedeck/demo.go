package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/alexisbeaulieu97/statedeck/internal/state"
	"github.com/alexisbeaulieu97/statedeck/pkg/diff"
)

const (
	formatYAML = "yaml"
	formatJSON = "json"
)

// demoEmail is the address used by the scripted login.
const demoEmail = "a@b.com"

type demoStep struct {
	Step  string         `json:"step" yaml:"step"`
	State state.Snapshot `json:"state" yaml:"state"`
}

func newDemoCmd(flags *rootFlags) *cobra.Command {
	var (
		format    string
		showDiffs bool
	)

	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Run a scripted login, theme toggle and dismiss against fresh state",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if format != formatYAML && format != formatJSON {
				return fmt.Errorf("unsupported format %q (want %s or %s)", format, formatYAML, formatJSON)
			}

			app, err := loadApp(cmd, flags, true)
			if err != nil {
				return err
			}
			defer app.Close() //nolint:errcheck

			ctx, log := app.CommandContext(cmd, "command.demo")
			steps := runDemoSequence(app.NewState(ctx))
			log.Debug(ctx, "demo finished", "steps", len(steps))
			if showDiffs {
				return renderDemoDiffs(cmd.OutOrStdout(), steps)
			}
			return renderDemo(cmd.OutOrStdout(), steps, format)
		},
	}

	cmd.Flags().StringVarP(&format, "format", "f", formatYAML, "Output format (yaml or json)")
	cmd.Flags().BoolVar(&showDiffs, "diff", false, "Print the initial state then a diff per step")

	return cmd
}

// runDemoSequence logs in, toggles the theme, then removes the login
// notification, capturing a snapshot after each step.
func runDemoSequence(c *state.Container) []demoStep {
	steps := []demoStep{{Step: "initial", State: c.Snapshot()}}

	c.UserOps().Login(demoEmail, "")
	steps = append(steps, demoStep{Step: "login", State: c.Snapshot()})

	c.ThemeOps().Toggle()
	steps = append(steps, demoStep{Step: "toggle theme", State: c.Snapshot()})

	if list := c.Notifications().Snapshot(); len(list) > 0 {
		c.NotificationOps().Remove(list[0].ID)
	}
	steps = append(steps, demoStep{Step: "dismiss notification", State: c.Snapshot()})

	return steps
}

func renderDemo(w io.Writer, steps []demoStep, format string) error {
	if format == formatJSON {
		data, err := json.MarshalIndent(steps, "", "  ")
		if err != nil {
			return fmt.Errorf("encode demo: %w", err)
		}
		_, err = fmt.Fprintln(w, string(data))
		return err
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(steps); err != nil {
		return fmt.Errorf("encode demo: %w", err)
	}
	return enc.Close()
}

// renderDemoDiffs prints the first snapshot as YAML followed by a line diff
// between each pair of consecutive snapshots.
func renderDemoDiffs(w io.Writer, steps []demoStep) error {
	docs := make([][]byte, len(steps))
	for i, step := range steps {
		doc, err := yaml.Marshal(step.State)
		if err != nil {
			return fmt.Errorf("encode %s snapshot: %w", step.Step, err)
		}
		docs[i] = doc
	}
	if len(docs) == 0 {
		return nil
	}

	if _, err := fmt.Fprintf(w, "# %s\n%s", steps[0].Step, docs[0]); err != nil {
		return err
	}
	for i := 1; i < len(docs); i++ {
		added, removed := diff.Changed(docs[i-1], docs[i])
		fmt.Fprintf(w, "\n# %s (+%d -%d)\n", steps[i].Step, added, removed)
		if _, err := io.WriteString(w, diff.Lines(docs[i-1], docs[i], steps[i-1].Step, steps[i].Step)); err != nil {
			return err
		}
	}
	return nil
}
