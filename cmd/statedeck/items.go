package main

import (
	"encoding/json"
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/alexisbeaulieu97/statedeck/internal/items"
	"github.com/alexisbeaulieu97/statedeck/internal/tui/components"
)

type itemsOptions struct {
	count      int
	offset     int
	seed       uint64
	filter     string
	jsonOutput bool
}

func newItemsCmd(flags *rootFlags) *cobra.Command {
	opts := &itemsOptions{}

	cmd := &cobra.Command{
		Use:   "items",
		Short: "Print generated catalogue items",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if opts.count < 0 || opts.offset < 0 {
				return fmt.Errorf("count and offset must not be negative")
			}
			if !cmd.Flags().Changed("seed") {
				app, err := loadApp(cmd, flags, true)
				if err != nil {
					return err
				}
				defer app.Close() //nolint:errcheck
				opts.seed = app.Config.Items.Seed
			}
			return runItems(cmd, opts)
		},
	}

	cmd.Flags().IntVarP(&opts.count, "count", "n", 10, "Number of items to generate")
	cmd.Flags().IntVar(&opts.offset, "offset", 0, "ID of the first item")
	cmd.Flags().Uint64Var(&opts.seed, "seed", 0, "Random seed (0 picks one)")
	cmd.Flags().StringVar(&opts.filter, "filter", "", "Only print items whose name or category contains this text")
	cmd.Flags().BoolVar(&opts.jsonOutput, "json", false, "Output in JSON format")

	return cmd
}

func runItems(cmd *cobra.Command, opts *itemsOptions) error {
	generated := items.NewGenerator(opts.seed).Generate(opts.count, opts.offset)
	list := items.Filter(generated, opts.filter)

	if opts.jsonOutput {
		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(list)
	}

	writer := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 4, 2, ' ', 0)
	fmt.Fprintln(writer, "ID\tNAME\tCATEGORY\tPRICE")
	for _, item := range list {
		fmt.Fprintf(writer, "%d\t%s\t%s\t%s\n", item.ID, item.Name, item.Category, components.Thousands(item.Price))
	}
	if err := writer.Flush(); err != nil {
		return err
	}

	summary := components.ItemSummary{
		Loaded:     len(generated),
		Matching:   len(list),
		TotalPrice: items.TotalPrice(list),
		Filter:     opts.filter,
	}
	_, err := fmt.Fprintln(cmd.OutOrStdout(), summary.View())
	return err
}
