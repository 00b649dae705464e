package main

import (
	"encoding/json"
	"fmt"

	"github.com/AlexeyAndrrr/konoramenidk/internal/menu"

	"github.com/spf13/cobra"
)

func newFilterCmd() *cobra.Command {
	var (
		catalogPath string
		category    string
		spice       string
		price       string
	)

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Evaluate a filter selection against a catalog file",
		Long: `Evaluate a filter selection against a catalog file and print the
visible item ids, per-category counts and the empty flag as JSON.

Examples:
  # Cheap ramen
  kono filter --catalog data/menu.yaml --category ramen --price low

  # Everything new
  kono filter --catalog data/menu.yaml --category new`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sel, err := menu.ParseSelection(category, spice, price)
			if err != nil {
				return err
			}

			items, err := menu.NewFileSource(catalogPath).Load(cmd.Context())
			if err != nil {
				return err
			}

			for _, id := range menu.MalformedItems(items) {
				fmt.Fprintf(cmd.ErrOrStderr(), "warning: item %d has a malformed price\n", id)
			}

			out := struct {
				Selection menu.FilterSelection  `json:"selection"`
				Result    menu.EvaluationResult `json:"result"`
			}{sel, menu.Evaluate(items, sel)}

			enc := json.NewEncoder(cmd.OutOrStdout())
			enc.SetIndent("", "  ")
			return enc.Encode(out)
		},
	}

	cmd.Flags().StringVar(&catalogPath, "catalog", "./data/menu.yaml", "catalog file (.json, .yaml, .yml)")
	cmd.Flags().StringVar(&category, "category", menu.FilterAll, "category, \"new\" or \"all\"")
	cmd.Flags().StringVar(&spice, "spice", menu.FilterAll, "spice level or \"all\"")
	cmd.Flags().StringVar(&price, "price", string(menu.PriceAll), "price bucket: all, low, medium, high")

	return cmd
}

func init() {
	rootCmd.AddCommand(newFilterCmd())
}
