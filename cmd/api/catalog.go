package main

import (
	"bytes"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/AlexeyAndrrr/konoramenidk/internal/config"
	"github.com/AlexeyAndrrr/konoramenidk/internal/menu"
	"github.com/AlexeyAndrrr/konoramenidk/internal/storage"

	"github.com/spf13/cobra"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Manage the menu catalog",
}

func newCatalogPushCmd() *cobra.Command {
	var key string

	cmd := &cobra.Command{
		Use:   "push <file>",
		Short: "Validate a catalog file and upload it to the R2 bucket",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			path := args[0]

			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			items, err := menu.DecodeCatalog(filepath.Base(path), data)
			if err != nil {
				return err
			}

			cfg, err := config.Load()
			if err != nil {
				return err
			}
			if !cfg.R2.Enabled() {
				return fmt.Errorf("R2_BUCKET_NAME and R2_ENDPOINT must be set")
			}
			if key == "" {
				key = cfg.Catalog.ObjectKey
			}
			if err := checkObjectKey(path, key); err != nil {
				return err
			}

			client, err := storage.NewR2Client(cmd.Context(), storage.R2Config(cfg.R2))
			if err != nil {
				return err
			}

			url, err := client.Upload(cmd.Context(), key, bytes.NewReader(data), contentType(path))
			if err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "uploaded %d items to %s\n", len(items), url)
			return nil
		},
	}

	cmd.Flags().StringVar(&key, "key", "", "object key (defaults to CATALOG_OBJECT_KEY)")
	return cmd
}

// checkObjectKey makes sure the r2 catalog source can decode what is
// uploaded under key: the key needs a catalog extension of the same format
// as the file.
func checkObjectKey(path, key string) error {
	if err := menu.ValidateFileExtension(key); err != nil {
		return fmt.Errorf("object key %q: %w", key, err)
	}
	if catalogFormat(path) != catalogFormat(key) {
		return fmt.Errorf("object key %q does not match the format of %s", key, filepath.Base(path))
	}
	return nil
}

func catalogFormat(name string) string {
	if strings.EqualFold(filepath.Ext(name), ".json") {
		return "json"
	}
	return "yaml"
}

func contentType(path string) string {
	if catalogFormat(path) == "json" {
		return "application/json"
	}
	return "application/yaml"
}

func init() {
	catalogCmd.AddCommand(newCatalogPushCmd())
	rootCmd.AddCommand(catalogCmd)
}
