package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/lewtec/comparador/internal/compare"
	"github.com/lewtec/comparador/internal/repository"
)

// ingestCmd represents the ingest command
var ingestCmd = &cobra.Command{
	Use:   "ingest <image-file> [name]",
	Short: "Store a local image file as a reference image",
	Long: `Store a local image file in the database so it can serve as the
reference side of /compare-image requests. Prints the assigned image ID.

Example:
  comparador ingest ./photos/sunset.jpg "sunset over the bay"`,
	Args: cobra.RangeArgs(1, 2),
	RunE: func(cmd *cobra.Command, args []string) error {
		imagePath := args[0]

		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if !config.ExtensionAllowed(imagePath) {
			return fmt.Errorf("file type not allowed: %s", imagePath)
		}

		data, err := os.ReadFile(imagePath)
		if err != nil {
			return fmt.Errorf("failed to read image: %w", err)
		}
		// Reject files that cannot serve as a comparison reference.
		if _, err := compare.Decode(data); err != nil {
			return fmt.Errorf("not a decodable image: %w", err)
		}

		filename := filepath.Base(imagePath)
		name := filename
		if len(args) == 2 {
			name = args[1]
		}

		db, err := openDatabase(config.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		img, err := repository.NewImageRepository(db).Save(cmd.Context(), name, filename, data)
		if err != nil {
			return fmt.Errorf("failed to store image: %w", err)
		}

		fmt.Printf("%s\n", img.ID)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(ingestCmd)
}
