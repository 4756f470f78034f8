package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/lewtec/comparador/internal/repository"
)

// listCmd represents the list command
var listCmd = &cobra.Command{
	Use:   "list",
	Short: "List stored reference images",
	RunE: func(cmd *cobra.Command, args []string) error {
		config, err := loadConfig(cmd)
		if err != nil {
			return err
		}

		db, err := openDatabase(config.DatabasePath)
		if err != nil {
			return err
		}
		defer db.Close()

		repo := repository.NewImageRepository(db)
		images, err := repo.List(cmd.Context())
		if err != nil {
			return fmt.Errorf("failed to list images: %w", err)
		}

		for _, img := range images {
			fmt.Printf("%s\t%s\t%s\t%s\n", img.ID, img.UploadedAt.Format("2006-01-02 15:04:05"), img.Filename, img.Name)
		}
		fmt.Printf("%d image(s)\n", len(images))
		return nil
	},
}

func init() {
	rootCmd.AddCommand(listCmd)
}
