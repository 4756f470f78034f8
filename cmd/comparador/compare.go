package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/lewtec/comparador/internal/compare"
)

// compareCmd represents the compare command
var compareCmd = &cobra.Command{
	Use:   "compare <method> <reference> <candidate>",
	Short: "Compare two local image files",
	Long: `Run the comparison engine on two local files, without the HTTP
layer or the database.

Methods: hash, normalized_hash, perceptual, content.

Example:
  comparador compare perceptual original.png reencoded.jpg`,
	Args: cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		method, err := compare.ParseMethod(args[0])
		if err != nil {
			return err
		}

		reference, err := os.ReadFile(args[1])
		if err != nil {
			return fmt.Errorf("failed to read reference: %w", err)
		}
		candidate, err := os.ReadFile(args[2])
		if err != nil {
			return fmt.Errorf("failed to read candidate: %w", err)
		}

		result, err := compare.Compare(method, reference, candidate)
		if err != nil {
			return err
		}

		verdict := "not same"
		if result.Same {
			verdict = "same"
		}
		fmt.Printf("method:   %s\n", result.Method)
		fmt.Printf("verdict:  %s\n", verdict)
		if result.SimilarityScore != nil {
			fmt.Printf("score:    %.4f\n", *result.SimilarityScore)
		}
		if result.HammingDistance != nil {
			fmt.Printf("distance: %d\n", *result.HammingDistance)
		}
		if result.Correlation != nil {
			fmt.Printf("corr:     %.4f\n", *result.Correlation)
		}
		fmt.Printf("note:     %s\n", result.Note)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(compareCmd)
}
