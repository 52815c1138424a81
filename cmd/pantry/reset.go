// Reset command clears all stored data.
package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var resetForce bool

var resetCmd = &cobra.Command{
	Use:   "reset",
	Short: "Factory-reset the store",
	Long: `Reset clears every stored collection. The next read reseeds the
default records. Requires --force; there is no undo.`,
	Args: cobra.NoArgs,
	RunE: runReset,
}

func init() {
	resetCmd.Flags().BoolVar(&resetForce, "force", false, "confirm the reset")
}

func runReset(cmd *cobra.Command, args []string) error {
	if !resetForce {
		return fmt.Errorf("reset is destructive; re-run with --force to confirm")
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Reset(); err != nil {
		return fmt.Errorf("reset: %w", err)
	}

	fmt.Println("Store reset; defaults will reseed on next read")
	return nil
}
