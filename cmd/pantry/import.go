// Import command restores a backup into the store.
package main

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var importCmd = &cobra.Command{
	Use:   "import <file>",
	Short: "Restore a backup from a JSON file",
	Long: `Import overwrites collections key-by-key from a backup file produced
by export. Keys that do not belong to the store are ignored; payloads
are written without interpretation.

Example:
  pantry import backup.json`,
	Args: cobra.ExactArgs(1),
	RunE: runImport,
}

func runImport(cmd *cobra.Command, args []string) error {
	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("read backup: %w", err)
	}

	var backup map[string]json.RawMessage
	if err := json.Unmarshal(data, &backup); err != nil {
		return fmt.Errorf("parse backup: %w", err)
	}

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	if err := s.Import(backup); err != nil {
		return fmt.Errorf("import: %w", err)
	}

	fmt.Println("Backup restored from", args[0])
	return nil
}
