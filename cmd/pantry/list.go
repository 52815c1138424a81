// List command prints every record in a collection.
package main

import (
	"github.com/spf13/cobra"
)

var listCmd = &cobra.Command{
	Use:   "list <collection>",
	Short: "List all records in a collection",
	Long: `List prints every record in the named collection as JSON, in stored
order. The settings singleton lists as a single document.

Valid collections: articles, pages, categories, settings, users, roles,
events, media.

Example:
  pantry list articles
  pantry list roles`,
	Args: cobra.ExactArgs(1),
	RunE: runList,
}

func runList(cmd *cobra.Command, args []string) error {
	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	records, err := collectionRecords(s, args[0])
	if err != nil {
		return err
	}
	return printJSON(records)
}
