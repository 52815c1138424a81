// Get command retrieves a single record by id.
package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mesh-intelligence/pantry/pkg/types"
)

var getCmd = &cobra.Command{
	Use:   "get <collection> <id>",
	Short: "Get a record by id",
	Long: `Get prints the record with the given id from the named collection.

Example:
  pantry get articles 1
  pantry get roles role_admin
  pantry get pages about`,
	Args: cobra.ExactArgs(2),
	RunE: runGet,
}

func runGet(cmd *cobra.Command, args []string) error {
	collection, id := args[0], args[1]

	s, err := openStore()
	if err != nil {
		return err
	}
	defer s.Close()

	var record any
	switch collection {
	case types.CollectionArticles:
		record, err = s.Articles().Get(id)
	case types.CollectionPages:
		record, err = s.Pages().Get(id)
	case types.CollectionCategories:
		record, err = s.Categories().Get(id)
	case types.CollectionEvents:
		record, err = s.Events().Get(id)
	case types.CollectionMedia:
		record, err = s.Media().Get(id)
	case types.CollectionUsers:
		record, err = s.Users().Get(id)
	case types.CollectionRoles:
		record, err = s.Roles().Get(id)
	case types.CollectionSettings:
		return fmt.Errorf("settings is a singleton; use: pantry list settings")
	default:
		return fmt.Errorf("unknown collection %q (valid: %s)", collection, validCollectionsStr)
	}
	if err != nil {
		if errors.Is(err, types.ErrNotFound) {
			return fmt.Errorf("no %s record with id %q", collection, id)
		}
		return fmt.Errorf("get record: %w", err)
	}

	return printJSON(record)
}
