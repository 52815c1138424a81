// Shared helpers for pantry CLI commands.
package main

import (
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mesh-intelligence/pantry/pkg/pantry"
	"github.com/mesh-intelligence/pantry/pkg/types"
)

// validCollectionsStr is a comma-separated list of collection names for
// error output.
var validCollectionsStr = strings.Join(types.Collections(), ", ")

// openStore resolves the data directory and opens the configured
// backend. The caller must defer s.Close().
func openStore() (types.Store, error) {
	dataDir, err := resolveDataDir()
	if err != nil {
		return nil, fmt.Errorf("resolve data dir: %w", err)
	}

	cfg := types.Config{
		Backend:   configBackend,
		DataDir:   dataDir,
		KeyPrefix: configKeyPrefix,
	}

	s, err := pantry.Open(cfg)
	if err != nil {
		return nil, fmt.Errorf("open store: %w", err)
	}
	return s, nil
}

// collectionRecords reads the named collection through its repository,
// returning records as any-slices ready for JSON output. The settings
// singleton is returned as a one-element slice.
func collectionRecords(s types.Store, name string) ([]any, error) {
	switch name {
	case types.CollectionArticles:
		return toAny(s.Articles().All())
	case types.CollectionPages:
		return toAny(s.Pages().All())
	case types.CollectionCategories:
		return toAny(s.Categories().All())
	case types.CollectionEvents:
		return toAny(s.Events().All())
	case types.CollectionMedia:
		return toAny(s.Media().All())
	case types.CollectionUsers:
		return toAny(s.Users().All())
	case types.CollectionRoles:
		return toAny(s.Roles().All())
	case types.CollectionSettings:
		doc, err := s.Settings().Get()
		if err != nil {
			return nil, err
		}
		return []any{doc}, nil
	default:
		return nil, fmt.Errorf("unknown collection %q (valid: %s)", name, validCollectionsStr)
	}
}

// toAny converts a typed record slice to []any, forwarding errors.
func toAny[T any](items []T, err error) ([]any, error) {
	if err != nil {
		return nil, err
	}
	out := make([]any, len(items))
	for i, item := range items {
		out[i] = item
	}
	return out, nil
}

// printJSON writes v to stdout as indented JSON.
func printJSON(v any) error {
	data, err := json.MarshalIndent(v, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal output: %w", err)
	}
	fmt.Println(string(data))
	return nil
}
