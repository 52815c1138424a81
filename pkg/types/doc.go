// Package types defines the Store and KV interfaces, entity records,
// patch types, and standard error values for the Pantry content store.
package types
