// Package catalog embeds the goose migrations for the catalog schema.
package catalog

import "embed"

// FS holds the numbered goose SQL files.
//
//go:embed *.sql
var FS embed.FS
