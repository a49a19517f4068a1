// Package migrations holds the PostgreSQL schema for the saved-article store.
package migrations

import "embed"

// FS contains NNN_name.up.sql / NNN_name.down.sql pairs at its root.
//
//go:embed *.sql
var FS embed.FS
