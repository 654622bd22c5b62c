// Package migrations embeds the goose SQL migrations. The server applies them
// at startup and the integration tests apply them in TestMain.
package migrations

import "embed"

// FS holds every *.sql migration file.
//
//go:embed *.sql
var FS embed.FS
