// Package migrations embeds the client's local schema migrations, applied
// with goose on startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
