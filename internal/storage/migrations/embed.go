// Package migrations embeds the SQL migrations for the client-local
// database, applied with goose at startup.
package migrations

import "embed"

//go:embed *.sql
var Migrations embed.FS
