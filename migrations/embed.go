// Package migrations embeds per-dialect SQL migration files for the server, tests and tooling.
package migrations

import "embed"

//go:embed postgres/*.sql sqlite/*.sql
var FS embed.FS
