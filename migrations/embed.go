// Package migrations embeds the SQL migration files so they can be applied
// through the goose provider API by the CLI, the test suites and the e2e run.
package migrations

import "embed"

// FS holds all *.sql migration files embedded at compile time.
//
//go:embed *.sql
var FS embed.FS
