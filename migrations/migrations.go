// Package migrations embeds the ordered SQL schema migrations.
//
// Files follow golang-migrate naming: <timestamp>_<title>.up.sql and a matching
// .down.sql that reverses it.
package migrations

import "embed"

//go:embed *.sql
var FS embed.FS
