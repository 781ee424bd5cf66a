// Package sqldocs distributes the tracker DDL from the docs tree so the
// database layout can be reviewed without reading Go source.
package sqldocs

import _ "embed"

// SQLite contains the tracker's SQLite DDL. The runtime applies its own
// copy; a parity test keeps the two from drifting apart.
//
//go:embed schema.sql
var SQLite string
