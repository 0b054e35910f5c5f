package migrations

import "embed"

// Files holds the ordered schema migrations compiled into the binary,
// so a fresh database bootstraps without any files on disk.
//
//go:embed *.sql
var Files embed.FS
