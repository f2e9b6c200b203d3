package appfs

import "embed"

// FS holds the application's embedded assets: email templates and
// database migrations.
//go:embed templates migrations
var FS embed.FS
