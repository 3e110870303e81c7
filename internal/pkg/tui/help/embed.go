// Package help embeds the markdown help page shown by the firing
// squad viewer.
package help

import "embed"

//go:embed *.md
var Files embed.FS
