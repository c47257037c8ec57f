// Package docs bundles long-form Markdown documentation into the scd binary.
package docs

import "embed"

// FS contains the bundled documentation topics.
//
//go:embed *.md
var FS embed.FS
