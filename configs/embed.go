// Package configs embeds the default YAML tuning shipped with every binary.
package configs

import "embed"

//go:embed *.yaml
var FS embed.FS
