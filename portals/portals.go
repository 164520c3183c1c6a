// Package portals bundles the portal definitions shipped with the service.
//
// Each portal lives in its own directory named after the portal id and holds
// a single config.json or config.yaml file.
//
// Both formats decode the same way. A missing key inherits from the base
// portal and the hard defaults, while an explicit null (YAML null, ~ or an
// empty value) overrides them. An empty map such as `query: {}` is kept as an
// empty, set value.
package portals

import "embed"

// FS holds the bundled portal definitions.
//
//go:embed */config.json */config.yaml
var FS embed.FS
