// Package config loads charon's configuration.
//
// Configuration is layered, later layers win:
//
//  1. built-in defaults (embedded/defaults.toml, plus XDG-derived local dirs)
//  2. the user config file ($XDG_CONFIG_HOME/charon/config.toml, .yaml or .yml,
//     or the file given with --config)
//  3. CHARON_ environment variables (CHARON_RUN_QUIET=true → run.quiet)
//  4. explicit overrides, used by the CLI for flags
//
// The MYTHOS_*_DIR variables are not read here; they are resolved by
// pkg/locations on top of the configured location bases.
package config
