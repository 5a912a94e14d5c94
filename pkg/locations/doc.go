// Package locations resolves the symbolic installation locations that a
// manifest can name as destinations ("$C", "BIN", "~", ...).
//
// Each location has a base path taken from configuration (pkg/config) which a
// MYTHOS_<NAME>_DIR environment variable overrides. The home location is the
// user's home directory. "~" and "$HOME" in configured paths are expanded.
//
//	Shortcut                  Env var                   Default
//	$A  $ALIAS                MYTHOS_ALIAS_DIR          /etc/profile.d
//	$B  $BIN                  MYTHOS_BIN_DIR            /bin
//	$C  $CONFIG               MYTHOS_CONFIG_DIR         /etc/mythos
//	$D  $DATA                 MYTHOS_DATA_DIR           /usr/share/mythos
//	$LB $LIB                  MYTHOS_LIB_DIR            /usr/lib/mythos
//	$LC $LCONFIG LOCALCONFIG  MYTHOS_LOCAL_CONFIG_DIR   $XDG_CONFIG_HOME/mythos
//	$LD $LDATA   LOCALDATA    MYTHOS_LOCAL_DATA_DIR     $XDG_DATA_HOME/mythos
//	$HOME ~                   HOME                      user home
//
// The leading "$" is optional.
package locations
