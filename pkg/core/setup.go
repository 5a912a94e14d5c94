package core

import (
	"path/filepath"

	"github.com/arthur-debert/charon/pkg/config"
	"github.com/arthur-debert/charon/pkg/locations"
	"github.com/arthur-debert/charon/pkg/record"
	"github.com/spf13/afero"
)

// recordSubdir is the directory under the data location holding records
const recordSubdir = "charon"

// RecordDir returns the configured record directory, defaulting to
// DATA/charon.
func RecordDir(cfg *config.Config, table *locations.Table) string {
	if cfg.Record.Dir != "" {
		return cfg.Record.Dir
	}
	return filepath.Join(table.Path(locations.Data), recordSubdir)
}

// NewStore builds the record store described by cfg
func NewStore(fs afero.Fs, cfg *config.Config, table *locations.Table) *record.Store {
	store := record.NewStore(fs, RecordDir(cfg, table))
	if cfg.Record.Extension != "" {
		store.Ext = cfg.Record.Extension
	}
	if cfg.Record.DryRunExtension != "" {
		store.DryRunExt = cfg.Record.DryRunExtension
	}
	return store
}
