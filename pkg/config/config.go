package config

// Config is charon's complete configuration
type Config struct {
	Locations Locations    `koanf:"locations" toml:"locations"`
	Record    RecordConfig `koanf:"record" toml:"record"`
	Run       RunConfig    `koanf:"run" toml:"run"`
	Output    OutputConfig `koanf:"output" toml:"output"`
}

// Locations holds the base directories behind the destination shortcuts
type Locations struct {
	Alias       string `koanf:"alias" toml:"alias"`
	Bin         string `koanf:"bin" toml:"bin"`
	Config      string `koanf:"config" toml:"config"`
	Data        string `koanf:"data" toml:"data"`
	Lib         string `koanf:"lib" toml:"lib"`
	LocalConfig string `koanf:"local_config" toml:"local_config"`
	LocalData   string `koanf:"local_data" toml:"local_data"`
}

// RecordConfig controls where baseline records are kept
type RecordConfig struct {
	Dir             string `koanf:"dir" toml:"dir"`
	Extension       string `koanf:"extension" toml:"extension"`
	DryRunExtension string `koanf:"dry_run_extension" toml:"dry_run_extension"`
}

// RunConfig holds the defaults of an install run
type RunConfig struct {
	RemoveOrphans bool `koanf:"remove_orphans" toml:"remove_orphans"`
	Quiet         bool `koanf:"quiet" toml:"quiet"`
	SortSources   bool `koanf:"sort_sources" toml:"sort_sources"`
}

// OutputConfig controls stdout rendering
type OutputConfig struct {
	Format string `koanf:"format" toml:"format"`
}
