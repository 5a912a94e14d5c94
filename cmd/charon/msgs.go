package charon

// Short messages (one-liners)
const (
	// Command descriptions
	MsgRootShort       = "Install files into mythos locations from a .charon manifest"
	MsgInstallShort    = "Install the unit described by a manifest"
	MsgRecordShort     = "Show what the last run of a unit recorded"
	MsgLocationsShort  = "List destination shortcuts and where they point"
	MsgConfigShort     = "Print the effective configuration as TOML"
	MsgVersionShort    = "Print version information"
	MsgCompletionShort = "Generate shell completion script"
	MsgManShort        = "Generate man pages into a directory"

	// Status messages
	MsgDryRunNotice  = "\nDRY RUN - no changes were made, preview recorded in %s\n"
	MsgOrphansKept   = "%d orphan(s) left in place\n"
	MsgNoRecords     = "No records found."
	MsgRecordsHeader = "Recorded units:"
	MsgRecordItem    = "  %s\n"
	MsgManWritten    = "Man pages written to %s\n"

	// Flag descriptions
	MsgFlagVerbose     = "Increase verbosity (-v INFO, -vv DEBUG, -vvv TRACE)"
	MsgFlagDefaults    = "Print the built-in defaults instead of the effective configuration"
	MsgFlagConfig      = "Config file (default is $XDG_CONFIG_HOME/charon/config.toml)"
	MsgFlagFormat      = "Output format: auto, term or text"
	MsgFlagDryRun      = "Preview changes without executing them"
	MsgFlagNoRmOrphans = "Keep files the previous run installed but this one does not"
	MsgFlagQuiet       = "Do not print per-action output"
	MsgFlagRecordDry   = "Show the dry-run record instead of the real one"
	MsgFlagRecordFmt   = "Record output format: table, yaml or plain"

	// Error messages
	MsgErrLoadConfig   = "failed to load configuration: %w"
	MsgErrLocations    = "failed to resolve locations: %w"
	MsgErrRecordFormat = "unknown record format %q"
)

// Long messages
const (
	MsgRootLong = `charon installs the files of a unit into the mythos locations (bin, data,
config and friends) as described by the unit's .charon manifest.

Every run writes a record of the destinations it touched. On the next run,
anything the record lists that the manifest no longer installs is removed.

Run "charon help manifest" for the manifest format.`

	MsgInstallLong = `Install reads the manifest at PATH (a .charon file, or a directory holding
one; the current directory when omitted), installs every file it lists and
removes orphans left by the previous run.

With --dry-run nothing on disk changes except the dry-run record.`

	MsgInstallExample = `  charon install ~/src/mytool
  charon -n ./mytool.charon
  charon install --no-rm-orphans -q`
)
