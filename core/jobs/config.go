package jobs

// Config holds configuration for the sync jobs.
type Config struct {
	// ChunkSize is the number of posts whose comments are fetched concurrently during bootstrap.
	ChunkSize int `mapstructure:"chunk_size" default:"20"`
	// IntervalSeconds schedules a reconcile run every N seconds in the start command (0 disables it).
	IntervalSeconds int `mapstructure:"interval_seconds" default:"0"`
	// ReportDir is where the CLI writes JSON reports when --json is given.
	ReportDir string `mapstructure:"report_dir" default:"."`
}
