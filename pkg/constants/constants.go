package constants

// Config file lookup
const (
	// DefaultConfigName is the file name searched for when --config is omitted
	DefaultConfigName = "combokey.yaml"
	// UserConfigDir is the config directory under $HOME
	UserConfigDir = ".config/combokey"
	// SystemConfigDir is the system-wide config directory
	SystemConfigDir = "/etc/combokey"
)

// Expansion limits
const (
	// MaxSpellingsPerBinding caps the number of literal spellings one binding may expand to
	MaxSpellingsPerBinding = 4096
	// MaxTableBuildWorkers is the number of bindings expanded concurrently
	MaxTableBuildWorkers = 8
)

// Suggestions
const (
	// MinSuggestTokenLength is the shortest unknown token checked for misspelled aliases
	MinSuggestTokenLength = 3
	// MaxSuggestions is the number of "did you mean" candidates reported per token
	MaxSuggestions = 3
)

// Logging defaults
const (
	// DefaultLogLevel is the default logrus level
	DefaultLogLevel = "info"
	// DefaultLogMaxSize is the default maximum log file size in MB
	DefaultLogMaxSize = 100
	// DefaultLogMaxBackups is the default number of rotated files kept
	DefaultLogMaxBackups = 5
	// DefaultLogMaxAge is the default maximum number of days to retain old logs
	DefaultLogMaxAge = 30
	// LogNamePrefix prefixes component names in log output
	LogNamePrefix = "combokey"
)
