package core

// Config represents the complete combokey configuration structure
type Config struct {
	Delimiter      string              `yaml:"delimiter" validate:"required"`
	Aliases        map[string][]string `yaml:"aliases" validate:"dive,keys,required,lowercase,endkeys,dive,required"`
	ReplaceAliases bool                `yaml:"replace_aliases"` // Use aliases as-is instead of extending the built-in table
	Priority       []string            `yaml:"priority" validate:"min=1,dive,required"`
	Bindings       []BindingConfig     `yaml:"bindings" validate:"dive"`
	Logging        LoggingConfig       `yaml:"logging"`
}

// BindingConfig names a chord. Exactly one of Chord or Groups is set.
type BindingConfig struct {
	Name   string     `yaml:"name" validate:"required"`
	Chord  string     `yaml:"chord"`  // e.g. "ctrl-shift-p"; every alias of each modifier is accepted
	Groups [][]string `yaml:"groups"` // explicit alternatives per position, e.g. [["ctrl", "control"], ["s"]]
}

// LoggingConfig represents logging configuration
type LoggingConfig struct {
	Level        string `yaml:"level" validate:"omitempty,oneof=trace debug info warn warning error fatal panic"`
	File         string `yaml:"file"`                         // Log file path
	MaxSize      int    `yaml:"max_size" validate:"gte=0"`    // Single file max size in MB (default: 100)
	MaxBackups   int    `yaml:"max_backups" validate:"gte=0"` // Number of backups to keep (default: 5)
	MaxAge       int    `yaml:"max_age" validate:"gte=0"`     // Maximum days to retain (default: 30)
	Compress     bool   `yaml:"compress"`                     // Whether to compress old logs
	EnableStdout bool   `yaml:"enable_stdout"`                // Also write log lines to stderr
}

// Spelling is one row of a spelling table: a literal chord and what it stands for
type Spelling struct {
	Literal   string `json:"literal"`
	Canonical string `json:"canonical"`
	Binding   string `json:"binding"`
}
