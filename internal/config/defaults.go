package config

// Config holds all application configuration values.
// Defaults are set in DefaultConfig() and can be overridden via dotfile.
// NOTE: Values in config files override defaults, including explicit zero values.
// Missing keys are left at their default values.
type Config struct {
	Model ModelConfig `json:"model"`
	Chat  ChatConfig  `json:"chat"`
	Tools ToolsConfig `json:"tools"`
}

type ModelConfig struct {
	Name string `json:"name"` // Default: "gemini-2.0-flash"
}

type ChatConfig struct {
	HistoryLimit int  `json:"history_limit"` // Default: 10 (5 user/model pairs)
	EnableTools  bool `json:"enable_tools"`  // Default: true
}

type ToolsConfig struct {
	// File operations
	MaxFileSize int64 `json:"max_file_size"` // Default: 20 * 1024 * 1024 (20MB)

	// Directory listing / file finding
	DefaultListLimit int `json:"default_list_limit"` // Default: 200
	MaxListLimit     int `json:"max_list_limit"`     // Default: 2000

	// Content search
	DefaultSearchLimit int `json:"default_search_limit"` // Default: 100
	MaxSearchLimit     int `json:"max_search_limit"`     // Default: 1000
	MaxLineLength      int `json:"max_line_length"`      // Default: 2000

	// Git log
	DefaultGitLogLimit int `json:"default_git_log_limit"` // Default: 10

	// Diagnostics
	DiagnosticsCommand []string `json:"diagnostics_command"` // Default: ["go", "vet", "./..."]
	DiagnosticsTimeout int      `json:"diagnostics_timeout"` // Default: 120 (seconds)
}

// DefaultConfig returns the default configuration.
func DefaultConfig() *Config {
	return &Config{
		Model: ModelConfig{
			Name: "gemini-2.0-flash",
		},
		Chat: ChatConfig{
			HistoryLimit: 10,
			EnableTools:  true,
		},
		Tools: ToolsConfig{
			MaxFileSize:        20 * 1024 * 1024,
			DefaultListLimit:   200,
			MaxListLimit:       2000,
			DefaultSearchLimit: 100,
			MaxSearchLimit:     1000,
			MaxLineLength:      2000,
			DefaultGitLogLimit: 10,
			DiagnosticsCommand: []string{"go", "vet", "./..."},
			DiagnosticsTimeout: 120,
		},
	}
}
