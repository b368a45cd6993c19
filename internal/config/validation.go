package config

import (
	"fmt"
	"strings"
)

// Validate checks config values for correctness.
// Returns an error listing every invalid value, not just the first.
func (c *Config) Validate() error {
	var errs []string

	if c.Model.Name == "" {
		errs = append(errs, "model.name must not be empty")
	}

	if c.Chat.HistoryLimit < 1 {
		errs = append(errs, "chat.history_limit must be >= 1")
	}

	if c.Tools.MaxFileSize < 1 {
		errs = append(errs, "tools.max_file_size must be >= 1")
	}
	if c.Tools.DefaultListLimit < 1 {
		errs = append(errs, "tools.default_list_limit must be >= 1")
	}
	if c.Tools.MaxListLimit < 1 {
		errs = append(errs, "tools.max_list_limit must be >= 1")
	}
	if c.Tools.DefaultSearchLimit < 1 {
		errs = append(errs, "tools.default_search_limit must be >= 1")
	}
	if c.Tools.MaxSearchLimit < 1 {
		errs = append(errs, "tools.max_search_limit must be >= 1")
	}
	if c.Tools.MaxLineLength < 1 {
		errs = append(errs, "tools.max_line_length must be >= 1")
	}
	if c.Tools.DefaultGitLogLimit < 1 {
		errs = append(errs, "tools.default_git_log_limit must be >= 1")
	}
	if len(c.Tools.DiagnosticsCommand) == 0 {
		errs = append(errs, "tools.diagnostics_command must not be empty")
	}
	if c.Tools.DiagnosticsTimeout < 1 {
		errs = append(errs, "tools.diagnostics_timeout must be >= 1")
	}

	// Semantic validation: Default <= Max constraints
	if c.Tools.DefaultListLimit > c.Tools.MaxListLimit {
		errs = append(errs, "tools.default_list_limit must be <= tools.max_list_limit")
	}
	if c.Tools.DefaultSearchLimit > c.Tools.MaxSearchLimit {
		errs = append(errs, "tools.default_search_limit must be <= tools.max_search_limit")
	}

	if len(errs) > 0 {
		return fmt.Errorf("invalid configuration:\n  %s", strings.Join(errs, "\n  "))
	}
	return nil
}
