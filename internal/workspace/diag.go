package workspace

import (
	"context"
	"fmt"
	"os/exec"
	"time"
)

// diagnostics runs the configured diagnostics command in the workspace
// root and returns its combined output. A non-zero exit is a finding, not
// a failure: the output (typically compiler or vet messages) is the point.
func (w *Workspace) diagnostics(ctx context.Context, params map[string]string) (any, error) {
	argv := w.cfg.Tools.DiagnosticsCommand
	if len(argv) == 0 {
		return nil, fmt.Errorf("no diagnostics command configured")
	}

	timeout := time.Duration(w.cfg.Tools.DiagnosticsTimeout) * time.Second
	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, argv[0], argv[1:]...)
	cmd.Dir = w.root

	out, err := cmd.CombinedOutput()
	if ctx.Err() == context.DeadlineExceeded {
		return nil, fmt.Errorf("diagnostics command timed out after %s", timeout)
	}
	if err != nil {
		if len(out) > 0 {
			return fmt.Sprintf("%s\n(exit: %v)", out, err), nil
		}
		return nil, fmt.Errorf("diagnostics command failed: %w", err)
	}

	if len(out) == 0 {
		return "no issues found", nil
	}
	return string(out), nil
}
