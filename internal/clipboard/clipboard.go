// Package clipboard copies a finished output file to the system clipboard.
package clipboard

import (
	"context"
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

var commandContext = exec.CommandContext

// Copy places the file at path on the system clipboard. On macOS the file
// reference itself is copied via osascript; elsewhere the path is copied as
// text via wl-copy or xclip. A missing helper is reported as an error so the
// caller can downgrade it to a warning.
func Copy(ctx context.Context, path string) error {
	switch runtime.GOOS {
	case "darwin":
		return copyDarwin(ctx, path)
	default:
		return copyUnix(ctx, path)
	}
}

func copyDarwin(ctx context.Context, path string) error {
	if _, err := exec.LookPath("osascript"); err != nil {
		return fmt.Errorf("clipboard helper osascript not found")
	}
	script := fmt.Sprintf("set the clipboard to (POSIX file %q)", path)
	if output, err := commandContext(ctx, "osascript", "-e", script).CombinedOutput(); err != nil {
		return fmt.Errorf("osascript: %w: %s", err, output)
	}
	return nil
}

func copyUnix(ctx context.Context, path string) error {
	if _, err := exec.LookPath("wl-copy"); err == nil {
		cmd := commandContext(ctx, "wl-copy", "--", path)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("wl-copy: %w: %s", err, output)
		}
		return nil
	}
	if _, err := exec.LookPath("xclip"); err == nil {
		cmd := commandContext(ctx, "xclip", "-selection", "clipboard")
		cmd.Stdin = strings.NewReader(path)
		if output, err := cmd.CombinedOutput(); err != nil {
			return fmt.Errorf("xclip: %w: %s", err, output)
		}
		return nil
	}
	return fmt.Errorf("no clipboard helper found (wl-copy or xclip)")
}
