package clipboard

import (
	"context"
	"os"
	"path/filepath"
	"runtime"
	"testing"
)

func TestCopyReportsMissingHelpers(t *testing.T) {
	if runtime.GOOS == "darwin" {
		t.Skip("relies on an empty PATH, not meaningful with osascript present")
	}

	// An empty PATH guarantees no helper binary resolves.
	t.Setenv("PATH", t.TempDir())

	err := Copy(context.Background(), filepath.Join(os.TempDir(), "clip.mp4"))
	if err == nil {
		t.Fatal("expected error when no clipboard helper is installed")
	}
}
