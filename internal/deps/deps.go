// Package deps reports the availability of the external binaries squeeze
// drives.
package deps

import (
	"fmt"
	"os/exec"
	"runtime"
	"strings"
)

// Requirement defines an external dependency squeeze relies on.
type Requirement struct {
	Name        string
	Command     string
	Description string
	Optional    bool
}

// Status reports the availability of a dependency.
type Status struct {
	Name        string
	Command     string
	Description string
	Optional    bool
	Available   bool
	Detail      string
}

// Defaults returns the requirements for a compression run with the given
// tool paths. Empty paths fall back to the conventional binary names.
func Defaults(ffmpegBinary, ffprobeBinary string) []Requirement {
	if strings.TrimSpace(ffmpegBinary) == "" {
		ffmpegBinary = "ffmpeg"
	}
	if strings.TrimSpace(ffprobeBinary) == "" {
		ffprobeBinary = "ffprobe"
	}
	requirements := []Requirement{
		{Name: "FFmpeg", Command: ffmpegBinary, Description: "Transcoding engine"},
		{Name: "FFprobe", Command: ffprobeBinary, Description: "Media inspector"},
	}
	if runtime.GOOS == "darwin" {
		requirements = append(requirements, Requirement{
			Name:        "osascript",
			Command:     "osascript",
			Description: "Clipboard copy (--copy)",
			Optional:    true,
		})
	} else {
		requirements = append(requirements,
			Requirement{Name: "wl-copy", Command: "wl-copy", Description: "Clipboard copy on Wayland (--copy)", Optional: true},
			Requirement{Name: "xclip", Command: "xclip", Description: "Clipboard copy on X11 (--copy)", Optional: true},
		)
	}
	return requirements
}

// CheckBinaries evaluates the provided requirements and reports availability.
func CheckBinaries(requirements []Requirement) []Status {
	results := make([]Status, 0, len(requirements))
	for _, req := range requirements {
		cmd := strings.TrimSpace(req.Command)
		status := Status{
			Name:        req.Name,
			Command:     cmd,
			Description: strings.TrimSpace(req.Description),
			Optional:    req.Optional,
		}
		if cmd == "" {
			status.Detail = "command not configured"
			results = append(results, status)
			continue
		}
		if _, err := exec.LookPath(cmd); err != nil {
			status.Detail = fmt.Sprintf("binary %q not found", cmd)
			results = append(results, status)
			continue
		}
		status.Available = true
		results = append(results, status)
	}
	return results
}
