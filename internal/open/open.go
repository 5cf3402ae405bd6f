package open

import (
	"fmt"
	"os"
	"os/exec"
	"runtime"
	"strings"
)

// ShowImage opens path with viewer, or with the platform's default image
// handler when viewer is empty. It does not wait for the viewer to exit.
func ShowImage(path, viewer string) error {
	if _, err := os.Stat(path); err != nil {
		return fmt.Errorf("image not found: %s", path)
	}

	cmd := viewerCommand(viewer, path, runtime.GOOS)
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	if err := cmd.Start(); err != nil {
		return fmt.Errorf("start viewer %s: %w", cmd.Path, err)
	}
	return cmd.Process.Release()
}

func viewerCommand(viewer, path, goos string) *exec.Cmd {
	// allow "feh --scale-down" style commands
	if fields := strings.Fields(viewer); len(fields) > 0 {
		return exec.Command(fields[0], append(fields[1:], path)...)
	}

	switch goos {
	case "darwin":
		return exec.Command("open", path)
	case "windows":
		return exec.Command("cmd", "/c", "start", "", path)
	default:
		return exec.Command("xdg-open", path)
	}
}
