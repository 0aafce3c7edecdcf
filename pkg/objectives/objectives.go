// Package objectives reads the externally maintained sub-objectives file.
package objectives

import (
	"bufio"
	"log/slog"
	"os"
	"strings"
)

// Load returns the trimmed non-blank lines of the file at path, in order.
// A missing or unreadable file yields no objectives.
func Load(path string) []string {
	f, err := os.Open(path)
	if err != nil {
		slog.Debug("No objectives file", "path", path, "error", err)
		return nil
	}
	defer func() {
		_ = f.Close()
	}()

	var out []string
	scanner := bufio.NewScanner(f)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	for scanner.Scan() {
		if line := strings.TrimSpace(scanner.Text()); line != "" {
			out = append(out, line)
		}
	}
	if err := scanner.Err(); err != nil {
		slog.Warn("Failed to read objectives file", "path", path, "error", err)
	}
	return out
}

// Parse splits objectives text the same way Load does.
func Parse(text string) []string {
	var out []string
	for _, line := range strings.Split(text, "\n") {
		if line = strings.TrimSpace(line); line != "" {
			out = append(out, line)
		}
	}
	return out
}
