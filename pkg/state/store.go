package state

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/google/uuid"
)

var (
	// ErrUnreadable is returned by ReadMapping when the file cannot be read or parsed.
	ErrUnreadable = errors.New("unable to read state file")
	// ErrNotObject is returned by ReadMapping when the JSON root is not an object.
	ErrNotObject = errors.New("root must be a JSON object")
)

// LoadMapping reads a JSON object from path. A missing file, malformed JSON,
// or a non-object root all yield an empty Doc.
func LoadMapping(path string) Doc {
	doc, err := ReadMapping(path)
	if err != nil {
		slog.Debug("Using empty state document", "path", path, "error", err)
		return Doc{}
	}
	return doc
}

// ReadMapping is the strict form of LoadMapping for callers that must report
// why a state file could not be used.
func ReadMapping(path string) (Doc, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrUnreadable, err)
	}

	m, ok := root.(map[string]any)
	if !ok {
		return nil, ErrNotObject
	}
	return Doc(m), nil
}

// LoadSequence reads a JSON array from path, or returns an empty slice.
func LoadSequence(path string) []any {
	data, err := os.ReadFile(path)
	if err != nil {
		if !os.IsNotExist(err) {
			slog.Warn("Failed to read sequence file", "path", path, "error", err)
		}
		return []any{}
	}

	var root any
	if err := json.Unmarshal(data, &root); err != nil {
		slog.Debug("Ignoring malformed sequence file", "path", path, "error", err)
		return []any{}
	}

	seq, ok := root.([]any)
	if !ok {
		slog.Debug("Ignoring non-array sequence file", "path", path)
		return []any{}
	}
	return seq
}

// SaveSequence writes seq to path as compact JSON. The data goes to a sibling
// temp file first and is renamed over path, so readers never see a partial file.
func SaveSequence(path string, seq []any) error {
	if seq == nil {
		seq = []any{}
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(seq); err != nil {
		return fmt.Errorf("failed to marshal sequence: %w", err)
	}
	data := bytes.TrimRight(buf.Bytes(), "\n")

	tmp := filepath.Join(filepath.Dir(path), "."+filepath.Base(path)+"."+uuid.NewString()+".tmp")
	if err := os.WriteFile(tmp, data, 0644); err != nil {
		return fmt.Errorf("failed to write %s: %w", tmp, err)
	}
	if err := os.Rename(tmp, path); err != nil {
		_ = os.Remove(tmp)
		return fmt.Errorf("failed to replace %s: %w", path, err)
	}
	return nil
}
