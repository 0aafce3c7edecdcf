package statusline

import (
	"encoding/json"
	"io"
	"os"
	"path/filepath"
)

// HookEventName is the hook event this output answers.
const HookEventName = "PreToolUse"

// StatePathFromProject is where the game writes its state under a project directory.
var StatePathFromProject = filepath.Join("game", "agent_state.json")

// HookOutput is the JSON envelope the agent host reads from stdout.
type HookOutput struct {
	HookSpecificOutput HookSpecific `json:"hookSpecificOutput"`
}

// HookSpecific carries the context injected ahead of the tool call.
type HookSpecific struct {
	HookEventName     string `json:"hookEventName"`
	AdditionalContext string `json:"additionalContext"`
}

// NewHookOutput wraps a status line for the agent host.
func NewHookOutput(line string) HookOutput {
	return HookOutput{
		HookSpecificOutput: HookSpecific{
			HookEventName:     HookEventName,
			AdditionalContext: prefix + line,
		},
	}
}

// Write encodes the envelope as a single JSON object.
func (h HookOutput) Write(w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetEscapeHTML(false)
	return enc.Encode(h)
}

// ResolveStatePath finds the state file from the project directory, or
// from the parent of the executable's directory when projectDir is empty.
func ResolveStatePath(projectDir string) (string, error) {
	if projectDir == "" {
		exe, err := os.Executable()
		if err != nil {
			return "", err
		}
		projectDir = filepath.Dir(filepath.Dir(exe))
	}
	return filepath.Join(projectDir, StatePathFromProject), nil
}
