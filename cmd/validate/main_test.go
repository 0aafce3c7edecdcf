package main

import (
	"bytes"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/agent-bridge/internal/config"
)

func runValidate(t *testing.T, args ...string) (string, int) {
	t.Helper()
	var out bytes.Buffer
	cmd := newValidateCmd(&config.Config{StatePath: filepath.Join(t.TempDir(), "unset.json")})
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)

	err := cmd.Execute()
	if err == nil {
		return out.String(), exitOK
	}
	var ee *exitError
	require.True(t, errors.As(err, &ee), "unexpected error: %v", err)
	return out.String(), ee.code
}

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestValidate_ExitCodes(t *testing.T) {
	tests := []struct {
		name     string
		content  string
		wantCode int
		wantOut  string
	}{
		{
			name:     "valid",
			content:  `{"context":"gameplay_dialogue","dialogue":{"speaker_name":"Killian","options":[]}}`,
			wantCode: exitOK,
			wantOut:  "OK: state schema contracts passed\n",
		},
		{
			name:     "missing dialogue",
			content:  `{"context":"gameplay_dialogue"}`,
			wantCode: exitViolations,
			wantOut:  "FAIL: schema contract violations\n  - dialogue: required object when context contains 'dialogue'\n",
		},
		{
			name:     "all violations reported",
			content:  `{"quests":[{"completed":"no"},3]}`,
			wantCode: exitViolations,
		},
		{
			name:     "array root",
			content:  `[]`,
			wantCode: exitUnreadable,
			wantOut:  "FAIL: root must be a JSON object\n",
		},
		{
			name:     "invalid json",
			content:  `{"context":`,
			wantCode: exitUnreadable,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, code := runValidate(t, "--state", writeFile(t, "agent_state.json", tt.content))
			assert.Equal(t, tt.wantCode, code)
			if tt.wantOut != "" {
				assert.Equal(t, tt.wantOut, out)
			}
		})
	}
}

func TestValidate_MissingFile(t *testing.T) {
	out, code := runValidate(t, "--state", filepath.Join(t.TempDir(), "missing.json"))
	assert.Equal(t, exitUnreadable, code)
	assert.Contains(t, out, "FAIL: unable to read state file: ")
}

func TestValidate_ExtensionSchema(t *testing.T) {
	statePath := writeFile(t, "agent_state.json", `{"context":"gameplay_dialogue","map":{}}`)
	schemaPath := writeFile(t, "extra.json", `{"type":"object","properties":{"map":{"type":"object","required":["name"]}}}`)

	out, code := runValidate(t, "--state", statePath, "--schema", schemaPath)
	assert.Equal(t, exitViolations, code)
	assert.Contains(t, out, "  - dialogue: required object when context contains 'dialogue'\n")
	assert.Contains(t, out, "  - map: ")

	_, code = runValidate(t, "--state", statePath, "--schema", filepath.Join(t.TempDir(), "nope.json"))
	assert.Equal(t, exitUnreadable, code)
}
