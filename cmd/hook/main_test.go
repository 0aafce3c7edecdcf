package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jwebster45206/agent-bridge/pkg/statusline"
)

func setupProject(t *testing.T, content string) string {
	t.Helper()
	project := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(project, "game"), 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(project, "game", "agent_state.json"), []byte(content), 0o644))

	t.Setenv("CLAUDE_PROJECT_DIR", project)
	t.Setenv("BRIDGE_CONFIG", filepath.Join(project, "bridge.yaml"))
	return project
}

func TestRun_EmitsStatusLine(t *testing.T) {
	setupProject(t, `{"context":"gameplay_combat","combat":{"current_ap":3,"hostiles":[{"hp":10},{"hp":0}],"combat_round":2}}`)

	var out bytes.Buffer
	run(strings.NewReader(`{"tool_name":"Bash"}`), &out, time.Now())

	var got statusline.HookOutput
	require.NoError(t, json.Unmarshal(out.Bytes(), &got))
	assert.Equal(t, "PreToolUse", got.HookSpecificOutput.HookEventName)
	ctx := got.HookSpecificOutput.AdditionalContext
	assert.True(t, strings.HasPrefix(ctx, "[GAME] "))
	assert.Contains(t, ctx, "AP:3")
	assert.Contains(t, ctx, "enemies:1")
	assert.Contains(t, ctx, "round:2")
}

func TestRun_StaleStateIsSilent(t *testing.T) {
	setupProject(t, `{"context":"gameplay_exploration"}`)

	var out bytes.Buffer
	run(strings.NewReader(""), &out, time.Now().Add(time.Hour))
	assert.Empty(t, out.String())
}

func TestRun_MissingStateIsSilent(t *testing.T) {
	t.Setenv("CLAUDE_PROJECT_DIR", t.TempDir())
	t.Setenv("BRIDGE_CONFIG", filepath.Join(t.TempDir(), "bridge.yaml"))

	var out bytes.Buffer
	run(strings.NewReader("ignored"), &out, time.Now())
	assert.Empty(t, out.String())
}
