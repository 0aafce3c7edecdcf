// Package statusline builds the compact one-line game status injected
// before every agent tool call.
package statusline

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	"github.com/jwebster45206/agent-bridge/pkg/state"
)

// StaleAfter is how old the state file may be before the game is assumed
// to have stopped writing it.
const StaleAfter = 30 * time.Second

const (
	unknown   = "?"
	separator = " | "
	prefix    = "[GAME] "
)

// Build returns the status line for the state file at path, or false when
// the line should be suppressed: the file is missing, stale relative to now,
// unparseable, or anything inside panics. It never returns an error.
func Build(path string, now time.Time) (line string, ok bool) {
	defer func() {
		if r := recover(); r != nil {
			slog.Error("Status line suppressed after panic", "path", path, "panic", r)
			line, ok = "", false
		}
	}()

	info, err := os.Stat(path)
	if err != nil || info.IsDir() {
		return "", false
	}
	if now.Sub(info.ModTime()) > StaleAfter {
		slog.Debug("State file is stale", "path", path, "mtime", info.ModTime())
		return "", false
	}

	doc, err := state.ReadMapping(path)
	if err != nil {
		slog.Debug("State file unusable", "path", path, "error", err)
		return "", false
	}
	return Compose(doc), true
}

// Compose renders the status parts of doc joined by " | ".
func Compose(doc state.Doc) string {
	stats := doc.Path("character", "derived_stats")
	player := doc.Map("player")
	ctx := doc.Text("context", unknown)

	parts := []string{
		fmt.Sprintf("HP:%s/%s", stats.Text("current_hp", unknown), stats.Text("max_hp", unknown)),
		doc.MapName(),
		"tile:" + player.Text("tile", unknown),
		ctx,
	}

	if state.Truthy(player["animation_busy"]) {
		parts = append(parts, "BUSY")
	}

	if strings.Contains(ctx, state.ContextCombat) {
		combat := doc.Map("combat")
		parts = append(parts,
			"AP:"+combat.Text("current_ap", unknown),
			fmt.Sprintf("enemies:%d", livingHostiles(combat.List("hostiles"))),
			"round:"+combat.Text("combat_round", unknown),
		)
	}

	if state.Truthy(doc["auto_combat"]) {
		parts = append(parts, "AUTO-COMBAT")
	}

	if strings.Contains(ctx, state.ContextDialogue) {
		dlg := doc.Map("dialogue")
		parts = append(parts,
			"NPC:"+dlg.Text("npc_name", unknown),
			fmt.Sprintf("options:%d", len(dlg.List("options"))),
		)
	}

	return strings.Join(parts, separator)
}

// livingHostiles counts hostiles with hp above zero. A missing hp counts as dead.
func livingHostiles(hostiles []any) int {
	n := 0
	for _, raw := range hostiles {
		h, ok := state.AsDoc(raw)
		if !ok {
			continue
		}
		if state.Float(h["hp"], 0) > 0 {
			n++
		}
	}
	return n
}
