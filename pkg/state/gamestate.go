package state

import "strings"

// Context markers the game writes into the "context" field.
const (
	ContextDialogue = "dialogue"
	ContextCombat   = "gameplay_combat"
)

// Doc is a decoded game-state document as the game dumps it.
// The game owns the schema, so fields are read through accessors that
// default instead of failing when a value is missing or mistyped.
type Doc map[string]any

// AsDoc narrows a decoded value to a Doc.
func AsDoc(v any) (Doc, bool) {
	switch m := v.(type) {
	case map[string]any:
		return Doc(m), true
	case Doc:
		return m, true
	}
	return nil, false
}

// Map returns the object stored at key, or an empty Doc.
func (d Doc) Map(key string) Doc {
	m, _ := AsDoc(d[key])
	return m
}

// List returns the array stored at key, or nil.
func (d Doc) List(key string) []any {
	return Coerce[[]any](d[key], nil)
}

// Text returns the scalar at key rendered for display, or def.
func (d Doc) Text(key, def string) string {
	return Text(d[key], def)
}

// Path walks nested objects, e.g. d.Path("character", "derived_stats").
func (d Doc) Path(keys ...string) Doc {
	cur := d
	for _, k := range keys {
		cur = cur.Map(k)
	}
	return cur
}

// Context returns the raw context string ("" when absent).
func (d Doc) Context() string {
	return d.Text("context", "")
}

// InContext reports whether the context contains marker. The game composes
// contexts like "gameplay_dialogue_barter", so this is containment, not equality.
func (d Doc) InContext(marker string) bool {
	return strings.Contains(d.Context(), marker)
}

// MapName returns map.name, or "?".
func (d Doc) MapName() string {
	return d.Map("map").Text("name", "?")
}
