package schema

import (
	"fmt"

	"github.com/jwebster45206/agent-bridge/pkg/state"
)

// ErrorRecord is one contract violation at a dotted document path.
type ErrorRecord struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

func (e ErrorRecord) String() string {
	return e.Path + ": " + e.Message
}

// Validate checks the dialogue and quest contracts on a state document.
// Both checks always run and every violation is reported.
func Validate(doc state.Doc) []ErrorRecord {
	v := &validator{}
	v.checkDialogue(doc)
	v.checkQuests(doc)
	return v.errors
}

type validator struct {
	errors []ErrorRecord
}

func (v *validator) addError(path, msg string) {
	v.errors = append(v.errors, ErrorRecord{Path: path, Message: msg})
}

// checkDialogue: a dialogue context requires a dialogue object; any dialogue
// object needs a string speaker_name, and options (when set) must be a list.
func (v *validator) checkDialogue(doc state.Doc) {
	dlg, isObject := state.AsDoc(doc["dialogue"])
	if doc.InContext(state.ContextDialogue) && !isObject {
		v.addError("dialogue", "required object when context contains 'dialogue'")
		return
	}
	if !isObject {
		return
	}

	v.ensureType(dlg, "speaker_name", "string", "dialogue")

	if opts, ok := dlg["options"]; ok && opts != nil {
		if _, isList := opts.([]any); !isList {
			v.addError("dialogue.options", "expected array, got "+TypeName(opts))
		}
	}
}

func (v *validator) checkQuests(doc state.Doc) {
	raw, ok := doc["quests"]
	if !ok || raw == nil {
		return
	}

	quests, isList := raw.([]any)
	if !isList {
		v.addError("quests", "expected array, got "+TypeName(raw))
		return
	}

	for i, q := range quests {
		path := fmt.Sprintf("quests[%d]", i)
		quest, isObject := state.AsDoc(q)
		if !isObject {
			v.addError(path, "expected object, got "+TypeName(q))
			continue
		}
		v.ensureType(quest, "location", "string", path)
		v.ensureType(quest, "description", "string", path)
		v.ensureType(quest, "completed", "boolean", path)
	}
}

func (v *validator) ensureType(obj state.Doc, key, want, path string) {
	val, ok := obj[key]
	if !ok {
		v.addError(path+"."+key, "missing")
		return
	}
	if got := TypeName(val); got != want {
		v.addError(path+"."+key, fmt.Sprintf("expected %s, got %s", want, got))
	}
}

// TypeName returns the JSON type name of a decoded value.
func TypeName(v any) string {
	switch v.(type) {
	case nil:
		return "null"
	case string:
		return "string"
	case bool:
		return "boolean"
	case float64, int, int64:
		return "number"
	case map[string]any, state.Doc:
		return "object"
	case []any:
		return "array"
	}
	return fmt.Sprintf("%T", v)
}
