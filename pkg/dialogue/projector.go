package dialogue

import (
	"github.com/jwebster45206/agent-bridge/pkg/state"
)

const (
	// MaxReplyLen bounds the NPC reply carried in a View.
	MaxReplyLen = 200
	// UnknownSpeaker is used when the dialogue names nobody.
	UnknownSpeaker = "Unknown"
	// MissingOptionText stands in for an option object without text.
	MissingOptionText = "?"
)

// Option is one numbered dialogue choice.
type Option struct {
	Index int
	Text  string
}

// View is the display-safe projection of the current dialogue turn.
type View struct {
	Speaker   string
	ReplyText string
	Options   []Option
	MapName   string
}

// IsEmpty reports whether there is nothing to react to this turn.
func (v View) IsEmpty() bool {
	return v.ReplyText == "" && len(v.Options) == 0
}

// Project extracts the current dialogue turn from a state document.
// Missing or mistyped fields fall back to defaults; it never fails.
func Project(doc state.Doc) View {
	dlg := doc.Map("dialogue")

	speaker := dlg.Text("speaker_name", "")
	if speaker == "" {
		speaker = dlg.Text("npc_name", UnknownSpeaker)
	}

	return View{
		Speaker:   speaker,
		ReplyText: state.Truncate(dlg.Text("reply_text", ""), MaxReplyLen),
		Options:   Options(dlg.List("options")),
		MapName:   doc.MapName(),
	}
}

// Options numbers the raw option list from zero.
func Options(raw []any) []Option {
	opts := make([]Option, 0, len(raw))
	for i, o := range raw {
		opts = append(opts, Option{Index: i, Text: OptionText(o)})
	}
	return opts
}

// OptionText resolves a single option element: plain strings are used
// verbatim and objects contribute their "text" field.
func OptionText(o any) string {
	if s, ok := o.(string); ok {
		return s
	}
	if m, ok := state.AsDoc(o); ok {
		return m.Text("text", MissingOptionText)
	}
	return MissingOptionText
}
