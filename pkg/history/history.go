// Package history tracks the choices made during a conversation.
// The history file is append-only: entries are never reordered or removed.
package history

import (
	"fmt"

	"github.com/jwebster45206/agent-bridge/pkg/dialogue"
	"github.com/jwebster45206/agent-bridge/pkg/state"
)

// Stored and summary truncation limits, in characters.
const (
	MaxStoredReply  = 200
	MaxStoredOption = 120
	SummaryReplyLen = 80
	SummaryOptLen   = 60
)

// Entry is one recorded exchange: the NPC line and the option picked in reply.
type Entry struct {
	Reply      string `json:"reply"`
	Selected   int    `json:"selected"`
	OptionText string `json:"option_text"`
}

// Exchange is a history entry read back for display. Fields keep the
// fallbacks supplied by the reader when the stored entry lacks them.
type Exchange struct {
	Reply  string
	Option string
}

// NewEntry records the current reply and the option at selected. An index
// outside the option list is a valid null choice with empty option text.
func NewEntry(doc state.Doc, selected int) Entry {
	dlg := doc.Map("dialogue")
	options := dlg.List("options")

	optionText := ""
	if selected >= 0 && selected < len(options) {
		optionText = dialogue.OptionText(options[selected])
	}

	return Entry{
		Reply:      state.Truncate(dlg.Text("reply_text", ""), MaxStoredReply),
		Selected:   selected,
		OptionText: state.Truncate(optionText, MaxStoredOption),
	}
}

// Append returns seq with a new entry for the current turn at the end.
func Append(seq []any, doc state.Doc, selected int) []any {
	return append(seq, NewEntry(doc, selected))
}

// Summarize renders every entry as `NPC: "<reply>" -> Chose: "<option>"`.
func Summarize(seq []any) []string {
	lines := make([]string, 0, len(seq))
	for _, ex := range Replay(seq, 0, "", "") {
		lines = append(lines, fmt.Sprintf(`NPC: "%s" -> Chose: "%s"`,
			state.Truncate(ex.Reply, SummaryReplyLen),
			state.Truncate(ex.Option, SummaryOptLen)))
	}
	return lines
}

// Replay reads back the last n entries (all when n <= 0), substituting
// replyDef and optDef for missing fields.
func Replay(seq []any, n int, replyDef, optDef string) []Exchange {
	if n > 0 && len(seq) > n {
		seq = seq[len(seq)-n:]
	}

	out := make([]Exchange, 0, len(seq))
	for _, raw := range seq {
		out = append(out, readExchange(raw, replyDef, optDef))
	}
	return out
}

func readExchange(raw any, replyDef, optDef string) Exchange {
	switch e := raw.(type) {
	case Entry:
		return Exchange{Reply: e.Reply, Option: e.OptionText}
	case *Entry:
		return Exchange{Reply: e.Reply, Option: e.OptionText}
	}

	m, _ := state.AsDoc(raw)
	return Exchange{
		Reply:  m.Text("reply", replyDef),
		Option: m.Text("option_text", optDef),
	}
}
