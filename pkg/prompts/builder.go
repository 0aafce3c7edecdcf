package prompts

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/agent-bridge/pkg/dialogue"
	"github.com/jwebster45206/agent-bridge/pkg/history"
	"github.com/jwebster45206/agent-bridge/pkg/persona"
	"github.com/jwebster45206/agent-bridge/pkg/state"
	"github.com/jwebster45206/agent-bridge/pkg/textfilter"
)

// Builder renders the assessment and persona prompt for the current
// dialogue turn using a fluent interface.
type Builder struct {
	doc          state.Doc
	history      []any
	name         string
	voice        string
	objectives   []string
	filter       *textfilter.ProfanityFilter
	historyLimit int
	headerStyle  func(string) string
}

// New creates a builder with the default persona and prompt history window.
func New() *Builder {
	return &Builder{
		doc:          state.Doc{},
		name:         persona.DefaultName,
		voice:        persona.DefaultVoice,
		historyLimit: PromptHistoryWindow,
		headerStyle:  func(s string) string { return s },
	}
}

// WithState sets the game-state document.
func (b *Builder) WithState(doc state.Doc) *Builder {
	if doc == nil {
		doc = state.Doc{}
	}
	b.doc = doc
	return b
}

// WithHistory sets the conversation history sequence.
func (b *Builder) WithHistory(seq []any) *Builder {
	b.history = seq
	return b
}

// WithPersona sets the persona name and voice description.
func (b *Builder) WithPersona(name, voice string) *Builder {
	b.name = name
	b.voice = voice
	return b
}

// WithObjectives sets the external sub-objectives.
func (b *Builder) WithObjectives(objectives []string) *Builder {
	b.objectives = objectives
	return b
}

// WithFilter filters NPC text before rendering. A nil filter disables it.
func (b *Builder) WithFilter(f *textfilter.ProfanityFilter) *Builder {
	b.filter = f
	return b
}

// WithHistoryLimit sets how many history entries the persona prompt replays.
func (b *Builder) WithHistoryLimit(limit int) *Builder {
	b.historyLimit = limit
	return b
}

// WithHeaderStyle decorates assessment headers, e.g. with terminal colors.
func (b *Builder) WithHeaderStyle(style func(string) string) *Builder {
	if style != nil {
		b.headerStyle = style
	}
	return b
}

// view projects the dialogue turn, filtering NPC text when configured.
func (b *Builder) view() dialogue.View {
	v := dialogue.Project(b.doc)
	if b.filter == nil {
		return v
	}
	v.ReplyText = b.filter.FilterText(v.ReplyText)
	for i := range v.Options {
		v.Options[i].Text = b.filter.FilterText(v.Options[i].Text)
	}
	return v
}

// BuildAssessment renders the multi-block plain-text assessment.
func (b *Builder) BuildAssessment() string {
	var sb strings.Builder
	v := b.view()

	// 1. Current dialogue turn
	sb.WriteString(b.headerStyle(HeaderDialogue) + "\n")
	sb.WriteString(fmt.Sprintf("NPC: %s | Map: %s\n", v.Speaker, v.MapName))
	if v.ReplyText != "" {
		sb.WriteString(fmt.Sprintf("Reply: \"%s\"\n", v.ReplyText))
	}
	if len(v.Options) > 0 {
		sb.WriteString("Options:\n")
		sb.WriteString(FormatOptions(v.Options, "  ") + "\n")
	}
	sb.WriteString("\n")

	// 2. Prior exchanges
	if exchanges := history.Replay(b.history, 0, missingReply, missingOption); len(exchanges) > 0 {
		sb.WriteString(b.headerStyle(HeaderConversation) + "\n")
		for i, ex := range exchanges {
			sb.WriteString(fmt.Sprintf("  (%d) \"%s\" -> You chose: \"%s\"\n", i+1,
				state.Truncate(ex.Reply, AssessHistoryReplyLen),
				state.Truncate(ex.Option, AssessHistoryOptLen)))
		}
		sb.WriteString("\n")
	}

	// 3. Character
	ch := dialogue.ProjectCharacter(b.doc)
	sb.WriteString(b.headerStyle(HeaderCharacter) + "\n")
	sb.WriteString(fmt.Sprintf("  HP: %s/%s | Level: %s | Caps: %d\n", ch.HP, ch.MaxHP, ch.Level, ch.Caps))
	sb.WriteString(fmt.Sprintf("  Weapon: %s | Armor: %s\n", ch.Weapon, ch.Armor))
	sb.WriteString("\n")

	// 4. Active quests
	if quests := dialogue.ActiveQuests(b.doc); len(quests) > 0 {
		sb.WriteString(b.headerStyle(HeaderQuests) + "\n")
		for _, q := range quests {
			sb.WriteString("  " + QuestSummary(q) + "\n")
		}
		sb.WriteString("\n")
	}

	// 5. External sub-objectives
	if len(b.objectives) > 0 {
		sb.WriteString(b.headerStyle(HeaderObjectives) + "\n")
		for _, obj := range b.objectives {
			sb.WriteString("  " + obj + "\n")
		}
		sb.WriteString("\n")
	}

	// 6. Reminders
	sb.WriteString(b.headerStyle(HeaderReminders) + "\n")
	for _, r := range Reminders {
		sb.WriteString("  " + r + "\n")
	}

	return sb.String()
}

// BuildMusePrompt renders the persona-voiced inner-thought prompt. It returns
// false when the turn has neither a reply nor options to react to.
func (b *Builder) BuildMusePrompt() (string, bool) {
	v := b.view()
	if v.IsEmpty() {
		return "", false
	}

	historyBlock := conversationStart
	if exchanges := history.Replay(b.history, b.historyLimit, missingReply, missingOption); len(exchanges) > 0 {
		lines := make([]string, 0, len(exchanges))
		for _, ex := range exchanges {
			lines = append(lines, fmt.Sprintf(`NPC: "%s" -> You chose: "%s"`,
				state.Truncate(ex.Reply, PromptHistoryReplyLen),
				state.Truncate(ex.Option, PromptHistoryOptLen)))
		}
		historyBlock = historyIntro + "\n" + strings.Join(lines, "\n")
	}

	var questLabels []string
	for _, q := range dialogue.ActiveQuests(b.doc) {
		questLabels = append(questLabels, state.Truncate(q.Label(), PromptQuestLen))
	}

	ch := dialogue.ProjectCharacter(b.doc)

	return fmt.Sprintf(MusePromptTemplate,
		b.name, b.voice,
		v.Speaker, v.MapName,
		historyBlock,
		state.Truncate(v.ReplyText, PromptReplyLen),
		FormatOptions(v.Options, ""),
		joinCapped(questLabels),
		joinCapped(b.objectives),
		ch.HP, ch.MaxHP, ch.Caps, ch.Armor, ch.Weapon,
	), true
}

// BuildAssessment is a convenience function for the common case.
func BuildAssessment(doc state.Doc, seq []any, objectives []string) string {
	return New().
		WithState(doc).
		WithHistory(seq).
		WithObjectives(objectives).
		BuildAssessment()
}
