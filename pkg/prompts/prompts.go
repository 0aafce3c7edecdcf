package prompts

import (
	"fmt"
	"strings"

	"github.com/jwebster45206/agent-bridge/pkg/dialogue"
	"github.com/jwebster45206/agent-bridge/pkg/state"
)

// Truncation limits for the persona prompt.
const (
	PromptReplyLen        = 200
	PromptHistoryReplyLen = 60
	PromptHistoryOptLen   = 40
	PromptQuestLen        = 40
	PromptHistoryWindow   = 5
	PromptListCap         = 5
)

// Truncation limits for the assessment view.
const (
	AssessHistoryReplyLen = 80
	AssessHistoryOptLen   = 60
	QuestDescriptionLen   = 60
)

// Fallbacks for history entries missing a field.
const (
	missingReply  = "..."
	missingOption = "?"
	noneListed    = "none"
)

// Assessment section headers.
const (
	HeaderDialogue     = "=== DIALOGUE ==="
	HeaderConversation = "--- CONVERSATION SO FAR ---"
	HeaderCharacter    = "--- CHARACTER STATE ---"
	HeaderQuests       = "--- ACTIVE QUESTS ---"
	HeaderObjectives   = "--- SUB-OBJECTIVES ---"
	HeaderReminders    = "--- REMINDERS ---"
)

// Reminders close every assessment.
var Reminders = []string{
	`You can RECALL knowledge: recall "keyword" to search notes`,
	"You can BARTER with this NPC: select barter option or use barter command",
	`You can NOTE anything interesting: note "category" "text"`,
}

// MusePromptTemplate asks the agent for a short in-character reaction.
// Arguments: name, voice, speaker, map, history block, reply, options,
// quests, goals, hp, max hp, caps, armor, weapon.
const MusePromptTemplate = `You are %s. Voice: %s

Talking to %s in %s.
%s
Current NPC reply: "%s"
Your options:
%s

Your quests: %s
Your goals right now: %s
Your state: HP %s/%s, Caps %d, wearing %s, wielding %s

Write a short in-character inner thought (under 25 words) reacting to these dialogue options. What catches your eye? What matters given your goals? No quotes, no narration.`

const (
	historyIntro      = "Conversation so far:"
	conversationStart = "This is the start of the conversation."
)

// QuestSummary renders "name (location) -- description".
func QuestSummary(q dialogue.Quest) string {
	name := q.Name
	if name == "" {
		name = "?"
	}
	loc := ""
	if q.Location != "" {
		loc = " (" + q.Location + ")"
	}
	return fmt.Sprintf("%s%s -- %s", name, loc, state.Truncate(q.Description, QuestDescriptionLen))
}

// FormatOptions renders `[i] "text"` lines with the given indent.
func FormatOptions(opts []dialogue.Option, indent string) string {
	lines := make([]string, 0, len(opts))
	for _, o := range opts {
		lines = append(lines, fmt.Sprintf(`%s[%d] "%s"`, indent, o.Index, o.Text))
	}
	return strings.Join(lines, "\n")
}

// joinCapped joins at most PromptListCap items with ", ", or returns "none".
func joinCapped(items []string) string {
	if len(items) == 0 {
		return noneListed
	}
	if len(items) > PromptListCap {
		items = items[:PromptListCap]
	}
	return strings.Join(items, ", ")
}
