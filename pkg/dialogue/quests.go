package dialogue

import (
	"github.com/jwebster45206/agent-bridge/pkg/state"
)

// Quest is an active (not completed) quest.
type Quest struct {
	Name        string
	Location    string
	Description string
}

// ActiveQuests returns the quests whose completed flag is not set, in
// document order. Entries that are not objects are skipped.
func ActiveQuests(doc state.Doc) []Quest {
	var active []Quest
	for _, raw := range doc.List("quests") {
		q, ok := state.AsDoc(raw)
		if !ok || state.Truthy(q["completed"]) {
			continue
		}
		active = append(active, Quest{
			Name:        q.Text("name", ""),
			Location:    q.Text("location", ""),
			Description: q.Text("description", ""),
		})
	}
	return active
}

// Label is the short identifier used in prompts: the name, else the description.
func (q Quest) Label() string {
	if q.Name != "" {
		return q.Name
	}
	if q.Description != "" {
		return q.Description
	}
	return NotKnown
}
