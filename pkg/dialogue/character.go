package dialogue

import (
	"github.com/jwebster45206/agent-bridge/pkg/state"
)

// CurrencyPID is the item prototype id of bottle caps.
const CurrencyPID = 41

const (
	Unarmed  = "unarmed"
	NoArmor  = "none"
	NotKnown = "?"
)

// Character summarizes the player for both renderers.
type Character struct {
	HP     string
	MaxHP  string
	Level  string
	Caps   int
	Weapon string
	Armor  string
}

// ProjectCharacter reads HP, level, equipment and currency from a state document.
func ProjectCharacter(doc state.Doc) Character {
	ch := doc.Map("character")
	stats := ch.Map("derived_stats")
	inv := doc.Map("inventory")

	return Character{
		HP:     stats.Text("current_hp", NotKnown),
		MaxHP:  stats.Text("max_hp", NotKnown),
		Level:  ch.Text("level", NotKnown),
		Caps:   Currency(doc),
		Weapon: Weapon(inv.Map("equipped")),
		Armor:  Armor(inv.Map("equipped")),
	}
}

// Weapon checks the right hand, then the left. The first occupied slot
// decides, even when its item has no name.
func Weapon(equipped state.Doc) string {
	for _, slot := range []string{"right_hand", "left_hand"} {
		item := equipped.Map(slot)
		if len(item) == 0 {
			continue
		}
		return item.Text("name", Unarmed)
	}
	return Unarmed
}

func Armor(equipped state.Doc) string {
	item := equipped.Map("armor")
	if len(item) == 0 {
		return NoArmor
	}
	return item.Text("name", NoArmor)
}

// Currency sums the quantity of every inventory item whose pid is
// CurrencyPID. Unparseable pids never match and unparseable quantities count as zero.
func Currency(doc state.Doc) int {
	total := 0
	for _, raw := range doc.Map("inventory").List("items") {
		item, ok := state.AsDoc(raw)
		if !ok {
			continue
		}
		if state.Int(item["pid"], -1) != CurrencyPID {
			continue
		}
		total += state.Int(item["quantity"], 0)
	}
	return total
}
