package game

import "github.com/minaorangina/aton/protocol"

const (
	NumTemples  = 4
	TempleSlots = 12
)

// Temple is a row of token slots. An empty slot holds protocol.NoColour.
type Temple struct {
	Tokens [TempleSlots]protocol.Colour
}

// CountTokensOf returns how many slots owner occupies
func (t *Temple) CountTokensOf(owner protocol.Colour) int {
	count := 0
	for _, slot := range t.Tokens {
		if slot == owner {
			count++
		}
	}
	return count
}

// TokensOf returns the slots owner occupies, lowest first
func (t *Temple) TokensOf(owner protocol.Colour) []int {
	slots := []int{}
	for i, slot := range t.Tokens {
		if slot == owner {
			slots = append(slots, i)
		}
	}
	return slots
}

// Place puts owner's token in a slot, replacing whatever was there
func (t *Temple) Place(owner protocol.Colour, slot int) {
	t.Tokens[slot] = owner
}

// Clear empties the given slots. Out of range slots are ignored.
func (t *Temple) Clear(slots []int) {
	for _, i := range slots {
		if i >= 0 && i < TempleSlots {
			t.Tokens[i] = protocol.NoColour
		}
	}
}
