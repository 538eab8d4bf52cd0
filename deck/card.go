package deck

import "strconv"

// Card represents a card value. Only the values One to Four are playable.
type Card int

const (
	NullCard Card = iota
	One
	Two
	Three
	Four
)

// Values lists every playable card value, lowest first
var Values = []Card{One, Two, Three, Four}

// Valid reports whether c is a playable card value
func (c Card) Valid() bool {
	return c >= One && c <= Four
}

func (c Card) String() string {
	return strconv.Itoa(int(c))
}
