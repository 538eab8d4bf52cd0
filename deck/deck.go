package deck

import (
	"errors"
	"fmt"
	"math/rand"
	"time"
)

var (
	ErrEmptyPool        = errors.New("card pool is empty")
	ErrWrongValueCount  = fmt.Errorf("card pool needs a count for each of the %d card values", len(Values))
	ErrNegativeQuantity = errors.New("card pool quantities cannot be negative")
)

// Deck represents an ordered pile of cards. The top of the deck is index 0.
type Deck []Card

// Composition holds how many copies of each card value a pool contains,
// indexed in the same order as Values.
type Composition []int

// DefaultComposition is nine of each card value, 36 cards in total
var DefaultComposition = Composition{9, 9, 9, 9}

// Size returns the total number of cards in the composition
func (c Composition) Size() int {
	total := 0
	for _, n := range c {
		total += n
	}
	return total
}

// Validate checks the composition describes a usable pool
func (c Composition) Validate() error {
	if len(c) != len(Values) {
		return ErrWrongValueCount
	}
	for _, n := range c {
		if n < 0 {
			return ErrNegativeQuantity
		}
	}
	if c.Size() == 0 {
		return ErrEmptyPool
	}
	return nil
}

// New creates an unshuffled deck from a composition, lowest values first
func New(c Composition) (Deck, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	cards := make(Deck, 0, c.Size())
	for i, n := range c {
		for j := 0; j < n; j++ {
			cards = append(cards, Values[i])
		}
	}
	return cards, nil
}

// Draw removes and returns the top card. ok is false if the deck is empty.
func (d *Deck) Draw() (card Card, ok bool) {
	if len(*d) == 0 {
		return NullCard, false
	}
	card = (*d)[0]
	*d = (*d)[1:]
	return card, true
}

// Counts returns how many of each card value the cards contain
func Counts(cards ...[]Card) map[Card]int {
	counts := map[Card]int{}
	for _, group := range cards {
		for _, c := range group {
			counts[c]++
		}
	}
	return counts
}

// SameCards reports whether a and b hold the same cards, ignoring order
func SameCards(a, b []Card) bool {
	if len(a) != len(b) {
		return false
	}
	counts := Counts(a)
	for _, c := range b {
		counts[c]--
		if counts[c] < 0 {
			return false
		}
	}
	return true
}

// Shuffler reorders cards in place
type Shuffler interface {
	Shuffle(d Deck)
}

// ShufflerFunc adapts a function to the Shuffler interface
type ShufflerFunc func(d Deck)

func (f ShufflerFunc) Shuffle(d Deck) {
	f(d)
}

// NoShuffle leaves the cards in the order they are given
var NoShuffle = ShufflerFunc(func(Deck) {})

// RandomShuffler produces uniform permutations from its own random source.
// It is not safe for concurrent use.
type RandomShuffler struct {
	rng *rand.Rand
}

// NewRandomShuffler returns a shuffler seeded with seed. A zero seed uses the
// current time.
func NewRandomShuffler(seed int64) *RandomShuffler {
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	return &RandomShuffler{rng: rand.New(rand.NewSource(seed))}
}

// Shuffle shuffles the deck of cards
func (s *RandomShuffler) Shuffle(d Deck) {
	s.rng.Shuffle(len(d), func(i, j int) {
		d[i], d[j] = d[j], d[i]
	})
}
