package game

import (
	"github.com/minaorangina/aton/deck"
	"github.com/minaorangina/aton/protocol"
	"go.uber.org/zap"
)

// Cartouche positions
const (
	scoringCartouche = iota
	orderCartouche
	removalCartouche
)

// scoreCartouches awards twice the difference of the first cartouches to the
// player with the higher card. Equal cards score nothing.
func (a *Aton) scoreCartouches() {
	red, blue := a.Red().Cartouches[scoringCartouche], a.Blue().Cartouches[scoringCartouche]
	if red == blue {
		return
	}

	scorer, diff := protocol.Red, int(red-blue)
	if blue > red {
		scorer, diff = protocol.Blue, int(blue-red)
	}

	points := 2 * diff
	a.Player(scorer).Points += points

	a.logger.Debug("points scored", zap.Stringer("player", scorer), zap.Int("points", points))
	a.broadcast(buildPointsScoredMessage(scorer, points))
}

// selectStartingPlayer picks who acts first: the lower second cartouche, then
// the lower first cartouche, then whoever draws the lower card from their deck.
func (a *Aton) selectStartingPlayer() (protocol.Colour, protocol.CardsUsed) {
	red, blue := a.Red(), a.Blue()
	used := protocol.CardsUsed{Red: []deck.Card{}, Blue: []deck.Card{}}

	if winner, ok := lowerCard(red.Cartouches[orderCartouche], blue.Cartouches[orderCartouche]); ok {
		return winner, used
	}
	if winner, ok := lowerCard(red.Cartouches[scoringCartouche], blue.Cartouches[scoringCartouche]); ok {
		return winner, used
	}

	for {
		redCard, blueCard := red.DrawOneAndDiscard(), blue.DrawOneAndDiscard()
		used.Red = append(used.Red, redCard)
		used.Blue = append(used.Blue, blueCard)

		if winner, ok := lowerCard(redCard, blueCard); ok {
			return winner, used
		}
	}
}

func lowerCard(red, blue deck.Card) (protocol.Colour, bool) {
	switch {
	case red < blue:
		return protocol.Red, true
	case blue < red:
		return protocol.Blue, true
	}
	return protocol.NoColour, false
}

// resolveTokenRemoval works out whose tokens the current player removes and
// how many. A second cartouche above two targets the opponent, below two
// targets the player's own tokens. Only temples below the third cartouche
// count. When there is no choice to make the tokens are cleared at once,
// otherwise the player is asked to pick.
func (a *Aton) resolveTokenRemoval(current protocol.Colour) {
	cartouches := a.Player(current).Cartouches
	n := int(cartouches[orderCartouche]) - 2
	maxTemple := int(cartouches[removalCartouche])
	if maxTemple > NumTemples {
		maxTemple = NumTemples
	}

	if n == 0 {
		a.enter(finishedPhase{})
		return
	}

	owner, required := current.Opponent(), n
	if n < 0 {
		owner, required = current, -n
	}

	found := a.templeTokens(owner, maxTemple)
	if countTokens(found) > required {
		prompt := removalPrompt{
			player:     current,
			tokenOwner: owner,
			count:      required,
			maxTemple:  maxTemple,
		}
		a.phase = removingTokensPhase{currentPlayer: current, prompt: &prompt}
		a.broadcast(buildRemoveTokensMessage(prompt))
		return
	}

	removed := a.clearTokens(found)
	a.broadcast(buildTokensRemovedMessage(current, owner, removed))
	a.enter(finishedPhase{})
}

// templeTokens lists owner's slots in every temple below maxTemple. The
// result always has one entry per temple.
func (a *Aton) templeTokens(owner protocol.Colour, maxTemple int) [][]int {
	found := emptyTempleLists()
	for i := 0; i < maxTemple; i++ {
		found[i] = a.Temples[i].TokensOf(owner)
	}
	return found
}

func (a *Aton) clearTokens(slots [][]int) [][]int {
	removed := emptyTempleLists()
	for i, s := range slots {
		a.Temples[i].Clear(s)
		removed[i] = append(removed[i], s...)
	}
	return removed
}

// validateRemoval checks a player's answer to a removal prompt: the right
// number of distinct slots, all holding the token owner's tokens, all in
// available temples.
func (a *Aton) validateRemoval(prompt removalPrompt, msg protocol.InboundMessage) ([][]int, bool) {
	if msg.Player != prompt.player || len(msg.Tokens) > NumTemples {
		return nil, false
	}

	chosen := emptyTempleLists()
	for i, slots := range msg.Tokens {
		if len(slots) > 0 && i >= prompt.maxTemple {
			return nil, false
		}

		seen := map[int]struct{}{}
		for _, slot := range slots {
			if slot < 0 || slot >= TempleSlots {
				return nil, false
			}
			if _, dup := seen[slot]; dup {
				return nil, false
			}
			if a.Temples[i].Tokens[slot] != prompt.tokenOwner {
				return nil, false
			}
			seen[slot] = struct{}{}
		}
		chosen[i] = setToIntSlice(seen)
	}

	if countTokens(chosen) != prompt.count {
		return nil, false
	}
	return chosen, true
}
