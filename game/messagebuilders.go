package game

import (
	"github.com/minaorangina/aton/deck"
	"github.com/minaorangina/aton/protocol"
)

func buildCardsDrawnMessage(hand []deck.Card) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command: protocol.CardsDrawn,
		Cards:   append([]deck.Card{}, hand...),
	}
}

// opponent notifications carry no payload
func buildOpponentMessage(cmd protocol.Cmd) protocol.OutboundMessage {
	return protocol.OutboundMessage{Command: cmd}
}

func buildPointsScoredMessage(scorer protocol.Colour, points int) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command: protocol.PointsScored,
		Player:  scorer,
		Points:  points,
	}
}

func buildStartingPlayerMessage(winner protocol.Colour, cardsUsed protocol.CardsUsed) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command:   protocol.StartingPlayerSelected,
		Player:    winner,
		CardsUsed: &cardsUsed,
	}
}

func buildRemoveTokensMessage(prompt removalPrompt) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command:            protocol.RemoveTokens,
		Player:             prompt.player,
		TokenOwner:         prompt.tokenOwner,
		NumberOfTokens:     prompt.count,
		MaxAvailableTemple: prompt.maxTemple,
	}
}

func buildTokensRemovedMessage(remover, owner protocol.Colour, removed [][]int) protocol.OutboundMessage {
	return protocol.OutboundMessage{
		Command:        protocol.TokensRemoved,
		RemovingPlayer: remover,
		TokenOwner:     owner,
		RemovedTokens:  removed,
	}
}
