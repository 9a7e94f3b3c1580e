// Package bot provides automated seat strategies for auctions and
// trick play.
package bot

import (
	"github.com/tmaxwell/querybridge/bridge"
	"github.com/tmaxwell/querybridge/internal/game"
)

// PassBot is the baseline strategy: it always passes in the auction
// and plays the first legal card available to it. Useful as a control
// in simulations and as a stand-in opponent in tests.
type PassBot struct{}

var _ game.Agent = PassBot{}

func (PassBot) SelectBid(g *game.GameData, bidder game.Bidder) game.Bid {
	return game.Pass()
}

func (PassBot) SelectPlay(data *game.PlayData, seat bridge.Seat) int {
	plays := data.LegalPlays(seat)
	if len(plays) == 0 {
		panic("bot: no legal plays")
	}
	return plays[0].Index
}
