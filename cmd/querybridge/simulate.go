package main

import (
	"fmt"
	"sort"

	"github.com/charmbracelet/log"

	"github.com/tmaxwell/querybridge/bridge"
	"github.com/tmaxwell/querybridge/internal/game"
	"github.com/tmaxwell/querybridge/internal/randutil"
)

// SimulateCmd runs automated games end to end, with a scripted agent
// standing in for the human partnership, and reports contract and
// trick-count outcomes.
type SimulateCmd struct {
	Games   int    `kong:"default='1000',help='Number of games to simulate'"`
	Seed    int64  `kong:"default='0',help='RNG seed (0 for time-based)'"`
	Agent   string `kong:"default='heuristic',help='Opponent strategy: heuristic or pass'"`
	Human   string `kong:"default='pass',help='Scripted stand-in for the human seats: heuristic or pass'"`
	Verbose bool   `kong:"help='Verbose logging'"`
}

type gameResult struct {
	Contract     string
	DeclarerWins int
	Made         bool
}

func (c *SimulateCmd) Run() error {
	agent, err := resolveAgent(c.Agent)
	if err != nil {
		return err
	}
	human, err := resolveAgent(c.Human)
	if err != nil {
		return err
	}

	logger := setupLogger(c.Verbose)

	seed := c.Seed
	if seed == 0 {
		seed = randutil.TimeSeed()
	}
	logger.Info("Simulating games", "games", c.Games, "seed", seed, "agent", c.Agent, "human", c.Human)

	made := 0
	byContract := make(map[string]int)
	for i := 0; i < c.Games; i++ {
		result, err := runGame(seed+int64(i), agent, human, logger)
		if err != nil {
			return fmt.Errorf("game %d: %w", i, err)
		}
		byContract[result.Contract]++
		if result.Made {
			made++
		}
		if c.Verbose {
			logger.Debug("game finished", "game", i, "contract", result.Contract,
				"declarerWins", result.DeclarerWins, "made", result.Made)
		}
	}

	fmt.Printf("Games:     %d\n", c.Games)
	fmt.Printf("Made:      %d (%.1f%%)\n", made, 100*float64(made)/float64(c.Games))
	fmt.Println("Contracts:")
	contracts := make([]string, 0, len(byContract))
	for contract := range byContract {
		contracts = append(contracts, contract)
	}
	sort.Strings(contracts)
	for _, contract := range contracts {
		fmt.Printf("  %-14s %d\n", contract, byContract[contract])
	}
	return nil
}

// runGame plays one full game. The session chains the automated
// opponents internally; the scripted human agent answers for the
// human partnership's seats.
func runGame(seed int64, agent, human game.Agent, logger *log.Logger) (gameResult, error) {
	session := game.NewSession(randutil.New(seed), agent, game.WithLogger(logger))

	for session.Phase() == game.PhaseAuction {
		bidder, ok := session.Game().Auction.NextToBid()
		if !ok {
			break
		}
		bid := human.SelectBid(session.Game(), bidder)
		if err := session.ResolveBid(bid); err != nil {
			return gameResult{}, err
		}
	}

	play := session.Play()
	for !play.IsOver() {
		if play.Trick.IsCompleted() {
			if err := session.ResolveContinue(); err != nil {
				return gameResult{}, err
			}
			continue
		}
		seat, ok := play.NextToPlay()
		if !ok {
			break
		}
		index := human.SelectPlay(play, seat)
		if err := session.ResolvePlay(seat, index); err != nil {
			return gameResult{}, err
		}
	}
	// The final trick stays open until explicitly continued
	if play.Trick.IsCompleted() && len(play.Completed) < bridge.HandSize {
		if err := session.ResolveContinue(); err != nil {
			return gameResult{}, err
		}
	}

	snap := session.Snapshot()
	return gameResult{
		Contract:     snap.Contract.String(),
		DeclarerWins: snap.DeclarerWins,
		Made:         snap.ContractMade(),
	}, nil
}
