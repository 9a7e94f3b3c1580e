package game

import (
	"fmt"
	"io"
	rand "math/rand/v2"

	"github.com/charmbracelet/log"

	"github.com/tmaxwell/querybridge/bridge"
)

// Phase is the lifecycle stage of a game session. Transitions only
// move forward: Starting -> Auction -> Playing.
type Phase int

const (
	PhaseStarting Phase = iota
	PhaseAuction
	PhasePlaying
)

func (p Phase) String() string {
	switch p {
	case PhaseStarting:
		return "starting"
	case PhaseAuction:
		return "auction"
	case PhasePlaying:
		return "playing"
	default:
		return "?"
	}
}

// Session owns one in-memory game: the dealt hands, the auction, and
// (after the auction completes) the play phase. All entry points are
// synchronous; any chained automated-seat responses are applied before
// the call returns. Presentation layers read snapshots and submit
// actions -- they never mutate the session directly.
type Session struct {
	phase  Phase
	game   *GameData
	play   *PlayData
	agent  Agent
	logger *log.Logger
}

// Option configures a Session.
type Option func(*sessionConfig)

type sessionConfig struct {
	logger *log.Logger
	first  bridge.Seat
	second bridge.Seat
	game   *GameData
}

// WithLogger sets the logger used for action tracing.
func WithLogger(logger *log.Logger) Option {
	return func(c *sessionConfig) { c.logger = logger }
}

// WithBidderSeats assigns the First and Second bidder roles.
func WithBidderSeats(first, second bridge.Seat) Option {
	return func(c *sessionConfig) { c.first, c.second = first, second }
}

// WithGameData supplies prepared hands and auction state instead of
// dealing, for tests and scripted scenarios.
func WithGameData(game *GameData) Option {
	return func(c *sessionConfig) { c.game = game }
}

// NewSession deals a new game from the given random source and enters
// the auction phase. If the opening bidder is an automated seat its
// bids are applied immediately, so the session is always waiting on a
// human action (or finished) when this returns.
func NewSession(rng *rand.Rand, agent Agent, opts ...Option) *Session {
	cfg := sessionConfig{
		logger: log.New(io.Discard),
		first:  bridge.SeatUser,
		second: bridge.SeatLeft,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	game := cfg.game
	if game == nil {
		game = NewGameData(rng, cfg.first, cfg.second)
	}

	s := &Session{
		phase:  PhaseAuction,
		game:   game,
		agent:  agent,
		logger: cfg.logger,
	}
	s.logger.Debug("session started",
		"first", game.Auction.Seat(First),
		"second", game.Auction.Seat(Second))

	s.runAgentBids()
	if s.game.Auction.IsCompleted() {
		s.advanceToPlay()
	}
	return s
}

// Phase returns the current lifecycle stage.
func (s *Session) Phase() Phase {
	return s.phase
}

// Game returns the shared game data. Read-only for callers.
func (s *Session) Game() *GameData {
	return s.game
}

// Play returns the play-phase data, or nil before the auction
// completes. Read-only for callers.
func (s *Session) Play() *PlayData {
	return s.play
}

// ResolveBid applies the human bidder's bid, chains any automated
// bids that immediately follow, and transitions to the play phase if
// the auction completes. It fails without mutating when invoked
// outside the auction phase or off turn.
func (s *Session) ResolveBid(bid Bid) error {
	if s.phase != PhaseAuction {
		return fmt.Errorf("can only bid during the auction phase (phase: %s)", s.phase)
	}
	bidder, ok := s.game.Auction.NextToBid()
	if !ok {
		return fmt.Errorf("the auction is already complete")
	}
	if seat := s.game.Auction.Seat(bidder); seat.IsBot() {
		return fmt.Errorf("it is not the user's turn to bid (%s to act)", seat)
	}

	s.game.AppendBidResponse(bidder, bid)
	s.logger.Debug("bid placed", "bidder", bidder, "bid", bid, "bidNumber", s.game.Auction.BidNumber)

	s.runAgentBids()

	if s.game.Auction.IsCompleted() {
		s.advanceToPlay()
	}
	return nil
}

// runAgentBids applies bids for as long as the next bidder is an
// automated seat.
func (s *Session) runAgentBids() {
	for {
		bidder, ok := s.game.Auction.NextToBid()
		if !ok || !s.game.Auction.Seat(bidder).IsBot() {
			return
		}
		bid := s.agent.SelectBid(s.game, bidder)
		s.game.AppendBidResponse(bidder, bid)
		s.logger.Debug("agent bid", "bidder", bidder, "bid", bid, "bidNumber", s.game.Auction.BidNumber)
	}
}

// advanceToPlay derives the contract from the completed auction and
// opens the first trick, led by the declarer. A declaring automated
// seat leads immediately.
func (s *Session) advanceToPlay() {
	declarer := s.game.Auction.Declarer()
	contract := s.game.Auction.findContract(declarer)

	s.play = &PlayData{
		Game:     s.game,
		Trick:    NewTrick(contract.Declarer),
		Contract: contract,
	}
	s.phase = PhasePlaying
	s.logger.Debug("auction complete", "contract", contract)

	if contract.Declarer.IsBot() {
		s.play.playForAgent(s.agent, contract.Declarer)
	}
}

// ResolvePlay plays the card at index from the seat's hand and chains
// the following automated seat's play. It fails without mutating when
// invoked outside the play phase, for an automated seat, or when the
// play is not legal.
func (s *Session) ResolvePlay(seat bridge.Seat, index int) error {
	if s.phase != PhasePlaying {
		return fmt.Errorf("can only play cards during the play phase (phase: %s)", s.phase)
	}
	if seat.IsBot() {
		return fmt.Errorf("cannot play for an automated seat (%s)", seat)
	}
	if err := s.play.resolvePlay(s.agent, seat, index); err != nil {
		return err
	}
	s.logger.Debug("card played", "seat", seat, "trickSize", s.play.Trick.Size())
	return nil
}

// ResolveContinue closes the completed current trick and opens a new
// one led by its winner, chaining the winner's lead if it is an
// automated seat. It fails without mutating when the trick is not yet
// full or outside the play phase.
func (s *Session) ResolveContinue() error {
	if s.phase != PhasePlaying {
		return fmt.Errorf("can only continue during the play phase (phase: %s)", s.phase)
	}
	if err := s.play.resolveContinue(s.agent); err != nil {
		return err
	}
	s.logger.Debug("trick closed", "completed", len(s.play.Completed))
	return nil
}
