package server

import (
	"sync"

	"github.com/charmbracelet/log"

	"github.com/tmaxwell/querybridge/bridge"
	"github.com/tmaxwell/querybridge/internal/game"
)

// SessionService serializes access to a single game session. The
// engine itself is synchronous; the mutex is the only concurrency
// control between websocket connections.
type SessionService struct {
	mu      sync.Mutex
	session *game.Session
	logger  *log.Logger
}

// NewSessionService wraps a session for concurrent use.
func NewSessionService(session *game.Session, logger *log.Logger) *SessionService {
	return &SessionService{
		session: session,
		logger:  logger.WithPrefix("session"),
	}
}

// State returns a snapshot of the current session state.
func (s *SessionService) State() game.Snapshot {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.session.Snapshot()
}

// Bid applies an auction action for the human bidder.
func (s *SessionService) Bid(bid game.Bid) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.ResolveBid(bid); err != nil {
		return err
	}
	s.logger.Info("bid accepted", "bid", bid)
	return nil
}

// Play plays the card at index from the seat's hand.
func (s *SessionService) Play(seat bridge.Seat, index int) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.ResolvePlay(seat, index); err != nil {
		return err
	}
	s.logger.Info("play accepted", "seat", seat, "index", index)
	return nil
}

// Continue closes the completed trick and starts the next one.
func (s *SessionService) Continue() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.session.ResolveContinue(); err != nil {
		return err
	}
	s.logger.Info("continue accepted")
	return nil
}
