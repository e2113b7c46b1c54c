package session

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"

	"github.com/mcoot/hangman-solver/internal/dependencies/clock"
	"github.com/mcoot/hangman-solver/internal/dependencies/random"
	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/services/solver"
	"github.com/mcoot/hangman-solver/internal/storage"
)

const (
	// IDAlphabet is the character set for generated session IDs
	IDAlphabet = "abcdefghijklmnopqrstuvwxyz0123456789"
	// IDLength is the length of generated session IDs
	IDLength = 12
)

// Controller manages solver sessions. A session only records what the caller
// reported; every decision is made fresh by a stateless strategy.
type Controller struct {
	storage    storage.Storage
	strategies *solver.Registry
	clock      clock.Clock
	random     random.Random
	logger     *slog.Logger

	// mu serialises read-modify-write of stored sessions
	mu sync.Mutex
}

// NewController creates a new session Controller
func NewController(
	store storage.Storage,
	strategies *solver.Registry,
	clk clock.Clock,
	rnd random.Random,
	logger *slog.Logger,
) *Controller {
	return &Controller{
		storage:    store,
		strategies: strategies,
		clock:      clk,
		random:     rnd,
		logger:     logger.With(slog.String("component", "session-controller")),
	}
}

// Create starts a new session using the named strategy (empty for the default)
func (c *Controller) Create(ctx context.Context, strategy string, wordLength int) (*model.Session, error) {
	id := model.SessionID(c.random.String(IDLength, IDAlphabet))
	return c.create(ctx, id, strategy, wordLength)
}

func (c *Controller) create(ctx context.Context, id model.SessionID, strategy string, wordLength int) (*model.Session, error) {
	st, err := c.strategies.Get(strategy)
	if err != nil {
		return nil, err
	}
	if wordLength < 0 {
		wordLength = 0
	}

	now := c.clock.Now()
	session := &model.Session{
		ID:         id,
		Strategy:   st.Name(),
		WordLength: wordLength,
		CreatedAt:  now,
		UpdatedAt:  now,
	}

	if err := c.storage.SaveSession(ctx, session); err != nil {
		c.logger.Error("failed to save session",
			slog.String("session_id", string(id)),
			slog.String("error", err.Error()),
		)
		return nil, err
	}

	c.logger.Info("session created",
		slog.String("session_id", string(id)),
		slog.String("strategy", session.Strategy),
	)
	return session, nil
}

// Get returns a session by ID
func (c *Controller) Get(ctx context.Context, id model.SessionID) (*model.Session, error) {
	return c.storage.GetSession(ctx, id)
}

// Delete removes a session
func (c *Controller) Delete(ctx context.Context, id model.SessionID) error {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, err := c.storage.GetSession(ctx, id); err != nil {
		return err
	}
	return c.storage.DeleteSession(ctx, id)
}

// Guess records the caller's latest word state and returns the next letter.
// The request's guessed letters replace the session's; they are not merged.
func (c *Controller) Guess(ctx context.Context, id model.SessionID, req model.GuessRequest) (*model.Decision, *model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, nil, err
	}
	return c.guess(ctx, session, req)
}

func (c *Controller) guess(ctx context.Context, session *model.Session, req model.GuessRequest) (*model.Decision, *model.Session, error) {
	st, err := c.strategies.Get(session.Strategy)
	if err != nil {
		return nil, nil, err
	}

	if session.WordLength > 0 {
		if p, perr := model.ParsePattern(req.Pattern); perr == nil && p.Len() != session.WordLength {
			return nil, nil, fmt.Errorf("%w: pattern has %d letters, session expects %d",
				model.ErrInvalidPattern, p.Len(), session.WordLength)
		}
	}

	decision, err := st.NextGuess(req)
	if err != nil {
		return nil, nil, err
	}

	// NextGuess has validated both the pattern and the letters
	pattern, _ := model.ParsePattern(req.Pattern)
	guessed, _ := model.ParseLetters(req.GuessedLetters)

	now := c.clock.Now()
	session.Pattern = pattern.String()
	session.GuessedLetters = guessed
	session.GuessesRemaining = req.GuessesRemaining
	session.Record(model.Turn{
		Pattern:          session.Pattern,
		GuessedLetters:   guessed.String(),
		GuessesRemaining: req.GuessesRemaining,
		Letter:           decision.Letter,
		Rule:             decision.Rule,
		CandidateCount:   decision.CandidateCount,
		DecidedAt:        now,
	})
	session.UpdatedAt = now

	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, nil, err
	}

	c.logger.Debug("session guess",
		slog.String("session_id", string(session.ID)),
		slog.String("letter", string(decision.Letter)),
		slog.Int("turn", len(session.History)),
	)
	return decision, session, nil
}

// Reset returns a session to its initial state, keeping its ID, strategy and
// word length
func (c *Controller) Reset(ctx context.Context, id model.SessionID) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.storage.GetSession(ctx, id)
	if err != nil {
		return nil, err
	}
	return c.reset(ctx, session)
}

func (c *Controller) reset(ctx context.Context, session *model.Session) (*model.Session, error) {
	session.Reset(c.clock.Now())
	if err := c.storage.SaveSession(ctx, session); err != nil {
		return nil, err
	}

	c.logger.Info("session reset", slog.String("session_id", string(session.ID)))
	return session, nil
}

// GuessDefault drives the shared default session, creating it on first use
func (c *Controller) GuessDefault(ctx context.Context, req model.GuessRequest) (*model.Decision, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.defaultSession(ctx)
	if err != nil {
		return nil, err
	}
	decision, _, err := c.guess(ctx, session, req)
	return decision, err
}

// ResetDefault resets the shared default session, creating it if needed
func (c *Controller) ResetDefault(ctx context.Context) (*model.Session, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	session, err := c.defaultSession(ctx)
	if err != nil {
		return nil, err
	}
	return c.reset(ctx, session)
}

func (c *Controller) defaultSession(ctx context.Context) (*model.Session, error) {
	session, err := c.storage.GetSession(ctx, model.DefaultSessionID)
	if errors.Is(err, model.ErrSessionNotFound) {
		return c.create(ctx, model.DefaultSessionID, "", 0)
	}
	return session, err
}
