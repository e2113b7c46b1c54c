// Package storagetest holds the behaviour every storage backend must share.
package storagetest

import (
	"context"
	"time"

	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/storage"
)

// Suite runs the common storage contract against a backend. Backends embed it
// and set Storage in their own SetupTest.
type Suite struct {
	suite.Suite
	Storage storage.Storage
	Ctx     context.Context
}

func (s *Suite) newSession(id string) *model.Session {
	now := time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC)
	return &model.Session{
		ID:               model.SessionID(id),
		Strategy:         model.StrategyFrequency,
		WordLength:       6,
		Pattern:          "f __ i __ h t",
		GuessedLetters:   model.NewLetterSet('f', 'i', 'h', 't'),
		GuessesRemaining: 4,
		History: []model.Turn{
			{
				Pattern:          "__ __ __ __ __ __",
				GuessesRemaining: 6,
				Letter:           't',
				Rule:             model.RuleScored,
				CandidateCount:   2,
				DecidedAt:        now,
			},
		},
		CreatedAt: now,
		UpdatedAt: now,
	}
}

// Session tests

func (s *Suite) TestSaveAndGetSession() {
	session := s.newSession("session-1")

	err := s.Storage.SaveSession(s.Ctx, session)
	s.Require().NoError(err)

	retrieved, err := s.Storage.GetSession(s.Ctx, "session-1")
	s.Require().NoError(err)
	s.Equal(session.ID, retrieved.ID)
	s.Equal(session.Strategy, retrieved.Strategy)
	s.Equal(session.Pattern, retrieved.Pattern)
	s.Equal(session.GuessedLetters, retrieved.GuessedLetters)
	s.Equal(session.GuessesRemaining, retrieved.GuessesRemaining)
	s.Require().Len(retrieved.History, 1)
	s.Equal('t', retrieved.History[0].Letter)
	s.Equal(model.RuleScored, retrieved.History[0].Rule)
	s.True(session.CreatedAt.Equal(retrieved.CreatedAt))
}

func (s *Suite) TestSaveSessionOverwrites() {
	session := s.newSession("session-1")
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, session))

	session.Reset(session.UpdatedAt.Add(time.Minute))
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, session))

	retrieved, err := s.Storage.GetSession(s.Ctx, "session-1")
	s.Require().NoError(err)
	s.Empty(retrieved.History)
	s.Equal(model.SessionStateReset, retrieved.State())
}

func (s *Suite) TestGetSessionNotFound() {
	_, err := s.Storage.GetSession(s.Ctx, "nonexistent")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *Suite) TestDeleteSession() {
	s.Require().NoError(s.Storage.SaveSession(s.Ctx, s.newSession("session-1")))

	err := s.Storage.DeleteSession(s.Ctx, "session-1")
	s.Require().NoError(err)

	_, err = s.Storage.GetSession(s.Ctx, "session-1")
	s.ErrorIs(err, model.ErrSessionNotFound)
}

func (s *Suite) TestDeleteMissingSessionIsNoop() {
	s.NoError(s.Storage.DeleteSession(s.Ctx, "nonexistent"))
}

// Dictionary tests

func (s *Suite) TestGetDictionaryWordsNotLoaded() {
	_, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.ErrorIs(err, model.ErrDictionaryNotLoaded)
}

func (s *Suite) TestDictionaryPreservesOrderAndDuplicates() {
	words := []string{"ticket", "flight", "airline", "flight"}
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, words))

	retrieved, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.Equal(words, retrieved)
}

func (s *Suite) TestSaveDictionaryReplacesPrevious() {
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{"one", "two"}))
	s.Require().NoError(s.Storage.SaveDictionaryWords(s.Ctx, []string{"three"}))

	retrieved, err := s.Storage.GetDictionaryWords(s.Ctx)
	s.Require().NoError(err)
	s.Equal([]string{"three"}, retrieved)
}
