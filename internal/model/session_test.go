package model

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSessionRecordDropsOldestTurns(t *testing.T) {
	var s Session
	for i := range MaxHistory + 3 {
		s.Record(Turn{GuessesRemaining: i})
	}

	require.Len(t, s.History, MaxHistory)
	assert.Equal(t, 3, s.History[0].GuessesRemaining)
	assert.Equal(t, MaxHistory+2, s.LastTurn().GuessesRemaining)
}

func TestSessionResetKeepsIdentity(t *testing.T) {
	s := Session{ID: "s1", Strategy: StrategyFrequency, WordLength: 6, Pattern: "a __", GuessedLetters: NewLetterSet('a')}
	s.Record(Turn{Letter: 'e'})

	now := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	s.Reset(now)

	assert.Equal(t, SessionStateReset, s.State())
	assert.Equal(t, 6, s.WordLength)
	assert.Equal(t, StrategyFrequency, s.Strategy)
	assert.Nil(t, s.LastTurn())
	assert.Equal(t, now, s.UpdatedAt)
}
