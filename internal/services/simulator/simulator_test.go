package simulator

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/services/dictionary"
	"github.com/mcoot/hangman-solver/internal/services/solver"
	"github.com/mcoot/hangman-solver/internal/storage/memory"
	"github.com/mcoot/hangman-solver/internal/testutil"
)

func newSimulator(t *testing.T, words ...string) *Simulator {
	t.Helper()
	dict := dictionary.New(memory.New(), dictionary.Options{}, testutil.NopLogger())
	require.NoError(t, dict.LoadWords(words))
	return New(solver.New(dict, testutil.NopLogger()), testutil.NopLogger())
}

func TestPlayWinsEveryDictionaryWord(t *testing.T) {
	sim := newSimulator(t, model.FallbackWords...)

	for _, word := range model.FallbackWords {
		t.Run(word, func(t *testing.T) {
			result, err := sim.Play(context.Background(), word, DefaultMaxWrong)
			require.NoError(t, err)

			assert.True(t, result.Won)
			assert.Equal(t, model.Pattern([]rune(word)).String(), result.FinalPattern)
			assert.Less(t, result.WrongGuesses, DefaultMaxWrong)
		})
	}
}

// Every guess must be a letter nobody has tried yet
func TestPlayNeverRepeatsALetter(t *testing.T) {
	sim := newSimulator(t, model.FallbackWords...)

	result, err := sim.Play(context.Background(), "zzzzzz", 26)
	require.NoError(t, err)

	seen := map[rune]bool{}
	for _, turn := range result.Turns {
		assert.False(t, seen[turn.Letter], "repeated %c", turn.Letter)
		seen[turn.Letter] = true
	}
	assert.True(t, result.Won)
}

func TestPlayLoses(t *testing.T) {
	sim := newSimulator(t, model.FallbackWords...)

	result, err := sim.Play(context.Background(), "jazz", 2)
	require.NoError(t, err)

	assert.False(t, result.Won)
	assert.Equal(t, 2, result.WrongGuesses)
	assert.Equal(t, 2, result.MaxWrong)
	assert.Equal(t, "__ __ __ __", result.FinalPattern)
	require.Len(t, result.Turns, 2)
	assert.Equal(t, model.RuleFrequencyFallback, result.Turns[0].Rule)
	assert.Equal(t, 'e', result.Turns[0].Letter)
	assert.Equal(t, 't', result.Turns[1].Letter)
}

func TestPlayRecordsHits(t *testing.T) {
	sim := newSimulator(t, model.FallbackWords...)

	result, err := sim.Play(context.Background(), "ticket", DefaultMaxWrong)
	require.NoError(t, err)

	require.NotEmpty(t, result.Turns)
	first := result.Turns[0]
	assert.Equal(t, 't', first.Letter)
	assert.True(t, first.Hit)
	assert.Equal(t, "t __ __ __ __ t", first.Pattern)
	assert.Equal(t, 2, first.CandidateCount)
}

func TestPlayDefaultsMaxWrong(t *testing.T) {
	sim := newSimulator(t, model.FallbackWords...)

	result, err := sim.Play(context.Background(), "Flight", 0)
	require.NoError(t, err)

	assert.Equal(t, DefaultMaxWrong, result.MaxWrong)
	assert.Equal(t, "flight", result.Secret)
	assert.Equal(t, model.StrategyFrequency, result.Strategy)
}

func TestPlayInvalidSecret(t *testing.T) {
	sim := newSimulator(t, model.FallbackWords...)

	for _, secret := range []string{"", "   ", "co-op", "naïve", "abc1"} {
		_, err := sim.Play(context.Background(), secret, DefaultMaxWrong)
		assert.ErrorIs(t, err, model.ErrInvalidWord, secret)
	}
}

func TestPlayCancelled(t *testing.T) {
	sim := newSimulator(t, model.FallbackWords...)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := sim.Play(ctx, "flight", DefaultMaxWrong)
	assert.ErrorIs(t, err, context.Canceled)
}
