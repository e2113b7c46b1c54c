package solver

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcoot/hangman-solver/internal/model"
)

func TestScoreEmptyCandidates(t *testing.T) {
	sc := Score(nil, 0)
	assert.Equal(t, 0, sc.Len())

	_, _, ok := sc.Best()
	assert.False(t, ok)
	assert.Empty(t, sc.Ranked())
}

func TestScoreFormula(t *testing.T) {
	sc := Score([]string{"flight", "ticket"}, 0)

	// t: 3 occurrences over 2 words, positions {0, 5}
	score, ok := sc.Get('t')
	require.True(t, ok)
	assert.InDelta(t, 1.5+0.2, score, 1e-9)

	// i: 2 occurrences, positions {1, 2}
	score, ok = sc.Get('i')
	require.True(t, ok)
	assert.InDelta(t, 1.0+0.2, score, 1e-9)

	// f: 1 occurrence, position {0}
	score, ok = sc.Get('f')
	require.True(t, ok)
	assert.InDelta(t, 0.5+0.1, score, 1e-9)

	_, ok = sc.Get('z')
	assert.False(t, ok)
}

func TestScoreSkipsGuessedLetters(t *testing.T) {
	sc := Score([]string{"flight", "ticket"}, model.NewLetterSet('t', 'i'))

	_, ok := sc.Get('t')
	assert.False(t, ok)
	_, ok = sc.Get('i')
	assert.False(t, ok)
	assert.Equal(t, 9-2, sc.Len()) // f l g h c k e
}

func TestScoreRewardsPositionalDiversity(t *testing.T) {
	// x and y both appear twice; x always in the first slot, y in both
	sc := Score([]string{"xy", "xz", "yq"}, 0)
	x, _ := sc.Get('x')
	y, _ := sc.Get('y')
	assert.InDelta(t, 2.0/3+0.1, x, 1e-9)
	assert.InDelta(t, 2.0/3+0.2, y, 1e-9)
	assert.Greater(t, y, x)
}

func TestBestPicksHighestScore(t *testing.T) {
	letter, score, ok := Score([]string{"flight", "ticket"}, 0).Best()
	require.True(t, ok)
	assert.Equal(t, 't', letter)
	assert.InDelta(t, 1.7, score, 1e-9)
}

func TestBestBreaksTiesAlphabetically(t *testing.T) {
	letter, _, ok := Score([]string{"ba", "ab"}, 0).Best()
	require.True(t, ok)
	assert.Equal(t, 'a', letter)

	letter, _, ok = Score([]string{"zy", "yz"}, 0).Best()
	require.True(t, ok)
	assert.Equal(t, 'y', letter)
}

func TestRanked(t *testing.T) {
	ranked := Score([]string{"flight", "ticket"}, 0).Ranked()
	require.Len(t, ranked, 9)

	letters := make([]rune, len(ranked))
	for i, ls := range ranked {
		letters[i] = ls.Letter
	}
	assert.Equal(t, []rune{'t', 'i', 'c', 'e', 'f', 'g', 'h', 'k', 'l'}, letters)
	assert.InDelta(t, 1.7, ranked[0].Score, 1e-9)
}

func TestFallbackLetter(t *testing.T) {
	letter, rule, err := FallbackLetter(0)
	require.NoError(t, err)
	assert.Equal(t, 'e', letter)
	assert.Equal(t, model.RuleFrequencyFallback, rule)

	letter, _, err = FallbackLetter(model.NewLetterSet('e', 't', 'a'))
	require.NoError(t, err)
	assert.Equal(t, 'o', letter)
}

func TestFallbackLetterExhausted(t *testing.T) {
	all := model.NewLetterSet([]rune(model.Alphabet)...)
	_, _, err := FallbackLetter(all)
	assert.ErrorIs(t, err, model.ErrAlphabetExhausted)
}

func TestFrequencyOrderCoversAlphabet(t *testing.T) {
	assert.Len(t, FrequencyOrder, 26)
	assert.Equal(t, 26, model.NewLetterSet([]rune(FrequencyOrder)...).Len())
}
