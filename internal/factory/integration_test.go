package factory

import (
	"context"
	"path/filepath"
	"strings"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/mcoot/hangman-solver/internal/model"
	redisstorage "github.com/mcoot/hangman-solver/internal/storage/redis"
	"github.com/mcoot/hangman-solver/internal/testutil"
)

type IntegrationSuite struct {
	suite.Suite
	app *TestApp
	ctx context.Context
}

func TestIntegrationSuite(t *testing.T) {
	suite.Run(t, new(IntegrationSuite))
}

func (s *IntegrationSuite) SetupTest() {
	s.app = NewTestApp()
	s.ctx = context.Background()
	s.Require().NoError(s.app.LoadTestDictionary())
}

// playSession drives a session the way a client would: report the word state,
// apply the suggested letter, repeat.
func (s *IntegrationSuite) playSession(id model.SessionID, secret string, maxWrong int) (won bool, turns int) {
	pattern := model.BlankPattern(len(secret))
	var guessed model.LetterSet
	wrong := 0

	for !pattern.IsComplete() && wrong < maxWrong {
		decision, _, err := s.app.SessionController.Guess(s.ctx, id, model.GuessRequest{
			Pattern:          pattern.String(),
			GuessedLetters:   guessed.Strings(),
			GuessesRemaining: maxWrong - wrong,
		})
		s.Require().NoError(err)
		s.Require().False(guessed.Contains(decision.Letter), "letter %c repeated", decision.Letter)

		guessed = guessed.Add(decision.Letter)
		if strings.ContainsRune(secret, decision.Letter) {
			pattern = pattern.Reveal(secret, decision.Letter)
		} else {
			wrong++
		}
		turns++
	}
	return pattern.IsComplete(), turns
}

// Test: Complete game through a session, from creation to solved word
func (s *IntegrationSuite) TestCompleteSessionGame() {
	s.app.MockRandom.QueueString("SESSION00001")

	sess, err := s.app.SessionController.Create(s.ctx, "", 0)
	s.Require().NoError(err)
	s.Equal(model.SessionID("SESSION00001"), sess.ID)

	won, turns := s.playSession(sess.ID, "flight", 6)
	s.True(won)

	stored, err := s.app.SessionController.Get(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Len(stored.History, turns)
	s.Zero(stored.WordLength)
	s.Equal("f l i g h t", stored.Pattern)
	s.Equal(model.SessionStateActive, stored.State())

	// Reset and play a different word in the same session
	_, err = s.app.SessionController.Reset(s.ctx, sess.ID)
	s.Require().NoError(err)

	won, turns = s.playSession(sess.ID, "airport", 6)
	s.True(won)

	stored, err = s.app.SessionController.Get(s.ctx, sess.ID)
	s.Require().NoError(err)
	s.Len(stored.History, turns)
	s.Equal("a i r p o r t", stored.Pattern)
}

// Test: Every simulated game ends in a win or with the allowance used up,
// without a letter being guessed twice
func (s *IntegrationSuite) TestSimulatorPlaysWholeDictionary() {
	sim, err := s.app.NewSimulator(model.StrategyFrequency)
	s.Require().NoError(err)

	for _, word := range TestWords {
		result, err := sim.Play(s.ctx, word, 6)
		s.Require().NoError(err)
		s.True(result.Won || result.WrongGuesses == 6, word)

		var seen model.LetterSet
		for _, turn := range result.Turns {
			s.False(seen.Contains(turn.Letter), "%q: repeated %c", word, turn.Letter)
			seen = seen.Add(turn.Letter)
		}
	}

	result, err := sim.Play(s.ctx, "flight", 6)
	s.Require().NoError(err)
	s.True(result.Won)
	s.Zero(result.WrongGuesses)
}

// Test: Sessions are independent of one another
func (s *IntegrationSuite) TestSessionsAreIsolated() {
	s.app.MockRandom.QueueString("A", "B")

	a, err := s.app.SessionController.Create(s.ctx, "", 0)
	s.Require().NoError(err)
	b, err := s.app.SessionController.Create(s.ctx, "", 0)
	s.Require().NoError(err)

	_, _, err = s.app.SessionController.Guess(s.ctx, a.ID, model.GuessRequest{
		Pattern:        "__ __ __",
		GuessedLetters: []string{"a"},
	})
	s.Require().NoError(err)

	storedB, err := s.app.SessionController.Get(s.ctx, b.ID)
	s.Require().NoError(err)
	s.Equal(model.SessionStateReset, storedB.State())
}

func (s *IntegrationSuite) TestNewSimulatorUnknownStrategy() {
	_, err := s.app.NewSimulator("oracle")
	s.ErrorIs(err, model.ErrUnknownStrategy)
}

func TestNewDefaultsToMemory(t *testing.T) {
	app, err := New(Config{})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()

	assert.Equal(t, []string{model.StrategyFrequency, model.StrategyRandom}, app.Strategies.Names())
}

func TestNewInvalidStorageType(t *testing.T) {
	_, err := New(Config{StorageType: "mongo"})
	assert.Error(t, err)
}

func TestNewRedisRequiresConfig(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeRedis})
	assert.Error(t, err)
}

func TestNewSQLiteRequiresPath(t *testing.T) {
	_, err := New(Config{StorageType: StorageTypeSQLite})
	assert.Error(t, err)
}

func TestLoadDictionaryFromFile(t *testing.T) {
	app, err := New(Config{
		DictionaryPath: filepath.Join("..", "services", "dictionary", "testdata", "words.txt"),
		Logger:         testutil.NopLogger(),
	})
	require.NoError(t, err)

	assert.Equal(t, model.DictionarySourceFile, app.LoadDictionary(context.Background()))
	assert.True(t, app.DictionaryService.IsLoaded())
}

func TestLoadDictionaryFallsBack(t *testing.T) {
	app, err := New(Config{DictionaryPath: filepath.Join(t.TempDir(), "missing.txt")})
	require.NoError(t, err)

	assert.Equal(t, model.DictionarySourceFallback, app.LoadDictionary(context.Background()))
	assert.Equal(t, len(model.FallbackWords), app.DictionaryService.WordCount())
}

// The SQLite backend keeps the dictionary across restarts
func TestSQLiteDictionarySurvivesRestart(t *testing.T) {
	dbPath := filepath.Join(t.TempDir(), "hangman.db")
	ctx := context.Background()

	first, err := New(Config{
		StorageType:    StorageTypeSQLite,
		SQLitePath:     dbPath,
		DictionaryPath: filepath.Join("..", "services", "dictionary", "testdata", "words.txt"),
	})
	require.NoError(t, err)
	require.Equal(t, model.DictionarySourceFile, first.LoadDictionary(ctx))
	fingerprint := first.DictionaryService.Fingerprint()
	require.NoError(t, first.Close())

	second, err := New(Config{
		StorageType:    StorageTypeSQLite,
		SQLitePath:     dbPath,
		DictionaryPath: filepath.Join(t.TempDir(), "missing.txt"),
	})
	require.NoError(t, err)
	defer func() { _ = second.Close() }()

	assert.Equal(t, model.DictionarySourceStorage, second.LoadDictionary(ctx))
	assert.Equal(t, fingerprint, second.DictionaryService.Fingerprint())
}

func TestRedisSessionsRoundTrip(t *testing.T) {
	mr := miniredis.RunT(t)
	cfg := redisstorage.DefaultConfig()
	cfg.URL = "redis://" + mr.Addr()

	app, err := New(Config{StorageType: StorageTypeRedis, RedisConfig: &cfg})
	require.NoError(t, err)
	defer func() { _ = app.Close() }()
	require.NoError(t, app.DictionaryService.LoadWords(model.FallbackWords))

	ctx := context.Background()
	sess, err := app.SessionController.Create(ctx, "", 0)
	require.NoError(t, err)

	decision, _, err := app.SessionController.Guess(ctx, sess.ID, model.GuessRequest{
		Pattern:        "f __ i __ h t",
		GuessedLetters: []string{"f", "i", "h", "t"},
	})
	require.NoError(t, err)
	assert.Equal(t, 'l', decision.Letter)

	stored, err := app.SessionController.Get(ctx, sess.ID)
	require.NoError(t, err)
	assert.Len(t, stored.History, 1)
}
