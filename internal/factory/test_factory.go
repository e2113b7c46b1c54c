package factory

import (
	"time"

	"github.com/mcoot/hangman-solver/internal/dependencies/mocks"
	"github.com/mcoot/hangman-solver/internal/services/dictionary"
	"github.com/mcoot/hangman-solver/internal/storage/memory"
	"github.com/mcoot/hangman-solver/internal/testutil"
)

// TestApp extends App with test-specific helpers
type TestApp struct {
	*App

	// Mocks for test control
	MockClock  *mocks.MockClock
	MockRandom *mocks.MockRandom
}

// NewTestApp creates an App configured for testing with mocked dependencies
func NewTestApp() *TestApp {
	store := memory.New()
	mockClock := mocks.NewMockClock(time.Date(2024, 1, 1, 12, 0, 0, 0, time.UTC))
	mockRandom := mocks.NewMockRandom()

	app := newWithDependencies(store, mockClock, mockRandom, dictionary.Options{}, testutil.NopLogger())

	return &TestApp{
		App:        app,
		MockClock:  mockClock,
		MockRandom: mockRandom,
	}
}

// TestWords is a small dictionary with several words of each length from 3 to 8
var TestWords = []string{
	// 3-letter words
	"ace", "act", "bat", "bed", "cab", "cat", "cot", "cut", "dog", "dot",
	"hat", "hot", "jam", "jar", "mat", "pat", "rat", "sat", "tan", "tap",
	// 4-letter words
	"back", "bake", "ball", "band", "bank", "card", "care", "cart", "dark", "dart",
	"fact", "fame", "game", "gate", "hand", "hard", "jazz", "lake", "land", "mark",
	// 5-letter words
	"about", "board", "brain", "bread", "chair", "chart", "clear", "close", "crane", "dream",
	"earth", "faith", "light", "night", "plant", "right", "sight", "stone", "train", "water",
	// 6-letter words
	"flight", "bright", "fright", "slight", "ticket", "pocket", "rocket", "market", "planet", "window",
	// 7-8 letter words
	"airline", "airport", "between", "example", "boarding", "terminal", "question", "mountain",
}

// LoadTestDictionary loads a small dictionary for testing
func (t *TestApp) LoadTestDictionary() error {
	return t.DictionaryService.LoadWords(TestWords)
}
