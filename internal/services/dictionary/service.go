package dictionary

import (
	"bufio"
	"context"
	"encoding/hex"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"

	"golang.org/x/crypto/blake2b"

	"github.com/mcoot/hangman-solver/internal/model"
	"github.com/mcoot/hangman-solver/internal/storage"
)

// Options controls how word lists are normalised on load
type Options struct {
	// Dedupe drops repeated words, keeping the first occurrence. Off by default:
	// repeated entries then count more than once when letters are scored.
	Dedupe bool
}

// Service holds the immutable word list used by the solver
type Service struct {
	storage storage.Storage
	opts    Options
	logger  *slog.Logger

	mu          sync.RWMutex
	words       []string
	byLength    map[int][]string
	source      model.DictionarySource
	fingerprint string
	loaded      bool
}

// New creates a new dictionary Service
func New(storage storage.Storage, opts Options, logger *slog.Logger) *Service {
	return &Service{
		storage:  storage,
		opts:     opts,
		logger:   logger.With(slog.String("component", "dictionary")),
		byLength: make(map[int][]string),
	}
}

// ParseWords reads a newline-delimited word list. Lines are trimmed and
// lowercased; anything that is not purely a-z is dropped.
func ParseWords(r io.Reader) ([]string, error) {
	var words []string
	scanner := bufio.NewScanner(r)
	for scanner.Scan() {
		if word, ok := normalizeWord(scanner.Text()); ok {
			words = append(words, word)
		}
	}
	if err := scanner.Err(); err != nil {
		return nil, err
	}
	return words, nil
}

func normalizeWord(line string) (string, bool) {
	word := strings.ToLower(strings.TrimSpace(line))
	if word == "" {
		return "", false
	}
	for _, r := range word {
		if !model.IsLetter(r) {
			return "", false
		}
	}
	return word, true
}

// LoadFromFile loads dictionary words from a file and caches them in storage.
// Only a missing or unreadable file is an error; a failed cache write is
// logged and the file's words stay loaded.
func (s *Service) LoadFromFile(ctx context.Context, path string) error {
	file, err := os.Open(path)
	if err != nil {
		return err
	}
	defer func() { _ = file.Close() }()

	words, err := ParseWords(file)
	if err != nil {
		return fmt.Errorf("read dictionary %s: %w", path, err)
	}

	s.load(words, model.DictionarySourceFile)

	// Save to storage so later starts survive a missing file
	if err := s.storage.SaveDictionaryWords(ctx, s.Words()); err != nil {
		s.logger.Warn("failed to cache dictionary",
			slog.String("path", path),
			slog.String("error", err.Error()),
		)
	}
	return nil
}

// LoadFromStorage loads the word list previously cached in storage
func (s *Service) LoadFromStorage(ctx context.Context) error {
	words, err := s.storage.GetDictionaryWords(ctx)
	if err != nil {
		return err
	}
	s.load(normalizeAll(words), model.DictionarySourceStorage)
	return nil
}

// LoadWords directly loads a slice of words (useful for testing)
func (s *Service) LoadWords(words []string) error {
	s.load(normalizeAll(words), model.DictionarySourceWords)
	return nil
}

// LoadOrFallback tries the file, then the storage cache, then the built-in
// list. Failures are logged as warnings; the dictionary always ends up loaded.
func (s *Service) LoadOrFallback(ctx context.Context, path string) model.DictionarySource {
	fileErr := s.LoadFromFile(ctx, path)
	if fileErr == nil {
		s.logger.Info("dictionary loaded",
			slog.String("path", path),
			slog.Int("words", s.WordCount()),
		)
		return model.DictionarySourceFile
	}

	if err := s.LoadFromStorage(ctx); err == nil {
		s.logger.Warn("dictionary file unavailable, using cached copy",
			slog.String("path", path),
			slog.String("error", fileErr.Error()),
			slog.Int("words", s.WordCount()),
		)
		return model.DictionarySourceStorage
	}

	s.load(normalizeAll(model.FallbackWords), model.DictionarySourceFallback)
	s.logger.Warn("dictionary file unavailable, using minimal fallback dictionary",
		slog.String("path", path),
		slog.String("error", fileErr.Error()),
		slog.Int("words", s.WordCount()),
	)
	return model.DictionarySourceFallback
}

func normalizeAll(words []string) []string {
	out := make([]string, 0, len(words))
	for _, w := range words {
		if word, ok := normalizeWord(w); ok {
			out = append(out, word)
		}
	}
	return out
}

// load swaps in a new word list
func (s *Service) load(words []string, source model.DictionarySource) {
	if s.opts.Dedupe {
		words = dedupe(words)
	}

	byLength := make(map[int][]string)
	for _, w := range words {
		byLength[len(w)] = append(byLength[len(w)], w)
	}
	fp := fingerprint(words)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.words = words
	s.byLength = byLength
	s.source = source
	s.fingerprint = fp
	s.loaded = true
}

func dedupe(words []string) []string {
	seen := make(map[string]struct{}, len(words))
	out := make([]string, 0, len(words))
	for _, w := range words {
		if _, ok := seen[w]; ok {
			continue
		}
		seen[w] = struct{}{}
		out = append(out, w)
	}
	return out
}

// fingerprint is a BLAKE2b-256 digest of the ordered list, one word per line
func fingerprint(words []string) string {
	h, _ := blake2b.New256(nil)
	for _, w := range words {
		_, _ = io.WriteString(h, w)
		_, _ = h.Write([]byte{'\n'})
	}
	return hex.EncodeToString(h.Sum(nil))
}

// Words returns the full dictionary in load order. The slice is shared and
// must not be modified.
func (s *Service) Words() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.words
}

// WordsOfLength returns the words with exactly n letters, in load order.
// The slice is shared and must not be modified.
func (s *Service) WordsOfLength(n int) []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.byLength[n]
}

// IsLoaded returns whether the dictionary has been loaded
func (s *Service) IsLoaded() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.loaded
}

// WordCount returns the number of words in the dictionary
func (s *Service) WordCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.words)
}

// Source reports where the current word list came from
func (s *Service) Source() model.DictionarySource {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.source
}

// Fingerprint identifies the exact word list loaded
func (s *Service) Fingerprint() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.fingerprint
}
