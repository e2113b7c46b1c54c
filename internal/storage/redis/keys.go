package redis

import (
	"github.com/mcoot/hangman-solver/internal/model"
)

func (s *Storage) sessionKey(id model.SessionID) string {
	return s.cfg.prefix() + ":session:" + string(id)
}

// dictionaryKey holds the ordered word list
func (s *Storage) dictionaryKey() string {
	return s.cfg.prefix() + ":dictionary"
}

// dictionaryStagingKey holds a list while it is being written, so readers never
// see a partially written dictionary
func (s *Storage) dictionaryStagingKey() string {
	return s.cfg.prefix() + ":dictionary:staging"
}
