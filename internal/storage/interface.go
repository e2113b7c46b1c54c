package storage

import (
	"context"

	"github.com/mcoot/hangman-solver/internal/model"
)

// Storage defines the interface for data persistence
type Storage interface {
	// Session operations
	SaveSession(ctx context.Context, session *model.Session) error
	GetSession(ctx context.Context, id model.SessionID) (*model.Session, error)
	DeleteSession(ctx context.Context, id model.SessionID) error

	// Dictionary operations. Word order and duplicates are preserved.
	GetDictionaryWords(ctx context.Context) ([]string, error)
	SaveDictionaryWords(ctx context.Context, words []string) error
}

// Closer is implemented by storage backends holding external connections
type Closer interface {
	Close() error
}
