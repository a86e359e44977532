// Package tokenstore persists the FinBoard API token inside a
// [model.KeyValueStore] under a single canonical key.
//
// Older dashboard builds stored the token under different keys. Call
// [*Store.Migrate] once at startup to consolidate them; afterwards only
// the canonical key is read and written.
package tokenstore

import (
	"errors"
	"fmt"

	"github.com/finboard/finboard-cli/internal/kvstore"
	"github.com/finboard/finboard-cli/internal/model"
)

// Key is the canonical key holding the token.
const Key = "API_TOKEN"

// LegacyKeys are keys used by older clients, in lookup order.
var LegacyKeys = []string{"FINBOARD_TOKEN", "token"}

// Store reads and writes the API token.
//
// Construct using [New].
type Store struct {
	kvs        model.KeyValueStore
	legacyKeys []string
	logger     model.Logger
}

// New creates a [*Store] using the given key-value store and
// the default [LegacyKeys]. A nil logger discards messages.
func New(kvs model.KeyValueStore, logger model.Logger) *Store {
	return &Store{
		kvs:        kvs,
		legacyKeys: LegacyKeys,
		logger:     model.ValidLoggerOrDefault(logger),
	}
}

// WithLegacyKeys returns a copy of the store migrating from the given keys.
func (s *Store) WithLegacyKeys(keys ...string) *Store {
	return &Store{
		kvs:        s.kvs,
		legacyKeys: keys,
		logger:     s.logger,
	}
}

// read returns the value of key or "" when the key does not exist.
func (s *Store) read(key string) (string, error) {
	data, err := s.kvs.Get(key)
	if errors.Is(err, kvstore.ErrNoSuchKey) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return string(data), nil
}

// Get returns the current token or an empty string if no token is
// stored. Read errors are logged and yield an empty token, which
// simply means requests go out without an Authorization header.
func (s *Store) Get() string {
	token, err := s.read(Key)
	if err != nil {
		s.logger.Warnf("tokenstore: cannot read %s: %s", Key, err.Error())
		return ""
	}
	return token
}

// Set stores the token verbatim. Setting the empty string clears it.
func (s *Store) Set(token string) error {
	if err := s.kvs.Set(Key, []byte(token)); err != nil {
		return fmt.Errorf("tokenstore: cannot write %s: %w", Key, err)
	}
	return nil
}

// Clear is equivalent to Set("").
func (s *Store) Clear() error {
	return s.Set("")
}

// Migrate consolidates the legacy keys into [Key]. When [Key] is empty
// the first non-empty legacy value becomes the token. Every legacy key
// that holds a value is then cleared, so a second call is a no-op.
func (s *Store) Migrate() error {
	current, err := s.read(Key)
	if err != nil {
		return fmt.Errorf("tokenstore: cannot read %s: %w", Key, err)
	}
	for _, key := range s.legacyKeys {
		value, err := s.read(key)
		if err != nil {
			return fmt.Errorf("tokenstore: cannot read %s: %w", key, err)
		}
		if value == "" {
			continue
		}
		if current == "" {
			s.logger.Infof("tokenstore: migrating token from %s to %s", key, Key)
			if err := s.Set(value); err != nil {
				return err
			}
			current = value
		}
		if err := s.kvs.Set(key, []byte{}); err != nil {
			return fmt.Errorf("tokenstore: cannot clear %s: %w", key, err)
		}
		s.logger.Debugf("tokenstore: cleared legacy key %s", key)
	}
	return nil
}
