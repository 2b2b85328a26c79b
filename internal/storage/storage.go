package storage

import (
	"encoding/json"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"
	"go.uber.org/zap"
)

// stateBucket holds every persisted value, one JSON blob per key.
var stateBucket = []byte("state")

// Store is the durable local key-value store backing every stateful
// component. Each key is read once at startup and rewritten whole on every
// mutation; there is no transactional grouping across keys.
type Store struct {
	db     *bolt.DB
	logger *zap.Logger
}

// Open opens (or creates) the store file at path.
func Open(path string, logger *zap.Logger) (*Store, error) {
	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("failed to open store %q: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(stateBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to create state bucket: %w", err)
	}

	return &Store{db: db, logger: logger}, nil
}

// Load reads the value stored under key into v. It reports false when the
// key is absent or the stored bytes do not parse; callers fall back to
// their built-in default in that case and no error is surfaced.
func (s *Store) Load(key string, v interface{}) bool {
	var raw []byte
	err := s.db.View(func(tx *bolt.Tx) error {
		if data := tx.Bucket(stateBucket).Get([]byte(key)); data != nil {
			raw = make([]byte, len(data))
			copy(raw, data)
		}
		return nil
	})
	if err != nil {
		s.logger.Warn("Failed to read persisted value, using default",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	if raw == nil {
		return false
	}

	if err := json.Unmarshal(raw, v); err != nil {
		s.logger.Warn("Persisted value is unreadable, using default",
			zap.String("key", key),
			zap.Error(err),
		)
		return false
	}
	return true
}

// Save serializes v as JSON and rewrites the value under key.
func (s *Store) Save(key string, v interface{}) error {
	data, err := json.Marshal(v)
	if err != nil {
		return fmt.Errorf("failed to serialize value for %q: %w", key, err)
	}

	err = s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(stateBucket).Put([]byte(key), data)
	})
	if err != nil {
		return fmt.Errorf("failed to persist %q: %w", key, err)
	}
	return nil
}

// Health returns basic health information about the store file.
func (s *Store) Health() map[string]string {
	health := map[string]string{
		"status": "up",
		"path":   s.db.Path(),
	}

	err := s.db.View(func(tx *bolt.Tx) error {
		health["keys"] = fmt.Sprintf("%d", tx.Bucket(stateBucket).Stats().KeyN)
		return nil
	})
	if err != nil {
		health["status"] = "down"
		health["error"] = err.Error()
	}
	return health
}

// Close closes the underlying store file.
func (s *Store) Close() error {
	return s.db.Close()
}
