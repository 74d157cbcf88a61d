package store

import (
	"database/sql"

	json "github.com/goccy/go-json"
	"github.com/pkg/errors"
)

// slot is one durable key-value slot holding a whole collection serialized as
// a single JSON blob. Every save rewrites the blob in full.
type slot struct {
	db  *sql.DB
	key string
}

func (s slot) load(dst any) error {
	var blob string
	err := s.db.QueryRow(`SELECT value FROM kv WHERE key = ?`, s.key).Scan(&blob)
	if errors.Is(err, sql.ErrNoRows) {
		// first run, nothing persisted yet
		return nil
	}
	if err != nil {
		return errors.Wrapf(err, "kv.load %s", s.key)
	}
	return errors.Wrapf(json.Unmarshal([]byte(blob), dst), "kv.parse %s", s.key)
}

func (s slot) save(src any) error {
	blob, err := json.Marshal(src)
	if err != nil {
		return errors.Wrapf(err, "kv.marshal %s", s.key)
	}
	_, err = s.db.Exec(`
		INSERT INTO kv (key, value) VALUES (?, ?)
		ON CONFLICT (key) DO UPDATE SET value = excluded.value`,
		s.key, string(blob),
	)
	return errors.Wrapf(err, "kv.save %s", s.key)
}
