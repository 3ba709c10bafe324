package store

import (
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/ayoisaiah/ppm/internal/models"
)

const sessionBucket = "sessions"

// BoltSessionStore keeps sessions in a bbolt database, one key per session
// id. Since ids are UUIDv7, keys are ordered by creation time.
type BoltSessionStore struct {
	db *bolt.DB
}

// openDB creates or opens a database and locks it.
func openDB(pathToDB string) (*bolt.DB, error) {
	var fileMode fs.FileMode = 0o600

	db, err := bolt.Open(
		pathToDB,
		fileMode,
		&bolt.Options{Timeout: 1 * time.Second},
	)
	if err != nil {
		if errors.Is(err, bolt.ErrDatabaseOpen) ||
			errors.Is(err, bolt.ErrTimeout) {
			return nil, errStoreLocked.Fmt(pathToDB)
		}

		return nil, err
	}

	return db, nil
}

// NewBoltSessionStore opens the database at dbPath, creating it and its
// bucket if needed. The caller must Close the store.
func NewBoltSessionStore(dbPath string) (*BoltSessionStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), dirPermission); err != nil {
		return nil, fmt.Errorf("creating %s: %w", filepath.Dir(dbPath), err)
	}

	db, err := openDB(dbPath)
	if err != nil {
		return nil, err
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err = tx.CreateBucketIfNotExists([]byte(sessionBucket))
		return err
	})
	if err != nil {
		db.Close()
		return nil, err
	}

	return &BoltSessionStore{db: db}, nil
}

// Close releases the database lock.
func (b *BoltSessionStore) Close() error {
	return b.db.Close()
}

func (b *BoltSessionStore) ActiveSession(
	now time.Time,
) (*models.FocusSession, error) {
	var active *models.FocusSession

	err := b.db.View(func(tx *bolt.Tx) error {
		c := tx.Bucket([]byte(sessionBucket)).Cursor()

		for k, v := c.First(); k != nil; k, v = c.Next() {
			var sess models.FocusSession

			if err := json.Unmarshal(v, &sess); err != nil {
				return errMalformedStore.Fmt(string(k)).Wrap(err)
			}

			if sess.IsActive(now) {
				active = &sess
				return nil
			}
		}

		return nil
	})

	return active, err
}

func (b *BoltSessionStore) Create(sess models.FocusSession) error {
	value, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	return b.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).Put([]byte(sess.ID), value)
	})
}

func (b *BoltSessionStore) End(id string, now time.Time) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))

		v := bucket.Get([]byte(id))
		if v == nil {
			return models.ErrNoActiveSession
		}

		var sess models.FocusSession

		if err := json.Unmarshal(v, &sess); err != nil {
			return errMalformedStore.Fmt(id).Wrap(err)
		}

		sess.End = now

		value, err := json.Marshal(sess)
		if err != nil {
			return err
		}

		return bucket.Put([]byte(id), value)
	})
}

func (b *BoltSessionStore) Delete(id string) error {
	return b.db.Update(func(tx *bolt.Tx) error {
		bucket := tx.Bucket([]byte(sessionBucket))

		if bucket.Get([]byte(id)) == nil {
			return models.ErrNoActiveSession
		}

		return bucket.Delete([]byte(id))
	})
}

func (b *BoltSessionStore) List() ([]models.FocusSession, error) {
	sessions := []models.FocusSession{}

	err := b.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket([]byte(sessionBucket)).ForEach(func(k, v []byte) error {
			var sess models.FocusSession

			if err := json.Unmarshal(v, &sess); err != nil {
				return errMalformedStore.Fmt(string(k)).Wrap(err)
			}

			sessions = append(sessions, sess)

			return nil
		})
	})

	return sessions, err
}
