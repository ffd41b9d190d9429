package storage

import (
	"fmt"
	"log"
	"os"
	"path/filepath"

	bolt "go.etcd.io/bbolt"
	"pkg.jsn.cam/yamr/pkg/yamr"
	"pkg.jsn.cam/yamr/pkg/yamr/protocol"
)

var runsBucket = []byte("runs")

// BoltStore implements RunStore using bbolt (formerly bolt)
type BoltStore struct {
	db   *bolt.DB
	path string
}

// NewBoltStore opens (or creates) a run history database at dbPath
func NewBoltStore(dbPath string) (*BoltStore, error) {
	if err := os.MkdirAll(filepath.Dir(dbPath), 0755); err != nil {
		return nil, fmt.Errorf("create db directory: %w", err)
	}

	db, err := bolt.Open(dbPath, 0600, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to open bbolt database: %w", err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(runsBucket)
		return err
	})
	if err != nil {
		db.Close()
		return nil, fmt.Errorf("create runs bucket: %w", err)
	}

	return &BoltStore{db: db, path: dbPath}, nil
}

// Path returns the database file path
func (s *BoltStore) Path() string {
	return s.path
}

// SaveRun stores a run record keyed by its ID
func (s *BoltStore) SaveRun(rec protocol.RunRecord) error {
	data, err := EncodeJSON(rec)
	if err != nil {
		return err
	}

	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Put([]byte(rec.ID), data)
	})
}

// GetRun retrieves a run record. Records written by an incompatible engine
// version return ErrIncompatibleVersion.
func (s *BoltStore) GetRun(id string) (*protocol.RunRecord, error) {
	var rec *protocol.RunRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		v := tx.Bucket(runsBucket).Get([]byte(id))
		if v == nil {
			return nil
		}

		var decoded protocol.RunRecord
		if err := DecodeJSON(v, &decoded); err != nil {
			return err
		}
		rec = &decoded
		return nil
	})
	if err != nil || rec == nil {
		return nil, err
	}

	if err := checkVersion(rec); err != nil {
		return nil, err
	}
	return rec, nil
}

// ListRuns returns every readable run, oldest first. Undecodable or
// incompatible records are skipped.
func (s *BoltStore) ListRuns() ([]protocol.RunRecord, error) {
	var runs []protocol.RunRecord

	err := s.db.View(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).ForEach(func(k, v []byte) error {
			var rec protocol.RunRecord
			if err := DecodeJSON(v, &rec); err != nil {
				log.Printf("[HISTORY] Skipping unreadable run %s: %v", k, err)
				return nil
			}
			if err := checkVersion(&rec); err != nil {
				log.Printf("[HISTORY] Skipping run %s: %v", k, err)
				return nil
			}
			runs = append(runs, rec)
			return nil
		})
	})
	if err != nil {
		return nil, err
	}

	sortRuns(runs)
	return runs, nil
}

// DeleteRun removes a run record; deleting a missing run is not an error
func (s *BoltStore) DeleteRun(id string) error {
	return s.db.Update(func(tx *bolt.Tx) error {
		return tx.Bucket(runsBucket).Delete([]byte(id))
	})
}

// Close closes the database
func (s *BoltStore) Close() error {
	return s.db.Close()
}

func checkVersion(rec *protocol.RunRecord) error {
	ok, err := protocol.IsCompatibleVersion(rec.Version, protocol.Version)
	if err != nil {
		return fmt.Errorf("%w: %w", yamr.ErrIncompatibleVersion, err)
	}
	if !ok {
		return fmt.Errorf("%w: %s", yamr.ErrIncompatibleVersion,
			protocol.GetCompatibilityError(rec.Version, protocol.Version))
	}
	return nil
}
