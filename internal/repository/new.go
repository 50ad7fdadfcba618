package repository

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	bolt "go.etcd.io/bbolt"

	"github.com/nguyentantai21042004/meeting-agent/internal/logger"
)

var meetingsBucket = []byte("meetings")

type implRepository struct {
	db     *bolt.DB
	logger logger.Logger
	newID  func() string
	now    func() time.Time
}

// Open opens (or creates) the bbolt database at path and ensures the meetings bucket exists.
func Open(path string, log logger.Logger) (Repository, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return nil, fmt.Errorf("create database dir: %w", err)
	}

	db, err := bolt.Open(path, 0o600, &bolt.Options{Timeout: time.Second})
	if err != nil {
		return nil, fmt.Errorf("open database %s: %w", path, err)
	}

	err = db.Update(func(tx *bolt.Tx) error {
		_, err := tx.CreateBucketIfNotExists(meetingsBucket)
		return err
	})
	if err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create meetings bucket: %w", err)
	}

	return &implRepository{
		db:     db,
		logger: log,
		newID:  func() string { return uuid.New().String() },
		now:    func() time.Time { return time.Now().UTC() },
	}, nil
}
