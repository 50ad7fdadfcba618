package repository

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	bolt "go.etcd.io/bbolt"

	"github.com/nguyentantai21042004/meeting-agent/internal/meeting"
)

var errDuplicateID = errors.New("duplicate meeting id")

// storedMeeting is the JSON document kept under each key of the meetings bucket.
// Text fields are raw bytes so values that are not valid UTF-8 survive the
// JSON round trip unchanged.
type storedMeeting struct {
	ID          string    `json:"id"`
	Filename    []byte    `json:"filename"`
	CreatedAt   time.Time `json:"created_at"`
	Transcript  []byte    `json:"transcript"`
	Summary     []byte    `json:"summary"`
	ActionItems [][]byte  `json:"action_items"`
}

func newStoredMeeting(id string, createdAt time.Time, filename, transcript, summary string, actionItems []string) storedMeeting {
	items := make([][]byte, len(actionItems))
	for i, item := range actionItems {
		items[i] = []byte(item)
	}
	return storedMeeting{
		ID:          id,
		Filename:    []byte(filename),
		CreatedAt:   createdAt,
		Transcript:  []byte(transcript),
		Summary:     []byte(summary),
		ActionItems: items,
	}
}

func (s storedMeeting) record() meeting.Record {
	items := make([]string, len(s.ActionItems))
	for i, item := range s.ActionItems {
		items[i] = string(item)
	}
	return meeting.Record{
		ID:          s.ID,
		Filename:    string(s.Filename),
		CreatedAt:   s.CreatedAt,
		Transcript:  string(s.Transcript),
		Summary:     string(s.Summary),
		ActionItems: items,
	}
}

func (s storedMeeting) matches(query []byte) bool {
	return bytes.Contains(s.Transcript, query) || bytes.Contains(s.Summary, query)
}

// Create inserts one complete record in a single transaction.
func (r *implRepository) Create(ctx context.Context, filename, transcript, summary string, actionItems []string) (string, error) {
	const op = "repository.Create"

	doc := newStoredMeeting(r.newID(), r.now(), filename, transcript, summary, actionItems)

	enc, err := json.Marshal(doc)
	if err != nil {
		return "", meeting.E(meeting.KindPersistence, op, fmt.Errorf("encode meeting: %w", err))
	}

	err = r.db.Update(func(tx *bolt.Tx) error {
		b := tx.Bucket(meetingsBucket)
		if b == nil {
			return fmt.Errorf("bucket %s missing", meetingsBucket)
		}
		if b.Get([]byte(doc.ID)) != nil {
			return errDuplicateID
		}
		return b.Put([]byte(doc.ID), enc)
	})
	if err != nil {
		return "", meeting.E(meeting.KindPersistence, op, err)
	}

	r.logger.Info(ctx, "Meeting saved with ID: %s (%d action items)", doc.ID, len(doc.ActionItems))
	return doc.ID, nil
}

// Get returns the record stored under id.
func (r *implRepository) Get(ctx context.Context, id string) (meeting.Record, error) {
	const op = "repository.Get"

	if id == "" {
		return meeting.Record{}, meeting.Ef(meeting.KindNotFound, op, "empty meeting id")
	}

	var doc storedMeeting
	found := false
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(meetingsBucket)
		if b == nil {
			return nil
		}
		v := b.Get([]byte(id))
		if v == nil {
			return nil
		}
		found = true
		return json.Unmarshal(v, &doc)
	})
	if err != nil {
		return meeting.Record{}, meeting.E(meeting.KindPersistence, op, fmt.Errorf("read meeting %s: %w", id, err))
	}
	if !found {
		return meeting.Record{}, meeting.Ef(meeting.KindNotFound, op, "meeting %s", id)
	}

	return doc.record(), nil
}

// Search scans every record and returns those whose transcript or summary
// contains query. Matching is case-sensitive; results follow key order.
func (r *implRepository) Search(ctx context.Context, query string) ([]meeting.SearchHit, error) {
	const op = "repository.Search"

	if query == "" {
		return nil, meeting.Ef(meeting.KindInvalidRequest, op, "search query cannot be empty")
	}

	needle := []byte(query)
	hits := []meeting.SearchHit{}
	err := r.db.View(func(tx *bolt.Tx) error {
		b := tx.Bucket(meetingsBucket)
		if b == nil {
			return nil
		}
		return b.ForEach(func(k, v []byte) error {
			var doc storedMeeting
			if err := json.Unmarshal(v, &doc); err != nil {
				r.logger.Warn(ctx, "Skipping malformed meeting %s: %v", string(k), err)
				return nil
			}
			if doc.matches(needle) {
				hits = append(hits, meeting.SearchHit{
					ID:        doc.ID,
					Filename:  string(doc.Filename),
					CreatedAt: doc.CreatedAt,
					Summary:   string(doc.Summary),
				})
			}
			return nil
		})
	})
	if err != nil {
		return nil, meeting.E(meeting.KindPersistence, op, err)
	}

	r.logger.Debug(ctx, "Search %q matched %d meetings", query, len(hits))
	return hits, nil
}

func (r *implRepository) Close() error {
	return r.db.Close()
}
