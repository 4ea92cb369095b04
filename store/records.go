package store

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/verifiedboiy/fanmeetzone/applications/order"
	"github.com/verifiedboiy/fanmeetzone/logger"
)

// RecordStore owns the single JSON document that is the entire durable state
// of the system. Every read and write goes through one mutex, so concurrent
// requests cannot drop each other's changes. The document is a flat array of
// order records; there is no schema versioning and no migrations.
type RecordStore struct {
	mu   sync.Mutex
	path string
}

// NewRecordStore points the store at the given file. The file does not need
// to exist yet; a missing document reads as an empty collection.
func NewRecordStore(path string) *RecordStore {
	return &RecordStore{path: path}
}

// LoadAll reads the full document. A missing or malformed file is treated as
// "no records", so callers never see a read error.
func (s *RecordStore) LoadAll() []order.Order {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadLocked()
}

// Append adds one order to the document via read-modify-write.
func (s *RecordStore) Append(o order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.loadLocked()
	rows = append(rows, o)
	if err := s.saveLocked(rows); err != nil {
		logger.Log.Error(fmt.Sprintf("[records] Append failed for ticket %s: %v", o.TicketID, err))
		return fmt.Errorf("append record: %w", err)
	}
	logger.Log.Info(fmt.Sprintf("[records] Appended order %s (total %d records).", o.TicketID, len(rows)))
	return nil
}

// RewriteAll replaces the whole document. Moderation actions use this after
// mutating the in-memory snapshot.
func (s *RecordStore) RewriteAll(rows []order.Order) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.saveLocked(rows); err != nil {
		logger.Log.Error(fmt.Sprintf("[records] RewriteAll failed: %v", err))
		return fmt.Errorf("rewrite records: %w", err)
	}
	return nil
}

// FindByTicket scans the document for the first record with the given ticket
// ID. Ticket IDs are expected-unique but not enforced.
func (s *RecordStore) FindByTicket(ticketID string) (order.Order, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, o := range s.loadLocked() {
		if o.TicketID == ticketID {
			return o, true
		}
	}
	return order.Order{}, false
}

// DeleteByTicket removes the matching record and persists the filtered
// collection. An unknown ticket leaves the document unchanged and is not an
// error.
func (s *RecordStore) DeleteByTicket(ticketID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	rows := s.loadLocked()
	kept := make([]order.Order, 0, len(rows))
	for _, o := range rows {
		if o.TicketID != ticketID {
			kept = append(kept, o)
		}
	}
	if len(kept) == len(rows) {
		logger.Log.Warn(fmt.Sprintf("[records] Delete for unknown ticket %s, store unchanged.", ticketID))
		return nil
	}
	if err := s.saveLocked(kept); err != nil {
		return fmt.Errorf("delete record: %w", err)
	}
	logger.Log.Info(fmt.Sprintf("[records] Deleted order %s.", ticketID))
	return nil
}

func (s *RecordStore) loadLocked() []order.Order {
	data, err := os.ReadFile(s.path)
	if err != nil {
		if !os.IsNotExist(err) {
			logger.Log.Warn(fmt.Sprintf("[records] Read failed, treating as empty: %v", err))
		}
		return []order.Order{}
	}
	var rows []order.Order
	if err := json.Unmarshal(data, &rows); err != nil {
		logger.Log.Warn(fmt.Sprintf("[records] Malformed document, treating as empty: %v", err))
		return []order.Order{}
	}
	return rows
}

func (s *RecordStore) saveLocked(rows []order.Order) error {
	if dir := filepath.Dir(s.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return err
		}
	}
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(s.path, data, 0o644)
}
