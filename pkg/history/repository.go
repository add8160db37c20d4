package history

import (
	"errors"
	"fmt"
	"sync"
)

// DefaultMaxRecords bounds the history when no limit is configured.
const DefaultMaxRecords = 50

// ErrNotFound is returned when no record has the requested ID.
var ErrNotFound = errors.New("history: record not found")

// Repository stores computation records.
type Repository interface {
	Add(rec Record) (Record, error)
	List() ([]Record, error)
	Get(id int) (Record, error)
	Clear() error
}

// MemoryRepository is a simple in-memory implementation useful during tests or
// when history should not outlive the process.
type MemoryRepository struct {
	mu      sync.RWMutex
	records []Record
	nextID  int
	max     int
}

// NewMemoryRepository creates an empty repository holding at most limit
// records. A non-positive limit means DefaultMaxRecords.
func NewMemoryRepository(limit int) *MemoryRepository {
	if limit <= 0 {
		limit = DefaultMaxRecords
	}
	return &MemoryRepository{nextID: 1, max: limit}
}

// Add assigns the next ID to rec and stores it, dropping the oldest records
// beyond the limit.
func (r *MemoryRepository) Add(rec Record) (Record, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	rec.ID = r.nextID
	r.nextID++
	r.records = append(r.records, rec)
	if over := len(r.records) - r.max; over > 0 {
		r.records = append([]Record(nil), r.records[over:]...)
	}
	return rec, nil
}

// List returns all records, oldest first.
func (r *MemoryRepository) List() ([]Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return out, nil
}

// Get returns the record with the given ID.
func (r *MemoryRepository) Get(id int) (Record, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	for _, rec := range r.records {
		if rec.ID == id {
			return rec, nil
		}
	}
	return Record{}, fmt.Errorf("%w: %d", ErrNotFound, id)
}

// Clear removes every record. IDs keep increasing afterwards.
func (r *MemoryRepository) Clear() error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = nil
	return nil
}

func (r *MemoryRepository) load(records []Record, nextID int) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.records = records
	if nextID > r.nextID {
		r.nextID = nextID
	}
	for _, rec := range records {
		if rec.ID >= r.nextID {
			r.nextID = rec.ID + 1
		}
	}
	if over := len(r.records) - r.max; over > 0 {
		r.records = r.records[over:]
	}
}

func (r *MemoryRepository) state() fileState {
	r.mu.RLock()
	defer r.mu.RUnlock()
	out := make([]Record, len(r.records))
	copy(out, r.records)
	return fileState{NextID: r.nextID, Records: out}
}
