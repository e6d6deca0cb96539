package database

import (
	"sync"

	"github.com/ds124wfegd/eventease/internal/entity"
)

// recordList is an in-memory, insertion ordered list of records with
// ascending integer ids.
type recordList[T any] struct {
	mu      sync.RWMutex
	records []T
	idOf    func(T) int
}

func newRecordList[T any](idOf func(T) int) *recordList[T] {
	return &recordList[T]{
		records: make([]T, 0),
		idOf:    idOf,
	}
}

// nextID is one more than the id of the last record, or 1 when empty.
// Caller must hold the write lock.
func (l *recordList[T]) nextID() int {
	if len(l.records) == 0 {
		return 1
	}
	return l.idOf(l.records[len(l.records)-1]) + 1
}

func (l *recordList[T]) create(fill func(id int) T) T {
	l.mu.Lock()
	defer l.mu.Unlock()

	record := fill(l.nextID())
	l.records = append(l.records, record)
	return record
}

func (l *recordList[T]) getAll() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()

	out := make([]T, len(l.records))
	copy(out, l.records)
	return out
}

// delete removes the first record with the given id.
func (l *recordList[T]) delete(id int) (T, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	for i, r := range l.records {
		if l.idOf(r) == id {
			l.records = append(l.records[:i], l.records[i+1:]...)
			return r, nil
		}
	}

	var zero T
	return zero, entity.ErrNotFound
}
