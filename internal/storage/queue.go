package storage

import (
	"fmt"
	"os"
	"sync"

	"github.com/goccy/go-json"
)

// Queue is a JSON-file fallback for records that could not be written to the
// primary store. It keeps the whole backlog in one file so a crashed or
// locked database never loses a finished match.
type Queue struct {
	path string
	mu   sync.Mutex
}

// NewQueue creates a queue backed by the file at path. The file is created
// lazily on the first enqueue.
func NewQueue(path string) *Queue {
	return &Queue{path: path}
}

// Enqueue appends records to the backlog file.
func (q *Queue) Enqueue(records []MatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	q.mu.Lock()
	defer q.mu.Unlock()

	backlog, err := q.load()
	if err != nil {
		return err
	}
	backlog = append(backlog, records...)
	return q.write(backlog)
}

// Drain returns the whole backlog and empties the file. If the caller fails
// to persist the returned records it should Enqueue them again.
func (q *Queue) Drain() ([]MatchRecord, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	backlog, err := q.load()
	if err != nil {
		return nil, err
	}
	if len(backlog) == 0 {
		return nil, nil
	}
	if err := q.write(nil); err != nil {
		return nil, err
	}
	return backlog, nil
}

// Len reports the number of queued records.
func (q *Queue) Len() (int, error) {
	q.mu.Lock()
	defer q.mu.Unlock()

	backlog, err := q.load()
	if err != nil {
		return 0, err
	}
	return len(backlog), nil
}

func (q *Queue) load() ([]MatchRecord, error) {
	data, err := os.ReadFile(q.path)
	if os.IsNotExist(err) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to read queue file: %w", err)
	}
	if len(data) == 0 {
		return nil, nil
	}

	var backlog []MatchRecord
	if err := json.Unmarshal(data, &backlog); err != nil {
		return nil, fmt.Errorf("failed to decode queue file: %w", err)
	}
	return backlog, nil
}

func (q *Queue) write(backlog []MatchRecord) error {
	if backlog == nil {
		backlog = []MatchRecord{}
	}
	data, err := json.Marshal(backlog)
	if err != nil {
		return fmt.Errorf("failed to encode queue: %w", err)
	}
	if err := os.WriteFile(q.path, data, 0644); err != nil {
		return fmt.Errorf("failed to write queue file: %w", err)
	}
	return nil
}
