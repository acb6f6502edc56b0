package storage

import (
	"context"
	"fmt"
	"sync"
)

// Store is the write side of a match-history store.
type Store interface {
	SaveMatches(ctx context.Context, records []MatchRecord) error
}

// Emitter handles asynchronous, sequential writes of finished matches. A
// batch that fails to save is diverted to the fallback queue instead of
// being dropped, so the caller never blocks on or observes storage errors.
type Emitter struct {
	store    Store
	queue    *Queue
	saveChan chan []MatchRecord
	wg       sync.WaitGroup
	started  bool
	closed   bool
	mu       sync.Mutex
}

// NewEmitter creates an Emitter with the default buffer size.
func NewEmitter(store Store, queue *Queue) *Emitter {
	return NewEmitterWithBuffer(store, queue, 10)
}

// NewEmitterWithBuffer creates an Emitter with the specified buffer size.
func NewEmitterWithBuffer(store Store, queue *Queue, bufferSize int) *Emitter {
	return &Emitter{
		store:    store,
		queue:    queue,
		saveChan: make(chan []MatchRecord, bufferSize),
	}
}

// Start begins processing saves in a background goroutine.
func (e *Emitter) Start(ctx context.Context) {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.started {
		return
	}
	e.started = true

	e.wg.Add(1)
	go e.processLoop(ctx)
}

// processLoop reads from the channel and processes saves sequentially.
func (e *Emitter) processLoop(ctx context.Context) {
	defer e.wg.Done()

	for {
		select {
		case records, ok := <-e.saveChan:
			if !ok {
				return
			}
			// Saves run on a background context so a batch already in
			// flight completes even if the parent context is cancelled.
			e.save(records)

		case <-ctx.Done():
			e.drainChannel()
			return
		}
	}
}

// drainChannel processes any remaining batches in the channel.
func (e *Emitter) drainChannel() {
	for {
		select {
		case records, ok := <-e.saveChan:
			if !ok {
				return
			}
			e.save(records)
		default:
			return
		}
	}
}

func (e *Emitter) save(records []MatchRecord) {
	if err := e.store.SaveMatches(context.Background(), records); err != nil {
		fmt.Printf("Match save failed, queueing %d record(s): %v\n", len(records), err)
		if qErr := e.queue.Enqueue(records); qErr != nil {
			fmt.Printf("Failed to queue match records: %v\n", qErr)
		}
	}
}

// Emit sends a batch to the save queue. Blocks if the queue is full. A batch
// emitted after Wait has begun shutting the emitter down goes straight to the
// fallback queue instead of being lost or racing the channel close.
func (e *Emitter) Emit(ctx context.Context, records []MatchRecord) error {
	if len(records) == 0 {
		return nil
	}

	// The lock is held across the send so Wait cannot close the channel
	// underneath an in-flight emit.
	e.mu.Lock()
	defer e.mu.Unlock()
	if e.closed {
		return e.queue.Enqueue(records)
	}
	select {
	case e.saveChan <- records:
		return nil
	case <-ctx.Done():
		return ctx.Err()
	}
}

// Wait blocks until all pending saves are complete. Safe to call more than
// once; later Emit calls divert to the fallback queue.
func (e *Emitter) Wait() {
	e.mu.Lock()
	if !e.started || e.closed {
		e.mu.Unlock()
		return
	}
	e.closed = true
	e.mu.Unlock()

	close(e.saveChan)
	e.wg.Wait()
}

// PendingCount returns the number of batches waiting in the queue.
func (e *Emitter) PendingCount() int {
	return len(e.saveChan)
}

// Reconcile moves any queued backlog into the primary store. Called at
// startup before the emitter starts; records that still fail to save are
// re-queued.
func (e *Emitter) Reconcile(ctx context.Context) error {
	backlog, err := e.queue.Drain()
	if err != nil {
		return fmt.Errorf("failed to drain queue: %w", err)
	}
	if len(backlog) == 0 {
		return nil
	}
	if err := e.store.SaveMatches(ctx, backlog); err != nil {
		if qErr := e.queue.Enqueue(backlog); qErr != nil {
			return fmt.Errorf("failed to re-queue backlog: %w", qErr)
		}
		return fmt.Errorf("failed to reconcile %d queued record(s): %w", len(backlog), err)
	}
	fmt.Printf("Reconciled %d queued match record(s)\n", len(backlog))
	return nil
}
