package sheet

import (
	"sync"
	"time"
)

const (
	// DefaultBatchSize flushes the queue once this many entries are
	// pending, without waiting for the frame timer.
	DefaultBatchSize = 50

	// DefaultBatchDelay approximates one animation frame.
	DefaultBatchDelay = 16 * time.Millisecond
)

// Batcher coalesces generated CSS into one stylesheet write per frame.
// Entries flush when the queue reaches the batch size or when the frame
// timer fires, whichever comes first. The reactive modifier path bypasses
// the batcher entirely; batching serves bulk/utility CSS where a one-frame
// delay is invisible.
type Batcher struct {
	mu     sync.Mutex
	sheet  *StyleSheet
	queue  []string
	timer  *time.Timer
	size   int
	delay  time.Duration
	closed bool
}

// NewBatcher creates a batcher flushing into sheet. size <= 0 and
// delay <= 0 select the defaults.
func NewBatcher(sheet *StyleSheet, size int, delay time.Duration) *Batcher {
	if size <= 0 {
		size = DefaultBatchSize
	}
	if delay <= 0 {
		delay = DefaultBatchDelay
	}
	return &Batcher{sheet: sheet, size: size, delay: delay}
}

// Enqueue schedules css for injection. Empty strings are dropped.
func (b *Batcher) Enqueue(css string) {
	if css == "" {
		return
	}

	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.queue = append(b.queue, css)
	if len(b.queue) >= b.size {
		queue := b.drainLocked()
		b.mu.Unlock()
		b.sheet.AppendBatch(queue)
		return
	}
	if b.timer == nil {
		b.timer = time.AfterFunc(b.delay, b.Flush)
	}
	b.mu.Unlock()
}

// Flush synchronously drains the queue into the sheet as a single append
// and cancels any pending timer.
func (b *Batcher) Flush() {
	b.mu.Lock()
	queue := b.drainLocked()
	b.mu.Unlock()

	if len(queue) > 0 {
		b.sheet.AppendBatch(queue)
	}
}

// drainLocked takes the queue and stops the timer. Caller holds b.mu.
func (b *Batcher) drainLocked() []string {
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	queue := b.queue
	b.queue = nil
	return queue
}

// Depth reports how many entries are waiting to flush.
func (b *Batcher) Depth() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return len(b.queue)
}

// Close cancels pending work without writing it and rejects further
// enqueues. Call Flush first if queued CSS should still land.
func (b *Batcher) Close() {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.timer != nil {
		b.timer.Stop()
		b.timer = nil
	}
	b.queue = nil
	b.closed = true
}
