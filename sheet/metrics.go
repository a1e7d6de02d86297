package sheet

import (
	"sync"
	"time"
)

// Metrics accumulates generation timing for the introspection endpoint.
type Metrics struct {
	mu          sync.Mutex
	generations uint64
	elapsed     time.Duration
}

// NewMetrics creates an empty metrics accumulator.
func NewMetrics() *Metrics {
	return &Metrics{}
}

// RecordGeneration adds one generation pass of the given duration.
func (m *Metrics) RecordGeneration(d time.Duration) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generations++
	m.elapsed += d
}

// Generations reports how many generation passes have run.
func (m *Metrics) Generations() uint64 {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.generations
}

// Elapsed reports cumulative generation time.
func (m *Metrics) Elapsed() time.Duration {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.elapsed
}

// Reset clears the accumulator.
func (m *Metrics) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.generations = 0
	m.elapsed = 0
}

// Stats is the introspection snapshot consumed by developer tooling.
type Stats struct {
	CacheSize     int     `json:"cacheSize"`
	CacheCapacity int     `json:"cacheCapacity"`
	CacheHits     uint64  `json:"cacheHits"`
	CacheMisses   uint64  `json:"cacheMisses"`
	CacheHitRate  float64 `json:"cacheHitRate"`
	QueueDepth    int     `json:"queueDepth"`
	RulesWritten  int     `json:"rulesWritten"`
	Generations   uint64  `json:"generations"`
	GenerationMs  float64 `json:"generationMs"`
}
