package buffer

import (
	"sync"
	"sync/atomic"
	"time"
)

// Statistics tracks buffer activity. All counters are updated atomically,
// so a monitoring goroutine may read them while the owning goroutine
// mutates the buffer.
type Statistics struct {
	// Atomic counters for thread-safe updates
	pushes     int64
	lookups    int64
	hits       int64
	stale      int64
	overwrites int64
	laps       int64
	clears     int64

	// Protected by mutex
	mu          sync.RWMutex
	startTime   time.Time
	currentSize int64
	maxSize     int64
}

// NewStatistics creates a new statistics tracker.
func NewStatistics() *Statistics {
	return &Statistics{
		startTime: time.Now(),
	}
}

// Push records an insertion.
func (s *Statistics) Push() {
	atomic.AddInt64(&s.pushes, 1)
}

// Lookup records a Get or GetPtr call.
func (s *Statistics) Lookup() {
	atomic.AddInt64(&s.lookups, 1)
}

// Hit records a lookup that found live data.
func (s *Statistics) Hit() {
	atomic.AddInt64(&s.hits, 1)
}

// Stale records a rejected lookup (stale, out-of-range, or fabricated handle).
func (s *Statistics) Stale() {
	atomic.AddInt64(&s.stale, 1)
}

// Overwrite records a value displaced by an insertion on a later lap.
func (s *Statistics) Overwrite() {
	atomic.AddInt64(&s.overwrites, 1)
}

// Lap records a completed traversal of the buffer (a generation increment).
func (s *Statistics) Lap() {
	atomic.AddInt64(&s.laps, 1)
}

// Clear records a full reset of the buffer.
func (s *Statistics) Clear() {
	atomic.AddInt64(&s.clears, 1)
}

// UpdateSize updates the current buffer size.
func (s *Statistics) UpdateSize(size int64) {
	s.mu.Lock()
	s.currentSize = size
	if size > s.maxSize {
		s.maxSize = size
	}
	s.mu.Unlock()
}

// Pushes returns the total number of insertions.
func (s *Statistics) Pushes() int64 {
	return atomic.LoadInt64(&s.pushes)
}

// Lookups returns the total number of Get and GetPtr calls.
func (s *Statistics) Lookups() int64 {
	return atomic.LoadInt64(&s.lookups)
}

// Hits returns the total number of successful lookups.
func (s *Statistics) Hits() int64 {
	return atomic.LoadInt64(&s.hits)
}

// StaleLookups returns the total number of rejected lookups.
func (s *Statistics) StaleLookups() int64 {
	return atomic.LoadInt64(&s.stale)
}

// Overwrites returns the total number of values displaced by insertions.
func (s *Statistics) Overwrites() int64 {
	return atomic.LoadInt64(&s.overwrites)
}

// Laps returns the total number of completed cursor traversals.
func (s *Statistics) Laps() int64 {
	return atomic.LoadInt64(&s.laps)
}

// Clears returns the total number of full resets.
func (s *Statistics) Clears() int64 {
	return atomic.LoadInt64(&s.clears)
}

// CurrentSize returns the current number of entries in the buffer.
func (s *Statistics) CurrentSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.currentSize
}

// MaxSize returns the maximum number of entries the buffer has held.
func (s *Statistics) MaxSize() int64 {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.maxSize
}

// Throughput returns the average number of pushes per second.
func (s *Statistics) Throughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Pushes()) / elapsed.Seconds()
}

// LookupThroughput returns the average number of lookups per second.
func (s *Statistics) LookupThroughput() float64 {
	s.mu.RLock()
	elapsed := time.Since(s.startTime)
	s.mu.RUnlock()

	if elapsed == 0 {
		return 0.0
	}

	return float64(s.Lookups()) / elapsed.Seconds()
}

// HitRate returns the fraction of lookups that found live data (0.0 to 1.0).
func (s *Statistics) HitRate() float64 {
	lookups := s.Lookups()
	if lookups == 0 {
		return 0.0
	}

	return float64(s.Hits()) / float64(lookups)
}

// StaleRate returns the fraction of lookups that were rejected (0.0 to 1.0).
func (s *Statistics) StaleRate() float64 {
	lookups := s.Lookups()
	if lookups == 0 {
		return 0.0
	}

	return float64(s.StaleLookups()) / float64(lookups)
}

// Utilization returns the current buffer utilization as a percentage (0.0 to 1.0).
func (s *Statistics) Utilization(capacity int64) float64 {
	if capacity == 0 {
		return 0.0
	}

	return float64(s.CurrentSize()) / float64(capacity)
}

// Uptime returns how long the buffer has been running.
func (s *Statistics) Uptime() time.Duration {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return time.Since(s.startTime)
}

// Reset resets all statistics to zero.
func (s *Statistics) Reset() {
	atomic.StoreInt64(&s.pushes, 0)
	atomic.StoreInt64(&s.lookups, 0)
	atomic.StoreInt64(&s.hits, 0)
	atomic.StoreInt64(&s.stale, 0)
	atomic.StoreInt64(&s.overwrites, 0)
	atomic.StoreInt64(&s.laps, 0)
	atomic.StoreInt64(&s.clears, 0)

	s.mu.Lock()
	s.startTime = time.Now()
	s.currentSize = 0
	s.maxSize = 0
	s.mu.Unlock()
}

// StatsSummary is a snapshot of all statistics.
type StatsSummary struct {
	Pushes           int64         `json:"pushes"`
	Lookups          int64         `json:"lookups"`
	Hits             int64         `json:"hits"`
	StaleLookups     int64         `json:"stale_lookups"`
	Overwrites       int64         `json:"overwrites"`
	Laps             int64         `json:"laps"`
	Clears           int64         `json:"clears"`
	CurrentSize      int64         `json:"current_size"`
	MaxSize          int64         `json:"max_size"`
	Throughput       float64       `json:"throughput"`
	LookupThroughput float64       `json:"lookup_throughput"`
	HitRate          float64       `json:"hit_rate"`
	StaleRate        float64       `json:"stale_rate"`
	Uptime           time.Duration `json:"uptime"`
}

// Summary returns a snapshot of all statistics.
func (s *Statistics) Summary() StatsSummary {
	return StatsSummary{
		Pushes:           s.Pushes(),
		Lookups:          s.Lookups(),
		Hits:             s.Hits(),
		StaleLookups:     s.StaleLookups(),
		Overwrites:       s.Overwrites(),
		Laps:             s.Laps(),
		Clears:           s.Clears(),
		CurrentSize:      s.CurrentSize(),
		MaxSize:          s.MaxSize(),
		Throughput:       s.Throughput(),
		LookupThroughput: s.LookupThroughput(),
		HitRate:          s.HitRate(),
		StaleRate:        s.StaleRate(),
		Uptime:           s.Uptime(),
	}
}
