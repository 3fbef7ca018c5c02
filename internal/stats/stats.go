package stats

import (
	"slices"
	"sync"
	"time"
)

type sample struct {
	at     time.Time
	micros int64
}

// Summary aggregates the latency samples of one render kind.
type Summary struct {
	Count     int     `json:"count"`
	MinMicros int64   `json:"min_us"`
	MaxMicros int64   `json:"max_us"`
	AvgMicros float64 `json:"avg_us"`
	P50Micros float64 `json:"p50_us"`
	P95Micros float64 `json:"p95_us"`
	P99Micros float64 `json:"p99_us"`
}

// Snapshot is a point-in-time view of render activity in the window.
type Snapshot struct {
	Window      string             `json:"window"`
	Kinds       map[string]Summary `json:"kinds"`
	CacheHits   int64              `json:"cache_hits"`
	CacheMisses int64              `json:"cache_misses"`
}

// RenderStats tracks render latencies per kind ("graph", "mermaid", ...)
// within a rolling window, plus lifetime cache hit and miss counters.
type RenderStats struct {
	mu      sync.Mutex
	samples map[string][]sample
	maxAge  time.Duration
	hits    int64
	misses  int64
}

func New(maxAge time.Duration) *RenderStats {
	if maxAge <= 0 {
		maxAge = time.Hour
	}
	return &RenderStats{
		samples: make(map[string][]sample),
		maxAge:  maxAge,
	}
}

// Record adds one latency sample for kind.
func (s *RenderStats) Record(kind string, d time.Duration) {
	if d < 0 {
		d = 0
	}
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	s.samples[kind] = append(s.samples[kind], sample{at: now, micros: d.Microseconds()})
}

func (s *RenderStats) CacheHit() {
	s.mu.Lock()
	s.hits++
	s.mu.Unlock()
}

func (s *RenderStats) CacheMiss() {
	s.mu.Lock()
	s.misses++
	s.mu.Unlock()
}

func (s *RenderStats) Snapshot() Snapshot {
	now := time.Now()

	s.mu.Lock()
	defer s.mu.Unlock()

	s.pruneLocked(now)
	snap := Snapshot{
		Window:      s.maxAge.String(),
		Kinds:       make(map[string]Summary, len(s.samples)),
		CacheHits:   s.hits,
		CacheMisses: s.misses,
	}
	for kind, samples := range s.samples {
		snap.Kinds[kind] = summarize(samples)
	}
	return snap
}

func summarize(samples []sample) Summary {
	values := make([]int64, 0, len(samples))
	var sum int64
	for _, sm := range samples {
		values = append(values, sm.micros)
		sum += sm.micros
	}
	slices.Sort(values)

	return Summary{
		Count:     len(values),
		MinMicros: values[0],
		MaxMicros: values[len(values)-1],
		AvgMicros: float64(sum) / float64(len(values)),
		P50Micros: percentile(values, 50),
		P95Micros: percentile(values, 95),
		P99Micros: percentile(values, 99),
	}
}

// pruneLocked drops expired samples and kinds left without any.
func (s *RenderStats) pruneLocked(now time.Time) {
	cutoff := now.Add(-s.maxAge)
	for kind, samples := range s.samples {
		kept := samples[:0]
		for _, sm := range samples {
			if !sm.at.Before(cutoff) {
				kept = append(kept, sm)
			}
		}
		if len(kept) == 0 {
			delete(s.samples, kind)
			continue
		}
		s.samples[kind] = kept
	}
}

func percentile(sortedValues []int64, pct float64) float64 {
	if len(sortedValues) == 0 {
		return 0
	}
	if pct <= 0 {
		return float64(sortedValues[0])
	}
	if pct >= 100 {
		return float64(sortedValues[len(sortedValues)-1])
	}

	index := (float64(len(sortedValues)-1) * pct) / 100.0
	lower := int(index)
	upper := lower + 1
	if upper >= len(sortedValues) {
		return float64(sortedValues[lower])
	}
	weight := index - float64(lower)
	lo := float64(sortedValues[lower])
	hi := float64(sortedValues[upper])
	return lo + ((hi - lo) * weight)
}
