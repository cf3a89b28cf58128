package logging

import "sync"

// ProgressSampler decides when batch progress is worth a log line: once per
// percentage bucket crossed. It is safe for concurrent use.
type ProgressSampler struct {
	mu         sync.Mutex
	bucketSize float64
	lastBucket int
}

// NewProgressSampler constructs a sampler that emits when the completed
// percentage crosses a bucket boundary (default 10%).
func NewProgressSampler(bucketSize float64) *ProgressSampler {
	if bucketSize <= 0 {
		bucketSize = 10
	}
	return &ProgressSampler{bucketSize: bucketSize, lastBucket: 0}
}

// Observe records done of total items and reports the completed percentage
// and whether it should be logged. Completion always logs.
func (s *ProgressSampler) Observe(done, total int) (float64, bool) {
	if total <= 0 {
		return 100, false
	}
	percent := float64(done) * 100 / float64(total)
	if s == nil {
		return percent, true
	}
	bucket := int(percent / s.bucketSize)
	if done >= total {
		bucket = int(100/s.bucketSize) + 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if bucket <= s.lastBucket {
		return percent, false
	}
	s.lastBucket = bucket
	return percent, true
}
