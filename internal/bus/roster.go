package bus

import (
	"sync"

	"github.com/waseertanvir/walkies-sub000/internal/models"
)

// Roster keeps the latest sample per publisher on a topic. One entry per
// active publisher, overwritten on each new sample, so it never grows past
// the number of participants.
type Roster struct {
	mu     sync.Mutex
	latest map[string]*models.PositionSample
}

// NewRoster creates an empty roster
func NewRoster() *Roster {
	return &Roster{
		latest: make(map[string]*models.PositionSample),
	}
}

// Observe records a sample. Returns false when the sample is older than the
// one already held for its publisher, in which case it is discarded.
func (r *Roster) Observe(sample *models.PositionSample) bool {
	if sample == nil || sample.PublisherID == "" {
		return false
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if prev, ok := r.latest[sample.PublisherID]; ok && sample.Timestamp.Before(prev.Timestamp) {
		return false
	}

	r.latest[sample.PublisherID] = sample
	return true
}

// Get returns the latest sample for a publisher, if any
func (r *Roster) Get(publisherID string) (*models.PositionSample, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	sample, ok := r.latest[publisherID]
	return sample, ok
}

// Latest returns the current sample of every publisher seen so far
func (r *Roster) Latest() []*models.PositionSample {
	r.mu.Lock()
	defer r.mu.Unlock()

	samples := make([]*models.PositionSample, 0, len(r.latest))
	for _, sample := range r.latest {
		samples = append(samples, sample)
	}
	return samples
}
