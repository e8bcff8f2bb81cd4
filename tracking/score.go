// SPDX-License-Identifier: GPL-3.0-only

package tracking

import (
	"math/rand"
	"sync"
)

// Scorer computes the confidence score for a lookup. The jitter term and the
// stubbed activity check are deliberately non-deterministic; both draw from
// one seedable source so tests can pin outputs.
type Scorer struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewScorer(seed int64) *Scorer {
	return &Scorer{rng: rand.New(rand.NewSource(seed))}
}

// Score combines resolver outcomes into a value in [0,100]: +40 for a known
// operator, +30 for a resolved area, +20 when porting information exists,
// plus a jitter of 0-10, clamped to 100.
func (s *Scorer) Score(operatorKnown, areaKnown, ported bool) int {
	score := 0
	if operatorKnown {
		score += 40
	}
	if areaKnown {
		score += 30
	}
	if ported {
		score += 20
	}

	s.mu.Lock()
	score += s.rng.Intn(11)
	s.mu.Unlock()

	if score > 100 {
		score = 100
	}
	return score
}

// ActiveStatus simulates the carrier activity check, which is not verifiable
// without a network probe. Roughly four out of five numbers report active.
func (s *Scorer) ActiveStatus() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.rng.Intn(101) > 20
}
