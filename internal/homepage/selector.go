package homepage

import (
	"math/rand"
)

// SlotCount is the number of featured tiles on the storefront homepage.
const SlotCount = 4

// repeatWindow is how many preceding slots a product must not repeat
// within when filling unpinned positions.
const repeatWindow = 2

// Selector fills unpinned homepage slots with random products. The RNG
// is injected so selection is deterministic under test.
type Selector struct {
	rng *rand.Rand
}

func NewSelector(rng *rand.Rand) *Selector {
	return &Selector{rng: rng}
}

// Fill resolves the four homepage tiles. A non-empty pin wins its slot
// outright; empty slots draw from available, preferring products not
// already on the board and never repeating a product shown in the two
// preceding slots unless the catalog is too small to avoid it. With no
// products at all, unpinned slots stay empty.
func (s *Selector) Fill(pins [SlotCount]string, available []string) [SlotCount]string {
	var result [SlotCount]string

	onBoard := make(map[string]bool, SlotCount)
	for _, pin := range pins {
		if pin != "" {
			onBoard[pin] = true
		}
	}

	for i := 0; i < SlotCount; i++ {
		if pins[i] != "" {
			result[i] = pins[i]
			continue
		}

		window := make(map[string]bool, repeatWindow)
		for j := i - repeatWindow; j < i; j++ {
			if j >= 0 && result[j] != "" {
				window[result[j]] = true
			}
		}

		pick := s.draw(available, func(id string) bool {
			return !onBoard[id] && !window[id]
		})
		if pick == "" {
			// Everything fresh is too close; allow a repeat from
			// outside the window before giving up entirely.
			pick = s.draw(available, func(id string) bool {
				return !window[id]
			})
		}
		if pick == "" {
			pick = s.draw(available, func(string) bool { return true })
		}

		result[i] = pick
		if pick != "" {
			onBoard[pick] = true
		}
	}

	return result
}

func (s *Selector) draw(available []string, ok func(string) bool) string {
	var pool []string
	for _, id := range available {
		if ok(id) {
			pool = append(pool, id)
		}
	}
	if len(pool) == 0 {
		return ""
	}
	return pool[s.rng.Intn(len(pool))]
}
