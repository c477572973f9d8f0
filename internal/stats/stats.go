// Package stats collects lifetime player statistics emitted by room scoring.
// Durable persistence (accounts, databases) is an external collaborator; the
// room only pushes increments keyed by an opaque player identity.
package stats

import (
	"sync"

	"github.com/danielvaturi-glitch/Peanuts-poker/internal/poker"
)

// Sink receives statistics increments from room scoring. Implementations
// must be safe for concurrent use by independent rooms.
type Sink interface {
	// HandPlayed records one completed hand for each identity.
	HandPlayed(ids []string)

	// VariantWon records a win (shared wins included) of one variant.
	VariantWon(variant poker.Variant, ids []string)

	// Scooped records a sole win of both variants in the same hand.
	Scooped(id string)

	// NetDelta records the chip delta of one identity for one hand.
	NetDelta(id string, delta int)
}

// NullSink is the zero-overhead default when no statistics collaborator is
// attached.
type NullSink struct{}

func (NullSink) HandPlayed([]string)                {}
func (NullSink) VariantWon(poker.Variant, []string) {}
func (NullSink) Scooped(string)                     {}
func (NullSink) NetDelta(string, int)               {}

// PlayerTotals is the accumulated record for one identity.
type PlayerTotals struct {
	HandsPlayed int
	HoldemWins  int
	OmahaWins   int
	Scoops      int
	Net         int
}

// MemorySink keeps totals in memory. Used in tests and for the final
// standings snapshot a terminating room publishes.
type MemorySink struct {
	mu     sync.Mutex
	totals map[string]*PlayerTotals
}

// NewMemorySink creates an empty in-memory sink.
func NewMemorySink() *MemorySink {
	return &MemorySink{totals: make(map[string]*PlayerTotals)}
}

func (m *MemorySink) get(id string) *PlayerTotals {
	t, ok := m.totals[id]
	if !ok {
		t = &PlayerTotals{}
		m.totals[id] = t
	}
	return t
}

// HandPlayed implements Sink.
func (m *MemorySink) HandPlayed(ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		m.get(id).HandsPlayed++
	}
}

// VariantWon implements Sink.
func (m *MemorySink) VariantWon(variant poker.Variant, ids []string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range ids {
		t := m.get(id)
		switch variant {
		case poker.VariantHoldem:
			t.HoldemWins++
		case poker.VariantOmaha:
			t.OmahaWins++
		}
	}
}

// Scooped implements Sink.
func (m *MemorySink) Scooped(id string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).Scoops++
}

// NetDelta implements Sink.
func (m *MemorySink) NetDelta(id string, delta int) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.get(id).Net += delta
}

// Totals returns a copy of the accumulated record for one identity.
func (m *MemorySink) Totals(id string) PlayerTotals {
	m.mu.Lock()
	defer m.mu.Unlock()
	if t, ok := m.totals[id]; ok {
		return *t
	}
	return PlayerTotals{}
}

// Reset clears all totals.
func (m *MemorySink) Reset() {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.totals = make(map[string]*PlayerTotals)
}
