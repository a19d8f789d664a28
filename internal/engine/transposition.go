package engine

import (
	"sync"
	"sync/atomic"

	"github.com/ardenlabs/chesscore/internal/board"
)

// TranspositionTable is a concurrent ZobristId → score map. It is created
// fresh for each search call and discarded afterward: there is no eviction
// policy, and a later insert for an existing key always overwrites it.
// Collisions are never verified against full position equality (see the
// package doc comment on that tradeoff); this trades a small, unguarded
// chance of a wrong score for lock-free reads.
type TranspositionTable struct {
	entries sync.Map // board.ZobristId -> int16

	hits   uint64
	probes uint64
}

// NewTranspositionTable returns an empty table.
func NewTranspositionTable() *TranspositionTable {
	return &TranspositionTable{}
}

// Get returns the stored score for key and whether it was present.
func (t *TranspositionTable) Get(key board.ZobristId) (int16, bool) {
	atomic.AddUint64(&t.probes, 1)
	v, ok := t.entries.Load(key)
	if !ok {
		return 0, false
	}
	atomic.AddUint64(&t.hits, 1)
	return v.(int16), true
}

// Put inserts or overwrites the score for key.
func (t *TranspositionTable) Put(key board.ZobristId, score int16) {
	t.entries.Store(key, score)
}

// Hits returns the number of probes that found an entry.
func (t *TranspositionTable) Hits() uint64 {
	return atomic.LoadUint64(&t.hits)
}

// Probes returns the total number of lookups attempted.
func (t *TranspositionTable) Probes() uint64 {
	return atomic.LoadUint64(&t.probes)
}
