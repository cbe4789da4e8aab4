// Package score tracks a decaying integer score per node.
//
// Scores rise through Add (external scoring events) and fall by exactly one
// per Tick until they reach zero. Entries are created lazily; a node that was
// never scored reads as 0.
//
// Tracker is not safe for concurrent use. Hosts that deliver Add and Tick
// from different goroutines serialise them (see package sim).
package score

import (
	"errors"
	"fmt"
	"maps"
	"math"
)

var (
	// ErrInvalidAmount indicates Add was called with amount ≤ 0.
	ErrInvalidAmount = errors.New("score: amount must be positive")

	// ErrEmptyNode indicates Add was called with an empty node ID.
	ErrEmptyNode = errors.New("score: node ID is empty")
)

// Tracker maps node IDs to non-negative scores.
type Tracker struct {
	scores map[string]int
}

// NewTracker returns an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{scores: make(map[string]int)}
}

// Add increases node's score by amount, creating the entry at 0 first if
// needed. The score saturates at math.MaxInt.
func (t *Tracker) Add(node string, amount int) error {
	if node == "" {
		return ErrEmptyNode
	}
	if amount <= 0 {
		return fmt.Errorf("%w: %d for %q", ErrInvalidAmount, amount, node)
	}
	if s := t.scores[node]; s > math.MaxInt-amount {
		t.scores[node] = math.MaxInt
	} else {
		t.scores[node] = s + amount
	}

	return nil
}

// Tick decrements every positive score by one. Scores never go below zero.
// Complexity: O(number of scored nodes)
func (t *Tracker) Tick() {
	for node, s := range t.scores {
		if s > 0 {
			t.scores[node] = s - 1
		}
	}
}

// Of returns node's current score, or 0 if it was never scored.
func (t *Tracker) Of(node string) int { return t.scores[node] }

// Active returns the number of nodes whose score is above zero.
func (t *Tracker) Active() int {
	n := 0
	for _, s := range t.scores {
		if s > 0 {
			n++
		}
	}

	return n
}

// Snapshot returns a copy of every entry, including those that decayed to 0.
func (t *Tracker) Snapshot() map[string]int {
	return maps.Clone(t.scores)
}

// Reset clears all scores.
func (t *Tracker) Reset() {
	clear(t.scores)
}
