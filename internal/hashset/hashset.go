// Package hashset implements the exact-membership index (§4.2): an
// open-addressed hash table over interned core.Handle identities, with
// tombstone discipline and amortized O(1) growth.
package hashset

import (
	"encoding/binary"

	"github.com/cespare/xxhash/v2"

	"github.com/wordlib-dev/wordlib/core"
	"github.com/wordlib-dev/wordlib/internal/wlerrors"
)

const (
	initialCapacity = 16
	maxLoadFactor   = 0.75
	minLoadFactor   = 0.15 // below this (and above initialCapacity) we shrink
)

type slotState uint8

const (
	slotEmpty slotState = iota
	slotUsed
	slotTombstone
)

type slot struct {
	state  slotState
	handle core.Handle
}

// HashSet answers Contains in O(1) average (handle) / O(k) average (bytes,
// via the caller resolving bytes to a handle first) and supports Add/Remove
// with amortized O(1) cost under growth.
type HashSet struct {
	slots []slot
	count int // live (non-tombstone) entries
	dead  int // tombstones
}

// New creates an empty hash set.
func New() *HashSet {
	return &HashSet{slots: make([]slot, initialCapacity)}
}

func hashHandle(h core.Handle) uint64 {
	var b [4]byte
	binary.LittleEndian.PutUint32(b[:], h.Index())
	return xxhash.Sum64(b[:])
}

// Add inserts handle, returning true if it was not already present. It
// grows the table first if doing so would push the load factor (including
// tombstones, which also occupy slots) above maxLoadFactor.
func (s *HashSet) Add(handle core.Handle) (bool, error) {
	if float64(s.count+s.dead+1) > float64(len(s.slots))*maxLoadFactor {
		if err := s.resize(s.nextGrowSize()); err != nil {
			return false, err
		}
	}
	idx, found := s.find(handle)
	if found {
		return false, nil
	}
	// idx points at the first empty-or-tombstone slot found by find().
	if s.slots[idx].state == slotTombstone {
		s.dead--
	}
	s.slots[idx] = slot{state: slotUsed, handle: handle}
	s.count++
	return true, nil
}

// Remove deletes handle if present, leaving a tombstone so open-addressed
// probe chains past it remain intact. Returns true if it was present.
func (s *HashSet) Remove(handle core.Handle) bool {
	idx, found := s.find(handle)
	if !found {
		return false
	}
	s.slots[idx] = slot{state: slotTombstone}
	s.count--
	s.dead++
	if len(s.slots) > initialCapacity && float64(s.count) < float64(len(s.slots))*minLoadFactor {
		// Best-effort shrink; failure to shrink is not an error the caller
		// needs to see (§4.2 "optional dynamic shrink").
		_ = s.resize(s.shrinkSize())
	}
	return true
}

// Contains reports whether handle is a member. O(1) average.
func (s *HashSet) Contains(handle core.Handle) bool {
	_, found := s.find(handle)
	return found
}

// Count returns the number of live members.
func (s *HashSet) Count() int { return s.count }

// Handles returns every live handle, in arbitrary but stable-within-version
// (i.e. stable until the next Add/Remove) order, per §4.2's iteration
// contract.
func (s *HashSet) Handles(yield func(core.Handle) bool) {
	for _, sl := range s.slots {
		if sl.state == slotUsed {
			if !yield(sl.handle) {
				return
			}
		}
	}
}

// find returns the slot index for handle (found=true) or the first
// empty-or-tombstone slot on its probe chain where it would be inserted
// (found=false).
func (s *HashSet) find(handle core.Handle) (idx int, found bool) {
	mask := len(s.slots) - 1
	i := int(hashHandle(handle)) & mask
	firstTomb := -1
	for probe := 0; probe < len(s.slots); probe++ {
		sl := s.slots[i]
		switch sl.state {
		case slotEmpty:
			if firstTomb >= 0 {
				return firstTomb, false
			}
			return i, false
		case slotTombstone:
			if firstTomb < 0 {
				firstTomb = i
			}
		case slotUsed:
			if sl.handle == handle {
				return i, true
			}
		}
		i = (i + 1) & mask
	}
	if firstTomb >= 0 {
		return firstTomb, false
	}
	return -1, false
}

func (s *HashSet) nextGrowSize() int {
	n := len(s.slots) * 2
	if n == 0 {
		n = initialCapacity
	}
	return n
}

func (s *HashSet) shrinkSize() int {
	n := len(s.slots) / 2
	if n < initialCapacity {
		n = initialCapacity
	}
	return n
}

func (s *HashSet) resize(newSize int) error {
	if newSize <= 0 {
		return &wlerrors.InsufficientMemoryError{Op: "hashset.resize"}
	}
	old := s.slots
	s.slots = make([]slot, newSize)
	s.dead = 0
	count := 0
	mask := newSize - 1
	for _, sl := range old {
		if sl.state != slotUsed {
			continue
		}
		i := int(hashHandle(sl.handle)) & mask
		for s.slots[i].state == slotUsed {
			i = (i + 1) & mask
		}
		s.slots[i] = slot{state: slotUsed, handle: sl.handle}
		count++
	}
	s.count = count
	return nil
}
