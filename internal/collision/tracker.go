package collision

import (
	"github.com/arloliu/dwg/errs"
)

// Tracker records names with their 64-bit hashes and detects collisions.
// It keeps the first name seen per hash and the order names were added in.
type Tracker struct {
	names     map[uint64]string // hash → first name with that hash
	namesList []string          // insertion order
	collided  map[uint64]bool   // hashes shared by more than one name
}

// NewTracker creates a new collision tracker.
func NewTracker() *Tracker {
	return &Tracker{
		names:     make(map[uint64]string),
		namesList: make([]string, 0),
		collided:  make(map[uint64]bool),
	}
}

// Track records name under hash.
//
// Returns errs.ErrInvalidName for an empty name and errs.ErrDuplicateName when
// the same name was tracked before. A different name with an existing hash is
// not an error; the hash is marked as collided.
func (t *Tracker) Track(name string, hash uint64) error {
	if name == "" {
		return errs.ErrInvalidName
	}

	if existing, exists := t.names[hash]; exists {
		if existing == name {
			return errs.ErrDuplicateName
		}
		t.collided[hash] = true
		t.namesList = append(t.namesList, name)

		return nil
	}

	t.names[hash] = name
	t.namesList = append(t.namesList, name)

	return nil
}

// Resolve returns the unique name tracked under hash.
//
// Returns errs.ErrHashCollision when several names share the hash.
func (t *Tracker) Resolve(hash uint64) (string, error) {
	if t.collided[hash] {
		return "", errs.ErrHashCollision
	}
	name, ok := t.names[hash]
	if !ok {
		return "", errs.ErrNameNotFound
	}

	return name, nil
}

// Collides reports whether more than one name was tracked under hash.
func (t *Tracker) Collides(hash uint64) bool {
	return t.collided[hash]
}

// HasCollision returns true if any collision has been detected.
func (t *Tracker) HasCollision() bool {
	return len(t.collided) > 0
}

// Names returns the tracked names in insertion order.
func (t *Tracker) Names() []string {
	return t.namesList
}

// Count returns the number of tracked names.
func (t *Tracker) Count() int {
	return len(t.namesList)
}

// Reset clears all tracked names and collision state.
func (t *Tracker) Reset() {
	clear(t.names)
	clear(t.collided)
	t.namesList = t.namesList[:0]
}
